package browserkit

import (
	"time"

	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

type Project struct {
	model.Object
}

var projectShape = model.Shape{Name: "Project", Fields: []model.Field{
	{Key: "id", Required: true, Type: model.String},
	{Key: "name", Required: true, Type: model.String},
	{Key: "ownerId", Required: true, Type: model.String},
	{Key: "createdAt", Required: true, Type: model.Time},
	{Key: "updatedAt", Required: true, Type: model.Time},
	{Key: "defaultTimeout", Required: true, Type: model.Int},
	{Key: "concurrency", Required: true, Type: model.Int},
}}

var projectCodec = model.ModelOf("Project", ProjectFromRaw)

// ProjectFromRaw wraps raw without validating it.
func ProjectFromRaw(raw *rawjson.Object) Project {
	return Project{model.Wrap(raw)}
}

func (p Project) Name() string         { return "Project" }
func (p Project) Schema() []byte       { return schemaOf("Project") }
func (p Project) Example() []byte      { return exampleOf("Project") }
func (p Project) Shape() model.Shape   { return projectShape }
func (p Project) Validate() error      { return model.ValidateObject(p.Raw(), projectShape) }
func (p Project) Equal(o Project) bool { return p.Raw().Equal(o.Raw()) }

func (p Project) ID() (string, error) {
	return model.Get(p.Raw(), "id", model.String)
}

func (p Project) ProjectName() (string, error) {
	return model.Get(p.Raw(), "name", model.String)
}

func (p Project) OwnerID() (string, error) {
	return model.Get(p.Raw(), "ownerId", model.String)
}

func (p Project) CreatedAt() (time.Time, error) {
	return model.Get(p.Raw(), "createdAt", model.Time)
}

func (p Project) UpdatedAt() (time.Time, error) {
	return model.Get(p.Raw(), "updatedAt", model.Time)
}

func (p Project) DefaultTimeout() (int64, error) {
	return model.Get(p.Raw(), "defaultTimeout", model.Int)
}

func (p Project) Concurrency() (int64, error) {
	return model.Get(p.Raw(), "concurrency", model.Int)
}

type ProjectBuilder struct {
	b *model.Builder
}

func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of p, unknown properties included.
func (p Project) ToBuilder() *ProjectBuilder {
	return &ProjectBuilder{b: model.BuilderFrom(p.Raw())}
}

func (b *ProjectBuilder) ID(v string) *ProjectBuilder {
	model.Set(b.b, "id", model.String, v)
	return b
}

func (b *ProjectBuilder) ProjectName(v string) *ProjectBuilder {
	model.Set(b.b, "name", model.String, v)
	return b
}

func (b *ProjectBuilder) OwnerID(v string) *ProjectBuilder {
	model.Set(b.b, "ownerId", model.String, v)
	return b
}

func (b *ProjectBuilder) CreatedAt(v time.Time) *ProjectBuilder {
	model.Set(b.b, "createdAt", model.Time, v)
	return b
}

func (b *ProjectBuilder) UpdatedAt(v time.Time) *ProjectBuilder {
	model.Set(b.b, "updatedAt", model.Time, v)
	return b
}

func (b *ProjectBuilder) DefaultTimeout(v int64) *ProjectBuilder {
	model.Set(b.b, "defaultTimeout", model.Int, v)
	return b
}

func (b *ProjectBuilder) Concurrency(v int64) *ProjectBuilder {
	model.Set(b.b, "concurrency", model.Int, v)
	return b
}

// Extra sets a property Project does not declare.
func (b *ProjectBuilder) Extra(key string, v rawjson.Value) *ProjectBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ProjectBuilder) Build() (Project, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return Project{}, err
	}
	return ProjectFromRaw(raw), nil
}

type ProjectUsage struct {
	model.Object
}

var projectUsageShape = model.Shape{Name: "ProjectUsage", Fields: []model.Field{
	{Key: "browserMinutes", Required: true, Type: model.Int},
	{Key: "proxyBytes", Required: true, Type: model.Int},
}}

var projectUsageCodec = model.ModelOf("ProjectUsage", ProjectUsageFromRaw)

// ProjectUsageFromRaw wraps raw without validating it.
func ProjectUsageFromRaw(raw *rawjson.Object) ProjectUsage {
	return ProjectUsage{model.Wrap(raw)}
}

func (u ProjectUsage) Name() string              { return "ProjectUsage" }
func (u ProjectUsage) Schema() []byte            { return schemaOf("ProjectUsage") }
func (u ProjectUsage) Example() []byte           { return exampleOf("ProjectUsage") }
func (u ProjectUsage) Shape() model.Shape        { return projectUsageShape }
func (u ProjectUsage) Validate() error           { return model.ValidateObject(u.Raw(), projectUsageShape) }
func (u ProjectUsage) Equal(o ProjectUsage) bool { return u.Raw().Equal(o.Raw()) }

func (u ProjectUsage) BrowserMinutes() (int64, error) {
	return model.Get(u.Raw(), "browserMinutes", model.Int)
}

func (u ProjectUsage) ProxyBytes() (int64, error) {
	return model.Get(u.Raw(), "proxyBytes", model.Int)
}

type ProjectUsageBuilder struct {
	b *model.Builder
}

func NewProjectUsageBuilder() *ProjectUsageBuilder {
	return &ProjectUsageBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of u, unknown properties included.
func (u ProjectUsage) ToBuilder() *ProjectUsageBuilder {
	return &ProjectUsageBuilder{b: model.BuilderFrom(u.Raw())}
}

func (b *ProjectUsageBuilder) BrowserMinutes(v int64) *ProjectUsageBuilder {
	model.Set(b.b, "browserMinutes", model.Int, v)
	return b
}

func (b *ProjectUsageBuilder) ProxyBytes(v int64) *ProjectUsageBuilder {
	model.Set(b.b, "proxyBytes", model.Int, v)
	return b
}

// Extra sets a property ProjectUsage does not declare.
func (b *ProjectUsageBuilder) Extra(key string, v rawjson.Value) *ProjectUsageBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ProjectUsageBuilder) Build() (ProjectUsage, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return ProjectUsage{}, err
	}
	return ProjectUsageFromRaw(raw), nil
}
