package browserkit

import (
	"time"

	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

// Extension is an uploaded Chrome extension.
type Extension struct {
	model.Object
}

var extensionShape = model.Shape{Name: "Extension", Fields: []model.Field{
	{Key: "id", Required: true, Type: model.String},
	{Key: "fileName", Required: true, Type: model.String},
	{Key: "projectId", Required: true, Type: model.String},
	{Key: "createdAt", Required: true, Type: model.Time},
	{Key: "updatedAt", Required: true, Type: model.Time},
}}

var extensionCodec = model.ModelOf("Extension", ExtensionFromRaw)

// ExtensionFromRaw wraps raw without validating it.
func ExtensionFromRaw(raw *rawjson.Object) Extension {
	return Extension{model.Wrap(raw)}
}

func (e Extension) Name() string           { return "Extension" }
func (e Extension) Schema() []byte         { return schemaOf("Extension") }
func (e Extension) Example() []byte        { return exampleOf("Extension") }
func (e Extension) Shape() model.Shape     { return extensionShape }
func (e Extension) Validate() error        { return model.ValidateObject(e.Raw(), extensionShape) }
func (e Extension) Equal(o Extension) bool { return e.Raw().Equal(o.Raw()) }

func (e Extension) ID() (string, error) {
	return model.Get(e.Raw(), "id", model.String)
}

func (e Extension) FileName() (string, error) {
	return model.Get(e.Raw(), "fileName", model.String)
}

func (e Extension) ProjectID() (string, error) {
	return model.Get(e.Raw(), "projectId", model.String)
}

func (e Extension) CreatedAt() (time.Time, error) {
	return model.Get(e.Raw(), "createdAt", model.Time)
}

func (e Extension) UpdatedAt() (time.Time, error) {
	return model.Get(e.Raw(), "updatedAt", model.Time)
}

type ExtensionBuilder struct {
	b *model.Builder
}

func NewExtensionBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of e, unknown properties included.
func (e Extension) ToBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{b: model.BuilderFrom(e.Raw())}
}

func (b *ExtensionBuilder) ID(v string) *ExtensionBuilder {
	model.Set(b.b, "id", model.String, v)
	return b
}

func (b *ExtensionBuilder) FileName(v string) *ExtensionBuilder {
	model.Set(b.b, "fileName", model.String, v)
	return b
}

func (b *ExtensionBuilder) ProjectID(v string) *ExtensionBuilder {
	model.Set(b.b, "projectId", model.String, v)
	return b
}

func (b *ExtensionBuilder) CreatedAt(v time.Time) *ExtensionBuilder {
	model.Set(b.b, "createdAt", model.Time, v)
	return b
}

func (b *ExtensionBuilder) UpdatedAt(v time.Time) *ExtensionBuilder {
	model.Set(b.b, "updatedAt", model.Time, v)
	return b
}

// Extra sets a property Extension does not declare.
func (b *ExtensionBuilder) Extra(key string, v rawjson.Value) *ExtensionBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ExtensionBuilder) Build() (Extension, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return Extension{}, err
	}
	return ExtensionFromRaw(raw), nil
}

// ExtensionRef pins an extension to a version.
type ExtensionRef struct {
	model.Object
}

var extensionRefShape = model.Shape{Name: "ExtensionRef", Fields: []model.Field{
	{Key: "id", Required: true, Type: model.String},
	{Key: "version", Type: model.String},
}}

var extensionRefCodec = model.ModelOf("ExtensionRef", ExtensionRefFromRaw)

// ExtensionRefFromRaw wraps raw without validating it.
func ExtensionRefFromRaw(raw *rawjson.Object) ExtensionRef {
	return ExtensionRef{model.Wrap(raw)}
}

func (r ExtensionRef) Name() string              { return "ExtensionRef" }
func (r ExtensionRef) Schema() []byte            { return schemaOf("ExtensionRef") }
func (r ExtensionRef) Example() []byte           { return exampleOf("ExtensionRef") }
func (r ExtensionRef) Shape() model.Shape        { return extensionRefShape }
func (r ExtensionRef) Validate() error           { return model.ValidateObject(r.Raw(), extensionRefShape) }
func (r ExtensionRef) Equal(o ExtensionRef) bool { return r.Raw().Equal(o.Raw()) }

func (r ExtensionRef) ID() (string, error) {
	return model.Get(r.Raw(), "id", model.String)
}

func (r ExtensionRef) Version() (model.Optional[string], error) {
	return model.GetOptional(r.Raw(), "version", model.String)
}

type ExtensionRefBuilder struct {
	b *model.Builder
}

func NewExtensionRefBuilder() *ExtensionRefBuilder {
	return &ExtensionRefBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of r, unknown properties included.
func (r ExtensionRef) ToBuilder() *ExtensionRefBuilder {
	return &ExtensionRefBuilder{b: model.BuilderFrom(r.Raw())}
}

func (b *ExtensionRefBuilder) ID(v string) *ExtensionRefBuilder {
	model.Set(b.b, "id", model.String, v)
	return b
}

func (b *ExtensionRefBuilder) Version(v model.Optional[string]) *ExtensionRefBuilder {
	model.SetOptional(b.b, "version", model.String, v)
	return b
}

// Extra sets a property ExtensionRef does not declare.
func (b *ExtensionRefBuilder) Extra(key string, v rawjson.Value) *ExtensionRefBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ExtensionRefBuilder) Build() (ExtensionRef, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return ExtensionRef{}, err
	}
	return ExtensionRefFromRaw(raw), nil
}
