package browserkit

import (
	"time"

	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

// Context is a persisted browser profile that sessions can reuse.
type Context struct {
	model.Object
}

var contextShape = model.Shape{Name: "Context", Fields: []model.Field{
	{Key: "id", Required: true, Type: model.String},
	{Key: "createdAt", Required: true, Type: model.Time},
	{Key: "updatedAt", Required: true, Type: model.Time},
	{Key: "projectId", Required: true, Type: model.String},
}}

var contextCodec = model.ModelOf("Context", ContextFromRaw)

// ContextFromRaw wraps raw without validating it.
func ContextFromRaw(raw *rawjson.Object) Context {
	return Context{model.Wrap(raw)}
}

func (c Context) Name() string         { return "Context" }
func (c Context) Schema() []byte       { return schemaOf("Context") }
func (c Context) Example() []byte      { return exampleOf("Context") }
func (c Context) Shape() model.Shape   { return contextShape }
func (c Context) Validate() error      { return model.ValidateObject(c.Raw(), contextShape) }
func (c Context) Equal(o Context) bool { return c.Raw().Equal(o.Raw()) }

func (c Context) ID() (string, error) {
	return model.Get(c.Raw(), "id", model.String)
}

func (c Context) CreatedAt() (time.Time, error) {
	return model.Get(c.Raw(), "createdAt", model.Time)
}

func (c Context) UpdatedAt() (time.Time, error) {
	return model.Get(c.Raw(), "updatedAt", model.Time)
}

func (c Context) ProjectID() (string, error) {
	return model.Get(c.Raw(), "projectId", model.String)
}

type ContextBuilder struct {
	b *model.Builder
}

func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of c, unknown properties included.
func (c Context) ToBuilder() *ContextBuilder {
	return &ContextBuilder{b: model.BuilderFrom(c.Raw())}
}

func (b *ContextBuilder) ID(v string) *ContextBuilder {
	model.Set(b.b, "id", model.String, v)
	return b
}

func (b *ContextBuilder) CreatedAt(v time.Time) *ContextBuilder {
	model.Set(b.b, "createdAt", model.Time, v)
	return b
}

func (b *ContextBuilder) UpdatedAt(v time.Time) *ContextBuilder {
	model.Set(b.b, "updatedAt", model.Time, v)
	return b
}

func (b *ContextBuilder) ProjectID(v string) *ContextBuilder {
	model.Set(b.b, "projectId", model.String, v)
	return b
}

// Extra sets a property Context does not declare.
func (b *ContextBuilder) Extra(key string, v rawjson.Value) *ContextBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ContextBuilder) Build() (Context, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return Context{}, err
	}
	return ContextFromRaw(raw), nil
}

// ContextCreateResponse carries the upload target for a context's encrypted user data directory.
type ContextCreateResponse struct {
	model.Object
}

var contextCreateResponseShape = model.Shape{Name: "ContextCreateResponse", Fields: []model.Field{
	{Key: "id", Required: true, Type: model.String},
	{Key: "uploadUrl", Required: true, Type: model.String},
	{Key: "publicKey", Required: true, Type: model.String},
	{Key: "cipherAlgorithm", Required: true, Type: model.String},
	{Key: "initializationVectorSize", Required: true, Type: model.Int},
}}

var contextCreateResponseCodec = model.ModelOf("ContextCreateResponse", ContextCreateResponseFromRaw)

// ContextCreateResponseFromRaw wraps raw without validating it.
func ContextCreateResponseFromRaw(raw *rawjson.Object) ContextCreateResponse {
	return ContextCreateResponse{model.Wrap(raw)}
}

func (r ContextCreateResponse) Name() string       { return "ContextCreateResponse" }
func (r ContextCreateResponse) Schema() []byte     { return schemaOf("ContextCreateResponse") }
func (r ContextCreateResponse) Example() []byte    { return exampleOf("ContextCreateResponse") }
func (r ContextCreateResponse) Shape() model.Shape { return contextCreateResponseShape }
func (r ContextCreateResponse) Validate() error {
	return model.ValidateObject(r.Raw(), contextCreateResponseShape)
}
func (r ContextCreateResponse) Equal(o ContextCreateResponse) bool { return r.Raw().Equal(o.Raw()) }

func (r ContextCreateResponse) ID() (string, error) {
	return model.Get(r.Raw(), "id", model.String)
}

func (r ContextCreateResponse) UploadURL() (string, error) {
	return model.Get(r.Raw(), "uploadUrl", model.String)
}

func (r ContextCreateResponse) PublicKey() (string, error) {
	return model.Get(r.Raw(), "publicKey", model.String)
}

func (r ContextCreateResponse) CipherAlgorithm() (string, error) {
	return model.Get(r.Raw(), "cipherAlgorithm", model.String)
}

func (r ContextCreateResponse) InitializationVectorSize() (int64, error) {
	return model.Get(r.Raw(), "initializationVectorSize", model.Int)
}

type ContextCreateResponseBuilder struct {
	b *model.Builder
}

func NewContextCreateResponseBuilder() *ContextCreateResponseBuilder {
	return &ContextCreateResponseBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of r, unknown properties included.
func (r ContextCreateResponse) ToBuilder() *ContextCreateResponseBuilder {
	return &ContextCreateResponseBuilder{b: model.BuilderFrom(r.Raw())}
}

func (b *ContextCreateResponseBuilder) ID(v string) *ContextCreateResponseBuilder {
	model.Set(b.b, "id", model.String, v)
	return b
}

func (b *ContextCreateResponseBuilder) UploadURL(v string) *ContextCreateResponseBuilder {
	model.Set(b.b, "uploadUrl", model.String, v)
	return b
}

func (b *ContextCreateResponseBuilder) PublicKey(v string) *ContextCreateResponseBuilder {
	model.Set(b.b, "publicKey", model.String, v)
	return b
}

func (b *ContextCreateResponseBuilder) CipherAlgorithm(v string) *ContextCreateResponseBuilder {
	model.Set(b.b, "cipherAlgorithm", model.String, v)
	return b
}

func (b *ContextCreateResponseBuilder) InitializationVectorSize(v int64) *ContextCreateResponseBuilder {
	model.Set(b.b, "initializationVectorSize", model.Int, v)
	return b
}

// Extra sets a property ContextCreateResponse does not declare.
func (b *ContextCreateResponseBuilder) Extra(key string, v rawjson.Value) *ContextCreateResponseBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ContextCreateResponseBuilder) Build() (ContextCreateResponse, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return ContextCreateResponse{}, err
	}
	return ContextCreateResponseFromRaw(raw), nil
}

type ContextCreateParams struct {
	model.Object
}

var contextCreateParamsShape = model.Shape{Name: "ContextCreateParams", Fields: []model.Field{
	{Key: "projectId", Required: true, Type: model.String},
}}

var contextCreateParamsCodec = model.ModelOf("ContextCreateParams", ContextCreateParamsFromRaw)

// ContextCreateParamsFromRaw wraps raw without validating it.
func ContextCreateParamsFromRaw(raw *rawjson.Object) ContextCreateParams {
	return ContextCreateParams{model.Wrap(raw)}
}

func (p ContextCreateParams) Name() string       { return "ContextCreateParams" }
func (p ContextCreateParams) Schema() []byte     { return schemaOf("ContextCreateParams") }
func (p ContextCreateParams) Example() []byte    { return exampleOf("ContextCreateParams") }
func (p ContextCreateParams) Shape() model.Shape { return contextCreateParamsShape }
func (p ContextCreateParams) Validate() error {
	return model.ValidateObject(p.Raw(), contextCreateParamsShape)
}
func (p ContextCreateParams) Equal(o ContextCreateParams) bool { return p.Raw().Equal(o.Raw()) }

func (p ContextCreateParams) ProjectID() (string, error) {
	return model.Get(p.Raw(), "projectId", model.String)
}

type ContextCreateParamsBuilder struct {
	b *model.Builder
}

func NewContextCreateParamsBuilder() *ContextCreateParamsBuilder {
	return &ContextCreateParamsBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of p, unknown properties included.
func (p ContextCreateParams) ToBuilder() *ContextCreateParamsBuilder {
	return &ContextCreateParamsBuilder{b: model.BuilderFrom(p.Raw())}
}

func (b *ContextCreateParamsBuilder) ProjectID(v string) *ContextCreateParamsBuilder {
	model.Set(b.b, "projectId", model.String, v)
	return b
}

// Extra sets a property ContextCreateParams does not declare.
func (b *ContextCreateParamsBuilder) Extra(key string, v rawjson.Value) *ContextCreateParamsBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ContextCreateParamsBuilder) Build() (ContextCreateParams, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return ContextCreateParams{}, err
	}
	return ContextCreateParamsFromRaw(raw), nil
}
