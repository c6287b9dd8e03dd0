package browserkit

import (
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

type ProxyGeolocation struct {
	model.Object
}

var proxyGeolocationShape = model.Shape{Name: "ProxyGeolocation", Fields: []model.Field{
	{Key: "country", Required: true, Type: model.String},
	{Key: "city", Type: model.String},
	{Key: "state", Type: model.String},
}}

var proxyGeolocationCodec = model.ModelOf("ProxyGeolocation", ProxyGeolocationFromRaw)

// ProxyGeolocationFromRaw wraps raw without validating it.
func ProxyGeolocationFromRaw(raw *rawjson.Object) ProxyGeolocation {
	return ProxyGeolocation{model.Wrap(raw)}
}

func (g ProxyGeolocation) Name() string       { return "ProxyGeolocation" }
func (g ProxyGeolocation) Schema() []byte     { return schemaOf("ProxyGeolocation") }
func (g ProxyGeolocation) Example() []byte    { return exampleOf("ProxyGeolocation") }
func (g ProxyGeolocation) Shape() model.Shape { return proxyGeolocationShape }
func (g ProxyGeolocation) Validate() error {
	return model.ValidateObject(g.Raw(), proxyGeolocationShape)
}
func (g ProxyGeolocation) Equal(o ProxyGeolocation) bool { return g.Raw().Equal(o.Raw()) }

// Country is an ISO 3166-1 alpha-2 code.
func (g ProxyGeolocation) Country() (string, error) {
	return model.Get(g.Raw(), "country", model.String)
}

func (g ProxyGeolocation) City() (model.Optional[string], error) {
	return model.GetOptional(g.Raw(), "city", model.String)
}

func (g ProxyGeolocation) State() (model.Optional[string], error) {
	return model.GetOptional(g.Raw(), "state", model.String)
}

type ProxyGeolocationBuilder struct {
	b *model.Builder
}

func NewProxyGeolocationBuilder() *ProxyGeolocationBuilder {
	return &ProxyGeolocationBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of g, unknown properties included.
func (g ProxyGeolocation) ToBuilder() *ProxyGeolocationBuilder {
	return &ProxyGeolocationBuilder{b: model.BuilderFrom(g.Raw())}
}

func (b *ProxyGeolocationBuilder) Country(v string) *ProxyGeolocationBuilder {
	model.Set(b.b, "country", model.String, v)
	return b
}

func (b *ProxyGeolocationBuilder) City(v model.Optional[string]) *ProxyGeolocationBuilder {
	model.SetOptional(b.b, "city", model.String, v)
	return b
}

func (b *ProxyGeolocationBuilder) State(v model.Optional[string]) *ProxyGeolocationBuilder {
	model.SetOptional(b.b, "state", model.String, v)
	return b
}

// Extra sets a property ProxyGeolocation does not declare.
func (b *ProxyGeolocationBuilder) Extra(key string, v rawjson.Value) *ProxyGeolocationBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ProxyGeolocationBuilder) Build() (ProxyGeolocation, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return ProxyGeolocation{}, err
	}
	return ProxyGeolocationFromRaw(raw), nil
}

// BrowserbaseProxy routes traffic through the built-in proxy pool.
type BrowserbaseProxy struct {
	model.Object
}

var browserbaseProxyType = model.Literal("browserbase")

var browserbaseProxyShape = model.Shape{Name: "BrowserbaseProxy", Fields: []model.Field{
	{Key: "type", Required: true, Type: browserbaseProxyType},
	{Key: "geolocation", Type: proxyGeolocationCodec},
	{Key: "domainPattern", Type: model.String},
}}

var browserbaseProxyCodec = model.ModelOf("BrowserbaseProxy", BrowserbaseProxyFromRaw)

// BrowserbaseProxyFromRaw wraps raw without validating it.
func BrowserbaseProxyFromRaw(raw *rawjson.Object) BrowserbaseProxy {
	return BrowserbaseProxy{model.Wrap(raw)}
}

func (p BrowserbaseProxy) Name() string       { return "BrowserbaseProxy" }
func (p BrowserbaseProxy) Schema() []byte     { return schemaOf("BrowserbaseProxy") }
func (p BrowserbaseProxy) Example() []byte    { return exampleOf("BrowserbaseProxy") }
func (p BrowserbaseProxy) Shape() model.Shape { return browserbaseProxyShape }
func (p BrowserbaseProxy) Validate() error {
	return model.ValidateObject(p.Raw(), browserbaseProxyShape)
}
func (p BrowserbaseProxy) Equal(o BrowserbaseProxy) bool { return p.Raw().Equal(o.Raw()) }

func (p BrowserbaseProxy) Type() (string, error) {
	return model.Get(p.Raw(), "type", browserbaseProxyType)
}

func (p BrowserbaseProxy) Geolocation() (model.Optional[ProxyGeolocation], error) {
	return model.GetOptional(p.Raw(), "geolocation", proxyGeolocationCodec)
}

func (p BrowserbaseProxy) DomainPattern() (model.Optional[string], error) {
	return model.GetOptional(p.Raw(), "domainPattern", model.String)
}

type BrowserbaseProxyBuilder struct {
	b *model.Builder
}

func NewBrowserbaseProxyBuilder() *BrowserbaseProxyBuilder {
	b := model.NewBuilder()
	model.Set(b, "type", browserbaseProxyType, "browserbase")
	return &BrowserbaseProxyBuilder{b: b}
}

// ToBuilder starts a builder from a mutable copy of p, unknown properties included.
func (p BrowserbaseProxy) ToBuilder() *BrowserbaseProxyBuilder {
	return &BrowserbaseProxyBuilder{b: model.BuilderFrom(p.Raw())}
}

func (b *BrowserbaseProxyBuilder) Geolocation(v model.Optional[ProxyGeolocation]) *BrowserbaseProxyBuilder {
	model.SetOptional(b.b, "geolocation", proxyGeolocationCodec, v)
	return b
}

func (b *BrowserbaseProxyBuilder) DomainPattern(v model.Optional[string]) *BrowserbaseProxyBuilder {
	model.SetOptional(b.b, "domainPattern", model.String, v)
	return b
}

// Extra sets a property BrowserbaseProxy does not declare.
func (b *BrowserbaseProxyBuilder) Extra(key string, v rawjson.Value) *BrowserbaseProxyBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *BrowserbaseProxyBuilder) Build() (BrowserbaseProxy, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return BrowserbaseProxy{}, err
	}
	return BrowserbaseProxyFromRaw(raw), nil
}

// ExternalProxy routes traffic through a caller-supplied proxy server.
type ExternalProxy struct {
	model.Object
}

var externalProxyType = model.Literal("external")

var externalProxyShape = model.Shape{Name: "ExternalProxy", Fields: []model.Field{
	{Key: "type", Required: true, Type: externalProxyType},
	{Key: "server", Required: true, Type: model.String},
	{Key: "username", Type: model.String},
	{Key: "password", Type: model.String},
	{Key: "domainPattern", Type: model.String},
}}

var externalProxyCodec = model.ModelOf("ExternalProxy", ExternalProxyFromRaw)

// ExternalProxyFromRaw wraps raw without validating it.
func ExternalProxyFromRaw(raw *rawjson.Object) ExternalProxy {
	return ExternalProxy{model.Wrap(raw)}
}

func (p ExternalProxy) Name() string               { return "ExternalProxy" }
func (p ExternalProxy) Schema() []byte             { return schemaOf("ExternalProxy") }
func (p ExternalProxy) Example() []byte            { return exampleOf("ExternalProxy") }
func (p ExternalProxy) Shape() model.Shape         { return externalProxyShape }
func (p ExternalProxy) Validate() error            { return model.ValidateObject(p.Raw(), externalProxyShape) }
func (p ExternalProxy) Equal(o ExternalProxy) bool { return p.Raw().Equal(o.Raw()) }

func (p ExternalProxy) Type() (string, error) {
	return model.Get(p.Raw(), "type", externalProxyType)
}

func (p ExternalProxy) Server() (string, error) {
	return model.Get(p.Raw(), "server", model.String)
}

func (p ExternalProxy) Username() (model.Optional[string], error) {
	return model.GetOptional(p.Raw(), "username", model.String)
}

func (p ExternalProxy) Password() (model.Optional[string], error) {
	return model.GetOptional(p.Raw(), "password", model.String)
}

func (p ExternalProxy) DomainPattern() (model.Optional[string], error) {
	return model.GetOptional(p.Raw(), "domainPattern", model.String)
}

type ExternalProxyBuilder struct {
	b *model.Builder
}

func NewExternalProxyBuilder() *ExternalProxyBuilder {
	b := model.NewBuilder()
	model.Set(b, "type", externalProxyType, "external")
	return &ExternalProxyBuilder{b: b}
}

// ToBuilder starts a builder from a mutable copy of p, unknown properties included.
func (p ExternalProxy) ToBuilder() *ExternalProxyBuilder {
	return &ExternalProxyBuilder{b: model.BuilderFrom(p.Raw())}
}

func (b *ExternalProxyBuilder) Server(v string) *ExternalProxyBuilder {
	model.Set(b.b, "server", model.String, v)
	return b
}

func (b *ExternalProxyBuilder) Username(v model.Optional[string]) *ExternalProxyBuilder {
	model.SetOptional(b.b, "username", model.String, v)
	return b
}

func (b *ExternalProxyBuilder) Password(v model.Optional[string]) *ExternalProxyBuilder {
	model.SetOptional(b.b, "password", model.String, v)
	return b
}

func (b *ExternalProxyBuilder) DomainPattern(v model.Optional[string]) *ExternalProxyBuilder {
	model.SetOptional(b.b, "domainPattern", model.String, v)
	return b
}

// Extra sets a property ExternalProxy does not declare.
func (b *ExternalProxyBuilder) Extra(key string, v rawjson.Value) *ExternalProxyBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ExternalProxyBuilder) Build() (ExternalProxy, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return ExternalProxy{}, err
	}
	return ExternalProxyFromRaw(raw), nil
}
