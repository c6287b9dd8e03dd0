package browserkit

import (
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

// SessionCreateParams is the body of Sessions.Create.
type SessionCreateParams struct {
	model.Object
}

var sessionCreateParamsShape = model.Shape{Name: "SessionCreateParams", Fields: []model.Field{
	{Key: "projectId", Required: true, Type: model.String},
	{Key: "browserSettings", Type: browserSettingsCodec},
	{Key: "extensionId", Type: extensionSourceCodec},
	{Key: "keepAlive", Type: model.Bool},
	{Key: "proxies", Type: proxiesCodec},
	{Key: "region", Type: regionCodec},
	{Key: "timeout", Type: model.Int},
	{Key: "userMetadata", Type: metadataCodec},
}}

var sessionCreateParamsCodec = model.ModelOf("SessionCreateParams", SessionCreateParamsFromRaw)

// SessionCreateParamsFromRaw wraps raw without validating it.
func SessionCreateParamsFromRaw(raw *rawjson.Object) SessionCreateParams {
	return SessionCreateParams{model.Wrap(raw)}
}

func (p SessionCreateParams) Name() string       { return "SessionCreateParams" }
func (p SessionCreateParams) Schema() []byte     { return schemaOf("SessionCreateParams") }
func (p SessionCreateParams) Example() []byte    { return exampleOf("SessionCreateParams") }
func (p SessionCreateParams) Shape() model.Shape { return sessionCreateParamsShape }
func (p SessionCreateParams) Validate() error {
	return model.ValidateObject(p.Raw(), sessionCreateParamsShape)
}
func (p SessionCreateParams) Equal(o SessionCreateParams) bool { return p.Raw().Equal(o.Raw()) }

func (p SessionCreateParams) ProjectID() (string, error) {
	return model.Get(p.Raw(), "projectId", model.String)
}

func (p SessionCreateParams) BrowserSettings() (model.Optional[BrowserSettings], error) {
	return model.GetOptional(p.Raw(), "browserSettings", browserSettingsCodec)
}

// ExtensionID selects an uploaded extension, either by id or by id and version.
func (p SessionCreateParams) ExtensionID() (model.Optional[ExtensionSource], error) {
	return model.GetOptional(p.Raw(), "extensionId", extensionSourceCodec)
}

func (p SessionCreateParams) KeepAlive() (model.Optional[bool], error) {
	return model.GetOptional(p.Raw(), "keepAlive", model.Bool)
}

func (p SessionCreateParams) Proxies() (model.Optional[Proxies], error) {
	return model.GetOptional(p.Raw(), "proxies", proxiesCodec)
}

func (p SessionCreateParams) Region() (model.Optional[RegionEnum], error) {
	return model.GetOptional(p.Raw(), "region", regionCodec)
}

// Timeout is the session duration in seconds.
func (p SessionCreateParams) Timeout() (model.Optional[int64], error) {
	return model.GetOptional(p.Raw(), "timeout", model.Int)
}

func (p SessionCreateParams) UserMetadata() (model.Optional[map[string]rawjson.Value], error) {
	return model.GetOptional(p.Raw(), "userMetadata", metadataCodec)
}

type SessionCreateParamsBuilder struct {
	b *model.Builder
}

func NewSessionCreateParamsBuilder() *SessionCreateParamsBuilder {
	return &SessionCreateParamsBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of p, unknown properties included.
func (p SessionCreateParams) ToBuilder() *SessionCreateParamsBuilder {
	return &SessionCreateParamsBuilder{b: model.BuilderFrom(p.Raw())}
}

func (b *SessionCreateParamsBuilder) ProjectID(v string) *SessionCreateParamsBuilder {
	model.Set(b.b, "projectId", model.String, v)
	return b
}

func (b *SessionCreateParamsBuilder) BrowserSettings(v model.Optional[BrowserSettings]) *SessionCreateParamsBuilder {
	model.SetOptional(b.b, "browserSettings", browserSettingsCodec, v)
	return b
}

func (b *SessionCreateParamsBuilder) ExtensionID(v model.Optional[ExtensionSource]) *SessionCreateParamsBuilder {
	model.SetOptional(b.b, "extensionId", extensionSourceCodec, v)
	return b
}

func (b *SessionCreateParamsBuilder) KeepAlive(v model.Optional[bool]) *SessionCreateParamsBuilder {
	model.SetOptional(b.b, "keepAlive", model.Bool, v)
	return b
}

func (b *SessionCreateParamsBuilder) Proxies(v model.Optional[Proxies]) *SessionCreateParamsBuilder {
	model.SetOptional(b.b, "proxies", proxiesCodec, v)
	return b
}

func (b *SessionCreateParamsBuilder) Region(v model.Optional[RegionEnum]) *SessionCreateParamsBuilder {
	model.SetOptional(b.b, "region", regionCodec, v)
	return b
}

func (b *SessionCreateParamsBuilder) Timeout(v model.Optional[int64]) *SessionCreateParamsBuilder {
	model.SetOptional(b.b, "timeout", model.Int, v)
	return b
}

func (b *SessionCreateParamsBuilder) UserMetadata(v model.Optional[map[string]rawjson.Value]) *SessionCreateParamsBuilder {
	model.SetOptional(b.b, "userMetadata", metadataCodec, v)
	return b
}

// Extra sets a property SessionCreateParams does not declare.
func (b *SessionCreateParamsBuilder) Extra(key string, v rawjson.Value) *SessionCreateParamsBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionCreateParamsBuilder) Build() (SessionCreateParams, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionCreateParams{}, err
	}
	return SessionCreateParamsFromRaw(raw), nil
}

type BrowserSettings struct {
	model.Object
}

var browserSettingsShape = model.Shape{Name: "BrowserSettings", Fields: []model.Field{
	{Key: "advancedStealth", Type: model.Bool},
	{Key: "blockAds", Type: model.Bool},
	{Key: "context", Type: browserSettingsContextCodec},
	{Key: "extensionId", Type: model.String},
	{Key: "fingerprint", Type: fingerprintCodec},
	{Key: "logSession", Type: model.Bool},
	{Key: "recordSession", Type: model.Bool},
	{Key: "solveCaptchas", Type: model.Bool},
	{Key: "viewport", Type: viewportCodec},
}}

var browserSettingsCodec = model.ModelOf("BrowserSettings", BrowserSettingsFromRaw)

// BrowserSettingsFromRaw wraps raw without validating it.
func BrowserSettingsFromRaw(raw *rawjson.Object) BrowserSettings {
	return BrowserSettings{model.Wrap(raw)}
}

func (s BrowserSettings) Name() string                 { return "BrowserSettings" }
func (s BrowserSettings) Schema() []byte               { return schemaOf("BrowserSettings") }
func (s BrowserSettings) Example() []byte              { return exampleOf("BrowserSettings") }
func (s BrowserSettings) Shape() model.Shape           { return browserSettingsShape }
func (s BrowserSettings) Validate() error              { return model.ValidateObject(s.Raw(), browserSettingsShape) }
func (s BrowserSettings) Equal(o BrowserSettings) bool { return s.Raw().Equal(o.Raw()) }

func (s BrowserSettings) AdvancedStealth() (model.Optional[bool], error) {
	return model.GetOptional(s.Raw(), "advancedStealth", model.Bool)
}

func (s BrowserSettings) BlockAds() (model.Optional[bool], error) {
	return model.GetOptional(s.Raw(), "blockAds", model.Bool)
}

func (s BrowserSettings) Context() (model.Optional[BrowserSettingsContext], error) {
	return model.GetOptional(s.Raw(), "context", browserSettingsContextCodec)
}

func (s BrowserSettings) ExtensionID() (model.Optional[string], error) {
	return model.GetOptional(s.Raw(), "extensionId", model.String)
}

func (s BrowserSettings) Fingerprint() (model.Optional[Fingerprint], error) {
	return model.GetOptional(s.Raw(), "fingerprint", fingerprintCodec)
}

func (s BrowserSettings) LogSession() (model.Optional[bool], error) {
	return model.GetOptional(s.Raw(), "logSession", model.Bool)
}

func (s BrowserSettings) RecordSession() (model.Optional[bool], error) {
	return model.GetOptional(s.Raw(), "recordSession", model.Bool)
}

func (s BrowserSettings) SolveCaptchas() (model.Optional[bool], error) {
	return model.GetOptional(s.Raw(), "solveCaptchas", model.Bool)
}

func (s BrowserSettings) Viewport() (model.Optional[Viewport], error) {
	return model.GetOptional(s.Raw(), "viewport", viewportCodec)
}

type BrowserSettingsBuilder struct {
	b *model.Builder
}

func NewBrowserSettingsBuilder() *BrowserSettingsBuilder {
	return &BrowserSettingsBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of s, unknown properties included.
func (s BrowserSettings) ToBuilder() *BrowserSettingsBuilder {
	return &BrowserSettingsBuilder{b: model.BuilderFrom(s.Raw())}
}

func (b *BrowserSettingsBuilder) AdvancedStealth(v model.Optional[bool]) *BrowserSettingsBuilder {
	model.SetOptional(b.b, "advancedStealth", model.Bool, v)
	return b
}

func (b *BrowserSettingsBuilder) BlockAds(v model.Optional[bool]) *BrowserSettingsBuilder {
	model.SetOptional(b.b, "blockAds", model.Bool, v)
	return b
}

func (b *BrowserSettingsBuilder) Context(v model.Optional[BrowserSettingsContext]) *BrowserSettingsBuilder {
	model.SetOptional(b.b, "context", browserSettingsContextCodec, v)
	return b
}

func (b *BrowserSettingsBuilder) ExtensionID(v model.Optional[string]) *BrowserSettingsBuilder {
	model.SetOptional(b.b, "extensionId", model.String, v)
	return b
}

func (b *BrowserSettingsBuilder) Fingerprint(v model.Optional[Fingerprint]) *BrowserSettingsBuilder {
	model.SetOptional(b.b, "fingerprint", fingerprintCodec, v)
	return b
}

func (b *BrowserSettingsBuilder) LogSession(v model.Optional[bool]) *BrowserSettingsBuilder {
	model.SetOptional(b.b, "logSession", model.Bool, v)
	return b
}

func (b *BrowserSettingsBuilder) RecordSession(v model.Optional[bool]) *BrowserSettingsBuilder {
	model.SetOptional(b.b, "recordSession", model.Bool, v)
	return b
}

func (b *BrowserSettingsBuilder) SolveCaptchas(v model.Optional[bool]) *BrowserSettingsBuilder {
	model.SetOptional(b.b, "solveCaptchas", model.Bool, v)
	return b
}

func (b *BrowserSettingsBuilder) Viewport(v model.Optional[Viewport]) *BrowserSettingsBuilder {
	model.SetOptional(b.b, "viewport", viewportCodec, v)
	return b
}

// Extra sets a property BrowserSettings does not declare.
func (b *BrowserSettingsBuilder) Extra(key string, v rawjson.Value) *BrowserSettingsBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *BrowserSettingsBuilder) Build() (BrowserSettings, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return BrowserSettings{}, err
	}
	return BrowserSettingsFromRaw(raw), nil
}

type BrowserSettingsContext struct {
	model.Object
}

var browserSettingsContextShape = model.Shape{Name: "BrowserSettingsContext", Fields: []model.Field{
	{Key: "id", Required: true, Type: model.String},
	{Key: "persist", Type: model.Bool},
}}

var browserSettingsContextCodec = model.ModelOf("BrowserSettingsContext", BrowserSettingsContextFromRaw)

// BrowserSettingsContextFromRaw wraps raw without validating it.
func BrowserSettingsContextFromRaw(raw *rawjson.Object) BrowserSettingsContext {
	return BrowserSettingsContext{model.Wrap(raw)}
}

func (c BrowserSettingsContext) Name() string       { return "BrowserSettingsContext" }
func (c BrowserSettingsContext) Schema() []byte     { return schemaOf("BrowserSettingsContext") }
func (c BrowserSettingsContext) Example() []byte    { return exampleOf("BrowserSettingsContext") }
func (c BrowserSettingsContext) Shape() model.Shape { return browserSettingsContextShape }
func (c BrowserSettingsContext) Validate() error {
	return model.ValidateObject(c.Raw(), browserSettingsContextShape)
}
func (c BrowserSettingsContext) Equal(o BrowserSettingsContext) bool { return c.Raw().Equal(o.Raw()) }

func (c BrowserSettingsContext) ID() (string, error) {
	return model.Get(c.Raw(), "id", model.String)
}

// Persist saves changes made during the session back to the context.
func (c BrowserSettingsContext) Persist() (model.Optional[bool], error) {
	return model.GetOptional(c.Raw(), "persist", model.Bool)
}

type BrowserSettingsContextBuilder struct {
	b *model.Builder
}

func NewBrowserSettingsContextBuilder() *BrowserSettingsContextBuilder {
	return &BrowserSettingsContextBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of c, unknown properties included.
func (c BrowserSettingsContext) ToBuilder() *BrowserSettingsContextBuilder {
	return &BrowserSettingsContextBuilder{b: model.BuilderFrom(c.Raw())}
}

func (b *BrowserSettingsContextBuilder) ID(v string) *BrowserSettingsContextBuilder {
	model.Set(b.b, "id", model.String, v)
	return b
}

func (b *BrowserSettingsContextBuilder) Persist(v model.Optional[bool]) *BrowserSettingsContextBuilder {
	model.SetOptional(b.b, "persist", model.Bool, v)
	return b
}

// Extra sets a property BrowserSettingsContext does not declare.
func (b *BrowserSettingsContextBuilder) Extra(key string, v rawjson.Value) *BrowserSettingsContextBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *BrowserSettingsContextBuilder) Build() (BrowserSettingsContext, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return BrowserSettingsContext{}, err
	}
	return BrowserSettingsContextFromRaw(raw), nil
}

type Fingerprint struct {
	model.Object
}

var fingerprintShape = model.Shape{Name: "Fingerprint", Fields: []model.Field{
	{Key: "browsers", Type: model.ArrayOf(browserCodec)},
	{Key: "devices", Type: model.ArrayOf(deviceCodec)},
	{Key: "httpVersion", Type: model.String},
	{Key: "locales", Type: model.ArrayOf(model.String)},
	{Key: "operatingSystems", Type: model.ArrayOf(operatingSystemCodec)},
	{Key: "screen", Type: fingerprintScreenCodec},
}}

var fingerprintCodec = model.ModelOf("Fingerprint", FingerprintFromRaw)

// FingerprintFromRaw wraps raw without validating it.
func FingerprintFromRaw(raw *rawjson.Object) Fingerprint {
	return Fingerprint{model.Wrap(raw)}
}

func (f Fingerprint) Name() string             { return "Fingerprint" }
func (f Fingerprint) Schema() []byte           { return schemaOf("Fingerprint") }
func (f Fingerprint) Example() []byte          { return exampleOf("Fingerprint") }
func (f Fingerprint) Shape() model.Shape       { return fingerprintShape }
func (f Fingerprint) Validate() error          { return model.ValidateObject(f.Raw(), fingerprintShape) }
func (f Fingerprint) Equal(o Fingerprint) bool { return f.Raw().Equal(o.Raw()) }

func (f Fingerprint) Browsers() (model.Optional[[]BrowserEnum], error) {
	return model.GetOptional(f.Raw(), "browsers", model.ArrayOf(browserCodec))
}

func (f Fingerprint) Devices() (model.Optional[[]DeviceEnum], error) {
	return model.GetOptional(f.Raw(), "devices", model.ArrayOf(deviceCodec))
}

func (f Fingerprint) HTTPVersion() (model.Optional[string], error) {
	return model.GetOptional(f.Raw(), "httpVersion", model.String)
}

func (f Fingerprint) Locales() (model.Optional[[]string], error) {
	return model.GetOptional(f.Raw(), "locales", model.ArrayOf(model.String))
}

func (f Fingerprint) OperatingSystems() (model.Optional[[]OperatingSystemEnum], error) {
	return model.GetOptional(f.Raw(), "operatingSystems", model.ArrayOf(operatingSystemCodec))
}

func (f Fingerprint) Screen() (model.Optional[FingerprintScreen], error) {
	return model.GetOptional(f.Raw(), "screen", fingerprintScreenCodec)
}

type FingerprintBuilder struct {
	b *model.Builder
}

func NewFingerprintBuilder() *FingerprintBuilder {
	return &FingerprintBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of f, unknown properties included.
func (f Fingerprint) ToBuilder() *FingerprintBuilder {
	return &FingerprintBuilder{b: model.BuilderFrom(f.Raw())}
}

func (b *FingerprintBuilder) Browsers(v model.Optional[[]BrowserEnum]) *FingerprintBuilder {
	model.SetOptional(b.b, "browsers", model.ArrayOf(browserCodec), v)
	return b
}

func (b *FingerprintBuilder) Devices(v model.Optional[[]DeviceEnum]) *FingerprintBuilder {
	model.SetOptional(b.b, "devices", model.ArrayOf(deviceCodec), v)
	return b
}

func (b *FingerprintBuilder) HTTPVersion(v model.Optional[string]) *FingerprintBuilder {
	model.SetOptional(b.b, "httpVersion", model.String, v)
	return b
}

func (b *FingerprintBuilder) Locales(v model.Optional[[]string]) *FingerprintBuilder {
	model.SetOptional(b.b, "locales", model.ArrayOf(model.String), v)
	return b
}

func (b *FingerprintBuilder) OperatingSystems(v model.Optional[[]OperatingSystemEnum]) *FingerprintBuilder {
	model.SetOptional(b.b, "operatingSystems", model.ArrayOf(operatingSystemCodec), v)
	return b
}

func (b *FingerprintBuilder) Screen(v model.Optional[FingerprintScreen]) *FingerprintBuilder {
	model.SetOptional(b.b, "screen", fingerprintScreenCodec, v)
	return b
}

// Extra sets a property Fingerprint does not declare.
func (b *FingerprintBuilder) Extra(key string, v rawjson.Value) *FingerprintBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *FingerprintBuilder) Build() (Fingerprint, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return Fingerprint{}, err
	}
	return FingerprintFromRaw(raw), nil
}

type FingerprintScreen struct {
	model.Object
}

var fingerprintScreenShape = model.Shape{Name: "FingerprintScreen", Fields: []model.Field{
	{Key: "maxHeight", Type: model.Int},
	{Key: "maxWidth", Type: model.Int},
	{Key: "minHeight", Type: model.Int},
	{Key: "minWidth", Type: model.Int},
}}

var fingerprintScreenCodec = model.ModelOf("FingerprintScreen", FingerprintScreenFromRaw)

// FingerprintScreenFromRaw wraps raw without validating it.
func FingerprintScreenFromRaw(raw *rawjson.Object) FingerprintScreen {
	return FingerprintScreen{model.Wrap(raw)}
}

func (s FingerprintScreen) Name() string       { return "FingerprintScreen" }
func (s FingerprintScreen) Schema() []byte     { return schemaOf("FingerprintScreen") }
func (s FingerprintScreen) Example() []byte    { return exampleOf("FingerprintScreen") }
func (s FingerprintScreen) Shape() model.Shape { return fingerprintScreenShape }
func (s FingerprintScreen) Validate() error {
	return model.ValidateObject(s.Raw(), fingerprintScreenShape)
}
func (s FingerprintScreen) Equal(o FingerprintScreen) bool { return s.Raw().Equal(o.Raw()) }

func (s FingerprintScreen) MaxHeight() (model.Optional[int64], error) {
	return model.GetOptional(s.Raw(), "maxHeight", model.Int)
}

func (s FingerprintScreen) MaxWidth() (model.Optional[int64], error) {
	return model.GetOptional(s.Raw(), "maxWidth", model.Int)
}

func (s FingerprintScreen) MinHeight() (model.Optional[int64], error) {
	return model.GetOptional(s.Raw(), "minHeight", model.Int)
}

func (s FingerprintScreen) MinWidth() (model.Optional[int64], error) {
	return model.GetOptional(s.Raw(), "minWidth", model.Int)
}

type FingerprintScreenBuilder struct {
	b *model.Builder
}

func NewFingerprintScreenBuilder() *FingerprintScreenBuilder {
	return &FingerprintScreenBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of s, unknown properties included.
func (s FingerprintScreen) ToBuilder() *FingerprintScreenBuilder {
	return &FingerprintScreenBuilder{b: model.BuilderFrom(s.Raw())}
}

func (b *FingerprintScreenBuilder) MaxHeight(v model.Optional[int64]) *FingerprintScreenBuilder {
	model.SetOptional(b.b, "maxHeight", model.Int, v)
	return b
}

func (b *FingerprintScreenBuilder) MaxWidth(v model.Optional[int64]) *FingerprintScreenBuilder {
	model.SetOptional(b.b, "maxWidth", model.Int, v)
	return b
}

func (b *FingerprintScreenBuilder) MinHeight(v model.Optional[int64]) *FingerprintScreenBuilder {
	model.SetOptional(b.b, "minHeight", model.Int, v)
	return b
}

func (b *FingerprintScreenBuilder) MinWidth(v model.Optional[int64]) *FingerprintScreenBuilder {
	model.SetOptional(b.b, "minWidth", model.Int, v)
	return b
}

// Extra sets a property FingerprintScreen does not declare.
func (b *FingerprintScreenBuilder) Extra(key string, v rawjson.Value) *FingerprintScreenBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *FingerprintScreenBuilder) Build() (FingerprintScreen, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return FingerprintScreen{}, err
	}
	return FingerprintScreenFromRaw(raw), nil
}

type Viewport struct {
	model.Object
}

var viewportShape = model.Shape{Name: "Viewport", Fields: []model.Field{
	{Key: "height", Type: model.Int},
	{Key: "width", Type: model.Int},
}}

var viewportCodec = model.ModelOf("Viewport", ViewportFromRaw)

// ViewportFromRaw wraps raw without validating it.
func ViewportFromRaw(raw *rawjson.Object) Viewport {
	return Viewport{model.Wrap(raw)}
}

func (v Viewport) Name() string          { return "Viewport" }
func (v Viewport) Schema() []byte        { return schemaOf("Viewport") }
func (v Viewport) Example() []byte       { return exampleOf("Viewport") }
func (v Viewport) Shape() model.Shape    { return viewportShape }
func (v Viewport) Validate() error       { return model.ValidateObject(v.Raw(), viewportShape) }
func (v Viewport) Equal(o Viewport) bool { return v.Raw().Equal(o.Raw()) }

func (v Viewport) Height() (model.Optional[int64], error) {
	return model.GetOptional(v.Raw(), "height", model.Int)
}

func (v Viewport) Width() (model.Optional[int64], error) {
	return model.GetOptional(v.Raw(), "width", model.Int)
}

type ViewportBuilder struct {
	b *model.Builder
}

func NewViewportBuilder() *ViewportBuilder {
	return &ViewportBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of v, unknown properties included.
func (v Viewport) ToBuilder() *ViewportBuilder {
	return &ViewportBuilder{b: model.BuilderFrom(v.Raw())}
}

func (b *ViewportBuilder) Height(v model.Optional[int64]) *ViewportBuilder {
	model.SetOptional(b.b, "height", model.Int, v)
	return b
}

func (b *ViewportBuilder) Width(v model.Optional[int64]) *ViewportBuilder {
	model.SetOptional(b.b, "width", model.Int, v)
	return b
}

// Extra sets a property Viewport does not declare.
func (b *ViewportBuilder) Extra(key string, v rawjson.Value) *ViewportBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *ViewportBuilder) Build() (Viewport, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return Viewport{}, err
	}
	return ViewportFromRaw(raw), nil
}

// SessionUpdateParams is the body of Sessions.Update.
type SessionUpdateParams struct {
	model.Object
}

var sessionUpdateParamsShape = model.Shape{Name: "SessionUpdateParams", Fields: []model.Field{
	{Key: "projectId", Required: true, Type: model.String},
	{Key: "status", Required: true, Type: sessionUpdateStatusCodec},
}}

var sessionUpdateParamsCodec = model.ModelOf("SessionUpdateParams", SessionUpdateParamsFromRaw)

// SessionUpdateParamsFromRaw wraps raw without validating it.
func SessionUpdateParamsFromRaw(raw *rawjson.Object) SessionUpdateParams {
	return SessionUpdateParams{model.Wrap(raw)}
}

func (p SessionUpdateParams) Name() string       { return "SessionUpdateParams" }
func (p SessionUpdateParams) Schema() []byte     { return schemaOf("SessionUpdateParams") }
func (p SessionUpdateParams) Example() []byte    { return exampleOf("SessionUpdateParams") }
func (p SessionUpdateParams) Shape() model.Shape { return sessionUpdateParamsShape }
func (p SessionUpdateParams) Validate() error {
	return model.ValidateObject(p.Raw(), sessionUpdateParamsShape)
}
func (p SessionUpdateParams) Equal(o SessionUpdateParams) bool { return p.Raw().Equal(o.Raw()) }

func (p SessionUpdateParams) ProjectID() (string, error) {
	return model.Get(p.Raw(), "projectId", model.String)
}

func (p SessionUpdateParams) Status() (SessionUpdateStatusEnum, error) {
	return model.Get(p.Raw(), "status", sessionUpdateStatusCodec)
}

type SessionUpdateParamsBuilder struct {
	b *model.Builder
}

func NewSessionUpdateParamsBuilder() *SessionUpdateParamsBuilder {
	return &SessionUpdateParamsBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of p, unknown properties included.
func (p SessionUpdateParams) ToBuilder() *SessionUpdateParamsBuilder {
	return &SessionUpdateParamsBuilder{b: model.BuilderFrom(p.Raw())}
}

func (b *SessionUpdateParamsBuilder) ProjectID(v string) *SessionUpdateParamsBuilder {
	model.Set(b.b, "projectId", model.String, v)
	return b
}

func (b *SessionUpdateParamsBuilder) Status(v SessionUpdateStatusEnum) *SessionUpdateParamsBuilder {
	model.Set(b.b, "status", sessionUpdateStatusCodec, v)
	return b
}

// Extra sets a property SessionUpdateParams does not declare.
func (b *SessionUpdateParamsBuilder) Extra(key string, v rawjson.Value) *SessionUpdateParamsBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionUpdateParamsBuilder) Build() (SessionUpdateParams, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionUpdateParams{}, err
	}
	return SessionUpdateParamsFromRaw(raw), nil
}

// SessionListParams filters Sessions.List. Its properties are sent as query parameters.
type SessionListParams struct {
	model.Object
}

var sessionListParamsShape = model.Shape{Name: "SessionListParams", Fields: []model.Field{
	{Key: "status", Type: sessionStatusCodec},
	{Key: "q", Type: model.String},
}}

var sessionListParamsCodec = model.ModelOf("SessionListParams", SessionListParamsFromRaw)

// SessionListParamsFromRaw wraps raw without validating it.
func SessionListParamsFromRaw(raw *rawjson.Object) SessionListParams {
	return SessionListParams{model.Wrap(raw)}
}

func (p SessionListParams) Name() string       { return "SessionListParams" }
func (p SessionListParams) Schema() []byte     { return schemaOf("SessionListParams") }
func (p SessionListParams) Example() []byte    { return exampleOf("SessionListParams") }
func (p SessionListParams) Shape() model.Shape { return sessionListParamsShape }
func (p SessionListParams) Validate() error {
	return model.ValidateObject(p.Raw(), sessionListParamsShape)
}
func (p SessionListParams) Equal(o SessionListParams) bool { return p.Raw().Equal(o.Raw()) }

func (p SessionListParams) Status() (model.Optional[SessionStatusEnum], error) {
	return model.GetOptional(p.Raw(), "status", sessionStatusCodec)
}

// Q is a metadata query.
func (p SessionListParams) Q() (model.Optional[string], error) {
	return model.GetOptional(p.Raw(), "q", model.String)
}

type SessionListParamsBuilder struct {
	b *model.Builder
}

func NewSessionListParamsBuilder() *SessionListParamsBuilder {
	return &SessionListParamsBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of p, unknown properties included.
func (p SessionListParams) ToBuilder() *SessionListParamsBuilder {
	return &SessionListParamsBuilder{b: model.BuilderFrom(p.Raw())}
}

func (b *SessionListParamsBuilder) Status(v model.Optional[SessionStatusEnum]) *SessionListParamsBuilder {
	model.SetOptional(b.b, "status", sessionStatusCodec, v)
	return b
}

func (b *SessionListParamsBuilder) Q(v model.Optional[string]) *SessionListParamsBuilder {
	model.SetOptional(b.b, "q", model.String, v)
	return b
}

// Extra sets a property SessionListParams does not declare.
func (b *SessionListParamsBuilder) Extra(key string, v rawjson.Value) *SessionListParamsBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionListParamsBuilder) Build() (SessionListParams, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionListParams{}, err
	}
	return SessionListParamsFromRaw(raw), nil
}
