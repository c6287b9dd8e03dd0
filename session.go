package browserkit

import (
	"time"

	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

// Session is a remote browser session.
type Session struct {
	model.Object
}

var sessionShape = model.Shape{Name: "Session", Fields: []model.Field{
	{Key: "id", Required: true, Type: model.String},
	{Key: "createdAt", Required: true, Type: model.Time},
	{Key: "updatedAt", Required: true, Type: model.Time},
	{Key: "projectId", Required: true, Type: model.String},
	{Key: "startedAt", Required: true, Type: model.Time},
	{Key: "endedAt", Nullable: true, Type: model.Time},
	{Key: "expiresAt", Nullable: true, Type: model.Time},
	{Key: "status", Required: true, Type: sessionStatusCodec},
	{Key: "proxyBytes", Required: true, Type: model.Int},
	{Key: "keepAlive", Required: true, Type: model.Bool},
	{Key: "region", Required: true, Type: regionCodec},
	{Key: "avgCpuUsage", Type: model.Float},
	{Key: "memoryUsage", Type: model.Int},
	{Key: "connectUrl", Type: model.String},
	{Key: "seleniumRemoteUrl", Type: model.String},
	{Key: "signingKey", Type: model.String},
	{Key: "userMetadata", Type: metadataCodec},
	{Key: "contextId", Nullable: true, Type: model.String},
}}

var sessionCodec = model.ModelOf("Session", SessionFromRaw)

// SessionFromRaw wraps raw without validating it.
func SessionFromRaw(raw *rawjson.Object) Session {
	return Session{model.Wrap(raw)}
}

func (s Session) Name() string         { return "Session" }
func (s Session) Schema() []byte       { return schemaOf("Session") }
func (s Session) Example() []byte      { return exampleOf("Session") }
func (s Session) Shape() model.Shape   { return sessionShape }
func (s Session) Validate() error      { return model.ValidateObject(s.Raw(), sessionShape) }
func (s Session) Equal(o Session) bool { return s.Raw().Equal(o.Raw()) }

func (s Session) ID() (string, error) {
	return model.Get(s.Raw(), "id", model.String)
}

func (s Session) CreatedAt() (time.Time, error) {
	return model.Get(s.Raw(), "createdAt", model.Time)
}

func (s Session) UpdatedAt() (time.Time, error) {
	return model.Get(s.Raw(), "updatedAt", model.Time)
}

func (s Session) ProjectID() (string, error) {
	return model.Get(s.Raw(), "projectId", model.String)
}

func (s Session) StartedAt() (time.Time, error) {
	return model.Get(s.Raw(), "startedAt", model.Time)
}

// EndedAt is null while the session is running.
func (s Session) EndedAt() (model.Nullable[time.Time], error) {
	return model.GetNullable(s.Raw(), "endedAt", model.Time)
}

func (s Session) ExpiresAt() (model.Nullable[time.Time], error) {
	return model.GetNullable(s.Raw(), "expiresAt", model.Time)
}

func (s Session) Status() (SessionStatusEnum, error) {
	return model.Get(s.Raw(), "status", sessionStatusCodec)
}

// ProxyBytes is the number of bytes sent through the session proxy.
func (s Session) ProxyBytes() (int64, error) {
	return model.Get(s.Raw(), "proxyBytes", model.Int)
}

func (s Session) KeepAlive() (bool, error) {
	return model.Get(s.Raw(), "keepAlive", model.Bool)
}

func (s Session) Region() (RegionEnum, error) {
	return model.Get(s.Raw(), "region", regionCodec)
}

func (s Session) AvgCPUUsage() (model.Optional[float64], error) {
	return model.GetOptional(s.Raw(), "avgCpuUsage", model.Float)
}

func (s Session) MemoryUsage() (model.Optional[int64], error) {
	return model.GetOptional(s.Raw(), "memoryUsage", model.Int)
}

// ConnectURL is the WebSocket URL for CDP clients.
func (s Session) ConnectURL() (model.Optional[string], error) {
	return model.GetOptional(s.Raw(), "connectUrl", model.String)
}

func (s Session) SeleniumRemoteURL() (model.Optional[string], error) {
	return model.GetOptional(s.Raw(), "seleniumRemoteUrl", model.String)
}

func (s Session) SigningKey() (model.Optional[string], error) {
	return model.GetOptional(s.Raw(), "signingKey", model.String)
}

func (s Session) UserMetadata() (model.Optional[map[string]rawjson.Value], error) {
	return model.GetOptional(s.Raw(), "userMetadata", metadataCodec)
}

func (s Session) ContextID() (model.Nullable[string], error) {
	return model.GetNullable(s.Raw(), "contextId", model.String)
}

type SessionBuilder struct {
	b *model.Builder
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of s, unknown properties included.
func (s Session) ToBuilder() *SessionBuilder {
	return &SessionBuilder{b: model.BuilderFrom(s.Raw())}
}

func (b *SessionBuilder) ID(v string) *SessionBuilder {
	model.Set(b.b, "id", model.String, v)
	return b
}

func (b *SessionBuilder) CreatedAt(v time.Time) *SessionBuilder {
	model.Set(b.b, "createdAt", model.Time, v)
	return b
}

func (b *SessionBuilder) UpdatedAt(v time.Time) *SessionBuilder {
	model.Set(b.b, "updatedAt", model.Time, v)
	return b
}

func (b *SessionBuilder) ProjectID(v string) *SessionBuilder {
	model.Set(b.b, "projectId", model.String, v)
	return b
}

func (b *SessionBuilder) StartedAt(v time.Time) *SessionBuilder {
	model.Set(b.b, "startedAt", model.Time, v)
	return b
}

func (b *SessionBuilder) EndedAt(v model.Nullable[time.Time]) *SessionBuilder {
	model.SetNullable(b.b, "endedAt", model.Time, v)
	return b
}

func (b *SessionBuilder) ExpiresAt(v model.Nullable[time.Time]) *SessionBuilder {
	model.SetNullable(b.b, "expiresAt", model.Time, v)
	return b
}

func (b *SessionBuilder) Status(v SessionStatusEnum) *SessionBuilder {
	model.Set(b.b, "status", sessionStatusCodec, v)
	return b
}

func (b *SessionBuilder) ProxyBytes(v int64) *SessionBuilder {
	model.Set(b.b, "proxyBytes", model.Int, v)
	return b
}

func (b *SessionBuilder) KeepAlive(v bool) *SessionBuilder {
	model.Set(b.b, "keepAlive", model.Bool, v)
	return b
}

func (b *SessionBuilder) Region(v RegionEnum) *SessionBuilder {
	model.Set(b.b, "region", regionCodec, v)
	return b
}

func (b *SessionBuilder) AvgCPUUsage(v model.Optional[float64]) *SessionBuilder {
	model.SetOptional(b.b, "avgCpuUsage", model.Float, v)
	return b
}

func (b *SessionBuilder) MemoryUsage(v model.Optional[int64]) *SessionBuilder {
	model.SetOptional(b.b, "memoryUsage", model.Int, v)
	return b
}

func (b *SessionBuilder) ConnectURL(v model.Optional[string]) *SessionBuilder {
	model.SetOptional(b.b, "connectUrl", model.String, v)
	return b
}

func (b *SessionBuilder) SeleniumRemoteURL(v model.Optional[string]) *SessionBuilder {
	model.SetOptional(b.b, "seleniumRemoteUrl", model.String, v)
	return b
}

func (b *SessionBuilder) SigningKey(v model.Optional[string]) *SessionBuilder {
	model.SetOptional(b.b, "signingKey", model.String, v)
	return b
}

func (b *SessionBuilder) UserMetadata(v model.Optional[map[string]rawjson.Value]) *SessionBuilder {
	model.SetOptional(b.b, "userMetadata", metadataCodec, v)
	return b
}

func (b *SessionBuilder) ContextID(v model.Nullable[string]) *SessionBuilder {
	model.SetNullable(b.b, "contextId", model.String, v)
	return b
}

// Extra sets a property Session does not declare.
func (b *SessionBuilder) Extra(key string, v rawjson.Value) *SessionBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionBuilder) Build() (Session, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return Session{}, err
	}
	return SessionFromRaw(raw), nil
}

// SessionLiveURLs holds the debugger URLs of a running session.
type SessionLiveURLs struct {
	model.Object
}

var sessionLiveURLsShape = model.Shape{Name: "SessionLiveURLs", Fields: []model.Field{
	{Key: "debuggerFullscreenUrl", Required: true, Type: model.String},
	{Key: "debuggerUrl", Required: true, Type: model.String},
	{Key: "wsUrl", Required: true, Type: model.String},
	{Key: "pages", Required: true, Type: model.ArrayOf(sessionLiveURLsPageCodec)},
}}

var sessionLiveURLsCodec = model.ModelOf("SessionLiveURLs", SessionLiveURLsFromRaw)

// SessionLiveURLsFromRaw wraps raw without validating it.
func SessionLiveURLsFromRaw(raw *rawjson.Object) SessionLiveURLs {
	return SessionLiveURLs{model.Wrap(raw)}
}

func (s SessionLiveURLs) Name() string                 { return "SessionLiveURLs" }
func (s SessionLiveURLs) Schema() []byte               { return schemaOf("SessionLiveURLs") }
func (s SessionLiveURLs) Example() []byte              { return exampleOf("SessionLiveURLs") }
func (s SessionLiveURLs) Shape() model.Shape           { return sessionLiveURLsShape }
func (s SessionLiveURLs) Validate() error              { return model.ValidateObject(s.Raw(), sessionLiveURLsShape) }
func (s SessionLiveURLs) Equal(o SessionLiveURLs) bool { return s.Raw().Equal(o.Raw()) }

func (s SessionLiveURLs) DebuggerFullscreenURL() (string, error) {
	return model.Get(s.Raw(), "debuggerFullscreenUrl", model.String)
}

func (s SessionLiveURLs) DebuggerURL() (string, error) {
	return model.Get(s.Raw(), "debuggerUrl", model.String)
}

func (s SessionLiveURLs) WsURL() (string, error) {
	return model.Get(s.Raw(), "wsUrl", model.String)
}

func (s SessionLiveURLs) Pages() ([]SessionLiveURLsPage, error) {
	return model.Get(s.Raw(), "pages", model.ArrayOf(sessionLiveURLsPageCodec))
}

type SessionLiveURLsBuilder struct {
	b *model.Builder
}

func NewSessionLiveURLsBuilder() *SessionLiveURLsBuilder {
	return &SessionLiveURLsBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of s, unknown properties included.
func (s SessionLiveURLs) ToBuilder() *SessionLiveURLsBuilder {
	return &SessionLiveURLsBuilder{b: model.BuilderFrom(s.Raw())}
}

func (b *SessionLiveURLsBuilder) DebuggerFullscreenURL(v string) *SessionLiveURLsBuilder {
	model.Set(b.b, "debuggerFullscreenUrl", model.String, v)
	return b
}

func (b *SessionLiveURLsBuilder) DebuggerURL(v string) *SessionLiveURLsBuilder {
	model.Set(b.b, "debuggerUrl", model.String, v)
	return b
}

func (b *SessionLiveURLsBuilder) WsURL(v string) *SessionLiveURLsBuilder {
	model.Set(b.b, "wsUrl", model.String, v)
	return b
}

func (b *SessionLiveURLsBuilder) Pages(v []SessionLiveURLsPage) *SessionLiveURLsBuilder {
	model.Set(b.b, "pages", model.ArrayOf(sessionLiveURLsPageCodec), v)
	return b
}

// Extra sets a property SessionLiveURLs does not declare.
func (b *SessionLiveURLsBuilder) Extra(key string, v rawjson.Value) *SessionLiveURLsBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionLiveURLsBuilder) Build() (SessionLiveURLs, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionLiveURLs{}, err
	}
	return SessionLiveURLsFromRaw(raw), nil
}

type SessionLiveURLsPage struct {
	model.Object
}

var sessionLiveURLsPageShape = model.Shape{Name: "SessionLiveURLsPage", Fields: []model.Field{
	{Key: "id", Required: true, Type: model.String},
	{Key: "url", Required: true, Type: model.String},
	{Key: "title", Required: true, Type: model.String},
	{Key: "debuggerUrl", Required: true, Type: model.String},
	{Key: "debuggerFullscreenUrl", Required: true, Type: model.String},
	{Key: "faviconUrl", Type: model.String},
}}

var sessionLiveURLsPageCodec = model.ModelOf("SessionLiveURLsPage", SessionLiveURLsPageFromRaw)

// SessionLiveURLsPageFromRaw wraps raw without validating it.
func SessionLiveURLsPageFromRaw(raw *rawjson.Object) SessionLiveURLsPage {
	return SessionLiveURLsPage{model.Wrap(raw)}
}

func (p SessionLiveURLsPage) Name() string       { return "SessionLiveURLsPage" }
func (p SessionLiveURLsPage) Schema() []byte     { return schemaOf("SessionLiveURLsPage") }
func (p SessionLiveURLsPage) Example() []byte    { return exampleOf("SessionLiveURLsPage") }
func (p SessionLiveURLsPage) Shape() model.Shape { return sessionLiveURLsPageShape }
func (p SessionLiveURLsPage) Validate() error {
	return model.ValidateObject(p.Raw(), sessionLiveURLsPageShape)
}
func (p SessionLiveURLsPage) Equal(o SessionLiveURLsPage) bool { return p.Raw().Equal(o.Raw()) }

func (p SessionLiveURLsPage) ID() (string, error) {
	return model.Get(p.Raw(), "id", model.String)
}

func (p SessionLiveURLsPage) URL() (string, error) {
	return model.Get(p.Raw(), "url", model.String)
}

func (p SessionLiveURLsPage) Title() (string, error) {
	return model.Get(p.Raw(), "title", model.String)
}

func (p SessionLiveURLsPage) DebuggerURL() (string, error) {
	return model.Get(p.Raw(), "debuggerUrl", model.String)
}

func (p SessionLiveURLsPage) DebuggerFullscreenURL() (string, error) {
	return model.Get(p.Raw(), "debuggerFullscreenUrl", model.String)
}

func (p SessionLiveURLsPage) FaviconURL() (model.Optional[string], error) {
	return model.GetOptional(p.Raw(), "faviconUrl", model.String)
}

type SessionLiveURLsPageBuilder struct {
	b *model.Builder
}

func NewSessionLiveURLsPageBuilder() *SessionLiveURLsPageBuilder {
	return &SessionLiveURLsPageBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of p, unknown properties included.
func (p SessionLiveURLsPage) ToBuilder() *SessionLiveURLsPageBuilder {
	return &SessionLiveURLsPageBuilder{b: model.BuilderFrom(p.Raw())}
}

func (b *SessionLiveURLsPageBuilder) ID(v string) *SessionLiveURLsPageBuilder {
	model.Set(b.b, "id", model.String, v)
	return b
}

func (b *SessionLiveURLsPageBuilder) URL(v string) *SessionLiveURLsPageBuilder {
	model.Set(b.b, "url", model.String, v)
	return b
}

func (b *SessionLiveURLsPageBuilder) Title(v string) *SessionLiveURLsPageBuilder {
	model.Set(b.b, "title", model.String, v)
	return b
}

func (b *SessionLiveURLsPageBuilder) DebuggerURL(v string) *SessionLiveURLsPageBuilder {
	model.Set(b.b, "debuggerUrl", model.String, v)
	return b
}

func (b *SessionLiveURLsPageBuilder) DebuggerFullscreenURL(v string) *SessionLiveURLsPageBuilder {
	model.Set(b.b, "debuggerFullscreenUrl", model.String, v)
	return b
}

func (b *SessionLiveURLsPageBuilder) FaviconURL(v model.Optional[string]) *SessionLiveURLsPageBuilder {
	model.SetOptional(b.b, "faviconUrl", model.String, v)
	return b
}

// Extra sets a property SessionLiveURLsPage does not declare.
func (b *SessionLiveURLsPageBuilder) Extra(key string, v rawjson.Value) *SessionLiveURLsPageBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionLiveURLsPageBuilder) Build() (SessionLiveURLsPage, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionLiveURLsPage{}, err
	}
	return SessionLiveURLsPageFromRaw(raw), nil
}

// SessionLog is one CDP event captured during a session.
type SessionLog struct {
	model.Object
}

var sessionLogShape = model.Shape{Name: "SessionLog", Fields: []model.Field{
	{Key: "method", Required: true, Type: model.String},
	{Key: "pageId", Required: true, Type: model.Int},
	{Key: "sessionId", Required: true, Type: model.String},
	{Key: "frameId", Type: model.String},
	{Key: "loaderId", Type: model.String},
	{Key: "timestamp", Type: model.Int},
	{Key: "request", Type: sessionLogRequestCodec},
	{Key: "response", Type: sessionLogResponseCodec},
}}

var sessionLogCodec = model.ModelOf("SessionLog", SessionLogFromRaw)

// SessionLogFromRaw wraps raw without validating it.
func SessionLogFromRaw(raw *rawjson.Object) SessionLog {
	return SessionLog{model.Wrap(raw)}
}

func (l SessionLog) Name() string            { return "SessionLog" }
func (l SessionLog) Schema() []byte          { return schemaOf("SessionLog") }
func (l SessionLog) Example() []byte         { return exampleOf("SessionLog") }
func (l SessionLog) Shape() model.Shape      { return sessionLogShape }
func (l SessionLog) Validate() error         { return model.ValidateObject(l.Raw(), sessionLogShape) }
func (l SessionLog) Equal(o SessionLog) bool { return l.Raw().Equal(o.Raw()) }

func (l SessionLog) Method() (string, error) {
	return model.Get(l.Raw(), "method", model.String)
}

func (l SessionLog) PageID() (int64, error) {
	return model.Get(l.Raw(), "pageId", model.Int)
}

func (l SessionLog) SessionID() (string, error) {
	return model.Get(l.Raw(), "sessionId", model.String)
}

func (l SessionLog) FrameID() (model.Optional[string], error) {
	return model.GetOptional(l.Raw(), "frameId", model.String)
}

func (l SessionLog) LoaderID() (model.Optional[string], error) {
	return model.GetOptional(l.Raw(), "loaderId", model.String)
}

func (l SessionLog) Timestamp() (model.Optional[int64], error) {
	return model.GetOptional(l.Raw(), "timestamp", model.Int)
}

func (l SessionLog) Request() (model.Optional[SessionLogRequest], error) {
	return model.GetOptional(l.Raw(), "request", sessionLogRequestCodec)
}

func (l SessionLog) Response() (model.Optional[SessionLogResponse], error) {
	return model.GetOptional(l.Raw(), "response", sessionLogResponseCodec)
}

type SessionLogBuilder struct {
	b *model.Builder
}

func NewSessionLogBuilder() *SessionLogBuilder {
	return &SessionLogBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of l, unknown properties included.
func (l SessionLog) ToBuilder() *SessionLogBuilder {
	return &SessionLogBuilder{b: model.BuilderFrom(l.Raw())}
}

func (b *SessionLogBuilder) Method(v string) *SessionLogBuilder {
	model.Set(b.b, "method", model.String, v)
	return b
}

func (b *SessionLogBuilder) PageID(v int64) *SessionLogBuilder {
	model.Set(b.b, "pageId", model.Int, v)
	return b
}

func (b *SessionLogBuilder) SessionID(v string) *SessionLogBuilder {
	model.Set(b.b, "sessionId", model.String, v)
	return b
}

func (b *SessionLogBuilder) FrameID(v model.Optional[string]) *SessionLogBuilder {
	model.SetOptional(b.b, "frameId", model.String, v)
	return b
}

func (b *SessionLogBuilder) LoaderID(v model.Optional[string]) *SessionLogBuilder {
	model.SetOptional(b.b, "loaderId", model.String, v)
	return b
}

func (b *SessionLogBuilder) Timestamp(v model.Optional[int64]) *SessionLogBuilder {
	model.SetOptional(b.b, "timestamp", model.Int, v)
	return b
}

func (b *SessionLogBuilder) Request(v model.Optional[SessionLogRequest]) *SessionLogBuilder {
	model.SetOptional(b.b, "request", sessionLogRequestCodec, v)
	return b
}

func (b *SessionLogBuilder) Response(v model.Optional[SessionLogResponse]) *SessionLogBuilder {
	model.SetOptional(b.b, "response", sessionLogResponseCodec, v)
	return b
}

// Extra sets a property SessionLog does not declare.
func (b *SessionLogBuilder) Extra(key string, v rawjson.Value) *SessionLogBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionLogBuilder) Build() (SessionLog, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionLog{}, err
	}
	return SessionLogFromRaw(raw), nil
}

type SessionLogRequest struct {
	model.Object
}

var sessionLogRequestShape = model.Shape{Name: "SessionLogRequest", Fields: []model.Field{
	{Key: "params", Required: true, Type: metadataCodec},
	{Key: "rawBody", Required: true, Type: model.String},
	{Key: "timestamp", Type: model.Int},
}}

var sessionLogRequestCodec = model.ModelOf("SessionLogRequest", SessionLogRequestFromRaw)

// SessionLogRequestFromRaw wraps raw without validating it.
func SessionLogRequestFromRaw(raw *rawjson.Object) SessionLogRequest {
	return SessionLogRequest{model.Wrap(raw)}
}

func (r SessionLogRequest) Name() string       { return "SessionLogRequest" }
func (r SessionLogRequest) Schema() []byte     { return schemaOf("SessionLogRequest") }
func (r SessionLogRequest) Example() []byte    { return exampleOf("SessionLogRequest") }
func (r SessionLogRequest) Shape() model.Shape { return sessionLogRequestShape }
func (r SessionLogRequest) Validate() error {
	return model.ValidateObject(r.Raw(), sessionLogRequestShape)
}
func (r SessionLogRequest) Equal(o SessionLogRequest) bool { return r.Raw().Equal(o.Raw()) }

func (r SessionLogRequest) Params() (map[string]rawjson.Value, error) {
	return model.Get(r.Raw(), "params", metadataCodec)
}

func (r SessionLogRequest) RawBody() (string, error) {
	return model.Get(r.Raw(), "rawBody", model.String)
}

func (r SessionLogRequest) Timestamp() (model.Optional[int64], error) {
	return model.GetOptional(r.Raw(), "timestamp", model.Int)
}

type SessionLogRequestBuilder struct {
	b *model.Builder
}

func NewSessionLogRequestBuilder() *SessionLogRequestBuilder {
	return &SessionLogRequestBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of r, unknown properties included.
func (r SessionLogRequest) ToBuilder() *SessionLogRequestBuilder {
	return &SessionLogRequestBuilder{b: model.BuilderFrom(r.Raw())}
}

func (b *SessionLogRequestBuilder) Params(v map[string]rawjson.Value) *SessionLogRequestBuilder {
	model.Set(b.b, "params", metadataCodec, v)
	return b
}

func (b *SessionLogRequestBuilder) RawBody(v string) *SessionLogRequestBuilder {
	model.Set(b.b, "rawBody", model.String, v)
	return b
}

func (b *SessionLogRequestBuilder) Timestamp(v model.Optional[int64]) *SessionLogRequestBuilder {
	model.SetOptional(b.b, "timestamp", model.Int, v)
	return b
}

// Extra sets a property SessionLogRequest does not declare.
func (b *SessionLogRequestBuilder) Extra(key string, v rawjson.Value) *SessionLogRequestBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionLogRequestBuilder) Build() (SessionLogRequest, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionLogRequest{}, err
	}
	return SessionLogRequestFromRaw(raw), nil
}

type SessionLogResponse struct {
	model.Object
}

var sessionLogResponseShape = model.Shape{Name: "SessionLogResponse", Fields: []model.Field{
	{Key: "result", Required: true, Type: metadataCodec},
	{Key: "rawBody", Required: true, Type: model.String},
	{Key: "timestamp", Type: model.Int},
}}

var sessionLogResponseCodec = model.ModelOf("SessionLogResponse", SessionLogResponseFromRaw)

// SessionLogResponseFromRaw wraps raw without validating it.
func SessionLogResponseFromRaw(raw *rawjson.Object) SessionLogResponse {
	return SessionLogResponse{model.Wrap(raw)}
}

func (r SessionLogResponse) Name() string       { return "SessionLogResponse" }
func (r SessionLogResponse) Schema() []byte     { return schemaOf("SessionLogResponse") }
func (r SessionLogResponse) Example() []byte    { return exampleOf("SessionLogResponse") }
func (r SessionLogResponse) Shape() model.Shape { return sessionLogResponseShape }
func (r SessionLogResponse) Validate() error {
	return model.ValidateObject(r.Raw(), sessionLogResponseShape)
}
func (r SessionLogResponse) Equal(o SessionLogResponse) bool { return r.Raw().Equal(o.Raw()) }

func (r SessionLogResponse) Result() (map[string]rawjson.Value, error) {
	return model.Get(r.Raw(), "result", metadataCodec)
}

func (r SessionLogResponse) RawBody() (string, error) {
	return model.Get(r.Raw(), "rawBody", model.String)
}

func (r SessionLogResponse) Timestamp() (model.Optional[int64], error) {
	return model.GetOptional(r.Raw(), "timestamp", model.Int)
}

type SessionLogResponseBuilder struct {
	b *model.Builder
}

func NewSessionLogResponseBuilder() *SessionLogResponseBuilder {
	return &SessionLogResponseBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of r, unknown properties included.
func (r SessionLogResponse) ToBuilder() *SessionLogResponseBuilder {
	return &SessionLogResponseBuilder{b: model.BuilderFrom(r.Raw())}
}

func (b *SessionLogResponseBuilder) Result(v map[string]rawjson.Value) *SessionLogResponseBuilder {
	model.Set(b.b, "result", metadataCodec, v)
	return b
}

func (b *SessionLogResponseBuilder) RawBody(v string) *SessionLogResponseBuilder {
	model.Set(b.b, "rawBody", model.String, v)
	return b
}

func (b *SessionLogResponseBuilder) Timestamp(v model.Optional[int64]) *SessionLogResponseBuilder {
	model.SetOptional(b.b, "timestamp", model.Int, v)
	return b
}

// Extra sets a property SessionLogResponse does not declare.
func (b *SessionLogResponseBuilder) Extra(key string, v rawjson.Value) *SessionLogResponseBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionLogResponseBuilder) Build() (SessionLogResponse, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionLogResponse{}, err
	}
	return SessionLogResponseFromRaw(raw), nil
}

// SessionRecordingEvent is one rrweb event of a session recording.
type SessionRecordingEvent struct {
	model.Object
}

var sessionRecordingEventShape = model.Shape{Name: "SessionRecordingEvent", Fields: []model.Field{
	{Key: "data", Required: true, Type: metadataCodec},
	{Key: "sessionId", Required: true, Type: model.String},
	{Key: "timestamp", Required: true, Type: model.Int},
	{Key: "type", Required: true, Type: model.Int},
}}

var sessionRecordingEventCodec = model.ModelOf("SessionRecordingEvent", SessionRecordingEventFromRaw)

// SessionRecordingEventFromRaw wraps raw without validating it.
func SessionRecordingEventFromRaw(raw *rawjson.Object) SessionRecordingEvent {
	return SessionRecordingEvent{model.Wrap(raw)}
}

func (e SessionRecordingEvent) Name() string       { return "SessionRecordingEvent" }
func (e SessionRecordingEvent) Schema() []byte     { return schemaOf("SessionRecordingEvent") }
func (e SessionRecordingEvent) Example() []byte    { return exampleOf("SessionRecordingEvent") }
func (e SessionRecordingEvent) Shape() model.Shape { return sessionRecordingEventShape }
func (e SessionRecordingEvent) Validate() error {
	return model.ValidateObject(e.Raw(), sessionRecordingEventShape)
}
func (e SessionRecordingEvent) Equal(o SessionRecordingEvent) bool { return e.Raw().Equal(o.Raw()) }

func (e SessionRecordingEvent) Data() (map[string]rawjson.Value, error) {
	return model.Get(e.Raw(), "data", metadataCodec)
}

func (e SessionRecordingEvent) SessionID() (string, error) {
	return model.Get(e.Raw(), "sessionId", model.String)
}

func (e SessionRecordingEvent) Timestamp() (int64, error) {
	return model.Get(e.Raw(), "timestamp", model.Int)
}

func (e SessionRecordingEvent) Type() (int64, error) {
	return model.Get(e.Raw(), "type", model.Int)
}

type SessionRecordingEventBuilder struct {
	b *model.Builder
}

func NewSessionRecordingEventBuilder() *SessionRecordingEventBuilder {
	return &SessionRecordingEventBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of e, unknown properties included.
func (e SessionRecordingEvent) ToBuilder() *SessionRecordingEventBuilder {
	return &SessionRecordingEventBuilder{b: model.BuilderFrom(e.Raw())}
}

func (b *SessionRecordingEventBuilder) Data(v map[string]rawjson.Value) *SessionRecordingEventBuilder {
	model.Set(b.b, "data", metadataCodec, v)
	return b
}

func (b *SessionRecordingEventBuilder) SessionID(v string) *SessionRecordingEventBuilder {
	model.Set(b.b, "sessionId", model.String, v)
	return b
}

func (b *SessionRecordingEventBuilder) Timestamp(v int64) *SessionRecordingEventBuilder {
	model.Set(b.b, "timestamp", model.Int, v)
	return b
}

func (b *SessionRecordingEventBuilder) Type(v int64) *SessionRecordingEventBuilder {
	model.Set(b.b, "type", model.Int, v)
	return b
}

// Extra sets a property SessionRecordingEvent does not declare.
func (b *SessionRecordingEventBuilder) Extra(key string, v rawjson.Value) *SessionRecordingEventBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionRecordingEventBuilder) Build() (SessionRecordingEvent, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionRecordingEvent{}, err
	}
	return SessionRecordingEventFromRaw(raw), nil
}

type SessionUploadResponse struct {
	model.Object
}

var sessionUploadResponseShape = model.Shape{Name: "SessionUploadResponse", Fields: []model.Field{
	{Key: "message", Required: true, Type: model.String},
}}

var sessionUploadResponseCodec = model.ModelOf("SessionUploadResponse", SessionUploadResponseFromRaw)

// SessionUploadResponseFromRaw wraps raw without validating it.
func SessionUploadResponseFromRaw(raw *rawjson.Object) SessionUploadResponse {
	return SessionUploadResponse{model.Wrap(raw)}
}

func (r SessionUploadResponse) Name() string       { return "SessionUploadResponse" }
func (r SessionUploadResponse) Schema() []byte     { return schemaOf("SessionUploadResponse") }
func (r SessionUploadResponse) Example() []byte    { return exampleOf("SessionUploadResponse") }
func (r SessionUploadResponse) Shape() model.Shape { return sessionUploadResponseShape }
func (r SessionUploadResponse) Validate() error {
	return model.ValidateObject(r.Raw(), sessionUploadResponseShape)
}
func (r SessionUploadResponse) Equal(o SessionUploadResponse) bool { return r.Raw().Equal(o.Raw()) }

func (r SessionUploadResponse) Message() (string, error) {
	return model.Get(r.Raw(), "message", model.String)
}

type SessionUploadResponseBuilder struct {
	b *model.Builder
}

func NewSessionUploadResponseBuilder() *SessionUploadResponseBuilder {
	return &SessionUploadResponseBuilder{b: model.NewBuilder()}
}

// ToBuilder starts a builder from a mutable copy of r, unknown properties included.
func (r SessionUploadResponse) ToBuilder() *SessionUploadResponseBuilder {
	return &SessionUploadResponseBuilder{b: model.BuilderFrom(r.Raw())}
}

func (b *SessionUploadResponseBuilder) Message(v string) *SessionUploadResponseBuilder {
	model.Set(b.b, "message", model.String, v)
	return b
}

// Extra sets a property SessionUploadResponse does not declare.
func (b *SessionUploadResponseBuilder) Extra(key string, v rawjson.Value) *SessionUploadResponseBuilder {
	b.b.SetRaw(key, v)
	return b
}

func (b *SessionUploadResponseBuilder) Build() (SessionUploadResponse, error) {
	raw, err := b.b.Finish()
	if err != nil {
		return SessionUploadResponse{}, err
	}
	return SessionUploadResponseFromRaw(raw), nil
}
