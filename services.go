package browserkit

import (
	"context"

	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

// SessionService creates and inspects browser sessions.
type SessionService struct {
	c *Client
}

func (s *SessionService) Create(ctx context.Context, params SessionCreateParams, opts ...RequestOption) (Session, error) {
	return send(ctx, s.c, "sessions.create", params, nil, SessionFromRaw, opts)
}

func (s *SessionService) Get(ctx context.Context, id string, opts ...RequestOption) (Session, error) {
	return send(ctx, s.c, "sessions.get", nil, []string{id}, SessionFromRaw, opts)
}

// Update requests a status change, which today can only be a release.
func (s *SessionService) Update(ctx context.Context, id string, params SessionUpdateParams, opts ...RequestOption) (Session, error) {
	return send(ctx, s.c, "sessions.update", params, []string{id}, SessionFromRaw, opts)
}

func (s *SessionService) List(ctx context.Context, params SessionListParams, opts ...RequestOption) ([]Session, error) {
	cl, err := s.c.newCall("sessions.list", opts)
	if err != nil {
		return nil, err
	}
	cl.params = params
	cl.query = params.URLQuery()
	return sendList(ctx, s.c, cl, SessionFromRaw)
}

// Debug returns the live debugger URLs of a running session.
func (s *SessionService) Debug(ctx context.Context, id string, opts ...RequestOption) (SessionLiveURLs, error) {
	return send(ctx, s.c, "sessions.debug", nil, []string{id}, SessionLiveURLsFromRaw, opts)
}

func (s *SessionService) Logs(ctx context.Context, id string, opts ...RequestOption) ([]SessionLog, error) {
	return list(ctx, s.c, "sessions.logs", []string{id}, SessionLogFromRaw, opts)
}

func (s *SessionService) Recording(ctx context.Context, id string, opts ...RequestOption) ([]SessionRecordingEvent, error) {
	return list(ctx, s.c, "sessions.recording", []string{id}, SessionRecordingEventFromRaw, opts)
}

type ContextService struct {
	c *Client
}

func (s *ContextService) Create(ctx context.Context, params ContextCreateParams, opts ...RequestOption) (ContextCreateResponse, error) {
	return send(ctx, s.c, "contexts.create", params, nil, ContextCreateResponseFromRaw, opts)
}

func (s *ContextService) Get(ctx context.Context, id string, opts ...RequestOption) (Context, error) {
	return send(ctx, s.c, "contexts.get", nil, []string{id}, ContextFromRaw, opts)
}

// Update issues a fresh upload URL for the context's user data.
func (s *ContextService) Update(ctx context.Context, id string, opts ...RequestOption) (ContextCreateResponse, error) {
	return send(ctx, s.c, "contexts.update", nil, []string{id}, ContextCreateResponseFromRaw, opts)
}

type ExtensionService struct {
	c *Client
}

func (s *ExtensionService) Get(ctx context.Context, id string, opts ...RequestOption) (Extension, error) {
	return send(ctx, s.c, "extensions.get", nil, []string{id}, ExtensionFromRaw, opts)
}

func (s *ExtensionService) Delete(ctx context.Context, id string, opts ...RequestOption) error {
	cl, err := s.c.newCall("extensions.delete", opts)
	if err != nil {
		return err
	}
	cl.args = []string{id}
	_, err = s.c.do(ctx, cl)
	return err
}

type ProjectService struct {
	c *Client
}

func (s *ProjectService) Get(ctx context.Context, id string, opts ...RequestOption) (Project, error) {
	return send(ctx, s.c, "projects.get", nil, []string{id}, ProjectFromRaw, opts)
}

func (s *ProjectService) List(ctx context.Context, opts ...RequestOption) ([]Project, error) {
	return list(ctx, s.c, "projects.list", nil, ProjectFromRaw, opts)
}

func (s *ProjectService) Usage(ctx context.Context, id string, opts ...RequestOption) (ProjectUsage, error) {
	return send(ctx, s.c, "projects.usage", nil, []string{id}, ProjectUsageFromRaw, opts)
}

// send performs an operation that answers with a single model.
func send[T model.Entity](ctx context.Context, c *Client, opID string, body model.Model, args []string, fromRaw func(*rawjson.Object) T, opts []RequestOption) (T, error) {
	var zero T
	cl, err := c.newCall(opID, opts)
	if err != nil {
		return zero, err
	}
	cl.body = body
	cl.args = args

	data, err := c.do(ctx, cl)
	if err != nil {
		return zero, err
	}
	return decodeResponse(c, cl, data, fromRaw)
}

func list[T model.Entity](ctx context.Context, c *Client, opID string, args []string, fromRaw func(*rawjson.Object) T, opts []RequestOption) ([]T, error) {
	cl, err := c.newCall(opID, opts)
	if err != nil {
		return nil, err
	}
	cl.args = args
	return sendList(ctx, c, cl, fromRaw)
}

func sendList[T model.Entity](ctx context.Context, c *Client, cl *call, fromRaw func(*rawjson.Object) T) ([]T, error) {
	data, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}
	return decodeList(c, cl, data, fromRaw)
}
