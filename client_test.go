package browserkit_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const testKey = "bb_test_key"

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...browserkit.ClientOption) *browserkit.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	opts = append([]browserkit.ClientOption{
		browserkit.WithBaseURL(srv.URL + "/"),
		browserkit.WithAPIKey(testKey),
		browserkit.WithTransport(srv.Client()),
	}, opts...)
	return browserkit.NewClient(opts...)
}

func respond(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func sessionExample() []byte {
	return browserkit.Session{}.Example()
}

func TestCreateSession(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, is.Equal(r.Method, http.MethodPost))
		assert.Check(t, is.Equal(r.URL.Path, "/v1/sessions"))
		assert.Check(t, is.Equal(r.Header.Get("X-BB-API-Key"), testKey))
		assert.Check(t, is.Equal(r.Header.Get("Content-Type"), "application/json"))
		assert.Check(t, json.NewDecoder(r.Body).Decode(&got))
		respond(w, http.StatusCreated, sessionExample())
	})

	params, err := browserkit.NewSessionCreateParamsBuilder().
		ProjectID("proj_9b3d").
		KeepAlive(model.Some(true)).
		Proxies(model.Some(browserkit.NewProxiesEnabled(true))).
		Build()
	assert.NilError(t, err)

	sess, err := c.Sessions.Create(context.Background(), params)
	assert.NilError(t, err)

	id, err := sess.ID()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(id, "sess_4f2a1c"))
	assert.Check(t, is.DeepEqual(got, map[string]any{
		"projectId": "proj_9b3d",
		"keepAlive": true,
		"proxies":   true,
	}))
}

func TestExtraBodyIsMergedDeep(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, json.NewDecoder(r.Body).Decode(&got))
		respond(w, http.StatusCreated, sessionExample())
	})

	settings, err := browserkit.NewBrowserSettingsBuilder().
		SolveCaptchas(model.Some(true)).
		BlockAds(model.Some(true)).
		Build()
	assert.NilError(t, err)
	params, err := browserkit.NewSessionCreateParamsBuilder().
		ProjectID("proj_1").
		BrowserSettings(model.Some(settings)).
		Build()
	assert.NilError(t, err)

	extra, err := rawjson.DecodeObject([]byte(`{"browserSettings":{"blockAds":false},"beta":{"pool":"canary"}}`))
	assert.NilError(t, err)

	_, err = c.Sessions.Create(context.Background(), params, browserkit.WithExtraBody(extra))
	assert.NilError(t, err)

	want := map[string]any{
		"projectId": "proj_1",
		"browserSettings": map[string]any{
			"solveCaptchas": true,
			"blockAds":      false,
		},
		"beta": map[string]any{"pool": "canary"},
	}
	assert.Check(t, is.DeepEqual(got, want))

	// params stays as built
	blockAds, err := settings.BlockAds()
	assert.NilError(t, err)
	assert.Check(t, blockAds.Or(false))
}

func TestMissingAPIKey(t *testing.T) {
	t.Setenv(browserkit.EnvAPIKey, "")

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := browserkit.NewClient(browserkit.WithBaseURL(srv.URL))
	_, err := c.Projects.List(context.Background())
	assert.ErrorIs(t, err, browserkit.ErrMissingAPIKey)
	assert.Check(t, is.Equal(calls.Load(), int32(0)))
}

func TestClientReadsEnvironment(t *testing.T) {
	var key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get("X-BB-API-Key")
		respond(w, http.StatusOK, []byte(`[]`))
	}))
	defer srv.Close()

	t.Setenv(browserkit.EnvAPIKey, "from_env")
	t.Setenv(browserkit.EnvBaseURL, srv.URL)

	projects, err := browserkit.NewClient().Projects.List(context.Background())
	assert.NilError(t, err)
	assert.Check(t, is.Len(projects, 0))
	assert.Check(t, is.Equal(key, "from_env"))
}

func TestAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusNotFound, []byte(`{"statusCode":404,"error":"Not Found","message":"session sess_x not found"}`))
	})

	_, err := c.Sessions.Get(context.Background(), "sess_x")
	assert.Assert(t, browserkit.IsNotFound(err))

	var apiErr *browserkit.APIError
	assert.Assert(t, errors.As(err, &apiErr))
	assert.Check(t, is.Equal(apiErr.Method, http.MethodGet))
	assert.Check(t, is.Equal(apiErr.Path, "/v1/sessions/sess_x"))
	assert.Check(t, is.Equal(apiErr.Message, "session sess_x not found"))
	assert.Check(t, is.Equal(err.Error(), "browserkit: GET /v1/sessions/sess_x: 404 session sess_x not found"))
}

func TestAPIErrorWithoutJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream unavailable")
	})

	err := c.Extensions.Delete(context.Background(), "ext_1")
	var apiErr *browserkit.APIError
	assert.Assert(t, errors.As(err, &apiErr))
	assert.Check(t, !browserkit.IsNotFound(err))
	assert.Check(t, is.Equal(apiErr.Message, ""))
	assert.Check(t, is.Equal(string(apiErr.Body), "upstream unavailable"))
	assert.Check(t, is.ErrorContains(err, "502 Bad Gateway"))
}

func TestListSessions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, is.Equal(r.URL.Path, "/v1/sessions"))
		assert.Check(t, is.DeepEqual(r.URL.Query(), url.Values{
			"status": {"RUNNING"},
			"q":      {"user_metadata['team']:'qa'"},
		}))
		body := append(append([]byte("["), sessionExample()...), []byte(`,{"id":"sess_2","status":"PAUSED"}]`)...)
		respond(w, http.StatusOK, body)
	})

	params, err := browserkit.NewSessionListParamsBuilder().
		Status(model.Some(browserkit.SessionStatusRunning.Enum())).
		Q(model.Some("user_metadata['team']:'qa'")).
		Build()
	assert.NilError(t, err)

	sessions, err := c.Sessions.List(context.Background(), params)
	assert.NilError(t, err, "responses are not validated unless the call is strict")
	assert.Assert(t, is.Len(sessions, 2))

	status, err := sessions[1].Status()
	assert.NilError(t, err)
	assert.Check(t, !status.Known())
}

func TestListRejectsNonArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []byte(`{"data":[]}`))
	})

	_, err := c.Projects.List(context.Background())
	var mismatch *model.TypeMismatchError
	assert.Assert(t, errors.As(err, &mismatch))
	assert.Check(t, is.Equal(mismatch.Got, rawjson.KindObject))
}

func TestListRejectsNonObjectItem(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []byte(`[{"method":"Page.navigate"},"oops"]`))
	})

	_, err := c.Sessions.Logs(context.Background(), "sess_1")
	var ide *model.InvalidDataError
	assert.Assert(t, errors.As(err, &ide))
	assert.Check(t, is.Equal(ide.Path, "[1]"))
}

func TestStrictResponse(t *testing.T) {
	body := []byte(`{"id":"sess_1","status":"RUNNING"}`)
	h := func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, body)
	}

	lenient := newTestClient(t, h)
	_, err := lenient.Sessions.Get(context.Background(), "sess_1")
	assert.NilError(t, err)

	_, err = lenient.Sessions.Get(context.Background(), "sess_1", browserkit.WithStrictResponse(true))
	assert.ErrorIs(t, err, model.ErrInvalidData)

	strict := newTestClient(t, h, browserkit.WithStrict(true))
	_, err = strict.Sessions.Get(context.Background(), "sess_1")
	var missing *model.MissingRequiredFieldError
	assert.Check(t, errors.As(err, &missing))

	_, err = strict.Sessions.Get(context.Background(), "sess_1", browserkit.WithStrictResponse(false))
	assert.NilError(t, err)
}

func TestStrictResponseChecksSchema(t *testing.T) {
	var sess map[string]any
	assert.NilError(t, json.Unmarshal(sessionExample(), &sess))
	sess["proxyBytes"] = -1
	body, err := json.Marshal(sess)
	assert.NilError(t, err)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, body)
	}, browserkit.WithStrict(true))

	_, err = c.Sessions.Get(context.Background(), "sess_4f2a1c")
	assert.Assert(t, model.IsSchemaError(err), "got %v", err)
}

func TestStrictRequestIsValidatedBeforeSending(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		respond(w, http.StatusCreated, sessionExample())
	}, browserkit.WithStrict(true))

	params, err := browserkit.NewSessionCreateParamsBuilder().KeepAlive(model.Some(true)).Build()
	assert.NilError(t, err)

	_, err = c.Sessions.Create(context.Background(), params)
	var missing *model.MissingRequiredFieldError
	assert.Assert(t, errors.As(err, &missing))
	assert.Check(t, is.Equal(missing.Field, "projectId"))
	assert.Check(t, is.Equal(calls.Load(), int32(0)))
}

func TestStrictListParamsAreValidatedBeforeSending(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		respond(w, http.StatusOK, []byte(`[]`))
	}, browserkit.WithStrict(true))

	obj, err := rawjson.DecodeObject([]byte(`{"q":5}`))
	assert.NilError(t, err)

	_, err = c.Sessions.List(context.Background(), browserkit.SessionListParamsFromRaw(obj))
	assert.ErrorIs(t, err, model.ErrInvalidData)
	assert.Check(t, is.ErrorContains(err, "validate SessionListParams"))
	assert.Check(t, is.Equal(calls.Load(), int32(0)))
}

func TestStrictListChecksEveryItem(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []byte(`[{"method":"Page.navigate","pageId":1,"sessionId":"sess_1"},{"method":"Page.reload"}]`))
	}, browserkit.WithStrict(true))

	_, err := c.Sessions.Logs(context.Background(), "sess_1")
	assert.ErrorIs(t, err, model.ErrInvalidData)
	assert.Check(t, is.ErrorContains(err, "[1]"))
}

func TestDeleteExtension(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, is.Equal(r.Method, http.MethodDelete))
		assert.Check(t, is.Equal(r.URL.Path, "/v1/extensions/ext_1"))
		assert.Check(t, is.Equal(r.Header.Get("Content-Type"), ""))
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NilError(t, c.Extensions.Delete(context.Background(), "ext_1"))
}

func TestPathParametersAreEscaped(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		respond(w, http.StatusOK, []byte(`{"browserMinutes":10,"proxyBytes":2048}`))
	})

	usage, err := c.Projects.Usage(context.Background(), "team/a b")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(path, "/v1/projects/team%2Fa%20b/usage"))

	minutes, err := usage.BrowserMinutes()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(minutes, int64(10)))

	_, err = c.Projects.Get(context.Background(), "")
	assert.Check(t, is.ErrorContains(err, "empty path parameter {id}"))
}

func TestHeadersAndMiddleware(t *testing.T) {
	var seen []string
	record := func(name string) browserkit.Middleware {
		return func(next browserkit.Transport) browserkit.Transport {
			return browserkit.TransportFunc(func(req *http.Request) (*http.Response, error) {
				seen = append(seen, name)
				return next.Do(req)
			})
		}
	}

	var header http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		respond(w, http.StatusOK, []byte(`{"id":"ctx_1","uploadUrl":"https://u","publicKey":"pk","cipherAlgorithm":"AES-256-CBC","initializationVectorSize":16}`))
	},
		browserkit.WithHeader("X-Client", "tests"),
		browserkit.WithMiddleware(record("outer"), record("inner")),
	)

	resp, err := c.Contexts.Update(context.Background(), "ctx_1", browserkit.WithRequestHeader("X-Trace", "t-1"))
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual(seen, []string{"outer", "inner"}))
	assert.Check(t, is.Equal(header.Get("X-Client"), "tests"))
	assert.Check(t, is.Equal(header.Get("X-Trace"), "t-1"))
	assert.Check(t, is.Equal(header.Get("Accept"), "application/json"))

	size, err := resp.InitializationVectorSize()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(size, int64(16)))
}

func TestDebugURLs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, is.Equal(r.URL.Path, "/v1/sessions/sess_1/debug"))
		respond(w, http.StatusOK, browserkit.SessionLiveURLs{}.Example())
	}, browserkit.WithStrict(true))

	urls, err := c.Sessions.Debug(context.Background(), "sess_1")
	assert.NilError(t, err)

	pages, err := urls.Pages()
	assert.NilError(t, err)
	assert.Assert(t, len(pages) > 0)

	want, err := model.Example[browserkit.SessionLiveURLs]()
	assert.NilError(t, err)
	assert.Check(t, urls.Equal(want))
	assert.Check(t, cmp.Equal(urls.Raw().Interface(), want.Raw().Interface()))
}
