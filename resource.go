package browserkit

import (
	"net/http"

	"github.com/tailbits/browserkit/model"
)

const (
	groupSessions   = "sessions"
	groupContexts   = "contexts"
	groupExtensions = "extensions"
	groupProjects   = "projects"
)

// NewRegistry declares every operation of the API.
func NewRegistry() *Registry {
	r := newRegistry()

	register[SessionCreateParams, Session](r, http.MethodPost, groupSessions, "/v1/sessions",
		WithOperationID("sessions.create"),
		WithSummary("Create a session"),
		WithSuccessCode(http.StatusCreated),
		WithTags("Sessions"),
	)
	register[model.Nil, Session](r, http.MethodGet, groupSessions, "/v1/sessions",
		WithOperationID("sessions.list"),
		WithSummary("List sessions"),
		WithQuery(SessionListParams{}),
		WithTags("Sessions"),
		AsList(),
	)
	register[model.Nil, Session](r, http.MethodGet, groupSessions, "/v1/sessions/{id}",
		WithOperationID("sessions.get"),
		WithSummary("Retrieve a session"),
		WithTags("Sessions"),
	)
	register[SessionUpdateParams, Session](r, http.MethodPost, groupSessions, "/v1/sessions/{id}",
		WithOperationID("sessions.update"),
		WithSummary("Update a session"),
		WithDescription("Request the release of a running session."),
		WithTags("Sessions"),
	)
	register[model.Nil, SessionLiveURLs](r, http.MethodGet, groupSessions, "/v1/sessions/{id}/debug",
		WithOperationID("sessions.debug"),
		WithSummary("Session live URLs"),
		WithTags("Sessions"),
	)
	register[model.Nil, SessionLog](r, http.MethodGet, groupSessions, "/v1/sessions/{id}/logs",
		WithOperationID("sessions.logs"),
		WithSummary("Session logs"),
		WithTags("Sessions"),
		AsList(),
	)
	register[model.Nil, SessionRecordingEvent](r, http.MethodGet, groupSessions, "/v1/sessions/{id}/recording",
		WithOperationID("sessions.recording"),
		WithSummary("Session recording"),
		WithTags("Sessions"),
		AsList(),
	)

	register[ContextCreateParams, ContextCreateResponse](r, http.MethodPost, groupContexts, "/v1/contexts",
		WithOperationID("contexts.create"),
		WithSummary("Create a context"),
		WithSuccessCode(http.StatusCreated),
		WithTags("Contexts"),
	)
	register[model.Nil, Context](r, http.MethodGet, groupContexts, "/v1/contexts/{id}",
		WithOperationID("contexts.get"),
		WithSummary("Retrieve a context"),
		WithTags("Contexts"),
	)
	register[model.Nil, ContextCreateResponse](r, http.MethodPut, groupContexts, "/v1/contexts/{id}",
		WithOperationID("contexts.update"),
		WithSummary("Update a context"),
		WithDescription("Issue a new upload URL for the context's user data directory."),
		WithTags("Contexts"),
	)

	register[model.Nil, Extension](r, http.MethodGet, groupExtensions, "/v1/extensions/{id}",
		WithOperationID("extensions.get"),
		WithSummary("Retrieve an extension"),
		WithTags("Extensions"),
	)
	register[model.Nil, model.Nil](r, http.MethodDelete, groupExtensions, "/v1/extensions/{id}",
		WithOperationID("extensions.delete"),
		WithSummary("Delete an extension"),
		WithSuccessCode(http.StatusNoContent),
		WithTags("Extensions"),
	)

	register[model.Nil, Project](r, http.MethodGet, groupProjects, "/v1/projects",
		WithOperationID("projects.list"),
		WithSummary("List projects"),
		WithTags("Projects"),
		AsList(),
	)
	register[model.Nil, Project](r, http.MethodGet, groupProjects, "/v1/projects/{id}",
		WithOperationID("projects.get"),
		WithSummary("Retrieve a project"),
		WithTags("Projects"),
	)
	register[model.Nil, ProjectUsage](r, http.MethodGet, groupProjects, "/v1/projects/{id}/usage",
		WithOperationID("projects.usage"),
		WithSummary("Project usage"),
		WithTags("Projects"),
	)

	// Models only reachable through other models.
	for _, e := range []model.Entity{
		BrowserSettings{}, BrowserSettingsContext{}, Fingerprint{}, FingerprintScreen{}, Viewport{},
		SessionLiveURLsPage{}, SessionLogRequest{}, SessionLogResponse{}, SessionUploadResponse{},
		ExtensionRef{}, ProxyGeolocation{}, BrowserbaseProxy{}, ExternalProxy{},
	} {
		r.RegisterEntity(e)
	}

	return r
}
