package openapi_test

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/openapi"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type operation struct {
	OperationID string   `json:"operationId"`
	Tags        []string `json:"tags"`
	Parameters  []struct {
		Name     string         `json:"name"`
		In       string         `json:"in"`
		Required bool           `json:"required"`
		Schema   map[string]any `json:"schema"`
	} `json:"parameters"`
}

type document struct {
	// Path items also carry a summary next to the operations.
	Paths      map[string]map[string]json.RawMessage `json:"paths"`
	Components struct {
		Schemas map[string]map[string]any `json:"schemas"`
	} `json:"components"`
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

func build(t *testing.T, reg *browserkit.Registry, filter func(openapi.Record) bool) document {
	t.Helper()

	out, err := openapi.New(reg, openapi.Validate(false), openapi.Filter(filter))
	assert.NilError(t, err)

	var doc document
	assert.NilError(t, json.Unmarshal(out, &doc))
	return doc
}

func (d document) op(t *testing.T, path, method string) operation {
	t.Helper()
	raw, ok := d.Paths[path][method]
	assert.Assert(t, ok, "missing %s %s", method, path)
	var op operation
	assert.NilError(t, json.Unmarshal(raw, &op))
	return op
}

func TestOpenAPIGen(t *testing.T) {
	doc := build(t, browserkit.NewRegistry(), func(openapi.Record) bool { return true })

	paths := []string{
		"/v1/contexts",
		"/v1/contexts/{id}",
		"/v1/extensions/{id}",
		"/v1/projects",
		"/v1/projects/{id}",
		"/v1/projects/{id}/usage",
		"/v1/sessions",
		"/v1/sessions/{id}",
		"/v1/sessions/{id}/debug",
		"/v1/sessions/{id}/logs",
		"/v1/sessions/{id}/recording",
	}
	for _, p := range paths {
		_, ok := doc.Paths[p]
		assert.Assert(t, ok, "missing path %s", p)
	}

	assert.Equal(t, doc.op(t, "/v1/sessions", "post").OperationID, "sessions.create")
	list := doc.op(t, "/v1/sessions", "get")
	assert.Equal(t, list.OperationID, "sessions.list")
	assert.DeepEqual(t, list.Tags, []string{"Sessions"})

	var names []string
	for _, p := range list.Parameters {
		assert.Equal(t, p.In, "query")
		assert.Assert(t, !p.Required)
		names = append(names, p.Name)
	}
	assert.DeepEqual(t, names, []string{"status", "q"})
	assert.DeepEqual(t, list.Parameters[0].Schema["enum"], []any{"RUNNING", "ERROR", "TIMED_OUT", "COMPLETED"})

	get := doc.op(t, "/v1/sessions/{id}", "get")
	assert.Equal(t, len(get.Parameters), 1)
	assert.Equal(t, get.Parameters[0].Name, "id")
	assert.Equal(t, get.Parameters[0].In, "path")
	assert.Assert(t, get.Parameters[0].Required)

	for _, name := range []string{"Session", "SessionCreateParams", "BrowserSettings", "Fingerprint", "ExternalProxy", "ProjectUsage"} {
		_, ok := doc.Components.Schemas[name]
		assert.Assert(t, ok, "missing component %s", name)
	}

	var tags []string
	for _, tag := range doc.Tags {
		tags = append(tags, tag.Name)
	}
	assert.DeepEqual(t, tags, []string{"Contexts", "Extensions", "Projects", "Sessions"})
}

func TestOpenAPIRefsPointAtComponents(t *testing.T) {
	doc := build(t, browserkit.NewRegistry(), func(openapi.Record) bool { return true })

	props, ok := doc.Components.Schemas["SessionCreateParams"]["properties"].(map[string]any)
	assert.Assert(t, ok)
	settings, ok := props["browserSettings"].(map[string]any)
	assert.Assert(t, ok)
	assert.Equal(t, settings["$ref"], "#/components/schemas/BrowserSettings")

	for name, sch := range doc.Components.Schemas {
		raw, err := json.Marshal(sch)
		assert.NilError(t, err)
		assert.Assert(t, !strings.Contains(string(raw), "#/definitions/"), "%s still refers to #/definitions", name)
	}
}

func TestOpenAPIFilter(t *testing.T) {
	doc := build(t, browserkit.NewRegistry(), func(r openapi.Record) bool { return r.Group == "projects" })

	var paths []string
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	assert.DeepEqual(t, paths, []string{"/v1/projects", "/v1/projects/{id}", "/v1/projects/{id}/usage"})

	// Models are documented even when no kept operation uses them.
	assert.Check(t, is.Contains(doc.Components.Schemas, "Session"))
}

func TestOpenAPITransform(t *testing.T) {
	out, err := openapi.New(browserkit.NewRegistry(),
		openapi.Validate(false),
		openapi.Transform(func(r *openapi.Record) {
			r.Extensions = map[string]interface{}{"x-group": r.Group}
		}),
		openapi.Tags(func(op browserkit.Operation) []string { return []string{"v1"} }, []string{"Beta"}),
	)
	assert.NilError(t, err)

	var raw map[string]any
	assert.NilError(t, json.Unmarshal(out, &raw))

	paths := raw["paths"].(map[string]any)
	usage := paths["/v1/projects/{id}/usage"].(map[string]any)["get"].(map[string]any)
	assert.Equal(t, usage["x-group"], "projects")
	assert.DeepEqual(t, usage["tags"], []any{"v1", "Projects"})

	var tags []string
	for _, tag := range raw["tags"].([]any) {
		tags = append(tags, tag.(map[string]any)["name"].(string))
	}
	assert.DeepEqual(t, tags, []string{"Beta", "Contexts", "Extensions", "Projects", "Sessions", "v1"})
}
