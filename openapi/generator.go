package openapi

import (
	"maps"
	"slices"

	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go/openapi31"
	"github.com/tailbits/browserkit"
)

const version string = "1.0.0"

var name string = "browserkit"
var url string = "https://docs.browserbase.com"
var serverDescription string = "Browser automation API base URL"

// Generator turns records into an OpenAPI document.
type Generator struct {
	*Reflector
	records []Record
	config  openapiConfig
}

// ToSchema renders the document. With validation on, a document that
// fails the lint is returned as a *LintError.
func (g *Generator) ToSchema() ([]byte, error) {
	if err := g.ingest(g.records); err != nil {
		return nil, err
	}

	tags := maps.Clone(g.allTags)
	for _, tag := range g.config.allTags {
		tags[tag] = true
	}
	g.collectTags(slices.Sorted(maps.Keys(tags)))

	if err := g.collectDefinitions(); err != nil {
		return nil, err
	}

	doc, err := g.document()
	if err != nil {
		return nil, err
	}
	if g.config.validate {
		if err := lint(doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func newReflector() *Reflector {
	reflector := openapi31.NewReflector()
	reflector.Spec = &openapi31.Spec{Openapi: "3.1.0"}
	reflector.Spec.Info.
		WithTitle("Browser Automation API").
		WithVersion(version).
		WithDescription("OpenAPI 3.1.0 Specification of the API served to browserkit clients.").
		WithContact(openapi31.Contact{Name: &name, URL: &url})
	reflector.Spec.WithServers(openapi31.Server{
		URL:         browserkit.DefaultBaseURL,
		Description: &serverDescription,
	})

	reflector.Reflector.DefaultOptions = append(reflector.Reflector.DefaultOptions, jsonschema.DefinitionsPrefix("#/components/schemas/"))

	return &Reflector{
		Reflector: reflector,
		allDefs:   make(map[string]jsonschema.Schema),
		allTags:   make(map[string]bool),
	}
}
