// Package openapi builds an OpenAPI 3.1 document from a browserkit
// registry.
package openapi

import (
	"maps"
	"slices"

	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/internal/casing"
)

type openapiConfig struct {
	validate    bool
	filterFn    func(Record) bool
	tagsFn      func(browserkit.Operation) []string
	allTags     []string
	transformFn func(*Record)
}

type Option func(*openapiConfig)

// Validate turns linting of the generated document with the vacuum
// recommended ruleset on or off. It is on by default.
func Validate(on bool) Option {
	return func(c *openapiConfig) {
		c.validate = on
	}
}

func Filter(fn func(Record) bool) Option {
	return func(c *openapiConfig) {
		c.filterFn = fn
	}
}

func Tags(fn func(browserkit.Operation) []string, all []string) Option {
	return func(c *openapiConfig) {
		c.tagsFn = fn
		c.allTags = all
	}
}

func Transform(fn func(*Record)) Option {
	return func(c *openapiConfig) {
		c.transformFn = fn
	}
}

func New(reg *browserkit.Registry, opts ...Option) ([]byte, error) {
	// initialise config
	config := openapiConfig{
		validate:    true,
		filterFn:    func(r Record) bool { return true },
		tagsFn:      func(browserkit.Operation) []string { return []string{} },
		allTags:     []string{},
		transformFn: func(r *Record) {},
	}

	// apply options
	for _, opt := range opts {
		opt(&config)
	}

	var records []Record
	forEachCollectedRoute(reg, func(group string, op browserkit.Operation) {
		record := toRecord(group, op, config.tagsFn)
		config.transformFn(&record)

		if config.filterFn(record) {
			records = append(records, record)
		}
	})

	g := &Generator{
		Reflector: newReflector(),
		records:   records,
		config:    config,
	}
	for _, e := range reg.Entities() {
		if err := g.addModel(browserkit.NewModel(e)); err != nil {
			return nil, err
		}
	}

	return g.ToSchema()
}

func forEachCollectedRoute(reg *browserkit.Registry, fn func(string, browserkit.Operation)) {
	for _, group := range reg.Resources() {
		rsc, _ := reg.Resource(group)
		for _, key := range slices.Sorted(maps.Keys(rsc)) {
			fn(group, rsc[key])
		}
	}
}

func toRecord(group string, op browserkit.Operation, tagsFn func(browserkit.Operation) []string) Record {
	record := Record{
		ID:            op.OperationID,
		Group:         group,
		Method:        op.Method,
		Path:          op.Path,
		PathSummary:   casing.KebabToTitleCase(group),
		Description:   op.Description,
		Summary:       op.Summary,
		Tags:          append(tagsFn(op), op.Tags...),
		SuccessStatus: op.Status(),
		Extensions:    op.Extensions,
	}

	if op.HasBody() {
		record.AddInputModel(op.Input)
	}
	record.AddOutputModel(op.Output, op.List)
	record.AddQueryParams(op.QueryParams)

	return record
}
