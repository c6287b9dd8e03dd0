package browserkit

import (
	"net/http"

	"github.com/tailbits/browserkit/model"
)

// Operation describes one endpoint of the API. Services resolve their
// method and path through it, and the openapi package documents it.
type Operation struct {
	OperationID string                 `json:"operationID,omitempty"`
	Input       model.Entity           `json:"input,omitempty"`
	Output      model.Entity           `json:"output,omitempty"`
	Method      string                 `json:"method,omitempty"`
	Path        string                 `json:"path,omitempty"`
	QueryParams model.Entity           `json:"queryParams,omitempty"`
	Description string                 `json:"description,omitempty"`
	Summary     string                 `json:"summary,omitempty"`
	SuccessCode int                    `json:"code,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Extensions  map[string]interface{} `json:"mapOfAnything,omitempty"`
	// List marks operations that respond with a JSON array of Output.
	List bool `json:"list,omitempty"`
}

type Option func(*Operation)

func WithOperationID(opID string) Option {
	return func(m *Operation) {
		m.OperationID = opID
	}
}

func WithDescription(desc string) Option {
	return func(m *Operation) {
		m.Description = desc
	}
}

func WithSuccessCode(code int) Option {
	return func(m *Operation) {
		m.SuccessCode = code
	}
}

func WithSummary(summary string) Option {
	return func(m *Operation) {
		m.Summary = summary
	}
}

func WithTags(tags ...string) Option {
	return func(m *Operation) {
		nonEmptyTags := make([]string, 0)
		for _, tag := range tags {
			if tag != "" {
				nonEmptyTags = append(nonEmptyTags, tag)
			}
		}
		m.Tags = nonEmptyTags
	}
}

func WithExtension(val map[string]interface{}) Option {
	return func(m *Operation) {
		m.Extensions = val
	}
}

func WithQuery(q model.Entity) Option {
	return func(m *Operation) {
		m.QueryParams = q
	}
}

func AsList() Option {
	return func(m *Operation) {
		m.List = true
	}
}

// HasBody reports whether the operation sends a request body.
func (o Operation) HasBody() bool {
	_, isNil := o.Input.(model.Nil)
	return o.Input != nil && !isNil
}

// Status is the HTTP status of a successful response, 200 unless set.
func (o Operation) Status() int {
	if o.SuccessCode == 0 {
		return http.StatusOK
	}
	return o.SuccessCode
}

func (r *Registry) registerOp(m Operation, group string) {
	if grp, ok := r.resources[group]; ok {
		grp[toKey(m.Method, m.Path)] = m
	} else {
		r.resources[group] = Resource{toKey(m.Method, m.Path): m}
	}
	if m.OperationID != "" {
		r.byID[m.OperationID] = m
	}
}

func register[I, O model.Entity](r *Registry, method string, group string, path string, opts ...Option) {
	var i I
	var o O

	m := Operation{
		Method: method,
		Path:   path,
		Input:  i,
		Output: o,
	}

	for _, opt := range opts {
		opt(&m)
	}

	r.RegisterEntity(i)
	r.RegisterEntity(o)
	if m.QueryParams != nil {
		r.RegisterEntity(m.QueryParams)
	}

	r.registerOp(m, group)
}
