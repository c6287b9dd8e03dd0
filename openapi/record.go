package openapi

import (
	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/model"
)

// Record is one operation as it will appear in the document.
type Record struct {
	Input           *browserkit.Model
	Output          browserkit.Model
	ID              string
	Group           string
	Method          string
	Path            string
	PathSummary     string
	PathDescription string
	Description     string
	Summary         string
	SuccessStatus   int
	Tags            []string
	QueryParams     model.Entity
	Extensions      map[string]interface{}
}

func (r *Record) AddInputModel(m model.WithSchema) {
	if m != nil {
		inp := browserkit.NewModel(m)
		r.Input = &inp
	}
}

func (r *Record) AddOutputModel(m model.WithSchema, list bool) {
	if m == nil {
		m = model.Nil{}
	}
	if list {
		r.Output = browserkit.NewListModel(m)
		return
	}
	r.Output = browserkit.NewModel(m)
}

func (r *Record) AddQueryParams(q model.Entity) {
	r.QueryParams = q
}
