package browserkit

import (
	"maps"
	"slices"
	"strings"

	"github.com/tailbits/browserkit/model"
)

// Resource groups the operations of one API resource by method and path.
type Resource map[string]Operation

func (mg Resource) FirstOp() (Operation, bool) {
	keys := slices.Sorted(maps.Keys(mg))
	if len(keys) == 0 {
		return Operation{}, false
	}
	return mg[keys[0]], true
}

// Registry holds the operations of the API and every model they use.
// It is built once by NewRegistry and only read afterwards.
type Registry struct {
	resources map[string]Resource
	entities  map[string]model.Entity
	byID      map[string]Operation
}

func newRegistry() *Registry {
	return &Registry{
		resources: make(map[string]Resource),
		entities:  make(map[string]model.Entity),
		byID:      make(map[string]Operation),
	}
}

func toKey(method string, path string) string {
	return method + ":" + path
}

// RegisterEntity records e under its name. The Nil entity is skipped.
func (r *Registry) RegisterEntity(e model.Entity) {
	if e == nil {
		return
	}
	if _, isNil := e.(model.Nil); isNil {
		return
	}
	r.entities[e.Name()] = e
}

func (r *Registry) GetEntity(name string) (model.Entity, bool) {
	e, ok := r.entities[name]

	return e, ok
}

// GetModel looks up an entity ignoring case.
func (r *Registry) GetModel(name string) (model.Entity, bool) {
	if e, ok := r.entities[name]; ok {
		return e, true
	}
	for n, e := range r.entities {
		if strings.EqualFold(n, name) {
			return e, true
		}
	}
	return nil, false
}

// Entities returns the registered entities ordered by name.
func (r *Registry) Entities() []model.Entity {
	out := make([]model.Entity, 0, len(r.entities))
	for _, name := range slices.Sorted(maps.Keys(r.entities)) {
		out = append(out, r.entities[name])
	}
	return out
}

func (r *Registry) Resources() []string {
	return slices.Sorted(maps.Keys(r.resources))
}

func (r *Registry) Resource(group string) (Resource, bool) {
	rsc, ok := r.resources[group]
	return rsc, ok
}

// Op finds an operation by its operation ID.
func (r *Registry) Op(id string) (Operation, bool) {
	op, ok := r.byID[id]
	return op, ok
}

// TaggedOps returns all operations that have all the tags provided
func (r *Registry) TaggedOps(tags ...string) []Operation {
	ops := make([]Operation, 0, len(r.byID))

	for _, op := range r.Ops() {
		if len(op.Tags) < len(tags) {
			continue
		}

		hasAllTags := true
		for _, requiredTag := range tags {
			if !slices.Contains(op.Tags, requiredTag) {
				hasAllTags = false
				break
			}
		}

		if hasAllTags {
			ops = append(ops, op)
		}
	}
	return ops
}

func (r *Registry) FindOp(method string, path string) (Operation, bool) {
	for _, grp := range r.resources {
		if op, ok := grp[toKey(method, path)]; ok {
			return op, true
		}
	}
	return Operation{}, false
}

// Ops returns every operation ordered by path, then method.
func (r *Registry) Ops() []Operation {
	var ops []Operation
	for _, grp := range r.resources {
		for _, op := range grp {
			ops = append(ops, op)
		}
	}
	slices.SortFunc(ops, func(a, b Operation) int {
		if c := strings.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return strings.Compare(a.Method, b.Method)
	})
	return ops
}

func (r *Registry) Endpoints(transform func(string) string) []string {
	unique := make(map[string]bool)

	for _, grp := range r.resources {
		for key := range grp {
			unique[transform(key)] = true
		}
	}

	return slices.Sorted(maps.Keys(unique))
}
