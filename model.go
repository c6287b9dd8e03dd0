package browserkit

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/swaggest/jsonschema-go"
	"github.com/tailbits/browserkit/model"
)

const componentsPrefix = "#/components/schemas/"

var _ jsonschema.Exposer = (*Model)(nil)

// Model exposes a model's JSON Schema to the OpenAPI reflector. A list
// model stands for a JSON array of the model.
type Model struct {
	jsonschema.Struct
	model.WithSchema
	List bool
}

// NewModel describes ent as an OpenAPI component named after it.
func NewModel(ent model.WithSchema) Model {
	return Model{
		Struct:     jsonschema.Struct{DefName: ent.Name()},
		WithSchema: ent,
	}
}

// NewListModel describes a JSON array of ent.
func NewListModel(ent model.WithSchema) Model {
	m := NewModel(ent)
	m.DefName = ent.Name() + "List"
	m.List = true
	return m
}

// IsNil reports whether m stands for an empty body.
func (m Model) IsNil() bool {
	if m.WithSchema == nil {
		return true
	}
	_, isNil := m.WithSchema.(model.Nil)
	return isNil
}

func (m Model) JSONSchema() (jsonschema.Schema, error) {
	if m.List {
		ref := componentRef(m.Name())
		item := ref.ToSchemaOrBool()
		var sch jsonschema.Schema
		sch.WithType(jsonschema.Array.Type())
		sch.WithItems(jsonschema.Items{SchemaOrBool: &item})
		return sch, nil
	}

	raw := m.Schema()
	if raw == nil {
		return jsonschema.Schema{}, nil
	}

	var sch jsonschema.Schema
	if err := json.Unmarshal(raw, &sch); err != nil {
		return sch, fmt.Errorf("schema of %s: %w", m.Name(), err)
	}

	var ex map[string]any
	if err := json.Unmarshal(m.Example(), &ex); err != nil {
		return sch, fmt.Errorf("example of %s: %w", m.Name(), err)
	}
	sch.WithExamples(ex)

	// Model schemas point at each other through #/definitions; in the
	// OpenAPI document they live under components.
	walkRefs(&sch, func(ref *string) {
		id := strings.TrimPrefix(*ref, "#/definitions/")
		*ref = componentsPrefix + strings.TrimPrefix(id, componentsPrefix)
	})

	return sch, nil
}

func componentRef(name string) jsonschema.Schema {
	var s jsonschema.Schema
	s.WithRef(componentsPrefix + name)
	return s
}

// walkRefs calls f with every $ref of schema and of its definitions.
func walkRefs(schema *jsonschema.Schema, f func(*string)) {
	if schema == nil {
		return
	}

	roots := []*jsonschema.Schema{schema}
	for _, def := range schema.Definitions {
		if def.TypeObject != nil {
			roots = append(roots, def.TypeObject)
		}
	}

	for _, root := range roots {
		for s := range subschemas(root) {
			if s.Ref != nil {
				f(s.Ref)
			}
		}
	}
}

// subschemas yields s and every schema nested in it, depth first.
func subschemas(s *jsonschema.Schema) iter.Seq[*jsonschema.Schema] {
	return func(yield func(*jsonschema.Schema) bool) {
		var visit func(*jsonschema.Schema) bool
		visit = func(s *jsonschema.Schema) bool {
			if !yield(s) {
				return false
			}
			for _, child := range children(s) {
				if child != nil && child.TypeObject != nil && !visit(child.TypeObject) {
					return false
				}
			}
			return true
		}
		visit(s)
	}
}

func children(s *jsonschema.Schema) []*jsonschema.SchemaOrBool {
	out := []*jsonschema.SchemaOrBool{s.AdditionalItems, s.Contains, s.AdditionalProperties, s.Not}

	if s.Items != nil {
		out = append(out, s.Items.SchemaOrBool)
		for i := range s.Items.SchemaArray {
			out = append(out, &s.Items.SchemaArray[i])
		}
	}
	for _, prop := range s.Properties {
		out = append(out, &prop)
	}
	for _, group := range [][]jsonschema.SchemaOrBool{s.AllOf, s.AnyOf, s.OneOf} {
		for i := range group {
			out = append(out, &group[i])
		}
	}
	return out
}
