package browserkit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/swaggest/jsonschema-go"
	"github.com/tailbits/browserkit/model"
)

// DereferenceSchema adds the schema of every registered model that
// schema refers to, directly or through another definition, to its
// definitions.
func (r *Registry) DereferenceSchema(schema []byte) ([]byte, error) {
	var sch jsonschema.Schema
	if err := json.Unmarshal(schema, &sch); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: schema[%s] %w", string(schema), err)
	}

	for {
		var missing []string
		walkRefs(&sch, func(ref *string) {
			id := strings.TrimPrefix(*ref, "#/definitions/")
			if _, ok := sch.Definitions[id]; !ok {
				missing = append(missing, id)
			}
		})
		if len(missing) == 0 {
			break
		}

		for _, id := range missing {
			if _, ok := sch.Definitions[id]; ok {
				continue
			}
			// that means we have an external reference
			// we need to dereference it
			e, ok := r.GetEntity(id)
			if !ok {
				return nil, fmt.Errorf("entity %s not found", id)
			}

			entSch, err := parseSchema(e)
			if err != nil {
				return nil, err
			}
			sch.WithDefinitionsItem(id, entSch.ToSchemaOrBool())
		}
	}

	return json.Marshal(sch)
}

// CheckSchema validates the JSON of e against its dereferenced schema.
func (r *Registry) CheckSchema(e model.Entity) error {
	body, err := e.JSONValue().MarshalJSON()
	if err != nil {
		return err
	}
	return r.checkBody(e, body)
}

func (r *Registry) checkBody(e model.WithSchema, body []byte) error {
	schema, err := r.DereferenceSchema(e.Schema())
	if err != nil {
		return fmt.Errorf("dereferenceSchema ent[%s]: %w", e.Name(), err)
	}
	return model.CheckSchema(e.Name(), schema, body)
}

func parseSchema(e model.WithSchema) (jsonschema.Schema, error) {
	var sch jsonschema.Schema
	if err := json.Unmarshal(e.Schema(), &sch); err != nil {
		return sch, fmt.Errorf("schema of %s: %w", e.Name(), err)
	}
	return sch, nil
}
