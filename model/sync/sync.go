// Package sync provides utilities for vetting model shapes against their declared schemas.
package sync

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/swaggest/jsonschema-go"
	"github.com/tailbits/browserkit/model"
)

// Dereferencer inlines the definitions a schema refers to.
type Dereferencer interface {
	DereferenceSchema(schema []byte) ([]byte, error)
}

type Validator struct {
	Sch   *jsonschema.Schema
	Shape model.Shape
	Name  string
}

func New(d Dereferencer, ent model.Entity) (*Validator, error) {
	sch, err := d.DereferenceSchema(ent.Schema())
	if err != nil {
		return nil, fmt.Errorf("error dereferencing schema for %s: %w", ent.Name(), err)
	}

	return newValidator(ent.Name(), ent.Shape(), sch)
}

// IsSynced fails on the first property that differs between the shape
// and the schema.
func (v *Validator) IsSynced() error {
	sch, _, err := v.resolve(v.Sch)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Name, err)
	}

	if t, _, err := schemaType(sch); err != nil || t != "object" {
		return &SchemaTypeError{Expected: "object", Got: t, Breadcrumbs: v.Name}
	}

	for _, f := range v.Shape.Fields {
		crumbs := v.Name + "." + f.Key

		prop, ok := sch.Properties[f.Key]
		if !ok {
			return &MissingPropertyError{Property: f.Key, Breadcrumbs: v.Name}
		}

		inSchema := slices.Contains(sch.Required, f.Key)
		if inSchema != f.Required {
			return &RequiredPropertyError{Property: f.Key, InSchema: inSchema, Breadcrumbs: v.Name}
		}

		if prop.TypeObject == nil {
			continue
		}
		if err := v.checkField(f, prop.TypeObject, crumbs); err != nil {
			return err
		}
	}

	for _, k := range slices.Sorted(maps.Keys(sch.Properties)) {
		if _, ok := v.Shape.Field(k); !ok {
			return &AdditionalPropertyError{Property: k, Breadcrumbs: v.Name}
		}
	}

	return nil
}

func (v *Validator) checkField(f model.Field, sch *jsonschema.Schema, breadcrumbs string) error {
	sch, nullable, err := v.resolve(sch)
	if err != nil {
		return fmt.Errorf("%s: %w", breadcrumbs, err)
	}

	want := f.Type.SchemaType()
	if sch.Type != nil {
		t, nullableSimpleType, err := schemaType(sch)
		if err != nil {
			return fmt.Errorf("%s: %w", breadcrumbs, err)
		}
		nullable = nullable || nullableSimpleType

		if want != "" && t != want {
			return &SchemaTypeError{Expected: t, Got: want, Breadcrumbs: breadcrumbs}
		}
	} else if want != "" {
		return fmt.Errorf("%s: schema is missing a type", breadcrumbs)
	}

	switch {
	case f.Nullable && !nullable:
		return &NullableFieldError{Message: "must be nullable", Breadcrumbs: breadcrumbs}
	case !f.Nullable && nullable:
		return &NullableFieldError{Message: "must not be nullable", Breadcrumbs: breadcrumbs}
	}

	return nil
}

// schemaType is the JSON type of sch. A type list may only add "null"
// to a single type.
func schemaType(sch *jsonschema.Schema) (t string, nullable bool, err error) {
	if sch.Type == nil {
		return "", false, errors.New("schema is missing a type")
	}

	if sch.Type.SimpleTypes != nil {
		return string(*sch.Type.SimpleTypes), false, nil
	}

	var types []string
	for _, t := range sch.Type.SliceOfSimpleTypeValues {
		if t == "null" {
			nullable = true
		} else {
			types = append(types, string(t))
		}
	}

	if len(types) != 1 {
		return "", false, fmt.Errorf("expected exactly one non-null type, got %v", types)
	}

	return types[0], nullable, nil
}

// resolve follows a #/definitions ref and unwraps oneOf [null, ref],
// reporting whether null was allowed.
func (v *Validator) resolve(sch *jsonschema.Schema) (*jsonschema.Schema, bool, error) {
	if sch.Ref != nil {
		defPrefix := "#/definitions/"
		if !strings.HasPrefix(*sch.Ref, defPrefix) {
			return nil, false, fmt.Errorf("references must be prefixed with %s", defPrefix)
		}
		key := strings.TrimPrefix(*sch.Ref, defPrefix)
		ref, ok := v.Sch.Definitions[key]
		if !ok || ref.TypeObject == nil {
			return nil, false, fmt.Errorf("could not find reference %s", *sch.Ref)
		}
		return ref.TypeObject, false, nil
	}

	nullable := false
	inner := sch
	for _, alt := range sch.OneOf {
		o := alt.TypeObject
		switch {
		case o == nil:
		case o.Type != nil && o.Type.SimpleTypes != nil && *o.Type.SimpleTypes == jsonschema.Null:
			nullable = true
		case o.Ref != nil:
			resolved, refNullable, err := v.resolve(o)
			if err != nil {
				return nil, false, err
			}
			inner = resolved
			nullable = nullable || refNullable
		}
	}
	return inner, nullable, nil
}

func newValidator(name string, shape model.Shape, sch []byte) (*Validator, error) {
	var parsed jsonschema.Schema
	if err := parsed.UnmarshalJSON(sch); err != nil {
		return nil, fmt.Errorf("schema of %s: %w", name, err)
	}
	return &Validator{
		Sch:   &parsed,
		Shape: shape,
		Name:  name,
	}, nil
}
