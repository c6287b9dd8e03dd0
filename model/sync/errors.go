package sync

import (
	"fmt"
)

// SchemaTypeError reports a property whose codec produces a different
// JSON type than the schema declares.
type SchemaTypeError struct {
	Expected    string
	Got         string
	Breadcrumbs string
}

func (e *SchemaTypeError) Error() string {
	return fmt.Sprintf("%s: got %s when schema expects %s", e.Breadcrumbs, e.Got, e.Expected)
}

// NullableFieldError reports a property whose nullability differs
// between the shape and the schema.
type NullableFieldError struct {
	Message     string
	Breadcrumbs string
}

func (e *NullableFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Breadcrumbs, e.Message)
}

type MissingPropertyError struct {
	Property    string
	Breadcrumbs string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s: schema is missing property %s", e.Breadcrumbs, e.Property)
}

type AdditionalPropertyError struct {
	Property    string
	Breadcrumbs string
}

func (e *AdditionalPropertyError) Error() string {
	return fmt.Sprintf("%s: schema has an additional property %s", e.Breadcrumbs, e.Property)
}

// RequiredPropertyError reports a property that is required on one side
// only.
type RequiredPropertyError struct {
	Property    string
	InSchema    bool
	Breadcrumbs string
}

func (e *RequiredPropertyError) Error() string {
	if e.InSchema {
		return fmt.Sprintf("%s: schema requires %s but the model treats it as optional", e.Breadcrumbs, e.Property)
	}
	return fmt.Sprintf("%s: model requires %s but the schema does not list it as required", e.Breadcrumbs, e.Property)
}
