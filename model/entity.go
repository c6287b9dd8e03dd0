package model

import (
	"github.com/tailbits/browserkit/rawjson"
)

// Model is a value backed by a frozen raw JSON object. Typed accessors
// read through to the raw object on every call.
type Model interface {
	Encoder
	Validator
	Raw() *rawjson.Object
}

// WithName is an interface for defining a name for a data type.
// The name is used for generating API documentation and for uniquely identifying the data type.
type WithName interface {
	Name() string
}

// WithSchema is an interface for defining a schema and example data for a data type.
// The schema is used for deep validation and for generating API documentation, along with the example data.
type WithSchema interface {
	WithName
	Schema() []byte
	Example() []byte
}

// Entity is a model with a name, a JSON Schema and a declared shape.
type Entity interface {
	Model
	WithSchema
	Shape() Shape
}
