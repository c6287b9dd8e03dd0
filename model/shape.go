package model

import (
	"github.com/tailbits/browserkit/rawjson"
)

// Checker is the type-erased half of a Codec used by shapes.
type Checker interface {
	Name() string
	SchemaType() string
	Check(rawjson.Value) error
}

// Field declares one property of a model.
type Field struct {
	Key      string
	Required bool
	Nullable bool
	Type     Checker
}

// Shape is the list of properties a model declares, in wire order.
type Shape struct {
	Name   string
	Fields []Field
}

func (s Shape) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// ValidateObject checks the declared properties of o and fails on the
// first problem. Properties the shape does not declare are ignored.
func ValidateObject(o *rawjson.Object, s Shape) error {
	for _, f := range s.Fields {
		v, ok := o.Get(f.Key)
		if !ok {
			if f.Required {
				return &InvalidDataError{Path: f.Key, Err: &MissingRequiredFieldError{Field: f.Key}}
			}
			continue
		}

		if v.IsNull() {
			if f.Nullable || !f.Required {
				continue
			}
			return nest(f.Key, &TypeMismatchError{Expected: f.Type.Name(), Got: rawjson.KindNull})
		}

		if err := f.Type.Check(v); err != nil {
			return nest(f.Key, err)
		}
	}
	return nil
}
