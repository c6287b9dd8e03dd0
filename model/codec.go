package model

import (
	"strconv"
	"time"

	"github.com/tailbits/browserkit/rawjson"
)

// Validator is implemented by models, enums and unions.
type Validator interface {
	Validate() error
}

// Encoder is implemented by every value that is backed by raw JSON.
type Encoder interface {
	JSONValue() rawjson.Value
}

// Codec converts between a raw JSON value and a typed Go value. Decode
// only checks the value's own shape; Check also validates nested
// models, enums and unions.
type Codec[T any] struct {
	name       string
	schemaType string
	decode     func(rawjson.Value) (T, error)
	encode     func(T) (rawjson.Value, error)
	check      func(rawjson.Value) error
}

// NewCodec builds a codec from a decode and an encode function.
// schemaType is the JSON Schema type the codec produces, or "" when the
// value may take several JSON types.
func NewCodec[T any](name, schemaType string, decode func(rawjson.Value) (T, error), encode func(T) (rawjson.Value, error)) Codec[T] {
	return Codec[T]{name: name, schemaType: schemaType, decode: decode, encode: encode}
}

func (c Codec[T]) Name() string       { return c.name }
func (c Codec[T]) SchemaType() string { return c.schemaType }

func (c Codec[T]) Decode(v rawjson.Value) (T, error) {
	return c.decode(v)
}

func (c Codec[T]) Encode(v T) (rawjson.Value, error) {
	return c.encode(v)
}

func (c Codec[T]) Check(v rawjson.Value) error {
	if c.check != nil {
		return c.check(v)
	}
	t, err := c.decode(v)
	if err != nil {
		return err
	}
	if val, ok := any(t).(Validator); ok {
		return val.Validate()
	}
	return nil
}

var (
	String = NewCodec("string", "string",
		func(v rawjson.Value) (string, error) {
			s, ok := v.Str()
			if !ok {
				return "", mismatch("string", v)
			}
			return s, nil
		},
		func(s string) (rawjson.Value, error) { return rawjson.String(s), nil },
	)

	Bool = NewCodec("boolean", "boolean",
		func(v rawjson.Value) (bool, error) {
			b, ok := v.Bool()
			if !ok {
				return false, mismatch("boolean", v)
			}
			return b, nil
		},
		func(b bool) (rawjson.Value, error) { return rawjson.Bool(b), nil },
	)

	Int = NewCodec("integer", "integer",
		func(v rawjson.Value) (int64, error) {
			n, ok := v.Int64()
			if !ok {
				return 0, mismatch("integer", v)
			}
			return n, nil
		},
		func(n int64) (rawjson.Value, error) { return rawjson.Int(n), nil },
	)

	Float = NewCodec("number", "number",
		func(v rawjson.Value) (float64, error) {
			f, ok := v.Float64()
			if !ok {
				return 0, mismatch("number", v)
			}
			return f, nil
		},
		func(f float64) (rawjson.Value, error) { return rawjson.Float(f), nil },
	)

	// Time reads and writes RFC 3339 timestamps.
	Time = NewCodec("date-time", "string",
		func(v rawjson.Value) (time.Time, error) {
			s, ok := v.Str()
			if !ok {
				return time.Time{}, mismatch("date-time", v)
			}
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				e := mismatch("date-time", v)
				e.Detail = err.Error()
				return time.Time{}, e
			}
			return t, nil
		},
		func(t time.Time) (rawjson.Value, error) { return rawjson.String(t.Format(time.RFC3339Nano)), nil },
	)

	// Any passes the raw value through untouched.
	Any = NewCodec("any", "",
		func(v rawjson.Value) (rawjson.Value, error) { return v, nil },
		func(v rawjson.Value) (rawjson.Value, error) { return v, nil },
	)
)

// Literal accepts only the string want, as used for union discriminators.
func Literal(want string) Codec[string] {
	name := strconv.Quote(want)
	return NewCodec(name, "string",
		func(v rawjson.Value) (string, error) {
			s, ok := v.Str()
			if !ok {
				return "", mismatch(name, v)
			}
			if s != want {
				e := mismatch(name, v)
				e.Detail = "got " + strconv.Quote(s)
				return "", e
			}
			return s, nil
		},
		func(s string) (rawjson.Value, error) {
			if s != want {
				return rawjson.Value{}, &TypeMismatchError{Expected: name, Got: rawjson.KindString, Detail: "got " + strconv.Quote(s)}
			}
			return rawjson.String(s), nil
		},
	)
}

// ArrayOf decodes a JSON array whose elements all use elem.
func ArrayOf[T any](elem Codec[T]) Codec[[]T] {
	c := NewCodec("array of "+elem.name, "array",
		func(v rawjson.Value) ([]T, error) {
			if v.Kind() != rawjson.KindArray {
				return nil, mismatch("array", v)
			}
			out := make([]T, 0, v.Len())
			for i, item := range v.Items() {
				t, err := elem.decode(item)
				if err != nil {
					return nil, nest(indexKey(i), err)
				}
				out = append(out, t)
			}
			return out, nil
		},
		func(ts []T) (rawjson.Value, error) {
			items := make([]rawjson.Value, 0, len(ts))
			for i, t := range ts {
				item, err := elem.encode(t)
				if err != nil {
					return rawjson.Value{}, nest(indexKey(i), err)
				}
				items = append(items, item)
			}
			return rawjson.Array(items...), nil
		},
	)
	c.check = func(v rawjson.Value) error {
		if v.Kind() != rawjson.KindArray {
			return mismatch("array", v)
		}
		for i, item := range v.Items() {
			if err := elem.Check(item); err != nil {
				return nest(indexKey(i), err)
			}
		}
		return nil
	}
	return c
}

// MapOf decodes a JSON object with arbitrary keys whose values all use
// elem. Key order is not kept in the resulting map.
func MapOf[T any](elem Codec[T]) Codec[map[string]T] {
	c := NewCodec("map of "+elem.name, "object",
		func(v rawjson.Value) (map[string]T, error) {
			obj, ok := v.Object()
			if !ok {
				return nil, mismatch("object", v)
			}
			out := make(map[string]T, obj.Len())
			for k, item := range obj.Entries() {
				t, err := elem.decode(item)
				if err != nil {
					return nil, nest(k, err)
				}
				out[k] = t
			}
			return out, nil
		},
		func(m map[string]T) (rawjson.Value, error) {
			obj := rawjson.NewObject()
			for _, k := range sortedKeys(m) {
				item, err := elem.encode(m[k])
				if err != nil {
					return rawjson.Value{}, nest(k, err)
				}
				if err := obj.Set(k, item); err != nil {
					return rawjson.Value{}, err
				}
			}
			return rawjson.ObjectValue(obj), nil
		},
	)
	c.check = func(v rawjson.Value) error {
		obj, ok := v.Object()
		if !ok {
			return mismatch("object", v)
		}
		for k, item := range obj.Entries() {
			if err := elem.Check(item); err != nil {
				return nest(k, err)
			}
		}
		return nil
	}
	return c
}

// ModelOf decodes a nested model. Decoding only checks that the value is
// an object; the model's own properties are validated lazily.
func ModelOf[T interface {
	Encoder
	Validator
}](name string, fromRaw func(*rawjson.Object) T) Codec[T] {
	return NewCodec(name, "object",
		func(v rawjson.Value) (T, error) {
			obj, ok := v.Object()
			if !ok {
				var zero T
				return zero, mismatch(name, v)
			}
			return fromRaw(obj), nil
		},
		func(t T) (rawjson.Value, error) { return t.JSONValue(), nil },
	)
}
