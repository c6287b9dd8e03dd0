package model

import (
	"maps"
	"slices"

	"github.com/tailbits/browserkit/rawjson"
)

// Get reads a required property. Every call converts the stored value
// again, nothing is cached.
func Get[T any](o *rawjson.Object, key string, c Codec[T]) (T, error) {
	var zero T
	v, ok := o.Get(key)
	if !ok {
		return zero, &MissingRequiredFieldError{Field: key}
	}
	t, err := c.Decode(v)
	if err != nil {
		return zero, fieldError(key, err)
	}
	return t, nil
}

// GetOptional reads a property that may be omitted. A stored JSON null
// reads as None.
func GetOptional[T any](o *rawjson.Object, key string, c Codec[T]) (Optional[T], error) {
	v, ok := o.Get(key)
	if !ok || v.IsNull() {
		return None[T](), nil
	}
	t, err := c.Decode(v)
	if err != nil {
		return None[T](), fieldError(key, err)
	}
	return Some(t), nil
}

// GetNullable reads a property that may be omitted or null.
func GetNullable[T any](o *rawjson.Object, key string, c Codec[T]) (Nullable[T], error) {
	v, ok := o.Get(key)
	switch {
	case !ok:
		return AbsentOf[T](), nil
	case v.IsNull():
		return NullOf[T](), nil
	}
	t, err := c.Decode(v)
	if err != nil {
		return AbsentOf[T](), fieldError(key, err)
	}
	return Value(t), nil
}

// Put writes a property into a mutable object.
func Put[T any](o *rawjson.Object, key string, c Codec[T], v T) error {
	raw, err := c.Encode(v)
	if err != nil {
		return fieldError(key, err)
	}
	return o.Set(key, raw)
}

// PutOptional writes v, or deletes the key when v is None.
func PutOptional[T any](o *rawjson.Object, key string, c Codec[T], v Optional[T]) error {
	t, ok := v.Get()
	if !ok {
		return o.Delete(key)
	}
	return Put(o, key, c, t)
}

// PutNullable writes v, a JSON null, or deletes the key, following v's
// presence.
func PutNullable[T any](o *rawjson.Object, key string, c Codec[T], v Nullable[T]) error {
	switch v.State() {
	case Null:
		return o.Set(key, rawjson.Null())
	case Present:
		t, _ := v.Get()
		return Put(o, key, c, t)
	default:
		return o.Delete(key)
	}
}

func sortedKeys[T any](m map[string]T) []string {
	return slices.Sorted(maps.Keys(m))
}
