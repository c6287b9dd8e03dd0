package model

import (
	"fmt"

	"github.com/tailbits/browserkit/rawjson"
)

// Variant is one alternative of a union.
type Variant struct {
	Tag string
	// Discriminant is the value of the discriminator property that
	// selects this variant in a tagged union.
	Discriminant string
	// Match selects the variant of an untagged union by the payload's
	// shape. The first matching variant wins.
	Match func(rawjson.Value) bool
	// Check validates the payload. Nil means any payload is valid.
	Check func(rawjson.Value) error
}

// UnionType lists the variants of a closed union. A union with a
// Discriminator is tagged: the variant is named by a string property of
// the payload object.
type UnionType struct {
	Name          string
	Discriminator string
	Variants      []Variant
}

func (t *UnionType) variant(tag string) (Variant, bool) {
	for _, v := range t.Variants {
		if v.Tag == tag {
			return v, true
		}
	}
	return Variant{}, false
}

// New builds a union holding payload as the variant tag. For tagged
// unions the discriminator is written first in the payload, so callers
// never set it themselves. New panics on a tag the union does not
// declare, or on a non-object payload for a tagged union.
func (t *UnionType) New(tag string, payload rawjson.Value) Union {
	v, ok := t.variant(tag)
	if !ok {
		panic(fmt.Sprintf("model: union %s has no variant %q", t.Name, tag))
	}
	if t.Discriminator == "" {
		return Union{typ: t, tag: tag, raw: payload}
	}

	src, ok := payload.Object()
	if !ok {
		panic(fmt.Sprintf("model: union %s: variant %q needs an object payload", t.Name, tag))
	}
	obj := rawjson.NewObject()
	_ = obj.Set(t.Discriminator, rawjson.String(v.Discriminant))
	for k, item := range src.Entries() {
		if k == t.Discriminator {
			continue
		}
		_ = obj.Set(k, item)
	}
	return Union{typ: t, tag: tag, raw: rawjson.ObjectValue(obj.Freeze())}
}

// Decode picks the variant of a raw value. It fails with
// UnrecognizedVariantError when no variant accepts the value.
func (t *UnionType) Decode(v rawjson.Value) (Union, error) {
	if t.Discriminator == "" {
		for _, variant := range t.Variants {
			if variant.Match != nil && variant.Match(v) {
				return Union{typ: t, tag: variant.Tag, raw: v}, nil
			}
		}
		return Union{}, &UnrecognizedVariantError{Union: t.Name, Got: v.Kind().String()}
	}

	obj, ok := v.Object()
	if !ok {
		return Union{}, mismatch(t.Name, v)
	}
	d, ok := obj.Get(t.Discriminator)
	if !ok {
		return Union{}, &UnrecognizedVariantError{Union: t.Name, Got: "missing " + t.Discriminator}
	}
	ds, ok := d.Str()
	if !ok {
		return Union{}, &UnrecognizedVariantError{Union: t.Name, Got: fmt.Sprintf("%s=%s", t.Discriminator, d)}
	}
	for _, variant := range t.Variants {
		if variant.Discriminant == ds {
			return Union{typ: t, tag: variant.Tag, raw: v}, nil
		}
	}
	return Union{}, &UnrecognizedVariantError{Union: t.Name, Got: fmt.Sprintf("%s=%q", t.Discriminator, ds)}
}

// Union is a value of a closed union: the tag of the active variant and
// its raw payload.
type Union struct {
	typ *UnionType
	tag string
	raw rawjson.Value
}

func (u Union) Tag() string { return u.tag }

// Payload returns the raw value of the active variant.
func (u Union) Payload() rawjson.Value { return u.raw }

func (u Union) IsZero() bool { return u.typ == nil }

func (u Union) Validate() error {
	if u.typ == nil {
		return &UnrecognizedVariantError{Union: "union", Got: "empty value"}
	}
	v, _ := u.typ.variant(u.tag)
	if v.Check == nil {
		return nil
	}
	return v.Check(u.raw)
}

// Equal reports whether both unions hold the same variant with equal
// payloads.
func (u Union) Equal(o Union) bool {
	return u.tag == o.tag && u.raw.Equal(o.raw)
}

func (u Union) JSONValue() rawjson.Value { return u.raw }

func (u Union) MarshalJSON() ([]byte, error) {
	return u.raw.MarshalJSON()
}

// UnionOf is the codec of a union type. wrap converts the generic union
// into the generated union type.
func UnionOf[T interface {
	Encoder
	Validator
}](t *UnionType, wrap func(Union) T) Codec[T] {
	return NewCodec(t.Name, "",
		func(v rawjson.Value) (T, error) {
			u, err := t.Decode(v)
			if err != nil {
				var zero T
				return zero, err
			}
			return wrap(u), nil
		},
		func(v T) (rawjson.Value, error) { return v.JSONValue(), nil },
	)
}
