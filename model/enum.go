package model

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/tailbits/browserkit/rawjson"
)

// RawKind is the set of wire types an enum can be carried as.
type RawKind interface {
	~string | ~int64 | ~float64 | ~bool
}

// EnumType is the registry of known variants of one open enum: a
// bijection between symbolic values S and raw wire values R. It is built
// once at package init and never changes.
type EnumType[R RawKind, S comparable] struct {
	name    string
	toRaw   map[S]R
	fromRaw map[R]S
	order   []S
}

// NewEnumType panics if two symbols share a raw value.
func NewEnumType[R RawKind, S comparable](name string, variants map[S]R) *EnumType[R, S] {
	t := &EnumType[R, S]{
		name:    name,
		toRaw:   make(map[S]R, len(variants)),
		fromRaw: make(map[R]S, len(variants)),
	}
	for s, r := range variants {
		if prev, dup := t.fromRaw[r]; dup {
			panic(fmt.Sprintf("model: enum %s: %#v and %#v share raw value %#v", name, prev, s, r))
		}
		t.toRaw[s] = r
		t.fromRaw[r] = s
		t.order = append(t.order, s)
	}
	slices.SortFunc(t.order, func(a, b S) int {
		ra, rb := fmt.Sprint(t.toRaw[a]), fmt.Sprint(t.toRaw[b])
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		}
		return 0
	})
	return t
}

func (t *EnumType[R, S]) Name() string { return t.name }

// Known lists the symbolic variants ordered by raw value.
func (t *EnumType[R, S]) Known() []S {
	return slices.Clone(t.order)
}

// RawOf returns the wire value of a registered symbol.
func (t *EnumType[R, S]) RawOf(s S) (R, bool) {
	r, ok := t.toRaw[s]
	return r, ok
}

// Of returns the enum holding a known variant. It panics for a symbol
// that was never registered. The symbol is printed with %#v so that a
// String method built on Of is never called from here.
func (t *EnumType[R, S]) Of(s S) Enum[R, S] {
	if _, ok := t.toRaw[s]; !ok {
		panic(fmt.Sprintf("model: enum %s: %#v is not a registered variant", t.name, s))
	}
	return Enum[R, S]{typ: t, sym: s, known: true}
}

// FromRaw classifies a raw value. Unknown raw values are kept as is.
func (t *EnumType[R, S]) FromRaw(r R) Enum[R, S] {
	if s, ok := t.fromRaw[r]; ok {
		return Enum[R, S]{typ: t, sym: s, known: true}
	}
	return Enum[R, S]{typ: t, raw: r}
}

// Decode classifies a raw JSON value. Only a value of the wrong JSON
// type is an error; unknown values of the right type decode to an
// unknown enum.
func (t *EnumType[R, S]) Decode(v rawjson.Value) (Enum[R, S], error) {
	r, ok := rawOf[R](v)
	if !ok {
		return Enum[R, S]{}, mismatch(t.name, v)
	}
	return t.FromRaw(r), nil
}

// Parse decodes a JSON document holding a single enum value.
func (t *EnumType[R, S]) Parse(data []byte) (Enum[R, S], error) {
	v, err := rawjson.Decode(data)
	if err != nil {
		return Enum[R, S]{}, err
	}
	return t.Decode(v)
}

// Enum is a value of an open enum: either a known symbolic variant or
// a raw value the SDK does not recognize.
type Enum[R RawKind, S comparable] struct {
	typ   *EnumType[R, S]
	sym   S
	raw   R
	known bool
}

// Value returns the symbolic variant and true when it is known.
func (e Enum[R, S]) Value() (S, bool) {
	return e.sym, e.known
}

// Raw returns the wire value for both known and unknown enums.
func (e Enum[R, S]) Raw() R {
	if e.known {
		return e.typ.toRaw[e.sym]
	}
	return e.raw
}

func (e Enum[R, S]) Known() bool { return e.known }

// Validate fails with InvalidEnumValueError when the enum is unknown.
func (e Enum[R, S]) Validate() error {
	if e.known {
		return nil
	}
	name := "enum"
	if e.typ != nil {
		name = e.typ.name
	}
	return &InvalidEnumValueError{Enum: name, Value: e.JSONValue().String()}
}

// Equal compares wire values, so a known variant equals an unknown
// enum carrying the same raw value.
func (e Enum[R, S]) Equal(o Enum[R, S]) bool {
	return e.Raw() == o.Raw()
}

func (e Enum[R, S]) JSONValue() rawjson.Value {
	return rawValueOf(e.Raw())
}

func (e Enum[R, S]) MarshalJSON() ([]byte, error) {
	return e.JSONValue().MarshalJSON()
}

func (e Enum[R, S]) String() string {
	return fmt.Sprint(e.Raw())
}

// EnumOf is the codec of an enum type.
func EnumOf[R RawKind, S comparable](t *EnumType[R, S]) Codec[Enum[R, S]] {
	kind := schemaTypeOf[R]()
	return NewCodec(t.name, kind, t.Decode,
		func(e Enum[R, S]) (rawjson.Value, error) { return e.JSONValue(), nil },
	)
}

func rawOf[R RawKind](v rawjson.Value) (R, bool) {
	var r R
	rv := reflect.ValueOf(&r).Elem()
	switch rv.Kind() {
	case reflect.String:
		s, ok := v.Str()
		if !ok {
			return r, false
		}
		rv.SetString(s)
	case reflect.Int64:
		n, ok := v.Int64()
		if !ok {
			return r, false
		}
		rv.SetInt(n)
	case reflect.Float64:
		f, ok := v.Float64()
		if !ok {
			return r, false
		}
		rv.SetFloat(f)
	case reflect.Bool:
		b, ok := v.Bool()
		if !ok {
			return r, false
		}
		rv.SetBool(b)
	default:
		return r, false
	}
	return r, true
}

func rawValueOf[R RawKind](r R) rawjson.Value {
	rv := reflect.ValueOf(r)
	switch rv.Kind() {
	case reflect.String:
		return rawjson.String(rv.String())
	case reflect.Int64:
		return rawjson.Int(rv.Int())
	case reflect.Float64:
		return rawjson.Float(rv.Float())
	case reflect.Bool:
		return rawjson.Bool(rv.Bool())
	}
	return rawjson.Null()
}

func schemaTypeOf[R RawKind]() string {
	var r R
	switch reflect.ValueOf(r).Kind() {
	case reflect.String:
		return "string"
	case reflect.Int64:
		return "integer"
	case reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	}
	return ""
}
