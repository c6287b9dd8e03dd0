// Package model contains the raw-backed building blocks of the
// browserkit API types: models, codecs, enums and unions.
package model

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/tailbits/browserkit/rawjson"
)

// Object is embedded by every generated model. It holds the frozen raw
// object the model was decoded from or built into.
type Object struct {
	raw *rawjson.Object
}

// Wrap adopts raw as the backing object of a model. raw is frozen if it
// is not already.
func Wrap(raw *rawjson.Object) Object {
	if raw == nil {
		raw = rawjson.NewObject()
	}
	return Object{raw: raw.Freeze()}
}

// Raw returns the backing object, including properties the model does
// not declare.
func (m Object) Raw() *rawjson.Object {
	if m.raw == nil {
		return emptyObject
	}
	return m.raw
}

func (m Object) JSONValue() rawjson.Value {
	return rawjson.ObjectValue(m.Raw())
}

func (m Object) IsZero() bool {
	return m.raw == nil
}

func (m Object) MarshalJSON() ([]byte, error) {
	return m.Raw().MarshalJSON()
}

// UnmarshalJSON leaves m untouched when data is null.
func (m *Object) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	obj, err := rawjson.DecodeObject(data)
	if err != nil {
		return err
	}
	m.raw = obj
	return nil
}

func (m Object) String() string {
	return m.Raw().String()
}

// Hash digests the canonical form of the raw object. Models that are
// Equal have the same hash.
func (m Object) Hash() (string, error) {
	b, err := rawjson.Canonical(m.JSONValue())
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

var emptyObject = rawjson.NewObject().Freeze()

// Example decodes the example document of T. It fails if the example
// does not satisfy T's own validation.
func Example[T Entity]() (T, error) {
	var t T
	if err := json.Unmarshal(t.Example(), &t); err != nil {
		return t, fmt.Errorf("example %s: %w", t.Name(), err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("example %s: %w", t.Name(), err)
	}
	return t, nil
}

// MustExample is Example for package-level fixtures.
func MustExample[T Entity]() T {
	t, err := Example[T]()
	if err != nil {
		panic(err)
	}
	return t
}
