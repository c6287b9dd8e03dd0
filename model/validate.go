package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrBodyEmpty occurs when there is no document to check.
var ErrBodyEmpty = errors.New("body empty")

var compiled sync.Map // string(schemaDoc) -> *gojsonschema.Schema

// CheckSchema validates body against a fully dereferenced JSON Schema
// document. It is the deep counterpart of Model.Validate: every
// violation is reported, not just the first. name is only used to
// label the resulting SchemaError.
func CheckSchema(name string, schemaDoc []byte, body []byte) error {
	if len(body) == 0 {
		return fmt.Errorf("check %s: %w", name, ErrBodyEmpty)
	}

	sch, err := compile(schemaDoc)
	if err != nil {
		return err
	}

	res, err := sch.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("json schema validate: %w", err)
	}

	if !res.Valid() {
		return newSchemaError(name, res)
	}

	return nil
}

func compile(schemaDoc []byte) (*gojsonschema.Schema, error) {
	key := string(schemaDoc)
	if s, ok := compiled.Load(key); ok {
		return s.(*gojsonschema.Schema), nil
	}

	doc := gojsonschema.NewBytesLoader(schemaDoc)
	sch, err := gojsonschema.NewSchema(doc)
	if err != nil {
		return nil, fmt.Errorf("gojsonschema.NewSchema: %w", err)
	}

	actual, _ := compiled.LoadOrStore(key, sch)
	return actual.(*gojsonschema.Schema), nil
}
