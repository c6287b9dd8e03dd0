// Package jsonmerge merges raw JSON objects while keeping key order.
package jsonmerge

import (
	"fmt"

	"github.com/tailbits/browserkit/rawjson"
)

// Merger combines objects left to right.
type Merger interface {
	Merge(objects ...*rawjson.Object) (*rawjson.Object, error)
}

type Options struct {
	Strategy MergeStrategy
	// Deep merges nested objects present on both sides instead of
	// replacing them.
	Deep bool
}

type MergeStrategy int

const (
	OverwriteDuplicates MergeStrategy = iota
	ErrorOnDuplicates
	KeepExisting
)

func (s MergeStrategy) String() string {
	switch s {
	case ErrorOnDuplicates:
		return "error"
	case KeepExisting:
		return "keep"
	default:
		return "overwrite"
	}
}

// DuplicateKeyError is returned under ErrorOnDuplicates.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate property found: %s", e.Key)
}

func New() Merger {
	return NewWithOptions(Options{
		Strategy: OverwriteDuplicates,
	})
}

func NewWithOptions(opts Options) Merger {
	return &merger{opts: opts}
}

type merger struct {
	opts Options
}

// Merge returns a new frozen object. Keys of the first object keep their
// position; keys introduced later are appended in the order they are
// first seen. Inputs are never modified.
func (m *merger) Merge(objects ...*rawjson.Object) (*rawjson.Object, error) {
	result := rawjson.NewObject()
	for _, obj := range objects {
		if err := m.mergeInto(result, obj, ""); err != nil {
			return nil, err
		}
	}
	return result.Freeze(), nil
}

func (m *merger) mergeInto(dst, src *rawjson.Object, prefix string) error {
	for k, v := range src.Entries() {
		existing, exists := dst.Get(k)
		if !exists {
			if err := dst.Set(k, cloneValue(v)); err != nil {
				return err
			}
			continue
		}

		if m.opts.Deep {
			dstObj, ok1 := existing.Object()
			srcObj, ok2 := v.Object()
			if ok1 && ok2 {
				nested := dstObj
				if nested.Frozen() {
					nested = dstObj.Clone()
				}
				if err := m.mergeInto(nested, srcObj, prefix+k+"."); err != nil {
					return err
				}
				if err := dst.Set(k, rawjson.ObjectValue(nested)); err != nil {
					return err
				}
				continue
			}
		}

		switch m.opts.Strategy {
		case ErrorOnDuplicates:
			return &DuplicateKeyError{Key: prefix + k}
		case KeepExisting:
			continue
		}
		if err := dst.Set(k, cloneValue(v)); err != nil {
			return err
		}
	}
	return nil
}

// cloneValue detaches nested objects so the result can be extended
// without touching the inputs.
func cloneValue(v rawjson.Value) rawjson.Value {
	if obj, ok := v.Object(); ok {
		return rawjson.ObjectValue(obj.Clone())
	}
	return v
}
