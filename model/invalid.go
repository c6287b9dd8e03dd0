package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tailbits/browserkit/rawjson"
)

// ErrInvalidData is matched by every data-shape error in this package:
// missing required fields, type mismatches, unknown enum values and
// unrecognized union variants. Shape errors are deterministic and are
// never retried.
var ErrInvalidData = errors.New("invalid data")

// MissingRequiredFieldError reports a required property whose key is
// absent from the raw object.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingRequiredFieldError) Is(target error) bool { return target == ErrInvalidData }

// TypeMismatchError reports a stored value that cannot be converted to
// the property's declared type.
type TypeMismatchError struct {
	Field    string
	Expected string
	Got      rawjson.Kind
	Detail   string
}

func (e *TypeMismatchError) Error() string {
	var b strings.Builder
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "expected %s, got %s", e.Expected, e.Got)
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrInvalidData }

// InvalidEnumValueError reports an enum holding a raw value that matches
// none of its known variants.
type InvalidEnumValueError struct {
	Enum  string
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%s: unknown value %s", e.Enum, e.Value)
}

func (e *InvalidEnumValueError) Is(target error) bool { return target == ErrInvalidData }

// UnrecognizedVariantError reports a union payload that no variant
// accepts.
type UnrecognizedVariantError struct {
	Union string
	Got   string
}

func (e *UnrecognizedVariantError) Error() string {
	return fmt.Sprintf("%s: no variant matches %s", e.Union, e.Got)
}

func (e *UnrecognizedVariantError) Is(target error) bool { return target == ErrInvalidData }

// InvalidDataError locates a shape error inside a nested document. Path
// is a dotted property path with [i] for array elements, for example
// "browserSettings.fingerprint.browsers[1]".
type InvalidDataError struct {
	Path string
	Err  error
}

func (e *InvalidDataError) Error() string {
	if e.Path == "" {
		return "invalid data: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid data at %s: %v", e.Path, e.Err)
}

func (e *InvalidDataError) Unwrap() error { return e.Err }

func (e *InvalidDataError) Is(target error) bool { return target == ErrInvalidData }

// nest prefixes the path of err with key.
func nest(key string, err error) *InvalidDataError {
	var ide *InvalidDataError
	if errors.As(err, &ide) {
		return &InvalidDataError{Path: joinPath(key, ide.Path), Err: ide.Err}
	}
	return &InvalidDataError{Path: key, Err: err}
}

// fieldError attaches the property name to an error raised while
// converting the value stored under key.
func fieldError(key string, err error) error {
	switch e := err.(type) {
	case *TypeMismatchError:
		if e.Field == "" {
			cp := *e
			cp.Field = key
			return &cp
		}
		return &InvalidDataError{Path: key, Err: e}
	default:
		return nest(key, err)
	}
}

func joinPath(key, sub string) string {
	switch {
	case key == "":
		return sub
	case sub == "":
		return key
	case strings.HasPrefix(sub, "["):
		return key + sub
	default:
		return key + "." + sub
	}
}

func indexKey(i int) string {
	return fmt.Sprintf("[%d]", i)
}

func mismatch(expected string, got rawjson.Value) *TypeMismatchError {
	return &TypeMismatchError{Expected: expected, Got: got.Kind()}
}
