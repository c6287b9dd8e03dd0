package model

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/xeipuuv/gojsonschema"
)

// Violation is a single JSON Schema failure, located by a gojsonschema
// field path such as "browserSettings.viewport.width".
type Violation struct {
	field   string
	details map[string]any
	Message string `json:"message"`
}

func (v Violation) Field() string {
	return v.field
}

func (v Violation) Details() map[string]any {
	return v.details
}

// SchemaError collects every violation found while checking a document
// against its model's JSON Schema.
type SchemaError struct {
	Model      string      `json:"model,omitempty"`
	Violations []Violation `json:"violations"`
}

func (e SchemaError) Error() string {
	d, err := json.Marshal(e)
	if err != nil {
		return err.Error()
	}

	return string(d)
}

func (e SchemaError) Is(target error) bool { return target == ErrInvalidData }

func newSchemaError(name string, result *gojsonschema.Result) SchemaError {
	out := make([]Violation, 0, len(result.Errors()))
	for _, res := range result.Errors() {
		switch res.(type) {
		case *gojsonschema.NumberAllOfError, *gojsonschema.NumberAnyOfError, *gojsonschema.NumberOneOfError:
			continue
		default:
			out = append(out, Violation{
				field:   res.Field(),
				details: res.Details(),
				Message: violationMessage(res),
			})
		}
	}

	e := SchemaError{Model: name, Violations: out}
	SortViolations(&e)

	return e
}

// SortViolations orders violations by message so reports are stable.
func SortViolations(e *SchemaError) {
	slices.SortFunc(e.Violations, func(a, b Violation) int { return cmp.Compare(a.Message, b.Message) })
}

// IsSchemaError reports whether err carries a SchemaError.
func IsSchemaError(err error) bool {
	var se SchemaError
	return errors.As(err, &se)
}

func violationMessage(resErr gojsonschema.ResultError) string {
	switch resErr.(type) {
	case *gojsonschema.RequiredError:
		return fmt.Sprintf("Property '%s' is missing", resErr.Details()["property"])
	case *gojsonschema.StringLengthGTEError:
		return fmt.Sprintf("Property '%s' is too short", resErr.Field())
	case *gojsonschema.StringLengthLTEError:
		return fmt.Sprintf("Property '%s' is too long", resErr.Field())
	case *gojsonschema.ArrayMinItemsError:
		return fmt.Sprintf("Property '%s' must contain at least %d items", resErr.Field(), resErr.Details()["min"])
	case *gojsonschema.ArrayMaxItemsError:
		return fmt.Sprintf("Property '%s' must contain at most %d items", resErr.Field(), resErr.Details()["max"])
	case *gojsonschema.AdditionalPropertyNotAllowedError:
		return fmt.Sprintf("Property '%s' doesn't allow key: %s", resErr.Field(), resErr.Details()["property"])
	case *gojsonschema.InvalidTypeError:
		return fmt.Sprintf("Property '%s' should be of type %s", resErr.Field(), resErr.Details()["expected"])
	case *gojsonschema.EnumError:
		return fmt.Sprintf("Property '%s' should be one of %s", resErr.Field(), resErr.Details()["allowed"])
	case *gojsonschema.NumberGTEError:
		return fmt.Sprintf("Property '%s' should be at least %v", resErr.Field(), resErr.Details()["min"])
	case *gojsonschema.NumberLTEError:
		return fmt.Sprintf("Property '%s' should be at most %v", resErr.Field(), resErr.Details()["max"])
	case *gojsonschema.DoesNotMatchPatternError:
		return fmt.Sprintf("Property '%s' should match pattern %s", resErr.Field(), resErr.Details()["pattern"])
	case *gojsonschema.DoesNotMatchFormatError:
		return fmt.Sprintf("Property '%s' should be a valid %s", resErr.Field(), resErr.Details()["format"])
	default:
		return fmt.Sprintf("[%T]: %s", resErr, resErr.Description())
	}
}
