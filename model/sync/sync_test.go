package sync_test

import (
	"errors"
	"testing"

	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/model/sync"
	"gotest.tools/v3/assert"
)

var _ model.Entity = testModel{}

type testModel struct {
	model.Object
	sch []byte
}

var testShape = model.Shape{Name: "TestCase", Fields: []model.Field{
	{Key: "count", Required: true, Type: model.Int},
	{Key: "discardedAt", Nullable: true, Type: model.Time},
	{Key: "omittable", Type: model.String},
	{Key: "tags", Type: model.ArrayOf(model.String)},
}}

func (t testModel) Example() []byte    { return []byte(`{"count": 1}`) }
func (t testModel) Name() string       { return "TestCase" }
func (t testModel) Schema() []byte     { return t.sch }
func (t testModel) Shape() model.Shape { return testShape }
func (t testModel) Validate() error    { return model.ValidateObject(t.Raw(), testShape) }

type identity struct{}

func (identity) DereferenceSchema(sch []byte) ([]byte, error) { return sch, nil }

type testCase struct {
	Name string
	Sch  string
	Err  error
}

var testCases = []testCase{
	{
		Name: "valid schema",
		Sch:  `{"type":"object","properties":{"count":{"type":"integer"},"discardedAt":{"type":["string","null"],"format":"date-time"},"omittable":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}}},"required":["count"]}`,
	},
	{
		Name: "error: not nullable",
		Sch:  `{"type":"object","properties":{"count":{"type":"integer"},"discardedAt":{"type":"string"},"omittable":{"type":"string"},"tags":{"type":"array"}},"required":["count"]}`,
		Err:  &sync.NullableFieldError{},
	},
	{
		Name: "error: string -> int",
		Sch:  `{"type":"object","properties":{"count":{"type":"string"},"discardedAt":{"type":["string","null"]},"omittable":{"type":"string"},"tags":{"type":"array"}},"required":["count"]}`,
		Err:  &sync.SchemaTypeError{},
	},
	{
		Name: "error: extra property",
		Sch:  `{"type":"object","properties":{"count":{"type":"integer"},"discardedAt":{"type":["string","null"]},"omittable":{"type":"string"},"tags":{"type":"array"},"extra":{"type":"string"}},"required":["count"]}`,
		Err:  &sync.AdditionalPropertyError{},
	},
	{
		Name: "error: missing property",
		Sch:  `{"type":"object","properties":{"count":{"type":"integer"},"discardedAt":{"type":["string","null"]},"tags":{"type":"array"}},"required":["count"]}`,
		Err:  &sync.MissingPropertyError{},
	},
	{
		Name: "error: required mismatch",
		Sch:  `{"type":"object","properties":{"count":{"type":"integer"},"discardedAt":{"type":["string","null"]},"omittable":{"type":"string"},"tags":{"type":"array"}},"required":["count","omittable"]}`,
		Err:  &sync.RequiredPropertyError{},
	},
	{
		Name: "ref resolves to object",
		Sch:  `{"type":"object","definitions":{"Tags":{"type":"array"}},"properties":{"count":{"type":"integer"},"discardedAt":{"type":["string","null"]},"omittable":{"type":"string"},"tags":{"$ref":"#/definitions/Tags"}},"required":["count"]}`,
	},
}

func TestSchemaSync(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			validator, err := sync.New(identity{}, testModel{sch: []byte(tc.Sch)})
			assert.NilError(t, err)

			err = validator.IsSynced()
			if tc.Err == nil {
				assert.NilError(t, err)
				return
			}
			assert.Assert(t, err != nil, "expected %T", tc.Err)

			switch want := tc.Err.(type) {
			case *sync.SchemaTypeError:
				assert.Assert(t, errors.As(err, &want), "got %v", err)
				assert.Equal(t, want.Expected, "string")
				assert.Equal(t, want.Got, "integer")
			case *sync.AdditionalPropertyError:
				assert.Assert(t, errors.As(err, &want), "got %v", err)
				assert.Equal(t, want.Property, "extra")
			case *sync.MissingPropertyError:
				assert.Assert(t, errors.As(err, &want), "got %v", err)
				assert.Equal(t, want.Property, "omittable")
			case *sync.RequiredPropertyError:
				assert.Assert(t, errors.As(err, &want), "got %v", err)
				assert.Equal(t, want.Property, "omittable")
				assert.Assert(t, want.InSchema)
			case *sync.NullableFieldError:
				assert.Assert(t, errors.As(err, &want), "got %v", err)
				assert.Equal(t, want.Breadcrumbs, "TestCase.discardedAt")
			default:
				t.Fatalf("unexpected error type: %T", err)
			}
		})
	}
}
