package model_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type color int

const (
	red color = iota + 1
	blue
)

var colorType = model.NewEnumType("Color", map[color]string{
	red:  "red",
	blue: "blue",
})

var colorCodec = model.EnumOf(colorType)

type point struct {
	model.Object
}

var pointShape = model.Shape{Name: "Point", Fields: []model.Field{
	{Key: "x", Required: true, Type: model.Int},
	{Key: "y", Required: true, Type: model.Int},
}}

func (p point) Validate() error { return model.ValidateObject(p.Raw(), pointShape) }

var pointCodec = model.ModelOf("Point", func(o *rawjson.Object) point { return point{model.Wrap(o)} })

type widget struct {
	model.Object
}

var widgetShape = model.Shape{Name: "Widget", Fields: []model.Field{
	{Key: "id", Required: true, Type: model.String},
	{Key: "enabled", Type: model.Bool},
	{Key: "note", Nullable: true, Type: model.String},
	{Key: "color", Type: colorCodec},
	{Key: "origin", Type: pointCodec},
	{Key: "path", Type: model.ArrayOf(pointCodec)},
	{Key: "createdAt", Type: model.Time},
}}

func (w widget) Name() string { return "Widget" }
func (w widget) Schema() []byte {
	return []byte(`{
		"type": "object",
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"enabled": {"type": "boolean"},
			"note": {"type": ["string", "null"]},
			"color": {"type": "string", "enum": ["red", "blue"]},
			"createdAt": {"type": "string", "format": "date-time"}
		},
		"required": ["id"]
	}`)
}
func (w widget) Example() []byte     { return []byte(`{"id":"w_1","enabled":true,"color":"blue"}`) }
func (w widget) Shape() model.Shape  { return widgetShape }
func (w widget) Validate() error     { return model.ValidateObject(w.Raw(), widgetShape) }
func (w widget) ID() (string, error) { return model.Get(w.Raw(), "id", model.String) }
func (w widget) Enabled() (model.Optional[bool], error) {
	return model.GetOptional(w.Raw(), "enabled", model.Bool)
}
func (w widget) Note() (model.Nullable[string], error) {
	return model.GetNullable(w.Raw(), "note", model.String)
}

func decodeWidget(t *testing.T, s string) widget {
	t.Helper()
	var w widget
	assert.NilError(t, json.Unmarshal([]byte(s), &w))
	return w
}

func TestLazyValidation(t *testing.T) {
	w := decodeWidget(t, `{"id":123,"enabled":true}`)

	enabled, err := w.Enabled()
	assert.NilError(t, err, "unrelated accessors keep working")
	v, ok := enabled.Get()
	assert.Check(t, ok && v)

	_, err = w.ID()
	var tm *model.TypeMismatchError
	assert.Assert(t, errors.As(err, &tm))
	assert.Check(t, is.Equal(tm.Field, "id"))
	assert.Check(t, is.Equal(tm.Got, rawjson.KindNumber))

	err = w.Validate()
	assert.ErrorIs(t, err, model.ErrInvalidData)
	var ide *model.InvalidDataError
	assert.Assert(t, errors.As(err, &ide))
	assert.Check(t, is.Equal(ide.Path, "id"))
}

func TestMissingRequiredField(t *testing.T) {
	w := decodeWidget(t, `{"enabled":false}`)

	var missing *model.MissingRequiredFieldError
	_, err := w.ID()
	assert.Assert(t, errors.As(err, &missing))
	assert.Check(t, is.Equal(missing.Field, "id"))

	err = w.Validate()
	assert.Assert(t, errors.As(err, &missing))
	assert.Check(t, is.Equal(missing.Field, "id"))
}

func TestNullableTriState(t *testing.T) {
	absent := decodeWidget(t, `{"id":"a"}`)
	null := decodeWidget(t, `{"id":"a","note":null}`)
	present := decodeWidget(t, `{"id":"a","note":"hi"}`)

	n, err := absent.Note()
	assert.NilError(t, err)
	assert.Check(t, n.IsAbsent())

	n, err = null.Note()
	assert.NilError(t, err)
	assert.Check(t, n.IsNull())

	n, err = present.Note()
	assert.NilError(t, err)
	s, ok := n.Get()
	assert.Check(t, ok)
	assert.Check(t, is.Equal(s, "hi"))

	for _, w := range []widget{absent, null, present} {
		assert.NilError(t, w.Validate())
	}
}

func TestOptionalNullReadsAsNone(t *testing.T) {
	w := decodeWidget(t, `{"id":"a","enabled":null}`)
	enabled, err := w.Enabled()
	assert.NilError(t, err)
	assert.Check(t, !enabled.IsSet())
	assert.NilError(t, w.Validate())
}

func TestBuilderOptionalAndNullable(t *testing.T) {
	b := model.NewBuilder()
	model.Set(b, "id", model.String, "w_1")
	model.SetOptional(b, "enabled", model.Bool, model.Some(true))
	model.SetOptional(b, "enabled", model.Bool, model.None[bool]())
	model.SetNullable(b, "note", model.String, model.NullOf[string]())
	raw, err := b.Finish()
	assert.NilError(t, err)

	assert.Equal(t, raw.String(), `{"id":"w_1","note":null}`)
	assert.Check(t, raw.Frozen())

	model.Set(b, "id", model.String, "w_2")
	assert.ErrorIs(t, b.Err(), rawjson.ErrFrozen)
	_, err = b.Finish()
	assert.ErrorIs(t, err, rawjson.ErrFrozen)
}

func TestBuilderFromKeepsUnknownFields(t *testing.T) {
	w := decodeWidget(t, `{"id":"a","extra":{"k":[1,2]}}`)

	b := model.BuilderFrom(w.Raw())
	model.Set(b, "id", model.String, "b")
	raw, err := b.Finish()
	assert.NilError(t, err)

	assert.Equal(t, raw.String(), `{"id":"b","extra":{"k":[1,2]}}`)
	assert.Equal(t, w.Raw().String(), `{"id":"a","extra":{"k":[1,2]}}`, "source is untouched")
}

func TestNestedValidationPath(t *testing.T) {
	w := decodeWidget(t, `{"id":"a","origin":{"x":1,"y":2},"path":[{"x":1,"y":1},{"x":"1","y":2}]}`)

	origin, err := model.Get(w.Raw(), "origin", pointCodec)
	assert.NilError(t, err)
	assert.NilError(t, origin.Validate())

	err = w.Validate()
	var ide *model.InvalidDataError
	assert.Assert(t, errors.As(err, &ide))
	assert.Check(t, is.Equal(ide.Path, "path[1].x"))
	assert.ErrorContains(t, err, "expected integer, got string")
}

func TestTimeCodec(t *testing.T) {
	w := decodeWidget(t, `{"id":"a","createdAt":"2024-05-01T10:00:00.5Z"}`)
	ts, err := model.Get(w.Raw(), "createdAt", model.Time)
	assert.NilError(t, err)
	assert.Check(t, ts.Equal(time.Date(2024, 5, 1, 10, 0, 0, 5e8, time.UTC)))

	bad := decodeWidget(t, `{"id":"a","createdAt":"yesterday"}`)
	assert.ErrorIs(t, bad.Validate(), model.ErrInvalidData)
}

func TestEnumKnownAndUnknown(t *testing.T) {
	known := colorType.Of(red)
	assert.Check(t, known.Known())
	assert.Check(t, is.Equal(known.Raw(), "red"))
	assert.NilError(t, known.Validate())

	unknown := colorType.FromRaw("mauve")
	_, ok := unknown.Value()
	assert.Check(t, !ok)
	assert.Check(t, is.Equal(unknown.Raw(), "mauve"))

	var iev *model.InvalidEnumValueError
	assert.Assert(t, errors.As(unknown.Validate(), &iev))
	assert.Check(t, is.Equal(iev.Value, `"mauve"`))

	out, err := json.Marshal(unknown)
	assert.NilError(t, err)
	assert.Equal(t, string(out), `"mauve"`)

	assert.Check(t, colorType.FromRaw("blue").Equal(colorType.Of(blue)))
	assert.DeepEqual(t, colorType.Known(), []color{blue, red})
}

func TestEnumFieldForwardCompatible(t *testing.T) {
	w := decodeWidget(t, `{"id":"a","color":"mauve"}`)

	c, err := model.GetOptional(w.Raw(), "color", colorCodec)
	assert.NilError(t, err, "reading an unknown value is not an error")
	v, _ := c.Get()
	assert.Check(t, !v.Known())

	err = w.Validate()
	var ide *model.InvalidDataError
	assert.Assert(t, errors.As(err, &ide))
	assert.Check(t, is.Equal(ide.Path, "color"))

	w = decodeWidget(t, `{"id":"a","color":7}`)
	_, err = model.GetOptional(w.Raw(), "color", colorCodec)
	assert.ErrorContains(t, err, "color: expected Color, got number")
}

func TestEnumOfUnregisteredPanics(t *testing.T) {
	defer func() {
		assert.Check(t, recover() != nil)
	}()
	colorType.Of(color(99))
}

var shapeUnion = &model.UnionType{
	Name:          "Shape",
	Discriminator: "kind",
	Variants: []model.Variant{
		{Tag: "circle", Discriminant: "circle"},
		{Tag: "square", Discriminant: "square", Check: func(v rawjson.Value) error {
			o, _ := v.Object()
			return model.ValidateObject(o, model.Shape{Fields: []model.Field{{Key: "side", Required: true, Type: model.Float}}})
		}},
	},
}

var flagOrList = &model.UnionType{
	Name: "FlagOrList",
	Variants: []model.Variant{
		{Tag: "flag", Match: func(v rawjson.Value) bool { return v.Kind() == rawjson.KindBool }},
		{Tag: "list", Match: func(v rawjson.Value) bool { return v.Kind() == rawjson.KindArray }},
	},
}

func TestTaggedUnionStampsDiscriminator(t *testing.T) {
	payload, err := rawjson.Decode([]byte(`{"side":2,"kind":"circle"}`))
	assert.NilError(t, err)

	u := shapeUnion.New("square", payload)
	out, err := json.Marshal(u)
	assert.NilError(t, err)
	assert.Equal(t, string(out), `{"kind":"square","side":2}`)
	assert.NilError(t, u.Validate())

	back, err := shapeUnion.Decode(u.Payload())
	assert.NilError(t, err)
	assert.Check(t, is.Equal(back.Tag(), "square"))
	assert.Check(t, back.Equal(u))
}

func TestUnionDecodeErrors(t *testing.T) {
	v, err := rawjson.Decode([]byte(`{"kind":"hexagon"}`))
	assert.NilError(t, err)
	_, err = shapeUnion.Decode(v)
	var uve *model.UnrecognizedVariantError
	assert.Assert(t, errors.As(err, &uve))
	assert.Check(t, is.Equal(uve.Got, `kind="hexagon"`))

	_, err = flagOrList.Decode(rawjson.String("yes"))
	assert.ErrorIs(t, err, model.ErrInvalidData)

	u, err := flagOrList.Decode(rawjson.Array())
	assert.NilError(t, err)
	assert.Check(t, is.Equal(u.Tag(), "list"))

	bad, err := shapeUnion.Decode(mustDecode(t, `{"kind":"square"}`))
	assert.NilError(t, err, "payload is checked lazily")
	assert.ErrorContains(t, bad.Validate(), "side")
}

func TestUnionEquality(t *testing.T) {
	a := flagOrList.New("flag", rawjson.Bool(true))
	b := flagOrList.New("flag", rawjson.Bool(true))
	c := flagOrList.New("flag", rawjson.Bool(false))
	assert.Check(t, a.Equal(b))
	assert.Check(t, !a.Equal(c))
}

func TestCheckSchemaReportsAllViolations(t *testing.T) {
	w := decodeWidget(t, `{"id":"","enabled":"yes","color":"mauve"}`)
	body, err := w.MarshalJSON()
	assert.NilError(t, err)

	err = model.CheckSchema(w.Name(), w.Schema(), body)
	assert.Check(t, model.IsSchemaError(err))
	assert.ErrorIs(t, err, model.ErrInvalidData)

	var se model.SchemaError
	assert.Assert(t, errors.As(err, &se))
	assert.Check(t, is.Equal(se.Model, "Widget"))
	assert.Check(t, is.Len(se.Violations, 3))

	assert.NilError(t, model.CheckSchema(w.Name(), w.Schema(), w.Example()))
	assert.ErrorIs(t, model.CheckSchema(w.Name(), w.Schema(), nil), model.ErrBodyEmpty)
}

func TestViolationsAreSorted(t *testing.T) {
	e := model.SchemaError{Violations: []model.Violation{
		{Message: "bbb"},
		{Message: "aaa"},
	}}
	want := model.SchemaError{Violations: []model.Violation{
		{Message: "aaa"},
		{Message: "bbb"},
	}}

	model.SortViolations(&e)

	assert.DeepEqual(t, e, want, cmpViolations)
}

func TestExample(t *testing.T) {
	w, err := model.Example[widget]()
	assert.NilError(t, err)
	id, err := w.ID()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(id, "w_1"))
	assert.Check(t, w.Raw().Frozen())
}

func TestZeroModelIsEmptyObject(t *testing.T) {
	var w widget
	assert.Check(t, w.IsZero())
	out, err := json.Marshal(w)
	assert.NilError(t, err)
	assert.Equal(t, string(out), `{}`)

	var n model.Nil
	assert.NilError(t, n.Validate())
}

var cmpViolations = cmpopts.IgnoreUnexported(model.Violation{})

func mustDecode(t *testing.T, s string) rawjson.Value {
	t.Helper()
	v, err := rawjson.Decode([]byte(s))
	assert.NilError(t, err)
	return v
}
