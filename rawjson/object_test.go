package rawjson_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/tailbits/browserkit/rawjson"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func keys(o *rawjson.Object) []string {
	return slices.Collect(o.Keys())
}

func TestObjectKeepsInsertionOrder(t *testing.T) {
	o := rawjson.NewObject()
	assert.NilError(t, o.Set("b", rawjson.Int(1)))
	assert.NilError(t, o.Set("a", rawjson.Int(2)))
	assert.NilError(t, o.Set("c", rawjson.Int(3)))
	assert.NilError(t, o.Set("b", rawjson.Int(4)))

	assert.DeepEqual(t, keys(o), []string{"b", "a", "c"})

	out, err := o.MarshalJSON()
	assert.NilError(t, err)
	assert.Equal(t, string(out), `{"b":4,"a":2,"c":3}`)
}

func TestObjectDelete(t *testing.T) {
	o := rawjson.NewObject()
	assert.NilError(t, o.Set("a", rawjson.Int(1)))
	assert.NilError(t, o.Set("b", rawjson.Int(2)))
	assert.NilError(t, o.Delete("a"))
	assert.NilError(t, o.Delete("missing"))

	assert.Check(t, !o.Has("a"))
	assert.DeepEqual(t, keys(o), []string{"b"})
}

func TestFreezeRejectsMutation(t *testing.T) {
	o := rawjson.NewObject()
	assert.NilError(t, o.Set("a", rawjson.String("x")))
	before := o.String()

	frozen := o.Freeze()
	assert.Check(t, frozen == o)
	assert.Check(t, o.Frozen())
	assert.Check(t, o.Freeze() == o, "freezing twice is a no-op")

	err := o.Set("a", rawjson.String("y"))
	var fme *rawjson.FrozenMutationError
	assert.Assert(t, errors.As(err, &fme))
	assert.Equal(t, fme.Key, "a")
	assert.Check(t, errors.Is(err, rawjson.ErrFrozen))

	assert.ErrorIs(t, o.Delete("a"), rawjson.ErrFrozen)
	assert.Equal(t, o.String(), before)
}

func TestFreezeIsRecursive(t *testing.T) {
	inner := rawjson.NewObject()
	assert.NilError(t, inner.Set("x", rawjson.Int(1)))

	outer := rawjson.NewObject()
	assert.NilError(t, outer.Set("inner", rawjson.ObjectValue(inner)))
	assert.NilError(t, outer.Set("list", rawjson.Array(rawjson.ObjectValue(rawjson.NewObject()))))
	outer.Freeze()

	assert.Check(t, inner.Frozen())
	list, _ := outer.Get("list")
	nested, ok := list.Index(0).Object()
	assert.Assert(t, ok)
	assert.Check(t, nested.Frozen())
}

func TestCloneIsMutableCopy(t *testing.T) {
	o, err := rawjson.DecodeObject([]byte(`{"a":{"b":1}}`))
	assert.NilError(t, err)

	c := o.Clone()
	assert.Check(t, !c.Frozen())
	assert.NilError(t, c.Set("z", rawjson.Bool(true)))
	assert.Check(t, !o.Has("z"))

	a, _ := c.Get("a")
	inner, _ := a.Object()
	assert.NilError(t, inner.Set("b", rawjson.Int(2)))
	assert.Equal(t, o.String(), `{"a":{"b":1}}`)
}

func TestEqualIgnoresOrder(t *testing.T) {
	a, err := rawjson.DecodeObject([]byte(`{"x":1,"y":{"p":[1,2],"q":null}}`))
	assert.NilError(t, err)
	b, err := rawjson.DecodeObject([]byte(`{"y":{"q":null,"p":[1,2.0]},"x":1.0}`))
	assert.NilError(t, err)

	assert.Check(t, a.Equal(b))
	assert.Check(t, b.Equal(a))

	c, err := rawjson.DecodeObject([]byte(`{"x":1,"y":{"p":[2,1],"q":null}}`))
	assert.NilError(t, err)
	assert.Check(t, !a.Equal(c), "array order matters")

	d, err := rawjson.DecodeObject([]byte(`{"x":1}`))
	assert.NilError(t, err)
	assert.Check(t, !a.Equal(d))
}

func TestEntriesRestartable(t *testing.T) {
	o, err := rawjson.DecodeObject([]byte(`{"c":1,"a":2,"b":3}`))
	assert.NilError(t, err)

	first := keys(o)
	second := keys(o)
	assert.DeepEqual(t, first, second)
	assert.DeepEqual(t, first, []string{"c", "a", "b"})

	var seen []string
	for k := range o.Entries() {
		seen = append(seen, k)
		if k == "a" {
			break
		}
	}
	assert.DeepEqual(t, seen, []string{"c", "a"})
}

func TestFrozenObjectConcurrentReads(t *testing.T) {
	o, err := rawjson.DecodeObject([]byte(`{"a":1,"b":[1,2,3],"c":{"d":"e"}}`))
	assert.NilError(t, err)
	want := o.String()

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = o.String()
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Check(t, is.Equal(got, want))
	}
}

func TestNilObject(t *testing.T) {
	var o *rawjson.Object
	_, ok := o.Get("a")
	assert.Check(t, !ok)
	assert.Equal(t, o.Len(), 0)
	assert.Check(t, o.Equal(rawjson.NewObject()))
	assert.ErrorIs(t, o.Set("a", rawjson.Null()), rawjson.ErrFrozen)
}
