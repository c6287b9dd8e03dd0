package jsonmerge_test

import (
	"errors"
	"testing"

	"github.com/tailbits/browserkit/jsonmerge"
	"github.com/tailbits/browserkit/rawjson"
	"gotest.tools/v3/assert"
)

func obj(t *testing.T, s string) *rawjson.Object {
	t.Helper()
	o, err := rawjson.DecodeObject([]byte(s))
	assert.NilError(t, err)
	return o
}

func TestMergeStrategies(t *testing.T) {
	base := `{"projectId":"p1","keepAlive":false,"browserSettings":{"blockAds":true}}`
	extra := `{"keepAlive":true,"browserSettings":{"solveCaptchas":false},"x-trace":"abc"}`

	cases := []struct {
		name string
		opts jsonmerge.Options
		want string
	}{
		{
			name: "overwrite",
			opts: jsonmerge.Options{Strategy: jsonmerge.OverwriteDuplicates},
			want: `{"projectId":"p1","keepAlive":true,"browserSettings":{"solveCaptchas":false},"x-trace":"abc"}`,
		},
		{
			name: "keep existing",
			opts: jsonmerge.Options{Strategy: jsonmerge.KeepExisting},
			want: `{"projectId":"p1","keepAlive":false,"browserSettings":{"blockAds":true},"x-trace":"abc"}`,
		},
		{
			name: "deep overwrite",
			opts: jsonmerge.Options{Strategy: jsonmerge.OverwriteDuplicates, Deep: true},
			want: `{"projectId":"p1","keepAlive":true,"browserSettings":{"blockAds":true,"solveCaptchas":false},"x-trace":"abc"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := obj(t, base), obj(t, extra)
			got, err := jsonmerge.NewWithOptions(tc.opts).Merge(a, b)
			assert.NilError(t, err)
			assert.Equal(t, got.String(), tc.want)
			assert.Assert(t, got.Frozen())

			assert.Equal(t, a.String(), base, "inputs are untouched")
			assert.Equal(t, b.String(), extra)
		})
	}
}

func TestMergeErrorOnDuplicates(t *testing.T) {
	m := jsonmerge.NewWithOptions(jsonmerge.Options{Strategy: jsonmerge.ErrorOnDuplicates, Deep: true})

	_, err := m.Merge(obj(t, `{"a":{"b":1}}`), obj(t, `{"a":{"b":2}}`))
	var dup *jsonmerge.DuplicateKeyError
	assert.Assert(t, errors.As(err, &dup))
	assert.Equal(t, dup.Key, "a.b")

	got, err := m.Merge(obj(t, `{"a":{"b":1}}`), obj(t, `{"a":{"c":2}}`))
	assert.NilError(t, err)
	assert.Equal(t, got.String(), `{"a":{"b":1,"c":2}}`)
}

func TestMergeNothing(t *testing.T) {
	got, err := jsonmerge.New().Merge()
	assert.NilError(t, err)
	assert.Equal(t, got.String(), `{}`)
}
