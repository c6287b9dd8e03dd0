package browserkit_test

import (
	"net/url"
	"testing"

	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/rawjson"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestSessionListParamsURLQuery(t *testing.T) {
	tests := []struct {
		Name     string
		Params   string
		Expected url.Values
	}{
		{
			Name:     "Empty params",
			Params:   `{}`,
			Expected: url.Values{},
		},
		{
			Name:     "Declared params",
			Params:   `{"status":"COMPLETED","q":"user_metadata['env']:'ci'"}`,
			Expected: url.Values{"status": {"COMPLETED"}, "q": {"user_metadata['env']:'ci'"}},
		},
		{
			Name:     "Unknown enum value is sent as is",
			Params:   `{"status":"PAUSED"}`,
			Expected: url.Values{"status": {"PAUSED"}},
		},
		{
			Name:     "Undeclared scalars",
			Params:   `{"limit":25,"ratio":0.50,"verbose":true}`,
			Expected: url.Values{"limit": {"25"}, "ratio": {"0.50"}, "verbose": {"true"}},
		},
		{
			Name:     "Arrays repeat the key",
			Params:   `{"status":"RUNNING","region":["us-west-2","eu-central-1",{"skip":true}]}`,
			Expected: url.Values{"status": {"RUNNING"}, "region": {"us-west-2", "eu-central-1"}},
		},
		{
			Name:     "Objects and nulls are skipped",
			Params:   `{"q":null,"filter":{"a":1}}`,
			Expected: url.Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			obj, err := rawjson.DecodeObject([]byte(tt.Params))
			assert.NilError(t, err)

			got := browserkit.SessionListParamsFromRaw(obj).URLQuery()
			assert.Check(t, is.DeepEqual(got, tt.Expected))
		})
	}
}
