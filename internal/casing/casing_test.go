package casing

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		In       string
		Expected string
	}{
		{In: "Session", Expected: "session"},
		{In: "SessionCreateParams", Expected: "session-create-params"},
		{In: "SessionLiveURLs", Expected: "session-live-ur-ls"},
		{In: "snake_case", Expected: "snake-case"},
	}

	for _, tt := range tests {
		t.Run(tt.In, func(t *testing.T) {
			assert.Equal(t, ToKebabCase(tt.In), tt.Expected)
		})
	}
}

func TestKebabToTitleCase(t *testing.T) {
	assert.Equal(t, KebabToTitleCase("sessions"), "Sessions")
	assert.Equal(t, KebabToTitleCase("live-urls"), "Live Urls")
}
