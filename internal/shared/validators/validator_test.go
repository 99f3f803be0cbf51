package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogToken(t *testing.T) {
	t.Parallel()

	type subject struct {
		Value string `validate:"logtoken"`
	}

	tests := []struct {
		value string
		valid bool
	}{
		{value: "app-01", valid: true},
		{value: "9f2c1e0", valid: true},
		{value: "prod/eu_1.example.com", valid: true},
		{value: "", valid: true},
		{value: "app 01", valid: false},
		{value: "app\t01", valid: false},
		{value: "app\n", valid: false},
		{value: "app\x00", valid: false},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			err := v.Struct(subject{Value: tt.value})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var validationErrors ValidationErrors
			assert.ErrorAs(t, err, &validationErrors)
			assert.Equal(t, TagLogToken, validationErrors[0].Tag())
		})
	}
}
