package username

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Valid with underscore and digits", input: "Player_123", want: true},
		{name: "Minimum length", input: "abc", want: true},
		{name: "Maximum length", input: "abcdefghijklmnop", want: true},
		{name: "Too short", input: "ab", want: false},
		{name: "Too long", input: "this_name_is_too_long_12", want: false},
		{name: "Invalid characters", input: "bad name!", want: false},
		{name: "Dash is not allowed", input: "bad-name", want: false},
		{name: "Empty", input: "", want: false},
		{name: "Unicode letters", input: "игрок", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Steve", Normalize("  Steve \n"))
	assert.True(t, Validate(Normalize(" Player_123 ")))
}
