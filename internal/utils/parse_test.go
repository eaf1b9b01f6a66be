package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatOrZero(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2.5", 2.5},
		{"0", 0},
		{"7", 7},
		{" 3.5 ", 3.5},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"2h", 0},
		{"-1.5", -1.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFloatOrZero(tt.input), "input %q", tt.input)
	}
}
