package crn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01234567", "01234567"},
		{"1234567", "01234567"},
		{"123", "00000123"},
		{"sc123456", "SC123456"},
		{" ni 012345 ", "NI012345"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("01234567"))
	require.NoError(t, Validate("SC123456"))
	require.NoError(t, Validate("NI012345"))

	assert.Error(t, Validate(""))
	assert.Error(t, Validate("1234567"))   // too short
	assert.Error(t, Validate("123456789")) // too long
	assert.Error(t, Validate("S1234567"))  // one-letter prefix
	assert.Error(t, Validate("sc123456"))  // not normalized
	assert.Error(t, Validate("SC12345X"))
}
