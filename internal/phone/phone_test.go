package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "spaces_and_punctuation",
			in:       "+90 (555) 123-45-67",
			expected: "+905551234567",
		},
		{
			name:     "digits_only",
			in:       "5551234567",
			expected: "5551234567",
		},
		{
			name:     "plus_not_leading_dropped",
			in:       "555+123",
			expected: "555123",
		},
		{
			name:     "letters_dropped",
			in:       "call 555",
			expected: "555",
		},
		{
			name:     "empty",
			in:       "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.in))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("+90 555 123 45 67", "+90(555)1234567"))
	assert.True(t, Equal("555 123 45 67", "5551234567"))
	assert.False(t, Equal("5551234567", "5551234568"))
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "turkish_mobile",
			in:       "+905551234567",
			expected: "+90 555 123 45 67",
		},
		{
			name:     "ten_digits",
			in:       "5551234567",
			expected: "555 123 45 67",
		},
		{
			name:     "unknown_shape_passthrough",
			in:       "+1 212 555 0100",
			expected: "+1 212 555 0100",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format(tc.in))
		})
	}
}

func TestCountryCode(t *testing.T) {
	assert.Equal(t, "+90", CountryCode("+90 555 123 45 67"))
	assert.Equal(t, "+1", CountryCode("+12125550100"))
	assert.Equal(t, "+33", CountryCode("+33123456789"))
	assert.Equal(t, "", CountryCode("5551234567"))
}
