package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/boxoffice-cli/internal/utils"
)

func TestIsWholeNumber(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"zero", 0, true},
		{"numeric string", "42", true},
		{"int", 42, true},
		{"float whole", 1e6, true},
		{"padded string", " 7 ", true},
		{"negative", -1, false},
		{"fraction", 3.5, false},
		{"fraction string", "3.5", false},
		{"text", "abc", false},
		{"currency text", "$1,000", false},
		{"empty", "", false},
		{"nan", math.NaN(), false},
		{"inf", math.Inf(1), false},
		{"inf string", "Infinity", false},
		{"nil", nil, false},
		{"bool", true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, utils.IsWholeNumber(c.in))
		})
	}
}

func TestWholeNumber(t *testing.T) {
	n, ok := utils.WholeNumber("1000000")
	require.True(t, ok)
	assert.Equal(t, int64(1000000), n)

	_, ok = utils.WholeNumber("1e30")
	assert.False(t, ok, "values beyond int64 are rejected")
}

func TestStripNonNumerics(t *testing.T) {
	n, ok := utils.StripNonNumerics("$12,345")
	require.True(t, ok)
	assert.Equal(t, int64(12345), n)

	_, ok = utils.StripNonNumerics("")
	assert.False(t, ok)

	_, ok = utils.StripNonNumerics("n/a")
	assert.False(t, ok)

	n, ok = utils.StripNonNumerics("000")
	require.True(t, ok)
	assert.Zero(t, n)
}

func TestMonetize(t *testing.T) {
	assert.Equal(t, "$1,234,567.89", utils.Monetize(1234567.891, 2))
	assert.Equal(t, "$1,234,568", utils.Monetize(1234567.5, 0))
	assert.Equal(t, "$999", utils.Monetize(999, 0))
	assert.Equal(t, "$0.00", utils.Monetize(0, 2))
	assert.Equal(t, "$1,000", utils.Monetize(1000, -3), "negative places clamp to zero")
	assert.Equal(t, "-$1,500.0", utils.Monetize(-1500, 1))
	assert.Equal(t, "$123,4567", utils.MonetizeGroups(1234567, 0, 4))
	assert.Equal(t, "$1,234", utils.MonetizeGroups(1234, 0, 0))
}

func TestMonetizeRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 7, 1000, 12345678, 333333333} {
		n, ok := utils.StripNonNumerics(utils.Monetize(float64(v), 0))
		require.True(t, ok)
		assert.Equal(t, v, n)
	}
}
