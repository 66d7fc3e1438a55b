package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12.34", 1234},
		{"12,34", 1234},
		{"12", 1200},
		{"0", 0},
		{"12.344", 1234},
		{"12.345", 1235},
		{"12.346", 1235},
		{"  7.5 ", 750},
		{".50", 50},
	}
	for _, tc := range cases {
		got, err := ParseAmountToCents(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseAmountToCents_Invalid(t *testing.T) {
	for _, in := range []string{"", "-1", "+1", "1.2.3", "abc", "12x"} {
		_, err := ParseAmountToCents(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1500.00 RUB", FormatAmount(150000, "RUB"))
	assert.Equal(t, "0.05", FormatAmount(5, ""))
	assert.Equal(t, "-3.20", FormatCents(-320))
}
