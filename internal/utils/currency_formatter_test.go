package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5.5", "5.50"},
		{"999.99", "999.99"},
		{"1000", "1,000.00"},
		{"1234567.5", "1,234,567.50"},
		{"-20000", "-20,000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)), tt.in)
	}
	assert.Equal(t, "BDT 100.00", FormatMoney(decimal.NewFromInt(100), "BDT"))
	assert.Equal(t, "100.00", FormatMoney(decimal.NewFromInt(100), ""))
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" 1,500.5 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1500.50")))

	d, err = ParseAmount("100")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(100)))

	for _, bad := range []string{"", "abc", "1.2.3", "10.001"} {
		_, err := ParseAmount(bad)
		assert.Error(t, err, bad)
	}
}
