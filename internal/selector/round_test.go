package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCell(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		digits   int
		expected string
	}{
		{"float rounded down", "3.14159", 2, "3.14"},
		{"float rounded up", "2.718", 2, "2.72"},
		{"negative float", "-2.71828", 3, "-2.718"},
		{"integer untouched", "42", 2, "42"},
		{"negative integer untouched", "-7", 0, "-7"},
		{"integer beyond int64 untouched", "9223372036854775808", 2, "9223372036854775808"},
		{"negative integer beyond int64 untouched", "-170141183460469231731687303715884105728", 2, "-170141183460469231731687303715884105728"},
		{"non-numeric untouched", "abc", 2, "abc"},
		{"empty untouched", "", 2, ""},
		{"scientific notation reformatted", "1e2", 2, "100.00"},
		{"zero digits", "3.7", 0, "4"},
		{"padded to precision", "1.5", 3, "1.500"},
		{"infinity untouched", "inf", 2, "inf"},
		{"nan untouched", "NaN", 2, "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundCell(tt.cell, tt.digits))
		})
	}
}

func TestRoundCell_Idempotent(t *testing.T) {
	for _, cell := range []string{"3.14159", "42", "abc", "-0.005"} {
		once := RoundCell(cell, 2)
		assert.Equal(t, once, RoundCell(once, 2), "cell %q", cell)
	}
}

func TestRoundRow(t *testing.T) {
	row := []string{"sim1", "1.005", "2", "x"}
	roundRow(row, 2)

	assert.Equal(t, []string{"sim1", "1.00", "2", "x"}, row)
}
