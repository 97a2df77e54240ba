package selector

import (
	"math"
	"math/big"
	"strconv"
)

// RoundCell rounds a numeric cell value to the given number of decimal
// digits. Values that parse as integers are returned unchanged, even
// though they would also parse as floats; the check is arbitrary
// precision so integers beyond the int64 range are not reformatted
// lossily. Values that parse as neither pass through verbatim: a
// non-numeric cell is not an error.
func RoundCell(cell string, digits int) string {
	if _, ok := new(big.Int).SetString(cell, 10); ok {
		return cell
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return cell
	}
	return strconv.FormatFloat(f, 'f', digits, 64)
}

// roundRow rounds every numeric cell of row in place.
func roundRow(row []string, digits int) {
	for i := range row {
		row[i] = RoundCell(row[i], digits)
	}
}
