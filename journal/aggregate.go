package journal

import (
	"fmt"
	"math"
)

// Epsilon below which a day total counts as flat. A strict zero test
// would color true zero-sum days on floating point noise.
const Epsilon = 1e-9

// DayTotal sums the profit/loss of entries. Values that never parsed as
// numbers count as zero; one bad entry never aborts the sum. It serves
// both the whole-day total and a filtered subset total, which are
// independent quantities.
func DayTotal(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		if v, ok := e.PL.Value(); ok {
			total += v
		}
	}
	return total
}

// Flat reports whether a total counts as neither gain nor loss.
func Flat(total float64) bool { return math.Abs(total) < Epsilon }

// FormatTotal renders a total with explicit sign and two decimals, e.g.
// "+12.50", "-3.00", "+0.00".
func FormatTotal(total float64) string { return fmt.Sprintf("%+.2f", total) }
