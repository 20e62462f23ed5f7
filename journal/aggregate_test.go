package journal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayTotalEmptyDayIsFlat(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, DayTotal(nil), 1e-12)
	assert.InDelta(t, 0, DayTotal([]Entry{}), 1e-12)
	assert.True(t, Flat(DayTotal(nil)))
}

func TestDayTotalSkipsBadAmounts(t *testing.T) {
	t.Parallel()

	var bad PL
	require.NoError(t, json.Unmarshal([]byte(`"garbage"`), &bad))

	entries := []Entry{
		{Side: Buy, Asset: "A", PL: NewPL(10.5), Account: "Default"},
		{Side: Sell, Asset: "B", PL: bad, Account: "Default"},
		{Side: Sell, Asset: "C", PL: NewPL(-3), Account: "Default"},
	}
	assert.InDelta(t, 7.5, DayTotal(entries), 1e-9)
}

func TestFormatTotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+12.50", FormatTotal(12.5))
	assert.Equal(t, "-3.00", FormatTotal(-3))
	assert.Equal(t, "+0.00", FormatTotal(0))
}

func TestFlatUsesEpsilon(t *testing.T) {
	t.Parallel()

	// A true zero-sum day with float noise must still read as flat.
	total := DayTotal([]Entry{
		{Side: Buy, Asset: "A", PL: NewPL(0.1), Account: "Default"},
		{Side: Buy, Asset: "A", PL: NewPL(0.2), Account: "Default"},
		{Side: Sell, Asset: "A", PL: NewPL(-0.3), Account: "Default"},
	})
	assert.True(t, Flat(total))

	assert.True(t, Flat(5e-10))
	assert.False(t, Flat(1e-8))
	assert.False(t, Flat(-0.01))
}
