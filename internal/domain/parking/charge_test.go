package parking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
)

func localDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 14, 0, 0, 0, biztime.Location())
}

func labels(q ChargeQuote) []string {
	out := make([]string, len(q.Breakdown))
	for i, line := range q.Breakdown {
		out[i] = line.Label
	}
	return out
}

func TestComputeCharge_SingleFreeDay(t *testing.T) {
	p := DefaultPolicy()
	day := localDay(2025, 1, 10)

	q := p.ComputeCharge(Tier2, day, day)

	assert.True(t, q.Total.IsZero())
	assert.Equal(t, 1, q.TotalDays)
	assert.Equal(t, 1, q.FreeDays)
	assert.Equal(t, 0, q.ChargedDays)
	assert.Equal(t, []string{"free"}, labels(q))
}

func TestComputeCharge_Tier3ThreeDays(t *testing.T) {
	p := DefaultPolicy()

	q := p.ComputeCharge(Tier3, localDay(2025, 1, 1), localDay(2025, 1, 3))

	assert.True(t, q.Total.Equal(decimal.NewFromInt(45)), "expected 45.00, got %s", q.Total)
	assert.Equal(t, 3, q.ChargedDays)
	assert.Equal(t, []string{"RM 15.00", "RM 15.00", "RM 15.00"}, labels(q))
	require.Len(t, q.Breakdown, 3)
	assert.Equal(t, "01/01/2025", q.Breakdown[0].Date)
	assert.Equal(t, "03/01/2025", q.Breakdown[2].Date)
}

func TestComputeCharge_Tier2ThreeDays(t *testing.T) {
	p := DefaultPolicy()

	q := p.ComputeCharge(Tier2, localDay(2025, 1, 1), localDay(2025, 1, 3))

	assert.True(t, q.Total.Equal(decimal.NewFromInt(10)), "expected 10.00, got %s", q.Total)
	assert.Equal(t, 1, q.FreeDays)
	assert.Equal(t, 2, q.ChargedDays)
	assert.Equal(t, []string{"free", "RM 5.00", "RM 5.00"}, labels(q))
}

func TestComputeCharge_FreeDaysChronologicalFirst(t *testing.T) {
	p := DefaultPolicy()
	p.Tier2FreeDays = 2

	q := p.ComputeCharge(Tier2, localDay(2025, 2, 1), localDay(2025, 2, 4))

	assert.Equal(t, []string{"free", "free", "RM 5.00", "RM 5.00"}, labels(q))
	assert.True(t, q.Breakdown[0].Free)
	assert.False(t, q.Breakdown[2].Free)
}

func TestComputeCharge_EndBeforeStart(t *testing.T) {
	p := DefaultPolicy()

	q := p.ComputeCharge(Tier3, localDay(2025, 1, 3), localDay(2025, 1, 1))

	assert.True(t, q.Total.IsZero())
	assert.Empty(t, q.Breakdown)
	assert.Zero(t, q.TotalDays)
}

func TestComputeCharge_NonChargeableTier(t *testing.T) {
	p := DefaultPolicy()

	q := p.ComputeCharge(Tier1, localDay(2025, 1, 1), localDay(2025, 1, 5))

	assert.True(t, q.Total.IsZero())
	assert.Empty(t, q.Breakdown)
}

func TestComputeCharge_ZeroEndDefaultsToStart(t *testing.T) {
	p := DefaultPolicy()

	q := p.ComputeCharge(Tier3, localDay(2025, 1, 1), time.Time{})

	assert.Equal(t, 1, q.TotalDays)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(15)))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "RM 5.00", FormatAmount(decimal.NewFromInt(5)))
	assert.Equal(t, "RM 15.50", FormatAmount(decimal.NewFromFloat(15.5)))
}
