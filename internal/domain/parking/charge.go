package parking

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
)

// FreeDayLabel is the breakdown label for a day covered by the free-day
// allowance.
const FreeDayLabel = "free"

// Currency is the display currency for charges.
const Currency = "RM"

// ChargeLine is one calendar day of a stay in a charge breakdown.
type ChargeLine struct {
	Date   string          `json:"date"` // dd/mm/yyyy, front-desk display format
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Free   bool            `json:"free"`
}

// ChargeQuote is the day-by-day charge computation for a stay interval.
type ChargeQuote struct {
	Tier        Tier            `json:"tier"`
	TotalDays   int             `json:"totalDays"`
	FreeDays    int             `json:"freeDays"`
	ChargedDays int             `json:"chargedDays"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	Total       decimal.Decimal `json:"total"`
	Breakdown   []ChargeLine    `json:"breakdown"`
}

// ComputeCharge builds a charge quote for a stay from start to end inclusive,
// date-only semantics. Only tiers 2 and 3 are chargeable; anything else, and
// any interval with end before start, yields a zero quote.
func (p Policy) ComputeCharge(tier Tier, start, end time.Time) ChargeQuote {
	quote := ChargeQuote{
		Tier:      tier,
		DailyRate: p.DailyRateForTier(tier),
		Total:     decimal.Zero,
	}
	if !tier.Chargeable() {
		return quote
	}
	if end.IsZero() {
		end = start
	}

	totalDays := biztime.DaysInclusive(start, end)
	if totalDays == 0 {
		return quote
	}

	freeDays := p.FreeDaysForTier(tier)
	if freeDays > totalDays {
		freeDays = totalDays
	}
	chargedDays := totalDays - freeDays

	rate := quote.DailyRate
	quote.TotalDays = totalDays
	quote.FreeDays = freeDays
	quote.ChargedDays = chargedDays
	quote.Total = rate.Mul(decimal.NewFromInt(int64(chargedDays)))

	day := biztime.DateOnly(start)
	quote.Breakdown = make([]ChargeLine, 0, totalDays)
	for i := 0; i < totalDays; i++ {
		line := ChargeLine{Date: day.Format("02/01/2006")}
		if i < freeDays {
			line.Label = FreeDayLabel
			line.Free = true
			line.Amount = decimal.Zero
		} else {
			line.Label = FormatAmount(rate)
			line.Amount = rate
		}
		quote.Breakdown = append(quote.Breakdown, line)
		day = day.AddDate(0, 0, 1)
	}
	return quote
}

// FormatAmount renders a charge amount for display, e.g. "RM 5.00".
func FormatAmount(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", Currency, amount.StringFixed(2))
}
