// Package parking holds the arrears/cooldown policy and the per-stay charge
// evaluator. Everything in this package is pure: no clocks, no I/O.
package parking

import (
	"github.com/shopspring/decimal"
)

// Tier buckets a unit's arrears severity. The tier drives the free-day
// allowance and the daily parking rate.
type Tier int

const (
	TierNone Tier = 0 // unknown / unclassifiable
	Tier1    Tier = 1 // no meaningful arrears
	Tier2    Tier = 2 // moderate arrears
	Tier3    Tier = 3 // high arrears, charged instead of blocked
)

func (t Tier) IsValid() bool {
	return t == Tier1 || t == Tier2 || t == Tier3
}

// Chargeable reports whether stays under this tier accrue daily charges.
func (t Tier) Chargeable() bool {
	return t == Tier2 || t == Tier3
}

// Policy is the parking cooldown/charge policy. A single record, administered
// outside the engine; the engine only reads it.
type Policy struct {
	Enabled bool

	// Arrears classification bounds.
	LowArrearsBound      decimal.Decimal // tier1 when amount <= bound
	HighArrearsThreshold decimal.Decimal // tier3 when amount >= threshold

	// Cooldown durations in days.
	ArrearsCooldownDays     int // tier2 and below with arrears
	HighArrearsCooldownDays int // tier3, usually 0 since tier3 is charged instead
	NoArrearsCooldownDays   int

	// Free-day allowances per tier.
	Tier1FreeDays int
	Tier2FreeDays int
	Tier3FreeDays int

	// Daily rates for chargeable tiers.
	Tier2DailyRate decimal.Decimal
	Tier3DailyRate decimal.Decimal
}

// DefaultPolicy returns the policy used when no record has been seeded.
func DefaultPolicy() Policy {
	return Policy{
		Enabled:                 true,
		LowArrearsBound:         decimal.NewFromInt(1),
		HighArrearsThreshold:    decimal.NewFromInt(400),
		ArrearsCooldownDays:     3,
		HighArrearsCooldownDays: 0,
		NoArrearsCooldownDays:   0,
		Tier1FreeDays:           3,
		Tier2FreeDays:           1,
		Tier3FreeDays:           0,
		Tier2DailyRate:          decimal.NewFromInt(5),
		Tier3DailyRate:          decimal.NewFromInt(15),
	}
}

// Sanitized returns a copy of p with unusable values replaced by defaults.
// A malformed policy must degrade to the safest behavior (no cooldown, zero
// rate) rather than blocking legitimate submissions.
func (p Policy) Sanitized() Policy {
	def := DefaultPolicy()
	out := p
	if out.LowArrearsBound.IsNegative() {
		out.LowArrearsBound = def.LowArrearsBound
	}
	if !out.HighArrearsThreshold.IsPositive() {
		out.HighArrearsThreshold = def.HighArrearsThreshold
	}
	if out.ArrearsCooldownDays < 0 {
		out.ArrearsCooldownDays = 0
	}
	if out.HighArrearsCooldownDays < 0 {
		out.HighArrearsCooldownDays = 0
	}
	if out.NoArrearsCooldownDays < 0 {
		out.NoArrearsCooldownDays = 0
	}
	if out.Tier1FreeDays < 0 {
		out.Tier1FreeDays = 0
	}
	if out.Tier2FreeDays < 0 {
		out.Tier2FreeDays = 0
	}
	if out.Tier3FreeDays < 0 {
		out.Tier3FreeDays = 0
	}
	if out.Tier2DailyRate.IsNegative() {
		out.Tier2DailyRate = decimal.Zero
	}
	if out.Tier3DailyRate.IsNegative() {
		out.Tier3DailyRate = decimal.Zero
	}
	return out
}

// ClassifyArrears buckets an arrears amount into a tier using the policy
// bounds: tier1 when amount <= LowArrearsBound, tier2 up to the high
// threshold, tier3 beyond it.
func (p Policy) ClassifyArrears(amount decimal.Decimal) Tier {
	if amount.LessThanOrEqual(p.LowArrearsBound) {
		return Tier1
	}
	if amount.LessThanOrEqual(p.HighArrearsThreshold) {
		return Tier2
	}
	return Tier3
}

// FreeDaysForTier returns the free-day allowance for a tier.
func (p Policy) FreeDaysForTier(tier Tier) int {
	switch tier {
	case Tier1:
		return p.Tier1FreeDays
	case Tier2:
		return p.Tier2FreeDays
	case Tier3:
		return p.Tier3FreeDays
	default:
		return 0
	}
}

// DailyRateForTier returns the daily charge rate for a tier. Non-chargeable
// tiers rate at zero.
func (p Policy) DailyRateForTier(tier Tier) decimal.Decimal {
	switch tier {
	case Tier2:
		return p.Tier2DailyRate
	case Tier3:
		return p.Tier3DailyRate
	default:
		return decimal.Zero
	}
}

// CooldownDays computes the submission cooldown for a unit. adminOverride is
// honored only when the caller is an authenticated administrator; the
// gateway sets the flag accordingly.
func (p Policy) CooldownDays(hasArrears bool, amount decimal.Decimal, adminOverride bool) int {
	if !p.Enabled {
		return 0
	}
	if adminOverride {
		return 0
	}
	if hasArrears && amount.IsPositive() {
		if p.ClassifyArrears(amount) == Tier3 {
			return p.HighArrearsCooldownDays
		}
		return p.ArrearsCooldownDays
	}
	return p.NoArrearsCooldownDays
}
