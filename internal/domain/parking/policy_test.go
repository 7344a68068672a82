package parking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amt(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestPolicy_ClassifyArrears(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name   string
		amount decimal.Decimal
		want   Tier
	}{
		{"zero", amt(0), Tier1},
		{"at low bound", amt(1), Tier1},
		{"just above low bound", amt(1.01), Tier2},
		{"mid range", amt(250), Tier2},
		{"at high threshold", amt(400), Tier2},
		{"above high threshold", amt(400.01), Tier3},
		{"well above", amt(500), Tier3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ClassifyArrears(tt.amount))
		})
	}
}

func TestPolicy_FreeDaysForTier(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 3, p.FreeDaysForTier(Tier1))
	assert.Equal(t, 1, p.FreeDaysForTier(Tier2))
	assert.Equal(t, 0, p.FreeDaysForTier(Tier3))
	assert.Equal(t, 0, p.FreeDaysForTier(TierNone))
}

func TestPolicy_CooldownDays(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name       string
		hasArrears bool
		amount     decimal.Decimal
		override   bool
		want       int
	}{
		{"no arrears", false, amt(0), false, 0},
		{"moderate arrears", true, amt(120), false, 3},
		// Tier3 is charged per day instead of blocked, so the configured
		// high-arrears cooldown (default 0) applies, not the tier2 one.
		{"high arrears uses high cooldown", true, amt(500), false, 0},
		{"arrears flag set but zero amount", true, amt(0), false, 0},
		{"admin override clears cooldown", true, amt(120), true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.CooldownDays(tt.hasArrears, tt.amount, tt.override))
		})
	}
}

func TestPolicy_CooldownDays_Disabled(t *testing.T) {
	p := DefaultPolicy()
	p.Enabled = false
	assert.Equal(t, 0, p.CooldownDays(true, amt(120), false))
}

func TestPolicy_CooldownDays_CustomHighDays(t *testing.T) {
	p := DefaultPolicy()
	p.HighArrearsCooldownDays = 7
	assert.Equal(t, 7, p.CooldownDays(true, amt(500), false))
}

func TestPolicy_Sanitized(t *testing.T) {
	p := Policy{
		Enabled:                 true,
		LowArrearsBound:         amt(-5),
		HighArrearsThreshold:    decimal.Zero,
		ArrearsCooldownDays:     -1,
		HighArrearsCooldownDays: -2,
		NoArrearsCooldownDays:   -3,
		Tier1FreeDays:           -1,
		Tier2DailyRate:          amt(-9),
		Tier3DailyRate:          amt(15),
	}

	s := p.Sanitized()
	def := DefaultPolicy()
	assert.True(t, s.LowArrearsBound.Equal(def.LowArrearsBound))
	assert.True(t, s.HighArrearsThreshold.Equal(def.HighArrearsThreshold))
	assert.Zero(t, s.ArrearsCooldownDays)
	assert.Zero(t, s.HighArrearsCooldownDays)
	assert.Zero(t, s.NoArrearsCooldownDays)
	assert.Zero(t, s.Tier1FreeDays)
	assert.True(t, s.Tier2DailyRate.IsZero())
	assert.True(t, s.Tier3DailyRate.Equal(amt(15)))
}
