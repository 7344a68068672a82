package config

import (
	"github.com/shopspring/decimal"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
)

// ParkingPolicy converts the configured policy values into the domain policy.
// It is the fallback used until an admin saves a policy record, so the
// VISITORD_PARKING_* overrides take effect on fresh deployments.
func (c *Config) ParkingPolicy() parking.Policy {
	p := c.Parking
	return parking.Policy{
		Enabled:                 p.PolicyEnabled,
		LowArrearsBound:         decimal.NewFromFloat(p.LowArrearsBound),
		HighArrearsThreshold:    decimal.NewFromFloat(p.HighArrearsThreshold),
		ArrearsCooldownDays:     p.ArrearsCooldownDays,
		HighArrearsCooldownDays: p.HighArrearsCooldownDays,
		NoArrearsCooldownDays:   p.NoArrearsCooldownDays,
		Tier1FreeDays:           p.Tier1FreeDays,
		Tier2FreeDays:           p.Tier2FreeDays,
		Tier3FreeDays:           p.Tier3FreeDays,
		Tier2DailyRate:          decimal.NewFromFloat(p.Tier2DailyRate),
		Tier3DailyRate:          decimal.NewFromFloat(p.Tier3DailyRate),
	}
}
