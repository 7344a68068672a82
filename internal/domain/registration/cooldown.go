package registration

import "time"

// CooldownReasonPolicy tags cooldowns applied by the arrears policy.
const CooldownReasonPolicy = "policy"

// CooldownRecord blocks a host unit from submitting until a given instant.
// One record per unit.
type CooldownRecord struct {
	UnitID    string
	Until     time.Time
	Reason    string
	UpdatedAt time.Time
}

// Active reports whether the cooldown still blocks submissions at now.
func (c *CooldownRecord) Active(now time.Time) bool {
	if c == nil {
		return false
	}
	return c.Until.After(now)
}

// ExtendCooldown returns the record that results from applying a cooldown of
// the given number of days starting at now. Extension is monotonic: when a
// concurrent writer already pushed Until past now+days, the later instant is
// kept, so racing submissions converge on the furthest cooldown rather than
// shortening one in progress.
func ExtendCooldown(existing *CooldownRecord, unitID string, now time.Time, days int) *CooldownRecord {
	// Until is truncated to whole seconds so the RFC3339 marker in the
	// cooldown error names the stored instant exactly, not up to 999ms early.
	until := now.Add(time.Duration(days) * 24 * time.Hour).Truncate(time.Second)
	if existing != nil && existing.Until.After(until) {
		until = existing.Until
	}
	return &CooldownRecord{
		UnitID:    unitID,
		Until:     until,
		Reason:    CooldownReasonPolicy,
		UpdatedAt: now,
	}
}
