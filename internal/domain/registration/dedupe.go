package registration

import "time"

// DedupeKey is the shared record contended by concurrent submissions with the
// same fingerprint. At most one live key exists per fingerprint; a key older
// than the dedup window is stale and may be overwritten instead of counting
// as a conflict.
type DedupeKey struct {
	Fingerprint    string
	RegistrationID string
	HostUnit       string
	VisitorPhone   string
	VisitorName    string
	ETADateKey     string
	CreatedAt      time.Time
}

// IsFresh reports whether the key still blocks a matching resubmission.
func (k *DedupeKey) IsFresh(now time.Time, window time.Duration) bool {
	if k == nil {
		return false
	}
	return now.Sub(k.CreatedAt) < window
}
