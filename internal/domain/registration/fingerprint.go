package registration

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
)

// maxNameKeyLen caps the normalized-name component of a fingerprint.
const maxNameKeyLen = 64

var nonPhoneChars = regexp.MustCompile(`[^0-9+]`)

// NormalizeUnitID canonicalizes a host unit identifier: whitespace stripped,
// uppercased (e.g. "a-12-03 " -> "A-12-03").
func NormalizeUnitID(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// NormalizePhone keeps only digits and a leading plus sign.
func NormalizePhone(raw string) string {
	return nonPhoneChars.ReplaceAllString(raw, "")
}

// NormalizeName lowercases, trims and underscores a visitor name for use as a
// fingerprint component, capped at 64 characters.
func NormalizeName(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.Join(strings.Fields(key), "_")
	if len(key) > maxNameKeyLen {
		key = key[:maxNameKeyLen]
	}
	return key
}

// ComputeFingerprint derives the dedup key identifying "the same logical
// submission": arrival date key + host unit + visitor identity. The phone is
// preferred; the normalized name is the fallback. Without any identity there
// is nothing to deduplicate on, which is a validation error — the engine
// never substitutes a random identity.
func ComputeFingerprint(eta time.Time, hostUnit, visitorPhone, visitorName string) (string, error) {
	if eta.IsZero() {
		return "", fmt.Errorf("eta is required for fingerprinting")
	}
	unit := NormalizeUnitID(hostUnit)
	if unit == "" {
		return "", fmt.Errorf("host unit is required for fingerprinting")
	}

	identity := NormalizePhone(visitorPhone)
	if identity == "" {
		identity = NormalizeName(visitorName)
	}
	if identity == "" {
		return "", fmt.Errorf("visitor phone or name is required for fingerprinting")
	}

	return fmt.Sprintf("%s_%s_%s", biztime.DateKey(eta), unit, identity), nil
}
