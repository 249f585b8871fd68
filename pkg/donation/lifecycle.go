package donation

import (
	"fmt"
	"time"
)

// ExpiryAt returns the instant a listing stops being safe to offer:
// the preparation time plus the donor-supplied day/hour offsets. With
// both offsets zero the expiry equals the preparation time itself.
func ExpiryAt(prepared time.Time, expiryDays, expiryHours int) time.Time {
	return prepared.AddDate(0, 0, expiryDays).Add(time.Duration(expiryHours) * time.Hour)
}

// IsExpired reports whether now is strictly past the expiry instant.
// At now == expiry the listing is still active.
func IsExpired(prepared time.Time, expiryDays, expiryHours int, now time.Time) bool {
	return now.After(ExpiryAt(prepared, expiryDays, expiryHours))
}

// TimeLeft formats the remaining window as whole days plus remaining
// whole hours, e.g. "2d 5h", or the literal "Expired" once past expiry.
func TimeLeft(prepared time.Time, expiryDays, expiryHours int, now time.Time) string {
	expiry := ExpiryAt(prepared, expiryDays, expiryHours)
	if now.After(expiry) {
		return "Expired"
	}

	diff := expiry.Sub(now)
	days := int(diff / (24 * time.Hour))
	hours := int((diff % (24 * time.Hour)) / time.Hour)
	return fmt.Sprintf("%dd %dh", days, hours)
}
