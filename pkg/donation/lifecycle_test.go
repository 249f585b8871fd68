package donation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestExpiryAt(t *testing.T) {
	tests := []struct {
		name  string
		days  int
		hours int
		want  time.Time
	}{
		{"days and hours", 2, 5, base.Add(53 * time.Hour)},
		{"days only", 3, 0, base.Add(72 * time.Hour)},
		{"hours only", 0, 23, base.Add(23 * time.Hour)},
		{"zero offsets", 0, 0, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpiryAt(base, tt.days, tt.hours))
		})
	}
}

func TestIsExpired(t *testing.T) {
	// expiry = base + 2d 5h
	expiry := base.Add(53 * time.Hour)

	assert.False(t, IsExpired(base, 2, 5, expiry.Add(-time.Second)), "before expiry")
	assert.False(t, IsExpired(base, 2, 5, expiry), "exactly at expiry is still active")
	assert.True(t, IsExpired(base, 2, 5, expiry.Add(time.Second)), "past expiry")
}

func TestIsExpiredZeroOffsets(t *testing.T) {
	// with no offsets the listing expires the moment now passes preparation
	assert.False(t, IsExpired(base, 0, 0, base))
	assert.True(t, IsExpired(base, 0, 0, base.Add(time.Nanosecond)))
}

func TestTimeLeft(t *testing.T) {
	tests := []struct {
		name  string
		days  int
		hours int
		now   time.Time
		want  string
	}{
		{"one day in", 2, 5, base.Add(24 * time.Hour), "1d 5h"},
		{"fresh", 2, 5, base, "2d 5h"},
		{"under a day", 0, 10, base.Add(3 * time.Hour), "0d 7h"},
		{"exactly at expiry", 1, 0, base.Add(24 * time.Hour), "0d 0h"},
		{"expired", 1, 0, base.Add(25 * time.Hour), "Expired"},
		{"zero offsets already past", 0, 0, base.Add(time.Minute), "Expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeLeft(base, tt.days, tt.hours, tt.now))
		})
	}
}
