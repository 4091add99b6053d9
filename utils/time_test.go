package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfTodayKST(t *testing.T) {
	start := StartOfTodayKST()

	kst := start.In(listingLocation)
	assert.Equal(t, 0, kst.Hour())
	assert.Equal(t, 0, kst.Minute())
	assert.Equal(t, 0, kst.Second())

	// Midnight KST of the current KST day, regardless of host timezone.
	now := KSTNow()
	assert.Equal(t, now.Year(), kst.Year())
	assert.Equal(t, now.YearDay(), kst.YearDay())
	assert.False(t, start.After(UTCNow()))
}

func TestParseKST(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		parsed, err := ParseKST("2026-08-29T10:30:00+09:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 29, 1, 30, 0, 0, time.UTC).Unix(), parsed.Unix())
	})

	t.Run("BareDateIsMidnightKST", func(t *testing.T) {
		parsed, err := ParseKST("2026-08-29")
		require.NoError(t, err)

		kst := parsed.In(listingLocation)
		assert.Equal(t, 2026, kst.Year())
		assert.Equal(t, time.August, kst.Month())
		assert.Equal(t, 29, kst.Day())
		assert.Equal(t, 0, kst.Hour())
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseKST("notadate")
		assert.Error(t, err)
	})
}

func TestIsExpired(t *testing.T) {
	assert.True(t, IsExpired(UTCNow().Add(-time.Minute)))
	assert.False(t, IsExpired(UTCNow().Add(time.Minute)))

	assert.False(t, IsExpiredPtr(nil), "open-ended never expires")
	past := UTCNow().Add(-time.Hour)
	assert.True(t, IsExpiredPtr(&past))
}
