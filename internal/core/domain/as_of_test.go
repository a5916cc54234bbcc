package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

func TestParseAsOf(t *testing.T) {
	now := time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("Success: Empty as-of is now in the default zone", func(t *testing.T) {
		got, err := domain.ParseAsOf("", "", now, newYork)
		require.NoError(t, err)
		assert.True(t, got.Equal(now))
		assert.Equal(t, newYork, got.Location())
	})

	t.Run("Success: Nil default falls back to UTC", func(t *testing.T) {
		got, err := domain.ParseAsOf("", "", now, nil)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("Success: RFC3339 instant is converted to tz", func(t *testing.T) {
		got, err := domain.ParseAsOf("2024-03-15T02:00:00Z", "America/New_York", now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-14", got.Format(domain.DateLayout))
		assert.Equal(t, 22, got.Hour())
	})

	t.Run("Edge Case: Bare date on a DST change ends at 23:59:59 local", func(t *testing.T) {
		got, err := domain.ParseAsOf("2024-03-10", "America/New_York", now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 0, newYork), got)
		_, offset := got.Zone()
		assert.Equal(t, -4*3600, offset)
	})

	t.Run("Fail: Unknown timezone", func(t *testing.T) {
		_, err := domain.ParseAsOf("", "Mars/Olympus", now, time.UTC)
		assert.ErrorIs(t, err, domain.ErrInvalidTimezone)
	})

	t.Run("Fail: Malformed as-of", func(t *testing.T) {
		_, err := domain.ParseAsOf("15/03/2024", "", now, time.UTC)
		assert.ErrorIs(t, err, domain.ErrInvalidAsOf)
	})
}
