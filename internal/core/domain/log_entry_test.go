package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNewLogEntry(t *testing.T) {
	entry := NewLogEntry(" user-456 ", KindMeal, "2026-01-28", "12:30")

	t.Run("Should set identity fields", func(t *testing.T) {
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "user-456", entry.UserID)
		assert.Equal(t, KindMeal, entry.Kind)
		assert.Equal(t, "2026-01-28", entry.LogDate)
		assert.False(t, entry.CreatedAt.IsZero(), "CreatedAt must be set")
		assert.Nil(t, entry.DeletedAt)
	})

	t.Run("Should keep the date string untouched", func(t *testing.T) {
		assert.Equal(t, "2026-01-28", entry.LogDate, "Log date is a partition key, never shifted by a timezone")
	})

	t.Run("Empty time means date-only entry", func(t *testing.T) {
		e := NewLogEntry("u", KindHydration, "2026-01-28", "  ")
		assert.Nil(t, e.LogTime)
		assert.Equal(t, -1, e.MinuteOfDay())
	})

	t.Run("MinuteOfDay parses HH:MM", func(t *testing.T) {
		assert.Equal(t, 12*60+30, entry.MinuteOfDay())
	})
}

func TestLogEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   *LogEntry
		wantErr error
	}{
		{
			name:  "Valid Meal",
			entry: &LogEntry{UserID: "u-1", Kind: KindMeal, LogDate: "2026-01-01", LogTime: strPtr("08:15"), Calories: 500},
		},
		{
			name:  "Valid Date-only Hydration",
			entry: &LogEntry{UserID: "u-1", Kind: KindHydration, LogDate: "2026-01-01", VolumeMl: 250},
		},
		{
			name:    "Missing UserID",
			entry:   &LogEntry{UserID: "  ", Kind: KindMeal, LogDate: "2026-01-01"},
			wantErr: ErrInvalidLogEntry,
		},
		{
			name:    "Unknown Kind",
			entry:   &LogEntry{UserID: "u-1", Kind: "snack", LogDate: "2026-01-01"},
			wantErr: ErrInvalidLogKind,
		},
		{
			name:    "Malformed Date",
			entry:   &LogEntry{UserID: "u-1", Kind: KindMeal, LogDate: "01/02/2026"},
			wantErr: ErrInvalidLogDate,
		},
		{
			name:    "Out of range Time",
			entry:   &LogEntry{UserID: "u-1", Kind: KindMeal, LogDate: "2026-01-01", LogTime: strPtr("25:00")},
			wantErr: ErrInvalidLogTime,
		},
		{
			name:    "Negative Caffeine",
			entry:   &LogEntry{UserID: "u-1", Kind: KindCaffeine, LogDate: "2026-01-01", AmountMg: -1},
			wantErr: ErrInvalidLogEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
