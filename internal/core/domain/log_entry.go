package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidLogEntry = errors.New("invalid log entry data")
	ErrInvalidLogKind  = errors.New("invalid log kind (must be meal, hydration, caffeine, workout, sleep or body_weight)")
	ErrInvalidLogDate  = errors.New("invalid log date (must be YYYY-MM-DD)")
	ErrInvalidLogTime  = errors.New("invalid log time (must be HH:MM 24h)")
)

var logTimeRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

const DateLayout = "2006-01-02"

type LogKind string

const (
	KindMeal       LogKind = "meal"
	KindHydration  LogKind = "hydration"
	KindCaffeine   LogKind = "caffeine"
	KindWorkout    LogKind = "workout"
	KindSleep      LogKind = "sleep"
	KindBodyWeight LogKind = "body_weight"
)

// AllLogKinds lists every kind in the order the Aggregator fetches them.
var AllLogKinds = []LogKind{KindMeal, KindHydration, KindCaffeine, KindWorkout, KindSleep, KindBodyWeight}

func (k LogKind) Valid() bool {
	switch k {
	case KindMeal, KindHydration, KindCaffeine, KindWorkout, KindSleep, KindBodyWeight:
		return true
	}
	return false
}

// LogEntry is one recorded event. Entries are immutable once stored; the only
// mutation a user can perform is an explicit delete.
type LogEntry struct {
	ID      string  `json:"id" db:"id"`
	UserID  string  `json:"user_id" db:"user_id"`
	Kind    LogKind `json:"kind" db:"kind"`
	LogDate string  `json:"log_date" db:"log_date"`
	LogTime *string `json:"log_time,omitempty" db:"log_time"`

	Calories float64 `json:"calories,omitempty" db:"calories"`
	ProteinG float64 `json:"protein_g,omitempty" db:"protein_g"`
	CarbsG   float64 `json:"carbs_g,omitempty" db:"carbs_g"`
	FatG     float64 `json:"fat_g,omitempty" db:"fat_g"`
	FiberG   float64 `json:"fiber_g,omitempty" db:"fiber_g"`
	SugarG   float64 `json:"sugar_g,omitempty" db:"sugar_g"`

	VolumeMl      float64 `json:"volume_ml,omitempty" db:"volume_ml"`
	AmountMg      float64 `json:"amount_mg,omitempty" db:"amount_mg"`
	TotalVolume   float64 `json:"total_volume,omitempty" db:"total_volume"`
	DurationHours float64 `json:"duration_hours,omitempty" db:"duration_hours"`
	WeightKg      float64 `json:"weight_kg,omitempty" db:"weight_kg"`

	Notes     string     `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func NewLogEntry(userID string, kind LogKind, date string, logTime string) *LogEntry {
	var timePtr *string
	if t := strings.TrimSpace(logTime); t != "" {
		timePtr = &t
	}
	return &LogEntry{
		ID:        uuid.NewString(),
		UserID:    strings.TrimSpace(userID),
		Kind:      kind,
		LogDate:   strings.TrimSpace(date),
		LogTime:   timePtr,
		CreatedAt: time.Now().UTC(),
	}
}

func (e *LogEntry) Validate() error {
	if strings.TrimSpace(e.UserID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidLogEntry)
	}
	if !e.Kind.Valid() {
		return ErrInvalidLogKind
	}
	if !IsValidDate(e.LogDate) {
		return ErrInvalidLogDate
	}
	if e.LogTime != nil && !logTimeRegex.MatchString(*e.LogTime) {
		return ErrInvalidLogTime
	}
	for name, v := range map[string]float64{
		"calories":       e.Calories,
		"protein_g":      e.ProteinG,
		"carbs_g":        e.CarbsG,
		"fat_g":          e.FatG,
		"fiber_g":        e.FiberG,
		"sugar_g":        e.SugarG,
		"volume_ml":      e.VolumeMl,
		"amount_mg":      e.AmountMg,
		"total_volume":   e.TotalVolume,
		"duration_hours": e.DurationHours,
		"weight_kg":      e.WeightKg,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidLogEntry, name)
		}
	}
	return nil
}

// MinuteOfDay returns the minutes since midnight of the entry's time, or -1
// when the entry carries only a date.
func (e *LogEntry) MinuteOfDay() int {
	if e.LogTime == nil {
		return -1
	}
	t, err := time.Parse("15:04", *e.LogTime)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
