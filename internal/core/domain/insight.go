package domain

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Insight is generated fresh per request. ID is the slug of the rule that fired.
type Insight struct {
	ID             string             `json:"id"`
	Priority       Priority           `json:"priority"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	Recommendation string             `json:"recommendation"`
	Data           map[string]float64 `json:"data,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}
