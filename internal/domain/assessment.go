package domain

import (
	"encoding/json"
	"time"
)

// RecordKind identifies which scorer produced a record.
type RecordKind string

const (
	KindEnergyLoop         RecordKind = "energy_loop"
	KindMetabolicAge       RecordKind = "metabolic_age"
	KindLongevityNutrition RecordKind = "longevity_nutrition"
	KindSymptom            RecordKind = "symptom"
)

// AssessmentRecord is a persisted scored result.
type AssessmentRecord struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Kind         RecordKind      `json:"kind"`
	AssessmentID string          `json:"assessmentId,omitempty"` // suggestion-engine id, e.g. "sleep"
	Score        float64         `json:"score"`
	Category     string          `json:"category"` // "excellent", "good", "fair", "poor"
	Payload      json.RawMessage `json:"payload"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// DeviceToken is a registered push notification token.
type DeviceToken struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	Platform  string    `json:"platform"` // "android" or "ios"
	CreatedAt time.Time `json:"createdAt"`
}

// TrendDirection summarises the slope of a score history.
type TrendDirection string

const (
	TrendImproving    TrendDirection = "improving"
	TrendStable       TrendDirection = "stable"
	TrendDeclining    TrendDirection = "declining"
	TrendInsufficient TrendDirection = "insufficient_data"
)

// ScoreTrend is the smoothed history of one score.
type ScoreTrend struct {
	Points    []float64      `json:"points"` // oldest to newest
	Smoothed  []float64      `json:"smoothed"`
	Slope     float64        `json:"slope"`
	Direction TrendDirection `json:"direction"`
}

// Dashboard aggregates a user's latest results.
type Dashboard struct {
	UserID          string                 `json:"userId"`
	LatestEnergy    *AssessmentRecord      `json:"latestEnergy,omitempty"`
	LatestMetabolic *AssessmentRecord      `json:"latestMetabolic,omitempty"`
	LatestLongevity *AssessmentRecord      `json:"latestLongevity,omitempty"`
	EnergyTrend     ScoreTrend             `json:"energyTrend"`
	Suggestions     []AssessmentSuggestion `json:"suggestions"`
}
