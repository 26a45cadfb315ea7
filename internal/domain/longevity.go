package domain

// LongevityNutritionData is the seven-question longevity nutrition quiz.
type LongevityNutritionData struct {
	ProteinScore        int `json:"protein_score" yaml:"protein_score"`                 // 0-4
	FiberScore          int `json:"fiber_score" yaml:"fiber_score"`                     // 0-4
	PlantDiversityScore int `json:"plant_diversity_score" yaml:"plant_diversity_score"` // 0-4
	GutSymptomScore     int `json:"gut_symptom_score" yaml:"gut_symptom_score"`         // 0-5, higher = worse
	InflammationScore   int `json:"inflammation_score" yaml:"inflammation_score"`       // 0-6, higher = worse
	CravingPattern      int `json:"craving_pattern" yaml:"craving_pattern"`             // 0-5, higher = worse
	HydrationScore      int `json:"hydration_score" yaml:"hydration_score"`             // 0-5
}

// ScoreCategory is the six-band qualitative category of a 0-100 score.
type ScoreCategory string

const (
	CategoryOptimal          ScoreCategory = "Optimal"
	CategoryExcellent        ScoreCategory = "Excellent"
	CategoryGood             ScoreCategory = "Good"
	CategoryFair             ScoreCategory = "Fair"
	CategoryNeedsImprovement ScoreCategory = "Needs Improvement"
	CategoryCritical         ScoreCategory = "Critical"
)

// ScoreResult is a score with its display category.
type ScoreResult struct {
	Score       float64       `json:"score"`
	Category    ScoreCategory `json:"category"`
	Grade       string        `json:"grade"`
	Color       string        `json:"color"`
	Description string        `json:"description"`
}

// Pillar is one of the four branded wellness groupings.
type Pillar string

const (
	PillarBody    Pillar = "BODY"
	PillarBrain   Pillar = "BRAIN"
	PillarBalance Pillar = "BALANCE"
	PillarBeauty  Pillar = "BEAUTY"
)

// PillarStatus is the three-tier status of a pillar.
type PillarStatus string

const (
	PillarExcellent        PillarStatus = "excellent"
	PillarGood             PillarStatus = "good"
	PillarNeedsImprovement PillarStatus = "needs-improvement"
)

// PillarScore is one pillar remapped from the raw quiz answers.
type PillarScore struct {
	Pillar   Pillar       `json:"pillar"`
	Score    float64      `json:"score"` // 0-100
	RawValue float64      `json:"rawValue"`
	MaxValue float64      `json:"maxValue"`
	Status   PillarStatus `json:"status"`
}

// LongevityReport bundles everything derived from one nutrition quiz.
// Triggers names the protocol rules the answers fired.
type LongevityReport struct {
	Result   ScoreResult       `json:"result"`
	Pillars  []PillarScore     `json:"pillars"`
	Protocol NutritionProtocol `json:"protocol"`
	Triggers []string          `json:"triggers"`
}
