package domain

// ActivityLevel is the self-reported weekly activity band.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityActive           ActivityLevel = "active"
	ActivityVeryActive       ActivityLevel = "very_active"
)

// HealthLevel classifies a metabolic age offset.
type HealthLevel string

const (
	HealthOptimal        HealthLevel = "optimal"
	HealthExcellent      HealthLevel = "excellent"
	HealthGood           HealthLevel = "good"
	HealthFair           HealthLevel = "fair"
	HealthNeedsAttention HealthLevel = "needs-attention"
	HealthCritical       HealthLevel = "critical"
)

// MetabolicAgeInput carries nutrition assessment scores on the same scales
// as LongevityNutritionData, plus optional profile attributes.
type MetabolicAgeInput struct {
	ChronologicalAge  int            `json:"chronologicalAge" yaml:"chronologicalAge"`
	ProteinScore      float64        `json:"proteinScore" yaml:"proteinScore"`           // 0-4
	FiberScore        float64        `json:"fiberScore" yaml:"fiberScore"`               // 0-4
	DiversityScore    float64        `json:"diversityScore" yaml:"diversityScore"`       // 0-4
	GutScore          float64        `json:"gutScore" yaml:"gutScore"`                   // 0-5, higher = more symptoms
	InflammationScore float64        `json:"inflammationScore" yaml:"inflammationScore"` // 0-6, higher = worse
	HydrationScore    float64        `json:"hydrationScore" yaml:"hydrationScore"`       // 0-5
	CravingScore      float64        `json:"cravingScore" yaml:"cravingScore"`           // 0-5, higher = worse
	SymptomFlags      []string       `json:"symptomFlags,omitempty" yaml:"symptomFlags,omitempty"`
	ActivityLevel     *ActivityLevel `json:"activityLevel,omitempty" yaml:"activityLevel,omitempty"`
	WeightKg          *float64       `json:"weightKg,omitempty" yaml:"weightKg,omitempty"`
	HeightCm          *float64       `json:"heightCm,omitempty" yaml:"heightCm,omitempty"`
}

// ExpectedSeverity is the population norm for an age band.
type ExpectedSeverity struct {
	Expected float64 `json:"expected"`
	SD       float64 `json:"sd"`
}

// MetabolicAgeResult is the outcome of the metabolic age model.
// MetabolicAge always equals ChronologicalAge + AgeOffset.
type MetabolicAgeResult struct {
	MetabolicAge     int         `json:"metabolicAge"`
	ChronologicalAge int         `json:"chronologicalAge"`
	AgeOffset        int         `json:"ageOffset"`
	SeverityScore    int         `json:"severityScore"`
	HealthLevel      HealthLevel `json:"healthLevel"`
	Confidence       int         `json:"confidence"`
}
