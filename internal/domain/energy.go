package domain

// DataQuality grades how much real signal backs a score.
type DataQuality string

const (
	DataQualityHigh   DataQuality = "high"
	DataQualityMedium DataQuality = "medium"
	DataQualityLow    DataQuality = "low"
)

// DataSource tags where a sub-metric came from.
type DataSource string

const (
	SourceWearableSleep      DataSource = "wearable_sleep_hours"
	SourceWearableREM        DataSource = "wearable_rem"
	SourceWearableDeepSleep  DataSource = "wearable_deep_sleep"
	SourceWearableHRV        DataSource = "wearable_hrv"
	SourceWearableRestingHR  DataSource = "wearable_resting_hr"
	SourceWearableActiveMins DataSource = "wearable_active_minutes"
	SourceWearableSteps      DataSource = "wearable_steps"

	SourceManualSleepQuality DataSource = "manual_sleep_quality"
	SourceManualEnergy       DataSource = "manual_energy_rating"
	SourceManualStress       DataSource = "manual_stress_level"
	SourceManualMovement     DataSource = "manual_movement_completed"
	SourceManualMealQuality  DataSource = "manual_meal_quality"
	SourceManualNutrition    DataSource = "manual_nutrition_score"
	SourceManualMenoStage    DataSource = "manual_meno_stage"
	SourceManualCycleDay     DataSource = "manual_cycle_day"
)

// MenoStage is a menopause stage reported by the user.
type MenoStage string

const (
	MenoStagePre       MenoStage = "pre"
	MenoStageEarlyPeri MenoStage = "early-peri"
	MenoStageMidPeri   MenoStage = "mid-peri"
	MenoStageLatePeri  MenoStage = "late-peri"
	MenoStagePost      MenoStage = "post"
)

// EnergyInputs holds one period of wearable and self-reported signals.
// A nil field means no data for that source this period.
type EnergyInputs struct {
	// Wearable
	SleepHours       *float64 `json:"sleepHours,omitempty" yaml:"sleepHours,omitempty"`
	RemPercentage    *float64 `json:"remPercentage,omitempty" yaml:"remPercentage,omitempty"`
	DeepSleepHours   *float64 `json:"deepSleepHours,omitempty" yaml:"deepSleepHours,omitempty"`
	HRV              *float64 `json:"hrv,omitempty" yaml:"hrv,omitempty"`
	RestingHeartRate *float64 `json:"restingHeartRate,omitempty" yaml:"restingHeartRate,omitempty"`
	ActiveMinutes    *float64 `json:"activeMinutes,omitempty" yaml:"activeMinutes,omitempty"`
	Steps            *float64 `json:"steps,omitempty" yaml:"steps,omitempty"`

	// Manual
	EnergyRating      *float64   `json:"energyRating,omitempty" yaml:"energyRating,omitempty"` // 1-10
	SleepQuality      *float64   `json:"sleepQuality,omitempty" yaml:"sleepQuality,omitempty"` // 1-10
	StressLevel       *float64   `json:"stressLevel,omitempty" yaml:"stressLevel,omitempty"`   // 1-10, higher = more stressed
	MovementCompleted *bool      `json:"movementCompleted,omitempty" yaml:"movementCompleted,omitempty"`
	MealQuality       *float64   `json:"mealQuality,omitempty" yaml:"mealQuality,omitempty"`       // 1-10
	NutritionScore    *float64   `json:"nutritionScore,omitempty" yaml:"nutritionScore,omitempty"` // 0-100
	MenoStage         *MenoStage `json:"menoStage,omitempty" yaml:"menoStage,omitempty"`
	CycleDay          *int       `json:"cycleDay,omitempty" yaml:"cycleDay,omitempty"`
}

// EnergySegmentScore is the score of one physiological domain.
type EnergySegmentScore struct {
	Score       float64      `json:"score"`
	DataQuality DataQuality  `json:"dataQuality"`
	DataSources []DataSource `json:"dataSources"`
}

// EnergySegments keys the five segment scores by domain.
type EnergySegments struct {
	SleepRecovery   EnergySegmentScore `json:"sleepRecovery"`
	StressLoad      EnergySegmentScore `json:"stressLoad"`
	Nutrition       EnergySegmentScore `json:"nutrition"`
	MovementQuality EnergySegmentScore `json:"movementQuality"`
	HormonalRhythm  EnergySegmentScore `json:"hormonalRhythm"`
}

// All returns the segments in weighting order.
func (s EnergySegments) All() []EnergySegmentScore {
	return []EnergySegmentScore{s.SleepRecovery, s.StressLoad, s.Nutrition, s.MovementQuality, s.HormonalRhythm}
}

// EnergyLoopScore is the weighted composite of all segments.
type EnergyLoopScore struct {
	Composite          float64        `json:"composite"`
	Segments           EnergySegments `json:"segments"`
	LoopCompletion     float64        `json:"loopCompletion"` // percent of segments with data
	OverallDataQuality DataQuality    `json:"overallDataQuality"`
}
