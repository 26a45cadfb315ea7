package domain

// Assessment ids known to the suggestion engine.
const (
	AssessmentEnergy              = "energy"
	AssessmentCognitive           = "cognitive"
	AssessmentSleep               = "sleep"
	AssessmentHormone             = "hormone"
	AssessmentStress              = "stress"
	AssessmentBodyComposition     = "body-composition"
	AssessmentPhysicalPerformance = "physical-performance"
)

// Priority orders suggestions; lower Rank sorts first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort position of the priority.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// CompletedAssessment is an assessment the user has already taken.
type CompletedAssessment struct {
	AssessmentID  string  `json:"assessmentId" yaml:"assessmentId"`
	Score         float64 `json:"score" yaml:"score"`
	ScoreCategory string  `json:"scoreCategory" yaml:"scoreCategory"` // "excellent", "good", "fair", "poor"
}

// AssessmentSuggestion recommends another questionnaire to take.
type AssessmentSuggestion struct {
	AssessmentID     string   `json:"assessmentId"`
	AssessmentName   string   `json:"assessmentName"`
	Pillar           Pillar   `json:"pillar"`
	Priority         Priority `json:"priority"`
	Reason           string   `json:"reason"`
	ExpectedInsights []string `json:"expectedInsights"`
}
