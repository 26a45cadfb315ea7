package usecase

import (
	"math"

	"wellness-backend/internal/domain"
)

// Severity contribution weights per category.
const (
	proteinDeficiencyWeight   = 3.0
	fiberDeficiencyWeight     = 2.4
	diversityDeficiencyWeight = 2.0
	gutSymptomWeight          = 3.0
	inflammationWeight        = 2.5
	hydrationDeficiencyWeight = 1.6
	cravingWeight             = 2.5
	symptomFlagWeight         = 2.0

	maxSeverity = 100

	yearsPerSD   = 4.0
	maxAgeOffset = 15
	minAge       = 18
	maxAge       = 100

	baseConfidence = 80
	maxConfidence  = 95
)

var activityAdjustments = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        6,
	domain.ActivityLightlyActive:    3,
	domain.ActivityModeratelyActive: 0,
	domain.ActivityActive:           -3,
	domain.ActivityVeryActive:       -6,
}

// ageSeverityBand is one row of the population norm table.
type ageSeverityBand struct {
	maxAge   int // exclusive upper bound; 0 = open-ended
	expected float64
	sd       float64
}

var ageSeverityBands = []ageSeverityBand{
	{maxAge: 30, expected: 18, sd: 8},
	{maxAge: 40, expected: 25, sd: 9},
	{maxAge: 50, expected: 33, sd: 10},
	{maxAge: 60, expected: 41, sd: 11},
	{maxAge: 70, expected: 50, sd: 12},
	{maxAge: 0, expected: 58, sd: 13},
}

// CalculateMetabolicSeverity sums weighted deficiency and excess
// contributions into a 0-100 badness score.
func CalculateMetabolicSeverity(in domain.MetabolicAgeInput) int {
	severity := 0.0

	// Deficiencies (max - value)
	severity += math.Max(0, 4-in.ProteinScore) * proteinDeficiencyWeight
	severity += math.Max(0, 4-in.FiberScore) * fiberDeficiencyWeight
	severity += math.Max(0, 4-in.DiversityScore) * diversityDeficiencyWeight
	severity += math.Max(0, 5-in.HydrationScore) * hydrationDeficiencyWeight

	// Excess burden
	severity += in.GutScore * gutSymptomWeight
	severity += in.InflammationScore * inflammationWeight
	severity += in.CravingScore * cravingWeight

	severity += float64(len(in.SymptomFlags)) * symptomFlagWeight

	if in.ActivityLevel != nil {
		severity += activityAdjustments[*in.ActivityLevel]
	}

	// BMI band, additive and independent of age normalisation
	if bmi, ok := bodyMassIndex(in.WeightKg, in.HeightCm); ok {
		switch {
		case bmi < 18.5:
			severity += 4
		case bmi >= 30:
			severity += 10
		case bmi >= 25:
			severity += 5
		}
	}

	return clampInt(int(math.Round(severity)), 0, maxSeverity)
}

// GetExpectedMetabolicSeverityForAge returns the population norm for age.
func GetExpectedMetabolicSeverityForAge(age int) domain.ExpectedSeverity {
	for _, band := range ageSeverityBands {
		if band.maxAge == 0 || age < band.maxAge {
			return domain.ExpectedSeverity{Expected: band.expected, SD: band.sd}
		}
	}
	last := ageSeverityBands[len(ageSeverityBands)-1]
	return domain.ExpectedSeverity{Expected: last.expected, SD: last.sd}
}

// CalculateMetabolicAge converts severity into an age offset relative to the
// user's age-band norm. Chronological ages outside 18..100 are scored as the
// nearest bound.
func CalculateMetabolicAge(in domain.MetabolicAgeInput) domain.MetabolicAgeResult {
	chrono := clampInt(in.ChronologicalAge, minAge, maxAge)
	severity := CalculateMetabolicSeverity(in)
	norm := GetExpectedMetabolicSeverityForAge(chrono)

	deviation := float64(severity) - norm.Expected
	offset := int(math.Round(deviation / norm.SD * yearsPerSD))
	offset = clampInt(offset, -maxAgeOffset, maxAgeOffset)

	metabolicAge := clampInt(chrono+offset, minAge, maxAge)
	// Clamping the age may shrink the offset; keep age - chrono == offset.
	offset = metabolicAge - chrono

	return domain.MetabolicAgeResult{
		MetabolicAge:     metabolicAge,
		ChronologicalAge: chrono,
		AgeOffset:        offset,
		SeverityScore:    severity,
		HealthLevel:      determineHealthLevel(offset, severity),
		Confidence:       metabolicConfidence(in),
	}
}

// determineHealthLevel classifies by offset only. The severity argument is
// not consulted.
func determineHealthLevel(ageOffset int, _ int) domain.HealthLevel {
	switch {
	case ageOffset <= -5:
		return domain.HealthOptimal
	case ageOffset <= -2:
		return domain.HealthExcellent
	case ageOffset <= 2:
		return domain.HealthGood
	case ageOffset <= 5:
		return domain.HealthFair
	case ageOffset <= 10:
		return domain.HealthNeedsAttention
	default:
		return domain.HealthCritical
	}
}

func metabolicConfidence(in domain.MetabolicAgeInput) int {
	confidence := baseConfidence
	if len(in.SymptomFlags) > 0 {
		confidence += 5
	}
	if in.ActivityLevel != nil {
		confidence += 5
	}
	if in.WeightKg != nil && in.HeightCm != nil {
		confidence += 5
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return confidence
}

func bodyMassIndex(weightKg, heightCm *float64) (float64, bool) {
	if weightKg == nil || heightCm == nil || *heightCm <= 0 {
		return 0, false
	}
	m := *heightCm / 100
	return *weightKg / (m * m), true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
