package usecase

import (
	"math"

	"wellness-backend/internal/domain"
)

const (
	maxGutSymptom   = 5
	maxInflammation = 6
	maxCraving      = 5
)

// CalculateLongevityNutritionScore averages the seven answers (with the
// three bad-direction answers inverted) onto a 0-100 scale, one decimal.
// Inputs are expected in range; the result is not clamped.
func CalculateLongevityNutritionScore(d domain.LongevityNutritionData) float64 {
	total := d.ProteinScore +
		d.FiberScore +
		d.PlantDiversityScore +
		(maxGutSymptom - d.GutSymptomScore) +
		(maxInflammation - d.InflammationScore) +
		(maxCraving - d.CravingPattern) +
		d.HydrationScore

	return round1(float64(total) / 7 * 20)
}

type scoreBand struct {
	min         float64
	category    domain.ScoreCategory
	grade       string
	color       string
	description string
}

var scoreBands = []scoreBand{
	{90, domain.CategoryOptimal, "A", "emerald", "Your nutrition strongly supports healthy aging. Keep doing what you're doing."},
	{80, domain.CategoryExcellent, "B+", "green", "Very solid foundation with a few small gaps worth tightening."},
	{70, domain.CategoryGood, "B", "lime", "Good habits overall, with clear room to improve key areas."},
	{60, domain.CategoryFair, "C", "yellow", "Several nutrition gaps are likely affecting your energy and recovery."},
	{50, domain.CategoryNeedsImprovement, "D", "orange", "Important gaps are present. A focused protocol can make a real difference."},
	{math.Inf(-1), domain.CategoryCritical, "F", "red", "Your current pattern may be accelerating aging. Start with the immediate actions."},
}

// GetScoreCategory maps a score onto its six-band category.
func GetScoreCategory(score float64) domain.ScoreResult {
	for _, b := range scoreBands {
		if score >= b.min {
			return domain.ScoreResult{
				Score:       score,
				Category:    b.category,
				Grade:       b.grade,
				Color:       b.color,
				Description: b.description,
			}
		}
	}
	// unreachable: last band is open-ended
	last := scoreBands[len(scoreBands)-1]
	return domain.ScoreResult{Score: score, Category: last.category, Grade: last.grade, Color: last.color, Description: last.description}
}

type pillarRule struct {
	pillar    domain.Pillar
	raw       func(domain.LongevityNutritionData) float64
	max       float64
	excellent float64
	good      float64
}

var pillarRules = []pillarRule{
	{
		pillar:    domain.PillarBody,
		raw:       func(d domain.LongevityNutritionData) float64 { return float64(d.ProteinScore) },
		max:       4,
		excellent: 3,
		good:      2,
	},
	{
		pillar:    domain.PillarBrain,
		raw:       func(d domain.LongevityNutritionData) float64 { return float64(maxInflammation - d.InflammationScore) },
		max:       maxInflammation,
		excellent: 5,
		good:      3,
	},
	{
		pillar:    domain.PillarBalance,
		raw:       func(d domain.LongevityNutritionData) float64 { return float64(maxGutSymptom - d.GutSymptomScore) },
		max:       maxGutSymptom,
		excellent: 4,
		good:      3,
	},
	{
		pillar: domain.PillarBeauty,
		raw: func(d domain.LongevityNutritionData) float64 {
			return float64(d.HydrationScore+d.PlantDiversityScore+d.FiberScore) / 3
		},
		max:       13.0 / 3, // hydration 5, diversity 4, fiber 4
		excellent: 3.5,
		good:      2.5,
	},
}

// CalculatePillarScores remaps the raw answers onto BODY, BRAIN, BALANCE
// and BEAUTY.
func CalculatePillarScores(d domain.LongevityNutritionData) []domain.PillarScore {
	out := make([]domain.PillarScore, 0, len(pillarRules))
	for _, r := range pillarRules {
		raw := r.raw(d)

		status := domain.PillarNeedsImprovement
		if raw >= r.excellent {
			status = domain.PillarExcellent
		} else if raw >= r.good {
			status = domain.PillarGood
		}

		out = append(out, domain.PillarScore{
			Pillar:   r.pillar,
			Score:    round1(math.Min(raw/r.max*100, 100)),
			RawValue: round2(raw),
			MaxValue: round2(r.max),
			Status:   status,
		})
	}
	return out
}

// BuildLongevityReport scores the quiz and derives pillars, protocol and the
// rules behind it.
func BuildLongevityReport(d domain.LongevityNutritionData) domain.LongevityReport {
	return domain.LongevityReport{
		Result:   GetScoreCategory(CalculateLongevityNutritionScore(d)),
		Pillars:  CalculatePillarScores(d),
		Protocol: GenerateNutritionProtocol(d),
		Triggers: FiredProtocolRules(d),
	}
}
