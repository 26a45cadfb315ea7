package usecase

import (
	"math"

	"wellness-backend/internal/domain"
)

// Segment weights. Must sum to 1.0.
const (
	WeightSleepRecovery   = 0.30
	WeightStressLoad      = 0.25
	WeightNutrition       = 0.20
	WeightMovementQuality = 0.15
	WeightHormonalRhythm  = 0.10
)

// Physiological targets used for linear normalisation.
const (
	targetSleepHours     = 8.0
	targetRemPercentage  = 25.0
	targetDeepSleepHours = 1.5
	targetHRV            = 60.0
	targetRestingHR      = 60.0
	restingHRPenalty     = 2.5 // points lost per bpm above target
	targetActiveMinutes  = 30.0
	targetSteps          = 8000.0

	neutralHormonalScore = 75.0
)

var menoStageScores = map[domain.MenoStage]float64{
	domain.MenoStagePre:       85,
	domain.MenoStageEarlyPeri: 75,
	domain.MenoStageMidPeri:   65,
	domain.MenoStageLatePeri:  60,
	domain.MenoStagePost:      70,
}

// subMetric is one normalised reading feeding a segment.
type subMetric struct {
	score  float64
	source domain.DataSource
}

// CalculateSleepRecovery scores sleep from wearable data, falling back to
// self-reported sleep quality and energy.
func CalculateSleepRecovery(in domain.EnergyInputs) domain.EnergySegmentScore {
	var wearable []subMetric
	if in.SleepHours != nil {
		wearable = append(wearable, subMetric{normalize(*in.SleepHours, targetSleepHours), domain.SourceWearableSleep})
	}
	if in.RemPercentage != nil {
		wearable = append(wearable, subMetric{normalize(*in.RemPercentage, targetRemPercentage), domain.SourceWearableREM})
	}
	if in.DeepSleepHours != nil {
		wearable = append(wearable, subMetric{normalize(*in.DeepSleepHours, targetDeepSleepHours), domain.SourceWearableDeepSleep})
	}

	var manual []subMetric
	if in.SleepQuality != nil {
		manual = append(manual, subMetric{ratingScore(*in.SleepQuality), domain.SourceManualSleepQuality})
	}
	if in.EnergyRating != nil {
		manual = append(manual, subMetric{ratingScore(*in.EnergyRating), domain.SourceManualEnergy})
	}

	return buildSegment(wearable, manual)
}

// CalculateStressLoad scores autonomic load. Higher is better (less load).
func CalculateStressLoad(in domain.EnergyInputs) domain.EnergySegmentScore {
	var wearable []subMetric
	if in.HRV != nil {
		wearable = append(wearable, subMetric{normalize(*in.HRV, targetHRV), domain.SourceWearableHRV})
	}
	if in.RestingHeartRate != nil {
		wearable = append(wearable, subMetric{restingHRScore(*in.RestingHeartRate), domain.SourceWearableRestingHR})
	}

	var manual []subMetric
	if in.StressLevel != nil {
		manual = append(manual, subMetric{stressLevelScore(*in.StressLevel), domain.SourceManualStress})
	}

	return buildSegment(wearable, manual)
}

// CalculateNutrition scores nutrition. There is no wearable source.
func CalculateNutrition(in domain.EnergyInputs) domain.EnergySegmentScore {
	var manual []subMetric
	if in.MealQuality != nil {
		manual = append(manual, subMetric{ratingScore(*in.MealQuality), domain.SourceManualMealQuality})
	}
	if in.NutritionScore != nil {
		manual = append(manual, subMetric{clampScore(*in.NutritionScore), domain.SourceManualNutrition})
	}

	return buildSegment(nil, manual)
}

// CalculateMovementQuality scores daily movement.
func CalculateMovementQuality(in domain.EnergyInputs) domain.EnergySegmentScore {
	var wearable []subMetric
	if in.ActiveMinutes != nil {
		wearable = append(wearable, subMetric{normalize(*in.ActiveMinutes, targetActiveMinutes), domain.SourceWearableActiveMins})
	}
	if in.Steps != nil {
		wearable = append(wearable, subMetric{normalize(*in.Steps, targetSteps), domain.SourceWearableSteps})
	}

	var manual []subMetric
	if in.MovementCompleted != nil {
		score := 0.0
		if *in.MovementCompleted {
			score = 100
		}
		manual = append(manual, subMetric{score, domain.SourceManualMovement})
	}

	return buildSegment(wearable, manual)
}

// CalculateHormonalRhythm looks up a fixed score by menopause stage, then by
// cycle-day bucket. With neither it returns a neutral 75 at low quality.
func CalculateHormonalRhythm(in domain.EnergyInputs) domain.EnergySegmentScore {
	if in.MenoStage != nil {
		if score, ok := menoStageScores[*in.MenoStage]; ok {
			return domain.EnergySegmentScore{
				Score:       score,
				DataQuality: domain.DataQualityMedium,
				DataSources: []domain.DataSource{domain.SourceManualMenoStage},
			}
		}
	}

	if in.CycleDay != nil {
		if score, ok := cycleDayScore(*in.CycleDay); ok {
			return domain.EnergySegmentScore{
				Score:       score,
				DataQuality: domain.DataQualityMedium,
				DataSources: []domain.DataSource{domain.SourceManualCycleDay},
			}
		}
	}

	return domain.EnergySegmentScore{
		Score:       neutralHormonalScore,
		DataQuality: domain.DataQualityLow,
		DataSources: []domain.DataSource{},
	}
}

// CalculateEnergyLoop combines all five segments into the composite score.
func CalculateEnergyLoop(in domain.EnergyInputs) domain.EnergyLoopScore {
	segments := domain.EnergySegments{
		SleepRecovery:   CalculateSleepRecovery(in),
		StressLoad:      CalculateStressLoad(in),
		Nutrition:       CalculateNutrition(in),
		MovementQuality: CalculateMovementQuality(in),
		HormonalRhythm:  CalculateHormonalRhythm(in),
	}

	composite := segments.SleepRecovery.Score*WeightSleepRecovery +
		segments.StressLoad.Score*WeightStressLoad +
		segments.Nutrition.Score*WeightNutrition +
		segments.MovementQuality.Score*WeightMovementQuality +
		segments.HormonalRhythm.Score*WeightHormonalRhythm

	withData, high, medium := 0, 0, 0
	for _, s := range segments.All() {
		if len(s.DataSources) > 0 {
			withData++
		}
		switch s.DataQuality {
		case domain.DataQualityHigh:
			high++
		case domain.DataQualityMedium:
			medium++
		}
	}

	overall := domain.DataQualityLow
	if high >= 3 {
		overall = domain.DataQualityHigh
	} else if high+medium >= 3 {
		overall = domain.DataQualityMedium
	}

	return domain.EnergyLoopScore{
		Composite:          round2(composite),
		Segments:           segments,
		LoopCompletion:     round2(float64(withData) / 5 * 100),
		OverallDataQuality: overall,
	}
}

// buildSegment averages wearable metrics when any exist, otherwise the
// manual fallback metrics.
func buildSegment(wearable, manual []subMetric) domain.EnergySegmentScore {
	used := wearable
	quality := domain.DataQualityLow

	switch {
	case len(wearable) >= 2:
		quality = domain.DataQualityHigh
	case len(wearable) == 1:
		quality = domain.DataQualityMedium
	case len(manual) >= 2:
		used = manual
		quality = domain.DataQualityMedium
	default:
		used = manual
	}

	seg := domain.EnergySegmentScore{
		DataQuality: quality,
		DataSources: make([]domain.DataSource, 0, len(used)),
	}
	if len(used) == 0 {
		return seg
	}

	sum := 0.0
	for _, m := range used {
		sum += m.score
		seg.DataSources = append(seg.DataSources, m.source)
	}
	seg.Score = sum / float64(len(used))
	return seg
}

// normalize scales value linearly against target, clipped to 0..100.
func normalize(value, target float64) float64 {
	return clampScore(value / target * 100)
}

// ratingScore maps a 1-10 self rating onto 0-100.
func ratingScore(rating float64) float64 {
	return clampScore(rating * 10)
}

// stressLevelScore inverts a 1-10 stress rating: 1 -> 100, 10 -> 10.
func stressLevelScore(level float64) float64 {
	return clampScore((11 - level) * 10)
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}

func restingHRScore(rhr float64) float64 {
	return clampScore(100 - (rhr-targetRestingHR)*restingHRPenalty)
}

func cycleDayScore(day int) (float64, bool) {
	switch {
	case day >= 1 && day <= 5:
		return 65, true // menstrual
	case day >= 6 && day <= 14:
		return 85, true // follicular
	case day >= 15 && day <= 28:
		return 70, true // luteal
	}
	return 0, false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
