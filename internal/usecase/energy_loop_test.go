package usecase

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"wellness-backend/internal/domain"
)

func TestEnergyWeightsSumToOne(t *testing.T) {
	sum := WeightSleepRecovery + WeightStressLoad + WeightNutrition + WeightMovementQuality + WeightHormonalRhythm
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestCalculateSleepRecovery(t *testing.T) {
	tests := []struct {
		name string
		in   domain.EnergyInputs
		want domain.EnergySegmentScore
	}{
		{
			name: "full wearable on target",
			in:   domain.EnergyInputs{SleepHours: ptr(8.0), RemPercentage: ptr(25.0), DeepSleepHours: ptr(1.5)},
			want: domain.EnergySegmentScore{
				Score:       100,
				DataQuality: domain.DataQualityHigh,
				DataSources: []domain.DataSource{domain.SourceWearableSleep, domain.SourceWearableREM, domain.SourceWearableDeepSleep},
			},
		},
		{
			name: "single wearable metric",
			in:   domain.EnergyInputs{SleepHours: ptr(6.0)},
			want: domain.EnergySegmentScore{Score: 75, DataQuality: domain.DataQualityMedium, DataSources: []domain.DataSource{domain.SourceWearableSleep}},
		},
		{
			name: "wearable wins over manual",
			in:   domain.EnergyInputs{SleepHours: ptr(4.0), SleepQuality: ptr(9.0)},
			want: domain.EnergySegmentScore{Score: 50, DataQuality: domain.DataQualityMedium, DataSources: []domain.DataSource{domain.SourceWearableSleep}},
		},
		{
			name: "two manual ratings",
			in:   domain.EnergyInputs{SleepQuality: ptr(7.0), EnergyRating: ptr(5.0)},
			want: domain.EnergySegmentScore{
				Score:       60,
				DataQuality: domain.DataQualityMedium,
				DataSources: []domain.DataSource{domain.SourceManualSleepQuality, domain.SourceManualEnergy},
			},
		},
		{
			name: "one manual rating",
			in:   domain.EnergyInputs{SleepQuality: ptr(7.0)},
			want: domain.EnergySegmentScore{Score: 70, DataQuality: domain.DataQualityLow, DataSources: []domain.DataSource{domain.SourceManualSleepQuality}},
		},
		{
			name: "no data",
			in:   domain.EnergyInputs{},
			want: domain.EnergySegmentScore{Score: 0, DataQuality: domain.DataQualityLow, DataSources: []domain.DataSource{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSleepRecovery(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CalculateSleepRecovery() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateStressLoad(t *testing.T) {
	t.Run("hrv and resting hr", func(t *testing.T) {
		got := CalculateStressLoad(domain.EnergyInputs{HRV: ptr(30.0), RestingHeartRate: ptr(70.0)})
		assert.InDelta(t, 62.5, got.Score, 1e-9)
		assert.Equal(t, domain.DataQualityHigh, got.DataQuality)
	})

	t.Run("resting hr is clamped", func(t *testing.T) {
		low := CalculateStressLoad(domain.EnergyInputs{RestingHeartRate: ptr(40.0)})
		high := CalculateStressLoad(domain.EnergyInputs{RestingHeartRate: ptr(110.0)})
		assert.Equal(t, 100.0, low.Score)
		assert.Equal(t, 0.0, high.Score)
	})

	t.Run("self-reported stress is inverted", func(t *testing.T) {
		got := CalculateStressLoad(domain.EnergyInputs{StressLevel: ptr(3.0)})
		assert.InDelta(t, 80.0, got.Score, 1e-9)
		assert.Equal(t, domain.DataQualityLow, got.DataQuality)
		assert.Equal(t, []domain.DataSource{domain.SourceManualStress}, got.DataSources)
	})
}

func TestCalculateNutrition(t *testing.T) {
	got := CalculateNutrition(domain.EnergyInputs{MealQuality: ptr(8.0), NutritionScore: ptr(120.0)})
	assert.InDelta(t, 90.0, got.Score, 1e-9)
	assert.Equal(t, domain.DataQualityMedium, got.DataQuality)
}

func TestCalculateMovementQuality(t *testing.T) {
	t.Run("wearable capped per metric", func(t *testing.T) {
		got := CalculateMovementQuality(domain.EnergyInputs{ActiveMinutes: ptr(45.0), Steps: ptr(4000.0)})
		assert.InDelta(t, 75.0, got.Score, 1e-9)
		assert.Equal(t, domain.DataQualityHigh, got.DataQuality)
	})

	t.Run("movement skipped", func(t *testing.T) {
		got := CalculateMovementQuality(domain.EnergyInputs{MovementCompleted: ptr(false)})
		assert.Equal(t, 0.0, got.Score)
		assert.Equal(t, []domain.DataSource{domain.SourceManualMovement}, got.DataSources)
	})
}

func TestCalculateHormonalRhythm(t *testing.T) {
	tests := []struct {
		name    string
		in      domain.EnergyInputs
		score   float64
		quality domain.DataQuality
	}{
		{"mid-peri", domain.EnergyInputs{MenoStage: ptr(domain.MenoStageMidPeri)}, 65, domain.DataQualityMedium},
		{"stage wins over cycle day", domain.EnergyInputs{MenoStage: ptr(domain.MenoStagePost), CycleDay: ptr(10)}, 70, domain.DataQualityMedium},
		{"unknown stage falls through to cycle day", domain.EnergyInputs{MenoStage: ptr(domain.MenoStage("other")), CycleDay: ptr(10)}, 85, domain.DataQualityMedium},
		{"menstrual", domain.EnergyInputs{CycleDay: ptr(3)}, 65, domain.DataQualityMedium},
		{"luteal", domain.EnergyInputs{CycleDay: ptr(20)}, 70, domain.DataQualityMedium},
		{"day out of range", domain.EnergyInputs{CycleDay: ptr(35)}, 75, domain.DataQualityLow},
		{"no data", domain.EnergyInputs{}, 75, domain.DataQualityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHormonalRhythm(tt.in)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.quality, got.DataQuality)
		})
	}
}

func TestCalculateEnergyLoop(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := CalculateEnergyLoop(domain.EnergyInputs{})
		assert.InDelta(t, 7.5, got.Composite, 1e-9)
		assert.Equal(t, 0.0, got.LoopCompletion)
		assert.Equal(t, domain.DataQualityLow, got.OverallDataQuality)
	})

	t.Run("wearable-rich day", func(t *testing.T) {
		got := CalculateEnergyLoop(domain.EnergyInputs{
			SleepHours:       ptr(8.0),
			RemPercentage:    ptr(25.0),
			DeepSleepHours:   ptr(1.5),
			HRV:              ptr(60.0),
			RestingHeartRate: ptr(60.0),
			MealQuality:      ptr(8.0),
			NutritionScore:   ptr(90.0),
			ActiveMinutes:    ptr(30.0),
			Steps:            ptr(8000.0),
			MenoStage:        ptr(domain.MenoStagePre),
		})
		assert.InDelta(t, 95.5, got.Composite, 1e-9)
		assert.Equal(t, 100.0, got.LoopCompletion)
		assert.Equal(t, domain.DataQualityHigh, got.OverallDataQuality)
	})

	t.Run("manual-only day", func(t *testing.T) {
		got := CalculateEnergyLoop(domain.EnergyInputs{
			SleepQuality:      ptr(7.0),
			EnergyRating:      ptr(5.0),
			StressLevel:       ptr(3.0),
			MealQuality:       ptr(6.0),
			NutritionScore:    ptr(70.0),
			MovementCompleted: ptr(true),
			CycleDay:          ptr(10),
		})
		assert.InDelta(t, 74.5, got.Composite, 1e-9)
		assert.Equal(t, 100.0, got.LoopCompletion)
		assert.Equal(t, domain.DataQualityMedium, got.OverallDataQuality)
	})

	t.Run("partial completion", func(t *testing.T) {
		got := CalculateEnergyLoop(domain.EnergyInputs{SleepHours: ptr(8.0), StressLevel: ptr(1.0)})
		assert.Equal(t, 40.0, got.LoopCompletion)
		assert.GreaterOrEqual(t, got.Composite, 0.0)
		assert.LessOrEqual(t, got.Composite, 100.0)
	})

	t.Run("out-of-range readings stay in bounds", func(t *testing.T) {
		got := CalculateEnergyLoop(domain.EnergyInputs{
			SleepHours:     ptr(-8.0),
			StressLevel:    ptr(40.0),
			NutritionScore: ptr(250.0),
		})
		assert.Equal(t, 0.0, got.Segments.SleepRecovery.Score)
		assert.Equal(t, 0.0, got.Segments.StressLoad.Score)
		assert.Equal(t, 100.0, got.Segments.Nutrition.Score)
		assert.InDelta(t, 27.5, got.Composite, 1e-9)
	})
}
