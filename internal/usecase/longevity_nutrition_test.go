package usecase

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"wellness-backend/internal/domain"
)

var strongAnswers = domain.LongevityNutritionData{
	ProteinScore:        4,
	FiberScore:          4,
	PlantDiversityScore: 4,
	GutSymptomScore:     0,
	InflammationScore:   1,
	CravingPattern:      0,
	HydrationScore:      5,
}

var weakAnswers = domain.LongevityNutritionData{
	ProteinScore:        1,
	FiberScore:          2,
	PlantDiversityScore: 2,
	GutSymptomScore:     2,
	InflammationScore:   4,
	CravingPattern:      4,
	HydrationScore:      2,
}

func TestCalculateLongevityNutritionScore(t *testing.T) {
	assert.Equal(t, 91.4, CalculateLongevityNutritionScore(strongAnswers))
	assert.Equal(t, 0.0, CalculateLongevityNutritionScore(domain.LongevityNutritionData{
		GutSymptomScore:   5,
		InflammationScore: 6,
		CravingPattern:    5,
	}))
	// 4+4+4+5+6+5+5 = 33 -> 94.28...
	assert.Equal(t, 94.3, CalculateLongevityNutritionScore(domain.LongevityNutritionData{
		ProteinScore: 4, FiberScore: 4, PlantDiversityScore: 4, HydrationScore: 5,
	}))
}

func TestGetScoreCategory(t *testing.T) {
	tests := []struct {
		score    float64
		category domain.ScoreCategory
		grade    string
		color    string
	}{
		{100, domain.CategoryOptimal, "A", "emerald"},
		{90, domain.CategoryOptimal, "A", "emerald"},
		{89.9, domain.CategoryExcellent, "B+", "green"},
		{80, domain.CategoryExcellent, "B+", "green"},
		{79.9, domain.CategoryGood, "B", "lime"},
		{70, domain.CategoryGood, "B", "lime"},
		{60, domain.CategoryFair, "C", "yellow"},
		{59.9, domain.CategoryNeedsImprovement, "D", "orange"},
		{50, domain.CategoryNeedsImprovement, "D", "orange"},
		{49.9, domain.CategoryCritical, "F", "red"},
		{0, domain.CategoryCritical, "F", "red"},
	}

	for _, tt := range tests {
		got := GetScoreCategory(tt.score)
		assert.Equal(t, tt.score, got.Score)
		assert.Equal(t, tt.category, got.Category, "score %.1f", tt.score)
		assert.Equal(t, tt.grade, got.Grade, "score %.1f", tt.score)
		assert.Equal(t, tt.color, got.Color, "score %.1f", tt.score)
		assert.NotEmpty(t, got.Description)
	}
}

func TestCalculatePillarScores(t *testing.T) {
	t.Run("strong answers", func(t *testing.T) {
		got := CalculatePillarScores(strongAnswers)
		want := []domain.PillarScore{
			{Pillar: domain.PillarBody, Score: 100, RawValue: 4, MaxValue: 4, Status: domain.PillarExcellent},
			{Pillar: domain.PillarBrain, Score: 83.3, RawValue: 5, MaxValue: 6, Status: domain.PillarExcellent},
			{Pillar: domain.PillarBalance, Score: 100, RawValue: 5, MaxValue: 5, Status: domain.PillarExcellent},
			{Pillar: domain.PillarBeauty, Score: 100, RawValue: 4.33, MaxValue: 4.33, Status: domain.PillarExcellent},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("CalculatePillarScores() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("weak answers", func(t *testing.T) {
		got := CalculatePillarScores(weakAnswers)
		assert.Len(t, got, 4)

		assert.Equal(t, 25.0, got[0].Score)
		assert.Equal(t, domain.PillarNeedsImprovement, got[0].Status)

		assert.Equal(t, 33.3, got[1].Score)
		assert.Equal(t, domain.PillarNeedsImprovement, got[1].Status)

		assert.Equal(t, 60.0, got[2].Score)
		assert.Equal(t, domain.PillarGood, got[2].Status)

		assert.Equal(t, 46.2, got[3].Score)
		assert.Equal(t, domain.PillarNeedsImprovement, got[3].Status)
	})
}
