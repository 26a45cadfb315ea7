package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wellness-backend/internal/domain"
)

func suggestionIDs(s []domain.AssessmentSuggestion) []string {
	ids := make([]string, len(s))
	for i, x := range s {
		ids[i] = x.AssessmentID
	}
	return ids
}

func TestGetSuggestedAdditionalAssessments(t *testing.T) {
	tests := []struct {
		name      string
		completed []domain.CompletedAssessment
		available []string
		want      []string
	}{
		{
			name:      "poor energy",
			completed: []domain.CompletedAssessment{{AssessmentID: domain.AssessmentEnergy, Score: 35, ScoreCategory: "poor"}},
			want:      []string{domain.AssessmentHormone, domain.AssessmentSleep, domain.AssessmentBodyComposition},
		},
		{
			name: "completed targets are skipped",
			completed: []domain.CompletedAssessment{
				{AssessmentID: domain.AssessmentEnergy, ScoreCategory: "poor"},
				{AssessmentID: domain.AssessmentSleep, ScoreCategory: "good"},
			},
			want: []string{domain.AssessmentHormone, domain.AssessmentBodyComposition},
		},
		{
			name: "good results suggest nothing",
			completed: []domain.CompletedAssessment{
				{AssessmentID: domain.AssessmentEnergy, ScoreCategory: "good"},
				{AssessmentID: domain.AssessmentSleep, ScoreCategory: "excellent"},
			},
			want: []string{},
		},
		{
			name: "dedupe keeps first and sorts by priority",
			completed: []domain.CompletedAssessment{
				{AssessmentID: domain.AssessmentEnergy, ScoreCategory: "poor"},
				{AssessmentID: domain.AssessmentCognitive, ScoreCategory: "fair"},
			},
			want: []string{domain.AssessmentHormone, domain.AssessmentSleep, domain.AssessmentBodyComposition, domain.AssessmentStress},
		},
		{
			name: "available set filters targets",
			completed: []domain.CompletedAssessment{
				{AssessmentID: domain.AssessmentEnergy, ScoreCategory: "poor"},
				{AssessmentID: domain.AssessmentCognitive, ScoreCategory: "fair"},
			},
			available: []string{domain.AssessmentSleep, domain.AssessmentStress},
			want:      []string{domain.AssessmentSleep, domain.AssessmentStress},
		},
		{
			name:      "empty available set",
			completed: []domain.CompletedAssessment{{AssessmentID: domain.AssessmentEnergy, ScoreCategory: "poor"}},
			available: []string{},
			want:      []string{},
		},
		{
			name: "low priority sorts last",
			completed: []domain.CompletedAssessment{
				{AssessmentID: domain.AssessmentHormone, ScoreCategory: "poor"},
				{AssessmentID: domain.AssessmentPhysicalPerformance, ScoreCategory: "fair"},
			},
			want: []string{domain.AssessmentBodyComposition, domain.AssessmentEnergy, domain.AssessmentCognitive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSuggestedAdditionalAssessments(tt.completed, tt.available)
			assert.Equal(t, tt.want, suggestionIDs(got))
		})
	}
}

func TestSuggestionsAreCappedAndUnique(t *testing.T) {
	var completed []domain.CompletedAssessment
	for _, id := range []string{
		domain.AssessmentEnergy,
		domain.AssessmentCognitive,
		domain.AssessmentSleep,
		domain.AssessmentStress,
		domain.AssessmentPhysicalPerformance,
	} {
		completed = append(completed, domain.CompletedAssessment{AssessmentID: id, ScoreCategory: "poor"})
	}

	got := GetSuggestedAdditionalAssessments(completed, nil)
	assert.LessOrEqual(t, len(got), 6)

	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s.AssessmentID], "duplicate %s", s.AssessmentID)
		seen[s.AssessmentID] = true
		assert.NotEmpty(t, s.AssessmentName)
		assert.NotEmpty(t, s.ExpectedInsights)
	}
	assert.Equal(t, []string{domain.AssessmentHormone, domain.AssessmentBodyComposition}, suggestionIDs(got))
}

func TestAssessmentCatalogIDs(t *testing.T) {
	ids := AssessmentCatalogIDs()
	assert.Len(t, ids, 7)
	assert.IsIncreasing(t, ids)
}
