package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-backend/internal/domain"
)

func productNames(products []domain.ProductRecommendation) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}

func TestResolveSymptomType(t *testing.T) {
	tests := map[string]domain.SymptomType{
		"sleep":          domain.SymptomSleep,
		"Brain-Fog":      domain.SymptomSleep,
		" sleep quality": domain.SymptomSleep,
		"FOCUS":          domain.SymptomCognitive,
		"fatigue":        domain.SymptomEnergy,
		"anxiety":        domain.SymptomStress,
		"menopause":      domain.SymptomHormone,
		"gut-health":     domain.SymptomGut,
		"joint pain":     domain.SymptomInflammation,
		"hair-loss":      domain.SymptomUnknown,
	}
	for key, want := range tests {
		assert.Equal(t, want, ResolveSymptomType(key), key)
	}
}

func TestMatchProductsToAssessment(t *testing.T) {
	t.Run("healthy score needs nothing", func(t *testing.T) {
		got := MatchProductsToAssessment("sleep", 80)
		require.NotNil(t, got)
		assert.Empty(t, got)

		assert.Empty(t, MatchProductsToAssessment("unknown-thing", 70))
	})

	t.Run("severe sleep", func(t *testing.T) {
		got := MatchProductsToAssessment("sleep", 45)
		require.Len(t, got, 3)
		assert.Equal(t, "Magnesium Glycinate", got[0].Name)
		assert.Equal(t, []string{"Magnesium Glycinate", "L-Theanine", "Glycine"}, productNames(got))
		for i, p := range got {
			assert.Equal(t, i+1, p.Priority)
		}
	})

	t.Run("band boundary", func(t *testing.T) {
		assert.Len(t, MatchProductsToAssessment("sleep", 50), 2)
		assert.Len(t, MatchProductsToAssessment("sleep", 49.9), 3)
		assert.Len(t, MatchProductsToAssessment("sleep", 69.9), 2)
	})

	t.Run("hormone severe", func(t *testing.T) {
		got := MatchProductsToAssessment("hormonal_balance", 30)
		assert.Equal(t, []string{"Vitamin D3 + K2", "DIM (Diindolylmethane)", "Magnesium Glycinate", "Vitex (Chasteberry)"}, productNames(got))
	})

	t.Run("unknown symptom falls back to multivitamin", func(t *testing.T) {
		got := MatchProductsToAssessment("hair-loss", 20)
		require.Len(t, got, 1)
		assert.Equal(t, "multivitamin", got[0].ID)
		assert.Equal(t, 1, got[0].Priority)
	})

	t.Run("results do not share catalogue state", func(t *testing.T) {
		first := MatchProductsToAssessment("sleep", 45)
		first[0].Price = 0
		second := MatchProductsToAssessment("sleep", 45)
		assert.Equal(t, 29.99, second[0].Price)
	})
}

func TestCalculateBundlePrice(t *testing.T) {
	t.Run("round numbers", func(t *testing.T) {
		got := CalculateBundlePrice([]domain.ProductRecommendation{{Price: 100}, {Price: 50}})
		assert.Equal(t, domain.BundlePrice{Subtotal: 150, Discount: 0.10, Total: 135, Savings: 15}, got)
	})

	t.Run("cents", func(t *testing.T) {
		got := CalculateBundlePrice(MatchProductsToAssessment("sleep", 45))
		assert.Equal(t, 74.97, got.Subtotal)
		assert.Equal(t, 7.5, got.Savings)
		assert.Equal(t, 67.47, got.Total)
		assert.InDelta(t, got.Subtotal, got.Total+got.Savings, 1e-9)
	})

	t.Run("empty bundle", func(t *testing.T) {
		got := CalculateBundlePrice(nil)
		assert.Equal(t, 0.0, got.Subtotal)
		assert.Equal(t, 0.0, got.Total)
		assert.Equal(t, 0.0, got.Savings)
	})
}
