package usecase

import (
	"strings"

	"wellness-backend/internal/domain"
)

// protocolRule adds fixed items to a protocol when its trigger holds.
// Rules are independent and evaluated in declaration order.
type protocolRule struct {
	Name         string
	When         func(domain.LongevityNutritionData) bool
	Immediate    []domain.ProtocolItem
	Foundation   []domain.ProtocolItem
	Optimization []domain.ProtocolItem
}

var protocolRules = []protocolRule{
	{
		Name: "low_protein",
		When: func(d domain.LongevityNutritionData) bool { return d.ProteinScore < 3 },
		Immediate: []domain.ProtocolItem{{
			Name:      "Protein at every meal (25-30g)",
			Relevance: "Low protein intake accelerates muscle loss and blunts satiety and blood sugar control.",
			Timing:    "Breakfast, lunch and dinner",
			Category:  "food",
		}},
		Foundation: []domain.ProtocolItem{{
			Name:      "Whey or Plant Protein Isolate",
			Relevance: "Closes the daily protein gap when whole-food intake falls short.",
			Dosage:    "20-30g",
			Timing:    "Post-workout or with breakfast",
			Category:  "supplement",
		}},
	},
	{
		Name: "low_fiber_diversity",
		When: func(d domain.LongevityNutritionData) bool { return d.FiberScore < 3 || d.PlantDiversityScore < 3 },
		Immediate: []domain.ProtocolItem{{
			Name:      "30 different plants per week",
			Relevance: "Plant diversity is the strongest dietary driver of a resilient microbiome.",
			Category:  "habit",
		}},
		Foundation: []domain.ProtocolItem{{
			Name:      "Psyllium Husk Fiber",
			Relevance: "Raises daily fiber toward the 30g target and feeds beneficial bacteria.",
			Dosage:    "5g",
			Timing:    "With a large glass of water before dinner",
			Category:  "supplement",
		}},
	},
	{
		Name: "high_gut_symptoms",
		When: func(d domain.LongevityNutritionData) bool { return d.GutSymptomScore > 3 },
		Immediate: []domain.ProtocolItem{{
			Name:      "Multi-strain Probiotic",
			Relevance: "Frequent bloating or irregularity points to microbiome imbalance.",
			Dosage:    "25-50 billion CFU",
			Timing:    "Morning, on an empty stomach",
			Category:  "supplement",
		}},
		Foundation: []domain.ProtocolItem{{
			Name:      "L-Glutamine",
			Relevance: "Supports gut lining repair.",
			Dosage:    "5g",
			Timing:    "Between meals",
			Category:  "supplement",
		}},
	},
	{
		Name: "high_inflammation",
		When: func(d domain.LongevityNutritionData) bool { return d.InflammationScore > 3 },
		Immediate: []domain.ProtocolItem{{
			Name:      "Omega-3 (EPA/DHA)",
			Relevance: "High inflammatory load; omega-3s are the best-evidenced dietary counterweight.",
			Dosage:    "2g combined EPA/DHA",
			Timing:    "With your largest meal",
			Category:  "supplement",
		}},
		Optimization: []domain.ProtocolItem{{
			Name:      "Curcumin with Piperine",
			Relevance: "Additional anti-inflammatory support once omega-3 status is addressed.",
			Dosage:    "500mg",
			Timing:    "With food",
			Category:  "supplement",
		}},
	},
	{
		Name: "low_hydration",
		When: func(d domain.LongevityNutritionData) bool { return d.HydrationScore < 3 },
		Immediate: []domain.ProtocolItem{{
			Name:      "Electrolyte Hydration",
			Relevance: "Under-hydration shows up as fatigue, headaches and cravings.",
			Dosage:    "1 serving in 500ml water",
			Timing:    "Morning",
			Category:  "supplement",
		}},
	},
	{
		Name: "high_cravings",
		When: func(d domain.LongevityNutritionData) bool { return d.CravingPattern > 3 },
		Immediate: []domain.ProtocolItem{{
			Name:      "Protein-forward breakfast",
			Relevance: "Strong sugar cravings usually follow blood sugar swings that start at breakfast.",
			Category:  "habit",
		}},
		Foundation: []domain.ProtocolItem{{
			Name:      "Chromium Picolinate",
			Relevance: "Supports insulin sensitivity and reduces carbohydrate cravings.",
			Dosage:    "200mcg",
			Timing:    "With lunch",
			Category:  "supplement",
		}},
	},
}

// Universal foundation items added unless already present by name.
var universalFoundation = []domain.ProtocolItem{
	{
		Name:      "Vitamin D3 + K2",
		Relevance: "Most adults are insufficient; supports immunity, bone and mood.",
		Dosage:    "2000-5000 IU D3 with 100mcg K2",
		Timing:    "With a fat-containing meal",
		Category:  "supplement",
	},
	{
		Name:      "Magnesium Glycinate",
		Relevance: "Involved in 300+ enzymatic reactions; supports sleep and stress resilience.",
		Dosage:    "300-400mg",
		Timing:    "Evening",
		Category:  "supplement",
	},
}

var universalFoundationKeys = []string{"vitamin d3", "magnesium glycinate"}

// Always-on optimization items.
var universalOptimization = []domain.ProtocolItem{
	{
		Name:      "Collagen Peptides",
		Relevance: "Supports skin elasticity, joints and connective tissue with age.",
		Dosage:    "10g",
		Timing:    "Morning, in coffee or a smoothie",
		Category:  "supplement",
	},
	{
		Name:      "Taurine",
		Relevance: "Declines with age; linked to mitochondrial health and longevity in recent research.",
		Dosage:    "1-3g",
		Timing:    "Any time",
		Category:  "supplement",
	},
}

// FiredProtocolRules returns the names of the rules that trigger for d, in
// evaluation order.
func FiredProtocolRules(d domain.LongevityNutritionData) []string {
	fired := make([]string, 0, len(protocolRules))
	for _, r := range protocolRules {
		if r.When(d) {
			fired = append(fired, r.Name)
		}
	}
	return fired
}

// GenerateNutritionProtocol builds a tiered protocol from quiz answers.
func GenerateNutritionProtocol(d domain.LongevityNutritionData) domain.NutritionProtocol {
	p := domain.NutritionProtocol{
		Immediate:    []domain.ProtocolItem{},
		Foundation:   []domain.ProtocolItem{},
		Optimization: []domain.ProtocolItem{},
	}

	for _, r := range protocolRules {
		if !r.When(d) {
			continue
		}
		p.Immediate = append(p.Immediate, r.Immediate...)
		p.Foundation = append(p.Foundation, r.Foundation...)
		p.Optimization = append(p.Optimization, r.Optimization...)
	}

	for i, item := range universalFoundation {
		if !protocolHas(p, universalFoundationKeys[i]) {
			p.Foundation = append(p.Foundation, item)
		}
	}
	p.Optimization = append(p.Optimization, universalOptimization...)

	return p
}

// protocolHas reports whether any item in any tier contains key (case-insensitive).
func protocolHas(p domain.NutritionProtocol, key string) bool {
	for _, tier := range [][]domain.ProtocolItem{p.Immediate, p.Foundation, p.Optimization} {
		for _, item := range tier {
			if strings.Contains(strings.ToLower(item.Name), key) {
				return true
			}
		}
	}
	return false
}
