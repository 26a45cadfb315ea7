package usecase

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"wellness-backend/internal/domain"
)

const (
	healthyScoreThreshold = 70 // at or above: no recommendation
	severeScoreThreshold  = 50 // below: severe band

	bundleDiscount = 0.10
)

// symptomAliases maps assessment keys used by the apps onto matcher branches.
// brain_fog shares the sleep branch: most brain-fog reports in the intake
// trace back to poor sleep.
var symptomAliases = map[string]domain.SymptomType{
	"sleep":            domain.SymptomSleep,
	"sleep_quality":    domain.SymptomSleep,
	"brain_fog":        domain.SymptomSleep,
	"cognitive":        domain.SymptomCognitive,
	"focus":            domain.SymptomCognitive,
	"memory":           domain.SymptomCognitive,
	"energy":           domain.SymptomEnergy,
	"fatigue":          domain.SymptomEnergy,
	"stress":           domain.SymptomStress,
	"anxiety":          domain.SymptomStress,
	"hormone":          domain.SymptomHormone,
	"hormonal_balance": domain.SymptomHormone,
	"menopause":        domain.SymptomHormone,
	"gut":              domain.SymptomGut,
	"digestive":        domain.SymptomGut,
	"gut_health":       domain.SymptomGut,
	"inflammation":     domain.SymptomInflammation,
	"joint":            domain.SymptomInflammation,
	"joint_pain":       domain.SymptomInflammation,
}

// ResolveSymptomType normalises an assessment key. Unknown keys resolve to
// SymptomUnknown.
func ResolveSymptomType(key string) domain.SymptomType {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, "-", "_")
	k = strings.ReplaceAll(k, " ", "_")
	if t, ok := symptomAliases[k]; ok {
		return t
	}
	return domain.SymptomUnknown
}

// Catalogue entries. Priority is assigned per branch.
var (
	magnesiumGlycinate = domain.ProductRecommendation{ID: "mag-glycinate", Name: "Magnesium Glycinate", Price: 29.99, Tier: domain.TierGold, EvidenceLevel: "strong", Dosage: "300-400mg before bed"}
	lTheanine          = domain.ProductRecommendation{ID: "l-theanine", Name: "L-Theanine", Price: 24.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "200mg in the evening"}
	glycine            = domain.ProductRecommendation{ID: "glycine", Name: "Glycine", Price: 19.99, Tier: domain.TierBronze, EvidenceLevel: "emerging", Dosage: "3g before bed"}
	melatonin          = domain.ProductRecommendation{ID: "melatonin-low", Name: "Low-Dose Melatonin", Price: 14.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "0.5mg 30 minutes before bed"}
	omega3             = domain.ProductRecommendation{ID: "omega-3", Name: "Omega-3 Fish Oil (EPA/DHA)", Price: 34.99, Tier: domain.TierGold, EvidenceLevel: "strong", Dosage: "2g daily with food"}
	lionsMane          = domain.ProductRecommendation{ID: "lions-mane", Name: "Lion's Mane Extract", Price: 32.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "1g daily"}
	citicoline         = domain.ProductRecommendation{ID: "citicoline", Name: "Citicoline (CDP-Choline)", Price: 36.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "250mg in the morning"}
	coq10              = domain.ProductRecommendation{ID: "coq10", Name: "CoQ10 (Ubiquinol)", Price: 39.99, Tier: domain.TierGold, EvidenceLevel: "strong", Dosage: "100-200mg with breakfast"}
	bComplex           = domain.ProductRecommendation{ID: "b-complex", Name: "Methylated B-Complex", Price: 22.99, Tier: domain.TierGold, EvidenceLevel: "strong", Dosage: "1 capsule with breakfast"}
	ironBisglycinate   = domain.ProductRecommendation{ID: "iron-bisglycinate", Name: "Iron Bisglycinate", Price: 18.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "25mg every other day (test ferritin first)"}
	ashwagandha        = domain.ProductRecommendation{ID: "ashwagandha", Name: "Ashwagandha (KSM-66)", Price: 27.99, Tier: domain.TierGold, EvidenceLevel: "strong", Dosage: "600mg daily"}
	rhodiola           = domain.ProductRecommendation{ID: "rhodiola", Name: "Rhodiola Rosea", Price: 25.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "200-400mg in the morning"}
	vitaminD3K2        = domain.ProductRecommendation{ID: "vitamin-d3-k2", Name: "Vitamin D3 + K2", Price: 21.99, Tier: domain.TierGold, EvidenceLevel: "strong", Dosage: "2000-5000 IU daily"}
	dim                = domain.ProductRecommendation{ID: "dim", Name: "DIM (Diindolylmethane)", Price: 29.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "100-200mg daily"}
	vitexBerry         = domain.ProductRecommendation{ID: "vitex", Name: "Vitex (Chasteberry)", Price: 19.99, Tier: domain.TierBronze, EvidenceLevel: "emerging", Dosage: "400mg in the morning"}
	probiotic          = domain.ProductRecommendation{ID: "probiotic", Name: "Multi-strain Probiotic", Price: 39.99, Tier: domain.TierGold, EvidenceLevel: "strong", Dosage: "25-50 billion CFU daily"}
	lGlutamine         = domain.ProductRecommendation{ID: "l-glutamine", Name: "L-Glutamine", Price: 24.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "5g between meals"}
	digestiveEnzymes   = domain.ProductRecommendation{ID: "digestive-enzymes", Name: "Digestive Enzymes", Price: 26.99, Tier: domain.TierBronze, EvidenceLevel: "emerging", Dosage: "1 capsule with meals"}
	curcumin           = domain.ProductRecommendation{ID: "curcumin", Name: "Curcumin with Piperine", Price: 31.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "500mg twice daily with food"}
	collagen           = domain.ProductRecommendation{ID: "collagen", Name: "Collagen Peptides", Price: 34.99, Tier: domain.TierBronze, EvidenceLevel: "emerging", Dosage: "10g daily"}
	multivitamin       = domain.ProductRecommendation{ID: "multivitamin", Name: "Foundational Multivitamin", Price: 29.99, Tier: domain.TierSilver, EvidenceLevel: "moderate", Dosage: "1 serving daily with food"}
)

// productBranch holds the severe and moderate product lists of one symptom.
type productBranch struct {
	severe   []domain.ProductRecommendation
	moderate []domain.ProductRecommendation
}

var productBranches = map[domain.SymptomType]productBranch{
	domain.SymptomSleep: {
		severe:   withPriority(magnesiumGlycinate, lTheanine, glycine),
		moderate: withPriority(magnesiumGlycinate, melatonin),
	},
	domain.SymptomCognitive: {
		severe:   withPriority(omega3, lionsMane, citicoline),
		moderate: withPriority(omega3, lionsMane),
	},
	domain.SymptomEnergy: {
		severe:   withPriority(bComplex, coq10, ironBisglycinate),
		moderate: withPriority(bComplex, coq10),
	},
	domain.SymptomStress: {
		severe:   withPriority(ashwagandha, magnesiumGlycinate, rhodiola),
		moderate: withPriority(ashwagandha, lTheanine),
	},
	domain.SymptomHormone: {
		severe:   withPriority(vitaminD3K2, dim, magnesiumGlycinate, vitexBerry),
		moderate: withPriority(vitaminD3K2, magnesiumGlycinate),
	},
	domain.SymptomGut: {
		severe:   withPriority(probiotic, lGlutamine, digestiveEnzymes),
		moderate: withPriority(probiotic, digestiveEnzymes),
	},
	domain.SymptomInflammation: {
		severe:   withPriority(omega3, curcumin, collagen),
		moderate: withPriority(omega3, curcumin),
	},
}

// MatchProductsToAssessment returns products for a symptom assessment score.
// Scores at or above 70 need no recommendation.
func MatchProductsToAssessment(symptomType string, score float64) []domain.ProductRecommendation {
	if score >= healthyScoreThreshold {
		return []domain.ProductRecommendation{}
	}

	var products []domain.ProductRecommendation
	branch, ok := productBranches[ResolveSymptomType(symptomType)]
	switch {
	case !ok:
		products = withPriority(multivitamin)
	case score < severeScoreThreshold:
		products = append(products, branch.severe...)
	default:
		products = append(products, branch.moderate...)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Priority < products[j].Priority
	})
	return products
}

// CalculateBundlePrice sums product prices and applies the fixed bundle discount.
func CalculateBundlePrice(products []domain.ProductRecommendation) domain.BundlePrice {
	subtotal := decimal.Zero
	for _, p := range products {
		subtotal = subtotal.Add(decimal.NewFromFloat(p.Price))
	}

	discount := decimal.NewFromFloat(bundleDiscount)
	savings := subtotal.Mul(discount).Round(2)
	total := subtotal.Sub(savings).Round(2)

	return domain.BundlePrice{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Discount: bundleDiscount,
		Total:    total.InexactFloat64(),
		Savings:  savings.InexactFloat64(),
	}
}

// withPriority copies the products, numbering priorities from 1 in order.
func withPriority(items ...domain.ProductRecommendation) []domain.ProductRecommendation {
	out := make([]domain.ProductRecommendation, len(items))
	for i, p := range items {
		p.Priority = i + 1
		out[i] = p
	}
	return out
}
