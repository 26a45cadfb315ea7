package domain

// ProtocolItem is one supplement, food or habit in a nutrition protocol.
type ProtocolItem struct {
	Name      string `json:"name"`
	Relevance string `json:"relevance"`
	Dosage    string `json:"dosage,omitempty"`
	Timing    string `json:"timing,omitempty"`
	Category  string `json:"category,omitempty"` // "supplement", "food", "habit"
}

// NutritionProtocol groups protocol items by urgency.
type NutritionProtocol struct {
	Immediate    []ProtocolItem `json:"immediate"`
	Foundation   []ProtocolItem `json:"foundation"`
	Optimization []ProtocolItem `json:"optimization"`
}

// ProductTier classifies evidence strength of a product.
type ProductTier string

const (
	TierGold   ProductTier = "Gold"
	TierSilver ProductTier = "Silver"
	TierBronze ProductTier = "Bronze"
)

// SymptomType is the canonical assessment key used by the product matcher.
type SymptomType string

const (
	SymptomSleep        SymptomType = "sleep"
	SymptomCognitive    SymptomType = "cognitive"
	SymptomEnergy       SymptomType = "energy"
	SymptomStress       SymptomType = "stress"
	SymptomHormone      SymptomType = "hormone"
	SymptomGut          SymptomType = "gut"
	SymptomInflammation SymptomType = "inflammation"
	SymptomUnknown      SymptomType = "unknown"
)

// ProductRecommendation is a product suggested for a symptom band.
type ProductRecommendation struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Price         float64     `json:"price"`
	Tier          ProductTier `json:"tier"`
	EvidenceLevel string      `json:"evidenceLevel"`
	Priority      int         `json:"priority"`
	Dosage        string      `json:"dosage"`
}

// BundlePrice is the discounted price of a product bundle.
type BundlePrice struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"` // fraction, e.g. 0.10
	Total    float64 `json:"total"`
	Savings  float64 `json:"savings"`
}

// ProductMatch is the matcher output for one symptom assessment.
type ProductMatch struct {
	SymptomType SymptomType             `json:"symptomType"`
	Score       float64                 `json:"score"`
	Products    []ProductRecommendation `json:"products"`
	Bundle      BundlePrice             `json:"bundle"`
}
