package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"wellness-backend/internal/domain"
	"wellness-backend/internal/usecase"
)

const (
	defaultListLimit = 50

	// The metabolic age model is normed for adults up to 100.
	minChronologicalAge = 18
	maxChronologicalAge = 100
)

// AssessmentHandler exposes the scoring engine over HTTP.
type AssessmentHandler struct {
	uc  *usecase.AssessmentUsecase
	log *zap.Logger
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase, log *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{uc: uc, log: log}
}

type energyLoopRequest struct {
	UserID string              `json:"userId"`
	Inputs domain.EnergyInputs `json:"inputs"`
}

type metabolicAgeRequest struct {
	UserID string                   `json:"userId"`
	Input  domain.MetabolicAgeInput `json:"input"`
}

type longevityRequest struct {
	UserID string                        `json:"userId"`
	Data   domain.LongevityNutritionData `json:"data"`
}

type productMatchRequest struct {
	UserID      string  `json:"userId"`
	SymptomType string  `json:"symptomType"`
	Score       float64 `json:"score"`
}

type suggestionRequest struct {
	Completed []domain.CompletedAssessment `json:"completed"`
	Available []string                     `json:"available"`
}

// Catalog handles GET /api/assessments
func (h *AssessmentHandler) Catalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"assessments": usecase.AssessmentCatalogIDs(),
	})
}

// EnergyLoop handles POST /api/energy-loop
func (h *AssessmentHandler) EnergyLoop(w http.ResponseWriter, r *http.Request) {
	var req energyLoopRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateEnergyInputs(req.Inputs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.uc.ScoreEnergyLoop(r.Context(), req.UserID, req.Inputs)
	if err != nil {
		h.log.Error("score energy loop", zap.String("user_id", req.UserID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// MetabolicAge handles POST /api/metabolic-age
func (h *AssessmentHandler) MetabolicAge(w http.ResponseWriter, r *http.Request) {
	var req metabolicAgeRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Input.ChronologicalAge < minChronologicalAge || req.Input.ChronologicalAge > maxChronologicalAge {
		http.Error(w, fmt.Sprintf("chronologicalAge must be between %d and %d", minChronologicalAge, maxChronologicalAge), http.StatusBadRequest)
		return
	}

	result, err := h.uc.ScoreMetabolicAge(r.Context(), req.UserID, req.Input)
	if err != nil {
		h.log.Error("score metabolic age", zap.String("user_id", req.UserID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// LongevityNutrition handles POST /api/longevity-nutrition
func (h *AssessmentHandler) LongevityNutrition(w http.ResponseWriter, r *http.Request) {
	var req longevityRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateLongevity(req.Data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.uc.ScoreLongevityNutrition(r.Context(), req.UserID, req.Data)
	if err != nil {
		h.log.Error("score longevity nutrition", zap.String("user_id", req.UserID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// MatchProducts handles POST /api/products/match
func (h *AssessmentHandler) MatchProducts(w http.ResponseWriter, r *http.Request) {
	var req productMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.SymptomType) == "" {
		http.Error(w, "symptomType is required", http.StatusBadRequest)
		return
	}

	match, err := h.uc.MatchProducts(r.Context(), req.UserID, req.SymptomType, req.Score)
	if err != nil {
		h.log.Error("match products", zap.String("user_id", req.UserID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

// BundlePrice handles POST /api/products/bundle
func (h *AssessmentHandler) BundlePrice(w http.ResponseWriter, r *http.Request) {
	var products []domain.ProductRecommendation
	if err := decodeJSON(r, &products); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, usecase.CalculateBundlePrice(products))
}

// Suggestions handles POST /api/suggestions
func (h *AssessmentHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, usecase.GetSuggestedAdditionalAssessments(req.Completed, req.Available))
}

// ListAssessments handles GET /api/users/{userId}/assessments?limit=
func (h *AssessmentHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.uc.ListRecords(r.Context(), userID, limit)
	if err != nil {
		h.log.Error("list assessments", zap.String("user_id", userID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Dashboard handles GET /api/users/{userId}/dashboard
func (h *AssessmentHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	dash, err := h.uc.Dashboard(r.Context(), userID)
	if err != nil {
		h.log.Error("build dashboard", zap.String("user_id", userID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func validateLongevity(d domain.LongevityNutritionData) error {
	fields := []struct {
		name  string
		value int
		max   int
	}{
		{"protein_score", d.ProteinScore, 4},
		{"fiber_score", d.FiberScore, 4},
		{"plant_diversity_score", d.PlantDiversityScore, 4},
		{"gut_symptom_score", d.GutSymptomScore, 5},
		{"inflammation_score", d.InflammationScore, 6},
		{"craving_pattern", d.CravingPattern, 5},
		{"hydration_score", d.HydrationScore, 5},
	}
	for _, f := range fields {
		if f.value < 0 || f.value > f.max {
			return fmt.Errorf("%s must be between 0 and %d", f.name, f.max)
		}
	}
	return nil
}

func validateEnergyInputs(in domain.EnergyInputs) error {
	nonNegative := []struct {
		name  string
		value *float64
	}{
		{"sleepHours", in.SleepHours},
		{"deepSleepHours", in.DeepSleepHours},
		{"hrv", in.HRV},
		{"restingHeartRate", in.RestingHeartRate},
		{"activeMinutes", in.ActiveMinutes},
		{"steps", in.Steps},
	}
	for _, f := range nonNegative {
		if f.value != nil && *f.value < 0 {
			return fmt.Errorf("%s must not be negative", f.name)
		}
	}

	bounded := []struct {
		name     string
		value    *float64
		min, max float64
	}{
		{"remPercentage", in.RemPercentage, 0, 100},
		{"energyRating", in.EnergyRating, 1, 10},
		{"sleepQuality", in.SleepQuality, 1, 10},
		{"stressLevel", in.StressLevel, 1, 10},
		{"mealQuality", in.MealQuality, 1, 10},
		{"nutritionScore", in.NutritionScore, 0, 100},
	}
	for _, f := range bounded {
		if f.value != nil && (*f.value < f.min || *f.value > f.max) {
			return fmt.Errorf("%s must be between %g and %g", f.name, f.min, f.max)
		}
	}
	return nil
}
