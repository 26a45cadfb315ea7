package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wellness-backend/internal/domain"
	"wellness-backend/internal/infrastructure/indicators"
)

const (
	trendHistoryLimit   = 10
	dashboardRecordScan = 100

	poorEnergyComposite = 50
	poorLongevityScore  = 60
)

// Notifier delivers push notifications. *fcm.Client satisfies it.
type Notifier interface {
	IsEnabled() bool
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}

// AssessmentUsecase scores submitted assessments, stores the results and
// pushes a notification when a result lands in a poor band.
type AssessmentUsecase struct {
	repo         domain.AssessmentRepository
	tokenRepo    domain.DeviceTokenRepository
	notifier     Notifier
	cooldown     time.Duration
	log          *zap.Logger
	now          func() time.Time
	lastNotified map[string]time.Time // userID -> last push
	mu           sync.Mutex
}

func NewAssessmentUsecase(repo domain.AssessmentRepository, tokenRepo domain.DeviceTokenRepository, notifier Notifier, cooldown time.Duration, log *zap.Logger) *AssessmentUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssessmentUsecase{
		repo:         repo,
		tokenRepo:    tokenRepo,
		notifier:     notifier,
		cooldown:     cooldown,
		log:          log,
		now:          time.Now,
		lastNotified: make(map[string]time.Time),
	}
}

// ScoreEnergyLoop computes the energy loop. A non-empty userID also stores
// the result.
func (uc *AssessmentUsecase) ScoreEnergyLoop(ctx context.Context, userID string, in domain.EnergyInputs) (domain.EnergyLoopScore, error) {
	result := CalculateEnergyLoop(in)
	if userID == "" {
		return result, nil
	}

	rec, err := uc.store(ctx, userID, domain.KindEnergyLoop, domain.AssessmentEnergy, result.Composite, recordBand(result.Composite), result)
	if err != nil {
		return result, err
	}

	if result.Composite < poorEnergyComposite {
		uc.notify(ctx, rec,
			"Your energy loop needs attention",
			fmt.Sprintf("Energy score %.0f. Open the app to see which segment is holding you back.", result.Composite))
	}
	return result, nil
}

// ScoreMetabolicAge computes the metabolic age. A non-empty userID also stores
// the result.
func (uc *AssessmentUsecase) ScoreMetabolicAge(ctx context.Context, userID string, in domain.MetabolicAgeInput) (domain.MetabolicAgeResult, error) {
	result := CalculateMetabolicAge(in)
	if userID == "" {
		return result, nil
	}

	// Stored scores read higher-is-better; severity reads the other way.
	rec, err := uc.store(ctx, userID, domain.KindMetabolicAge, domain.AssessmentBodyComposition,
		float64(maxSeverity-result.SeverityScore), healthLevelBand(result.HealthLevel), result)
	if err != nil {
		return result, err
	}

	if result.HealthLevel == domain.HealthNeedsAttention || result.HealthLevel == domain.HealthCritical {
		uc.notify(ctx, rec,
			"Metabolic age update",
			fmt.Sprintf("Your metabolic age is %d, %+d years from your actual age.", result.MetabolicAge, result.AgeOffset))
	}
	return result, nil
}

// ScoreLongevityNutrition scores the nutrition quiz and derives pillars and
// protocol. A non-empty userID also stores the result.
func (uc *AssessmentUsecase) ScoreLongevityNutrition(ctx context.Context, userID string, d domain.LongevityNutritionData) (domain.LongevityReport, error) {
	report := BuildLongevityReport(d)
	score := report.Result.Score
	if userID == "" {
		return report, nil
	}

	rec, err := uc.store(ctx, userID, domain.KindLongevityNutrition, "", score, recordBand(score), report)
	if err != nil {
		return report, err
	}

	if score < poorLongevityScore {
		uc.notify(ctx, rec,
			"Your nutrition protocol is ready",
			fmt.Sprintf("Longevity nutrition score %.1f (%s). Start with the immediate steps.", score, report.Result.Category))
	}
	return report, nil
}

// MatchProducts runs the product matcher and prices the bundle. A non-empty
// userID also stores the symptom score so it feeds suggestions.
func (uc *AssessmentUsecase) MatchProducts(ctx context.Context, userID, symptomType string, score float64) (domain.ProductMatch, error) {
	products := MatchProductsToAssessment(symptomType, score)
	match := domain.ProductMatch{
		SymptomType: ResolveSymptomType(symptomType),
		Score:       score,
		Products:    products,
		Bundle:      CalculateBundlePrice(products),
	}
	if userID == "" {
		return match, nil
	}

	assessmentID := ""
	if _, ok := assessmentCatalog[string(match.SymptomType)]; ok {
		assessmentID = string(match.SymptomType)
	}
	if _, err := uc.store(ctx, userID, domain.KindSymptom, assessmentID, score, recordBand(score), match); err != nil {
		return match, err
	}
	return match, nil
}

// ListRecords returns the user's records, newest first.
func (uc *AssessmentUsecase) ListRecords(ctx context.Context, userID string, limit int) ([]*domain.AssessmentRecord, error) {
	return uc.repo.ListByUser(ctx, userID, limit)
}

// LatestRecords returns the newest record of each kind the user has.
func (uc *AssessmentUsecase) LatestRecords(ctx context.Context, userID string) ([]*domain.AssessmentRecord, error) {
	kinds := []domain.RecordKind{
		domain.KindEnergyLoop,
		domain.KindMetabolicAge,
		domain.KindLongevityNutrition,
		domain.KindSymptom,
	}

	out := make([]*domain.AssessmentRecord, 0, len(kinds))
	for _, kind := range kinds {
		rec, err := uc.latest(ctx, userID, kind)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Dashboard aggregates the user's latest scores, energy trend and the next
// assessments worth taking.
func (uc *AssessmentUsecase) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	dash := &domain.Dashboard{UserID: userID}

	var err error
	if dash.LatestEnergy, err = uc.latest(ctx, userID, domain.KindEnergyLoop); err != nil {
		return nil, err
	}
	if dash.LatestMetabolic, err = uc.latest(ctx, userID, domain.KindMetabolicAge); err != nil {
		return nil, err
	}
	if dash.LatestLongevity, err = uc.latest(ctx, userID, domain.KindLongevityNutrition); err != nil {
		return nil, err
	}

	history, err := uc.repo.History(ctx, userID, domain.KindEnergyLoop, trendHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("energy history: %w", err)
	}
	points := make([]float64, len(history))
	for i, rec := range history {
		points[i] = rec.Score
	}
	dash.EnergyTrend = indicators.CalculateTrend(points)

	records, err := uc.repo.ListByUser(ctx, userID, dashboardRecordScan)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	dash.Suggestions = GetSuggestedAdditionalAssessments(completedFromRecords(records), nil)

	return dash, nil
}

func (uc *AssessmentUsecase) latest(ctx context.Context, userID string, kind domain.RecordKind) (*domain.AssessmentRecord, error) {
	rec, err := uc.repo.LatestByKind(ctx, userID, kind)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest %s: %w", kind, err)
	}
	return rec, nil
}

func (uc *AssessmentUsecase) store(ctx context.Context, userID string, kind domain.RecordKind, assessmentID string, score float64, category string, result any) (*domain.AssessmentRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", kind, err)
	}

	rec := &domain.AssessmentRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		Kind:         kind,
		AssessmentID: assessmentID,
		Score:        score,
		Category:     category,
		Payload:      payload,
		CreatedAt:    uc.now().UTC(),
	}
	if err := uc.repo.SaveRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("save %s: %w", kind, err)
	}

	uc.log.Debug("assessment stored",
		zap.String("user_id", userID),
		zap.String("kind", string(kind)),
		zap.Float64("score", score),
		zap.String("category", category),
	)
	return rec, nil
}

// notify pushes to the user's devices at most once per cooldown. The slot is
// reserved before sending and released again if the send fails. Failures
// are logged only.
func (uc *AssessmentUsecase) notify(ctx context.Context, rec *domain.AssessmentRecord, title, body string) {
	if uc.notifier == nil || !uc.notifier.IsEnabled() || uc.tokenRepo == nil {
		return
	}

	tokens, err := uc.tokenRepo.TokensForUser(ctx, rec.UserID)
	if err != nil {
		uc.log.Warn("load device tokens", zap.String("user_id", rec.UserID), zap.Error(err))
		return
	}
	if len(tokens) == 0 {
		return
	}

	now := uc.now()
	prev, reserved := uc.reserveSlot(rec.UserID, now)
	if !reserved {
		return
	}

	data := map[string]string{
		"recordId": rec.ID,
		"kind":     string(rec.Kind),
		"score":    fmt.Sprintf("%.2f", rec.Score),
		"category": rec.Category,
	}
	if err := uc.notifier.SendMulticast(ctx, tokens, title, body, data); err != nil {
		uc.log.Error("send notification", zap.String("user_id", rec.UserID), zap.Error(err))
		uc.releaseSlot(rec.UserID, now, prev)
	}
}

// reserveSlot claims the user's notification slot unless it is still cooling
// down. It returns the previous timestamp for releaseSlot.
func (uc *AssessmentUsecase) reserveSlot(userID string, now time.Time) (time.Time, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	last, exists := uc.lastNotified[userID]
	if exists && now.Sub(last) < uc.cooldown {
		return time.Time{}, false
	}
	uc.lastNotified[userID] = now

	for user, ts := range uc.lastNotified {
		if now.Sub(ts) > uc.cooldown*2 {
			delete(uc.lastNotified, user)
		}
	}
	return last, true
}

// releaseSlot undoes reserveSlot if no later reservation replaced it.
func (uc *AssessmentUsecase) releaseSlot(userID string, reservedAt, prev time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if ts, ok := uc.lastNotified[userID]; !ok || !ts.Equal(reservedAt) {
		return
	}
	if prev.IsZero() {
		delete(uc.lastNotified, userID)
		return
	}
	uc.lastNotified[userID] = prev
}

// completedFromRecords keeps the newest record per assessment id.
func completedFromRecords(records []*domain.AssessmentRecord) []domain.CompletedAssessment {
	seen := make(map[string]bool)
	out := make([]domain.CompletedAssessment, 0)
	for _, rec := range records {
		if rec.AssessmentID == "" || seen[rec.AssessmentID] {
			continue
		}
		seen[rec.AssessmentID] = true
		out = append(out, domain.CompletedAssessment{
			AssessmentID:  rec.AssessmentID,
			Score:         rec.Score,
			ScoreCategory: rec.Category,
		})
	}
	return out
}

// recordBand maps a 0-100 score onto the suggestion engine's categories,
// using the same 70/50 cut-offs as the product matcher.
func recordBand(score float64) string {
	switch {
	case score >= 85:
		return "excellent"
	case score >= healthyScoreThreshold:
		return "good"
	case score >= severeScoreThreshold:
		return "fair"
	default:
		return "poor"
	}
}

func healthLevelBand(level domain.HealthLevel) string {
	switch level {
	case domain.HealthOptimal, domain.HealthExcellent:
		return "excellent"
	case domain.HealthGood:
		return "good"
	case domain.HealthFair:
		return "fair"
	default:
		return "poor"
	}
}
