package usecase

import (
	"sort"

	"wellness-backend/internal/domain"
)

const maxSuggestions = 6

// assessmentInfo describes a questionnaire in the catalogue.
type assessmentInfo struct {
	name     string
	pillar   domain.Pillar
	insights []string
}

var assessmentCatalog = map[string]assessmentInfo{
	domain.AssessmentEnergy: {
		name:     "Energy & Vitality Assessment",
		pillar:   domain.PillarBody,
		insights: []string{"Daily energy pattern", "Mitochondrial support needs", "Afternoon crash triggers"},
	},
	domain.AssessmentCognitive: {
		name:     "Cognitive Performance Assessment",
		pillar:   domain.PillarBrain,
		insights: []string{"Focus and memory baseline", "Brain fog drivers", "Nootropic fit"},
	},
	domain.AssessmentSleep: {
		name:     "Sleep Quality Assessment",
		pillar:   domain.PillarBalance,
		insights: []string{"Sleep architecture gaps", "Circadian alignment", "Wind-down routine fit"},
	},
	domain.AssessmentHormone: {
		name:     "Hormonal Balance Assessment",
		pillar:   domain.PillarBalance,
		insights: []string{"Cycle or menopause stage effects", "Cortisol rhythm", "Hormone-supporting nutrients"},
	},
	domain.AssessmentStress: {
		name:     "Stress & Resilience Assessment",
		pillar:   domain.PillarBrain,
		insights: []string{"Stress load profile", "Recovery capacity", "Adaptogen fit"},
	},
	domain.AssessmentBodyComposition: {
		name:     "Body Composition Assessment",
		pillar:   domain.PillarBody,
		insights: []string{"Muscle mass adequacy", "Metabolic flexibility", "Protein targets"},
	},
	domain.AssessmentPhysicalPerformance: {
		name:     "Physical Performance Assessment",
		pillar:   domain.PillarBody,
		insights: []string{"Strength and endurance baseline", "Recovery between sessions", "Training load tolerance"},
	},
}

// suggestionTarget is one assessment a rule may suggest.
type suggestionTarget struct {
	id       string
	priority domain.Priority
	reason   string
}

// suggestionRule fires when any poor/fair completed assessment matches Trigger.
type suggestionRule struct {
	Name    string
	Trigger string
	Targets []suggestionTarget
}

var suggestionRules = []suggestionRule{
	{
		Name:    "energy_issues",
		Trigger: domain.AssessmentEnergy,
		Targets: []suggestionTarget{
			{domain.AssessmentHormone, domain.PriorityHigh, "Low energy is often driven by hormonal shifts."},
			{domain.AssessmentSleep, domain.PriorityHigh, "Poor sleep is the most common cause of low daytime energy."},
			{domain.AssessmentBodyComposition, domain.PriorityMedium, "Muscle mass and metabolic health shape energy levels."},
		},
	},
	{
		Name:    "cognitive_issues",
		Trigger: domain.AssessmentCognitive,
		Targets: []suggestionTarget{
			{domain.AssessmentSleep, domain.PriorityHigh, "Brain fog and poor focus frequently trace back to sleep."},
			{domain.AssessmentHormone, domain.PriorityMedium, "Hormonal changes can affect memory and clarity."},
			{domain.AssessmentStress, domain.PriorityMedium, "Chronic stress impairs focus and working memory."},
		},
	},
	{
		Name:    "sleep_issues",
		Trigger: domain.AssessmentSleep,
		Targets: []suggestionTarget{
			{domain.AssessmentStress, domain.PriorityHigh, "An elevated stress response keeps the nervous system alert at night."},
			{domain.AssessmentHormone, domain.PriorityMedium, "Hormone fluctuations commonly disrupt sleep."},
		},
	},
	{
		Name:    "hormonal_symptoms",
		Trigger: domain.AssessmentHormone,
		Targets: []suggestionTarget{
			{domain.AssessmentEnergy, domain.PriorityMedium, "Hormonal imbalance often shows up as fatigue."},
			{domain.AssessmentCognitive, domain.PriorityLow, "Hormonal shifts can affect cognitive performance."},
		},
	},
	{
		Name:    "physical_performance",
		Trigger: domain.AssessmentPhysicalPerformance,
		Targets: []suggestionTarget{
			{domain.AssessmentBodyComposition, domain.PriorityHigh, "Performance depends on muscle mass and body composition."},
			{domain.AssessmentEnergy, domain.PriorityMedium, "Low energy limits training capacity and recovery."},
		},
	},
	{
		Name:    "stress_anxiety",
		Trigger: domain.AssessmentStress,
		Targets: []suggestionTarget{
			{domain.AssessmentSleep, domain.PriorityHigh, "Stress and sleep reinforce each other."},
			{domain.AssessmentCognitive, domain.PriorityMedium, "Sustained stress affects concentration and memory."},
		},
	},
}

// GetSuggestedAdditionalAssessments proposes up to six assessments to take
// next, based on poorly scoring completed ones. A nil available list means
// every catalogue assessment is offered.
func GetSuggestedAdditionalAssessments(completed []domain.CompletedAssessment, available []string) []domain.AssessmentSuggestion {
	completedIDs := make(map[string]bool, len(completed))
	struggling := make(map[string]bool)
	for _, c := range completed {
		completedIDs[c.AssessmentID] = true
		if c.ScoreCategory == "poor" || c.ScoreCategory == "fair" {
			struggling[c.AssessmentID] = true
		}
	}

	var availableIDs map[string]bool
	if available != nil {
		availableIDs = make(map[string]bool, len(available))
		for _, id := range available {
			availableIDs[id] = true
		}
	}

	var candidates []domain.AssessmentSuggestion
	for _, rule := range suggestionRules {
		if !struggling[rule.Trigger] {
			continue
		}
		for _, t := range rule.Targets {
			if completedIDs[t.id] {
				continue
			}
			if availableIDs != nil && !availableIDs[t.id] {
				continue
			}
			candidates = append(candidates, newSuggestion(t))
		}
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]domain.AssessmentSuggestion, 0, len(candidates))
	for _, s := range candidates {
		if seen[s.AssessmentID] || completedIDs[s.AssessmentID] {
			continue
		}
		seen[s.AssessmentID] = true
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func newSuggestion(t suggestionTarget) domain.AssessmentSuggestion {
	info, ok := assessmentCatalog[t.id]
	if !ok {
		info = assessmentInfo{name: t.id, pillar: domain.PillarBody}
	}
	insights := make([]string, len(info.insights))
	copy(insights, info.insights)

	return domain.AssessmentSuggestion{
		AssessmentID:     t.id,
		AssessmentName:   info.name,
		Pillar:           info.pillar,
		Priority:         t.priority,
		Reason:           t.reason,
		ExpectedInsights: insights,
	}
}

// AssessmentCatalogIDs lists every assessment id the engine knows, sorted.
func AssessmentCatalogIDs() []string {
	ids := make([]string, 0, len(assessmentCatalog))
	for id := range assessmentCatalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
