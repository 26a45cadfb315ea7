package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-backend/internal/domain"
)

func runCLI(t *testing.T, args ...string) []byte {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.Bytes()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLongevityCommandYAML(t *testing.T) {
	path := writeFile(t, "quiz.yaml", `
protein_score: 4
fiber_score: 4
plant_diversity_score: 4
gut_symptom_score: 0
inflammation_score: 1
craving_pattern: 0
hydration_score: 5
`)

	var got domain.LongevityReport
	require.NoError(t, json.Unmarshal(runCLI(t, "longevity", "--file", path), &got))
	assert.Equal(t, 91.4, got.Result.Score)
	assert.Equal(t, "A", got.Result.Grade)
}

func TestEnergyCommandJSON(t *testing.T) {
	path := writeFile(t, "energy.json", `{"sleepHours": 8, "remPercentage": 25, "deepSleepHours": 1.5}`)

	var got domain.EnergyLoopScore
	require.NoError(t, json.Unmarshal(runCLI(t, "energy", "-f", path), &got))
	assert.Equal(t, 100.0, got.Segments.SleepRecovery.Score)
	assert.Equal(t, 20.0, got.LoopCompletion)
}

func TestProductsCommand(t *testing.T) {
	path := writeFile(t, "products.yaml", "symptomType: sleep\nscore: 45\n")

	var got domain.ProductMatch
	require.NoError(t, json.Unmarshal(runCLI(t, "products", "-f", path), &got))
	require.Len(t, got.Products, 3)
	assert.Equal(t, 74.97, got.Bundle.Subtotal)
}

func TestSuggestCommand(t *testing.T) {
	path := writeFile(t, "done.yaml", `
completed:
  - assessmentId: energy
    score: 30
    scoreCategory: poor
`)

	var got []domain.AssessmentSuggestion
	require.NoError(t, json.Unmarshal(runCLI(t, "suggest", "-f", path), &got))
	assert.Len(t, got, 3)
}
