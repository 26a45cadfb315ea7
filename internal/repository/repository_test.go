package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-backend/internal/config"
	"wellness-backend/internal/domain"
	"wellness-backend/internal/infrastructure/db"
)

func newRecord(userID string, kind domain.RecordKind, score float64, at time.Time) *domain.AssessmentRecord {
	return &domain.AssessmentRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		Score:     score,
		Category:  "good",
		Payload:   json.RawMessage(`{"score":1}`),
		CreatedAt: at,
	}
}

// exerciseAssessmentRepository runs the shared behaviour checks against any
// AssessmentRepository implementation.
func exerciseAssessmentRepository(t *testing.T, repo domain.AssessmentRepository) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	first := newRecord("user-1", domain.KindEnergyLoop, 55, base)
	second := newRecord("user-1", domain.KindEnergyLoop, 62, base.Add(24*time.Hour))
	third := newRecord("user-1", domain.KindEnergyLoop, 70, base.Add(48*time.Hour))
	metabolic := newRecord("user-1", domain.KindMetabolicAge, 41, base.Add(36*time.Hour))
	metabolic.AssessmentID = domain.AssessmentEnergy
	other := newRecord("user-2", domain.KindEnergyLoop, 90, base)

	for _, rec := range []*domain.AssessmentRecord{second, first, third, metabolic, other} {
		require.NoError(t, repo.SaveRecord(ctx, rec))
	}

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetRecord(ctx, metabolic.ID)
		require.NoError(t, err)
		assert.Equal(t, metabolic.UserID, got.UserID)
		assert.Equal(t, domain.KindMetabolicAge, got.Kind)
		assert.Equal(t, domain.AssessmentEnergy, got.AssessmentID)
		assert.JSONEq(t, string(metabolic.Payload), string(got.Payload))
		assert.True(t, metabolic.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetRecord(ctx, "does-not-exist")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list newest first with limit", func(t *testing.T) {
		got, err := repo.ListByUser(ctx, "user-1", 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, third.ID, got[0].ID)
		assert.Equal(t, metabolic.ID, got[1].ID)
	})

	t.Run("latest by kind", func(t *testing.T) {
		got, err := repo.LatestByKind(ctx, "user-1", domain.KindEnergyLoop)
		require.NoError(t, err)
		assert.Equal(t, third.ID, got.ID)

		_, err = repo.LatestByKind(ctx, "user-2", domain.KindLongevityNutrition)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("history oldest first", func(t *testing.T) {
		got, err := repo.History(ctx, "user-1", domain.KindEnergyLoop, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second.ID, got[0].ID)
		assert.Equal(t, third.ID, got[1].ID)

		all, err := repo.History(ctx, "user-1", domain.KindEnergyLoop, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestInMemoryAssessmentRepository(t *testing.T) {
	repo := NewInMemoryAssessmentRepository()
	exerciseAssessmentRepository(t, repo)

	t.Run("duplicate id rejected", func(t *testing.T) {
		rec := newRecord("user-3", domain.KindSymptom, 40, time.Now())
		require.NoError(t, repo.SaveRecord(context.Background(), rec))
		assert.Error(t, repo.SaveRecord(context.Background(), rec))
	})
}

func TestSQLiteAssessmentRepository(t *testing.T) {
	repo, err := NewSQLiteAssessmentRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	exerciseAssessmentRepository(t, repo)
}

func TestPostgresAssessmentRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store := config.Default().Store
	store.DatabaseURL = dsn
	pool, err := db.NewPool(ctx, store)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `delete from assessment_records where user_id in ('user-1','user-2')`)
	require.NoError(t, err)

	exerciseAssessmentRepository(t, NewPostgresAssessmentRepository(pool))
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository()

	require.NoError(t, repo.RegisterToken(ctx, domain.DeviceToken{UserID: "u1", Token: "tok-b", Platform: "ios"}))
	require.NoError(t, repo.RegisterToken(ctx, domain.DeviceToken{UserID: "u1", Token: "tok-a", Platform: "android"}))
	require.NoError(t, repo.RegisterToken(ctx, domain.DeviceToken{UserID: "u2", Token: "tok-c", Platform: "android"}))

	tokens, err := repo.TokensForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-a", "tok-b"}, tokens)

	// Re-registering moves the token to the new user.
	require.NoError(t, repo.RegisterToken(ctx, domain.DeviceToken{UserID: "u2", Token: "tok-a", Platform: "android"}))
	tokens, err = repo.TokensForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-b"}, tokens)

	require.NoError(t, repo.UnregisterToken(ctx, "tok-c"))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
