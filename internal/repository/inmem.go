package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"wellness-backend/internal/domain"
)

// InMemoryAssessmentRepository keeps assessment records in memory.
// Used for local development and tests.
type InMemoryAssessmentRepository struct {
	records map[string]*domain.AssessmentRecord
	byUser  map[string][]*domain.AssessmentRecord // newest last
	mu      sync.RWMutex
}

func NewInMemoryAssessmentRepository() *InMemoryAssessmentRepository {
	return &InMemoryAssessmentRepository{
		records: make(map[string]*domain.AssessmentRecord),
		byUser:  make(map[string][]*domain.AssessmentRecord),
	}
}

func (r *InMemoryAssessmentRepository) SaveRecord(_ context.Context, rec *domain.AssessmentRecord) error {
	if rec == nil {
		return errors.New("nil record")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[rec.ID]; exists {
		return fmt.Errorf("record with ID %s already exists", rec.ID)
	}

	cp := *rec
	r.records[cp.ID] = &cp
	r.byUser[cp.UserID] = append(r.byUser[cp.UserID], &cp)
	sort.SliceStable(r.byUser[cp.UserID], func(i, j int) bool {
		return r.byUser[cp.UserID][i].CreatedAt.Before(r.byUser[cp.UserID][j].CreatedAt)
	})
	return nil
}

func (r *InMemoryAssessmentRepository) GetRecord(_ context.Context, id string) (*domain.AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	cp := *rec
	return &cp, nil
}

// ListByUser returns the user's records newest first.
func (r *InMemoryAssessmentRepository) ListByUser(_ context.Context, userID string, limit int) ([]*domain.AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return newestFirst(r.byUser[userID], func(*domain.AssessmentRecord) bool { return true }, limit), nil
}

func (r *InMemoryAssessmentRepository) LatestByKind(_ context.Context, userID string, kind domain.RecordKind) (*domain.AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := newestFirst(r.byUser[userID], func(rec *domain.AssessmentRecord) bool { return rec.Kind == kind }, 1)
	if len(recs) == 0 {
		return nil, fmt.Errorf("latest %s for %s: %w", kind, userID, domain.ErrNotFound)
	}
	return recs[0], nil
}

// History returns up to limit records of kind, oldest first.
func (r *InMemoryAssessmentRepository) History(_ context.Context, userID string, kind domain.RecordKind, limit int) ([]*domain.AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := newestFirst(r.byUser[userID], func(rec *domain.AssessmentRecord) bool { return rec.Kind == kind }, limit)
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
	return recs, nil
}

// newestFirst copies matching records from an oldest-first slice, newest
// first, up to limit (limit <= 0 means all).
func newestFirst(src []*domain.AssessmentRecord, match func(*domain.AssessmentRecord) bool, limit int) []*domain.AssessmentRecord {
	out := make([]*domain.AssessmentRecord, 0)
	for i := len(src) - 1; i >= 0; i-- {
		if !match(src[i]) {
			continue
		}
		cp := *src[i]
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// compile-time check
var _ domain.AssessmentRepository = (*InMemoryAssessmentRepository)(nil)
