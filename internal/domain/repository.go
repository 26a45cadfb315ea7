package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// AssessmentRepository stores scored assessment results.
// Implementations: in-memory (dev/tests), SQLite (local) and Postgres (production).
type AssessmentRepository interface {
	SaveRecord(ctx context.Context, rec *AssessmentRecord) error
	GetRecord(ctx context.Context, id string) (*AssessmentRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*AssessmentRecord, error)
	LatestByKind(ctx context.Context, userID string, kind RecordKind) (*AssessmentRecord, error)
	History(ctx context.Context, userID string, kind RecordKind, limit int) ([]*AssessmentRecord, error)
}

// DeviceTokenRepository stores push notification tokens per user.
type DeviceTokenRepository interface {
	RegisterToken(ctx context.Context, tok DeviceToken) error
	UnregisterToken(ctx context.Context, token string) error
	TokensForUser(ctx context.Context, userID string) ([]string, error)
	Count(ctx context.Context) (int, error)
}
