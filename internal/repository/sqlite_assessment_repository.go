package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"wellness-backend/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS assessment_records (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	kind          TEXT NOT NULL,
	assessment_id TEXT,
	score         REAL NOT NULL,
	category      TEXT NOT NULL,
	payload       TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS assessment_records_user_kind_idx
	ON assessment_records(user_id, kind, created_at);
`

// Fixed-width so created_at sorts lexically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteAssessmentRepository stores assessment records in a local SQLite file.
type SQLiteAssessmentRepository struct {
	db *sql.DB
}

// NewSQLiteAssessmentRepository opens (or creates) the database and runs migrations.
func NewSQLiteAssessmentRepository(dbPath string) (*SQLiteAssessmentRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteAssessmentRepository{db: db}, nil
}

// Close closes the underlying database connection.
func (r *SQLiteAssessmentRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteAssessmentRepository) SaveRecord(ctx context.Context, rec *domain.AssessmentRecord) error {
	if rec == nil {
		return errors.New("nil record")
	}

	payload := string(rec.Payload)
	if payload == "" {
		payload = "{}"
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assessment_records (id, user_id, kind, assessment_id, score, category, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, string(rec.Kind), nullIfEmpty(rec.AssessmentID),
		rec.Score, rec.Category, payload, rec.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert assessment record: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepository) GetRecord(ctx context.Context, id string) (*domain.AssessmentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, kind, assessment_id, score, category, payload, created_at
		 FROM assessment_records WHERE id = ?`, id)

	rec, err := scanSQLiteRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	return rec, err
}

func (r *SQLiteAssessmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.AssessmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, kind, assessment_id, score, category, payload, created_at
		 FROM assessment_records WHERE user_id = ?
		 ORDER BY created_at DESC LIMIT ?`, userID, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return collectSQLiteRecords(rows)
}

func (r *SQLiteAssessmentRepository) LatestByKind(ctx context.Context, userID string, kind domain.RecordKind) (*domain.AssessmentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, kind, assessment_id, score, category, payload, created_at
		 FROM assessment_records WHERE user_id = ? AND kind = ?
		 ORDER BY created_at DESC LIMIT 1`, userID, string(kind))

	rec, err := scanSQLiteRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("latest %s for %s: %w", kind, userID, domain.ErrNotFound)
	}
	return rec, err
}

// History returns up to limit records of kind, oldest first.
func (r *SQLiteAssessmentRepository) History(ctx context.Context, userID string, kind domain.RecordKind, limit int) ([]*domain.AssessmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT * FROM (
			SELECT id, user_id, kind, assessment_id, score, category, payload, created_at
			FROM assessment_records WHERE user_id = ? AND kind = ?
			ORDER BY created_at DESC LIMIT ?
		 ) ORDER BY created_at ASC`, userID, string(kind), sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("record history: %w", err)
	}
	defer rows.Close()

	return collectSQLiteRecords(rows)
}

func scanSQLiteRecord(s scanner) (*domain.AssessmentRecord, error) {
	var rec domain.AssessmentRecord
	var kind, payload, createdAt string
	var assessmentID sql.NullString

	if err := s.Scan(&rec.ID, &rec.UserID, &kind, &assessmentID, &rec.Score, &rec.Category, &payload, &createdAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(sqliteTimeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	rec.Kind = domain.RecordKind(kind)
	rec.AssessmentID = assessmentID.String
	rec.Payload = json.RawMessage(payload)
	rec.CreatedAt = t
	return &rec, nil
}

func collectSQLiteRecords(rows *sql.Rows) ([]*domain.AssessmentRecord, error) {
	records := make([]*domain.AssessmentRecord, 0)
	for rows.Next() {
		rec, err := scanSQLiteRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

var _ domain.AssessmentRepository = (*SQLiteAssessmentRepository)(nil)
