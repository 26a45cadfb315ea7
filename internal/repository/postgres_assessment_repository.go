package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"wellness-backend/internal/domain"
)

// PostgresAssessmentRepository stores assessment records in Postgres
// (Supabase in production). Payloads live in a jsonb column.
type PostgresAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAssessmentRepository(pool *pgxpool.Pool) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{pool: pool}
}

const assessmentColumns = `id, user_id, kind, assessment_id, score, category, payload, created_at`

func (r *PostgresAssessmentRepository) SaveRecord(ctx context.Context, rec *domain.AssessmentRecord) error {
	if rec == nil {
		return errors.New("nil record")
	}

	payload := rec.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	_, err := r.pool.Exec(ctx, `
		insert into assessment_records(
			id, user_id, kind, assessment_id, score, category, payload, created_at
		) values ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rec.ID,
		rec.UserID,
		string(rec.Kind),
		nullableText(rec.AssessmentID),
		rec.Score,
		rec.Category,
		[]byte(payload),
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assessment record: %w", err)
	}
	return nil
}

func (r *PostgresAssessmentRepository) GetRecord(ctx context.Context, id string) (*domain.AssessmentRecord, error) {
	row := r.pool.QueryRow(ctx, `
		select `+assessmentColumns+`
		from assessment_records
		where id = $1
	`, id)

	rec, err := scanAssessmentRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

func (r *PostgresAssessmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.AssessmentRecord, error) {
	rows, err := r.pool.Query(ctx, `
		select `+assessmentColumns+`
		from assessment_records
		where user_id = $1
		order by created_at desc
		limit $2
	`, userID, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (r *PostgresAssessmentRepository) LatestByKind(ctx context.Context, userID string, kind domain.RecordKind) (*domain.AssessmentRecord, error) {
	row := r.pool.QueryRow(ctx, `
		select `+assessmentColumns+`
		from assessment_records
		where user_id = $1 and kind = $2
		order by created_at desc
		limit 1
	`, userID, string(kind))

	rec, err := scanAssessmentRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("latest %s for %s: %w", kind, userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("latest record: %w", err)
	}
	return rec, nil
}

// History returns up to limit records of kind, oldest first.
func (r *PostgresAssessmentRepository) History(ctx context.Context, userID string, kind domain.RecordKind, limit int) ([]*domain.AssessmentRecord, error) {
	rows, err := r.pool.Query(ctx, `
		select * from (
			select `+assessmentColumns+`
			from assessment_records
			where user_id = $1 and kind = $2
			order by created_at desc
			limit $3
		) recent
		order by created_at asc
	`, userID, string(kind), sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("record history: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// Helpers

type scanner interface {
	Scan(dest ...any) error
}

func scanAssessmentRecord(s scanner) (*domain.AssessmentRecord, error) {
	var rec domain.AssessmentRecord
	var kind string
	var assessmentID pgtype.Text
	var payload []byte

	if err := s.Scan(
		&rec.ID,
		&rec.UserID,
		&kind,
		&assessmentID,
		&rec.Score,
		&rec.Category,
		&payload,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}

	rec.Kind = domain.RecordKind(kind)
	if assessmentID.Valid {
		rec.AssessmentID = assessmentID.String
	}
	rec.Payload = json.RawMessage(payload)
	return &rec, nil
}

func collectRecords(rows pgx.Rows) ([]*domain.AssessmentRecord, error) {
	records := make([]*domain.AssessmentRecord, 0)
	for rows.Next() {
		rec, err := scanAssessmentRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullableText(v string) any {
	if v == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{Valid: true, String: v}
}

// sqlLimit maps limit <= 0 ("all") onto a large bound.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return 1 << 30
	}
	return limit
}

// compile-time check
var _ domain.AssessmentRepository = (*PostgresAssessmentRepository)(nil)
