package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"wellness-backend/internal/domain"
)

// PostgresTokenRepository stores device tokens in Postgres.
type PostgresTokenRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTokenRepository(pool *pgxpool.Pool) *PostgresTokenRepository {
	return &PostgresTokenRepository{pool: pool}
}

func (r *PostgresTokenRepository) RegisterToken(ctx context.Context, tok domain.DeviceToken) error {
	createdAt := tok.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, `
		insert into device_tokens(token, user_id, platform, created_at)
		values ($1,$2,$3,$4)
		on conflict (token) do update set
			user_id = excluded.user_id,
			platform = excluded.platform
	`, tok.Token, tok.UserID, tok.Platform, createdAt)
	if err != nil {
		return fmt.Errorf("register token: %w", err)
	}
	return nil
}

func (r *PostgresTokenRepository) UnregisterToken(ctx context.Context, token string) error {
	if _, err := r.pool.Exec(ctx, `delete from device_tokens where token=$1`, token); err != nil {
		return fmt.Errorf("unregister token: %w", err)
	}
	return nil
}

func (r *PostgresTokenRepository) TokensForUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		select token from device_tokens where user_id=$1 order by token
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("tokens for user: %w", err)
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *PostgresTokenRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `select count(*) from device_tokens`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tokens: %w", err)
	}
	return n, nil
}

var _ domain.DeviceTokenRepository = (*PostgresTokenRepository)(nil)
