package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the tables used by the Postgres store.
// No external migration tool; every statement is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`create table if not exists assessment_records (
			id text primary key,
			user_id text not null,
			kind text not null,
			assessment_id text null,
			score double precision not null,
			category text not null default '',
			payload jsonb not null default '{}'::jsonb,
			created_at timestamptz not null default now()
		);`,
		`create index if not exists assessment_records_user_created_idx on assessment_records(user_id, created_at desc);`,
		`create index if not exists assessment_records_user_kind_created_idx on assessment_records(user_id, kind, created_at desc);`,
		`create table if not exists device_tokens (
			token text primary key,
			user_id text not null,
			platform text not null default '',
			created_at timestamptz not null default now()
		);`,
		`create index if not exists device_tokens_user_idx on device_tokens(user_id);`,
	}

	for i, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
