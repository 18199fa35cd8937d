package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var statements = []string{
	`create table if not exists portfolio_data (
	id bigserial primary key,
	data jsonb not null,
	updated_at timestamptz not null default now()
)`,
	`create index if not exists portfolio_data_updated_at_idx
	on portfolio_data (updated_at desc, id desc)`,
	`create table if not exists messages (
	id uuid primary key,
	name text not null,
	email text not null,
	message text not null,
	read boolean not null default false,
	created_at timestamptz not null default now()
)`,
	`create table if not exists gallery (
	id uuid primary key,
	title text not null,
	description text not null default '',
	image_data text not null,
	image_type text not null,
	created_at timestamptz not null default now()
)`,
	`create table if not exists projects (
	id uuid primary key,
	title text not null,
	description text not null default '',
	repo_url text not null default '',
	demo_url text not null default '',
	tech_stack text[] not null default '{}',
	image_data text not null default '',
	image_type text not null default '',
	created_at timestamptz not null default now()
)`,
}

// Migrate bootstraps the schema. Every statement is idempotent so the
// server can run it unconditionally on startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
