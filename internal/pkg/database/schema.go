package database

import (
	"context"
	"fmt"
)

// schemaStatements create the tables this service reads and writes.
// The jobs table is owned by the listings module; only the columns the
// role-change cascade touches are declared here.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id                      UUID PRIMARY KEY,
		phone                   VARCHAR(20) NOT NULL UNIQUE,
		state                   VARCHAR(16) NOT NULL DEFAULT 'pending',
		display_name            VARCHAR(255),
		role                    VARCHAR(32),
		pending_code            VARCHAR(8),
		pending_code_expires_at TIMESTAMPTZ,
		created_at              TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at              TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT accounts_state_check CHECK (state IN ('pending', 'established')),
		CONSTRAINT accounts_role_check CHECK (role IS NULL OR role IN ('job_seeker', 'employer')),
		CONSTRAINT accounts_code_pair_check CHECK ((pending_code IS NULL) = (pending_code_expires_at IS NULL)),
		CONSTRAINT accounts_established_check CHECK (state = 'pending' OR (display_name IS NOT NULL AND role IS NOT NULL))
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id         BIGSERIAL PRIMARY KEY,
		user_id    UUID REFERENCES accounts(id),
		is_visible BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS jobs_user_id_idx ON jobs (user_id)`,
}

// EnsureSchema creates missing tables and indexes
func (p *PostgresClient) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
