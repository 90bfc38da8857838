package gateway

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// JobsGateway talks to the job listings table owned by the listings module
type JobsGateway struct {
	db *sqlx.DB
}

// NewJobsGateway creates a jobs gateway on db
func NewJobsGateway(db *sqlx.DB) *JobsGateway {
	return &JobsGateway{db: db}
}

// HideAllPostingsOwnedBy marks every posting of the account invisible.
// Owning no postings is not an error.
func (g *JobsGateway) HideAllPostingsOwnedBy(ctx context.Context, accountID string) error {
	query := `UPDATE jobs SET is_visible = false WHERE user_id = $1 AND is_visible = true`
	if _, err := g.db.ExecContext(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to hide job postings: %w", err)
	}
	return nil
}

// NoopJobsGateway is used when no listings store is configured
type NoopJobsGateway struct{}

// HideAllPostingsOwnedBy does nothing
func (NoopJobsGateway) HideAllPostingsOwnedBy(ctx context.Context, accountID string) error {
	return nil
}
