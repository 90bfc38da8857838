package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/Kael08/JOB-PORTAL/internal/pkg/errors"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/google/uuid"
)

const (
	accountColumns          = `id, phone, state, display_name, role, pending_code, pending_code_expires_at, created_at, updated_at`
	qualifiedAccountColumns = `a.id, a.phone, a.state, a.display_name, a.role, a.pending_code, a.pending_code_expires_at, a.created_at, a.updated_at`
)

// GetAccountByPhone retrieves an account by canonical phone
func (r *AccountRepo) GetAccountByPhone(ctx context.Context, phone string) (*models.Account, error) {
	var account models.Account
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE phone = $1`

	if err := r.db.GetContext(ctx, &account, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by phone: %w", err)
	}

	return &account, nil
}

// GetAccountByID retrieves an account by id
func (r *AccountRepo) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrAccountNotFound
	}

	var account models.Account
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return &account, nil
}

// UpsertPendingCode stores a fresh code for phone, creating a pending account
// when the phone is unknown
func (r *AccountRepo) UpsertPendingCode(ctx context.Context, phone, code string, expiresAt time.Time) (*models.Account, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO accounts (id, phone, state, pending_code, pending_code_expires_at, created_at, updated_at)
		VALUES ($1, $2, 'pending', $3, $4, $5, $5)
		ON CONFLICT (phone) DO UPDATE SET
			pending_code = EXCLUDED.pending_code,
			pending_code_expires_at = EXCLUDED.pending_code_expires_at,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + accountColumns

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, uuid.NewString(), phone, code, expiresAt.UTC(), now)
	if err != nil {
		return nil, fmt.Errorf("failed to store pending code: %w", err)
	}

	return &account, nil
}

// VerifyAndConsume redeems a code in a single statement. The row lock taken
// by the CTE makes two concurrent redemptions of one code serialize, and the
// loser finds the code already cleared. registered is true when this call
// moved the account out of the pending state.
func (r *AccountRepo) VerifyAndConsume(ctx context.Context, redemption models.Redemption) (*models.Account, bool, error) {
	hasFields := redemption.HasRegistrationFields()
	at := redemption.At.UTC()

	var displayName, role interface{}
	if hasFields {
		displayName = redemption.DisplayName
		role = string(redemption.Role)
	}

	query := `
		WITH target AS (
			SELECT id, state AS prior_state FROM accounts
			WHERE phone = $1
				AND pending_code = $2
				AND pending_code_expires_at > $5
				AND (state = 'established' OR $6)
			FOR UPDATE
		)
		UPDATE accounts a SET
			state = 'established',
			display_name = CASE WHEN t.prior_state = 'pending' THEN $3 ELSE a.display_name END,
			role = CASE WHEN t.prior_state = 'pending' THEN $4 ELSE a.role END,
			pending_code = NULL,
			pending_code_expires_at = NULL,
			updated_at = $5
		FROM target t
		WHERE a.id = t.id
		RETURNING ` + qualifiedAccountColumns + `, t.prior_state = 'pending' AS newly_registered`

	var row struct {
		models.Account
		NewlyRegistered bool `db:"newly_registered"`
	}
	err := r.db.GetContext(ctx, &row, query,
		redemption.Phone, redemption.Code, displayName, role, at, hasFields)
	if err == nil {
		return &row.Account, row.NewlyRegistered, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to consume code: %w", err)
	}

	if hasFields {
		return nil, false, apperrors.ErrInvalidOrExpiredCode
	}

	// the code may be valid but the pending account needs name and role
	var awaitingFields bool
	probe := `
		SELECT EXISTS (
			SELECT 1 FROM accounts
			WHERE phone = $1 AND state = 'pending' AND pending_code = $2 AND pending_code_expires_at > $3
		)`
	if err := r.db.GetContext(ctx, &awaitingFields, probe, redemption.Phone, redemption.Code, at); err != nil {
		return nil, false, fmt.Errorf("failed to check pending code: %w", err)
	}
	if awaitingFields {
		return nil, false, apperrors.ErrMissingRegistrationFields
	}

	return nil, false, apperrors.ErrInvalidOrExpiredCode
}

// UpdateRole sets the role of an established account
func (r *AccountRepo) UpdateRole(ctx context.Context, id string, role models.Role) (*models.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrAccountNotFound
	}

	query := `
		UPDATE accounts SET role = $2, updated_at = $3
		WHERE id = $1 AND state = 'established'
		RETURNING ` + accountColumns

	var account models.Account
	if err := r.db.GetContext(ctx, &account, query, id, string(role), time.Now().UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return &account, nil
}
