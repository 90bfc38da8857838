package repository

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/Kael08/JOB-PORTAL/internal/pkg/errors"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/google/uuid"
)

// MemoryAccountRepo is a process-local identity store.
// It is only correct for a single service instance.
type MemoryAccountRepo struct {
	mu      sync.Mutex
	byPhone map[string]*models.Account
	byID    map[string]*models.Account
	now     func() time.Time
}

// NewMemoryAccountRepo creates an empty in-memory store
func NewMemoryAccountRepo() *MemoryAccountRepo {
	return &MemoryAccountRepo{
		byPhone: make(map[string]*models.Account),
		byID:    make(map[string]*models.Account),
		now:     time.Now,
	}
}

func cloneAccount(a *models.Account) *models.Account {
	c := *a
	if a.DisplayName != nil {
		name := *a.DisplayName
		c.DisplayName = &name
	}
	if a.Role != nil {
		role := *a.Role
		c.Role = &role
	}
	if a.PendingCode != nil {
		code := *a.PendingCode
		c.PendingCode = &code
	}
	if a.PendingCodeExpiresAt != nil {
		exp := *a.PendingCodeExpiresAt
		c.PendingCodeExpiresAt = &exp
	}
	return &c
}

// GetAccountByPhone retrieves an account by canonical phone
func (r *MemoryAccountRepo) GetAccountByPhone(ctx context.Context, phone string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byPhone[phone]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

// GetAccountByID retrieves an account by id
func (r *MemoryAccountRepo) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

// UpsertPendingCode stores a fresh code for phone, creating a pending account
// when the phone is unknown
func (r *MemoryAccountRepo) UpsertPendingCode(ctx context.Context, phone, code string, expiresAt time.Time) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	account, ok := r.byPhone[phone]
	if !ok {
		account = &models.Account{
			ID:        uuid.NewString(),
			Phone:     phone,
			State:     models.AccountPending,
			CreatedAt: now,
		}
		r.byPhone[phone] = account
		r.byID[account.ID] = account
	}

	account.PendingCode = &code
	exp := expiresAt
	account.PendingCodeExpiresAt = &exp
	account.UpdatedAt = now

	return cloneAccount(account), nil
}

// VerifyAndConsume checks and clears the code under the store lock
func (r *MemoryAccountRepo) VerifyAndConsume(ctx context.Context, redemption models.Redemption) (*models.Account, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byPhone[redemption.Phone]
	if !ok || !account.HasPendingCode() ||
		*account.PendingCode != redemption.Code ||
		!account.PendingCodeExpiresAt.After(redemption.At) {
		return nil, false, apperrors.ErrInvalidOrExpiredCode
	}

	registered := false
	if !account.IsEstablished() {
		if !redemption.HasRegistrationFields() {
			return nil, false, apperrors.ErrMissingRegistrationFields
		}
		registered = true
		name := redemption.DisplayName
		role := redemption.Role
		account.DisplayName = &name
		account.Role = &role
		account.State = models.AccountEstablished
	}

	account.PendingCode = nil
	account.PendingCodeExpiresAt = nil
	account.UpdatedAt = redemption.At

	return cloneAccount(account), registered, nil
}

// UpdateRole sets the role of an established account
func (r *MemoryAccountRepo) UpdateRole(ctx context.Context, id string, role models.Role) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[id]
	if !ok || !account.IsEstablished() {
		return nil, apperrors.ErrAccountNotFound
	}

	account.Role = &role
	account.UpdatedAt = r.now()

	return cloneAccount(account), nil
}
