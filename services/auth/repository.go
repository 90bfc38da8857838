package auth

import (
	"context"
	"time"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Kael08/JOB-PORTAL/services/auth AccountRepo

// AccountRepo defines the identity store, one account per canonical phone
type AccountRepo interface {
	GetAccountByPhone(ctx context.Context, phone string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)

	// UpsertPendingCode creates a pending account if the phone is unknown and
	// replaces any stored code on the existing row. Name and role are untouched.
	UpsertPendingCode(ctx context.Context, phone, code string, expiresAt time.Time) (*models.Account, error)

	// VerifyAndConsume atomically checks the code and clears it. A pending
	// account becomes established with the redemption's name and role, in
	// which case registered is true.
	VerifyAndConsume(ctx context.Context, redemption models.Redemption) (account *models.Account, registered bool, err error)

	UpdateRole(ctx context.Context, id string, role models.Role) (*models.Account, error)
}
