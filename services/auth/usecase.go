package auth

import (
	"context"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Kael08/JOB-PORTAL/services/auth AuthUC

// AuthUC drives the phone code login flow
type AuthUC interface {
	RequestCode(ctx context.Context, rawPhone string) (*models.SendCodeResponse, error)
	VerifyCode(ctx context.Context, req *models.VerifyCodeRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, accountID string) (*models.AccountView, error)
	ChangeRole(ctx context.Context, accountID string, newRole models.Role) (*models.AuthResponse, error)
}
