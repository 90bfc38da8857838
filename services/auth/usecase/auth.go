package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	appctx "github.com/Kael08/JOB-PORTAL/internal/pkg/context"
	apperrors "github.com/Kael08/JOB-PORTAL/internal/pkg/errors"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/logger"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/Kael08/JOB-PORTAL/internal/utils"
)

const codeSentMessage = "Verification code sent"

// RequestCode issues a fresh code for the phone and dispatches it.
// The code itself is never returned.
func (uc *AuthUC) RequestCode(ctx context.Context, rawPhone string) (*models.SendCodeResponse, error) {
	phone := utils.NormalizePhone(rawPhone)
	if err := utils.ValidatePhone(phone); err != nil {
		return nil, err
	}

	allowed, err := uc.throttle.Allow(ctx, phone)
	if err != nil {
		uc.log(ctx).Warn("Send-code throttle unavailable, allowing request",
			logger.String("phone", utils.MaskPhone(phone)),
			logger.Err(err))
	} else if !allowed {
		return nil, apperrors.ErrRateLimited
	}

	isExistingUser := false
	existing, err := uc.repo.GetAccountByPhone(ctx, phone)
	switch {
	case err == nil:
		isExistingUser = existing.IsEstablished()
	case !errors.Is(err, apperrors.ErrAccountNotFound):
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	code, err := uc.generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	if _, err := uc.repo.UpsertPendingCode(ctx, phone, code, uc.now().Add(uc.otpTTL)); err != nil {
		return nil, fmt.Errorf("failed to store code: %w", err)
	}

	delivered, err := uc.sender.SendOTP(ctx, phone, code)
	if err != nil {
		uc.log(ctx).Error("Failed to dispatch verification code",
			logger.String("phone", utils.MaskPhone(phone)),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDispatchFailed, err)
	}
	if !delivered {
		uc.log(ctx).Error("Verification code was not delivered",
			logger.String("phone", utils.MaskPhone(phone)))
		return nil, apperrors.ErrDispatchFailed
	}

	return &models.SendCodeResponse{
		Message:        codeSentMessage,
		IsExistingUser: isExistingUser,
	}, nil
}

// VerifyCode redeems a code and opens a session. A pending account must
// supply a name and role, which complete its registration.
func (uc *AuthUC) VerifyCode(ctx context.Context, req *models.VerifyCodeRequest) (*models.AuthResponse, error) {
	phone := utils.NormalizePhone(req.Phone)
	if err := utils.ValidatePhone(phone); err != nil {
		return nil, err
	}

	redemption := models.Redemption{
		Phone:       phone,
		Code:        strings.TrimSpace(req.Code),
		DisplayName: strings.TrimSpace(req.Name),
		Role:        req.Role,
		At:          uc.now(),
	}

	account, registered, err := uc.repo.VerifyAndConsume(ctx, redemption)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidOrExpiredCode) || errors.Is(err, apperrors.ErrMissingRegistrationFields) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to verify code: %w", err)
	}

	resp, err := uc.newSession(account)
	if err != nil {
		return nil, err
	}

	if registered {
		uc.publish(ctx, "account registered", uc.eventGW.PublishAccountRegistered, &models.AuthEvent{
			AccountID:  account.ID,
			Phone:      account.Phone,
			Role:       account.CurrentRole(),
			OccurredAt: redemption.At,
		})
	}

	return resp, nil
}

// GetProfile returns the live view of an established account
func (uc *AuthUC) GetProfile(ctx context.Context, accountID string) (*models.AccountView, error) {
	account, err := uc.loadEstablished(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account.View(), nil
}

// ChangeRole switches the account's role and issues a token for it.
// Leaving the employer role hides the account's postings first; if that
// fails the role is left unchanged.
func (uc *AuthUC) ChangeRole(ctx context.Context, accountID string, newRole models.Role) (*models.AuthResponse, error) {
	if !newRole.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	account, err := uc.loadEstablished(ctx, accountID)
	if err != nil {
		return nil, err
	}
	previous := account.CurrentRole()

	if previous == models.RoleEmployer && newRole == models.RoleJobSeeker {
		if err := uc.jobsGW.HideAllPostingsOwnedBy(ctx, account.ID); err != nil {
			return nil, fmt.Errorf("failed to hide postings before role change: %w", err)
		}
	}

	updated, err := uc.repo.UpdateRole(ctx, account.ID, newRole)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to change role: %w", err)
	}

	resp, err := uc.newSession(updated)
	if err != nil {
		return nil, err
	}

	if previous != newRole {
		uc.publish(ctx, "role changed", uc.eventGW.PublishRoleChanged, &models.AuthEvent{
			AccountID:    updated.ID,
			Phone:        updated.Phone,
			Role:         newRole,
			PreviousRole: previous,
			OccurredAt:   uc.now(),
		})
	}

	return resp, nil
}

func (uc *AuthUC) loadEstablished(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := uc.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if !account.IsEstablished() {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func (uc *AuthUC) newSession(account *models.Account) (*models.AuthResponse, error) {
	token, expiresAt, err := uc.issuer.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        account.View(),
	}, nil
}

// publish is best-effort; the state change has already committed
func (uc *AuthUC) publish(ctx context.Context, name string, fn func(context.Context, *models.AuthEvent) error, event *models.AuthEvent) {
	if err := fn(ctx, event); err != nil {
		uc.log(ctx).Warn("Failed to publish auth event",
			logger.String("event", name),
			logger.String("subject_account_id", event.AccountID),
			logger.Err(err))
	}
}

func (uc *AuthUC) log(ctx context.Context) *zap.Logger {
	return uc.logger.With(appctx.LogFields(ctx)...)
}
