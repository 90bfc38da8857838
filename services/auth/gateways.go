package auth

import (
	"context"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Kael08/JOB-PORTAL/services/auth OTPSender,JobsGW,EventGW,SendThrottle

// OTPSender delivers a one-time code to a phone.
// delivered is false when the provider rejected the message.
type OTPSender interface {
	SendOTP(ctx context.Context, phone, code string) (delivered bool, err error)
}

// JobsGW is the job listings collaborator
type JobsGW interface {
	HideAllPostingsOwnedBy(ctx context.Context, accountID string) error
}

// EventGW publishes auth events to the message bus
type EventGW interface {
	PublishAccountRegistered(ctx context.Context, event *models.AuthEvent) error
	PublishRoleChanged(ctx context.Context, event *models.AuthEvent) error
}

// SendThrottle limits how often a code can be requested for one phone
type SendThrottle interface {
	Allow(ctx context.Context, phone string) (bool, error)
}
