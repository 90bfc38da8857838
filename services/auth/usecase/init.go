package usecase

import (
	"time"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/logger"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/Kael08/JOB-PORTAL/internal/utils"
	"github.com/Kael08/JOB-PORTAL/services/auth"
)

const defaultOTPTTL = 30 * time.Minute

// TokenIssuer signs session tokens for established accounts
type TokenIssuer interface {
	Issue(account *models.Account) (token string, expiresAt int64, err error)
}

// Dependencies are the collaborators of the auth usecase
type Dependencies struct {
	Repo     auth.AccountRepo
	Sender   auth.OTPSender
	JobsGW   auth.JobsGW
	EventGW  auth.EventGW
	Throttle auth.SendThrottle
	Issuer   TokenIssuer
}

// AuthUC implements auth.AuthUC
type AuthUC struct {
	repo     auth.AccountRepo
	sender   auth.OTPSender
	jobsGW   auth.JobsGW
	eventGW  auth.EventGW
	throttle auth.SendThrottle
	issuer   TokenIssuer
	logger   *logger.ZapLogger

	otpTTL       time.Duration
	now          func() time.Time
	generateCode func() (string, error)
}

// Option customizes the usecase
type Option func(*AuthUC)

// WithClock overrides the time source used for code expiry
func WithClock(now func() time.Time) Option {
	return func(uc *AuthUC) {
		uc.now = now
	}
}

// WithCodeGenerator overrides how one-time codes are produced
func WithCodeGenerator(generate func() (string, error)) Option {
	return func(uc *AuthUC) {
		uc.generateCode = generate
	}
}

// WithLogger sets the logger used for dispatch and event failures
func WithLogger(zapLogger *logger.ZapLogger) Option {
	return func(uc *AuthUC) {
		uc.logger = zapLogger
	}
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(cfg *models.Config, deps Dependencies, opts ...Option) *AuthUC {
	uc := &AuthUC{
		repo:         deps.Repo,
		sender:       deps.Sender,
		jobsGW:       deps.JobsGW,
		eventGW:      deps.EventGW,
		throttle:     deps.Throttle,
		issuer:       deps.Issuer,
		logger:       logger.GetGlobalLogger(),
		otpTTL:       cfg.OTP.TTL,
		now:          time.Now,
		generateCode: utils.GenerateOTP,
	}
	if uc.otpTTL <= 0 {
		uc.otpTTL = defaultOTPTTL
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
