package jwt

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/Kael08/JOB-PORTAL/internal/pkg/errors"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents standard JWT claims plus custom fields.
// The account id travels in the registered "sub" claim.
type Claims struct {
	Phone string      `json:"phone"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AccountID returns the subject the token was issued for
func (c *Claims) AccountID() string {
	return c.Subject
}

// Issuer signs and verifies session tokens with a single HMAC secret
type Issuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// IssuerOption customizes an Issuer
type IssuerOption func(*Issuer)

// WithTimeFunc overrides the clock used for issuing and validating tokens
func WithTimeFunc(now func() time.Time) IssuerOption {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer creates an Issuer from configuration
func NewIssuer(cfg models.JWTConfig, opts ...IssuerOption) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	if cfg.Expiration <= 0 {
		return nil, fmt.Errorf("jwt expiration must be positive, got %d", cfg.Expiration)
	}

	i := &Issuer{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.Expiration) * time.Minute,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Issue signs a token for an established account
func (i *Issuer) Issue(account *models.Account) (string, int64, error) {
	if !account.IsEstablished() {
		return "", 0, fmt.Errorf("cannot issue token for account %s in state %q", account.ID, account.State)
	}

	now := i.now()
	expirationTime := now.Add(i.ttl)

	claims := Claims{
		Phone: account.Phone,
		Name:  account.Name(),
		Role:  account.CurrentRole(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expirationTime.Unix(), nil
}

// Parse validates a token and returns its claims.
// Any failure is reported as ErrInvalidToken.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	}
	if i.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(i.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
