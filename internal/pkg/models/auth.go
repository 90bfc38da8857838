package models

import "time"

// SendCodeRequest represents a request to send a verification code
type SendCodeRequest struct {
	Phone string `json:"phone"`
}

// SendCodeResponse is returned after a code was dispatched
type SendCodeResponse struct {
	Message        string `json:"message"`
	IsExistingUser bool   `json:"isExistingUser"`
}

// VerifyCodeRequest represents a request to verify a code and log in.
// Name and Role are required only when completing a pending account.
type VerifyCodeRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
	Name  string `json:"name,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   int64        `json:"expiresAt"`
	User        *AccountView `json:"user"`
}

// AuthEvent is published to the message bus after an auth state change
type AuthEvent struct {
	AccountID    string    `json:"account_id"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	PreviousRole Role      `json:"previous_role,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
