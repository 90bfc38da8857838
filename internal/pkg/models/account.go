package models

import (
	"time"
)

// Role is the role an established account acts under
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// ParseRole converts a raw string into a Role
func ParseRole(raw string) (Role, bool) {
	r := Role(raw)
	return r, r.Valid()
}

// AccountState discriminates between an account reserved by a code-send and
// one that completed its first verification.
type AccountState string

const (
	AccountPending     AccountState = "pending"
	AccountEstablished AccountState = "established"
)

// Account is one identity row keyed by canonical phone.
// DisplayName and Role are only meaningful when State is AccountEstablished.
// PendingCode and PendingCodeExpiresAt are always both set or both nil.
type Account struct {
	ID                   string       `json:"id" db:"id"`
	Phone                string       `json:"phone" db:"phone"`
	State                AccountState `json:"-" db:"state"`
	DisplayName          *string      `json:"-" db:"display_name"`
	Role                 *Role        `json:"-" db:"role"`
	PendingCode          *string      `json:"-" db:"pending_code"`
	PendingCodeExpiresAt *time.Time   `json:"-" db:"pending_code_expires_at"`
	CreatedAt            time.Time    `json:"-" db:"created_at"`
	UpdatedAt            time.Time    `json:"-" db:"updated_at"`
}

// IsEstablished reports whether the account completed verification
func (a *Account) IsEstablished() bool {
	return a != nil && a.State == AccountEstablished
}

// Name returns the display name or an empty string while pending
func (a *Account) Name() string {
	if a.DisplayName == nil {
		return ""
	}
	return *a.DisplayName
}

// CurrentRole returns the role or an empty role while pending
func (a *Account) CurrentRole() Role {
	if a.Role == nil {
		return ""
	}
	return *a.Role
}

// HasPendingCode reports whether a code is stored, regardless of expiry
func (a *Account) HasPendingCode() bool {
	return a.PendingCode != nil && a.PendingCodeExpiresAt != nil
}

// View returns the secret-free projection of the account
func (a *Account) View() *AccountView {
	return &AccountView{
		ID:          a.ID,
		Phone:       a.Phone,
		DisplayName: a.Name(),
		Role:        a.CurrentRole(),
	}
}

// AccountView is the account projection returned to clients.
// It intentionally has no code fields.
type AccountView struct {
	ID          string `json:"id"`
	Phone       string `json:"phone"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

// Redemption is a single attempt to consume a pending code
type Redemption struct {
	Phone       string
	Code        string
	DisplayName string
	Role        Role
	At          time.Time
}

// HasRegistrationFields reports whether the fields needed to complete a
// pending account are present
func (r Redemption) HasRegistrationFields() bool {
	return r.DisplayName != "" && r.Role.Valid()
}
