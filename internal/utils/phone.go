package utils

import (
	"regexp"
	"strings"

	apperrors "github.com/Kael08/JOB-PORTAL/internal/pkg/errors"
)

const (
	// CountryCode is the dialing code every canonical phone starts with
	CountryCode = "7"
	// TrunkPrefix is the domestic dialing prefix replaced by CountryCode
	TrunkPrefix = "8"
)

// canonicalPhonePattern accepts +7 followed by a 10-digit mobile number
var canonicalPhonePattern = regexp.MustCompile(`^\+79\d{9}$`)

// NormalizePhone converts a phone number in any common notation into its
// canonical +7XXXXXXXXXX form. It never fails; validation is separate.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, TrunkPrefix) {
		digits = CountryCode + digits[1:]
	}

	// Subscriber number without country code
	if strings.HasPrefix(digits, "9") && len(digits) == 10 {
		digits = CountryCode + digits
	}

	return "+" + digits
}

// ValidatePhone checks that a canonical phone belongs to the supported
// national numbering plan
func ValidatePhone(canonical string) error {
	if !canonicalPhonePattern.MatchString(canonical) {
		return apperrors.ErrInvalidPhoneFormat
	}
	return nil
}

// MaskPhone hides the middle digits of a phone for logging
func MaskPhone(phone string) string {
	if len(phone) <= 6 {
		return phone
	}
	return phone[:4] + strings.Repeat("*", len(phone)-6) + phone[len(phone)-2:]
}
