package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

const (
	otpMin = 1000
	otpMax = 9999
)

// GenerateOTP returns a 4-digit verification code drawn uniformly from
// [1000, 9999] using the operating system's CSPRNG
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}
