package constants

// Redis key formats
const (
	KeySendCodeThrottle = "auth:otp:send:%s" // Format: auth:otp:send:{phone}

	// Rate Limiting
	KeyRateLimitIP = "rate:ip" // prefix, full key is rate:ip:{route}:{ip}
)
