package ratelimit

import "time"

// Provider quota defaults
const (
	DefaultRequestsPerMinute = 600
	DefaultSafetyMargin      = 0.9
	DefaultWindow            = time.Minute
	DefaultCooldown          = time.Minute
)

// Log messages
const (
	LogMsgQuotaReached = "Hit provider rate limit (safety margin applied), waiting before next request"
	LogMsgResuming     = "Resuming provider requests after cool-down"
)
