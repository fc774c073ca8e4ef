package service

import "time"

// Banner kinds surfaced to the terminal UI.
const (
	BannerSuccess   = "success"
	BannerFailed    = "failed"
	BannerDuplicate = "duplicate"
)

// Banner is a transient on-screen notice. ExpiresInMs tells the UI how
// long to keep it visible.
type Banner struct {
	Kind        string `json:"kind"`
	Message     string `json:"message"`
	ExpiresInMs int64  `json:"expiresInMs"`
}

// NewBanner builds a banner with the given time to live.
func NewBanner(kind, message string, ttl time.Duration) *Banner {
	return &Banner{
		Kind:        kind,
		Message:     message,
		ExpiresInMs: ttl.Milliseconds(),
	}
}
