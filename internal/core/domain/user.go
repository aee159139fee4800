package domain

import "time"

// User is an identity record. VerificationLevel, TrustScore and Badges feed
// subsidy eligibility and feature gates.
type User struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	PasswordHash      string    `json:"-"`
	Roles             []Role    `json:"roles"`
	VerificationLevel int       `json:"verification_level"` // 0..3
	TrustScore        float64   `json:"trust_score"`        // 0..100
	Badges            []string  `json:"badges,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
