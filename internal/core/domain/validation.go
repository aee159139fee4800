package domain

import "time"

// BiometricValidation is a freshness token proving the user passed a
// biometric check. Supplied by the caller; the guard never invokes the
// biometric provider itself.
type BiometricValidation struct {
	Level int       `json:"level"` // 0..3
	At    time.Time `json:"at"`
}

// Satisfies reports whether the token covers minLevel and is still fresh at
// now, given the configured freshness window. A satisfied token avoids
// re-prompting the user immediately after a successful check.
func (v BiometricValidation) Satisfies(minLevel int, now time.Time, window time.Duration) bool {
	if v.Level < minLevel {
		return false
	}
	age := now.Sub(v.At)
	return age >= 0 && age <= window
}
