package domain

import (
	"math"
	"time"
)

// ShieldKind discriminates the shield rule variants.
type ShieldKind string

const (
	ShieldKindBiometric   ShieldKind = "biometric"
	ShieldKindTimeDelay   ShieldKind = "time_delay"
	ShieldKindAmountLimit ShieldKind = "amount_limit"
	ShieldKindTerritorial ShieldKind = "territorial"
	ShieldKindRoleBased   ShieldKind = "role_based"
)

// ShieldRule is the closed set of protection rules. Evaluation is an
// exhaustive type switch; there is no default-allow variant.
type ShieldRule interface {
	Kind() ShieldKind
}

// BiometricRule requires a fresh biometric validation at or above MinLevel.
type BiometricRule struct {
	MinLevel int `json:"min_level"` // 0..3
}

func (BiometricRule) Kind() ShieldKind { return ShieldKindBiometric }

// TimeDelayRule requires a waiting period before execution. It escalates to
// validation, never denies on its own.
type TimeDelayRule struct {
	Delay time.Duration `json:"delay"`
}

func (TimeDelayRule) Kind() ShieldKind { return ShieldKindTimeDelay }

// AmountLimitRule denies when the requested amount exceeds the remaining
// limit. With PerDay the limit is net of released transactions since UTC
// midnight.
type AmountLimitRule struct {
	Limit  int64 `json:"limit"`
	PerDay bool  `json:"per_day"`
}

func (AmountLimitRule) Kind() ShieldKind { return ShieldKindAmountLimit }

// TerritorialRule denies inside red zones. With UseSemaphore the external
// territory semaphore is consulted first: red denies, yellow escalates to
// biometric level 2, green falls through to the geofence check.
type TerritorialRule struct {
	RedZones     []RedZone `json:"red_zones"`
	UseSemaphore bool      `json:"use_semaphore"`
}

func (TerritorialRule) Kind() ShieldKind { return ShieldKindTerritorial }

// RoleBasedRule denies when none of the caller's roles are allowed.
type RoleBasedRule struct {
	AllowedRoles []Role `json:"allowed_roles"`
}

func (RoleBasedRule) Kind() ShieldKind { return ShieldKindRoleBased }

// Shield is a named, independently toggleable protection rule attached to a
// wallet. Disabled shields are skipped during evaluation.
type Shield struct {
	ID      string     `json:"id"`
	Enabled bool       `json:"enabled"`
	Rule    ShieldRule `json:"rule"`
}

// ShieldResult is the outcome of evaluating one shield against a context.
type ShieldResult struct {
	Allowed                bool   `json:"allowed"`
	Reason                 string `json:"reason,omitempty"`
	RequiresValidation     bool   `json:"requires_validation,omitempty"`
	RequiredBiometricLevel int    `json:"required_biometric_level,omitempty"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RedZone is a circular geofence.
type RedZone struct {
	ID      string   `json:"id"`
	Center  GeoPoint `json:"center"`
	RadiusM float64  `json:"radius_m"`
}

// Contains reports whether p falls inside the zone.
func (z RedZone) Contains(p GeoPoint) bool {
	return haversineMeters(z.Center, p) <= z.RadiusM
}

const earthRadiusM = 6371000.0

// haversineMeters computes the great-circle distance between two points.
func haversineMeters(a, b GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}

// TerritoryState is the external semaphore's traffic-light answer.
type TerritoryState string

const (
	TerritoryStateGreen  TerritoryState = "green"
	TerritoryStateYellow TerritoryState = "yellow"
	TerritoryStateRed    TerritoryState = "red"
)
