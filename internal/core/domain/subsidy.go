package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubsidySource identifies who funds a subsidy program.
type SubsidySource string

const (
	SubsidySourceGovernment SubsidySource = "government"
	SubsidySourceEnterprise SubsidySource = "enterprise"
	SubsidySourceSponsor    SubsidySource = "sponsor"
)

// SubsidyStatus is the lifecycle state of a subsidy program. Acceptance by
// one user never consumes the program.
type SubsidyStatus string

const (
	SubsidyStatusAvailable SubsidyStatus = "available"
	SubsidyStatusClosed    SubsidyStatus = "closed"
)

// SubsidyConditions are per-program eligibility requirements beyond role
// targeting.
type SubsidyConditions struct {
	RequiredBiometricLevel int      `json:"required_biometric_level,omitempty"`
	MinTrustScore          float64  `json:"min_trust_score,omitempty"`
	AllowedTerritoryIDs    []string `json:"allowed_territory_ids,omitempty"`
}

// Subsidy is a program definition: many eligible users may accept it.
type Subsidy struct {
	ID               uuid.UUID         `json:"id"`
	Source           SubsidySource     `json:"source"`
	TargetRoles      []Role            `json:"target_roles"`
	Amount           int64             `json:"amount"`
	Conditions       SubsidyConditions `json:"conditions"`
	RequiredShieldID []string          `json:"required_shield_ids"`
	Status           SubsidyStatus     `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
}

// SubsidyAcceptance is the append-only audit record of one user accepting a
// program. CreditedToProtected is always true: subsidy funds land locked.
type SubsidyAcceptance struct {
	ID                  uuid.UUID         `json:"id"`
	SubsidyID           uuid.UUID         `json:"subsidy_id"`
	UserID              string            `json:"user_id"`
	Amount              int64             `json:"amount"`
	CreditedToProtected bool              `json:"credited_to_protected"`
	ConditionsSnapshot  SubsidyConditions `json:"conditions_snapshot"`
	CreatedAt           time.Time         `json:"created_at"`
}
