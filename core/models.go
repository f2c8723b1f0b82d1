package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Role identifies the kind of account behind a profile. Only member
// profiles take part in matching; staff accounts are excluded from
// candidate pools.
type Role int

const (
	// RoleMember represents a regular business member.
	RoleMember Role = iota + 1
	// RoleStaff represents an administrative account.
	RoleStaff
)

// Profile is a member's professional profile as maintained by the
// profile-management layer. The matching engine reads it and never
// writes to it. Empty text fields and empty label lists mean
// "no signal" and contribute zero score rather than an error.
type Profile struct {
	Id                   ID
	Name                 string
	Role                 Role
	WhatISell            string   // Free text: what the member offers
	WhatINeed            string   // Free text: what the member is looking for
	PartnershipInterests []string // Set-like list of sector labels
	Tags                 []string // Set-like list of free-form interest labels
	InsertedAt           time.Time
	UpdatedAt            time.Time
}

// ReasonType identifies one compatibility dimension.
type ReasonType int

const (
	// ReasonSellsNeeds means the candidate sells what the subject needs.
	ReasonSellsNeeds ReasonType = iota + 1
	// ReasonNeedsSells means the candidate needs what the subject sells.
	ReasonNeedsSells
	// ReasonSector means the two profiles share partnership sectors.
	ReasonSector
	// ReasonTag means the two profiles share interest tags.
	ReasonTag
)

// String returns the wire-style name of the reason type.
func (t ReasonType) String() string {
	switch t {
	case ReasonSellsNeeds:
		return "SELLS_NEEDS"
	case ReasonNeedsSells:
		return "NEEDS_SELLS"
	case ReasonSector:
		return "SECTOR"
	case ReasonTag:
		return "TAG"
	default:
		return "UNKNOWN"
	}
}

// Label returns the fixed human-readable label rendered next to a reason.
func (t ReasonType) Label() string {
	switch t {
	case ReasonSellsNeeds:
		return "Oferece o que você procura"
	case ReasonNeedsSells:
		return "Procura o que você oferece"
	case ReasonSector:
		return "Setores de interesse em comum"
	case ReasonTag:
		return "Interesses em comum"
	default:
		return ""
	}
}

// MatchReason explains one dimension's contribution to a match score.
type MatchReason struct {
	Type   ReasonType
	Label  string
	Detail string // Small ordered sample of matched keywords/labels, joined for display
	Points int    // Non-negative contribution to the total score
}

// MatchTier is the ordinal classification of a match score.
type MatchTier int

const (
	// TierNone means no meaningful compatibility.
	TierNone MatchTier = iota
	// TierPotential means weak but present compatibility.
	TierPotential
	// TierCommon means solid compatibility.
	TierCommon
	// TierStrong means the highest compatibility tier.
	TierStrong
)

// String returns the wire-style name of the tier.
func (t MatchTier) String() string {
	switch t {
	case TierPotential:
		return "POTENTIAL"
	case TierCommon:
		return "COMMON"
	case TierStrong:
		return "STRONG"
	default:
		return "NONE"
	}
}

// MatchResult is the outcome of scoring one candidate against a subject.
// Results are ephemeral: built fresh per ranking request and discarded
// after the caller consumes them.
type MatchResult struct {
	Profile *Profile
	Score   int // Always within [0, 100]
	Tier    MatchTier
	Reasons []MatchReason // Fixed evaluation order: SELLS_NEEDS, NEEDS_SELLS, SECTOR, TAG
}
