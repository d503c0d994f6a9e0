// Package access decides who may touch which KPI or APAR. Every check is a
// pure function over the caller and a small view of the record.
package access

import (
	"strings"

	"go-pms/internal/domain"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// ParseRole treats anything that is not admin as employee.
func ParseRole(raw string) Role {
	if strings.EqualFold(strings.TrimSpace(raw), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleEmployee
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	ID   string
	Role Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Owns reports whether any of the given owner ids is the caller.
// Empty ids never match.
func (c Caller) Owns(ownerIDs ...string) bool {
	if c.ID == "" {
		return false
	}
	for _, id := range ownerIDs {
		if id != "" && strings.EqualFold(id, c.ID) {
			return true
		}
	}
	return false
}

// CanRead allows admins everything and everyone else their own records.
func CanRead(c Caller, ownerIDs ...string) bool {
	return c.IsAdmin() || c.Owns(ownerIDs...)
}

type KPIRef struct {
	AssignedBy string
	IsDefault  bool
}

// CanDelete requires an admin who created the KPI, and never a default one.
func CanDelete(c Caller, k KPIRef) bool {
	return c.IsAdmin() && !k.IsDefault && c.Owns(k.AssignedBy)
}

// AparRef is the part of an APAR the permission matrix looks at.
// OwnerIDs carries the canonical employee reference and any legacy alias.
type AparRef struct {
	Status   domain.AparStatus
	OwnerIDs []string
}

type AparMutation struct {
	Fields       []domain.AparField
	TargetStatus domain.AparStatus
}

var (
	ownerDraftFields = fieldSet(domain.AparFieldSelfAppraisal, domain.AparFieldStatus)
	adminReviewSet   = fieldSet(
		domain.AparFieldReviewer,
		domain.AparFieldReviewerComments,
		domain.AparFieldReviewerScore,
		domain.AparFieldStatus,
	)
)

// CanMutateApar applies the status x role x field matrix:
//
//	draft      owner: selfAppraisal, status->submitted   admin: all
//	submitted  owner: none                               admin: reviewer fields, status
//	reviewed   owner: none                               admin: all
//	finalized  owner: none                               admin: all
func CanMutateApar(c Caller, a AparRef, m AparMutation) bool {
	if c.IsAdmin() {
		if a.Status == domain.AparSubmitted {
			return subsetOf(m.Fields, adminReviewSet)
		}
		return true
	}

	if !c.Owns(a.OwnerIDs...) || a.Status != domain.AparDraft {
		return false
	}
	if !subsetOf(m.Fields, ownerDraftFields) {
		return false
	}
	if contains(m.Fields, domain.AparFieldStatus) &&
		m.TargetStatus != domain.AparSubmitted && m.TargetStatus != domain.AparDraft {
		return false
	}
	return true
}

func fieldSet(fields ...domain.AparField) map[domain.AparField]struct{} {
	set := make(map[domain.AparField]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func subsetOf(fields []domain.AparField, allowed map[domain.AparField]struct{}) bool {
	for _, f := range fields {
		if _, ok := allowed[f]; !ok {
			return false
		}
	}
	return true
}

func contains(fields []domain.AparField, f domain.AparField) bool {
	for _, x := range fields {
		if x == f {
			return true
		}
	}
	return false
}
