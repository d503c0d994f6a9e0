package access_test

import (
	"testing"

	"go-pms/internal/access"
	"go-pms/internal/domain"

	"github.com/stretchr/testify/assert"
)

var (
	admin    = access.Caller{ID: "admin-1", Role: access.RoleAdmin}
	owner    = access.Caller{ID: "emp-1", Role: access.RoleEmployee}
	stranger = access.Caller{ID: "emp-2", Role: access.RoleEmployee}
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, access.RoleAdmin, access.ParseRole(" Admin "))
	assert.Equal(t, access.RoleEmployee, access.ParseRole("manager"))
	assert.Equal(t, access.RoleEmployee, access.ParseRole(""))
}

func TestOwns(t *testing.T) {
	assert.True(t, owner.Owns("", "EMP-1"))
	assert.False(t, owner.Owns("", ""))
	assert.False(t, access.Caller{}.Owns(""))
}

func TestCanRead(t *testing.T) {
	assert.True(t, access.CanRead(admin, "emp-9"))
	assert.True(t, access.CanRead(owner, "emp-1"))
	assert.False(t, access.CanRead(stranger, "emp-1"))
}

func TestCanDelete(t *testing.T) {
	assert.True(t, access.CanDelete(admin, access.KPIRef{AssignedBy: "admin-1"}))
	assert.False(t, access.CanDelete(admin, access.KPIRef{AssignedBy: "admin-1", IsDefault: true}))
	assert.False(t, access.CanDelete(admin, access.KPIRef{AssignedBy: "admin-2"}))
	assert.False(t, access.CanDelete(owner, access.KPIRef{AssignedBy: "emp-1"}))
}

func TestCanMutateApar_Matrix(t *testing.T) {
	self := []domain.AparField{domain.AparFieldSelfAppraisal}
	submit := []domain.AparField{domain.AparFieldSelfAppraisal, domain.AparFieldStatus}
	review := []domain.AparField{domain.AparFieldReviewerScore, domain.AparFieldReviewerComments, domain.AparFieldStatus}
	all := []domain.AparField{domain.AparFieldSelfAppraisal, domain.AparFieldReviewerScore}
	owners := []string{"emp-1", ""}

	tests := []struct {
		name   string
		caller access.Caller
		status domain.AparStatus
		fields []domain.AparField
		target domain.AparStatus
		want   bool
	}{
		{"owner edits own draft", owner, domain.AparDraft, self, "", true},
		{"owner submits draft", owner, domain.AparDraft, submit, domain.AparSubmitted, true},
		{"owner cannot jump to finalized", owner, domain.AparDraft, submit, domain.AparFinalized, false},
		{"owner cannot set reviewer score", owner, domain.AparDraft, review, domain.AparSubmitted, false},
		{"owner locked out after submit", owner, domain.AparSubmitted, self, "", false},
		{"owner locked out after review", owner, domain.AparReviewed, self, "", false},
		{"owner locked out after finalize", owner, domain.AparFinalized, self, "", false},
		{"stranger cannot edit draft", stranger, domain.AparDraft, self, "", false},
		{"admin edits anything in draft", admin, domain.AparDraft, all, "", true},
		{"admin reviews submitted", admin, domain.AparSubmitted, review, domain.AparReviewed, true},
		{"admin cannot rewrite self appraisal when submitted", admin, domain.AparSubmitted, all, "", false},
		{"admin edits reviewed", admin, domain.AparReviewed, all, "", true},
		{"admin edits finalized", admin, domain.AparFinalized, all, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := access.CanMutateApar(
				tt.caller,
				access.AparRef{Status: tt.status, OwnerIDs: owners},
				access.AparMutation{Fields: tt.fields, TargetStatus: tt.target},
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanMutateApar_LegacyOwnerAlias(t *testing.T) {
	ref := access.AparRef{Status: domain.AparDraft, OwnerIDs: []string{"", "emp-1"}}

	assert.True(t, access.CanMutateApar(owner, ref, access.AparMutation{
		Fields: []domain.AparField{domain.AparFieldSelfAppraisal},
	}))
}
