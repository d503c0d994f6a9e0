package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

type AparStatus string

const (
	AparDraft     AparStatus = "draft"
	AparSubmitted AparStatus = "submitted"
	AparReviewed  AparStatus = "reviewed"
	AparFinalized AparStatus = "finalized"
)

var aparRank = map[AparStatus]int{
	AparDraft:     0,
	AparSubmitted: 1,
	AparReviewed:  2,
	AparFinalized: 3,
}

func ParseAparStatus(raw string) (AparStatus, error) {
	s := AparStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := aparRank[s]; !ok {
		return "", fmt.Errorf("unknown apar status %q", raw)
	}
	return s, nil
}

// Rank orders statuses along the lifecycle. Unknown statuses rank -1.
func (s AparStatus) Rank() int {
	if r, ok := aparRank[s]; ok {
		return r
	}
	return -1
}

// IsForwardOf reports whether s comes after prev in the lifecycle.
func (s AparStatus) IsForwardOf(prev AparStatus) bool {
	return s.Rank() > prev.Rank()
}

// HasFinalScore reports whether an appraisal in this status carries a computed final score.
func (s AparStatus) HasFinalScore() bool {
	return s == AparReviewed || s == AparFinalized
}

func (s *AparStatus) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*s = AparDraft
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan apar status: unsupported type %T", src)
	}
	parsed, err := ParseAparStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s AparStatus) Value() (driver.Value, error) {
	if s == "" {
		return string(AparDraft), nil
	}
	return string(s), nil
}

// AparField names a client-writable APAR attribute.
type AparField string

const (
	AparFieldSelfAppraisal    AparField = "selfAppraisal"
	AparFieldReviewer         AparField = "reviewer"
	AparFieldReviewerComments AparField = "reviewerComments"
	AparFieldReviewerScore    AparField = "reviewerScore"
	AparFieldStatus           AparField = "status"
)
