package scoring

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Status is the canonical lifecycle state of a KPI.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAtRisk     Status = "at_risk"
)

var ErrUnknownStatus = errors.New("unknown kpi status")

// legacy spellings seen in imported data, keyed by normalized form
var statusAliases = map[string]Status{
	"not_started": StatusNotStarted,
	"notstarted":  StatusNotStarted,
	"pending":     StatusNotStarted,
	"in_progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"completed":   StatusCompleted,
	"complete":    StatusCompleted,
	"done":        StatusCompleted,
	"at_risk":     StatusAtRisk,
	"atrisk":      StatusAtRisk,
}

var statusKeyReplacer = strings.NewReplacer(" ", "_", "-", "_")

// ParseStatus maps any accepted spelling ("Completed", "done", "In Progress",
// "Pending", ...) to its canonical Status.
func ParseStatus(raw string) (Status, error) {
	key := norm.NFKC.String(strings.TrimSpace(raw))
	key = statusKeyReplacer.Replace(strings.ToLower(key))
	if s, ok := statusAliases[key]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusAtRisk:
		return true
	}
	return false
}

// Scan normalises legacy spellings on read so that no code path ever sees
// a non-canonical status. A spelling nobody recognises reads as
// StatusNotStarted and is logged, so one bad row cannot fail a whole list.
func (s *Status) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*s = StatusNotStarted
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan kpi status: unsupported type %T", src)
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		zap.L().Named("scoring").Warn("unknown stored kpi status, reading as not_started",
			zap.String("raw_status", raw),
		)
		*s = StatusNotStarted
		return nil
	}
	*s = parsed
	return nil
}

func (s Status) Value() (driver.Value, error) {
	if s == "" {
		return string(StatusNotStarted), nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return string(s), nil
}

// MatchingSpellings returns every stored spelling that normalises to s.
// Used to build case-insensitive storage filters for legacy rows.
func MatchingSpellings(s Status) []string {
	seen := map[string]struct{}{}
	for k, v := range statusAliases {
		if v != s {
			continue
		}
		seen[k] = struct{}{}
		if strings.Contains(k, "_") {
			seen[strings.ReplaceAll(k, "_", " ")] = struct{}{}
			seen[strings.ReplaceAll(k, "_", "-")] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
