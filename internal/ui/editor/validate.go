package editor

import (
	"sort"
	"strings"
	"time"

	"permits/internal/domain/permissions"
)

type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type validator struct {
	issues []Issue
}

func (v *validator) add(field, reason string) {
	v.issues = append(v.issues, Issue{Field: field, Reason: reason})
}

func (v *validator) required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, reason)
	}
}

func (v *validator) date(field, raw string) (time.Time, bool) {
	parsed, err := permissions.ParseDate(strings.TrimSpace(raw))
	if err != nil || parsed.IsZero() {
		v.add(field, "must be a valid date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return parsed, true
}

func (v *validator) knownType(field string, id int64, types []permissions.PermissionType) {
	if len(types) == 0 {
		// Catalog never arrived; the selector could not offer anything
		// better than the default, so membership is not enforced.
		if id <= 0 {
			v.add(field, "a permission type is required")
		}
		return
	}
	for _, t := range types {
		if t.ID == id {
			return
		}
	}
	v.add(field, "must be one of the loaded permission types")
}

func (v *validator) list() []Issue {
	if len(v.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}
