package worklog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// CommitInput is one message worth of entries.
type CommitInput struct {
	Entries       []domain.WorkEntry
	SubmittedBy   string
	EventRecordID *uuid.UUID
}

// Validate checks every entry before anything is written.
func (i CommitInput) Validate() error {
	verr := new(domain.ValidationError)
	if len(i.Entries) == 0 {
		verr.Add("entries", "at least one entry is required")
	}
	if strings.TrimSpace(i.SubmittedBy) == "" {
		verr.Add("submitted_by", "required")
	}
	for _, e := range i.Entries {
		if strings.TrimSpace(e.ActorID) == "" {
			verr.Add("entries.user_id", "required")
		}
		if e.Minutes <= 0 {
			verr.Add("entries.minutes", "must be positive")
		}
		if domain.NormalizeCategoryName(e.Category) == "" {
			verr.Add("entries.project", "required")
		}
		if e.Date.IsZero() {
			verr.Add("entries.date", "required")
		}
	}
	return verr.OrNil()
}
