package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used on the wire and in payloads.
const DateLayout = "2006-01-02"

// WorkUnit is a committed unit of tracked activity.
type WorkUnit struct {
	ID            uuid.UUID
	ActorID       uuid.UUID
	CategoryID    uuid.UUID
	Minutes       int
	Date          time.Time
	Notes         *string
	SubmittedBy   string
	EventRecordID *uuid.UUID
	CreatedAt     time.Time
}

// Hours returns the duration in hours rounded to two decimals.
func (w WorkUnit) Hours() float64 {
	return math.Round(float64(w.Minutes)/60*100) / 100
}

// WorkEntry is a fully specified entry ready to be committed.
type WorkEntry struct {
	ActorID  string
	Category string
	Minutes  int
	Date     time.Time
	Notes    *string
}
