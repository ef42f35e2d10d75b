package domain

import (
	"time"

	"github.com/google/uuid"
)

// Actor is a chat-platform user, auto-vivified on first reference.
type Actor struct {
	ID          uuid.UUID
	ExternalID  string
	DisplayName *string
	Timezone    string
	IsBot       bool
	RefreshedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NeedsRefresh reports whether the directory data is older than interval.
func (a *Actor) NeedsRefresh(now time.Time, interval time.Duration) bool {
	return now.Sub(a.RefreshedAt) >= interval
}

// Name returns the display name, falling back to the external id.
func (a *Actor) Name() string {
	if a.DisplayName != nil && *a.DisplayName != "" {
		return *a.DisplayName
	}
	return a.ExternalID
}

// Location parses the actor timezone, returning UTC as fallback.
func (a *Actor) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DirectoryProfile is what the platform directory knows about a user.
type DirectoryProfile struct {
	ExternalID  string
	DisplayName string
	Timezone    string
	IsBot       bool
	Deleted     bool
}
