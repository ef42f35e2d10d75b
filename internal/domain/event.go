package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Prefixes of derived ledger event identifiers.
const (
	PendingEventIDPrefix     = "pending_"
	InteractionEventIDPrefix = "interactive_"
	CommitEventIDPrefix      = "commit_"
)

// EventRecord is a ledger row: a processed-event marker, a pending selection,
// or an interaction audit record.
type EventRecord struct {
	ID             uuid.UUID
	EventID        *string
	Kind           EventKind
	CorrelationKey *string
	ChannelID      *string
	ActorID        *string
	OriginalText   *string
	PendingData    []byte
	CreatedAt      time.Time
}

// InboundEvent is the normalized inner event of an event_callback envelope.
type InboundEvent struct {
	EventID     string
	Kind        EventKind
	ActorID     string
	ChannelID   string
	ChannelType string
	MessageTS   string
	Text        string
	BotID       string
	Subtype     string
}

// IsAutomated reports whether the event was produced by an automated account.
func (e InboundEvent) IsAutomated() bool {
	return e.BotID != ""
}

// PartialEntry is a work entry still missing its category.
type PartialEntry struct {
	ActorID string  `json:"user_id"`
	Minutes int     `json:"minutes"`
	Date    string  `json:"date"`
	Notes   *string `json:"notes,omitempty"`
}

// WithCategory completes the entry under the given category name.
func (p PartialEntry) WithCategory(category string) (WorkEntry, error) {
	date, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return WorkEntry{}, fmt.Errorf("partial entry date %q: %w", p.Date, err)
	}
	return WorkEntry{
		ActorID:  p.ActorID,
		Category: category,
		Minutes:  p.Minutes,
		Date:     date,
		Notes:    p.Notes,
	}, nil
}

// PendingSelection is the payload parked in the ledger while the actor picks
// a category.
type PendingSelection struct {
	Entries           []PartialEntry `json:"entries"`
	SuggestedCategory string         `json:"suggested_category"`
	OriginalText      string         `json:"original_text,omitempty"`
}

// Encode serializes the payload for storage.
func (p PendingSelection) Encode() ([]byte, error) {
	if p.Entries == nil {
		p.Entries = []PartialEntry{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode pending selection: %w", err)
	}
	return data, nil
}

// DecodePendingSelection parses a stored payload. Empty or malformed input
// yields ErrContextLost.
func DecodePendingSelection(data []byte) (PendingSelection, error) {
	if len(data) == 0 {
		return PendingSelection{}, fmt.Errorf("empty payload: %w", ErrContextLost)
	}
	var p PendingSelection
	if err := json.Unmarshal(data, &p); err != nil {
		return PendingSelection{}, fmt.Errorf("decode pending selection: %v: %w", err, ErrContextLost)
	}
	return p, nil
}

// CompleteEntries applies the chosen category to every parked entry.
func (p PendingSelection) CompleteEntries(category string) ([]WorkEntry, error) {
	entries := make([]WorkEntry, 0, len(p.Entries))
	for _, pe := range p.Entries {
		e, err := pe.WithCategory(category)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// EventMarker describes a processed-event marker to record in the ledger.
type EventMarker struct {
	EventID        string
	Kind           EventKind
	CorrelationKey string
	ChannelID      string
	ActorID        string
	OriginalText   string
}

// PendingRecord describes a pending selection to park in the ledger.
type PendingRecord struct {
	CorrelationKey string
	ChannelID      string
	ActorID        string
	OriginalText   string
	Payload        []byte
}
