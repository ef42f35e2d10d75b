package domain

// EventKind classifies a ledger row and the inner event that produced it.
type EventKind string

const (
	// EventKindAppMention is a message that mentions the bot.
	EventKindAppMention EventKind = "app_mention"
	// EventKindMessage is a plain message; only direct-message channels are handled.
	EventKindMessage EventKind = "message"
	// EventKindAwaitingSelection marks pending-selection rows. It never comes
	// from the platform.
	EventKindAwaitingSelection EventKind = "awaiting_selection"
	// EventKindInteraction marks audit rows created for interactions whose
	// originating message has no ledger row.
	EventKindInteraction EventKind = "interactive_response"
	// EventKindCommitClaim marks the single commit of a parked selection.
	EventKindCommitClaim EventKind = "commit_claim"
)

func (k EventKind) String() string { return string(k) }

// IsHandled reports whether inner events of this kind are processed.
func (k EventKind) IsHandled() bool {
	switch k {
	case EventKindAppMention, EventKindMessage:
		return true
	}
	return false
}

// EnvelopeKind is the outer discriminator of an inbound event webhook.
type EnvelopeKind string

const (
	EnvelopeURLVerification EnvelopeKind = "url_verification"
	EnvelopeEventCallback   EnvelopeKind = "event_callback"
)

func (k EnvelopeKind) String() string { return string(k) }

func (k EnvelopeKind) IsValid() bool {
	switch k {
	case EnvelopeURLVerification, EnvelopeEventCallback:
		return true
	}
	return false
}

// InteractionType is the discriminator of an inbound interaction webhook.
type InteractionType string

const (
	InteractionBlockActions   InteractionType = "block_actions"
	InteractionViewSubmission InteractionType = "view_submission"
)

func (t InteractionType) String() string { return string(t) }

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionBlockActions, InteractionViewSubmission:
		return true
	}
	return false
}

// ChannelTypeIM is the channel type of a direct-message conversation.
const ChannelTypeIM = "im"
