package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Identifiers shared by the category prompt, the create-category form and the
// interaction decoder.
const (
	SelectionBlockPrefix     = "project_selection_"
	SelectCategoryActionID   = "select_project"
	CreateCategoryValue      = "__NEW_PROJECT__"
	CreateCategoryCallbackID = "create_project_modal"
	CategoryNameBlockID      = "project_name_block"
	CategoryNameActionID     = "project_name_input"
)

// SelectionBlockID encodes a correlation key into a prompt block id.
func SelectionBlockID(correlationKey string) string {
	return SelectionBlockPrefix + correlationKey
}

// ParseSelectionBlockID recovers the correlation key from a block id.
func ParseSelectionBlockID(blockID string) (string, bool) {
	key, ok := strings.CutPrefix(blockID, SelectionBlockPrefix)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// FormMetadata is carried opaquely through the create-category form.
type FormMetadata struct {
	CorrelationKey string `json:"message_ts"`
	ChannelID      string `json:"channel_id,omitempty"`
}

// Encode serializes the metadata for the form's private_metadata field.
func (m FormMetadata) Encode() string {
	data, _ := json.Marshal(m)
	return string(data)
}

// DecodeFormMetadata parses private_metadata. A missing or garbled value
// yields ErrContextLost.
func DecodeFormMetadata(raw string) (FormMetadata, error) {
	var m FormMetadata
	if raw == "" {
		return m, fmt.Errorf("empty form metadata: %w", ErrContextLost)
	}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return m, fmt.Errorf("decode form metadata: %v: %w", err, ErrContextLost)
	}
	if m.CorrelationKey == "" {
		return m, fmt.Errorf("form metadata without correlation key: %w", ErrContextLost)
	}
	return m, nil
}

// Interaction is a normalized inbound user interaction.
type Interaction struct {
	Type      InteractionType
	ActorID   string
	ChannelID string
	TriggerID string

	// InteractionBlockActions
	ActionID      string
	BlockID       string
	SelectedValue string

	// InteractionViewSubmission
	CallbackID      string
	PrivateMetadata string
	SubmittedName   string
}

// InteractionResponse is the synchronous answer to an interaction. A nil
// response means an empty 200.
type InteractionResponse struct {
	// FieldErrors maps form block ids to messages for re-rendering the form.
	FieldErrors map[string]string
}

// HasErrors reports whether the response carries form field errors.
func (r *InteractionResponse) HasErrors() bool {
	return r != nil && len(r.FieldErrors) > 0
}
