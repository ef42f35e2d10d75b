package domain

// ExtractionKind is the closed set of intent-extraction outcomes.
type ExtractionKind int

const (
	ExtractionFailed ExtractionKind = iota
	ExtractionEntries
	ExtractionNeedsCategory
	ExtractionUnknownActors
)

func (k ExtractionKind) String() string {
	switch k {
	case ExtractionFailed:
		return "failed"
	case ExtractionEntries:
		return "entries"
	case ExtractionNeedsCategory:
		return "needs_category"
	case ExtractionUnknownActors:
		return "unknown_actors"
	}
	return "unknown"
}

// Extraction is the result of extracting work entries from free text.
// Only the fields belonging to Kind are populated.
type Extraction struct {
	Kind ExtractionKind

	// ExtractionEntries
	Entries []WorkEntry

	// ExtractionNeedsCategory
	Partial           []PartialEntry
	SuggestedCategory string

	// ExtractionFailed: a short user-facing message.
	Message string

	// ExtractionUnknownActors
	UnknownActors []string
}

// ExtractionRequest is the context handed to intent extraction.
type ExtractionRequest struct {
	Text            string
	Timezone        string
	RequestingActor string
}

// FailedExtraction builds an ExtractionFailed result.
func FailedExtraction(message string) Extraction {
	return Extraction{Kind: ExtractionFailed, Message: message}
}
