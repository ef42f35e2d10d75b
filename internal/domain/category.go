package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups work units, e.g. a project. Names are unique
// case-insensitively.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NormalizeCategoryName trims surrounding whitespace.
func NormalizeCategoryName(name string) string {
	return strings.TrimSpace(name)
}
