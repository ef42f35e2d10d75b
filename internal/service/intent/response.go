package intent

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// modelResponse is the JSON object the model is instructed to produce.
type modelResponse struct {
	Entries              []modelEntry `json:"entries"`
	NeedsClarification   bool         `json:"needs_clarification"`
	SuggestedProjectName *string      `json:"suggested_project_name"`
	UnknownUserMentions  []string     `json:"unknown_user_mentions"`
	Error                *string      `json:"error"`
}

type modelEntry struct {
	UserID            string  `json:"user_id"`
	Minutes           float64 `json:"minutes"`
	Project           string  `json:"project"`
	ProjectConfidence *int    `json:"project_confidence"`
	Date              string  `json:"date"`
	Notes             *string `json:"notes"`
}

func (e modelEntry) confidence() int {
	if e.ProjectConfidence == nil {
		return 0
	}
	return *e.ProjectConfidence
}

var fencePattern = regexp.MustCompile("(?m)^```(?:json)?\\s*|\\s*```$")

// parseModelResponse strips markdown fences and decodes the first JSON object
// in text.
func parseModelResponse(text string) (*modelResponse, error) {
	cleaned := fencePattern.ReplaceAllString(strings.TrimSpace(text), "")

	jsonStr, err := extractJSON(cleaned)
	if err != nil {
		return nil, err
	}

	var resp modelResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}
	return &resp, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
