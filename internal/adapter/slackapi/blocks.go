package slackapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/slack-go/slack"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

const (
	promptFallbackText = "Please select a project"
	createOptionLabel  = "➕ Create New Project"
)

// categoryPromptBlocks renders the selection prompt: a section naming the
// suggestion and a static select with every known category plus the
// create-new sentinel.
func categoryPromptBlocks(correlationKey, suggested string, categories []string) []slack.Block {
	text := "I'm not sure which project you meant. Please select one:"
	if suggested != "" {
		text = fmt.Sprintf("I'm not sure which project you meant (did you mean *%s*?). Please select one:", suggested)
	}

	names := append([]string(nil), categories...)
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	options := make([]*slack.OptionBlockObject, 0, len(names)+1)
	for _, name := range names {
		options = append(options, slack.NewOptionBlockObject(name, plainText(name), nil))
	}
	options = append(options, slack.NewOptionBlockObject(domain.CreateCategoryValue, plainText(createOptionLabel), nil))

	sel := slack.NewOptionsSelectBlockElement(
		slack.OptTypeStatic,
		plainText("Select a project..."),
		domain.SelectCategoryActionID,
		options...,
	)

	return []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil),
		slack.NewActionBlock(domain.SelectionBlockID(correlationKey), sel),
	}
}

// categoryFormView renders the create-category form pre-filled with the
// suggested name.
func categoryFormView(suggested string, meta domain.FormMetadata) slack.ModalViewRequest {
	input := slack.NewPlainTextInputBlockElement(plainText("Enter project name..."), domain.CategoryNameActionID)
	input.InitialValue = suggested

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      domain.CreateCategoryCallbackID,
		PrivateMetadata: meta.Encode(),
		Title:           plainText("Create New Project"),
		Submit:          plainText("Create"),
		Close:           plainText("Cancel"),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewInputBlock(domain.CategoryNameBlockID, plainText("Project name"), nil, input),
		}},
	}
}

func plainText(s string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, s, false, false)
}
