package intent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// Extract asks the model for work entries in req.Text and classifies the
// answer. Outcomes are checked in order: failure, unknown actors, missing
// category, entries. Extract never returns an error; every failure becomes an
// ExtractionFailed result with a user-facing message.
func (s *Service) Extract(ctx context.Context, req domain.ExtractionRequest) domain.Extraction {
	botID, err := s.bot.BotUserID(ctx)
	if err != nil {
		return s.failed(ctx, MsgInternal, fmt.Errorf("bot identity: %w", err))
	}

	projects, err := s.categories.ListNames(ctx)
	if err != nil {
		return s.failed(ctx, MsgInternal, fmt.Errorf("list categories: %w", err))
	}

	loc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		loc = time.UTC
	}
	system := buildSystemPrompt(s.now(), loc, req.RequestingActor, projects)

	text, err := s.llm.Complete(ctx, system, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return s.failed(ctx, MsgUnavailable, err)
		}
		return s.failed(ctx, MsgInternal, err)
	}

	if strings.TrimSpace(text) == "" {
		return s.failed(ctx, MsgEmptyResponse, errors.New("empty model response"))
	}

	resp, err := parseModelResponse(text)
	if err != nil {
		s.log.DebugContext(ctx, "raw model response", slog.String("text", text))
		return s.failed(ctx, MsgBadResponse, err)
	}

	if resp.Error != nil && *resp.Error != "" && len(resp.Entries) == 0 {
		return s.failed(ctx, *resp.Error, errors.New("model reported an error"))
	}

	entries := withoutBot(resp.Entries, botID, req.RequestingActor)

	unknown, err := s.unknownActors(ctx, entries, resp.UnknownUserMentions, botID)
	if err != nil {
		return s.failed(ctx, MsgInternal, err)
	}
	if len(unknown) > 0 {
		return domain.Extraction{Kind: domain.ExtractionUnknownActors, UnknownActors: unknown}
	}

	if len(entries) == 0 {
		return s.failed(ctx, MsgNothingToLog, errors.New("no entries in model response"))
	}

	if err := checkDurations(entries); err != nil {
		s.log.DebugContext(ctx, "raw model response", slog.String("text", text))
		return s.failed(ctx, MsgBadResponse, err)
	}

	if s.needsCategory(resp, entries) {
		partial, err := toPartial(entries)
		if err != nil {
			return s.failed(ctx, MsgInternal, err)
		}
		suggested := ""
		if resp.SuggestedProjectName != nil {
			suggested = strings.TrimSpace(*resp.SuggestedProjectName)
		}
		return domain.Extraction{
			Kind:              domain.ExtractionNeedsCategory,
			Partial:           partial,
			SuggestedCategory: suggested,
		}
	}

	out, err := toWorkEntries(entries)
	if err != nil {
		return s.failed(ctx, MsgInternal, err)
	}

	s.log.DebugContext(ctx, "entries extracted",
		slog.String("actor", req.RequestingActor),
		slog.Int("count", len(out)),
	)
	return domain.Extraction{Kind: domain.ExtractionEntries, Entries: out}
}

func (s *Service) needsCategory(resp *modelResponse, entries []modelEntry) bool {
	if resp.NeedsClarification {
		return true
	}
	for _, e := range entries {
		if e.confidence() < s.threshold || strings.TrimSpace(e.Project) == "" {
			return true
		}
	}
	return false
}

// unknownActors collects mentions the model could not map plus entry actors
// that are not live users. Order of first appearance is kept.
func (s *Service) unknownActors(ctx context.Context, entries []modelEntry, mentions []string, botID string) ([]string, error) {
	seen := make(map[string]bool)
	var unknown []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			unknown = append(unknown, id)
		}
	}

	for _, m := range mentions {
		if m = strings.TrimSpace(m); m != "" && m != botID {
			add(m)
		}
	}

	checked := make(map[string]bool)
	for _, e := range entries {
		if checked[e.UserID] {
			continue
		}
		checked[e.UserID] = true

		ok, err := s.actors.IsValid(ctx, e.UserID)
		if err != nil {
			return nil, fmt.Errorf("validate actor %s: %w", e.UserID, err)
		}
		if !ok {
			add(e.UserID)
		}
	}
	return unknown, nil
}

// withoutBot drops entries naming the bot and fills missing actors with the
// requesting actor.
func withoutBot(entries []modelEntry, botID, requestingActor string) []modelEntry {
	out := make([]modelEntry, 0, len(entries))
	for _, e := range entries {
		e.UserID = strings.TrimSpace(e.UserID)
		if e.UserID == "" {
			e.UserID = requestingActor
		}
		if e.UserID == botID {
			continue
		}
		out = append(out, e)
	}
	return out
}

func toPartial(entries []modelEntry) ([]domain.PartialEntry, error) {
	out := make([]domain.PartialEntry, 0, len(entries))
	for _, e := range entries {
		if _, err := time.Parse(domain.DateLayout, e.Date); err != nil {
			return nil, fmt.Errorf("entry date %q: %w", e.Date, err)
		}
		out = append(out, domain.PartialEntry{
			ActorID: e.UserID,
			Minutes: minutes(e.Minutes),
			Date:    e.Date,
			Notes:   e.Notes,
		})
	}
	return out, nil
}

func toWorkEntries(entries []modelEntry) ([]domain.WorkEntry, error) {
	out := make([]domain.WorkEntry, 0, len(entries))
	for _, e := range entries {
		date, err := time.Parse(domain.DateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("entry date %q: %w", e.Date, err)
		}
		out = append(out, domain.WorkEntry{
			ActorID:  e.UserID,
			Category: strings.TrimSpace(e.Project),
			Minutes:  minutes(e.Minutes),
			Date:     date,
			Notes:    e.Notes,
		})
	}
	return out, nil
}

// checkDurations rejects entries whose duration rounds to zero or less. Such
// an entry can neither be committed nor parked for a later selection.
func checkDurations(entries []modelEntry) error {
	for _, e := range entries {
		if minutes(e.Minutes) <= 0 {
			return fmt.Errorf("entry for %s: non-positive minutes %v", e.UserID, e.Minutes)
		}
	}
	return nil
}

func minutes(v float64) int {
	return int(math.Round(v))
}
