package worklog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// Commit stores every entry as a work unit in one transaction and returns
// the number of units created. recordID, when set, tags every unit with the
// ledger record that caused it. Actors are resolved first so no directory
// call happens while the transaction is open; categories are auto-created by
// name.
func (s *Service) Commit(ctx context.Context, entries []domain.WorkEntry, submittedBy string, recordID *uuid.UUID) (int, error) {
	n, _, err := s.commit(ctx, CommitInput{Entries: entries, SubmittedBy: submittedBy, EventRecordID: recordID}, "")
	return n, err
}

// CommitOnce is Commit guarded by a ledger claim on key. The claim is inserted
// in the same transaction as the units, so of any number of concurrent calls
// for one key exactly one stores units; the rest return committed=false
// without writing. A failed commit releases the claim with the rollback.
func (s *Service) CommitOnce(ctx context.Context, key string, entries []domain.WorkEntry, submittedBy string, recordID *uuid.UUID) (n int, committed bool, err error) {
	if key == "" {
		return 0, false, domain.NewValidationError("key", "required")
	}
	return s.commit(ctx, CommitInput{Entries: entries, SubmittedBy: submittedBy, EventRecordID: recordID}, key)
}

func (s *Service) commit(ctx context.Context, in CommitInput, claimKey string) (int, bool, error) {
	if err := in.Validate(); err != nil {
		return 0, false, err
	}

	actorIDs := make(map[string]uuid.UUID, len(in.Entries))
	for _, e := range in.Entries {
		if _, ok := actorIDs[e.ActorID]; ok {
			continue
		}
		a, err := s.actors.Resolve(ctx, e.ActorID)
		if err != nil {
			return 0, false, fmt.Errorf("resolve actor %s: %w", e.ActorID, err)
		}
		actorIDs[e.ActorID] = a.ID
	}

	created := 0
	claimed := true
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if claimKey != "" {
			// Blocks on the unique event_id until a concurrent claimant
			// commits or rolls back.
			_, ok, err := s.claims.RecordIfNew(ctx, domain.EventMarker{
				EventID: domain.CommitEventIDPrefix + claimKey,
				Kind:    domain.EventKindCommitClaim,
				ActorID: in.SubmittedBy,
			})
			if err != nil {
				return fmt.Errorf("claim commit %s: %w", claimKey, err)
			}
			if !ok {
				claimed = false
				return nil
			}
		}

		categoryIDs := make(map[string]uuid.UUID)
		for _, e := range in.Entries {
			name := domain.NormalizeCategoryName(e.Category)
			key := strings.ToLower(name)
			catID, ok := categoryIDs[key]
			if !ok {
				cat, err := s.categories.FindOrCreate(ctx, name)
				if err != nil {
					return fmt.Errorf("category %q: %w", name, err)
				}
				catID = cat.ID
				categoryIDs[key] = catID
			}

			_, err := s.units.Create(ctx, domain.WorkUnit{
				ActorID:       actorIDs[e.ActorID],
				CategoryID:    catID,
				Minutes:       e.Minutes,
				Date:          e.Date,
				Notes:         e.Notes,
				SubmittedBy:   in.SubmittedBy,
				EventRecordID: in.EventRecordID,
			})
			if err != nil {
				return fmt.Errorf("create work unit for %s: %w", e.ActorID, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	if !claimed {
		s.log.InfoContext(ctx, "commit already claimed", slog.String("key", claimKey))
		return 0, false, nil
	}

	s.log.InfoContext(ctx, "work units committed",
		slog.String("submitted_by", in.SubmittedBy),
		slog.Int("count", created),
	)
	return created, true, nil
}
