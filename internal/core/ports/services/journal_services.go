package services

import (
	"context"

	"github.com/accuflow/accuflow/internal/core/domain"
	"github.com/accuflow/accuflow/internal/dto"
)

// JournalService is the posting engine: it validates and commits journal
// submissions as one atomic unit.
type JournalService interface {
	// SubmitJournal validates the candidate lines and creates a new journal
	// in the requested target status. Posting enforces the balance invariant.
	SubmitJournal(ctx context.Context, req dto.SubmitJournalRequest) (*domain.Journal, error)

	// ResubmitJournal re-runs the same validation against an existing journal
	// and replaces its full line set. Line identity is not preserved.
	ResubmitJournal(ctx context.Context, journalID string, req dto.SubmitJournalRequest) (*domain.Journal, error)

	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, params dto.ListJournalsParams) ([]domain.Journal, *string, error)
	DeleteJournal(ctx context.Context, journalID string) error
}
