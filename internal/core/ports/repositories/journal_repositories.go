package repositories

import (
	"context"
	"time"

	"github.com/accuflow/accuflow/internal/core/domain"
)

// JournalFilter restricts journal listings.
type JournalFilter struct {
	// Date matches journals dated exactly on the given day.
	Date *time.Time
	// Query free-text matches the journal description or the name of any
	// account referenced by its lines.
	Query string
}

// JournalRepository defines persistence operations for journals and their
// transaction lines. Both save variants commit header and lines as one
// database transaction; on failure nothing is visible.
type JournalRepository interface {
	// SaveJournal inserts a new journal header together with its lines.
	SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.Transaction) error

	// ReplaceJournal updates the header and replaces the full line set
	// (delete-then-insert, never an incremental diff). Returns
	// apperrors.ErrNotFound when the journal does not exist.
	ReplaceJournal(ctx context.Context, journal domain.Journal, lines []domain.Transaction) error

	// FindJournalByID retrieves a journal header without its lines.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindTransactionsByJournalID retrieves all lines of a journal.
	FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error)

	// ListJournals retrieves a filtered page of journal headers ordered by
	// (journal_date DESC, created_at DESC) with cursor pagination.
	ListJournals(ctx context.Context, filter JournalFilter, limit int, nextToken *string) ([]domain.Journal, *string, error)

	// DeleteJournal removes the journal and all of its lines atomically.
	DeleteJournal(ctx context.Context, journalID string) error
}
