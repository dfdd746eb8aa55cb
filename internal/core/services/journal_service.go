package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accuflow/accuflow/internal/apperrors"
	"github.com/accuflow/accuflow/internal/core/domain"
	portsrepo "github.com/accuflow/accuflow/internal/core/ports/repositories"
	portssvc "github.com/accuflow/accuflow/internal/core/ports/services"
	"github.com/accuflow/accuflow/internal/dto"
	"github.com/accuflow/accuflow/internal/utils/accounting"
)

const defaultJournalPageSize = 20

// journalServiceImpl implements the JournalService interface
type journalServiceImpl struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewJournalServiceImpl creates a new journal service
func NewJournalServiceImpl(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.JournalService {
	return &journalServiceImpl{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure journalServiceImpl implements the JournalService interface
var _ portssvc.JournalService = (*journalServiceImpl)(nil)

// validateSubmission runs the full posting pipeline over a submission and
// returns the surviving validated lines. Blank rows are discarded, every
// remaining line is checked individually, the two-line minimum applies to
// drafts and postings alike, and the balance invariant applies to postings
// only.
func (s *journalServiceImpl) validateSubmission(ctx context.Context, req dto.SubmitJournalRequest) (time.Time, domain.JournalStatus, []domain.LineCandidate, error) {
	journalDate, err := req.ParsedDate()
	if err != nil {
		return time.Time{}, "", nil, fmt.Errorf("invalid journal date %q: %w", req.Date, apperrors.ErrValidation)
	}

	status := domain.JournalStatus(req.Status)
	if !status.IsValid() {
		return time.Time{}, "", nil, fmt.Errorf("unknown journal status %q: %w", req.Status, apperrors.ErrValidation)
	}

	lines := accounting.CleanLines(req.ToLineCandidates())
	for _, l := range lines {
		if err := accounting.ValidateLine(l); err != nil {
			return time.Time{}, "", nil, err
		}
	}

	if len(lines) < 2 {
		return time.Time{}, "", nil, fmt.Errorf("got %d valid line(s): %w", len(lines), apperrors.ErrInsufficientLines)
	}

	// Every referenced account must exist before anything is written.
	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		accountIDs = append(accountIDs, l.AccountID)
	}
	found, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return time.Time{}, "", nil, fmt.Errorf("failed to resolve line accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, ok := found[id]; !ok {
			return time.Time{}, "", nil, fmt.Errorf("%w: account %s does not exist", apperrors.ErrInvalidLine, id)
		}
	}

	if status == domain.Posted {
		totalDebit, totalCredit := accounting.SumLines(lines)
		if err := accounting.CheckBalanced(totalDebit, totalCredit); err != nil {
			return time.Time{}, "", nil, err
		}
	}

	return journalDate, status, lines, nil
}

func buildTransactions(journalID string, lines []domain.LineCandidate, now time.Time) []domain.Transaction {
	txns := make([]domain.Transaction, len(lines))
	for i, l := range lines {
		txns[i] = domain.Transaction{
			TransactionID: uuid.NewString(),
			JournalID:     journalID,
			AccountID:     l.AccountID,
			Debit:         l.Debit,
			Credit:        l.Credit,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}
	return txns
}

func (s *journalServiceImpl) SubmitJournal(ctx context.Context, req dto.SubmitJournalRequest) (*domain.Journal, error) {
	journalDate, status, lines, err := s.validateSubmission(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Journal submission rejected")
		return nil, err
	}

	now := time.Now()
	journal := domain.Journal{
		JournalID:   uuid.NewString(),
		JournalDate: journalDate,
		Description: req.Description,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	txns := buildTransactions(journal.JournalID, lines, now)

	if err := s.journalRepo.SaveJournal(ctx, journal, txns); err != nil {
		s.LogError(ctx, err, "Failed to save journal", slog.String("journal_id", journal.JournalID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	journal.Transactions = txns
	s.LogInfo(ctx, "Journal created",
		slog.String("journal_id", journal.JournalID),
		slog.String("status", string(journal.Status)),
		slog.Int("line_count", len(txns)))
	return &journal, nil
}

// ResubmitJournal re-validates a submission against an existing journal and
// replaces its full line set. Lines get fresh identities; nothing of the old
// set survives.
func (s *journalServiceImpl) ResubmitJournal(ctx context.Context, journalID string, req dto.SubmitJournalRequest) (*domain.Journal, error) {
	existing, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find journal for resubmission", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	journalDate, status, lines, err := s.validateSubmission(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Journal resubmission rejected", slog.String("journal_id", journalID))
		return nil, err
	}

	now := time.Now()
	journal := domain.Journal{
		JournalID:   existing.JournalID,
		JournalDate: journalDate,
		Description: req.Description,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			LastUpdatedAt: now,
		},
	}
	txns := buildTransactions(journal.JournalID, lines, now)

	if err := s.journalRepo.ReplaceJournal(ctx, journal, txns); err != nil {
		s.LogError(ctx, err, "Failed to replace journal", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to replace journal %s: %w", journalID, err)
	}

	journal.Transactions = txns
	s.LogInfo(ctx, "Journal replaced",
		slog.String("journal_id", journal.JournalID),
		slog.String("status", string(journal.Status)),
		slog.Int("line_count", len(txns)))
	return &journal, nil
}

func (s *journalServiceImpl) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find journal", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	txns, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal lines", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to load lines for journal %s: %w", journalID, err)
	}
	journal.Transactions = txns
	return journal, nil
}

func (s *journalServiceImpl) ListJournals(ctx context.Context, params dto.ListJournalsParams) ([]domain.Journal, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalPageSize
	}

	filter := portsrepo.JournalFilter{
		Date:  params.Date,
		Query: params.Query,
	}
	journals, nextToken, err := s.journalRepo.ListJournals(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals")
		return nil, nil, fmt.Errorf("failed to list journals: %w", err)
	}
	return journals, nextToken, nil
}

func (s *journalServiceImpl) DeleteJournal(ctx context.Context, journalID string) error {
	if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to find journal for deletion", slog.String("journal_id", journalID))
		return fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	if err := s.journalRepo.DeleteJournal(ctx, journalID); err != nil {
		s.LogError(ctx, err, "Failed to delete journal", slog.String("journal_id", journalID))
		return fmt.Errorf("failed to delete journal %s: %w", journalID, err)
	}

	s.LogInfo(ctx, "Journal deleted", slog.String("journal_id", journalID))
	return nil
}
