package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accuflow/accuflow/internal/apperrors"
	"github.com/accuflow/accuflow/internal/core/domain"
	portsrepo "github.com/accuflow/accuflow/internal/core/ports/repositories"
	"github.com/accuflow/accuflow/internal/models"
	"github.com/accuflow/accuflow/internal/utils/mapping"
	"github.com/accuflow/accuflow/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, journal_date, description, status, created_at, last_updated_at`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.JournalDate,
		&m.Description,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, journal_id, account_id, debit, credit, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// queueLineInserts batches one insert per line onto the transaction.
func queueLineInserts(batch *pgx.Batch, lines []domain.Transaction) {
	for _, line := range lines {
		m := mapping.ToModelTransaction(line)
		batch.Queue(insertTransactionQuery,
			m.TransactionID,
			m.JournalID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.CreatedAt,
			m.LastUpdatedAt,
		)
	}
}

func execBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = err
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = err
	}
	return batchErr
}

// SaveJournal inserts a new journal header together with its lines in a
// single database transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	modelJournal := mapping.ToModelJournal(journal)
	insertJournal := `
		INSERT INTO journals (journal_id, journal_date, description, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, insertJournal,
		modelJournal.JournalID,
		modelJournal.JournalDate,
		modelJournal.Description,
		modelJournal.Status,
		modelJournal.CreatedAt,
		modelJournal.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal %s: %w", modelJournal.JournalID, err)
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	if err := execBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("failed to insert lines for journal %s: %w", modelJournal.JournalID, err)
	}

	return r.Commit(ctx, tx)
}

// ReplaceJournal updates the journal header and replaces its full line set.
// Old lines are deleted outright; the new set is inserted with fresh IDs.
func (r *PgxJournalRepository) ReplaceJournal(ctx context.Context, journal domain.Journal, lines []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	modelJournal := mapping.ToModelJournal(journal)
	updateJournal := `
		UPDATE journals
		SET journal_date = $2, description = $3, status = $4, last_updated_at = $5
		WHERE journal_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, updateJournal,
		modelJournal.JournalID,
		modelJournal.JournalDate,
		modelJournal.Description,
		modelJournal.Status,
		modelJournal.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal %s: %w", modelJournal.JournalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE journal_id = $1;`, modelJournal.JournalID); err != nil {
		return fmt.Errorf("failed to delete old lines for journal %s: %w", modelJournal.JournalID, err)
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	if err := execBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("failed to insert lines for journal %s: %w", modelJournal.JournalID, err)
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal header without its lines.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journals
		WHERE journal_id = $1;
	`
	modelJournal, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}

	domainJournal := mapping.ToDomainJournal(modelJournal)
	return &domainJournal, nil
}

// FindTransactionsByJournalID retrieves all lines of a journal.
func (r *PgxJournalRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, journal_id, account_id, debit, credit, created_at, last_updated_at
		FROM transactions
		WHERE journal_id = $1
		ORDER BY created_at, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.JournalID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line row for journal %s: %w", journalID, err)
		}
		txns = append(txns, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating line rows for journal %s: %w", journalID, rows.Err())
	}

	return mapping.ToDomainTransactionSlice(txns), nil
}

// ListJournals retrieves a filtered page of journal headers ordered by
// (journal_date DESC, created_at DESC), using a keyset cursor.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, filter portsrepo.JournalFilter, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journals j
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if filter.Date != nil {
		query += fmt.Sprintf(` AND j.journal_date = $%d`, argPos)
		args = append(args, *filter.Date)
		argPos++
	}
	if filter.Query != "" {
		// Free text matches the description or any referenced account's name.
		query += fmt.Sprintf(` AND (j.description ILIKE '%%' || $%d || '%%'
			OR EXISTS (
				SELECT 1 FROM transactions t
				JOIN accounts a ON a.account_id = t.account_id
				WHERE t.journal_id = j.journal_id AND a.name ILIKE '%%' || $%d || '%%'
			))`, argPos, argPos)
		args = append(args, filter.Query)
		argPos++
	}
	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(` AND (j.journal_date, j.created_at) < ($%d, $%d)`, argPos, argPos+1)
		args = append(args, cursorDate, cursorCreatedAt)
		argPos += 2
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY j.journal_date DESC, j.created_at DESC LIMIT $%d;`, argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, mapping.ToDomainJournal(m))
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating journal rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(journals) > limit {
		journals = journals[:limit]
		last := journals[len(journals)-1]
		token := pagination.EncodeToken(last.JournalDate, last.CreatedAt)
		newNextToken = &token
	}

	return journals, newNextToken, nil
}

// DeleteJournal removes the journal and its lines in one transaction.
func (r *PgxJournalRepository) DeleteJournal(ctx context.Context, journalID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	// The FK on transactions cascades, but the delete is kept explicit so the
	// intent survives a schema change.
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE journal_id = $1;`, journalID); err != nil {
		return fmt.Errorf("failed to delete lines for journal %s: %w", journalID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM journals WHERE journal_id = $1;`, journalID)
	if err != nil {
		return fmt.Errorf("failed to delete journal %s: %w", journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
