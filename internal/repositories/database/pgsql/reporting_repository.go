package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/accuflow/accuflow/internal/core/domain"
	portsrepo "github.com/accuflow/accuflow/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for reporting aggregations.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAccountTotals sums debit and credit over the account's posted lines.
// Draft journals never contribute.
func (r *PgxReportingRepository) GetAccountTotals(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.debit), 0), COALESCE(SUM(t.credit), 0)
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE t.account_id = $1 AND j.status = 'POSTED'
	`
	args := []any{accountID}
	if asOf != nil {
		query += ` AND j.journal_date <= $2`
		args = append(args, *asOf)
	}

	var totalDebit, totalCredit decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&totalDebit, &totalCredit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, decimal.Zero, nil
		}
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum totals for account %s: %w", accountID, err)
	}
	return totalDebit, totalCredit, nil
}

// GetAllAccountTotals returns per-account posted debit/credit sums for every
// account, including accounts with no posted activity up to asOf, which come
// back with zero sums. The status filter lives inside the joined subquery so
// inactive accounts survive the left join.
func (r *PgxReportingRepository) GetAllAccountTotals(ctx context.Context, asOf *time.Time) ([]domain.AccountTotals, error) {
	posted := `
		SELECT t.account_id, t.debit, t.credit
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE j.status = 'POSTED'
	`
	args := []any{}
	if asOf != nil {
		posted += ` AND j.journal_date <= $1`
		args = append(args, *asOf)
	}
	query := `
		SELECT a.account_id, a.name, a.account_type,
		       COALESCE(SUM(p.debit), 0), COALESCE(SUM(p.credit), 0)
		FROM accounts a
		LEFT JOIN (` + posted + `) p ON p.account_id = a.account_id
		GROUP BY a.account_id, a.name, a.account_type
		ORDER BY a.account_type, a.name;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query account totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.AccountTotals{}
	for rows.Next() {
		var t domain.AccountTotals
		err := rows.Scan(&t.AccountID, &t.Name, &t.AccountType, &t.TotalDebit, &t.TotalCredit)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account totals row: %w", err)
		}
		totals = append(totals, t)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", rows.Err())
	}

	return totals, nil
}

// GetLedgerLines returns an account's posted lines joined with their journal
// headers in replay order.
func (r *PgxReportingRepository) GetLedgerLines(ctx context.Context, accountID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT j.journal_id, j.journal_date, j.description, t.debit, t.credit
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE t.account_id = $1 AND j.status = 'POSTED'
	`
	args := []any{accountID}
	argPos := 2
	if from != nil {
		query += fmt.Sprintf(` AND j.journal_date >= $%d`, argPos)
		args = append(args, *from)
		argPos++
	}
	if to != nil {
		query += fmt.Sprintf(` AND j.journal_date <= $%d`, argPos)
		args = append(args, *to)
		argPos++
	}
	query += ` ORDER BY j.journal_date, j.created_at, t.created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines for account %s: %w", accountID, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var l domain.LedgerLine
		err := rows.Scan(&l.JournalID, &l.JournalDate, &l.Description, &l.Debit, &l.Credit)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger line row: %w", err)
		}
		lines = append(lines, l)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger line rows: %w", rows.Err())
	}

	return lines, nil
}
