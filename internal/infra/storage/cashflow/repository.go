package cashflow

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/pkg/dbmetrics"
	"github.com/rmarins/MEI-AgendaService/pkg/psqlbuilder"
)

const entriesTable = "cashflow_entries"

var entryColumns = []string{
	"id",
	"type",
	"category",
	"description",
	"amount",
	"date",
	"invoice_id",
	"created_at",
}

// Repository stores cash flow entries in PostgreSQL.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the cash flow repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new entry.
func (r *Repository) Create(ctx context.Context, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(entriesTable).
		Columns("type", "category", "description", "amount", "date", "invoice_id").
		Values(
			entry.Type,
			entry.Category,
			entry.Description,
			entry.Amount,
			entry.Date,
			entry.InvoiceID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// List fetches entries for the period, newest first.
func (r *Repository) List(ctx context.Context, filter domain.CashFlowFilter) ([]*domain.CashFlowEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(entryColumns...).
		From(entriesTable).
		OrderBy("date DESC", "id DESC")

	selectBuilder = applyFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.CashFlowEntry, 0)
	for rows.Next() {
		var entry domain.CashFlowEntry
		var createdAt sql.NullTime

		err = rows.Scan(
			&entry.ID,
			&entry.Type,
			&entry.Category,
			&entry.Description,
			&entry.Amount,
			&entry.Date,
			&entry.InvoiceID,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan entry: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// Summarize aggregates the period into income, expense and balance in a
// single query.
func (r *Repository) Summarize(ctx context.Context, filter domain.CashFlowFilter) (*domain.CashFlowSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)",
		"COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)",
	).From(entriesTable)

	selectBuilder = applyFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Summarize - build select query: %v", ErrBuildQuery, err)
	}

	var summary domain.CashFlowSummary
	err = executor.QueryRowContext(ctx, query, args...).Scan(&summary.TotalIncome, &summary.TotalExpense)
	if err != nil {
		return nil, fmt.Errorf("%w: Summarize - scan totals: %v", ErrScanRow, err)
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpense

	return &summary, nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.CashFlowFilter) squirrel.SelectBuilder {
	if filter.StartDate != nil {
		b = b.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		b = b.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}
	if filter.Type != nil {
		b = b.Where(squirrel.Eq{"type": *filter.Type})
	}
	return b
}
