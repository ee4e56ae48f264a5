package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// SaveTransaction inserts a single transaction. The id must be unique.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(&txn); err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (id, date, amount, category_id, note, currency)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		txn.ID, txn.Date, txn.Amount, txn.CategoryID, txn.Note, txn.Currency)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("transaction %s: %w", txn.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	slog.Debug("saved transaction", "id", txn.ID, "amount", txn.Amount, "currency", txn.Currency)
	return nil
}

// DeleteTransaction removes a transaction by id.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}

	slog.Debug("deleted transaction", "id", id)
	return nil
}

// GetTransactions returns all transactions sorted by date descending.
func (s *SQLiteStorage) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, amount, category_id, note, currency
		FROM transactions
		ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetTransactionsByDateRange returns transactions with start <= date <= end,
// sorted by date descending.
func (s *SQLiteStorage) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, amount, category_id, note, currency
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by range: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetTransactionByID returns a single transaction, or common.ErrNotFound.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, amount, category_id, note, currency
		FROM transactions
		WHERE id = ?`

	var txn model.Transaction
	var note sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&txn.ID, &txn.Date, &txn.Amount, &txn.CategoryID, &note, &txn.Currency)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	txn.Note = note.String

	return &txn, nil
}

// GetTransactionCount returns the total number of stored transactions.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var note sql.NullString
		if err := rows.Scan(&txn.ID, &txn.Date, &txn.Amount, &txn.CategoryID, &note, &txn.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Note = note.String
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}
