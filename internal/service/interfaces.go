// Package service defines the interfaces the application is wired through.
package service

import (
	"context"
	"time"

	"github.com/tallyhq/tally/internal/model"
)

// Storage defines the contract for the persistence layer. The reporting
// engine never mutates the store; only commands do.
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, txn model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactionCount(ctx context.Context) (int, error)

	// Settings operations
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	// Category catalog persistence (catalog.Repository)
	Load(ctx context.Context) ([]model.Category, error)
	Save(ctx context.Context, categories []model.Category) error

	Close() error
}
