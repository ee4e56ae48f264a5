package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStorage_InvalidTarget(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := NewSQLiteStorage("")
		assert.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("path is a directory", func(t *testing.T) {
		// Opening succeeds lazily; the ping against a directory fails and
		// must not leave a live handle behind.
		_, err := NewSQLiteStorage(t.TempDir())
		require.Error(t, err)
	})
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))

	version, err := store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSaveAndGetTransaction(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	txn := model.Transaction{
		ID:         "txn1",
		Date:       time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC),
		Amount:     35.5,
		CategoryID: "food",
		Note:       "lunch",
		Currency:   "CNY",
	}
	require.NoError(t, store.SaveTransaction(ctx, txn))

	got, err := store.GetTransactionByID(ctx, "txn1")
	require.NoError(t, err)
	assert.Equal(t, txn.Amount, got.Amount)
	assert.Equal(t, txn.CategoryID, got.CategoryID)
	assert.Equal(t, txn.Note, got.Note)
	assert.Equal(t, txn.Currency, got.Currency)
	assert.True(t, got.Date.Equal(txn.Date))
}

func TestSaveTransaction_DuplicateID(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	txn := model.Transaction{
		ID:       "txn1",
		Date:     time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC),
		Amount:   10,
		Currency: "CNY",
	}
	require.NoError(t, store.SaveTransaction(ctx, txn))

	err := store.SaveTransaction(ctx, txn)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestSaveTransaction_Invalid(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name string
		txn  model.Transaction
	}{
		{
			name: "missing id",
			txn:  model.Transaction{Date: time.Now(), Currency: "CNY"},
		},
		{
			name: "missing date",
			txn:  model.Transaction{ID: "x", Currency: "CNY"},
		},
		{
			name: "missing currency",
			txn:  model.Transaction{ID: "x", Date: time.Now()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveTransaction(ctx, tt.txn)
			assert.ErrorIs(t, err, ErrInvalidTransaction)
		})
	}
}

func TestGetTransactions_SortedByDateDescending(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		require.NoError(t, store.SaveTransaction(ctx, model.Transaction{
			ID:       string(rune('a' + i)),
			Date:     d,
			Amount:   float64(i + 1),
			Currency: "CNY",
		}))
	}

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Date.After(got[i-1].Date), "transactions must be newest first")
	}
}

func TestGetTransactionsByDateRange_Inclusive(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	start := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC)

	txns := []model.Transaction{
		{ID: "at-start", Date: start, Amount: 1, Currency: "CNY"},
		{ID: "at-end", Date: end, Amount: 2, Currency: "CNY"},
		{ID: "before", Date: start.Add(-time.Second), Amount: 4, Currency: "CNY"},
		{ID: "after", Date: end.Add(time.Second), Amount: 8, Currency: "CNY"},
	}
	for _, txn := range txns {
		require.NoError(t, store.SaveTransaction(ctx, txn))
	}

	got, err := store.GetTransactionsByDateRange(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := []string{got[0].ID, got[1].ID}
	assert.Contains(t, ids, "at-start")
	assert.Contains(t, ids, "at-end")
}

func TestDeleteTransaction(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTransaction(ctx, model.Transaction{
		ID:       "txn1",
		Date:     time.Now(),
		Amount:   5,
		Currency: "CNY",
	}))

	require.NoError(t, store.DeleteTransaction(ctx, "txn1"))

	_, err := store.GetTransactionByID(ctx, "txn1")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	t.Run("deleting again reports not found", func(t *testing.T) {
		err := store.DeleteTransaction(ctx, "txn1")
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})
}

func TestGetTransactionCount(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	count, err := store.GetTransactionCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.SaveTransaction(ctx, model.Transaction{
		ID:       "txn1",
		Date:     time.Now(),
		Amount:   5,
		Currency: "CNY",
	}))

	count, err = store.GetTransactionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSettings_Roundtrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	value, err := store.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.SetSetting(ctx, "theme", "dark"))
	require.NoError(t, store.SetSetting(ctx, "theme", "light")) // upsert

	value, err = store.GetSetting(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)
}

func TestCategoryRepository_Roundtrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "fresh database has no catalog yet")

	categories := []model.Category{
		{ID: "food", Name: "Food", Icon: "fork.knife", IsSystem: true},
		{ID: "other", Name: "Other", Icon: "ellipsis", IsSystem: true},
	}
	require.NoError(t, store.Save(ctx, categories))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}
