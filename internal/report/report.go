// Package report aggregates transactions over a resolved date range. All
// functions are pure and total: empty input yields empty output, never an
// error.
package report

import (
	"sort"

	"github.com/tallyhq/tally/internal/currency"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/timeframe"
)

// CategoryResolver resolves a category id to its catalog entry, falling back
// to a deterministic default on miss. catalog.Catalog satisfies this.
type CategoryResolver interface {
	Resolve(id string) model.Category
}

// Filter returns the transactions whose timestamp falls inside the range,
// inclusive on both ends.
func Filter(txns []model.Transaction, r timeframe.Range) []model.Transaction {
	var out []model.Transaction
	for _, txn := range txns {
		if r.Contains(txn.Date) {
			out = append(out, txn)
		}
	}
	return out
}

// Summarize totals the in-range transactions per currency.
func Summarize(txns []model.Transaction, r timeframe.Range) map[string]float64 {
	totals := make(map[string]float64)
	for _, txn := range Filter(txns, r) {
		totals[txn.Currency] += txn.Amount
	}
	return totals
}

// Currencies returns the summary's currency codes in lexicographic order for
// stable display.
func Currencies(totals map[string]float64) []string {
	codes := make([]string, 0, len(totals))
	for code := range totals {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// UnifiedTotal sums the in-range transactions with every amount converted to
// the target currency.
func UnifiedTotal(txns []model.Transaction, r timeframe.Range, conv *currency.Converter, target string) float64 {
	var total float64
	for _, txn := range Filter(txns, r) {
		total += conv.Convert(txn.Amount, txn.Currency, target)
	}
	return total
}

// Entry is one slice of a category breakdown.
type Entry struct {
	CategoryID   string
	CategoryName string
	CategoryIcon string
	// Currency the entry is displayed in: the transactions' own currency,
	// or the default currency in unified mode.
	Currency string
	// DisplayAmount is the sum in Currency.
	DisplayAmount float64
	// NormalizedAmount is the sum converted to the default currency,
	// regardless of display mode. Ranking and percentages use it.
	NormalizedAmount float64
	// Percentage is this entry's share of the total normalized amount,
	// 0 when the filtered set is empty.
	Percentage float64
}

// Options controls Breakdown. Setting CurrencyFilter restricts the input to
// one currency and forces Unified off: filtering to a single currency and
// then converting everything to another is contradictory.
type Options struct {
	CurrencyFilter string
	Unified        bool
}

type groupKey struct {
	categoryID string
	currency   string
}

// Breakdown groups the in-range transactions by resolved category and
// currency and computes display sums, normalized sums, and percentages.
// Entries come back sorted by normalized amount descending, ties broken by
// category id then currency for determinism.
func Breakdown(txns []model.Transaction, r timeframe.Range, categories CategoryResolver, conv *currency.Converter, defaultCurrency string, opts Options) []Entry {
	unified := opts.Unified
	if opts.CurrencyFilter != "" {
		unified = false
	}

	groups := make(map[groupKey]*Entry)
	var order []groupKey
	var totalNormalized float64

	for _, txn := range Filter(txns, r) {
		if opts.CurrencyFilter != "" && txn.Currency != opts.CurrencyFilter {
			continue
		}

		cat := categories.Resolve(txn.CategoryID)
		effective := txn.Currency
		if unified {
			effective = defaultCurrency
		}

		key := groupKey{categoryID: cat.ID, currency: effective}
		entry, ok := groups[key]
		if !ok {
			entry = &Entry{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				CategoryIcon: cat.Icon,
				Currency:     effective,
			}
			groups[key] = entry
			order = append(order, key)
		}

		if unified {
			entry.DisplayAmount += conv.Convert(txn.Amount, txn.Currency, defaultCurrency)
		} else {
			entry.DisplayAmount += txn.Amount
		}
		normalized := conv.Convert(txn.Amount, txn.Currency, defaultCurrency)
		entry.NormalizedAmount += normalized
		totalNormalized += normalized
	}

	out := make([]Entry, 0, len(order))
	for _, key := range order {
		entry := *groups[key]
		if totalNormalized > 0 {
			entry.Percentage = entry.NormalizedAmount / totalNormalized
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].NormalizedAmount != out[j].NormalizedAmount {
			return out[i].NormalizedAmount > out[j].NormalizedAmount
		}
		if out[i].CategoryID != out[j].CategoryID {
			return out[i].CategoryID < out[j].CategoryID
		}
		return out[i].Currency < out[j].Currency
	})

	return out
}
