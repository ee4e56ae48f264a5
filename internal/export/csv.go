// Package export serializes transactions to CSV.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tallyhq/tally/internal/model"
)

// CategoryNamer maps a category id to its display name.
type CategoryNamer func(id string) string

const header = "date,category,amount,note,currency"

// WriteHeader writes the CSV header row.
func WriteHeader(w io.Writer) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return nil
}

// WriteTransaction writes one transaction row. Free-text fields get commas
// and newlines replaced with spaces instead of CSV quoting.
func WriteTransaction(w io.Writer, txn model.Transaction, name CategoryNamer) error {
	row := fmt.Sprintf("%s,%s,%.2f,%s,%s",
		txn.Date.Format("2006-01-02 15:04:05"),
		sanitize(name(txn.CategoryID)),
		txn.Amount,
		sanitize(txn.Note),
		txn.Currency)
	if _, err := fmt.Fprintln(w, row); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	return nil
}

// WriteCSV writes the header plus one row per transaction.
func WriteCSV(w io.Writer, txns []model.Transaction, name CategoryNamer) error {
	if err := WriteHeader(w); err != nil {
		return err
	}
	for _, txn := range txns {
		if err := WriteTransaction(w, txn, name); err != nil {
			return err
		}
	}
	return nil
}

var sanitizer = strings.NewReplacer(",", " ", "\n", " ", "\r", " ")

func sanitize(s string) string {
	return sanitizer.Replace(s)
}
