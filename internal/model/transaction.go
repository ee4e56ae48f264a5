package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Transaction represents a single recorded expense.
type Transaction struct {
	Date       time.Time
	ID         string
	CategoryID string // key into the category catalog, resolved lazily
	Note       string
	Currency   string // ISO-like 3-letter code
	Amount     float64
}

// GenerateID derives a stable identifier from the transaction's content.
// Used when the caller does not supply an explicit id.
func (t *Transaction) GenerateID() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%s",
		t.Date.Format(time.RFC3339),
		t.Amount,
		t.CategoryID,
		t.Currency,
		t.Note)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash[:8])
}
