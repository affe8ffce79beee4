// Package ordersink persists completed orders. The file sink is the
// durability source of truth; Postgres and Kafka sinks are optional and
// composed in via Multi.
package ordersink

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is a completed order: the cart lines joined against the catalog at
// checkout time, the grand total and the customer's phone number. Orders
// are not stored as entities anywhere else; the sink record is all that
// survives.
type Record struct {
	ID       string    `json:"id"`
	UserID   int64     `json:"user_id"`
	Phone    string    `json:"phone"`
	Lines    []string  `json:"lines"`
	Total    int       `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}

// NewRecord builds a Record with a fresh id and timestamp.
func NewRecord(userID int64, phone string, lines []string, total int) Record {
	return Record{
		ID:       uuid.New().String(),
		UserID:   userID,
		Phone:    phone,
		Lines:    lines,
		Total:    total,
		PlacedAt: time.Now(),
	}
}

// Text renders the human-readable order record. The same text is appended
// to the order log and sent to the operator.
func (r Record) Text() string {
	return fmt.Sprintf("Новый заказ:\n\n%s\n\nИтого: %d ₽\nТелефон: %s",
		strings.Join(r.Lines, "\n"), r.Total, r.Phone)
}

// Sink receives one record per completed order. Append must be append-only:
// records are never rewritten or truncated.
type Sink interface {
	Append(ctx context.Context, rec Record) error
}
