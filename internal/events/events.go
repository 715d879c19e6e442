package events

import (
	"context"
	"time"
)

const TopicExpenseRecorded = "expense.recorded"

// ExpenseRecorded announces that the balances of a group changed.
type ExpenseRecorded struct {
	ExpenseID  string    `json:"expense_id"`
	GroupID    string    `json:"group_id"`
	PayerID    string    `json:"payer_id"`
	Amount     string    `json:"amount"`
	RecordedAt time.Time `json:"recorded_at"`
}

type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error {
	return nil
}
