package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidPayer   = errors.New("invalid payer")
	ErrInvalidShares  = errors.New("invalid shares")
	ErrSharesMismatch = errors.New("shares do not sum to amount")
)

const (
	SplitUnknown    SplitType = ""
	SplitEqual      SplitType = "equal"
	SplitUnequal    SplitType = "unequal"
	SplitPercentage SplitType = "percentage"
)

type SplitType string

func (s SplitType) Valid() bool {
	switch s {
	case SplitEqual, SplitUnequal, SplitPercentage:
		return true
	default:
		return false
	}
}

// ParticipantID is an opaque token identifying a person in the ledger.
type ParticipantID string

type Share struct {
	Participant ParticipantID
	Owed        decimal.Decimal
}

type Expense struct {
	CreatedAt   time.Time
	ExpenseID   uuid.UUID
	GroupID     uuid.UUID
	Description string
	Payer       ParticipantID
	Amount      decimal.Decimal
	SplitType   SplitType
	Shares      []Share // Order is significant, it drives settlement tie-breaks.
}

// Validate checks the invariants an expense must hold before it is recorded.
// The amount and every share must be whole cents and the shares must add up
// to the amount exactly.
func (e Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: %v must be positive", ErrInvalidAmount, e.Amount)
	}
	if !IsCents(e.Amount) {
		return fmt.Errorf("%w: %v has fractions of a cent", ErrInvalidAmount, e.Amount)
	}

	if e.Payer == "" {
		return fmt.Errorf("%w: %v", ErrInvalidPayer, "payer is empty")
	}

	if len(e.Shares) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidShares, "no shares")
	}

	var sum decimal.Decimal
	for i, s := range e.Shares {
		if s.Participant == "" {
			return fmt.Errorf("%w: share %d has no participant", ErrInvalidShares, i)
		}
		if s.Owed.IsNegative() {
			return fmt.Errorf("%w: share %d is negative", ErrInvalidShares, i)
		}
		if !IsCents(s.Owed) {
			return fmt.Errorf("%w: share %d has fractions of a cent", ErrInvalidShares, i)
		}
		sum = sum.Add(s.Owed)
	}

	if !sum.Equal(e.Amount) {
		return fmt.Errorf("%w: shares total %v, amount %v", ErrSharesMismatch, sum, e.Amount)
	}

	return nil
}

// IsCents reports whether d has no digits below a cent.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
