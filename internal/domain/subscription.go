package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSubscription = errors.New("invalid subscription")
	ErrInvalidCycle        = errors.New("invalid billing cycle")
)

const (
	CycleUnknown BillingCycle = ""
	CycleDaily   BillingCycle = "daily"
	CycleWeekly  BillingCycle = "weekly"
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

type BillingCycle string

func (c BillingCycle) Valid() bool {
	switch c {
	case CycleDaily, CycleWeekly, CycleMonthly, CycleYearly:
		return true
	default:
		return false
	}
}

// Next returns the due date one cycle after t. Months and years follow
// time.AddDate, so Jan 31 plus a month is Mar 3 (or Mar 2 in leap years).
func (c BillingCycle) Next(t time.Time) time.Time {
	switch c {
	case CycleDaily:
		return t.AddDate(0, 0, 1)
	case CycleWeekly:
		return t.AddDate(0, 0, 7)
	case CycleMonthly:
		return t.AddDate(0, 1, 0)
	case CycleYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t
	}
}

// Subscription is a recurring charge paid by one member and split equally
// between everyone in the group each time it comes due.
type Subscription struct {
	CreatedAt      time.Time
	SubscriptionID uuid.UUID
	GroupID        uuid.UUID
	Name           string
	Payer          ParticipantID
	Amount         decimal.Decimal
	Cycle          BillingCycle
	NextDueAt      time.Time
}

func (s Subscription) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: %v", ErrInvalidSubscription, "name is empty")
	}
	if s.Payer == "" {
		return fmt.Errorf("%w: %v", ErrInvalidPayer, "payer is empty")
	}
	if !s.Amount.IsPositive() || !IsCents(s.Amount) {
		return fmt.Errorf("%w: %v must be a positive number of cents", ErrInvalidAmount, s.Amount)
	}
	if !s.Cycle.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCycle, s.Cycle)
	}
	if s.NextDueAt.IsZero() {
		return fmt.Errorf("%w: %v", ErrInvalidSubscription, "next due date is missing")
	}
	return nil
}

func (s Subscription) Due(now time.Time) bool {
	return !s.NextDueAt.After(now)
}

// Charge builds the expense for the current cycle, split equally between the
// group members.
func (s Subscription) Charge(members []ParticipantID) (Expense, error) {
	shares, err := SplitEqually(s.Amount, members)
	if err != nil {
		return Expense{}, err
	}

	return Expense{
		GroupID:     s.GroupID,
		Description: "Subscription: " + s.Name,
		Payer:       s.Payer,
		Amount:      s.Amount,
		SplitType:   SplitEqual,
		Shares:      shares,
	}, nil
}
