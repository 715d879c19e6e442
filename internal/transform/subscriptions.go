package transform

import (
	"errors"
	"fmt"
	"time"

	ledgerv1 "github.com/iskorotkov/splitledger-backend/internal/api/ledger/v1"
	"github.com/iskorotkov/splitledger-backend/internal/db"
	"github.com/iskorotkov/splitledger-backend/internal/domain"
)

var ErrInvalidTime = errors.New("invalid time")

func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return t.UTC(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// SubscriptionFromAPI builds a subscription from a create request. Identity
// is assigned by the caller.
func SubscriptionFromAPI(req *ledgerv1.CreateSubscriptionRequest) (domain.Subscription, error) {
	groupID, err := ParseGroupID(req.GroupId)
	if err != nil {
		return domain.Subscription{}, err
	}

	payer, err := ParseParticipant(req.PayerId)
	if err != nil {
		return domain.Subscription{}, err
	}

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return domain.Subscription{}, err
	}

	cycle := domain.BillingCycle(req.BillingCycle)
	if cycle == domain.CycleUnknown {
		cycle = domain.CycleMonthly
	}

	nextDueAt, err := ParseTime(req.NextDueAt)
	if err != nil {
		return domain.Subscription{}, err
	}

	return domain.Subscription{
		GroupID:   groupID,
		Name:      req.Name,
		Payer:     payer,
		Amount:    amount,
		Cycle:     cycle,
		NextDueAt: nextDueAt,
	}, nil
}

func SubscriptionToAPI(s domain.Subscription) *ledgerv1.Subscription {
	return &ledgerv1.Subscription{
		SubscriptionId: s.SubscriptionID.String(),
		GroupId:        s.GroupID.String(),
		Name:           s.Name,
		PayerId:        string(s.Payer),
		Amount:         AmountToAPI(s.Amount),
		BillingCycle:   string(s.Cycle),
		NextDueAt:      formatTime(s.NextDueAt),
		CreatedAt:      formatTime(s.CreatedAt),
	}
}

func SubscriptionFromPgx(s db.Subscription) domain.Subscription {
	return domain.Subscription{
		CreatedAt:      s.CreatedAt,
		SubscriptionID: s.SubscriptionID,
		GroupID:        s.GroupID,
		Name:           s.Name,
		Payer:          s.PayerID,
		Amount:         s.Amount,
		Cycle:          s.BillingCycle,
		NextDueAt:      s.NextDueAt,
	}
}

func SubscriptionToPgx(s domain.Subscription) db.InsertSubscriptionParams {
	return db.InsertSubscriptionParams{
		SubscriptionID: s.SubscriptionID,
		GroupID:        s.GroupID,
		Name:           s.Name,
		PayerID:        s.Payer,
		Amount:         s.Amount,
		BillingCycle:   s.Cycle,
		NextDueAt:      s.NextDueAt,
	}
}
