package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iskorotkov/splitledger-backend/internal/db"
	"github.com/iskorotkov/splitledger-backend/internal/domain"
	"github.com/iskorotkov/splitledger-backend/internal/transform"
	"github.com/jackc/pgx/v5"
)

func (e *Expenses) CreateSubscription(ctx context.Context, s domain.Subscription) error {
	if _, err := e.q.InsertSubscription(ctx, transform.SubscriptionToPgx(s)); err != nil {
		if isPgCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		if isPgCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
		return fmt.Errorf("insert subscription: %w", err)
	}

	return nil
}

func (e *Expenses) GroupSubscriptions(ctx context.Context, groupID uuid.UUID) ([]domain.Subscription, error) {
	if _, err := e.q.Group(ctx, groupID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("fetch group: %w", err)
	}

	rows, err := e.q.GroupSubscriptions(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("fetch subscriptions: %w", err)
	}

	return subscriptionsFromPgx(rows), nil
}

// DueSubscriptions returns subscriptions due at or before now, oldest first.
func (e *Expenses) DueSubscriptions(ctx context.Context, now time.Time) ([]domain.Subscription, error) {
	rows, err := e.q.DueSubscriptions(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("fetch due subscriptions: %w", err)
	}

	return subscriptionsFromPgx(rows), nil
}

// ChargeSubscription moves the subscription to its next due date and stores
// the expense for the current cycle in one transaction. It fails with
// ErrConflict when the cycle was already charged, so concurrent processors
// never charge a cycle twice.
func (e *Expenses) ChargeSubscription(ctx context.Context, s domain.Subscription, expense domain.Expense) error {
	pgxTx, err := e.c.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin pgx tx: %w", err)
	}
	defer rollback(ctx, pgxTx)

	qtx := e.q.WithTx(pgxTx)

	advanced, err := qtx.AdvanceSubscription(ctx, db.AdvanceSubscriptionParams{
		NextDueAt:      s.Cycle.Next(s.NextDueAt),
		SubscriptionID: s.SubscriptionID,
		CurrentDueAt:   s.NextDueAt,
	})
	if err != nil {
		return fmt.Errorf("advance subscription: %w", err)
	}
	if advanced == 0 {
		return fmt.Errorf("%w: subscription %v already charged for %v", ErrConflict, s.SubscriptionID, s.NextDueAt)
	}

	if err := insertExpense(ctx, qtx, expense); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit pgx tx: %w", err)
	}

	return nil
}

func subscriptionsFromPgx(rows []db.Subscription) []domain.Subscription {
	subs := make([]domain.Subscription, 0, len(rows))
	for _, r := range rows {
		subs = append(subs, transform.SubscriptionFromPgx(r))
	}
	return subs
}
