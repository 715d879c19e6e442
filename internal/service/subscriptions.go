package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	ledgerv1 "github.com/iskorotkov/splitledger-backend/internal/api/ledger/v1"
	"github.com/iskorotkov/splitledger-backend/internal/domain"
	"github.com/iskorotkov/splitledger-backend/internal/storage"
	"github.com/iskorotkov/splitledger-backend/internal/transform"
)

func (l *Ledger) CreateSubscription(
	ctx context.Context,
	req *connect.Request[ledgerv1.CreateSubscriptionRequest],
) (*connect.Response[ledgerv1.CreateSubscriptionResponse], error) {
	sub, err := transform.SubscriptionFromAPI(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := sub.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	group, err := l.s.Group(ctx, sub.GroupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
		}
		slog.ErrorContext(ctx, "failed to get group", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to create subscription"))
	}

	if !group.HasMember(sub.Payer) {
		return nil, connect.NewError(connect.CodePermissionDenied, errors.New("payer is not a member of this group"))
	}

	sub.SubscriptionID, err = uuid.NewV7()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate subscription id", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to create subscription"))
	}

	if err := l.s.CreateSubscription(ctx, sub); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
		}
		slog.ErrorContext(ctx, "failed to create subscription", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to create subscription"))
	}

	return connect.NewResponse(&ledgerv1.CreateSubscriptionResponse{
		SubscriptionId: sub.SubscriptionID.String(),
	}), nil
}

func (l *Ledger) ListSubscriptions(
	ctx context.Context,
	req *connect.Request[ledgerv1.ListSubscriptionsRequest],
) (*connect.Response[ledgerv1.ListSubscriptionsResponse], error) {
	groupID, err := transform.ParseGroupID(req.Msg.GroupId)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	subs, err := l.s.GroupSubscriptions(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
		}
		slog.ErrorContext(ctx, "failed to get group subscriptions", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to get subscriptions"))
	}

	apiSubs := make([]*ledgerv1.Subscription, 0, len(subs))
	for _, s := range subs {
		apiSubs = append(apiSubs, transform.SubscriptionToAPI(s))
	}

	return connect.NewResponse(&ledgerv1.ListSubscriptionsResponse{
		Subscriptions: apiSubs,
	}), nil
}

// ProcessDueSubscriptions charges every subscription due at the given time.
// A subscription several cycles behind is charged once per missed cycle.
// Subscriptions that cannot be charged (group gone, no members) keep their
// due date and are retried on the next call.
func (l *Ledger) ProcessDueSubscriptions(
	ctx context.Context,
	req *connect.Request[ledgerv1.ProcessDueSubscriptionsRequest],
) (*connect.Response[ledgerv1.ProcessDueSubscriptionsResponse], error) {
	now := time.Now().UTC()
	if req.Msg.Now != "" {
		t, err := transform.ParseTime(req.Msg.Now)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		now = t
	}

	subs, err := l.s.DueSubscriptions(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get due subscriptions", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to process subscriptions"))
	}

	expenseIDs := make([]string, 0, len(subs))
	for _, sub := range subs {
		charged, err := l.chargeDue(ctx, sub, now)
		expenseIDs = append(expenseIDs, charged...)
		if err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "processed due subscriptions", "due", len(subs), "charged", len(expenseIDs))

	return connect.NewResponse(&ledgerv1.ProcessDueSubscriptionsResponse{
		ExpenseIds: expenseIDs,
	}), nil
}

func (l *Ledger) chargeDue(ctx context.Context, sub domain.Subscription, now time.Time) ([]string, error) {
	log := slog.With("subscription_id", sub.SubscriptionID)

	if !sub.Cycle.Valid() {
		log.WarnContext(ctx, "skipping subscription with unknown billing cycle", "cycle", sub.Cycle)
		return nil, nil
	}

	group, err := l.s.Group(ctx, sub.GroupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.WarnContext(ctx, "skipping subscription of missing group")
			return nil, nil
		}
		log.ErrorContext(ctx, "failed to get group", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to process subscriptions"))
	}

	var charged []string
	for sub.Due(now) {
		expense, err := sub.Charge(group.Members)
		if err != nil {
			log.WarnContext(ctx, "skipping subscription that cannot be split", "error", err)
			return charged, nil
		}

		expense.ExpenseID, err = uuid.NewV7()
		if err != nil {
			log.ErrorContext(ctx, "failed to generate expense id", "error", err)
			return charged, connect.NewError(connect.CodeInternal, errors.New("failed to process subscriptions"))
		}

		if err := l.s.ChargeSubscription(ctx, sub, expense); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				log.InfoContext(ctx, "subscription cycle already charged", "due_at", sub.NextDueAt)
				return charged, nil
			}
			log.ErrorContext(ctx, "failed to charge subscription", "error", err)
			return charged, connect.NewError(connect.CodeInternal, errors.New("failed to process subscriptions"))
		}

		l.publishRecorded(ctx, expense)
		charged = append(charged, expense.ExpenseID.String())
		sub.NextDueAt = sub.Cycle.Next(sub.NextDueAt)
	}

	return charged, nil
}
