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
	"github.com/iskorotkov/splitledger-backend/internal/events"
	"github.com/iskorotkov/splitledger-backend/internal/settle"
	"github.com/iskorotkov/splitledger-backend/internal/storage"
	"github.com/iskorotkov/splitledger-backend/internal/transform"
)

type Storage interface {
	CreateGroup(ctx context.Context, g domain.Group) error
	AddMember(ctx context.Context, groupID uuid.UUID, p domain.ParticipantID) error
	Group(ctx context.Context, groupID uuid.UUID) (domain.Group, error)
	RecordExpense(ctx context.Context, e domain.Expense) error
	GroupExpenses(ctx context.Context, groupID uuid.UUID) ([]domain.Expense, error)
	MemberExpenses(ctx context.Context, p domain.ParticipantID) ([]domain.Expense, error)
	MemberGroups(ctx context.Context, p domain.ParticipantID) ([]domain.Group, error)
	CreateSubscription(ctx context.Context, s domain.Subscription) error
	GroupSubscriptions(ctx context.Context, groupID uuid.UUID) ([]domain.Subscription, error)
	DueSubscriptions(ctx context.Context, now time.Time) ([]domain.Subscription, error)
	ChargeSubscription(ctx context.Context, s domain.Subscription, e domain.Expense) error
}

func NewLedger(s Storage, p events.Publisher) *Ledger {
	return &Ledger{
		s: s,
		p: p,
	}
}

type Ledger struct {
	s Storage
	p events.Publisher
}

var _ ledgerv1.LedgerServiceHandler = (*Ledger)(nil)

func (l *Ledger) CreateGroup(
	ctx context.Context,
	req *connect.Request[ledgerv1.CreateGroupRequest],
) (*connect.Response[ledgerv1.CreateGroupResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("group name is empty"))
	}

	members := make([]domain.ParticipantID, 0, len(req.Msg.MemberIds))
	for _, m := range req.Msg.MemberIds {
		p, err := transform.ParseParticipant(m)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		members = append(members, p)
	}

	groupID, err := uuid.NewV7()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate group id", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to create group"))
	}

	if err := l.s.CreateGroup(ctx, domain.Group{
		GroupID: groupID,
		Name:    req.Msg.Name,
		Members: members,
	}); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, connect.NewError(connect.CodeAlreadyExists, errors.New("group already exists"))
		}
		slog.ErrorContext(ctx, "failed to create group", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to create group"))
	}

	return connect.NewResponse(&ledgerv1.CreateGroupResponse{
		GroupId: groupID.String(),
	}), nil
}

func (l *Ledger) AddMember(
	ctx context.Context,
	req *connect.Request[ledgerv1.AddMemberRequest],
) (*connect.Response[ledgerv1.Empty], error) {
	groupID, err := transform.ParseGroupID(req.Msg.GroupId)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	p, err := transform.ParseParticipant(req.Msg.ParticipantId)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := l.s.AddMember(ctx, groupID, p); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
		}
		slog.ErrorContext(ctx, "failed to add member", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to add member"))
	}

	return connect.NewResponse(&ledgerv1.Empty{}), nil
}

// RecordExpense validates and stores an expense. Equal splits submitted
// without shares are divided between all group members.
func (l *Ledger) RecordExpense(
	ctx context.Context,
	req *connect.Request[ledgerv1.RecordExpenseRequest],
) (*connect.Response[ledgerv1.RecordExpenseResponse], error) {
	expense, err := transform.ExpenseFromAPI(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	group, err := l.s.Group(ctx, expense.GroupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
		}
		slog.ErrorContext(ctx, "failed to get group", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to record expense"))
	}

	if !group.HasMember(expense.Payer) {
		return nil, connect.NewError(connect.CodePermissionDenied, errors.New("payer is not a member of this group"))
	}

	if expense.SplitType == domain.SplitEqual && len(expense.Shares) == 0 {
		expense.Shares, err = domain.SplitEqually(expense.Amount, group.Members)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	for _, s := range expense.Shares {
		if !group.HasMember(s.Participant) {
			return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("share participant is not a member of this group"))
		}
	}

	if err := expense.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expense.ExpenseID, err = uuid.NewV7()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate expense id", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to record expense"))
	}

	if err := l.s.RecordExpense(ctx, expense); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
		}
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, connect.NewError(connect.CodeAlreadyExists, errors.New("expense already exists"))
		}
		slog.ErrorContext(ctx, "failed to record expense", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to record expense"))
	}

	l.publishRecorded(ctx, expense)

	return connect.NewResponse(&ledgerv1.RecordExpenseResponse{
		ExpenseId: expense.ExpenseID.String(),
	}), nil
}

// publishRecorded announces a stored expense. The expense is already
// committed, so a lost event is only logged.
func (l *Ledger) publishRecorded(ctx context.Context, expense domain.Expense) {
	if err := l.p.Publish(ctx, expense.GroupID.String(), events.ExpenseRecorded{
		ExpenseID:  expense.ExpenseID.String(),
		GroupID:    expense.GroupID.String(),
		PayerID:    string(expense.Payer),
		Amount:     expense.Amount.String(),
		RecordedAt: time.Now().UTC(),
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish expense event", "error", err, "expense_id", expense.ExpenseID)
	}
}

func (l *Ledger) GetGroup(
	ctx context.Context,
	req *connect.Request[ledgerv1.GetGroupRequest],
) (*connect.Response[ledgerv1.GetGroupResponse], error) {
	groupID, err := transform.ParseGroupID(req.Msg.GroupId)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	group, err := l.s.Group(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
		}
		slog.ErrorContext(ctx, "failed to get group", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to get group"))
	}

	return connect.NewResponse(&ledgerv1.GetGroupResponse{
		Group: transform.GroupToAPI(group),
	}), nil
}

// ListGroups returns the groups a participant belongs to.
func (l *Ledger) ListGroups(
	ctx context.Context,
	req *connect.Request[ledgerv1.ListGroupsRequest],
) (*connect.Response[ledgerv1.ListGroupsResponse], error) {
	p, err := transform.ParseParticipant(req.Msg.ParticipantId)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	groups, err := l.s.MemberGroups(ctx, p)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get member groups", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to get groups"))
	}

	apiGroups := make([]*ledgerv1.Group, 0, len(groups))
	for _, g := range groups {
		apiGroups = append(apiGroups, transform.GroupToAPI(g))
	}

	return connect.NewResponse(&ledgerv1.ListGroupsResponse{
		Groups: apiGroups,
	}), nil
}

func (l *Ledger) ListExpenses(
	ctx context.Context,
	req *connect.Request[ledgerv1.ListExpensesRequest],
) (*connect.Response[ledgerv1.ListExpensesResponse], error) {
	groupID, err := transform.ParseGroupID(req.Msg.GroupId)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expenses, err := l.s.GroupExpenses(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
		}
		slog.ErrorContext(ctx, "failed to get group expenses", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to get expenses"))
	}

	apiExpenses := make([]*ledgerv1.Expense, 0, len(expenses))
	for _, e := range expenses {
		ae, err := transform.ExpenseToAPI(e)
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, err)
		}

		apiExpenses = append(apiExpenses, ae)
	}

	return connect.NewResponse(&ledgerv1.ListExpensesResponse{
		Expenses: apiExpenses,
	}), nil
}

// GroupBalances returns the transfers that settle every expense of a group.
func (l *Ledger) GroupBalances(
	ctx context.Context,
	req *connect.Request[ledgerv1.GroupBalancesRequest],
) (*connect.Response[ledgerv1.GroupBalancesResponse], error) {
	groupID, err := transform.ParseGroupID(req.Msg.GroupId)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expenses, err := l.s.GroupExpenses(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
		}
		slog.ErrorContext(ctx, "failed to get group expenses", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to get balances"))
	}

	settlements, err := transform.SettlementsToAPI(settle.Simplify(expenses))
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&ledgerv1.GroupBalancesResponse{
		Settlements: settlements,
	}), nil
}

// Summary simplifies the expenses of every group the participant belongs to
// and reports how much they owe and are owed overall.
func (l *Ledger) Summary(
	ctx context.Context,
	req *connect.Request[ledgerv1.SummaryRequest],
) (*connect.Response[ledgerv1.SummaryResponse], error) {
	p, err := transform.ParseParticipant(req.Msg.ParticipantId)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expenses, err := l.s.MemberExpenses(ctx, p)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get member expenses", "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to get summary"))
	}

	summary, err := transform.SummaryToAPI(settle.Summarize(settle.Simplify(expenses), p))
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(summary), nil
}
