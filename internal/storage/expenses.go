package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/iskorotkov/splitledger-backend/internal/db"
	"github.com/iskorotkov/splitledger-backend/internal/domain"
	"github.com/iskorotkov/splitledger-backend/internal/transform"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type ConnectionPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Querier interface {
	WithTx(tx pgx.Tx) *db.Queries
	Group(ctx context.Context, groupID uuid.UUID) (db.Group, error)
	GroupMembers(ctx context.Context, groupID uuid.UUID) ([]domain.ParticipantID, error)
	AddGroupMember(ctx context.Context, arg db.AddGroupMemberParams) (int64, error)
	GroupExpenses(ctx context.Context, groupID uuid.UUID) ([]db.Expense, error)
	MemberExpenses(ctx context.Context, participantID domain.ParticipantID) ([]db.Expense, error)
	SharesByExpenseIDs(ctx context.Context, expenseIds []uuid.UUID) ([]db.ExpenseShare, error)
	MemberGroups(ctx context.Context, participantID domain.ParticipantID) ([]db.Group, error)
	InsertSubscription(ctx context.Context, arg db.InsertSubscriptionParams) (int64, error)
	GroupSubscriptions(ctx context.Context, groupID uuid.UUID) ([]db.Subscription, error)
	DueSubscriptions(ctx context.Context, nextDueAt time.Time) ([]db.Subscription, error)
}

func NewExpenses(c ConnectionPool, q Querier) *Expenses {
	return &Expenses{
		c: c,
		q: q,
	}
}

type Expenses struct {
	c ConnectionPool
	q Querier
}

func (e *Expenses) CreateGroup(ctx context.Context, g domain.Group) error {
	pgxTx, err := e.c.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin pgx tx: %w", err)
	}
	defer rollback(ctx, pgxTx)

	qtx := e.q.WithTx(pgxTx)

	if _, err := qtx.CreateGroup(ctx, db.CreateGroupParams{
		GroupID: g.GroupID,
		Name:    g.Name,
	}); err != nil {
		if isPgCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
		return fmt.Errorf("create group: %w", err)
	}

	for _, m := range g.Members {
		if _, err := qtx.AddGroupMember(ctx, db.AddGroupMemberParams{
			GroupID:       g.GroupID,
			ParticipantID: m,
		}); err != nil {
			return fmt.Errorf("add member: %w", err)
		}
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit pgx tx: %w", err)
	}

	return nil
}

func (e *Expenses) AddMember(ctx context.Context, groupID uuid.UUID, p domain.ParticipantID) error {
	if _, err := e.q.AddGroupMember(ctx, db.AddGroupMemberParams{
		GroupID:       groupID,
		ParticipantID: p,
	}); err != nil {
		if isPgCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return fmt.Errorf("add member: %w", err)
	}

	return nil
}

func (e *Expenses) Group(ctx context.Context, groupID uuid.UUID) (domain.Group, error) {
	row, err := e.q.Group(ctx, groupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Group{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return domain.Group{}, fmt.Errorf("fetch group: %w", err)
	}

	members, err := e.q.GroupMembers(ctx, groupID)
	if err != nil {
		return domain.Group{}, fmt.Errorf("fetch members: %w", err)
	}

	group, err := transform.GroupFromPgx(row, members)
	if err != nil {
		return domain.Group{}, fmt.Errorf("transform group: %w", err)
	}

	return group, nil
}

// RecordExpense stores the expense and its shares atomically.
func (e *Expenses) RecordExpense(ctx context.Context, expense domain.Expense) error {
	pgxTx, err := e.c.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin pgx tx: %w", err)
	}
	defer rollback(ctx, pgxTx)

	if err := insertExpense(ctx, e.q.WithTx(pgxTx), expense); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit pgx tx: %w", err)
	}

	return nil
}

func insertExpense(ctx context.Context, qtx *db.Queries, expense domain.Expense) error {
	dbExpense, dbShares, err := transform.ExpenseToPgx(expense)
	if err != nil {
		return fmt.Errorf("transform expense: %w", err)
	}

	if _, err := qtx.InsertExpense(ctx, dbExpense); err != nil {
		if isPgCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		if isPgCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
		return fmt.Errorf("insert expense: %w", err)
	}

	for _, s := range dbShares {
		if _, err := qtx.InsertShare(ctx, s); err != nil {
			return fmt.Errorf("insert share: %w", err)
		}
	}

	return nil
}

func (e *Expenses) GroupExpenses(ctx context.Context, groupID uuid.UUID) ([]domain.Expense, error) {
	if _, err := e.q.Group(ctx, groupID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("fetch group: %w", err)
	}

	rows, err := e.q.GroupExpenses(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}

	return e.withShares(ctx, rows)
}

// MemberExpenses returns the expenses of every group the participant belongs to.
func (e *Expenses) MemberExpenses(ctx context.Context, p domain.ParticipantID) ([]domain.Expense, error) {
	rows, err := e.q.MemberExpenses(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}

	return e.withShares(ctx, rows)
}

// MemberGroups returns every group the participant belongs to, members
// included.
func (e *Expenses) MemberGroups(ctx context.Context, p domain.ParticipantID) ([]domain.Group, error) {
	rows, err := e.q.MemberGroups(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetch groups: %w", err)
	}

	groups := make([]domain.Group, 0, len(rows))
	for _, r := range rows {
		members, err := e.q.GroupMembers(ctx, r.GroupID)
		if err != nil {
			return nil, fmt.Errorf("fetch members: %w", err)
		}

		group, err := transform.GroupFromPgx(r, members)
		if err != nil {
			return nil, fmt.Errorf("transform group: %w", err)
		}

		groups = append(groups, group)
	}

	return groups, nil
}

func (e *Expenses) withShares(ctx context.Context, rows []db.Expense) ([]domain.Expense, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ExpenseID)
	}

	shares, err := e.q.SharesByExpenseIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch shares: %w", err)
	}

	expenses, err := transform.ExpensesFromPgx(rows, shares)
	if err != nil {
		return nil, fmt.Errorf("transform expenses: %w", err)
	}

	return expenses, nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.ErrorContext(ctx, "failed to rollback transaction", "error", err)
	}
}

func isPgCode(err error, code string) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == code
}
