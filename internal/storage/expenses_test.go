package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iskorotkov/splitledger-backend/internal/db"
	"github.com/iskorotkov/splitledger-backend/internal/domain"
	"github.com/iskorotkov/splitledger-backend/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier serves reads from memory. Transactional writes run the
// generated queries against the given fakeTx.
type fakeQuerier struct {
	groups        map[uuid.UUID]db.Group
	members       map[uuid.UUID][]domain.ParticipantID
	expenses      []db.Expense
	shares        []db.ExpenseShare
	subscriptions []db.Subscription
	addErr        error
	sharesErr     error
	insertSubErr  error
}

func (f *fakeQuerier) WithTx(tx pgx.Tx) *db.Queries {
	return db.New(tx)
}

func (f *fakeQuerier) Group(_ context.Context, groupID uuid.UUID) (db.Group, error) {
	g, ok := f.groups[groupID]
	if !ok {
		return db.Group{}, pgx.ErrNoRows
	}
	return g, nil
}

func (f *fakeQuerier) GroupMembers(_ context.Context, groupID uuid.UUID) ([]domain.ParticipantID, error) {
	return f.members[groupID], nil
}

func (f *fakeQuerier) AddGroupMember(_ context.Context, arg db.AddGroupMemberParams) (int64, error) {
	if f.addErr != nil {
		return 0, f.addErr
	}
	f.members[arg.GroupID] = append(f.members[arg.GroupID], arg.ParticipantID)
	return 1, nil
}

func (f *fakeQuerier) GroupExpenses(_ context.Context, groupID uuid.UUID) ([]db.Expense, error) {
	var out []db.Expense
	for _, e := range f.expenses {
		if e.GroupID == groupID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeQuerier) MemberExpenses(_ context.Context, p domain.ParticipantID) ([]db.Expense, error) {
	var out []db.Expense
	for _, e := range f.expenses {
		for _, m := range f.members[e.GroupID] {
			if m == p {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeQuerier) SharesByExpenseIDs(_ context.Context, ids []uuid.UUID) ([]db.ExpenseShare, error) {
	if f.sharesErr != nil {
		return nil, f.sharesErr
	}
	var out []db.ExpenseShare
	for _, s := range f.shares {
		for _, id := range ids {
			if s.ExpenseID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f *fakeQuerier) MemberGroups(_ context.Context, p domain.ParticipantID) ([]db.Group, error) {
	var out []db.Group
	for id, members := range f.members {
		for _, m := range members {
			if m == p {
				out = append(out, f.groups[id])
				break
			}
		}
	}
	return out, nil
}

func (f *fakeQuerier) InsertSubscription(_ context.Context, arg db.InsertSubscriptionParams) (int64, error) {
	if f.insertSubErr != nil {
		return 0, f.insertSubErr
	}
	f.subscriptions = append(f.subscriptions, db.Subscription{
		SubscriptionID: arg.SubscriptionID,
		GroupID:        arg.GroupID,
		Name:           arg.Name,
		PayerID:        arg.PayerID,
		Amount:         arg.Amount,
		BillingCycle:   arg.BillingCycle,
		NextDueAt:      arg.NextDueAt,
	})
	return 1, nil
}

func (f *fakeQuerier) GroupSubscriptions(_ context.Context, groupID uuid.UUID) ([]db.Subscription, error) {
	var out []db.Subscription
	for _, s := range f.subscriptions {
		if s.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeQuerier) DueSubscriptions(_ context.Context, now time.Time) ([]db.Subscription, error) {
	var out []db.Subscription
	for _, s := range f.subscriptions {
		if !s.NextDueAt.After(now) {
			out = append(out, s)
		}
	}
	return out, nil
}

func newFake() (*fakeQuerier, uuid.UUID, uuid.UUID) {
	trip, flat := uuid.New(), uuid.New()
	dinner, rent := uuid.New(), uuid.New()

	return &fakeQuerier{
		groups: map[uuid.UUID]db.Group{
			trip: {GroupID: trip, Name: "trip"},
			flat: {GroupID: flat, Name: "flat"},
		},
		members: map[uuid.UUID][]domain.ParticipantID{
			trip: {"alice", "bob"},
			flat: {"bob", "carol"},
		},
		expenses: []db.Expense{
			{ExpenseID: dinner, GroupID: trip, PayerID: "alice", Amount: decimal.NewFromInt(20), SplitType: domain.SplitEqual},
			{ExpenseID: rent, GroupID: flat, PayerID: "carol", Amount: decimal.NewFromInt(100), SplitType: domain.SplitEqual},
		},
		shares: []db.ExpenseShare{
			{ExpenseID: dinner, Position: 0, ParticipantID: "alice", Owed: decimal.NewFromInt(10)},
			{ExpenseID: dinner, Position: 1, ParticipantID: "bob", Owed: decimal.NewFromInt(10)},
			{ExpenseID: rent, Position: 0, ParticipantID: "bob", Owed: decimal.NewFromInt(50)},
			{ExpenseID: rent, Position: 1, ParticipantID: "carol", Owed: decimal.NewFromInt(50)},
		},
	}, trip, flat
}

func TestExpenses_Group(t *testing.T) {
	q, trip, _ := newFake()
	s := storage.NewExpenses(nil, q)

	g, err := s.Group(context.Background(), trip)
	require.NoError(t, err)
	assert.Equal(t, "trip", g.Name)
	assert.Equal(t, []domain.ParticipantID{"alice", "bob"}, g.Members)

	_, err = s.Group(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestExpenses_AddMember(t *testing.T) {
	q, trip, _ := newFake()
	s := storage.NewExpenses(nil, q)

	require.NoError(t, s.AddMember(context.Background(), trip, "dave"))
	assert.Contains(t, q.members[trip], domain.ParticipantID("dave"))

	q.addErr = &pgconn.PgError{Code: "23503"}
	err := s.AddMember(context.Background(), uuid.New(), "dave")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	q.addErr = errors.New("connection reset")
	err = s.AddMember(context.Background(), trip, "erin")
	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrNotFound))
}

func TestExpenses_GroupExpenses(t *testing.T) {
	q, trip, _ := newFake()
	s := storage.NewExpenses(nil, q)

	expenses, err := s.GroupExpenses(context.Background(), trip)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, domain.ParticipantID("alice"), expenses[0].Payer)
	require.Len(t, expenses[0].Shares, 2)
	assert.Equal(t, domain.ParticipantID("bob"), expenses[0].Shares[1].Participant)

	_, err = s.GroupExpenses(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	q.sharesErr = errors.New("connection reset")
	_, err = s.GroupExpenses(context.Background(), trip)
	assert.Error(t, err)
}

func TestExpenses_MemberExpenses(t *testing.T) {
	q, _, _ := newFake()
	s := storage.NewExpenses(nil, q)

	expenses, err := s.MemberExpenses(context.Background(), "bob")
	require.NoError(t, err)
	assert.Len(t, expenses, 2)

	expenses, err = s.MemberExpenses(context.Background(), "carol")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, decimal.NewFromInt(100).Equal(expenses[0].Amount))

	expenses, err = s.MemberExpenses(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestExpenses_MemberGroups(t *testing.T) {
	q, trip, flat := newFake()
	s := storage.NewExpenses(nil, q)

	groups, err := s.MemberGroups(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.ElementsMatch(t, []uuid.UUID{trip, flat}, []uuid.UUID{groups[0].GroupID, groups[1].GroupID})

	groups, err = s.MemberGroups(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []domain.ParticipantID{"alice", "bob"}, groups[0].Members)

	groups, err = s.MemberGroups(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, groups)
}
