package transform

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	ledgerv1 "github.com/iskorotkov/splitledger-backend/internal/api/ledger/v1"
	"github.com/iskorotkov/splitledger-backend/internal/db"
	"github.com/iskorotkov/splitledger-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGroupID     = errors.New("invalid group id")
	ErrInvalidParticipant = errors.New("invalid participant")
	ErrInvalidSplitType   = errors.New("invalid split type")
	ErrInvalidAmount      = errors.New("invalid amount")
)

func ParseGroupID(s string) (uuid.UUID, error) {
	groupID, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidGroupID, err)
	}
	return groupID, nil
}

func ParseParticipant(s string) (domain.ParticipantID, error) {
	if s == "" {
		return "", fmt.Errorf("%w: %v", ErrInvalidParticipant, "participant is empty")
	}
	return domain.ParticipantID(s), nil
}

func ParseAmount(d *ledgerv1.Decimal) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(d.GetValue())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return amount, nil
}

func AmountToAPI(d decimal.Decimal) *ledgerv1.Decimal {
	return &ledgerv1.Decimal{
		Value: d.String(),
	}
}

// ExpenseFromAPI builds an expense from a record request. Identity and
// creation time are assigned by the caller.
func ExpenseFromAPI(req *ledgerv1.RecordExpenseRequest) (domain.Expense, error) {
	groupID, err := ParseGroupID(req.GroupId)
	if err != nil {
		return domain.Expense{}, err
	}

	payer, err := ParseParticipant(req.PayerId)
	if err != nil {
		return domain.Expense{}, err
	}

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return domain.Expense{}, err
	}

	splitType := domain.SplitType(req.SplitType)
	if splitType == domain.SplitUnknown {
		splitType = domain.SplitEqual
	}
	if !splitType.Valid() {
		return domain.Expense{}, fmt.Errorf("%w: %q", ErrInvalidSplitType, req.SplitType)
	}

	expense := domain.Expense{
		GroupID:     groupID,
		Description: req.Description,
		Payer:       payer,
		Amount:      amount,
		SplitType:   splitType,
	}

	if splitType == domain.SplitPercentage {
		expense.Shares, err = percentSharesFromAPI(amount, req.Shares)
		if err != nil {
			return domain.Expense{}, err
		}
		return expense, nil
	}

	shares := make([]domain.Share, 0, len(req.Shares))
	for i, s := range req.Shares {
		participant, err := ParseParticipant(s.ParticipantId)
		if err != nil {
			return domain.Expense{}, fmt.Errorf("share %d: %w", i, err)
		}

		owed, err := ParseAmount(s.Owed)
		if err != nil {
			return domain.Expense{}, fmt.Errorf("share %d: %w", i, err)
		}

		shares = append(shares, domain.Share{
			Participant: participant,
			Owed:        owed,
		})
	}

	expense.Shares = shares
	return expense, nil
}

func percentSharesFromAPI(amount decimal.Decimal, shares []*ledgerv1.Share) ([]domain.Share, error) {
	percents := make([]domain.PercentShare, 0, len(shares))
	for i, s := range shares {
		participant, err := ParseParticipant(s.ParticipantId)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}

		percent, err := ParseAmount(s.Percent)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}

		percents = append(percents, domain.PercentShare{
			Participant: participant,
			Percent:     percent,
		})
	}

	return domain.SplitByPercentage(amount, percents)
}

func ExpenseToAPI(e domain.Expense) (*ledgerv1.Expense, error) {
	shares := make([]*ledgerv1.Share, 0, len(e.Shares))
	for _, s := range e.Shares {
		shares = append(shares, &ledgerv1.Share{
			ParticipantId: string(s.Participant),
			Owed:          AmountToAPI(s.Owed),
		})
	}

	var createdAt string
	if !e.CreatedAt.IsZero() {
		createdAt = e.CreatedAt.UTC().Format(time.RFC3339Nano)
	}

	return &ledgerv1.Expense{
		ExpenseId:   e.ExpenseID.String(),
		GroupId:     e.GroupID.String(),
		Description: e.Description,
		PayerId:     string(e.Payer),
		Amount:      AmountToAPI(e.Amount),
		SplitType:   string(e.SplitType),
		Shares:      shares,
		CreatedAt:   createdAt,
	}, nil
}

// ExpensesFromPgx joins expense rows with their shares. Shares must be sorted
// by position within each expense.
func ExpensesFromPgx(rows []db.Expense, shares []db.ExpenseShare) ([]domain.Expense, error) {
	byExpense := make(map[uuid.UUID][]domain.Share, len(rows))
	for _, s := range shares {
		byExpense[s.ExpenseID] = append(byExpense[s.ExpenseID], domain.Share{
			Participant: s.ParticipantID,
			Owed:        s.Owed,
		})
	}

	expenses := make([]domain.Expense, 0, len(rows))
	for _, r := range rows {
		expenses = append(expenses, domain.Expense{
			CreatedAt:   r.CreatedAt,
			ExpenseID:   r.ExpenseID,
			GroupID:     r.GroupID,
			Description: r.Description,
			Payer:       r.PayerID,
			Amount:      r.Amount,
			SplitType:   r.SplitType,
			Shares:      byExpense[r.ExpenseID],
		})
	}

	return expenses, nil
}

func ExpenseToPgx(e domain.Expense) (db.InsertExpenseParams, []db.InsertShareParams, error) {
	shares := make([]db.InsertShareParams, 0, len(e.Shares))
	for i, s := range e.Shares {
		shares = append(shares, db.InsertShareParams{
			ExpenseID:     e.ExpenseID,
			Position:      int32(i),
			ParticipantID: s.Participant,
			Owed:          s.Owed,
		})
	}

	return db.InsertExpenseParams{
		ExpenseID:   e.ExpenseID,
		GroupID:     e.GroupID,
		Description: e.Description,
		PayerID:     e.Payer,
		Amount:      e.Amount,
		SplitType:   e.SplitType,
	}, shares, nil
}
