// Package ledgerfile reads expenses from a YAML ledger so balances can be
// simplified without a database.
//
//	expenses:
//	  - description: dinner
//	    payer: alice
//	    amount: "90"
//	    split: unequal
//	    shares:
//	      - participant: bob
//	        owed: "30"
//	      - participant: carol
//	        owed: "60"
//
// Equal splits list participants without amounts, percentage splits set
// percent instead of owed.
package ledgerfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iskorotkov/splitledger-backend/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var ErrInvalidLedger = errors.New("invalid ledger")

type (
	File struct {
		Expenses []Expense `yaml:"expenses"`
	}

	Expense struct {
		Description string  `yaml:"description"`
		Payer       string  `yaml:"payer"`
		Amount      string  `yaml:"amount"`
		Split       string  `yaml:"split"`
		Shares      []Share `yaml:"shares"`
	}

	Share struct {
		Participant string `yaml:"participant"`
		Owed        string `yaml:"owed"`
		Percent     string `yaml:"percent"`
	}
)

func LoadFile(path string) ([]domain.Expense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger '%s': %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a ledger and checks every expense. Unknown keys are rejected.
func Load(r io.Reader) ([]domain.Expense, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLedger, err)
	}

	expenses := make([]domain.Expense, 0, len(file.Expenses))
	for i, e := range file.Expenses {
		expense, err := e.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: expense %d: %w", ErrInvalidLedger, i, err)
		}

		if err := expense.Validate(); err != nil {
			return nil, fmt.Errorf("%w: expense %d: %w", ErrInvalidLedger, i, err)
		}

		expenses = append(expenses, expense)
	}

	return expenses, nil
}

func (e Expense) toDomain() (domain.Expense, error) {
	amount, err := decimal.NewFromString(e.Amount)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("amount: %w", err)
	}

	split := domain.SplitType(e.Split)
	if split == domain.SplitUnknown {
		split = domain.SplitUnequal
	}

	expense := domain.Expense{
		Description: e.Description,
		Payer:       domain.ParticipantID(e.Payer),
		Amount:      amount,
		SplitType:   split,
	}

	switch split {
	case domain.SplitEqual:
		members := make([]domain.ParticipantID, 0, len(e.Shares))
		for _, s := range e.Shares {
			members = append(members, domain.ParticipantID(s.Participant))
		}
		expense.Shares, err = domain.SplitEqually(amount, members)
	case domain.SplitPercentage:
		percents := make([]domain.PercentShare, 0, len(e.Shares))
		for i, s := range e.Shares {
			percent, err := decimal.NewFromString(s.Percent)
			if err != nil {
				return domain.Expense{}, fmt.Errorf("share %d percent: %w", i, err)
			}
			percents = append(percents, domain.PercentShare{
				Participant: domain.ParticipantID(s.Participant),
				Percent:     percent,
			})
		}
		expense.Shares, err = domain.SplitByPercentage(amount, percents)
	case domain.SplitUnequal:
		expense.Shares = make([]domain.Share, 0, len(e.Shares))
		for i, s := range e.Shares {
			owed, err := decimal.NewFromString(s.Owed)
			if err != nil {
				return domain.Expense{}, fmt.Errorf("share %d owed: %w", i, err)
			}
			expense.Shares = append(expense.Shares, domain.Share{
				Participant: domain.ParticipantID(s.Participant),
				Owed:        owed,
			})
		}
	default:
		return domain.Expense{}, fmt.Errorf("unknown split %q", e.Split)
	}
	if err != nil {
		return domain.Expense{}, err
	}

	return expense, nil
}
