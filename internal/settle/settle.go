// Package settle turns a set of expenses into the transfers that settle them.
//
// Balances are accumulated with exact decimal arithmetic and are never rounded
// here. Rounding is left to whoever presents the result.
package settle

import (
	"github.com/iskorotkov/splitledger-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Balances maps participants to their net balance. Positive means the
// participant is owed money, negative means they owe money. Participants are
// kept in the order they first appeared in the expenses.
type Balances struct {
	order  []domain.ParticipantID
	amount map[domain.ParticipantID]decimal.Decimal
}

func (b Balances) Len() int {
	return len(b.order)
}

// Participants returns every participant seen, settled ones included.
func (b Balances) Participants() []domain.ParticipantID {
	return append([]domain.ParticipantID(nil), b.order...)
}

func (b Balances) Of(p domain.ParticipantID) decimal.Decimal {
	return b.amount[p]
}

func (b *Balances) add(p domain.ParticipantID, d decimal.Decimal) {
	cur, ok := b.amount[p]
	if !ok {
		b.order = append(b.order, p)
	}
	b.amount[p] = cur.Add(d)
}

// NetBalances credits every payer with the full amount they fronted and debits
// every share holder with what they owe. A payer listed in their own shares
// nets out without special handling.
func NetBalances(expenses []domain.Expense) Balances {
	b := Balances{
		amount: make(map[domain.ParticipantID]decimal.Decimal),
	}

	for _, e := range expenses {
		b.add(e.Payer, e.Amount)
		for _, s := range e.Shares {
			b.add(s.Participant, s.Owed.Neg())
		}
	}

	return b
}

type party struct {
	id        domain.ParticipantID
	remaining decimal.Decimal
}

// Simplify computes the transfers that settle all expenses.
//
// Debtors and creditors are matched greedily in first-seen order. Every
// creditor receives exactly their net balance, every debtor pays exactly
// theirs, and at most debtors+creditors-1 transfers are produced. Input
// that does not add up (shares not matching the amount) is not rejected, the
// difference simply shows up in the balances.
func Simplify(expenses []domain.Expense) []domain.Settlement {
	balances := NetBalances(expenses)

	var debtors, creditors []*party
	for _, p := range balances.order {
		amount := balances.amount[p]
		switch amount.Sign() {
		case 1:
			creditors = append(creditors, &party{id: p, remaining: amount})
		case -1:
			debtors = append(debtors, &party{id: p, remaining: amount.Neg()})
		}
	}

	var settlements []domain.Settlement
	for i, j := 0, 0; i < len(debtors) && j < len(creditors); {
		debtor, creditor := debtors[i], creditors[j]
		amount := decimal.Min(debtor.remaining, creditor.remaining)

		if amount.IsPositive() {
			settlements = append(settlements, domain.Settlement{
				From:   debtor.id,
				To:     creditor.id,
				Amount: amount,
			})
		}

		debtor.remaining = debtor.remaining.Sub(amount)
		creditor.remaining = creditor.remaining.Sub(amount)

		if debtor.remaining.IsZero() {
			i++
		}
		if creditor.remaining.IsZero() {
			j++
		}
	}

	return settlements
}

// Summarize folds settlements into the totals seen by one participant.
func Summarize(settlements []domain.Settlement, p domain.ParticipantID) domain.Summary {
	var owe, owed decimal.Decimal
	for _, s := range settlements {
		if s.From == p {
			owe = owe.Add(s.Amount)
		}
		if s.To == p {
			owed = owed.Add(s.Amount)
		}
	}

	return domain.Summary{
		YouOwe:       owe,
		YouAreOwed:   owed,
		TotalBalance: owed.Sub(owe),
	}
}
