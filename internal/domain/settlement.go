package domain

import (
	"github.com/shopspring/decimal"
)

// Settlement is a single transfer that moves money from a debtor to a creditor.
type Settlement struct {
	From   ParticipantID
	To     ParticipantID
	Amount decimal.Decimal
}

type Summary struct {
	YouOwe       decimal.Decimal
	YouAreOwed   decimal.Decimal
	TotalBalance decimal.Decimal
}
