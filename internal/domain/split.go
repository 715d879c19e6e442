package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type PercentShare struct {
	Participant ParticipantID
	Percent     decimal.Decimal
}

// SplitEqually divides amount between members in whole cents. Leftover cents
// go one each to the first members, so the shares always add up to the
// amount.
func SplitEqually(amount decimal.Decimal, members []ParticipantID) ([]Share, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %v must be positive", ErrInvalidAmount, amount)
	}
	if !IsCents(amount) {
		return nil, fmt.Errorf("%w: %v has fractions of a cent", ErrInvalidAmount, amount)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShares, "no members to split between")
	}

	cents := amount.Shift(2).IntPart()
	n := int64(len(members))
	base, rem := cents/n, cents%n

	shares := make([]Share, 0, len(members))
	for i, m := range members {
		c := base
		if int64(i) < rem {
			c++
		}
		shares = append(shares, Share{
			Participant: m,
			Owed:        decimal.New(c, -2),
		})
	}

	return shares, nil
}

// SplitByPercentage converts percentages into owed amounts rounded to cents.
// The rounding difference is absorbed by the first share.
func SplitByPercentage(amount decimal.Decimal, percents []PercentShare) ([]Share, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %v must be positive", ErrInvalidAmount, amount)
	}
	if !IsCents(amount) {
		return nil, fmt.Errorf("%w: %v has fractions of a cent", ErrInvalidAmount, amount)
	}
	if len(percents) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShares, "no percentages")
	}

	var totalPercent decimal.Decimal
	for i, p := range percents {
		if p.Percent.IsNegative() {
			return nil, fmt.Errorf("%w: percentage %d is negative", ErrInvalidShares, i)
		}
		totalPercent = totalPercent.Add(p.Percent)
	}
	if !totalPercent.Equal(hundred) {
		return nil, fmt.Errorf("%w: percentages total %v", ErrSharesMismatch, totalPercent)
	}

	shares := make([]Share, 0, len(percents))
	var sum decimal.Decimal
	for _, p := range percents {
		owed := amount.Mul(p.Percent).Div(hundred).Round(2)
		sum = sum.Add(owed)
		shares = append(shares, Share{
			Participant: p.Participant,
			Owed:        owed,
		})
	}
	shares[0].Owed = shares[0].Owed.Add(amount.Sub(sum))

	return shares, nil
}
