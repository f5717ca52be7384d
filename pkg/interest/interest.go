package interest

import (
	"github.com/shopspring/decimal"

	"github.com/ITZ-HURAIRAH18/LoanVerse/pkg/apperr"
)

// Simple interest at a fixed 8% per year of term. The rounding order
// matters: multiply first, then round once to 2 decimal places (half up),
// otherwise totals drift by a cent against the ledger.
var rate = decimal.RequireFromString("0.08")

type Breakdown struct {
	InterestAmount    decimal.Decimal
	TotalWithInterest decimal.Decimal
}

// Compute derives the interest surcharge and the grand total owed for a
// request amount over termYears. Pure and deterministic.
func Compute(requestAmount decimal.Decimal, termYears int) (Breakdown, error) {
	if requestAmount.LessThanOrEqual(decimal.Zero) {
		return Breakdown{}, apperr.Invalid("request amount must be greater than zero")
	}
	if termYears <= 0 {
		return Breakdown{}, apperr.Invalid("term years must be greater than zero")
	}

	interest := requestAmount.Mul(rate).Mul(decimal.NewFromInt(int64(termYears))).Round(2)
	total := requestAmount.Add(interest).Round(2)
	return Breakdown{InterestAmount: interest, TotalWithInterest: total}, nil
}
