package interest

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ITZ-HURAIRAH18/LoanVerse/pkg/apperr"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		termYears    int
		wantInterest string
		wantTotal    string
	}{
		{"reference case", "10000", 2, "1600.00", "11600.00"},
		{"one year", "5000", 1, "400.00", "5400.00"},
		{"fractional amount rounds after multiply", "1234.56", 3, "296.29", "1530.85"},
		{"small amount", "0.01", 1, "0.00", "0.01"},
		{"long term", "250000.50", 10, "200000.40", "450000.90"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(dec(tt.amount), tt.termYears)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if got.InterestAmount.String() != dec(tt.wantInterest).String() {
				t.Errorf("interest = %s, want %s", got.InterestAmount, tt.wantInterest)
			}
			if got.TotalWithInterest.String() != dec(tt.wantTotal).String() {
				t.Errorf("total = %s, want %s", got.TotalWithInterest, tt.wantTotal)
			}
		})
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		termYears int
	}{
		{"zero amount", "0", 2},
		{"negative amount", "-100", 2},
		{"zero term", "10000", 0},
		{"negative term", "10000", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(dec(tt.amount), tt.termYears)
			if !apperr.IsKind(err, apperr.KindInvalidInput) {
				t.Fatalf("err = %v, want invalid_input", err)
			}
		})
	}
}
