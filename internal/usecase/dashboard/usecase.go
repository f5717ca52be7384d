package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/loan"
	userDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/user"
)

// Usecase computes read-only rollups over the ledger. Every call scans
// fresh; nothing here is cached.
type Usecase struct {
	users    userDomain.Repository
	loans    loan.Repository
	currency string
}

func NewUsecase(users userDomain.Repository, loans loan.Repository, currency string) *Usecase {
	return &Usecase{users: users, loans: loans, currency: currency}
}

// StatCard is one tile on a dashboard. Value is a count (int64), a plain
// number (float64) or a currency-prefixed string, mirroring what the
// front-end renders.
type StatCard struct {
	Key        string `json:"key,omitempty"`
	Title      string `json:"title"`
	Value      any    `json:"value"`
	ColorClass string `json:"color_class"`
}

type AdminDashboard struct {
	Stats []StatCard `json:"stats"`
}

func (u *Usecase) AdminStats(ctx context.Context) (*AdminDashboard, error) {
	customers, err := u.users.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.loans.CountRequests(ctx, loan.StatusPending, 0)
	if err != nil {
		return nil, err
	}
	approved, err := u.loans.CountRequests(ctx, loan.StatusApproved, 0)
	if err != nil {
		return nil, err
	}
	rejected, err := u.loans.CountRequests(ctx, loan.StatusRejected, 0)
	if err != nil {
		return nil, err
	}
	approvedAmount, err := u.loans.SumApprovedAmount(ctx, 0)
	if err != nil {
		return nil, err
	}
	paid, err := u.loans.SumPaid(ctx, 0)
	if err != nil {
		return nil, err
	}
	due := approvedAmount.Sub(paid)

	return &AdminDashboard{Stats: []StatCard{
		{Key: "users", Title: "Total Customers", Value: customers, ColorClass: "text-blue-600"},
		{Key: "pending", Title: "Pending Loans", Value: pending, ColorClass: "text-yellow-500"},
		{Key: "approved", Title: "Approved Loans", Value: approved, ColorClass: "text-green-600"},
		{Key: "rejected", Title: "Rejected Loans", Value: rejected, ColorClass: "text-red-500"},
		{Key: "approved_amount", Title: "Total Approved Amount", Value: num(approvedAmount), ColorClass: "text-cyan-600"},
		{Key: "paid", Title: "Total Paid Amount", Value: num(paid), ColorClass: "text-green-700"},
		{Key: "unpaid", Title: "Total Due Amount", Value: num(due), ColorClass: "text-red-600"},
	}}, nil
}

type UserDashboard struct {
	UserStats []StatCard `json:"user_stats"`
	Username  string     `json:"username"`
}

func (u *Usecase) UserStats(ctx context.Context, cu userDomain.CurrentUser) (*UserDashboard, error) {
	total, err := u.loans.CountRequests(ctx, "", cu.ID)
	if err != nil {
		return nil, err
	}
	approved, err := u.loans.CountRequests(ctx, loan.StatusApproved, cu.ID)
	if err != nil {
		return nil, err
	}
	rejected, err := u.loans.CountRequests(ctx, loan.StatusRejected, cu.ID)
	if err != nil {
		return nil, err
	}
	approvedAmount, err := u.loans.SumApprovedAmount(ctx, cu.ID)
	if err != nil {
		return nil, err
	}
	paid, err := u.loans.SumPaid(ctx, cu.ID)
	if err != nil {
		return nil, err
	}
	due := approvedAmount.Sub(paid)

	return &UserDashboard{
		Username: cu.Username,
		UserStats: []StatCard{
			{Title: "Total Loan Requests", Value: total, ColorClass: "text-blue-400"},
			{Title: "Approved", Value: approved, ColorClass: "text-green-400"},
			{Title: "Rejected", Value: rejected, ColorClass: "text-red-400"},
			{Title: "Total Approved Amount", Value: u.amount(approvedAmount), ColorClass: "text-cyan-400"},
			{Title: "Total Paid", Value: u.amount(paid), ColorClass: "text-green-400"},
			{Title: "Total Due", Value: u.amount(due), ColorClass: "text-yellow-400"},
		},
	}, nil
}

type CustomerDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *Usecase) Customers(ctx context.Context) ([]CustomerDTO, error) {
	users, err := u.users.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CustomerDTO, 0, len(users))
	for _, c := range users {
		out = append(out, CustomerDTO{ID: c.ID, Username: c.Username, Email: c.Email})
	}
	return out, nil
}

func num(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }

// amount renders a user-facing total with the currency prefix. The
// decimals underneath stay currency-agnostic.
func (u *Usecase) amount(d decimal.Decimal) string {
	return fmt.Sprintf("%s%s", u.currency, d.Round(2).StringFixed(2))
}
