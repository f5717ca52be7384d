package loan

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RequestFilter narrows listings. Zero values mean "any". User and
// Category associations are always loaded; transactions only on request.
type RequestFilter struct {
	Status           Status
	UserID           uint64
	WithTransactions bool
}

type Repository interface {
	CreateRequest(ctx context.Context, l *LoanRequest) error
	GetRequestByID(ctx context.Context, id uint64) (*LoanRequest, error)
	ListRequests(ctx context.Context, f RequestFilter) ([]LoanRequest, error)

	// MarkDecided flips a request out of Pending in one guarded UPDATE:
	// the write only lands if the row is still Pending, so two concurrent
	// decisions cannot both succeed. Returns false when the guard failed.
	MarkDecided(ctx context.Context, id uint64, to Status, approvedAmount decimal.Decimal, approvedAt *time.Time) (bool, error)

	// SetPaidFlag records the is_paid marker on a request.
	SetPaidFlag(ctx context.Context, id uint64, paid bool) error

	// NullCategoryRefs detaches every request pointing at the category.
	// Requests survive category deletion with category_id = NULL.
	NullCategoryRefs(ctx context.Context, categoryID uint64) error

	CreateTransaction(ctx context.Context, t *LoanTransaction) error
	ListTransactionsByRequest(ctx context.Context, loanRequestID uint64) ([]LoanTransaction, error)
	ListTransactionsByUser(ctx context.Context, userID uint64) ([]LoanTransaction, error)

	// Aggregates for the dashboards; userID 0 scopes to all users.
	// Sums over zero rows are decimal zero, never an error.
	CountRequests(ctx context.Context, status Status, userID uint64) (int64, error)
	SumApprovedAmount(ctx context.Context, userID uint64) (decimal.Decimal, error)
	SumPaid(ctx context.Context, userID uint64) (decimal.Decimal, error)
}
