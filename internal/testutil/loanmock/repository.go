package loanmock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/loan"
)

// Repo is a function-backed mock satisfying loan.Repository. Only the
// methods a test needs get a Fn; the rest return zero values.
type Repo struct {
	CreateRequestFn             func(ctx context.Context, l *domain.LoanRequest) error
	GetRequestByIDFn            func(ctx context.Context, id uint64) (*domain.LoanRequest, error)
	ListRequestsFn              func(ctx context.Context, f domain.RequestFilter) ([]domain.LoanRequest, error)
	MarkDecidedFn               func(ctx context.Context, id uint64, to domain.Status, approvedAmount decimal.Decimal, approvedAt *time.Time) (bool, error)
	SetPaidFlagFn               func(ctx context.Context, id uint64, paid bool) error
	NullCategoryRefsFn          func(ctx context.Context, categoryID uint64) error
	CreateTransactionFn         func(ctx context.Context, t *domain.LoanTransaction) error
	ListTransactionsByRequestFn func(ctx context.Context, loanRequestID uint64) ([]domain.LoanTransaction, error)
	ListTransactionsByUserFn    func(ctx context.Context, userID uint64) ([]domain.LoanTransaction, error)
	CountRequestsFn             func(ctx context.Context, status domain.Status, userID uint64) (int64, error)
	SumApprovedAmountFn         func(ctx context.Context, userID uint64) (decimal.Decimal, error)
	SumPaidFn                   func(ctx context.Context, userID uint64) (decimal.Decimal, error)
}

func (m *Repo) CreateRequest(ctx context.Context, l *domain.LoanRequest) error {
	if m.CreateRequestFn != nil {
		return m.CreateRequestFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetRequestByID(ctx context.Context, id uint64) (*domain.LoanRequest, error) {
	if m.GetRequestByIDFn != nil {
		return m.GetRequestByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListRequests(ctx context.Context, f domain.RequestFilter) ([]domain.LoanRequest, error) {
	if m.ListRequestsFn != nil {
		return m.ListRequestsFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) MarkDecided(ctx context.Context, id uint64, to domain.Status, approvedAmount decimal.Decimal, approvedAt *time.Time) (bool, error) {
	if m.MarkDecidedFn != nil {
		return m.MarkDecidedFn(ctx, id, to, approvedAmount, approvedAt)
	}
	return false, nil
}

func (m *Repo) SetPaidFlag(ctx context.Context, id uint64, paid bool) error {
	if m.SetPaidFlagFn != nil {
		return m.SetPaidFlagFn(ctx, id, paid)
	}
	return nil
}

func (m *Repo) NullCategoryRefs(ctx context.Context, categoryID uint64) error {
	if m.NullCategoryRefsFn != nil {
		return m.NullCategoryRefsFn(ctx, categoryID)
	}
	return nil
}

func (m *Repo) CreateTransaction(ctx context.Context, t *domain.LoanTransaction) error {
	if m.CreateTransactionFn != nil {
		return m.CreateTransactionFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListTransactionsByRequest(ctx context.Context, loanRequestID uint64) ([]domain.LoanTransaction, error) {
	if m.ListTransactionsByRequestFn != nil {
		return m.ListTransactionsByRequestFn(ctx, loanRequestID)
	}
	return nil, nil
}

func (m *Repo) ListTransactionsByUser(ctx context.Context, userID uint64) ([]domain.LoanTransaction, error) {
	if m.ListTransactionsByUserFn != nil {
		return m.ListTransactionsByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) CountRequests(ctx context.Context, status domain.Status, userID uint64) (int64, error) {
	if m.CountRequestsFn != nil {
		return m.CountRequestsFn(ctx, status, userID)
	}
	return 0, nil
}

func (m *Repo) SumApprovedAmount(ctx context.Context, userID uint64) (decimal.Decimal, error) {
	if m.SumApprovedAmountFn != nil {
		return m.SumApprovedAmountFn(ctx, userID)
	}
	return decimal.Zero, nil
}

func (m *Repo) SumPaid(ctx context.Context, userID uint64) (decimal.Decimal, error) {
	if m.SumPaidFn != nil {
		return m.SumPaidFn(ctx, userID)
	}
	return decimal.Zero, nil
}
