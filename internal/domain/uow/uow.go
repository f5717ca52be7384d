package uow

import (
	"context"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/category"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/loan"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/user"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Users      user.Repository
	Categories category.Repository
	Loans      loan.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn against transaction-bound repos; any error rolls
	// the whole unit back.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
