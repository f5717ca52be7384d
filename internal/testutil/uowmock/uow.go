package uowmock

import (
	"context"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/uow"
)

// UoW is a function-backed mock satisfying uow.UnitOfWork. The default
// behavior runs fn against the Repos field with no transaction.
type UoW struct {
	Repos      uow.Repos
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}
