package categorymock

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/category"
)

// Repo is a function-backed mock satisfying category.Repository.
type Repo struct {
	CreateFn    func(ctx context.Context, c *domain.LoanCategory) error
	SaveFn      func(ctx context.Context, c *domain.LoanCategory) error
	DeleteFn    func(ctx context.Context, id uint64) error
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.LoanCategory, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.LoanCategory, error)
	ListFn      func(ctx context.Context) ([]domain.LoanCategory, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.LoanCategory) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.LoanCategory) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanCategory, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.LoanCategory, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.LoanCategory, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
