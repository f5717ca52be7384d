package category

import (
	"context"
	"errors"

	"gorm.io/gorm"

	categoryDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/category"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/uow"
	"github.com/ITZ-HURAIRAH18/LoanVerse/pkg/apperr"
)

type Usecase struct {
	categories categoryDomain.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(categories categoryDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{categories: categories, uow: tx}
}

type CategoryDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (u *Usecase) Create(ctx context.Context, name, description string) (*CategoryDTO, error) {
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}
	if _, err := u.categories.GetByName(ctx, name); err == nil {
		return nil, apperr.Conflict("category %q already exists", name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &categoryDomain.LoanCategory{Name: name, Description: description}
	if err := u.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return &CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description}, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*CategoryDTO, error) {
	c, err := u.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category %d not found", id)
		}
		return nil, err
	}
	return &CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description}, nil
}

// Update overwrites name and/or description; empty fields keep the
// current value, matching form semantics of partial edits.
func (u *Usecase) Update(ctx context.Context, id uint64, name, description string) (*CategoryDTO, error) {
	c, err := u.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category %d not found", id)
		}
		return nil, err
	}
	if name != "" && name != c.Name {
		if _, err := u.categories.GetByName(ctx, name); err == nil {
			return nil, apperr.Conflict("category %q already exists", name)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c.Name = name
	}
	if description != "" {
		c.Description = description
	}
	if err := u.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return &CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description}, nil
}

// Delete removes the category and detaches referencing loan requests in
// the same transaction. Requests are never cascade-deleted; they keep
// living with a NULL category.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Categories.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("category %d not found", id)
			}
			return err
		}
		if err := r.Loans.NullCategoryRefs(ctx, id); err != nil {
			return err
		}
		return r.Categories.Delete(ctx, id)
	})
}

func (u *Usecase) List(ctx context.Context) ([]CategoryDTO, error) {
	cats, err := u.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out, nil
}

type OptionDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Options is the public id+name listing backing the apply-loan form.
func (u *Usecase) Options(ctx context.Context) ([]OptionDTO, error) {
	cats, err := u.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]OptionDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, OptionDTO{ID: c.ID, Name: c.Name})
	}
	return out, nil
}
