package category

import "context"

type Repository interface {
	Create(ctx context.Context, c *LoanCategory) error
	Save(ctx context.Context, c *LoanCategory) error
	// Delete removes the category row only. Nulling out references on loan
	// requests is the loan repository's NullCategoryRefs, and the two must
	// run in one transaction (see usecase/category).
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (*LoanCategory, error)
	GetByName(ctx context.Context, name string) (*LoanCategory, error)
	List(ctx context.Context) ([]LoanCategory, error)
}
