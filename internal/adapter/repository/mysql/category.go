package mysql

import (
	"context"

	"gorm.io/gorm"

	categoryDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/category"
)

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

func (r *CategoryRepository) Create(ctx context.Context, c *categoryDomain.LoanCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) Save(ctx context.Context, c *categoryDomain.LoanCategory) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&categoryDomain.LoanCategory{}, id).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint64) (*categoryDomain.LoanCategory, error) {
	var out categoryDomain.LoanCategory
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*categoryDomain.LoanCategory, error) {
	var out categoryDomain.LoanCategory
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}

func (r *CategoryRepository) List(ctx context.Context) ([]categoryDomain.LoanCategory, error) {
	var out []categoryDomain.LoanCategory
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}
