package category

import "time"

type LoanCategory struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex:ux_loan_categories_name" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LoanCategory) TableName() string { return "loan_categories" }
