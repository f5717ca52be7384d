package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	loanDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) CreateRequest(ctx context.Context, l *loanDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetRequestByID(ctx context.Context, id uint64) (*loanDomain.LoanRequest, error) {
	var out loanDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Preload("User").Preload("Category").
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListRequests(ctx context.Context, f loanDomain.RequestFilter) ([]loanDomain.LoanRequest, error) {
	q := r.db.WithContext(ctx).Preload("User").Preload("Category")
	if f.WithTransactions {
		q = q.Preload("Transactions")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	var out []loanDomain.LoanRequest
	res := q.Order("id DESC").Find(&out)
	return out, res.Error
}

// MarkDecided only lands when the row is still Pending; the status guard in
// the WHERE clause is the check-and-set that keeps two admins from deciding
// the same request.
func (r *LoanRepository) MarkDecided(ctx context.Context, id uint64, to loanDomain.Status, approvedAmount decimal.Decimal, approvedAt *time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanRequest{}).
		Where("id = ? AND status = ?", id, loanDomain.StatusPending).
		Updates(map[string]any{
			"status":                to,
			"total_approved_amount": approvedAmount,
			"approved_date":         approvedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *LoanRepository) SetPaidFlag(ctx context.Context, id uint64, paid bool) error {
	return r.db.WithContext(ctx).
		Model(&loanDomain.LoanRequest{}).
		Where("id = ?", id).
		Update("is_paid", paid).Error
}

func (r *LoanRepository) NullCategoryRefs(ctx context.Context, categoryID uint64) error {
	return r.db.WithContext(ctx).
		Model(&loanDomain.LoanRequest{}).
		Where("category_id = ?", categoryID).
		Update("category_id", gorm.Expr("NULL")).Error
}

func (r *LoanRepository) CreateTransaction(ctx context.Context, t *loanDomain.LoanTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *LoanRepository) ListTransactionsByRequest(ctx context.Context, loanRequestID uint64) ([]loanDomain.LoanTransaction, error) {
	var out []loanDomain.LoanTransaction
	res := r.db.WithContext(ctx).
		Where("loan_request_id = ?", loanRequestID).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListTransactionsByUser(ctx context.Context, userID uint64) ([]loanDomain.LoanTransaction, error) {
	var out []loanDomain.LoanTransaction
	res := r.db.WithContext(ctx).
		Joins("JOIN loan_requests ON loan_requests.id = loan_transactions.loan_request_id").
		Where("loan_requests.user_id = ?", userID).
		Order("loan_transactions.id").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CountRequests(ctx context.Context, status loanDomain.Status, userID uint64) (int64, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.LoanRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	var n int64
	res := q.Count(&n)
	return n, res.Error
}

func (r *LoanRepository) SumApprovedAmount(ctx context.Context, userID uint64) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).
		Model(&loanDomain.LoanRequest{}).
		Where("status = ?", loanDomain.StatusApproved)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	return sumColumn(q, "request_amount")
}

func (r *LoanRepository) SumPaid(ctx context.Context, userID uint64) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.LoanTransaction{})
	if userID != 0 {
		q = q.Joins("JOIN loan_requests ON loan_requests.id = loan_transactions.loan_request_id").
			Where("loan_requests.user_id = ?", userID)
	}
	return sumColumn(q, "amount_paid")
}

// sumColumn scans COALESCE(SUM(col), 0) so an empty table sums to zero.
func sumColumn(q *gorm.DB, col string) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := q.Select("COALESCE(SUM(" + col + "), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
