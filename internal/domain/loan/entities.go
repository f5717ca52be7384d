package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/category"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Display statuses derived for listings; never persisted.
const (
	DisplayPaid   = "Paid"
	DisplayUnpaid = "Unpaid"
)

type LoanRequest struct {
	ID                  uint64                 `gorm:"primaryKey;column:id" json:"id"`
	UserID              uint64                 `gorm:"index:idx_loan_requests_user;not null" json:"user_id"`
	User                *user.User             `gorm:"foreignKey:UserID" json:"-"`
	CategoryID          *uint64                `gorm:"index:idx_loan_requests_category" json:"category_id"`
	Category            *category.LoanCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Reason              string                 `gorm:"type:text" json:"reason"`
	RequestAmount       decimal.Decimal        `gorm:"type:decimal(12,2)" json:"request_amount"`
	TermYears           int                    `gorm:"not null" json:"term_years"`
	Status              Status                 `gorm:"size:10;default:'Pending';index:idx_loan_requests_status" json:"status"`
	RequestDate         time.Time              `gorm:"autoCreateTime" json:"request_date"`
	ApprovedDate        *time.Time             `json:"approved_date"`
	TotalApprovedAmount decimal.Decimal        `gorm:"type:decimal(12,2);default:0" json:"total_approved_amount"`
	IsPaid              bool                   `gorm:"default:false" json:"is_paid"`
	Transactions        []LoanTransaction      `gorm:"foreignKey:LoanRequestID" json:"-"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

type TxnStatus string

const (
	TxnPaid TxnStatus = "Paid"
	TxnDue  TxnStatus = "Due"
)

// LoanTransaction is a single repayment against a request. Append-only:
// rows are never updated or deleted.
type LoanTransaction struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"id"`
	LoanRequestID uint64          `gorm:"index:idx_loan_transactions_request;not null" json:"loan_request_id"`
	LoanRequest   *LoanRequest    `gorm:"foreignKey:LoanRequestID" json:"-"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount_paid"`
	PaymentDate   time.Time       `gorm:"autoCreateTime" json:"payment_date"`
	Status        TxnStatus       `gorm:"size:10;default:'Paid'" json:"status"`
}

func (LoanTransaction) TableName() string { return "loan_transactions" }

// TotalPaid sums transaction amounts. Zero transactions sum to zero.
func TotalPaid(txns []LoanTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txns {
		total = total.Add(tx.AmountPaid)
	}
	return total
}

// DisplayStatus derives the label shown in listings. Pending and Rejected
// pass through unchanged; an Approved request is Paid once payments cover
// the approved amount, Unpaid otherwise. Pure over loan + its payments.
func DisplayStatus(l *LoanRequest, totalPaid decimal.Decimal) string {
	switch l.Status {
	case StatusRejected:
		return string(StatusRejected)
	case StatusPending:
		return string(StatusPending)
	}
	if totalPaid.GreaterThanOrEqual(l.TotalApprovedAmount) {
		return DisplayPaid
	}
	return DisplayUnpaid
}
