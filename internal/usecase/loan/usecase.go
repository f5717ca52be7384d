package loan

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	categoryDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/category"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/loan"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/uow"
	userDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/user"
	"github.com/ITZ-HURAIRAH18/LoanVerse/pkg/apperr"
	"github.com/ITZ-HURAIRAH18/LoanVerse/pkg/interest"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type Usecase struct {
	loans      loan.Repository
	categories categoryDomain.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(loans loan.Repository, categories categoryDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, categories: categories, uow: tx}
}

type SubmitInput struct {
	CategoryID uint64
	Reason     string
	Amount     decimal.Decimal
	TermYears  int
}

type RequestDTO struct {
	ID            uint64  `json:"id"`
	CategoryID    uint64  `json:"category_id"`
	RequestAmount float64 `json:"request_amount"`
	TermYears     int     `json:"term_years"`
	Status        string  `json:"status"`
	RequestDate   string  `json:"request_date"`
}

// Submit creates a loan request in Pending for the calling user.
func (u *Usecase) Submit(ctx context.Context, cu userDomain.CurrentUser, in SubmitInput) (*RequestDTO, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Invalid("request amount must be greater than zero")
	}
	if in.TermYears <= 0 {
		return nil, apperr.Invalid("term years must be greater than zero")
	}
	cat, err := u.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("loan category %d not found", in.CategoryID)
		}
		return nil, err
	}

	l := &loan.LoanRequest{
		UserID:              cu.ID,
		CategoryID:          &cat.ID,
		Reason:              in.Reason,
		RequestAmount:       in.Amount,
		TermYears:           in.TermYears,
		Status:              loan.StatusPending,
		TotalApprovedAmount: decimal.Zero,
	}
	if err := u.loans.CreateRequest(ctx, l); err != nil {
		return nil, err
	}
	return &RequestDTO{
		ID:            l.ID,
		CategoryID:    cat.ID,
		RequestAmount: money(l.RequestAmount),
		TermYears:     l.TermYears,
		Status:        string(l.Status),
		RequestDate:   dateOnly(l.RequestDate),
	}, nil
}

type DecisionDTO struct {
	ID     uint64 `json:"id"`
	Status string `json:"status"`
}

// Decide moves a Pending request to Approved or Rejected, exactly once.
// The status guard on the UPDATE is what stops two concurrent admins from
// both winning; a request that is no longer Pending is a conflict.
func (u *Usecase) Decide(ctx context.Context, cu userDomain.CurrentUser, loanID uint64, action string) (*DecisionDTO, error) {
	if !cu.IsStaff {
		return nil, apperr.Forbidden("admin access only")
	}
	var to loan.Status
	switch action {
	case ActionApprove:
		to = loan.StatusApproved
	case ActionReject:
		to = loan.StatusRejected
	default:
		return nil, apperr.Invalid("action must be approve or reject")
	}

	var dto *DecisionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetRequestByID(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("loan %d not found", loanID)
			}
			return err
		}
		if l.Status != loan.StatusPending {
			return apperr.Conflict("loan %d already decided: %s", loanID, l.Status)
		}

		approvedAmount := decimal.Zero
		var approvedAt *time.Time
		if to == loan.StatusApproved {
			approvedAmount = l.RequestAmount
			now := time.Now().UTC()
			approvedAt = &now
		}
		ok, err := r.Loans.MarkDecided(ctx, loanID, to, approvedAmount, approvedAt)
		if err != nil {
			return err
		}
		if !ok {
			// Lost the race: someone decided between the read and the write.
			return apperr.Conflict("loan %d already decided", loanID)
		}
		dto = &DecisionDTO{ID: loanID, Status: string(to)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type PaymentDTO struct {
	ID          uint64  `json:"id"`
	LoanID      uint64  `json:"loan_id"`
	AmountPaid  float64 `json:"amount_paid"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"payment_date"`
}

// RecordPayment appends a repayment to the caller's own request. The
// request's is_paid flag is set on every payment, full or partial; the
// Paid/Unpaid distinction shown to admins is derived, never stored.
func (u *Usecase) RecordPayment(ctx context.Context, cu userDomain.CurrentUser, loanID uint64, amount decimal.Decimal) (*PaymentDTO, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Invalid("payment amount must be greater than zero")
	}

	var dto *PaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetRequestByID(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("loan %d not found", loanID)
			}
			return err
		}
		if l.UserID != cu.ID {
			return apperr.Forbidden("loan %d does not belong to you", loanID)
		}

		t := &loan.LoanTransaction{
			LoanRequestID: l.ID,
			AmountPaid:    amount,
			Status:        loan.TxnPaid,
		}
		if err := r.Loans.CreateTransaction(ctx, t); err != nil {
			return err
		}
		if err := r.Loans.SetPaidFlag(ctx, l.ID, true); err != nil {
			return err
		}
		dto = &PaymentDTO{
			ID:          t.ID,
			LoanID:      l.ID,
			AmountPaid:  money(t.AmountPaid),
			Status:      string(t.Status),
			PaymentDate: dateOnly(t.PaymentDate),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type HistoryItem struct {
	ID                uint64       `json:"id"`
	Category          CategoryName `json:"category"`
	RequestAmount     float64      `json:"request_amount"`
	TermYears         int          `json:"term_years"`
	InterestAmount    float64      `json:"interest_amount"`
	TotalWithInterest float64      `json:"total_with_interest"`
	Status            string       `json:"status"`
	RequestDate       string       `json:"request_date"`
	IsFullyPaid       bool         `json:"is_fully_paid"`
}

type CategoryName struct {
	Name string `json:"name"`
}

// History lists the caller's requests with the interest breakdown and
// whether payments have covered the total owed (principal + interest).
func (u *Usecase) History(ctx context.Context, cu userDomain.CurrentUser) ([]HistoryItem, error) {
	loans, err := u.loans.ListRequests(ctx, loan.RequestFilter{UserID: cu.ID, WithTransactions: true})
	if err != nil {
		return nil, err
	}
	out := make([]HistoryItem, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		b, err := interest.Compute(l.RequestAmount, l.TermYears)
		if err != nil {
			return nil, err
		}
		totalPaid := loan.TotalPaid(l.Transactions)
		out = append(out, HistoryItem{
			ID:                l.ID,
			Category:          CategoryName{Name: categoryName(l)},
			RequestAmount:     money(l.RequestAmount),
			TermYears:         l.TermYears,
			InterestAmount:    money(b.InterestAmount),
			TotalWithInterest: money(b.TotalWithInterest),
			Status:            string(l.Status),
			RequestDate:       dateOnly(l.RequestDate),
			IsFullyPaid:       totalPaid.GreaterThanOrEqual(b.TotalWithInterest),
		})
	}
	return out, nil
}

type TransactionItem struct {
	ID         uint64  `json:"id"`
	LoanID     uint64  `json:"loan_id"`
	AmountPaid float64 `json:"amount_paid"`
	Status     string  `json:"status"`
	PaidOn     string  `json:"paid_on"`
}

func (u *Usecase) TransactionHistory(ctx context.Context, cu userDomain.CurrentUser) ([]TransactionItem, error) {
	txns, err := u.loans.ListTransactionsByUser(ctx, cu.ID)
	if err != nil {
		return nil, err
	}
	out := make([]TransactionItem, 0, len(txns))
	for _, t := range txns {
		out = append(out, TransactionItem{
			ID:         t.ID,
			LoanID:     t.LoanRequestID,
			AmountPaid: money(t.AmountPaid),
			Status:     string(t.Status),
			PaidOn:     t.PaymentDate.Format("2006-01-02 15:04"),
		})
	}
	return out, nil
}

type ListItem struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Date     string  `json:"date"`
}

// ListAll is the admin's flat view over every request.
func (u *Usecase) ListAll(ctx context.Context) ([]ListItem, error) {
	loans, err := u.loans.ListRequests(ctx, loan.RequestFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]ListItem, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		out = append(out, ListItem{
			ID:       l.ID,
			Username: username(l),
			Category: categoryName(l),
			Amount:   money(l.RequestAmount),
			Status:   string(l.Status),
			Date:     dateOnly(l.RequestDate),
		})
	}
	return out, nil
}

type StatusItem struct {
	ID            uint64  `json:"id"`
	User          string  `json:"user"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	RequestedDate string  `json:"requested_date"`
}

// ListByStatus is the admin's filtered view (pending or rejected shape).
func (u *Usecase) ListByStatus(ctx context.Context, status loan.Status) ([]StatusItem, error) {
	loans, err := u.loans.ListRequests(ctx, loan.RequestFilter{Status: status})
	if err != nil {
		return nil, err
	}
	out := make([]StatusItem, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		out = append(out, StatusItem{
			ID:            l.ID,
			User:          username(l),
			Category:      categoryName(l),
			Amount:        money(l.RequestAmount),
			RequestedDate: dateOnly(l.RequestDate),
		})
	}
	return out, nil
}

type ApprovedItem struct {
	ID                  uint64  `json:"id"`
	User                string  `json:"user"`
	Category            string  `json:"category"`
	TotalApprovedAmount float64 `json:"total_approved_amount"`
	ApprovedDate        string  `json:"approved_date"`
}

func (u *Usecase) ListApproved(ctx context.Context) ([]ApprovedItem, error) {
	loans, err := u.loans.ListRequests(ctx, loan.RequestFilter{Status: loan.StatusApproved})
	if err != nil {
		return nil, err
	}
	out := make([]ApprovedItem, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		date := l.RequestDate
		if l.ApprovedDate != nil {
			date = *l.ApprovedDate
		}
		out = append(out, ApprovedItem{
			ID:                  l.ID,
			User:                username(l),
			Category:            categoryName(l),
			TotalApprovedAmount: money(l.TotalApprovedAmount),
			ApprovedDate:        dateOnly(date),
		})
	}
	return out, nil
}

type UserLoanItem struct {
	ID             uint64            `json:"id"`
	Username       string            `json:"username"`
	Category       string            `json:"category"`
	ApprovedAmount float64           `json:"approved_amount"`
	TermYears      int               `json:"term_years"`
	ApprovedDate   string            `json:"approved_date"`
	Status         string            `json:"status"`
	Transactions   []UserLoanPayment `json:"transactions"`
}

type UserLoanPayment struct {
	AmountPaid  float64 `json:"amount_paid"`
	PaymentDate string  `json:"payment_date"`
}

// UserLoans is the admin repayment overview: every request with its
// payments and the derived Paid/Unpaid display status.
func (u *Usecase) UserLoans(ctx context.Context) ([]UserLoanItem, error) {
	loans, err := u.loans.ListRequests(ctx, loan.RequestFilter{WithTransactions: true})
	if err != nil {
		return nil, err
	}
	out := make([]UserLoanItem, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		totalPaid := loan.TotalPaid(l.Transactions)
		payments := make([]UserLoanPayment, 0, len(l.Transactions))
		for _, t := range l.Transactions {
			payments = append(payments, UserLoanPayment{
				AmountPaid:  money(t.AmountPaid),
				PaymentDate: dateOnly(t.PaymentDate),
			})
		}
		out = append(out, UserLoanItem{
			ID:             l.ID,
			Username:       username(l),
			Category:       categoryName(l),
			ApprovedAmount: money(l.TotalApprovedAmount),
			TermYears:      l.TermYears,
			ApprovedDate:   dateOnly(l.RequestDate),
			Status:         loan.DisplayStatus(l, totalPaid),
			Transactions:   payments,
		})
	}
	return out, nil
}

func money(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }

func dateOnly(t time.Time) string { return t.Format("2006-01-02") }

func categoryName(l *loan.LoanRequest) string {
	if l.Category == nil {
		return "N/A"
	}
	return l.Category.Name
}

func username(l *loan.LoanRequest) string {
	if l.User == nil {
		return ""
	}
	return l.User.Username
}
