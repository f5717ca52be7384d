package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	categoryDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/category"
	loanDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/loan"
	userDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/user"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{},
		&categoryDomain.LoanCategory{},
		&loanDomain.LoanRequest{},
		&loanDomain.LoanTransaction{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedUser(t *testing.T, db *gorm.DB, username string, staff bool) *userDomain.User {
	t.Helper()
	u := &userDomain.User{Username: username, IsStaff: staff}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *categoryDomain.LoanCategory {
	t.Helper()
	c := &categoryDomain.LoanCategory{Name: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func seedRequest(t *testing.T, repo *LoanRepository, userID uint64, categoryID *uint64, amount string, status loanDomain.Status) *loanDomain.LoanRequest {
	t.Helper()
	l := &loanDomain.LoanRequest{
		UserID:              userID,
		CategoryID:          categoryID,
		Reason:              "test",
		RequestAmount:       dec(amount),
		TermYears:           2,
		Status:              status,
		TotalApprovedAmount: decimal.Zero,
	}
	if err := repo.CreateRequest(context.Background(), l); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return l
}

func TestCreateAndGetRequest(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "asha", false)
	c := seedCategory(t, db, "Gold")
	l := seedRequest(t, repo, u.ID, &c.ID, "10000", loanDomain.StatusPending)
	if l.ID == 0 {
		t.Fatal("CreateRequest did not set auto-increment ID")
	}

	got, err := repo.GetRequestByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetRequestByID: %v", err)
	}
	if got.Status != loanDomain.StatusPending {
		t.Errorf("status = %s", got.Status)
	}
	if !got.RequestAmount.Equal(dec("10000")) {
		t.Errorf("request_amount = %s", got.RequestAmount)
	}
	if got.User == nil || got.User.Username != "asha" {
		t.Errorf("user not preloaded: %+v", got.User)
	}
	if got.Category == nil || got.Category.Name != "Gold" {
		t.Errorf("category not preloaded: %+v", got.Category)
	}
	if got.ApprovedDate != nil {
		t.Errorf("approved_date = %v, want nil on a fresh request", got.ApprovedDate)
	}
}

func TestMarkDecided_OnlyOnce(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "asha", false)
	l := seedRequest(t, repo, u.ID, nil, "10000", loanDomain.StatusPending)

	now := time.Now().UTC()
	ok, err := repo.MarkDecided(ctx, l.ID, loanDomain.StatusApproved, dec("10000"), &now)
	if err != nil || !ok {
		t.Fatalf("first MarkDecided: ok=%v err=%v", ok, err)
	}

	got, err := repo.GetRequestByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetRequestByID: %v", err)
	}
	if got.Status != loanDomain.StatusApproved {
		t.Errorf("status = %s", got.Status)
	}
	if !got.TotalApprovedAmount.Equal(dec("10000")) {
		t.Errorf("total_approved_amount = %s", got.TotalApprovedAmount)
	}
	if got.ApprovedDate == nil {
		t.Error("approved_date not stamped")
	}

	// Second decision must miss the Pending guard and change nothing.
	ok, err = repo.MarkDecided(ctx, l.ID, loanDomain.StatusRejected, decimal.Zero, nil)
	if err != nil {
		t.Fatalf("second MarkDecided: %v", err)
	}
	if ok {
		t.Fatal("second MarkDecided reported success")
	}
	got, _ = repo.GetRequestByID(ctx, l.ID)
	if got.Status != loanDomain.StatusApproved || !got.TotalApprovedAmount.Equal(dec("10000")) {
		t.Fatalf("request mutated by losing decision: %+v", got)
	}
}

func TestNullCategoryRefs_KeepsRequests(t *testing.T) {
	db := openTestDB(t)
	loans := NewLoanRepository(db)
	cats := NewCategoryRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "asha", false)
	c := seedCategory(t, db, "Gold")
	l := seedRequest(t, loans, u.ID, &c.ID, "500", loanDomain.StatusPending)

	if err := loans.NullCategoryRefs(ctx, c.ID); err != nil {
		t.Fatalf("NullCategoryRefs: %v", err)
	}
	if err := cats.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := loans.GetRequestByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("request deleted with its category: %v", err)
	}
	if got.CategoryID != nil {
		t.Fatalf("category_id = %v, want NULL", *got.CategoryID)
	}
}

func TestTransactionsAndSums(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	asha := seedUser(t, db, "asha", false)
	bilal := seedUser(t, db, "bilal", false)

	la := seedRequest(t, repo, asha.ID, nil, "10000", loanDomain.StatusPending)
	now := time.Now().UTC()
	if ok, err := repo.MarkDecided(ctx, la.ID, loanDomain.StatusApproved, dec("10000"), &now); err != nil || !ok {
		t.Fatalf("MarkDecided: ok=%v err=%v", ok, err)
	}
	lb := seedRequest(t, repo, bilal.ID, nil, "2000", loanDomain.StatusPending)

	for _, amount := range []string{"1500.25", "499.75"} {
		err := repo.CreateTransaction(ctx, &loanDomain.LoanTransaction{
			LoanRequestID: la.ID,
			AmountPaid:    dec(amount),
			Status:        loanDomain.TxnPaid,
		})
		if err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
	}
	err := repo.CreateTransaction(ctx, &loanDomain.LoanTransaction{
		LoanRequestID: lb.ID,
		AmountPaid:    dec("100"),
		Status:        loanDomain.TxnPaid,
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	byUser, err := repo.ListTransactionsByUser(ctx, asha.ID)
	if err != nil {
		t.Fatalf("ListTransactionsByUser: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("asha transactions = %d, want 2", len(byUser))
	}

	total, err := repo.SumPaid(ctx, 0)
	if err != nil {
		t.Fatalf("SumPaid: %v", err)
	}
	if !total.Equal(dec("2100")) {
		t.Errorf("total paid = %s, want 2100", total)
	}
	scoped, err := repo.SumPaid(ctx, asha.ID)
	if err != nil {
		t.Fatalf("SumPaid scoped: %v", err)
	}
	if !scoped.Equal(dec("2000")) {
		t.Errorf("asha paid = %s, want 2000", scoped)
	}

	approved, err := repo.SumApprovedAmount(ctx, 0)
	if err != nil {
		t.Fatalf("SumApprovedAmount: %v", err)
	}
	if !approved.Equal(dec("10000")) {
		t.Errorf("approved sum = %s, want 10000 (pending requests excluded)", approved)
	}

	pending, err := repo.CountRequests(ctx, loanDomain.StatusPending, 0)
	if err != nil {
		t.Fatalf("CountRequests: %v", err)
	}
	if pending != 1 {
		t.Errorf("pending = %d, want 1", pending)
	}
}

func TestSums_EmptyTables(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	paid, err := repo.SumPaid(ctx, 0)
	if err != nil {
		t.Fatalf("SumPaid: %v", err)
	}
	if !paid.Equal(decimal.Zero) {
		t.Errorf("paid = %s, want 0", paid)
	}
	approved, err := repo.SumApprovedAmount(ctx, 42)
	if err != nil {
		t.Fatalf("SumApprovedAmount: %v", err)
	}
	if !approved.Equal(decimal.Zero) {
		t.Errorf("approved = %s, want 0", approved)
	}
	n, err := repo.CountRequests(ctx, "", 0)
	if err != nil || n != 0 {
		t.Fatalf("CountRequests = %d, %v", n, err)
	}
}

func TestListRequests_FiltersAndPreloads(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "asha", false)
	c := seedCategory(t, db, "Gold")
	l := seedRequest(t, repo, u.ID, &c.ID, "3000", loanDomain.StatusPending)
	seedRequest(t, repo, u.ID, nil, "4000", loanDomain.StatusRejected)

	err := repo.CreateTransaction(ctx, &loanDomain.LoanTransaction{
		LoanRequestID: l.ID, AmountPaid: dec("10"), Status: loanDomain.TxnPaid,
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	got, err := repo.ListRequests(ctx, loanDomain.RequestFilter{
		Status: loanDomain.StatusPending, UserID: u.ID, WithTransactions: true,
	})
	if err != nil {
		t.Fatalf("ListRequests: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].User == nil || got[0].Category == nil {
		t.Error("associations not preloaded")
	}
	if len(got[0].Transactions) != 1 {
		t.Errorf("transactions = %d, want 1", len(got[0].Transactions))
	}

	all, err := repo.ListRequests(ctx, loanDomain.RequestFilter{})
	if err != nil {
		t.Fatalf("ListRequests all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %d, want 2", len(all))
	}
}
