package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
	"github.com/walletwise/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.CategoryModel{},
		&model.BudgetModel{},
		&model.BudgetAllocationModel{},
		&model.TransactionModel{},
		&model.EMIModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("dana@example.com", "Dana", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "dana@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != user.ID || found.Currency != entity.DefaultCurrency {
		t.Errorf("found = %+v, want the created user with default currency", found)
	}

	exists, err := repo.ExistsByEmail(ctx, "dana@example.com")
	if err != nil || !exists {
		t.Errorf("ExistsByEmail = %v, %v; want true", exists, err)
	}

	if _, err := repo.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("unknown email error = %v, want ErrUserNotFound", err)
	}
}

func TestBudgetRepository_RoundTripAndUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	budget := entity.NewBudget(userID, "August", "2026-08", dec("3000"), []entity.BudgetAllocation{
		{CategoryKey: "rent", Amount: dec("1200")},
		{CategoryKey: "groceries", Amount: dec("450")},
	})
	if err := repo.Create(ctx, budget); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByID(ctx, budget.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found.Allocations) != 2 {
		t.Fatalf("got %d allocations, want 2", len(found.Allocations))
	}
	if !found.TotalIncome.Equal(dec("3000")) {
		t.Errorf("income = %s, want 3000", found.TotalIncome)
	}

	// Replace an allocation amount and add a new category.
	income := dec("3200")
	draft := &entity.BudgetDraft{
		Income:   &income,
		Expenses: map[string]decimal.Decimal{"rent": dec("1300"), "utilities": dec("120")},
	}
	draft.ApplyTo(found)
	if err := repo.Update(ctx, found); err != nil {
		t.Fatalf("update: %v", err)
	}

	updated, err := repo.FindByID(ctx, budget.ID)
	if err != nil {
		t.Fatalf("refind: %v", err)
	}
	if len(updated.Allocations) != 3 {
		t.Errorf("got %d allocations after update, want 3", len(updated.Allocations))
	}
	rent, ok := updated.AllocationFor("rent")
	if !ok || !rent.Amount.Equal(dec("1300")) {
		t.Errorf("rent allocation = %+v, want 1300", rent)
	}

	// Newest month first ordering.
	older := entity.NewBudget(userID, "July", "2026-07", dec("2900"), nil)
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("create older: %v", err)
	}
	budgets, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(budgets) != 2 || budgets[0].Month != "2026-08" {
		t.Errorf("list order = %v, want newest month first", budgets)
	}

	// Soft delete hides the budget from reads.
	if err := repo.Delete(ctx, budget.ID, userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, budget.ID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("deleted budget error = %v, want ErrBudgetNotFound", err)
	}
	if err := repo.Delete(ctx, budget.ID, userID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("double delete error = %v, want ErrBudgetNotFound", err)
	}
}

func TestTransactionRepository_RangeAndCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	categories := NewCategoryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	groceries, err := categories.FindOrCreateByName(ctx, userID, "Groceries")
	if err != nil {
		t.Fatalf("category: %v", err)
	}

	mk := func(amount string, date time.Time, categoryID *uuid.UUID) *entity.Transaction {
		tx := entity.NewTransaction(userID, nil, categoryID, dec(amount), date, "")
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("create tx: %v", err)
		}
		return tx
	}

	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	march := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	mk("50", january, &groceries.ID)
	mk("75", march, nil)

	// Inclusive range picks up boundary dates.
	got, err := repo.FindByUserAndRange(ctx, userID, january, march)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	// Newest first.
	if !got[0].Transaction.Date.Equal(march) {
		t.Errorf("first result dated %s, want newest first", got[0].Transaction.Date)
	}
	if got[0].CategoryLabel() != entity.MiscellaneousCategory {
		t.Errorf("uncategorized label = %q, want %q", got[0].CategoryLabel(), entity.MiscellaneousCategory)
	}
	if got[1].CategoryLabel() != "Groceries" {
		t.Errorf("categorized label = %q, want Groceries", got[1].CategoryLabel())
	}

	// Narrow range excludes the March spend.
	got, err = repo.FindByUserAndRange(ctx, userID, january, january.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("narrow range: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d transactions in narrow range, want 1", len(got))
	}

	recent, err := repo.FindRecentByUser(ctx, userID, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || !recent[0].Transaction.Date.Equal(march) {
		t.Errorf("recent = %v, want the newest transaction only", recent)
	}
}

func TestCategoryRepository_FindOrCreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first, err := repo.FindOrCreateByName(ctx, userID, "Rent")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := repo.FindOrCreateByName(ctx, userID, "Rent")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.ID != second.ID {
		t.Error("same name must resolve to the same category")
	}

	// Another user's identical name is a distinct category.
	other, err := repo.FindOrCreateByName(ctx, uuid.New(), "Rent")
	if err != nil {
		t.Fatalf("other user: %v", err)
	}
	if other.ID == first.ID {
		t.Error("categories are scoped per user")
	}
}

func TestEMIRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewEMIRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	open := entity.NewEMI(userID, "Auto Loan Co", dec("320"), 24, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(ctx, open); err != nil {
		t.Fatalf("create: %v", err)
	}
	settled := entity.NewEMI(userID, "Paid Off Inc", dec("100"), 12, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	settled.RemainingMonths = 0
	if err := repo.Create(ctx, settled); err != nil {
		t.Fatalf("create settled: %v", err)
	}

	count, err := repo.CountOpenByUser(ctx, userID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("open count = %d, want 1", count)
	}

	open.RecordPayment()
	if err := repo.Update(ctx, open); err != nil {
		t.Fatalf("update: %v", err)
	}
	found, err := repo.FindByID(ctx, open.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.RemainingMonths != 23 {
		t.Errorf("remaining = %d, want 23", found.RemainingMonths)
	}

	emis, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(emis) != 2 || emis[0].Lender != "Paid Off Inc" {
		t.Errorf("list = %v, want soonest due first", emis)
	}

	if err := repo.Delete(ctx, open.ID, uuid.New()); !errors.Is(err, domainerror.ErrEMINotFound) {
		t.Errorf("foreign delete error = %v, want ErrEMINotFound", err)
	}
}

func TestTokenRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().UTC().Add(time.Hour)

	if err := repo.SaveRefreshToken(ctx, "tok-1", userID, expiresAt); err != nil {
		t.Fatalf("save: %v", err)
	}

	valid, err := repo.IsRefreshTokenValid(ctx, "tok-1")
	if err != nil || !valid {
		t.Errorf("IsRefreshTokenValid = %v, %v; want true", valid, err)
	}

	if err := repo.InvalidateRefreshToken(ctx, "tok-1"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	valid, err = repo.IsRefreshTokenValid(ctx, "tok-1")
	if err != nil || valid {
		t.Errorf("IsRefreshTokenValid after invalidation = %v, %v; want false", valid, err)
	}

	// Password reset tokens are single use.
	if err := repo.SavePasswordResetToken(ctx, "reset-1", userID, "dana@example.com", expiresAt); err != nil {
		t.Fatalf("save reset: %v", err)
	}
	reset, err := repo.GetPasswordResetToken(ctx, "reset-1")
	if err != nil {
		t.Fatalf("get reset: %v", err)
	}
	if reset == nil || reset.Email != "dana@example.com" {
		t.Fatalf("reset = %+v, want the saved token", reset)
	}
	if err := repo.InvalidatePasswordResetToken(ctx, "reset-1"); err != nil {
		t.Fatalf("invalidate reset: %v", err)
	}
	if reset, _ := repo.GetPasswordResetToken(ctx, "reset-1"); reset != nil {
		t.Error("used reset token must not be returned")
	}
}
