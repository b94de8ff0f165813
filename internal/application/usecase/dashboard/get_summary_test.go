package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/event"
	"github.com/walletwise/backend/internal/domain/entity"
)

type fakeBudgetRepo struct {
	budgets []*entity.Budget
	err     error
}

func (f *fakeBudgetRepo) Create(context.Context, *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) FindByID(context.Context, uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}
func (f *fakeBudgetRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Budget, error) {
	return f.budgets, f.err
}
func (f *fakeBudgetRepo) Update(context.Context, *entity.Budget) error       { return nil }
func (f *fakeBudgetRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fakeTransactionRepo struct {
	transactions []*entity.TransactionWithCategory
	err          error

	// entered and blockOn, when set, let a test hold a recompute open
	// while events arrive: the fake signals entered, then waits.
	entered chan struct{}
	blockOn chan struct{}
}

func (f *fakeTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (f *fakeTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) FindByUserAndRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.TransactionWithCategory, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.blockOn != nil {
		<-f.blockOn
	}
	return f.transactions, f.err
}
func (f *fakeTransactionRepo) FindRecentByUser(context.Context, uuid.UUID, int) ([]*entity.TransactionWithCategory, error) {
	return f.transactions, f.err
}
func (f *fakeTransactionRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fakeEMIRepo struct {
	openCount int
	err       error
}

func (f *fakeEMIRepo) Create(context.Context, *entity.EMI) error { return nil }
func (f *fakeEMIRepo) FindByID(context.Context, uuid.UUID) (*entity.EMI, error) {
	return nil, nil
}
func (f *fakeEMIRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.EMI, error) {
	return nil, nil
}
func (f *fakeEMIRepo) CountOpenByUser(context.Context, uuid.UUID) (int, error) {
	return f.openCount, f.err
}
func (f *fakeEMIRepo) Update(context.Context, *entity.EMI) error { return nil }
func (f *fakeEMIRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fakeSummaryCache struct {
	mu          sync.Mutex
	stored      map[uuid.UUID]*adapter.DashboardSummary
	setCalls    int
	invalidated int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{stored: make(map[uuid.UUID]*adapter.DashboardSummary)}
}

func (f *fakeSummaryCache) Get(_ context.Context, userID uuid.UUID) (*adapter.DashboardSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored[userID], nil
}

func (f *fakeSummaryCache) Set(_ context.Context, userID uuid.UUID, summary *adapter.DashboardSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored[userID] = summary
	f.setCalls++
	return nil
}

func (f *fakeSummaryCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stored, userID)
	f.invalidated++
	return nil
}

func (f *fakeSummaryCache) sets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func budgetWithIncome(income string) *entity.Budget {
	return &entity.Budget{ID: uuid.New(), TotalIncome: dec(income)}
}

func expenseOf(amount string) *entity.TransactionWithCategory {
	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{ID: uuid.New(), Amount: dec(amount), Date: time.Now()},
	}
}

func TestGetSummary_ComputesTotals(t *testing.T) {
	uc := NewGetSummaryUseCase(
		&fakeBudgetRepo{budgets: []*entity.Budget{budgetWithIncome("1000"), budgetWithIncome("500")}},
		&fakeTransactionRepo{transactions: []*entity.TransactionWithCategory{expenseOf("200")}},
		&fakeEMIRepo{openCount: 2},
		newFakeSummaryCache(),
	)

	output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := output.Summary
	if !s.TotalIncome.Equal(dec("1500")) {
		t.Errorf("total income = %s, want 1500", s.TotalIncome)
	}
	if !s.TotalExpenses.Equal(dec("200")) {
		t.Errorf("total expenses = %s, want 200", s.TotalExpenses)
	}
	if !s.RemainingBalance.Equal(dec("1300")) {
		t.Errorf("remaining balance = %s, want 1300", s.RemainingBalance)
	}
	if s.UpcomingEMICount != 2 {
		t.Errorf("upcoming EMI count = %d, want 2", s.UpcomingEMICount)
	}
}

func TestGetSummary_PartialFailureDegradesToEmpty(t *testing.T) {
	uc := NewGetSummaryUseCase(
		&fakeBudgetRepo{err: errors.New("db down")},
		&fakeTransactionRepo{transactions: []*entity.TransactionWithCategory{expenseOf("75")}},
		&fakeEMIRepo{openCount: 1},
		newFakeSummaryCache(),
	)

	output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("partial failure must not surface an error, got %v", err)
	}

	s := output.Summary
	if !s.TotalIncome.IsZero() {
		t.Errorf("total income = %s, want 0 when budgets are unavailable", s.TotalIncome)
	}
	if !s.TotalExpenses.Equal(dec("75")) {
		t.Errorf("total expenses = %s, want 75", s.TotalExpenses)
	}
	if !s.RemainingBalance.Equal(dec("-75")) {
		t.Errorf("remaining balance = %s, want -75", s.RemainingBalance)
	}
	if s.UpcomingEMICount != 1 {
		t.Errorf("upcoming EMI count = %d, want 1", s.UpcomingEMICount)
	}
}

func TestGetSummary_TotalFailureIsZeroSummary(t *testing.T) {
	uc := NewGetSummaryUseCase(
		&fakeBudgetRepo{err: errors.New("db down")},
		&fakeTransactionRepo{err: errors.New("db down")},
		&fakeEMIRepo{err: errors.New("db down")},
		newFakeSummaryCache(),
	)

	output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("total failure must not surface an error, got %v", err)
	}

	s := output.Summary
	if !s.TotalIncome.IsZero() || !s.TotalExpenses.IsZero() || !s.RemainingBalance.IsZero() || s.UpcomingEMICount != 0 {
		t.Errorf("summary = %+v, want all zeros", s)
	}
}

func TestGetSummary_ServedFromCache(t *testing.T) {
	cache := newFakeSummaryCache()
	userID := uuid.New()
	cached := &adapter.DashboardSummary{TotalIncome: dec("999")}
	_ = cache.Set(context.Background(), userID, cached)

	uc := NewGetSummaryUseCase(
		&fakeBudgetRepo{budgets: []*entity.Budget{budgetWithIncome("1")}},
		&fakeTransactionRepo{},
		&fakeEMIRepo{},
		cache,
	)

	output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Summary.TotalIncome.Equal(dec("999")) {
		t.Errorf("total income = %s, want the cached 999", output.Summary.TotalIncome)
	}

	output, err = uc.Execute(context.Background(), GetSummaryInput{UserID: userID, ForceRefresh: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Summary.TotalIncome.Equal(dec("1")) {
		t.Errorf("total income = %s, want 1 after forced refresh", output.Summary.TotalIncome)
	}
}

func TestGetSummary_EventInvalidatesCache(t *testing.T) {
	cache := newFakeSummaryCache()
	userID := uuid.New()
	_ = cache.Set(context.Background(), userID, &adapter.DashboardSummary{TotalIncome: dec("999")})

	uc := NewGetSummaryUseCase(
		&fakeBudgetRepo{budgets: []*entity.Budget{budgetWithIncome("42")}},
		&fakeTransactionRepo{},
		&fakeEMIRepo{},
		cache,
	)
	bus := event.NewBus()
	uc.Subscribe(bus)

	bus.Publish(event.Event{Type: event.TransactionAdded, UserID: userID})

	output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Summary.TotalIncome.Equal(dec("42")) {
		t.Errorf("total income = %s, want 42 recomputed after invalidation", output.Summary.TotalIncome)
	}
}

func TestGetSummary_StaleRecomputeIsDiscarded(t *testing.T) {
	cache := newFakeSummaryCache()
	userID := uuid.New()
	entered := make(chan struct{})
	release := make(chan struct{})
	transactionRepo := &fakeTransactionRepo{entered: entered, blockOn: release}

	uc := NewGetSummaryUseCase(
		&fakeBudgetRepo{budgets: []*entity.Budget{budgetWithIncome("100")}},
		transactionRepo,
		&fakeEMIRepo{},
		cache,
	)
	bus := event.NewBus()
	uc.Subscribe(bus)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.Execute(context.Background(), GetSummaryInput{UserID: userID, ForceRefresh: true})
	}()

	// A newer change lands while the recompute is still reading.
	<-entered
	bus.Publish(event.Event{Type: event.BudgetChanged, UserID: userID})
	release <- struct{}{}
	<-done

	if got := cache.sets(); got != 0 {
		t.Errorf("cache Set called %d times, want 0 for a stale recompute", got)
	}

	// The next recompute carries the current token and is cached.
	transactionRepo.entered = nil
	close(release)
	if _, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID, ForceRefresh: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cache.sets(); got != 1 {
		t.Errorf("cache Set called %d times, want 1 after a current recompute", got)
	}
}
