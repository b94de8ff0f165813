// Package dashboard computes the headline totals for the landing view.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/event"
)

// GetSummaryInput represents the input for fetching the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID

	// ForceRefresh bypasses the cache and recomputes from storage.
	ForceRefresh bool
}

// GetSummaryOutput represents the computed dashboard summary.
type GetSummaryOutput struct {
	Summary adapter.DashboardSummary
}

// GetSummaryUseCase computes the dashboard summary from the user's
// budgets, current-month transactions and open EMIs, caching the result
// per user. Data-change events invalidate the cache and advance a
// per-user refresh token so a recompute that raced with a newer change
// never overwrites fresher data.
type GetSummaryUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	emiRepo         adapter.EMIRepository
	cache           adapter.SummaryCache
	now             func() time.Time

	mu     sync.Mutex
	tokens map[uuid.UUID]uint64
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	emiRepo adapter.EMIRepository,
	cache adapter.SummaryCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		emiRepo:         emiRepo,
		cache:           cache,
		now:             time.Now,
		tokens:          make(map[uuid.UUID]uint64),
	}
}

// Subscribe registers the use case on the bus so any data change drops
// the affected user's cached summary.
func (uc *GetSummaryUseCase) Subscribe(bus *event.Bus) {
	bus.Subscribe(uc.handleChange,
		event.BudgetChanged,
		event.TransactionAdded,
		event.TransactionDeleted,
		event.EMIChanged,
	)
}

// Execute returns the dashboard summary, served from cache when fresh.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if !input.ForceRefresh {
		cached, err := uc.cache.Get(ctx, input.UserID)
		if err != nil {
			slog.Warn("Summary cache read failed, recomputing", "user_id", input.UserID, "error", err)
		} else if cached != nil {
			return &GetSummaryOutput{Summary: *cached}, nil
		}
	}

	token := uc.currentToken(input.UserID)
	summary := uc.compute(ctx, input.UserID)

	// Only publish the result to the cache if no newer change arrived
	// while we were computing; a stale recompute is discarded.
	if uc.tokenStillCurrent(input.UserID, token) {
		if err := uc.cache.Set(ctx, input.UserID, &summary); err != nil {
			slog.Warn("Summary cache write failed", "user_id", input.UserID, "error", err)
		}
	} else {
		slog.Debug("Discarding stale summary recompute", "user_id", input.UserID)
	}

	return &GetSummaryOutput{Summary: summary}, nil
}

// compute aggregates the three data sources. Each fetch failure
// degrades that source to an empty collection so the dashboard still
// renders; when every source fails the summary is all zeros.
func (uc *GetSummaryUseCase) compute(ctx context.Context, userID uuid.UUID) adapter.DashboardSummary {
	var summary adapter.DashboardSummary
	failures := 0

	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		slog.Warn("Failed to fetch budgets for summary", "user_id", userID, "error", err)
		budgets = nil
		failures++
	}
	for _, budget := range budgets {
		summary.TotalIncome = summary.TotalIncome.Add(budget.TotalIncome)
	}

	transactions, err := uc.transactionRepo.FindByUserAndRange(ctx, userID, uc.monthStart(), uc.now())
	if err != nil {
		slog.Warn("Failed to fetch transactions for summary", "user_id", userID, "error", err)
		transactions = nil
		failures++
	}
	for _, transaction := range transactions {
		if transaction == nil || transaction.Transaction == nil {
			continue
		}
		summary.TotalExpenses = summary.TotalExpenses.Add(transaction.Transaction.Amount)
	}

	openEMIs, err := uc.emiRepo.CountOpenByUser(ctx, userID)
	if err != nil {
		slog.Warn("Failed to count open EMIs for summary", "user_id", userID, "error", err)
		openEMIs = 0
		failures++
	}
	summary.UpcomingEMICount = openEMIs

	summary.RemainingBalance = summary.TotalIncome.Sub(summary.TotalExpenses)

	if failures == 3 {
		slog.Error("All summary sources failed, returning zero summary", "user_id", userID)
		return adapter.DashboardSummary{
			TotalIncome:      decimal.Zero,
			TotalExpenses:    decimal.Zero,
			RemainingBalance: decimal.Zero,
		}
	}
	return summary
}

func (uc *GetSummaryUseCase) monthStart() time.Time {
	now := uc.now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// handleChange runs on every data-change event for the user: drop the
// cached summary and advance the refresh token.
func (uc *GetSummaryUseCase) handleChange(ev event.Event) {
	uc.mu.Lock()
	uc.tokens[ev.UserID]++
	uc.mu.Unlock()

	if err := uc.cache.Invalidate(context.Background(), ev.UserID); err != nil {
		slog.Warn("Summary cache invalidation failed", "user_id", ev.UserID, "error", err)
	}
}

func (uc *GetSummaryUseCase) currentToken(userID uuid.UUID) uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.tokens[userID]
}

func (uc *GetSummaryUseCase) tokenStillCurrent(userID uuid.UUID, token uint64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.tokens[userID] == token
}
