package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/domain/entity"
)

func tx(amount string, date time.Time, category string) *entity.TransactionWithCategory {
	record := &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:     uuid.New(),
			Amount: decimal.RequireFromString(amount),
			Date:   date,
		},
	}
	if category != "" {
		record.Category = &entity.Category{ID: uuid.New(), Name: category}
	}
	return record
}

func TestAggregate_EmptyInput(t *testing.T) {
	report := Aggregate(nil, DateRange{Start: date(2024, time.March, 1), End: date(2024, time.March, 31)})

	if !report.TotalSpent.IsZero() {
		t.Errorf("total spent = %s, want 0", report.TotalSpent)
	}
	if !report.AverageDaily.IsZero() {
		t.Errorf("average daily = %s, want 0", report.AverageDaily)
	}
	if len(report.CategoryTotals) != 0 {
		t.Errorf("category totals = %v, want empty", report.CategoryTotals)
	}
	if len(report.MonthlyTrend) != 0 {
		t.Errorf("monthly trend = %v, want empty", report.MonthlyTrend)
	}
}

func TestAggregate_TotalEqualsSumOfCategoryTotals(t *testing.T) {
	dateRange := DateRange{Start: date(2024, time.January, 1), End: date(2024, time.March, 31)}
	transactions := []*entity.TransactionWithCategory{
		tx("120.50", date(2024, time.January, 5), "Rent"),
		tx("33.25", date(2024, time.February, 10), "Groceries"),
		tx("46.25", date(2024, time.February, 20), "Rent"),
		tx("10.00", date(2024, time.March, 1), ""),
	}

	report := Aggregate(transactions, dateRange)

	sum := decimal.Zero
	for _, total := range report.CategoryTotals {
		sum = sum.Add(total.Amount)
	}
	if !report.TotalSpent.Equal(sum) {
		t.Errorf("total spent %s != sum of category totals %s", report.TotalSpent, sum)
	}
	if !report.TotalSpent.Equal(decimal.RequireFromString("210.00")) {
		t.Errorf("total spent = %s, want 210.00", report.TotalSpent)
	}
}

func TestAggregate_CategoryOrderAndMiscellaneous(t *testing.T) {
	dateRange := DateRange{Start: date(2024, time.March, 1), End: date(2024, time.March, 31)}
	transactions := []*entity.TransactionWithCategory{
		tx("50", date(2024, time.March, 2), "Groceries"),
		tx("20", date(2024, time.March, 3), ""),
		tx("30", date(2024, time.March, 4), "Groceries"),
		tx("15", date(2024, time.March, 5), "Transport"),
	}

	report := Aggregate(transactions, dateRange)

	want := []struct {
		category string
		amount   string
	}{
		{"Groceries", "80"},
		{"Miscellaneous", "20"},
		{"Transport", "15"},
	}
	if len(report.CategoryTotals) != len(want) {
		t.Fatalf("got %d category totals, want %d", len(report.CategoryTotals), len(want))
	}
	for i, w := range want {
		got := report.CategoryTotals[i]
		if got.Category != w.category {
			t.Errorf("category[%d] = %q, want %q (first-seen order)", i, got.Category, w.category)
		}
		if !got.Amount.Equal(decimal.RequireFromString(w.amount)) {
			t.Errorf("category[%d] amount = %s, want %s", i, got.Amount, w.amount)
		}
	}
}

func TestAggregate_MonthlyTrendCalendarOrder(t *testing.T) {
	dateRange := DateRange{Start: date(2024, time.January, 1), End: date(2024, time.December, 31)}
	// Mar inserted before Jan: output must still be calendar ordered.
	transactions := []*entity.TransactionWithCategory{
		tx("100", date(2024, time.March, 10), "Rent"),
		tx("40", date(2024, time.January, 10), "Rent"),
		tx("60", date(2024, time.March, 20), "Rent"),
	}

	report := Aggregate(transactions, dateRange)

	if len(report.MonthlyTrend) != 2 {
		t.Fatalf("got %d trend points, want 2", len(report.MonthlyTrend))
	}
	if report.MonthlyTrend[0].Month != "Jan" || report.MonthlyTrend[1].Month != "Mar" {
		t.Errorf("trend order = [%s, %s], want [Jan, Mar]",
			report.MonthlyTrend[0].Month, report.MonthlyTrend[1].Month)
	}
	if !report.MonthlyTrend[1].Amount.Equal(decimal.RequireFromString("160")) {
		t.Errorf("Mar amount = %s, want 160", report.MonthlyTrend[1].Amount)
	}
}

func TestAggregate_FiltersOutOfRangeAndIsIdempotent(t *testing.T) {
	dateRange := DateRange{Start: date(2024, time.March, 1), End: date(2024, time.March, 31)}
	transactions := []*entity.TransactionWithCategory{
		tx("50", date(2024, time.February, 28), "Rent"), // before range
		tx("75", date(2024, time.March, 1), "Rent"),     // inclusive start
		tx("25", date(2024, time.March, 31), "Rent"),    // inclusive end
		tx("90", date(2024, time.April, 1), "Rent"),     // after range
	}

	report := Aggregate(transactions, dateRange)
	if !report.TotalSpent.Equal(decimal.RequireFromString("100")) {
		t.Errorf("total spent = %s, want 100", report.TotalSpent)
	}

	// Re-aggregating only the in-range rows produces the same totals.
	again := Aggregate(transactions[1:3], dateRange)
	if !again.TotalSpent.Equal(report.TotalSpent) {
		t.Errorf("pre-filtered total = %s, unfiltered total = %s", again.TotalSpent, report.TotalSpent)
	}
}

func TestAggregate_AverageDaily(t *testing.T) {
	dateRange := DateRange{Start: date(2024, time.March, 1), End: date(2024, time.March, 11)}
	transactions := []*entity.TransactionWithCategory{
		tx("100", date(2024, time.March, 5), "Rent"),
	}

	report := Aggregate(transactions, dateRange)
	if !report.AverageDaily.Equal(decimal.RequireFromString("10")) {
		t.Errorf("average daily = %s, want 10", report.AverageDaily)
	}

	// Degenerate range: average is zero, not an error.
	point := DateRange{Start: date(2024, time.March, 5), End: date(2024, time.March, 5)}
	report = Aggregate(transactions, point)
	if !report.AverageDaily.IsZero() {
		t.Errorf("average daily for zero-day range = %s, want 0", report.AverageDaily)
	}
}
