// Package analytics contains spending-analytics use cases.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/domain/entity"
)

// monthLabels is the fixed short-label calendar sequence used for trend points.
var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// CategoryTotal is one accumulated category bucket. Order within a
// report follows first appearance in the input.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyTrendPoint is one month bucket of the trend series, ordered by
// calendar month index.
type MonthlyTrendPoint struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// SpendingReport is the full aggregation result for one date range.
type SpendingReport struct {
	CategoryTotals []CategoryTotal     `json:"category_totals"`
	MonthlyTrend   []MonthlyTrendPoint `json:"monthly_trend"`
	TotalSpent     decimal.Decimal     `json:"total_spent"`
	AverageDaily   decimal.Decimal     `json:"average_daily"`
}

// Aggregate rolls up the given transactions over the inclusive date
// range. It is a pure function: totals are rebuilt from scratch on
// every call, callers may pass pre-filtered or unfiltered input, and
// empty input yields an all-zero report rather than an error.
func Aggregate(transactions []*entity.TransactionWithCategory, dateRange DateRange) SpendingReport {
	report := SpendingReport{
		CategoryTotals: []CategoryTotal{},
		MonthlyTrend:   []MonthlyTrendPoint{},
		TotalSpent:     decimal.Zero,
		AverageDaily:   decimal.Zero,
	}

	categoryIndex := make(map[string]int)
	var monthAmounts [12]decimal.Decimal
	var monthSeen [12]bool

	for _, tx := range transactions {
		if tx == nil || tx.Transaction == nil {
			continue
		}
		if !inRange(tx.Transaction.Date, dateRange) {
			continue
		}

		amount := tx.Transaction.Amount
		report.TotalSpent = report.TotalSpent.Add(amount)

		label := tx.CategoryLabel()
		if i, ok := categoryIndex[label]; ok {
			report.CategoryTotals[i].Amount = report.CategoryTotals[i].Amount.Add(amount)
		} else {
			categoryIndex[label] = len(report.CategoryTotals)
			report.CategoryTotals = append(report.CategoryTotals, CategoryTotal{Category: label, Amount: amount})
		}

		monthIdx := int(tx.Transaction.Date.Month()) - 1
		monthAmounts[monthIdx] = monthAmounts[monthIdx].Add(amount)
		monthSeen[monthIdx] = true
	}

	// Trend points come out in calendar order, not first-seen order.
	for i := 0; i < 12; i++ {
		if monthSeen[i] {
			report.MonthlyTrend = append(report.MonthlyTrend, MonthlyTrendPoint{
				Month:  monthLabels[i],
				Amount: monthAmounts[i],
			})
		}
	}

	if days := dateRange.Days(); days > 0 {
		report.AverageDaily = report.TotalSpent.Div(decimal.NewFromInt(int64(days)))
	}

	return report
}

// inRange reports whether date falls within the inclusive range.
func inRange(date time.Time, r DateRange) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}
