package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExportCategoryTotalsCSV(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "Rent", Amount: decimal.RequireFromString("1200")},
		{Category: "Groceries", Amount: decimal.RequireFromString("340.5")},
	}

	got := ExportCategoryTotalsCSV(totals)
	want := "Category,Amount\nRent,1200.00\nGroceries,340.50\n"
	if got != want {
		t.Errorf("csv = %q, want %q", got, want)
	}
}

func TestExportCategoryTotalsCSV_Empty(t *testing.T) {
	if got := ExportCategoryTotalsCSV(nil); got != "Category,Amount\n" {
		t.Errorf("csv = %q, want header only", got)
	}
}
