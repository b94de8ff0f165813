// Package analytics contains spending-analytics use cases.
package analytics

import "strings"

// ExportCategoryTotalsCSV serializes category totals as
// "Category,Amount" lines. Category names are assumed comma-free, so
// no quoting is applied.
func ExportCategoryTotalsCSV(totals []CategoryTotal) string {
	var sb strings.Builder
	sb.WriteString("Category,Amount\n")
	for _, total := range totals {
		sb.WriteString(total.Category)
		sb.WriteString(",")
		sb.WriteString(total.Amount.StringFixed(2))
		sb.WriteString("\n")
	}
	return sb.String()
}
