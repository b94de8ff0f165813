// Package assistant contains the natural-language budget assistant use cases.
package assistant

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/domain/entity"
)

// promptContext is the budget state included in the oracle prompt.
type promptContext struct {
	TotalIncome        decimal.Decimal
	Allocations        []entity.BudgetAllocation
	RecentTransactions []*entity.TransactionWithCategory
}

// buildSystemPrompt renders the assistant instructions plus the user's
// current budget context for the completion oracle.
func buildSystemPrompt(pc promptContext) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal budgeting assistant for the WalletWise app. The user will describe income, expenses, or financial goals in plain language.

Reply with short, practical budgeting advice in plain text. Do not reply with JSON or code. Reference the user's current budget when it is relevant.

CURRENT BUDGET:
`)

	if pc.TotalIncome.IsPositive() {
		sb.WriteString(fmt.Sprintf("- Monthly income: %s\n", pc.TotalIncome.StringFixed(2)))
	} else {
		sb.WriteString("- Monthly income: not set\n")
	}

	if len(pc.Allocations) > 0 {
		sb.WriteString("- Planned expenses:\n")
		for _, alloc := range pc.Allocations {
			sb.WriteString(fmt.Sprintf("  - %s: %s\n", alloc.CategoryKey, alloc.Amount.StringFixed(2)))
		}
	} else {
		sb.WriteString("- Planned expenses: none\n")
	}

	if len(pc.RecentTransactions) > 0 {
		sb.WriteString("\nRECENT TRANSACTIONS:\n")
		for _, tx := range pc.RecentTransactions {
			sb.WriteString(fmt.Sprintf("- %s: %s (%s)\n",
				tx.Transaction.Date.Format("2006-01-02"),
				tx.Transaction.Amount.StringFixed(2),
				tx.CategoryLabel(),
			))
		}
	}

	return sb.String()
}
