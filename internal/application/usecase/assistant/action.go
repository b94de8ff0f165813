// Package assistant contains the natural-language budget assistant use cases.
package assistant

import "strings"

// Action is the intent the assistant classified the user message into.
type Action string

const (
	ActionUpdateBudget     Action = "update_budget"
	ActionAddTransaction   Action = "add_transaction"
	ActionSetCategoryLimit Action = "set_category_limit"
)

// actionKeywordFamilies is checked in precedence order; the first
// family with a match wins.
var actionKeywordFamilies = []struct {
	action   Action
	keywords []string
}{
	{ActionAddTransaction, []string{"transaction", "spent", "bought"}},
	{ActionSetCategoryLimit, []string{"budget", "limit"}},
	{ActionUpdateBudget, []string{"income", "salary"}},
}

// ClassifyAction maps a user message to an action. Classification is
// independent of whether extraction found anything; unmatched text
// defaults to updating the budget.
func ClassifyAction(text string) Action {
	lowered := strings.ToLower(text)
	for _, family := range actionKeywordFamilies {
		for _, keyword := range family.keywords {
			if strings.Contains(lowered, keyword) {
				return family.action
			}
		}
	}
	return ActionUpdateBudget
}
