// Package assistant contains the natural-language budget assistant use cases.
package assistant

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/domain/entity"
)

// expenseVocabulary is the fixed set of category keys the deterministic
// extractor recognizes.
var expenseVocabulary = []string{
	"rent",
	"groceries",
	"transportation",
	"entertainment",
	"healthcare",
	"savings",
	"utilities",
}

// Canned advisory suggestions appended when trigger stems appear in the text.
const (
	suggestionReduceSpending = "Consider reducing discretionary spending to free up room in your budget."
	suggestionEmergencyFund  = "Consider building an emergency fund covering 3-6 months of expenses."
)

// amountPattern matches a decimal amount with optional thousands
// separators and optional cents, e.g. "1200", "1,200.50". Malformed
// numbers simply fail to match.
const amountPattern = `(\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?)`

// clauseGap matches the filler between a keyword and its amount without
// crossing into the next clause. Currency symbols pass through here.
const clauseGap = `[^0-9.!?;\n]{0,40}?`

var (
	incomeRegex     = regexp.MustCompile(`(?i)income` + clauseGap + amountPattern)
	expenseRegexes  = buildExpenseRegexes()
	reduceStemRegex = regexp.MustCompile(`(?i)\b(save|saving|reduce|reducing|cut)\w*`)
	fundStemRegex   = regexp.MustCompile(`(?i)\b(emergency|fund)\w*`)
)

func buildExpenseRegexes() map[string]*regexp.Regexp {
	regexes := make(map[string]*regexp.Regexp, len(expenseVocabulary))
	for _, category := range expenseVocabulary {
		regexes[category] = regexp.MustCompile(`(?i)` + category + clauseGap + amountPattern)
	}
	return regexes
}

// ExtractBudgetDraft parses free text into a sparse budget draft using
// deterministic pattern matching. It returns nil when nothing at all
// was extracted, so callers can distinguish "nothing found" from
// "found zeros".
func ExtractBudgetDraft(text string) *entity.BudgetDraft {
	draft := &entity.BudgetDraft{}

	if match := incomeRegex.FindStringSubmatch(text); match != nil {
		if amount, ok := parseAmount(match[1]); ok {
			draft.Income = &amount
		}
	}

	for _, category := range expenseVocabulary {
		match := expenseRegexes[category].FindStringSubmatch(text)
		if match == nil {
			continue
		}
		amount, ok := parseAmount(match[1])
		if !ok {
			continue
		}
		if draft.Expenses == nil {
			draft.Expenses = make(map[string]decimal.Decimal)
		}
		draft.Expenses[category] = amount
	}

	if reduceStemRegex.MatchString(text) {
		draft.Suggestions = append(draft.Suggestions, suggestionReduceSpending)
	}
	if fundStemRegex.MatchString(text) {
		draft.Suggestions = append(draft.Suggestions, suggestionEmergencyFund)
	}

	if draft.IsEmpty() {
		return nil
	}
	return draft
}

// parseAmount strips thousands separators and parses the matched amount.
func parseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
