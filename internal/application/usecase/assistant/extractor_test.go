package assistant

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExtractBudgetDraft_IncomeAndSingleExpense(t *testing.T) {
	draft := ExtractBudgetDraft("My income is $3,000 and rent is 1200")

	if draft == nil {
		t.Fatal("expected a draft, got nil")
	}
	if draft.Income == nil {
		t.Fatal("expected income to be extracted")
	}
	if !draft.Income.Equal(decimal.RequireFromString("3000")) {
		t.Errorf("income = %s, want 3000", draft.Income)
	}
	rent, ok := draft.Expenses["rent"]
	if !ok {
		t.Fatal("expected rent expense to be extracted")
	}
	if !rent.Equal(decimal.RequireFromString("1200")) {
		t.Errorf("rent = %s, want 1200", rent)
	}
	if _, ok := draft.Expenses["groceries"]; ok {
		t.Error("groceries must be absent, not zero")
	}
	if len(draft.Suggestions) != 0 {
		t.Errorf("suggestions = %v, want none", draft.Suggestions)
	}
}

func TestExtractBudgetDraft_MultipleExpensesWithCents(t *testing.T) {
	draft := ExtractBudgetDraft("groceries around 450.75, utilities 120 and transportation: $85.50")

	if draft == nil {
		t.Fatal("expected a draft, got nil")
	}
	want := map[string]string{
		"groceries":      "450.75",
		"utilities":      "120",
		"transportation": "85.50",
	}
	if len(draft.Expenses) != len(want) {
		t.Fatalf("expenses = %v, want %d entries", draft.Expenses, len(want))
	}
	for category, amount := range want {
		got, ok := draft.Expenses[category]
		if !ok {
			t.Errorf("missing expense %q", category)
			continue
		}
		if !got.Equal(decimal.RequireFromString(amount)) {
			t.Errorf("%s = %s, want %s", category, got, amount)
		}
	}
	if draft.Income != nil {
		t.Errorf("income = %s, want absent", draft.Income)
	}
}

func TestExtractBudgetDraft_NothingExtractedReturnsNil(t *testing.T) {
	tests := []string{
		"",
		"hello there",
		"what should I do about my finances",
	}
	for _, text := range tests {
		if draft := ExtractBudgetDraft(text); draft != nil {
			t.Errorf("ExtractBudgetDraft(%q) = %+v, want nil", text, draft)
		}
	}
}

func TestExtractBudgetDraft_Suggestions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "reduce stem",
			text: "I want to reduce my spending this month",
			want: []string{suggestionReduceSpending},
		},
		{
			name: "emergency fund stems",
			text: "should I start an emergency fund",
			want: []string{suggestionEmergencyFund},
		},
		{
			name: "both families",
			text: "help me save more and build an emergency fund",
			want: []string{suggestionReduceSpending, suggestionEmergencyFund},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := ExtractBudgetDraft(tt.text)
			if draft == nil {
				t.Fatal("expected a draft, got nil")
			}
			if len(draft.Suggestions) != len(tt.want) {
				t.Fatalf("suggestions = %v, want %v", draft.Suggestions, tt.want)
			}
			for i := range tt.want {
				if draft.Suggestions[i] != tt.want[i] {
					t.Errorf("suggestion[%d] = %q, want %q", i, draft.Suggestions[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractBudgetDraft_MalformedNumbersAreSkipped(t *testing.T) {
	// "12,34" is not a valid thousands grouping, so the first
	// alternative cannot match it as one token; only well-formed
	// amounts are accepted.
	draft := ExtractBudgetDraft("rent is ...")
	if draft != nil {
		t.Errorf("draft = %+v, want nil for text without a parseable amount", draft)
	}
}
