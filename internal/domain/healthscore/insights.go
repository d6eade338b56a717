package healthscore

import "fmt"

// Insights gera a lista de sugestões do mês. As regras são avaliadas em
// ordem fixa e independem do score numérico; a lista nunca sai vazia.
func Insights(facts MonthlyFacts) []string {
	suggestions := make([]string, 0, 4)

	if facts.TotalIncome == 0 {
		suggestions = append(suggestions, "📊 Add income to unlock accurate financial insights.")
	} else if facts.TotalExpenses > facts.TotalIncome {
		suggestions = append(suggestions, "⚠️ You're spending more than earning. Try to reduce expenses or increase income.")
	}

	if facts.Savings <= 0 {
		suggestions = append(suggestions, "🏦 Start saving even small amounts regularly to build an emergency fund.")
	} else if facts.TotalIncome > 0 && (facts.Savings/facts.TotalIncome) < 0.1 {
		suggestions = append(suggestions, "📈 Aim to save at least 10% of your income each month.")
	}

	if len(facts.Budgets) == 0 {
		suggestions = append(suggestions, "💰 Set monthly budgets for each category to better control spending.")
	} else if exceeded := countExceeded(facts.Budgets); exceeded > 0 {
		suggestions = append(suggestions, fmt.Sprintf("⚠️ You're exceeding %d budget(s). Review and adjust your spending.", exceeded))
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "✅ You're managing your finances well. Keep it up!")
	}

	return suggestions
}

func countExceeded(budgets []BudgetFact) int {
	exceeded := 0
	for _, b := range budgets {
		if b.Spent > b.Limit {
			exceeded++
		}
	}
	return exceeded
}
