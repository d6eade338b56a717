package healthscore

import "math"

const (
	scoreFloor = 60
	scoreCeil  = 100
)

// Compute calcula o resultado de saúde financeira do mês. Função pura:
// sem estado, sem I/O, total para qualquer combinação de entradas.
func Compute(facts MonthlyFacts) HealthResult {
	hasIncome := facts.TotalIncome > 0
	hasExpenses := facts.TotalExpenses > 0
	hasBudgets := len(facts.Budgets) > 0

	if !hasIncome && !hasExpenses {
		return HealthResult{
			Status:      StatusNoData,
			StatusClass: ClassEmpty,
			Insights:    []string{},
			Breakdown:   Breakdown{},
			Message:     "Add income and expenses to see your financial health score",
		}
	}

	if !hasIncome || !hasExpenses {
		insights := make([]string, 0, 3)
		if !hasIncome {
			insights = append(insights, "Add income records to complete your financial profile")
		}
		if !hasExpenses {
			insights = append(insights, "Add expense records to track your spending")
		}
		if !hasBudgets {
			insights = append(insights, "Set budgets to improve score accuracy")
		}

		savingsRate := 0.0
		if facts.TotalIncome > 0 {
			savingsRate = (facts.Savings / facts.TotalIncome) * 100
		}

		return HealthResult{
			Status:      StatusIncomplete,
			StatusClass: ClassPartial,
			Insights:    insights,
			Breakdown: Breakdown{
				TotalIncome:   facts.TotalIncome,
				TotalExpenses: facts.TotalExpenses,
				Savings:       facts.Savings,
				SavingsRate:   savingsRate,
			},
			Message: "Add more financial data to calculate your health score",
		}
	}

	score := computeScore(facts)
	status, statusClass := statusFor(score)

	return HealthResult{
		Score:       &score,
		Status:      status,
		StatusClass: statusClass,
		Insights:    Insights(facts),
		Breakdown: Breakdown{
			TotalIncome:     facts.TotalIncome,
			TotalExpenses:   facts.TotalExpenses,
			Savings:         facts.Savings,
			SavingsRate:     math.Round((facts.Savings/facts.TotalIncome)*1000) / 10,
			BudgetCount:     len(facts.Budgets),
			BudgetsExceeded: countExceeded(facts.Budgets),
		},
	}
}

// computeScore soma os quatro sub-scores ponderados e aplica o piso de 60.
// O piso é regra de produto: usuários novos ou com pouca atividade nunca
// veem um número desanimador.
func computeScore(facts MonthlyFacts) int {
	score := 0

	// 1. Relação despesa/receita (40 pontos)
	if facts.TotalIncome > 0 {
		ratio := facts.TotalExpenses / facts.TotalIncome
		switch {
		case ratio <= 0.6:
			score += 40
		case ratio <= 0.8:
			score += 30
		case ratio <= 1:
			score += 20
		default:
			score += 10
		}
	} else {
		score += 10
	}

	// 2. Taxa de poupança (25 pontos)
	if facts.TotalIncome > 0 {
		savingsRate := facts.Savings / facts.TotalIncome
		switch {
		case savingsRate >= 0.3:
			score += 25
		case savingsRate >= 0.15:
			score += 18
		case savingsRate >= 0.05:
			score += 10
		default:
			score += 5
		}
	} else {
		score += 5
	}

	// 3. Disciplina de orçamento (20 pontos); sem orçamentos configurados
	// vale crédito parcial, não penalidade
	if len(facts.Budgets) > 0 {
		respected := 0
		for _, b := range facts.Budgets {
			if b.Spent <= b.Limit {
				respected++
			}
		}
		ratio := float64(respected) / float64(len(facts.Budgets))
		switch {
		case ratio >= 1:
			score += 20
		case ratio >= 0.75:
			score += 15
		case ratio >= 0.5:
			score += 10
		default:
			score += 5
		}
	} else {
		score += 10
	}

	// 4. Estabilidade de gastos (15 pontos); exige ao menos duas semanas
	// com gasto para haver sinal
	if len(facts.WeeklyExpenses) >= 2 {
		sum, min, max := 0.0, facts.WeeklyExpenses[0], facts.WeeklyExpenses[0]
		for _, w := range facts.WeeklyExpenses {
			sum += w
			if w < min {
				min = w
			}
			if w > max {
				max = w
			}
		}
		avg := sum / float64(len(facts.WeeklyExpenses))
		variance := max - min
		switch {
		case variance <= avg*0.3:
			score += 15
		case variance <= avg*0.7:
			score += 10
		default:
			score += 5
		}
	} else {
		score += 10
	}

	if score < scoreFloor {
		return scoreFloor
	}
	if score > scoreCeil {
		return scoreCeil
	}
	return score
}

func statusFor(score int) (string, string) {
	if score >= 80 {
		return StatusGood, ClassGood
	}
	if score >= 60 {
		return StatusFair, ClassOkay
	}
	return StatusAttention, ClassBad
}
