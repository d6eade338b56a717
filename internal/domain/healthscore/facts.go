package healthscore

import (
	"BudgetBuddy/internal/domain/ledger"
)

const (
	StatusNoData     = "No Data"
	StatusIncomplete = "Incomplete Data"
	StatusGood       = "Good"
	StatusFair       = "Fair"
	StatusAttention  = "Needs Attention"
)

const (
	ClassEmpty   = "empty"
	ClassPartial = "partial"
	ClassGood    = "good"
	ClassOkay    = "okay"
	ClassBad     = "bad"
)

// BudgetFact é um orçamento do mês com o gasto realizado na categoria.
// Cada linha de orçamento é avaliada de forma independente, mesmo que a
// categoria se repita.
type BudgetFact struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
	Limit    float64 `json:"limit"`
}

// MonthlyFacts agrega os fatos financeiros de um usuário em um mês.
// É a única entrada do cálculo de score.
type MonthlyFacts struct {
	TotalIncome    float64
	TotalExpenses  float64
	Savings        float64
	Budgets        []BudgetFact
	WeeklyExpenses []float64
}

type Breakdown struct {
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpenses   float64 `json:"totalExpenses"`
	Savings         float64 `json:"savings"`
	SavingsRate     float64 `json:"savingsRate"`
	BudgetCount     int     `json:"budgetCount,omitempty"`
	BudgetsExceeded int     `json:"budgetsExceeded,omitempty"`
}

type HealthResult struct {
	Score       *int      `json:"score"`
	Status      string    `json:"status"`
	StatusClass string    `json:"statusClass"`
	Insights    []string  `json:"insights"`
	Breakdown   Breakdown `json:"breakdown"`
	Message     string    `json:"message,omitempty"`
}

// BuildFacts monta os fatos do mês a partir dos registros crus do ledger:
// soma as despesas, deriva o gasto por categoria orçada e agrupa os gastos
// por semana do mês.
func BuildFacts(totalIncome float64, expenses []*ledger.Expense, budgets []*ledger.Budget) MonthlyFacts {
	var totalExpenses float64
	spentByCategory := make(map[string]float64, len(budgets))
	for _, exp := range expenses {
		totalExpenses += exp.Amount
		spentByCategory[exp.Category] += exp.Amount
	}

	facts := MonthlyFacts{
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		Savings:        totalIncome - totalExpenses,
		WeeklyExpenses: GroupExpensesByWeek(expenses),
	}

	for _, b := range budgets {
		facts.Budgets = append(facts.Budgets, BudgetFact{
			Category: b.Category,
			Spent:    spentByCategory[b.Category],
			Limit:    b.Amount,
		})
	}

	return facts
}

// GroupExpensesByWeek agrupa as despesas por semana do mês (ceil(dia/7),
// semanas 1 a 5). Semanas sem gasto não geram entrada: ausência de dado
// não é um ponto zero.
func GroupExpensesByWeek(expenses []*ledger.Expense) []float64 {
	var weeks [6]float64
	for _, exp := range expenses {
		if exp.Date.IsZero() {
			continue
		}
		weeks[exp.WeekOfMonth()] += exp.Amount
	}

	totals := make([]float64, 0, 5)
	for _, total := range weeks[1:] {
		if total > 0 {
			totals = append(totals, total)
		}
	}
	return totals
}
