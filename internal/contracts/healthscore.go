package contracts

type HealthBreakdown struct {
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpenses   float64 `json:"totalExpenses"`
	Savings         float64 `json:"savings"`
	SavingsRate     float64 `json:"savingsRate"`
	BudgetCount     int     `json:"budgetCount,omitempty"`
	BudgetsExceeded int     `json:"budgetsExceeded,omitempty"`
}

type HealthScoreResponse struct {
	Score       *int            `json:"score"`
	Status      string          `json:"status"`
	StatusClass string          `json:"statusClass"`
	Insights    []string        `json:"insights"`
	Breakdown   HealthBreakdown `json:"breakdown"`
	Message     string          `json:"message,omitempty"`
}
