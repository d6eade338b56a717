package ledger

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Repository é o contrato de leitura do ledger usado pelo cálculo de saúde
// financeira: totais e registros de um usuário em um mês/ano.
type Repository interface {
	TotalIncome(ctx context.Context, userID ulid.ULID, month, year int) (float64, error)
	ExpensesByPeriod(ctx context.Context, userID ulid.ULID, month, year int) ([]*Expense, error)
	BudgetsByPeriod(ctx context.Context, userID ulid.ULID, month, year int) ([]*Budget, error)
}
