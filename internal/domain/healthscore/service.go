package healthscore

import (
	"context"

	"BudgetBuddy/internal/domain/ledger"
	appErrors "BudgetBuddy/internal/errors"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	Ledger ledger.Repository
}

func NewService(ledgerRepo ledger.Repository) *Service {
	return &Service{Ledger: ledgerRepo}
}

// CalculateHealth busca os dados do período no ledger e calcula o score de
// saúde financeira do usuário. As três leituras são independentes e rodam
// em paralelo.
func (s *Service) CalculateHealth(ctx context.Context, userID ulid.ULID, month, year int) (*HealthResult, error) {
	if month < 1 || month > 12 {
		return nil, appErrors.NewValidationError("month", "must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, appErrors.NewValidationError("year", "invalid year")
	}

	var (
		totalIncome float64
		expenses    []*ledger.Expense
		budgets     []*ledger.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalIncome, err = s.Ledger.TotalIncome(gctx, userID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.Ledger.ExpensesByPeriod(gctx, userID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.Ledger.BudgetsByPeriod(gctx, userID, month, year)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := Compute(BuildFacts(totalIncome, expenses, budgets))
	return &result, nil
}
