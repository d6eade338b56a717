package healthscore_test

import (
	"context"
	"errors"
	"testing"

	"BudgetBuddy/internal/domain/healthscore"
	"BudgetBuddy/internal/domain/ledger"
	appErrors "BudgetBuddy/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeLedgerRepository struct {
	totalIncomeFn func(ctx context.Context, userID ulid.ULID, month, year int) (float64, error)
	expensesFn    func(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Expense, error)
	budgetsFn     func(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Budget, error)
}

func (f *fakeLedgerRepository) TotalIncome(ctx context.Context, userID ulid.ULID, month, year int) (float64, error) {
	if f.totalIncomeFn != nil {
		return f.totalIncomeFn(ctx, userID, month, year)
	}
	return 0, nil
}

func (f *fakeLedgerRepository) ExpensesByPeriod(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Expense, error) {
	if f.expensesFn != nil {
		return f.expensesFn(ctx, userID, month, year)
	}
	return nil, nil
}

func (f *fakeLedgerRepository) BudgetsByPeriod(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Budget, error) {
	if f.budgetsFn != nil {
		return f.budgetsFn(ctx, userID, month, year)
	}
	return nil, nil
}

func TestServiceCalculateHealthValidations(t *testing.T) {
	t.Parallel()

	svc := healthscore.NewService(&fakeLedgerRepository{})
	userID := ulid.Make()
	ctx := context.Background()

	tests := []struct {
		name  string
		month int
		year  int
	}{
		{name: "month too low", month: 0, year: 2024},
		{name: "month too high", month: 13, year: 2024},
		{name: "year too low", month: 3, year: 1999},
		{name: "year too high", month: 3, year: 2101},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CalculateHealth(ctx, userID, tt.month, tt.year)
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
			}
		})
	}
}

func TestServiceCalculateHealthEmptyLedger(t *testing.T) {
	t.Parallel()

	svc := healthscore.NewService(&fakeLedgerRepository{})

	result, err := svc.CalculateHealth(context.Background(), ulid.Make(), 3, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != nil {
		t.Fatalf("expected nil score, got %d", *result.Score)
	}
	if result.Status != healthscore.StatusNoData {
		t.Fatalf("expected %q, got %q", healthscore.StatusNoData, result.Status)
	}
}

func TestServiceCalculateHealthHealthyMonth(t *testing.T) {
	t.Parallel()

	repo := &fakeLedgerRepository{
		totalIncomeFn: func(ctx context.Context, userID ulid.ULID, month, year int) (float64, error) {
			return 10000, nil
		},
		expensesFn: func(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Expense, error) {
			return []*ledger.Expense{expenseOn(4, "Food", 5000)}, nil
		},
	}
	svc := healthscore.NewService(repo)

	result, err := svc.CalculateHealth(context.Background(), ulid.Make(), 3, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 40 + 25 + 10 + 10
	if result.Score == nil || *result.Score != 85 {
		t.Fatalf("expected score 85, got %v", result.Score)
	}
	if result.Status != healthscore.StatusGood || result.StatusClass != healthscore.ClassGood {
		t.Fatalf("expected Good/good, got %s/%s", result.Status, result.StatusClass)
	}
	if result.Breakdown.SavingsRate != 50.0 {
		t.Fatalf("expected savings rate 50.0, got %v", result.Breakdown.SavingsRate)
	}
}

func TestServiceCalculateHealthExceededBudget(t *testing.T) {
	t.Parallel()

	repo := &fakeLedgerRepository{
		totalIncomeFn: func(ctx context.Context, userID ulid.ULID, month, year int) (float64, error) {
			return 10000, nil
		},
		expensesFn: func(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Expense, error) {
			return []*ledger.Expense{
				expenseOn(2, "Food", 400),
				expenseOn(5, "Other", 1600),
				expenseOn(10, "Other", 3000),
				expenseOn(16, "Other", 4500),
			}, nil
		},
		budgetsFn: func(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Budget, error) {
			return []*ledger.Budget{
				{Id: ulid.Make(), UserId: userID, Category: "Food", Amount: 300, Month: month, Year: year},
			}, nil
		},
	}
	svc := healthscore.NewService(repo)

	result, err := svc.CalculateHealth(context.Background(), ulid.Make(), 3, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score == nil || *result.Score != 60 {
		t.Fatalf("expected score 60, got %v", result.Score)
	}
	if result.Status != healthscore.StatusFair {
		t.Fatalf("expected Fair, got %s", result.Status)
	}
	if result.Breakdown.BudgetsExceeded != 1 {
		t.Fatalf("expected 1 exceeded budget, got %d", result.Breakdown.BudgetsExceeded)
	}
}

func TestServiceCalculateHealthLedgerError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")
	repo := &fakeLedgerRepository{
		expensesFn: func(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Expense, error) {
			return nil, appErrors.NewDatabaseError(dbErr)
		},
	}
	svc := healthscore.NewService(repo)

	_, err := svc.CalculateHealth(context.Background(), ulid.Make(), 3, 2024)
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != "DATABASE_ERROR" {
		t.Fatalf("expected DATABASE_ERROR, got %s", appErr.Code)
	}
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped ledger error")
	}
}
