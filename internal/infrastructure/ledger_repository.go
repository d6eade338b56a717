package infrastructure

import (
	"context"
	"time"

	"BudgetBuddy/internal/domain/ledger"
	appErrors "BudgetBuddy/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type LedgerRepository struct {
	DB *gorm.DB
}

var _ ledger.Repository = (*LedgerRepository)(nil)

// periodBounds retorna [início, fim) do mês em UTC
func periodBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (r *LedgerRepository) TotalIncome(ctx context.Context, userID ulid.ULID, month, year int) (float64, error) {
	startDate, endDate := periodBounds(month, year)

	var total float64
	err := r.DB.WithContext(ctx).Table("incomes").
		Where("user_id = ? AND date >= ? AND date < ?", userID.String(), startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	return total, nil
}

func (r *LedgerRepository) ExpensesByPeriod(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Expense, error) {
	startDate, endDate := periodBounds(month, year)

	var expenses []*ledger.Expense
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID.String(), startDate, endDate).
		Order("date ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return expenses, nil
}

func (r *LedgerRepository) BudgetsByPeriod(ctx context.Context, userID ulid.ULID, month, year int) ([]*ledger.Budget, error) {
	var budgets []*ledger.Budget
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID.String(), month, year).
		Find(&budgets).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return budgets, nil
}
