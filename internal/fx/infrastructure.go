package fx

import (
	"BudgetBuddy/internal/domain/ledger"
	"BudgetBuddy/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		infrastructure.NewDb,
		func(db *gorm.DB) *infrastructure.LedgerRepository {
			return &infrastructure.LedgerRepository{DB: db}
		},
		func(repo *infrastructure.LedgerRepository) ledger.Repository {
			return repo
		},
	),
)
