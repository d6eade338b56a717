package fx

import (
	"BudgetBuddy/internal/domain/healthscore"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		healthscore.NewService,
	),
)
