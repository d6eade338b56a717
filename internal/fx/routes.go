package fx

import (
	"BudgetBuddy/internal/routes"

	"go.uber.org/fx"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		routes.NewHealthScoreHandler,
	),
)
