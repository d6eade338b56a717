package fx

import (
	"time"

	"BudgetBuddy/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		func() *middleware.RateLimiter {
			return middleware.NewRateLimiter(100, time.Minute)
		},
	),
)
