package routes

import (
	"net/http"

	"BudgetBuddy/internal/contracts"
	"BudgetBuddy/internal/domain/healthscore"
	appErrors "BudgetBuddy/internal/errors"
	"BudgetBuddy/internal/logger"
	"BudgetBuddy/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type HealthScoreHandler struct {
	Service *healthscore.Service
}

func NewHealthScoreHandler(service *healthscore.Service) *HealthScoreHandler {
	return &HealthScoreHandler{Service: service}
}

type healthScoreQuery struct {
	Month int `form:"month" binding:"required,gte=1,lte=12"`
	Year  int `form:"year" binding:"required,gte=2000,lte=2100"`
}

func (h *HealthScoreHandler) getUserID(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *HealthScoreHandler) GetHealthScore(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var query healthScoreQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	result, err := h.Service.CalculateHealth(c.Request.Context(), userID, query.Month, query.Year)
	if err != nil {
		logger.Error().
			Err(err).
			Str("user_id", userID.String()).
			Int("month", query.Month).
			Int("year", query.Year).
			Msg("Erro ao calcular score de saúde financeira")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toHealthScoreResponse(result))
}

func toHealthScoreResponse(result *healthscore.HealthResult) *contracts.HealthScoreResponse {
	return &contracts.HealthScoreResponse{
		Score:       result.Score,
		Status:      result.Status,
		StatusClass: result.StatusClass,
		Insights:    result.Insights,
		Breakdown: contracts.HealthBreakdown{
			TotalIncome:     result.Breakdown.TotalIncome,
			TotalExpenses:   result.Breakdown.TotalExpenses,
			Savings:         result.Breakdown.Savings,
			SavingsRate:     result.Breakdown.SavingsRate,
			BudgetCount:     result.Breakdown.BudgetCount,
			BudgetsExceeded: result.Breakdown.BudgetsExceeded,
		},
		Message: result.Message,
	}
}
