package routes

import (
	appErrors "BudgetBuddy/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError mapeia um AppError para a resposta HTTP correspondente
func respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	body := gin.H{
		"code":  appErr.Code,
		"error": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}

	c.JSON(appErr.StatusCode, body)
}
