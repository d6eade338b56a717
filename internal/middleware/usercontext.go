package middleware

import (
	"net/http"

	"BudgetBuddy/internal/pkg"

	"github.com/gin-gonic/gin"
)

const userIDHeader = "X-User-Id"

// UserContext extrai o ULID do usuário do cabeçalho da requisição e o coloca
// no contexto do gin. A autenticação em si fica a cargo do gateway na frente
// da API.
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pkg.ParseULID(c.GetHeader(userIDHeader))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":  "UNAUTHORIZED",
				"error": "Unauthorized",
			})
			return
		}

		c.Set("user_id", userID.String())
		c.Next()
	}
}
