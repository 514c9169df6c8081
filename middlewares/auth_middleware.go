package middlewares

import (
	"gin-storefront/constants"
	"gin-storefront/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware はセッショントークンを検証し、ctxに"user"を設定する
// トークンはhttpOnlyクッキーを優先し、無ければAuthorizationヘッダーを見る
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(constants.CredentialCookieName)
		if err != nil || tokenString == "" {
			header := ctx.GetHeader("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				ctx.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}

		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set("user", user)

		ctx.Next()
	}
}
