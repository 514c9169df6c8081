package middlewares

import (
	"gin-storefront/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAnyPermission 指定された権限のいずれかを保持するユーザーだけを通すミドルウェア
// AuthMiddlewareの後に使用することを想定（ctxに"user"が設定されている必要がある）
func RequireAnyPermission(required ...models.Permission) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// トークンのクレームではなく、DBから取得した最新の権限集合で判定する
		if !userModel.Permissions.HasAny(required...) {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}
