package controllers

import (
	"gin-storefront/constants"
	"gin-storefront/services"
	"time"

	"github.com/gin-gonic/gin"
)

// cookieCredentialWriter はservices.CredentialWriterのgin実装
// セッショントークンをhttpOnlyクッキーとして保存する
type cookieCredentialWriter struct {
	ctx *gin.Context
}

func newCookieCredentialWriter(ctx *gin.Context) services.CredentialWriter {
	return &cookieCredentialWriter{ctx: ctx}
}

func (w *cookieCredentialWriter) SetCredential(token string, maxAge time.Duration) {
	w.ctx.SetCookie(constants.CredentialCookieName, token, int(maxAge.Seconds()), "/", "", false, true)
}

func (w *cookieCredentialWriter) ClearCredential() {
	w.ctx.SetCookie(constants.CredentialCookieName, "", -1, "/", "", false, true)
}
