package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
	"auth_backend/internal/config"
)

// RequestLogger はすべてのリクエストをslogで記録するミドルウェアを返します。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"remote_addr", c.ClientIP(),
		)
	}
}

// Recovery はパニックを捕捉して標準エンベロープで500を返すミドルウェアを返します。
// スタック詳細は本番環境以外でのみレスポンスに含めます。
func Recovery(cfg config.Config) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered",
			"error", recovered,
			"path", c.Request.URL.Path,
			"remote_addr", c.ClientIP(),
		)

		resp := api.Response{Success: false, Message: "internal server error"}
		if !cfg.IsProduction() {
			resp.Errors = []string{
				fmt.Sprintf("%v", recovered),
				string(debug.Stack()),
			}
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}
