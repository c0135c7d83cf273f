package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
	"auth_backend/internal/config"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	platformhandler "auth_backend/internal/platform/http/handler"
	jwtmw "auth_backend/internal/platform/jwt"
)

// NewRouter はすべてのルートとミドルウェアを組み立てたGinエンジンを返します。
func NewRouter(cfg config.Config, authH *authhandler.AuthHandler, userH *authhandler.UserHandler,
	authMW *jwtmw.AuthMiddleware) *gin.Engine {
	r := gin.New()

	r.Use(RequestLogger())
	r.Use(Recovery(cfg))
	r.Use(cors.New(corsConfig(cfg)))

	// 認証不要
	// 導通確認用
	r.GET("/health", platformhandler.Health(cfg.Env))

	// 認証ルート
	auth := r.Group("/api/auth")
	{
		// 新規ユーザー登録
		auth.POST("/register", authH.Register)
		// ログイン（JWT 発行）
		auth.POST("/login", authH.Login)
	}

	// 認証必須のルート
	// リクエストヘッダーにBearerトークンが必要になる
	users := r.Group("/api/users")
	users.Use(authMW.RequireAuth())
	{
		users.GET("/profile", userH.Profile)
	}

	// 未定義ルートも標準エンベロープで404を返す
	r.NoRoute(func(c *gin.Context) {
		api.Fail(c, http.StatusNotFound, "route not found")
	})

	return r
}

// corsConfig は設定されたオリジンを許可するCORS設定を生成します。
func corsConfig(cfg config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AddAllowHeaders("Authorization")
	if cfg.CORSOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
		corsCfg.AllowCredentials = true
	}
	return corsCfg
}
