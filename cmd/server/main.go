package main

import (
	"fmt"
	"log"
	"log/slog"

	"auth_backend/internal/app/router"
	"auth_backend/internal/config"
	"auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	platformdb "auth_backend/internal/platform/db"
	jwtmw "auth_backend/internal/platform/jwt"
	"auth_backend/internal/platform/security"
)

func main() {
	cfg := config.Load()

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := platformdb.Open(cfg)
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Println("[ERROR] Failed to close database:", err)
			}
		}
	}()

	// Repository
	userRepo := adapters.NewUserGorm(db)

	// Platform
	hasher := security.NewBcryptHasher()
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiresIn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := authhandler.NewUserHandler(authUC)

	// 認証ミドルウェア
	authMW := jwtmw.NewAuthMiddleware(tokens, userRepo)

	// ルータ生成
	r := router.NewRouter(cfg, authH, userH, authMW)

	slog.Info("server starting", "port", cfg.Port, "environment", cfg.Env, "db_driver", cfg.DBDriver)

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
