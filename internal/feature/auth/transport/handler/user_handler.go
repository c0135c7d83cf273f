package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
)

// ProfileUsecase はプロフィール取得のユースケースを定義します。
type ProfileUsecase interface {
	// FetchProfile は認証済みユーザー自身のプロフィールを取得します。
	FetchProfile(ctx context.Context, id uint) (*entity.Profile, error)
}

// UserHandler は認証済みユーザー向けエンドポイントのHTTPリクエストを処理します。
type UserHandler struct {
	profile ProfileUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(profile ProfileUsecase) *UserHandler {
	return &UserHandler{profile: profile}
}

// Profile は認証済みユーザー自身のプロフィール取得エンドポイントを処理します。
// 認証ミドルウェアが事前に識別情報をコンテキストに載せていることを前提とします。
// ガード通過後にユーザーが削除された場合は404を返します（正当な競合）。
func (h *UserHandler) Profile(c *gin.Context) {
	id, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		api.Fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := h.profile.FetchProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			slog.Warn("profile not found", "user_id", id, "remote_addr", c.ClientIP())
			api.Fail(c, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("profile fetch failed", "error", err, "user_id", id, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	api.OK(c, http.StatusOK, "", dto.ProfileData{
		ID:          profile.ID,
		Email:       profile.Email,
		Name:        profile.Name,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
		LastLoginAt: profile.LastLoginAt,
	})
}
