// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
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
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、ユーザーとJWTトークンを返します。
	Register(ctx context.Context, email, name, password string) (*entity.User, string, error)
	// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - 必須フィールド欠落・メール形式不正・弱いパスワードは400を返却（詳細はerrors配列）
// - メールアドレス重複は409を返却
// - 成功時は201でトークン付きのユーザー情報を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "email, name and password are required")
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			slog.Warn("register input rejected", "error", err, "remote_addr", c.ClientIP())
			api.FailWithErrors(c, http.StatusBadRequest, vErr.Message, vErr.Details)
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			api.Fail(c, http.StatusConflict, "email is already registered")
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			api.Fail(c, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	api.OK(c, http.StatusCreated, "user registered successfully", dto.AuthData{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Token: token,
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 必須フィールド欠落は400を返却
// - 認証失敗は、メール未登録とパスワード不一致を区別しない同一の401を返却
// - 成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、どちらの要素が誤りかを公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			api.Fail(c, http.StatusUnauthorized, "incorrect email or password")
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusInternalServerError, "failed to log in")
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	api.OK(c, http.StatusOK, "login successful", dto.AuthData{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Token: token,
	})
}
