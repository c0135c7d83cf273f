package jwtmw

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
	"auth_backend/internal/feature/auth/domain/entity"
)

// Context keys under which the authenticated identity is stored.
// Handlers should use the *FromContext helpers instead of the raw keys.
const (
	ContextUserID = "auth.userID"
	ContextEmail  = "auth.email"
	ContextName   = "auth.name"
)

// bearerPrefix is the exact required scheme: case-sensitive, single space.
const bearerPrefix = "Bearer "

// TokenVerifier validates a bearer token and returns its claims.
// Kept as a small interface so tests can fake it easily.
type TokenVerifier interface {
	VerifyToken(token string) (*Claims, error)
}

// UserResolver resolves a verified token's subject to a live user record.
type UserResolver interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthMiddleware は保護されたルートへのアクセスを認証済みユーザーに制限します。
// トークン検証後、ユーザーをストアから解決してリクエストコンテキストに載せます。
type AuthMiddleware struct {
	tokens TokenVerifier
	users  UserResolver
}

// NewAuthMiddleware はAuthMiddlewareの新しいインスタンスを生成します。
func NewAuthMiddleware(tokens TokenVerifier, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth returns a Gin middleware that rejects unauthenticated requests.
// Every rejection answers with the same 401 envelope; the reason is only
// distinguished in logs.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーからベアラートークンを抽出
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			api.AbortUnauthorized(c, "missing or invalid authorization header")
			return
		}
		tokenStr := strings.TrimPrefix(auth, bearerPrefix)

		// 2. トークンの署名と有効期限を検証
		claims, err := m.tokens.VerifyToken(tokenStr)
		if err != nil {
			slog.Warn("token verification failed", "error", err, "remote_addr", c.ClientIP())
			api.AbortUnauthorized(c, "invalid or expired token")
			return
		}

		// 3. トークンのsubをアクティブなユーザーに解決
		user, err := m.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			slog.Warn("token subject not resolvable", "error", err, "user_id", claims.UserID, "remote_addr", c.ClientIP())
			api.AbortUnauthorized(c, "invalid or expired token")
			return
		}

		// 4. 解決済みの識別情報をコンテキストに載せて続行
		c.Set(ContextUserID, user.ID)
		c.Set(ContextEmail, user.Email)
		c.Set(ContextName, user.Name)

		c.Next()
	}
}

// Helpers so handlers don't need to know the magic keys.

// UserIDFromContext returns the authenticated user's ID, if present.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// EmailFromContext returns the authenticated user's email, if present.
func EmailFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextEmail)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// NameFromContext returns the authenticated user's display name, if present.
func NameFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextName)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
