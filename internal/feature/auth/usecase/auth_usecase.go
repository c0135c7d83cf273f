package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"auth_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// emailPattern は有効なメールアドレスの形式を定義します。
// ローカル部とドメイン部を1つの@で区切り、ドメイン部に.を必須とします。
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するアクティブなユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するアクティブなユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// TouchLastLogin は最終ログイン日時を現在時刻に更新します。
	// 存在しないIDの場合は何もしません。
	TouchLastLogin(ctx context.Context, id uint) error

	// FetchProfile は認証済みユーザー向けの読み取り専用プロジェクションを取得します。
	FetchProfile(ctx context.Context, id uint) (*entity.Profile, error)
}

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
// ハッシュ方式を差し替え可能にするため、usecaseはこのインターフェースにのみ依存します。
type PasswordHasher interface {
	// Hash は平文パスワードから保存用ハッシュを生成します。
	Hash(password string) (string, error)
	// Compare は保存済みハッシュと平文パスワードを照合し、不一致の場合エラーを返します。
	Compare(hashed, password string) error
}

// TokenIssuer はJWTトークン生成のインターフェースを定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// normalizeEmail はメールアドレスを小文字に正規化します。
// 一意性判定を大文字小文字を区別せずに行うため、保存・検索の前に必ず適用します。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail はメールアドレスの形式をチェックします。
func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{Message: "invalid email address"}
	}
	return nil
}

// validatePasswordStrength はパスワードがセキュリティ要件を満たしているかチェックします。
// 失敗した条件をすべて列挙して返します。最初の1件だけではありません。
func validatePasswordStrength(password string) []string {
	var details []string

	if len(password) < minPasswordLength {
		details = append(details, fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		details = append(details, "password must contain at least one uppercase letter")
	}
	if !hasLower {
		details = append(details, "password must contain at least one lowercase letter")
	}
	if !hasDigit {
		details = append(details, "password must contain at least one digit")
	}

	return details
}

// Register は新規ユーザーを登録し、発行したJWTトークンとともに返します。
// すべての入力検証と重複チェックはストレージへの書き込み前に行われます。
func (u *authUsecase) Register(ctx context.Context, email, name, password string) (*entity.User, string, error) {
	email = normalizeEmail(email)

	if err := validateEmail(email); err != nil {
		return nil, "", err
	}
	if details := validatePasswordStrength(password); len(details) > 0 {
		return nil, "", &ValidationError{Message: "weak password", Details: details}
	}

	// 既存メールアドレスの事前チェック。同時登録の競合は
	// ストレージ層のユニーク制約が最終的に防ぐ。
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Name: name, Password: hashed, IsActive: true}
	if err := u.users.Create(ctx, user); err != nil {
		// ユニーク制約違反（チェックとINSERTの間の競合）はそのまま伝播する
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもハッシュ比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = normalizeEmail(email)

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ。
	// ハッシュ比較が常に実行されることを保証する。
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := u.hasher.Compare(passwordHash, password)

	// ユーザー未検出またはパスワード不一致の場合、同一の汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := u.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, "", fmt.Errorf("failed to update last login: %w", err)
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// FetchProfile は認証済みユーザー自身のプロフィールを取得します。
// ユーザーが見つからない場合、ErrUserNotFoundを返します。
func (u *authUsecase) FetchProfile(ctx context.Context, id uint) (*entity.Profile, error) {
	return u.users.FetchProfile(ctx, id)
}
