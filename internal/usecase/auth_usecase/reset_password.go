package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
)

// 無効・期限切れのリセットトークン
var ErrInvalidResetToken = errors.New("invalid reset token")

const resetTokenPurpose = "password_reset"

// PasswordResetUsecase はパスワードリセットのトークン発行と再設定。
// トークン自体が状態を持つ（HMAC署名付きJWT）のでDBにトークン行は作らない。
type PasswordResetUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	clock    Clock
	secret   []byte
	tokenTTL time.Duration
}

// DI
func NewPasswordResetUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	clock Clock,
	secret string,
	tokenTTL time.Duration,
) *PasswordResetUsecase {
	return &PasswordResetUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		clock:    clock,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// RequestReset はメールアドレスに対するリセットトークンを発行する。
// ユーザーが居ない場合もエラーにしない（アドレスの在否を漏らさないため）。
// トークンの送信（メール）は外部の責務。
func (u *PasswordResetUsecase) RequestReset(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}

	now := u.clock.Now()
	claims := jwt.MapClaims{
		"sub":     strconv.FormatInt(user.ID, 10),
		"purpose": resetTokenPurpose,
		"iat":     now.Unix(),
		"exp":     now.Add(u.tokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// SetNewPassword はリセットトークンを検証して新しいパスワードを保存する。
func (u *PasswordResetUsecase) SetNewPassword(ctx context.Context, rawToken string, newPassword string) error {
	if len(newPassword) < 12 {
		return ErrPasswordTooShort
	}
	if isWeakPassword(newPassword) {
		return ErrWeakPassword
	}

	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return u.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return ErrInvalidResetToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidResetToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != resetTokenPurpose {
		return ErrInvalidResetToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return ErrInvalidResetToken
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hashed, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hashed
	user.UpdatedAt = u.clock.Now()
	return u.userRepo.Update(ctx, user)
}
