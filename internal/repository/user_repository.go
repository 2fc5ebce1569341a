package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//ユーザー名から1件取得する（ログイン用）。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	//メールから1件取得する（パスワードリセット用）。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//最終ログイン時刻やパスワードハッシュの更新
	Update(ctx context.Context, user *model.User) error
}
