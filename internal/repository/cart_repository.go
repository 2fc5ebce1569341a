package repository

import (
	"context"

	"app/internal/domain/model"
)

// セッションごとのカート保存を約束。
// セッションは単一所有なのでロックは不要、後勝ちで上書きする。
type SessionCartRepository interface {
	// セッションのカートを取得。セッション行が無い・期限切れなら空のカートを返す。
	Get(ctx context.Context, sessionKey string) (model.Cart, error)
	// カートを丸ごと保存し、セッションの有効期限を延長する。
	Put(ctx context.Context, sessionKey string, cart model.Cart) error
	// セッション行を削除する（ログアウトなど）。無ければ何もしない。
	Delete(ctx context.Context, sessionKey string) error
}
