package repository

import (
	"app/internal/domain/model"
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// セッション行のData（JSON）の形。今はカートだけを持つ。
type sessionData struct {
	Cart model.Cart `json:"cart"`
}

type SessionCartGormRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

// DI
func NewSessionCartGormRepository(db *gorm.DB, ttl time.Duration) *SessionCartGormRepository {
	return &SessionCartGormRepository{db: db, ttl: ttl}
}

// セッションのカートを取得。行が無い・期限切れ・Data不正は空カート扱い。
func (r *SessionCartGormRepository) Get(ctx context.Context, sessionKey string) (model.Cart, error) {
	var s model.Session

	err := r.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", sessionKey, time.Now()).
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}

	var data sessionData
	if err := json.Unmarshal([]byte(s.Data), &data); err != nil {
		// 壊れたセッションは空として扱う（次のPutで上書きされる）
		return model.Cart{}, nil
	}
	if data.Cart == nil {
		return model.Cart{}, nil
	}
	return data.Cart, nil
}

// カートを丸ごと保存し、有効期限を延長する。後勝ちで上書き。
func (r *SessionCartGormRepository) Put(ctx context.Context, sessionKey string, cart model.Cart) error {
	raw, err := json.Marshal(sessionData{Cart: cart})
	if err != nil {
		return err
	}

	now := time.Now()
	s := model.Session{
		Key:       sessionKey,
		Data:      string(raw),
		ExpiresAt: now.Add(r.ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}

	//同じキーが既にあれば上書き
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
		}).
		Create(&s).Error
}

// セッション行を削除。無ければ何もしない。
func (r *SessionCartGormRepository) Delete(ctx context.Context, sessionKey string) error {
	return r.db.WithContext(ctx).
		Where("key = ?", sessionKey).
		Delete(&model.Session{}).Error
}

// 期限切れセッションの掃除。起動時などに呼ぶ。
func (r *SessionCartGormRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.Session{}).Error
}
