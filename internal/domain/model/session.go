package model

import "time"

// セッションの保存行。Dataにはキー別のJSON（現状は"cart"のみ）が入る。
// 有効期限切れの行は読み取り時に無視し、書き込み時に延長する。
type Session struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Data      string    `gorm:"type:text;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
