package model

import "time"

// 商品。価格は整数ルピー（最小単位への変換はPricing側で行う）。
// SellingPrice <= OriginalPrice が前提（Savingsは0以上）。
type Product struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	CategoryID    int64     `gorm:"not null;index" json:"category_id"`
	OriginalPrice int64     `gorm:"not null" json:"original_price"`
	SellingPrice  int64     `gorm:"not null" json:"selling_price"`
	Image         string    `gorm:"type:varchar(500)" json:"image"`
	Trending      bool      `gorm:"not null;default:false" json:"trending"`
	IsActive      bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 定価と販売価格の差額
func (p Product) Savings() int64 {
	return p.OriginalPrice - p.SellingPrice
}
