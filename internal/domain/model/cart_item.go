package model

import "time"

// カート明細
// (user_id, product_id)は1行のみ。同一商品の追加は数量加算（upsert）。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
