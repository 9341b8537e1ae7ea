package model

import "time"

// ウィッシュリスト
// カートと同じく(user_id, product_id)で一意。重複追加は無視する。
type WishlistItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"userId"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"productId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
