package model

import "time"

// 商品。Priceは最小通貨単位（セント）のint64で持つ。
// Quantityは在庫数で、減算後も0未満にならないこと。
type Product struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Category string `gorm:"type:varchar(255);index" json:"category"`
	Price    int64  `gorm:"not null" json:"price"`
	Quantity int64  `gorm:"not null" json:"quantity"`
	Image    string `gorm:"type:varchar(512)" json:"image"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
