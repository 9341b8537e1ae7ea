package model

import "time"

// 注文。OrderDateは必ずサーバー側で設定する（クライアント値は無視）。
// 作成後は不変。
type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64       `gorm:"not null;index" json:"userId"`
	OrderDate time.Time   `gorm:"not null" json:"orderDate"`
	Total     int64       `gorm:"not null" json:"total"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
