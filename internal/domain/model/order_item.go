package model

// 注文明細。商品名と価格は注文時点のスナップショット。
type OrderItem struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64  `gorm:"not null;index" json:"order_id"`
	ProductID int64  `gorm:"not null;index" json:"productId"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Price     int64  `gorm:"not null" json:"price"`
	Quantity  int64  `gorm:"not null" json:"quantity"`
}
