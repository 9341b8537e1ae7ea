package repository

import (
	"context"

	"luxestore/internal/domain/model"
)

type OrderRepository interface {
	// 注文と明細を同一トランザクションで保存する。
	Create(ctx context.Context, order *model.Order) error
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
