package repository

import (
	"context"

	"luxestore/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// 同一(user, product)はプラス。アトミックなupsert（ON CONFLICT）で行う。
	Upsert(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, error)
	// 数量を上書きし、影響行数（0か1）を返す。
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) (int64, error)
	// 複合キー削除。該当行が無ければ何もしない。
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
}
