package repository

import (
	"context"

	"luxestore/internal/domain/model"
)

type WishlistRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error)
	// 追加。既に同じ(user, product)があれば既存行を返す。
	Add(ctx context.Context, item model.WishlistItem) (model.WishlistItem, error)
	// 複合キー削除。該当行が無ければ何もしない。
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
	Exists(ctx context.Context, userID int64, productID int64) (bool, error)
}
