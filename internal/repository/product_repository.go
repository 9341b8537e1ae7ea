package repository

import (
	"context"
	"errors"

	"luxestore/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 在庫不足（減算が在庫を超える）
var ErrInsufficientStock = errors.New("not enough stock")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)

	// 在庫減算。read-check-writeではなく条件付きUPDATE1文で行う。
	// 在庫が足りなければErrInsufficientStock、商品が無ければErrNotFound。
	DecreaseQuantity(ctx context.Context, id int64, qty int64) error
}
