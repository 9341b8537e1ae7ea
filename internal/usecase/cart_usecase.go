package usecase

import (
	"context"
	"net/http"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
type CartUsecase struct {
	cartRepo repo.CartItemRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartItemRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo}
}

type AddCartInput struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}

// カート取得
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// カートに追加（同一商品は数量加算）。
// repository側がunique index + ON CONFLICTの1文なので、同時追加でも
// 行の重複や加算ロストは起きない。
func (u *CartUsecase) AddToCart(ctx context.Context, in AddCartInput) (model.CartItem, error) {
	if in.UserID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if in.ProductID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Quantity < 1 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	item, err := u.cartRepo.Upsert(ctx, in.UserID, in.ProductID, in.Quantity)
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

// 数量変更。影響行数（0か1）を返す。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) (int64, error) {
	if cartItemID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if qty < 1 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	count, err := u.cartRepo.UpdateQuantity(ctx, cartItemID, qty)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return count, nil
}

// 複合キー削除。該当行が無ければ何もしない（エラーにしない）。
func (u *CartUsecase) Remove(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 || productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.cartRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
