package usecase

import (
	"context"
	"net/http"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
}

// DI
func NewWishlistUsecase(wishlistRepo repo.WishlistRepository) *WishlistUsecase {
	return &WishlistUsecase{wishlistRepo: wishlistRepo}
}

type AddWishlistInput struct {
	UserID    int64
	ProductID int64
}

// ウィッシュリスト取得
func (u *WishlistUsecase) GetWishlist(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	items, err := u.wishlistRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// 追加。重複はstorage層のunique indexで吸収される。
func (u *WishlistUsecase) Add(ctx context.Context, in AddWishlistInput) (model.WishlistItem, error) {
	if in.UserID <= 0 {
		return model.WishlistItem{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if in.ProductID <= 0 {
		return model.WishlistItem{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	item, err := u.wishlistRepo.Add(ctx, model.WishlistItem{
		UserID:    in.UserID,
		ProductID: in.ProductID,
	})
	if err != nil {
		return model.WishlistItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

// 複合キー削除。該当行が無ければ何もしない。
func (u *WishlistUsecase) Remove(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 || productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.wishlistRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 存在チェック
func (u *WishlistUsecase) Exists(ctx context.Context, userID int64, productID int64) (bool, error) {
	if userID <= 0 || productID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	ok, err := u.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ok, nil
}
