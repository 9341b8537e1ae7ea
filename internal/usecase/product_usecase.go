package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// カタログ全件
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// 在庫減算して減算後の商品を返す。
// チェックと書き込みはrepository側の条件付きUPDATE1文なので、
// 同時減算が重なっても在庫が0未満になることはない。
func (u *ProductUsecase) DecreaseQuantity(ctx context.Context, productID int64, qty int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if qty < 1 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid qty")
	}

	err := u.productRepo.DecreaseQuantity(ctx, productID, qty)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrInsufficientStock) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "not enough stock")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
