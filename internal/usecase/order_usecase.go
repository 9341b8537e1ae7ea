package usecase

import (
	"context"
	"net/http"
	"time"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	clock     Clock
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, clock Clock) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, clock: clock}
}

type PlaceOrderItemInput struct {
	ProductID int64
	Name      string
	Price     int64
	Quantity  int64
}

type PlaceOrderInput struct {
	UserID int64
	Items  []PlaceOrderItemInput
}

// 注文確定。orderDateはクライアント値を無視して必ずサーバー時刻にする。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (model.Order, error) {
	if in.UserID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "order items required")
	}

	var total int64
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
		}
		if it.Quantity < 1 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if it.Price < 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}

		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
		total += it.Price * it.Quantity
	}

	order := model.Order{
		UserID:    in.UserID,
		OrderDate: u.clock.Now(),
		Total:     total,
		Items:     items,
	}

	if err := u.orderRepo.Create(ctx, &order); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return order, nil
}

// ユーザーの注文履歴
func (u *OrderUsecase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}
