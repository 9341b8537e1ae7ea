package usecase_test

import (
	"context"
	"testing"

	"luxestore/internal/domain/model"
	"luxestore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type WishlistRepoMock struct{ mock.Mock }

func (m *WishlistRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.WishlistItem)
	return items, args.Error(1)
}

func (m *WishlistRepoMock) Add(ctx context.Context, item model.WishlistItem) (model.WishlistItem, error) {
	args := m.Called(ctx, item)
	saved, _ := args.Get(0).(model.WishlistItem)
	return saved, args.Error(1)
}

func (m *WishlistRepoMock) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *WishlistRepoMock) Exists(ctx context.Context, userID int64, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func TestWishlistUsecase_Add(t *testing.T) {
	wRepo := new(WishlistRepoMock)
	wRepo.On("Add", mock.Anything, model.WishlistItem{UserID: 1, ProductID: 101}).
		Return(model.WishlistItem{ID: 5, UserID: 1, ProductID: 101}, nil)

	uc := usecase.NewWishlistUsecase(wRepo)

	out, err := uc.Add(context.Background(), usecase.AddWishlistInput{UserID: 1, ProductID: 101})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
}

// 存在しないペアの削除はno-op
func TestWishlistUsecase_Remove_MissingPairIsNoop(t *testing.T) {
	wRepo := new(WishlistRepoMock)
	wRepo.On("DeleteByUserAndProduct", mock.Anything, int64(1), int64(999)).Return(nil)

	uc := usecase.NewWishlistUsecase(wRepo)

	assert.NoError(t, uc.Remove(context.Background(), 1, 999))
}

func TestWishlistUsecase_Exists(t *testing.T) {
	wRepo := new(WishlistRepoMock)
	wRepo.On("Exists", mock.Anything, int64(1), int64(101)).Return(true, nil)
	wRepo.On("Exists", mock.Anything, int64(1), int64(999)).Return(false, nil)

	uc := usecase.NewWishlistUsecase(wRepo)

	ok, err := uc.Exists(context.Background(), 1, 101)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Exists(context.Background(), 1, 999)
	assert.NoError(t, err)
	assert.False(t, ok)
}
