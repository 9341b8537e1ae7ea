package usecase_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
	"luxestore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserProfileRepoMock struct{ mock.Mock }

func (m *UserProfileRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserProfileRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserProfileRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserProfileRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// パスワードハッシュはレスポンスに出さない
func TestUserUsecase_GetUser_ClearsPassword(t *testing.T) {
	uRepo := new(UserProfileRepoMock)
	uRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "a@x.com", Password: "hashed"}, nil)

	uc := usecase.NewUserUsecase(uRepo)

	out, err := uc.GetUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", out.Email)
	assert.Empty(t, out.Password)
}

// ラップされたErrNotFoundも404になる（500に落ちない）
func TestUserUsecase_GetUser_WrappedNotFound(t *testing.T) {
	uRepo := new(UserProfileRepoMock)
	uRepo.On("FindByID", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("find user: %w", repo.ErrNotFound))

	uc := usecase.NewUserUsecase(uRepo)

	_, err := uc.GetUser(context.Background(), 99)
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

// name/address/phoneだけ更新され、emailは不変
func TestUserUsecase_UpdateProfile(t *testing.T) {
	uRepo := new(UserProfileRepoMock)
	uRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "a@x.com", Password: "hashed", Name: "A"}, nil)
	uRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.ID == 1 && u.Email == "a@x.com" && u.Name == "A2" && u.Address == "Tokyo"
	})).Return(nil)

	uc := usecase.NewUserUsecase(uRepo)

	out, err := uc.UpdateProfile(context.Background(), 1, usecase.UpdateProfileInput{
		Name:    "  A2  ",
		Address: "Tokyo",
		Phone:   "090",
	})
	assert.NoError(t, err)
	assert.Equal(t, "A2", out.Name)
	assert.Equal(t, "a@x.com", out.Email)
	assert.Empty(t, out.Password)
	uRepo.AssertExpectations(t)
}

func TestUserUsecase_UpdateProfile_WrappedNotFound(t *testing.T) {
	uRepo := new(UserProfileRepoMock)
	uRepo.On("FindByID", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("find user: %w", repo.ErrNotFound))

	uc := usecase.NewUserUsecase(uRepo)

	_, err := uc.UpdateProfile(context.Background(), 99, usecase.UpdateProfileInput{Name: "X"})
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}
