package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

type UserUsecase struct {
	userRepo repo.UserRepository
}

// DI
func NewUserUsecase(userRepo repo.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// プロフィール更新の入力（name/address/phoneのみ。emailとpasswordはこの経路では触らない）
type UpdateProfileInput struct {
	Name    string
	Address string
	Phone   string
}

// IDでユーザーを取得。パスワードは返さない。
func (u *UserUsecase) GetUser(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	safe := *user
	safe.Password = ""
	return safe, nil
}

// プロフィール更新
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (model.User, error) {
	if userID <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Address = strings.TrimSpace(in.Address)
	user.Phone = strings.TrimSpace(in.Phone)

	if err := u.userRepo.Update(ctx, user); err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	safe := *user
	safe.Password = ""
	return safe, nil
}
