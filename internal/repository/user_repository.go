package repository

import (
	"context"
	"errors"

	"luxestore/internal/domain/model"
)

// email重複（unique制約違反もこれに正規化する）
var ErrDuplicateEmail = errors.New("email already exists")

// 保存・取得を約束
type UserRepository interface {
	// 新規作成。emailが既に存在する場合はErrDuplicateEmail。
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得。見つからなければErrNotFound。
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// メールからユーザーを1件取得。見つからなければ(nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// ユーザー情報の更新（name/address/phoneなど）
	Update(ctx context.Context, user *model.User) error
}
