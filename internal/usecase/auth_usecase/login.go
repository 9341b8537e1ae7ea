package auth

import (
	"context"
	"errors"
	"strings"

	"luxestore/internal/domain/model"
	"luxestore/internal/repository"
)

// 401 認証失敗。
// 「ユーザーが居ない」か「パスワード違い」かは呼び出し側に区別させない
// （アカウント列挙の防止）。
var ErrInvalidCredentials = errors.New("invalid credentials")

// ログインの入力
type LoginInput struct {
	Email    string
	Password string
}

// ログインの出力（passwordは常に空）
type LoginOutput struct {
	Token string
	User  model.User
}

// 平文とハッシュの照合
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// 署名付きトークンの発行。DBを見ずに検証できる形式であること。
type TokenIssuer interface {
	Issue(subjectEmail string) (string, error)
}

// LoginUsecaseはログインの処理。
type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
}

// DI
func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
	}
}

// ログイン実行
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return out, ErrMissingFields
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return out, err
	}

	// 居ない場合も照合失敗の場合も同じエラーを返す
	if user == nil {
		return out, ErrInvalidCredentials
	}
	if !u.verifier.Verify(in.Password, user.Password) {
		return out, ErrInvalidCredentials
	}

	token, err := u.issuer.Issue(user.Email)
	if err != nil {
		return out, err
	}

	safeUser := *user
	safeUser.Password = ""

	out.Token = token
	out.User = safeUser
	return out, nil
}
