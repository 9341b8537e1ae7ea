package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"luxestore/internal/domain/model"
	"luxestore/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	// 400 emailかpasswordが無い
	ErrMissingFields = errors.New("email and password are required")

	// 409 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 会員登録の入力
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Address  string
	Phone    string
}

// 会員登録の出力
type SignupOutput struct {
	User model.User
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// SignupUsecaseは会員登録の処理。
type SignupUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	clock    Clock
}

// DI
func NewSignupUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	clock Clock,
) *SignupUsecase {
	return &SignupUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		clock:    clock,
	}
}

// 会員登録実行
func (u *SignupUsecase) Execute(ctx context.Context, in SignupInput) (SignupOutput, error) {
	var out SignupOutput

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return out, ErrMissingFields
	}

	// email重複チェック
	// check-then-insertはアトミックではないので、同時登録でここを
	// すり抜けてもCreate側のunique制約違反をErrEmailAlreadyExistsに読み替える。
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return out, err
	}
	if existing != nil {
		return out, ErrEmailAlreadyExists
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()

	user := &model.User{
		Email:    email,
		Password: hashed, // ハッシュを保存（平文は保存しない）
		Name:     strings.TrimSpace(in.Name),
		Address:  strings.TrimSpace(in.Address),
		Phone:    strings.TrimSpace(in.Phone),
		Roles:    []string{model.RoleUser}, // 初期ロール
		CreatedAt: now,
		UpdatedAt: now,
	}

	// DBへ保存
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return out, ErrEmailAlreadyExists
		}
		return out, err
	}

	// 返すときは password を空にして漏洩防止
	safeUser := *user
	safeUser.Password = ""

	out.User = safeUser
	return out, nil
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// 平文(plain)をbcryptで比較
func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
