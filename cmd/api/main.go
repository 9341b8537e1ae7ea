package main

import (
	"log"
	"time"

	"luxestore/internal/config"
	"luxestore/internal/domain/model"
	"luxestore/internal/handler"
	"luxestore/internal/infra/db"
	"luxestore/internal/infra/payment"
	infraRepo "luxestore/internal/infra/repository"
	"luxestore/internal/server"
	"luxestore/internal/usecase"
	auth "luxestore/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// アクセストークンの有効期限
const accessTokenTTL = 24 * time.Hour

type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

// subjectのemailを載せた署名付きトークンを発行する。
// 検証はDBを見ずにできる。
func (i *jwtIssuer) Issue(subjectEmail string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": subjectEmail,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

func main() {
	// .envが無くても環境変数が揃っていれば動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := &jwtIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    accessTokenTTL,
	}

	//Stripeクライアント
	stripe := payment.NewStripeClient(cfg)

	//Usecase生成
	signupUC := auth.NewSignupUsecase(userRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer)
	userUC := usecase.NewUserUsecase(userRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, clock)
	paymentUC := usecase.NewPaymentUsecase(stripe)

	//Handler生成
	handlers := server.Handlers{
		Auth:     handler.NewAuthHandler(signupUC, loginUC),
		User:     handler.NewUserHandler(userUC),
		Product:  handler.NewProductHandler(productUC),
		Cart:     handler.NewCartHandler(cartUC),
		Wishlist: handler.NewWishlistHandler(wishlistUC),
		Order:    handler.NewOrderHandler(orderUC),
		Payment:  handler.NewPaymentHandler(paymentUC),
	}

	//Server起動
	if err := server.Start(cfg, handlers); err != nil {
		log.Fatal(err)
	}
}
