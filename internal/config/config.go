package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定。起動時に1回だけ読み込み、以後は不変。
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば最優先のDSN
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート
	PostgresSSLMode  string // disableなど

	JWTSecret string // JWT署名シークレット

	StripeSecretKey string        // Stripeシークレットキー（ハードコード禁止）
	StripeCurrency  string        // 固定通貨（usd）
	PaymentTimeout  time.Duration // 決済API呼び出しのタイムアウト

	FEURL string // フロントURL（CORS許可オリジン）
}

// Loadは環境変数から設定を組み立てる。
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripeCurrency:  getenv("STRIPE_CURRENCY", "usd"),

		FEURL: getenv("FE_URL", "http://localhost:3000"),
	}

	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	timeoutSec, err := atoiDefault("PAYMENT_TIMEOUT_SEC", 10)
	if err != nil {
		return Config{}, err
	}
	cfg.PaymentTimeout = time.Duration(timeoutSec) * time.Second

	//必須チェック（DSN指定があればDB個別指定は不要）
	if cfg.DatabaseURL == "" {
		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.StripeSecretKey == "" {
		return Config{}, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
