package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば最優先で使う
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     string // DBポート（5432）
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresSSLMode  string // disable/require

	// 在庫スキャンの間隔。0で無効。
	StockScanInterval time.Duration
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "autoparts"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
	}

	minutes, err := atoiEnv("STOCK_SCAN_INTERVAL_MINUTES", 0)
	if err != nil {
		return Config{}, err
	}
	if minutes < 0 {
		return Config{}, fmt.Errorf("STOCK_SCAN_INTERVAL_MINUTES must be >= 0")
	}
	cfg.StockScanInterval = time.Duration(minutes) * time.Minute

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiEnv(key string, def int) (int, error) {
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
