package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 保存先ドライバ
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Configはアプリ全体の設定
type Config struct {
	Port     string // APIサーバーポート（8080）
	GoEnv    string // development / production
	LogLevel string // debug / info / warn / error

	CartNamespace  string        // スロットキーの接頭辞（"<namespace>:cart"）
	CatalogBaseURL string        // カタログAPI（/products, /stock）
	CatalogTimeout time.Duration // カタログAPIのタイムアウト

	StorageDriver string // memory / sqlite / postgres / redis
	SQLitePath    string

	DatabaseURL      string // あれば POSTGRES_* より優先
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CatalogPort       string // カタログサーバーのポート
	CatalogFixture    string // シード用JSON
	CatalogSQLitePath string
}

// Loadは .env（任意）と環境変数から読む
func Load() (Config, error) {
	// .env が無いのは正常
	_ = godotenv.Load()

	return loadFrom(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GO_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("CART_NAMESPACE", "@storefront")
	v.SetDefault("CATALOG_BASE_URL", "http://localhost:3333")
	v.SetDefault("CATALOG_TIMEOUT", "10s")

	v.SetDefault("STORAGE_DRIVER", StorageSQLite)
	v.SetDefault("SQLITE_PATH", "storefront.db")

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "app")
	v.SetDefault("POSTGRES_SSLMODE", "disable")

	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CATALOG_PORT", "3333")
	v.SetDefault("CATALOG_FIXTURE", "cmd/catalog/catalog.json")
	v.SetDefault("CATALOG_SQLITE_PATH", "file::memory:?cache=shared")
}

func loadFrom(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:     v.GetString("PORT"),
		GoEnv:    v.GetString("GO_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),

		CartNamespace:  strings.TrimSpace(v.GetString("CART_NAMESPACE")),
		CatalogBaseURL: strings.TrimRight(v.GetString("CATALOG_BASE_URL"), "/"),
		CatalogTimeout: v.GetDuration("CATALOG_TIMEOUT"),

		StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		SQLitePath:    v.GetString("SQLITE_PATH"),

		DatabaseURL:      v.GetString("DATABASE_URL"),
		PostgresHost:     v.GetString("POSTGRES_HOST"),
		PostgresPort:     v.GetInt("POSTGRES_PORT"),
		PostgresUser:     v.GetString("POSTGRES_USER"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
		PostgresSSLMode:  v.GetString("POSTGRES_SSLMODE"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		CatalogPort:       v.GetString("CATALOG_PORT"),
		CatalogFixture:    v.GetString("CATALOG_FIXTURE"),
		CatalogSQLitePath: v.GetString("CATALOG_SQLITE_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// 必須チェック
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.CartNamespace == "" {
		return fmt.Errorf("CART_NAMESPACE is required")
	}
	if c.CatalogBaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL is required")
	}
	if c.CatalogTimeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT must be positive")
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" && c.PostgresHost == "" {
			return fmt.Errorf("DATABASE_URL or POSTGRES_HOST is required")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of memory, sqlite, postgres, redis: %q", c.StorageDriver)
	}

	return nil
}

// host=... 形式のDSN
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// ":8080" 形式
func ListenAddr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] != ':' {
		return ":" + port
	}
	return port
}
