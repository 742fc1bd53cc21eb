package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CatalogSource 目錄資料來源
type CatalogSource string

const (
	CatalogSourceBuiltin  CatalogSource = "builtin"
	CatalogSourceFile     CatalogSource = "file"
	CatalogSourcePostgres CatalogSource = "postgres"
)

type CatalogConfig struct {
	Source CatalogSource
	Path   string
	// 搜尋結果在 Redis 中的存活時間
	OfferTTL time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Catalog:  GetCatalogConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "8081", GinMode: "test"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Catalog: CatalogConfig{
			Source:   CatalogSourceBuiltin,
			OfferTTL: time.Minute,
		},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnv("HTTP_PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetCatalogConfig() CatalogConfig {
	ttl, err := time.ParseDuration(getEnv("OFFER_TTL", "30m"))
	if err != nil {
		panic(err)
	}

	return CatalogConfig{
		Source:   CatalogSource(getEnv("CATALOG_SOURCE", string(CatalogSourceBuiltin))),
		Path:     getEnv("CATALOG_PATH", "catalog.yaml"),
		OfferTTL: ttl,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
