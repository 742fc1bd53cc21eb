package database

import (
	"context"
	"fmt"
	"go-gin-travel-agency/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis 搜尋結果暫存使用的 Redis 連線
func InitRedis(ctx context.Context, config *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}
