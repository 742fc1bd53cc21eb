package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-gin-travel-agency/internal/model"
	apperrors "go-gin-travel-agency/pkg/app_errors"
	"go-gin-travel-agency/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultOfferTTL = 30 * time.Minute

type OfferStore interface {
	// 保存：保存搜尋結果，逾時後自動失效
	Save(ctx context.Context, session *model.SearchSession) error
	// 獲取：依 ID 取得搜尋結果，不存在或已過期時回傳 ErrSearchNotFound
	Get(ctx context.Context, id uuid.UUID) (*model.SearchSession, error)
	// 刪除：結帳完成後清除搜尋結果
	Delete(ctx context.Context, id uuid.UUID) error
}

type RedisOfferStoreImpl struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOfferStore ttl <= 0 時使用 DefaultOfferTTL
func NewRedisOfferStore(client *redis.Client, ttl time.Duration) OfferStore {
	if ttl <= 0 {
		ttl = DefaultOfferTTL
	}
	return &RedisOfferStoreImpl{
		client: client,
		ttl:    ttl,
	}
}

// 搜尋結果 key
func (s *RedisOfferStoreImpl) getSearchKey(id uuid.UUID) string {
	return fmt.Sprintf("search:%s", id)
}

func (s *RedisOfferStoreImpl) Save(ctx context.Context, session *model.SearchSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal search session: %w", err)
	}
	if err := s.client.Set(ctx, s.getSearchKey(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set search session: %w", err)
	}
	return nil
}

func (s *RedisOfferStoreImpl) Get(ctx context.Context, id uuid.UUID) (*model.SearchSession, error) {
	data, err := s.client.Get(ctx, s.getSearchKey(id)).Bytes()
	if err == redis.Nil {
		return nil, apperrors.ErrSearchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get search session: %w", err)
	}

	var session model.SearchSession
	if err := json.Unmarshal(data, &session); err != nil {
		logger.WithComponent("cache").Warn("unmarshal search session failed", zap.String("search_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("unmarshal search session: %w", err)
	}
	return &session, nil
}

func (s *RedisOfferStoreImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, s.getSearchKey(id)).Err()
}
