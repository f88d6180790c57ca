package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kashvi-creations/storefront-api/internal/application"
	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	"github.com/kashvi-creations/storefront-api/pkg/helpers"
)

// Records outlive their logical expiry by this much so that an expired
// code can be told apart from a never-issued one.
const expiryGrace = 30 * time.Minute

// ResetCodeStore keeps one JSON record per phone in Redis. SET on the
// same key gives the upsert semantics: issuing replaces the prior code.
type ResetCodeStore struct {
	RDB *redis.Client
}

func NewResetCodeStore(rdb *redis.Client) *ResetCodeStore {
	return &ResetCodeStore{RDB: rdb}
}

func (s *ResetCodeStore) Save(ctx context.Context, rec *entity.ResetCode) error {
	ttl := time.Until(rec.ExpiresAt) + expiryGrace
	if ttl <= 0 {
		ttl = time.Minute
	}
	return helpers.RedisSetJSON(ctx, s.RDB, helpers.KeyResetCode(rec.Phone), rec, ttl)
}

func (s *ResetCodeStore) Get(ctx context.Context, phone string) (*entity.ResetCode, error) {
	var rec entity.ResetCode
	found, err := helpers.RedisGetJSON(ctx, s.RDB, helpers.KeyResetCode(phone), &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &rec, nil
}

func (s *ResetCodeStore) Delete(ctx context.Context, phone string) error {
	return helpers.RedisDel(ctx, s.RDB, helpers.KeyResetCode(phone))
}

var _ application.ResetCodeStore = (*ResetCodeStore)(nil)
