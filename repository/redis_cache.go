package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisCache implementa CacheRepository sobre um Redis, para quando mais de
// uma réplica do serviço precisa enxergar o mesmo último cálculo. O padrão
// continua sendo o repositório em memória.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Ping confirma a conectividade na subida do processo.
func (r *RedisCache) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
