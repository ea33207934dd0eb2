package cache

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cppla/yatube/config"
)

// NewRedisClient builds a client from the redis section of cfg.
func NewRedisClient(cfg config.AppConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

// RedisStore keeps entries in Redis so every process serves the same cached page.
type RedisStore struct {
	rc     *redis.Client
	prefix string
	log    *zap.SugaredLogger
}

// NewRedisStore namespaces all keys under prefix.
func NewRedisStore(rc *redis.Client, prefix string, log *zap.SugaredLogger) *RedisStore {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &RedisStore{rc: rc, prefix: prefix, log: log}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	b, err := r.rc.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warnf("cache get failed key=%s err=%v", key, err)
		}
		return nil, false
	}
	return b, true
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := r.rc.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		r.log.Warnf("cache set failed key=%s err=%v", key, err)
	}
}

// InvalidatePrefix deletes matching keys using SCAN.
func (r *RedisStore) InvalidatePrefix(ctx context.Context, prefix string) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var cursor uint64
	for i := 0; i < 10; i++ { // limit rounds to avoid long loops
		keys, cur, err := r.rc.Scan(ctx, cursor, r.prefix+prefix+"*", 1000).Result()
		if err != nil {
			r.log.Warnf("cache scan failed prefix=%s err=%v", prefix, err)
			return
		}
		cursor = cur
		if len(keys) > 0 {
			if err := r.rc.Del(ctx, keys...).Err(); err != nil {
				r.log.Warnf("cache delete failed prefix=%s err=%v", prefix, err)
			}
		}
		if cursor == 0 {
			return
		}
	}
}
