package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/TiwariPiyush2510/Par-Stock/internal/config"
	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	catalogKeyPrefix = "parstock:catalog:"
	scanBatchSize    = 100
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func newRedisStore(cfg config.CacheConfig) (Store, error) {
	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	// TTL 0 keeps catalogs until explicitly deleted
	ttl := time.Duration(cfg.CatalogTTLSeconds) * time.Second
	if ttl < 0 {
		ttl = 0
	}

	return &redisStore{client: client, ttl: ttl}, nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func (s *redisStore) Save(ctx context.Context, id string, cat domain.SupplierCatalog) error {
	payload, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("encode catalog %q: %w", id, err)
	}

	if err := s.client.Set(ctx, catalogKeyPrefix+id, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (domain.SupplierCatalog, bool, error) {
	payload, err := s.client.Get(ctx, catalogKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return domain.SupplierCatalog{}, false, nil
	}
	if err != nil {
		return domain.SupplierCatalog{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var cat domain.SupplierCatalog
	if err := json.Unmarshal(payload, &cat); err != nil {
		return domain.SupplierCatalog{}, false, fmt.Errorf("decode catalog %q: %w", id, err)
	}
	return cat, true, nil
}

func (s *redisStore) List(ctx context.Context) ([]string, error) {
	var (
		cursor uint64
		ids    []string
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, catalogKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan failed: %w", err)
		}
		for _, key := range keys {
			ids = append(ids, strings.TrimPrefix(key, catalogKeyPrefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, catalogKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
