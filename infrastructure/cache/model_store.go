package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/config"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	forecastModelKeyPrefix = "forecast:model:"
	defaultModelTTL        = 24 * time.Hour
)

// ModelStore compartilha modelos treinados entre instâncias
type ModelStore interface {
	GetModel(ctx context.Context, seriesKey string) (*domain.ForecastModelParams, bool, error)
	SetModel(ctx context.Context, params *domain.ForecastModelParams) error
}

type redisModelStore struct {
	client *redis.Client
	ttl    time.Duration
}

type noopModelStore struct{}

func NewModelStore(cfg config.Cache) (ModelStore, error) {
	if !cfg.Enabled {
		return &noopModelStore{}, nil
	}

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

	return NewRedisModelStore(client, cfg.ModelTTL), nil
}

func NewRedisModelStore(client *redis.Client, ttl time.Duration) ModelStore {
	if ttl <= 0 {
		ttl = defaultModelTTL
	}
	return &redisModelStore{client: client, ttl: ttl}
}

func NewNoopModelStore() ModelStore {
	return &noopModelStore{}
}

func (c *redisModelStore) GetModel(ctx context.Context, seriesKey string) (*domain.ForecastModelParams, bool, error) {
	payload, err := c.client.Get(ctx, forecastModelKeyPrefix+seriesKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var params domain.ForecastModelParams
	if err := json.Unmarshal(payload, &params); err != nil {
		return nil, false, fmt.Errorf("decode forecast model cache: %w", err)
	}

	return &params, true, nil
}

func (c *redisModelStore) SetModel(ctx context.Context, params *domain.ForecastModelParams) error {
	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode forecast model cache: %w", err)
	}

	if err := c.client.Set(ctx, forecastModelKeyPrefix+params.SeriesKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (n *noopModelStore) GetModel(ctx context.Context, seriesKey string) (*domain.ForecastModelParams, bool, error) {
	return nil, false, nil
}

func (n *noopModelStore) SetModel(ctx context.Context, params *domain.ForecastModelParams) error {
	return nil
}

func buildRedisOptions(cfg config.Cache) (*redis.Options, error) {
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
