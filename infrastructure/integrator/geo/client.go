// Package geo busca as fronteiras estaduais em GeoJSON
package geo

import (
	"context"
	stdjson "encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/config"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Fetcher baixa o conteúdo de uma URL
type Fetcher func(ctx context.Context, url string, timeout time.Duration) ([]byte, error)

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Properties map[string]any      `json:"properties"`
	Geometry   stdjson.RawMessage `json:"geometry"`
}

// Client busca o GeoJSON uma vez e mantém o resultado em memória.
// Chamadas simultâneas com o cache vazio compartilham o mesmo download.
// Falhas não são memorizadas; a próxima chamada tenta de novo.
type Client struct {
	url      string
	stateKey string
	timeout  time.Duration
	fetch    Fetcher

	group  singleflight.Group
	mu     sync.RWMutex
	cached *domain.BoundarySet
}

func NewClient(cfg config.Geo) *Client {
	return NewClientWithFetcher(cfg, utils.MakeRequest)
}

func NewClientWithFetcher(cfg config.Geo, fetch Fetcher) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:      cfg.URL,
		stateKey: cfg.StateKey,
		timeout:  timeout,
		fetch:    fetch,
	}
}

func (c *Client) Boundaries(ctx context.Context) (domain.BoundarySet, error) {
	if set, ok := c.cachedSet(); ok {
		return set, nil
	}

	v, err, _ := c.group.Do(c.url, func() (any, error) {
		if set, ok := c.cachedSet(); ok {
			return set, nil
		}

		body, err := c.fetch(ctx, c.url, c.timeout)
		if err != nil {
			return nil, fmt.Errorf("geo: fetch boundaries: %w", err)
		}

		set, err := Parse(body, c.stateKey)
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"url":      c.url,
			"features": len(set.Features),
		}).Info("Fronteiras estaduais carregadas")

		c.mu.Lock()
		c.cached = &set
		c.mu.Unlock()
		return set, nil
	})
	if err != nil {
		return domain.BoundarySet{}, err
	}
	return v.(domain.BoundarySet), nil
}

func (c *Client) cachedSet() (domain.BoundarySet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cached == nil {
		return domain.BoundarySet{}, false
	}
	return *c.cached, true
}

// Parse indexa as geometrias de um FeatureCollection pela propriedade key
func Parse(body []byte, key string) (domain.BoundarySet, error) {
	var fc featureCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		return domain.BoundarySet{}, fmt.Errorf("geo: decode geojson: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return domain.BoundarySet{}, fmt.Errorf("geo: expected FeatureCollection, got %q", fc.Type)
	}

	set := domain.BoundarySet{Key: key, Features: make(map[string]stdjson.RawMessage, len(fc.Features))}
	for _, f := range fc.Features {
		value, ok := f.Properties[key].(string)
		if !ok || value == "" {
			continue
		}
		set.Features[strings.ToUpper(value)] = f.Geometry
	}
	return set, nil
}
