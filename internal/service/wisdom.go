package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"aaru/internal/model"
	"aaru/pkg/circuitbreaker"
	"aaru/pkg/logger"
	"aaru/pkg/metrics"
)

const wisdomCacheKeyPrefix = "aaru:wisdom:"

// Wisdom fetches the decorative quote of the day from an external service.
// One quote per calendar day is cached in Redis; any failure (breaker
// open, network, bad status, malformed body, missing field) degrades to
// the fixed fallback quote and is only logged.
type Wisdom struct {
	url        string
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker
	cache      *redis.Client
	logger     *zap.Logger
}

// NewWisdom builds the wisdom client. cache may be nil when Redis is not
// configured; every call then goes through the breaker.
func NewWisdom(url string, timeout time.Duration, cache *redis.Client, log *zap.Logger) *Wisdom {
	return &Wisdom{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cb:     circuitbreaker.New(circuitbreaker.DefaultConfig()),
		cache:  cache,
		logger: log,
	}
}

// Daily returns today's quote. Never fails: the fallback quote covers
// every error path.
func (w *Wisdom) Daily(ctx context.Context) model.Quote {
	today := model.Today()

	if q, ok := w.cached(ctx, today); ok {
		metrics.IncrementWisdomFetch("cached")
		return q
	}

	q, err := w.fetch(ctx)
	if err != nil {
		metrics.IncrementWisdomFetch("fallback")
		logger.WithTrace(ctx, w.logger).Warn("Daily wisdom fetch failed, using fallback", zap.Error(err))
		return model.FallbackQuote()
	}

	metrics.IncrementWisdomFetch("fetched")
	w.remember(ctx, today, q)
	return q
}

func (w *Wisdom) cached(ctx context.Context, date string) (model.Quote, bool) {
	if w.cache == nil {
		return model.Quote{}, false
	}
	doc, err := w.cache.Get(ctx, wisdomCacheKeyPrefix+date).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			w.logger.Warn("Wisdom cache read failed", zap.Error(err))
		}
		return model.Quote{}, false
	}
	var q model.Quote
	if err := json.Unmarshal(doc, &q); err != nil {
		return model.Quote{}, false
	}
	return q, true
}

func (w *Wisdom) remember(ctx context.Context, date string, q model.Quote) {
	if w.cache == nil {
		return
	}
	doc, err := json.Marshal(q)
	if err != nil {
		return
	}
	if err := w.cache.Set(ctx, wisdomCacheKeyPrefix+date, doc, 24*time.Hour).Err(); err != nil {
		w.logger.Warn("Wisdom cache write failed", zap.Error(err))
	}
}

func (w *Wisdom) fetch(ctx context.Context) (model.Quote, error) {
	if w.url == "" {
		return model.Quote{}, errors.New("wisdom service not configured")
	}

	var q model.Quote
	err := w.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
		if err != nil {
			return err
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("wisdom service returned status %d", resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
			return fmt.Errorf("failed to decode wisdom response: %w", err)
		}
		if q.Quote == "" || q.Author == "" {
			return errors.New("wisdom response missing quote or author")
		}
		return nil
	})
	if err != nil {
		return model.Quote{}, err
	}
	return q, nil
}
