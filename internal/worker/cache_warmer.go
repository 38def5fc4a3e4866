package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"

	"weapon_market/internal/domain/value"
	"weapon_market/pkg/logx"
)

type searchRefresher interface {
	Refresh(ctx context.Context, params value.SearchParams) error
}

// CacheWarmer периодически пересчитывает первую страницу поиска по каждой
// сети, чтобы анонимный запрос без параметров почти никогда не промахивался.
type CacheWarmer struct {
	refresher searchRefresher
	interval  time.Duration

	mu       sync.Mutex
	networks []string
}

func NewCacheWarmer(refresher searchRefresher, interval time.Duration) *CacheWarmer {
	return &CacheWarmer{
		refresher: refresher,
		interval:  interval,
	}
}

// WithNetworks задаёт список сетей, дубликаты и пустые значения отбрасываются.
func (w *CacheWarmer) WithNetworks(networks ...string) *CacheWarmer {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.networks = lo.Uniq(lo.Compact(networks))

	return w
}

// Networks возвращает копию текущего списка сетей.
func (w *CacheWarmer) Networks() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]string(nil), w.networks...)
}

// Run прогревает кэш сразу и затем раз в interval до отмены контекста.
// Без сетей сразу возвращает nil.
func (w *CacheWarmer) Run(ctx context.Context) error {
	if len(w.Networks()) == 0 || w.interval <= 0 {
		logger(ctx).Info("cache warmer disabled")
		return nil
	}

	logger(ctx).Info("cache warmer started", slog.Any("networks", w.Networks()))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.warmAll(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("cache warmer stopped")

			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}

			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *CacheWarmer) warmAll(ctx context.Context) {
	var warmed int

	for _, network := range w.Networks() {
		if ctx.Err() != nil {
			return
		}

		if err := w.refresher.Refresh(ctx, value.SearchParams{Network: network}); err != nil {
			logger(ctx).Error("cache warm failed", slog.String("network", network), logx.Error(err))
			continue
		}

		warmed++
	}

	logger(ctx).Debug("cache warm cycle completed", slog.Int("networks", warmed))
}
