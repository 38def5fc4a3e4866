package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"weapon_market/internal/domain/entity"
	"weapon_market/internal/domain/value"
	"weapon_market/pkg/logx"
)

type SearchResult struct {
	// Body готовый JSON ответа; при попадании в кэш байт в байт то, что
	// лежало в кэше.
	Body   []byte
	Cached bool
}

// Search ищет открытые лоты. Анонимные запросы сначала смотрят в кэш,
// авторизованные всегда получают живые данные. Любой промах заполняет кэш в
// фоне.
func (s *MarketService) Search(
	ctx context.Context,
	params value.SearchParams,
	authenticated bool,
) (SearchResult, error) {
	return s.search(ctx, params, !authenticated)
}

// Refresh пересчитывает страницу из репозитория и перезаписывает её в кэше.
func (s *MarketService) Refresh(ctx context.Context, params value.SearchParams) error {
	if _, err := s.search(ctx, params, false); err != nil {
		return err
	}

	return nil
}

func (s *MarketService) search(
	ctx context.Context,
	params value.SearchParams,
	readCache bool,
) (SearchResult, error) {
	start := time.Now()
	filter, pagination := params.Normalize()

	key, err := value.CacheKey(filter, pagination)
	if err != nil {
		return SearchResult{}, fmt.Errorf("value.CacheKey: %w", err)
	}

	if readCache && s.cache != nil {
		if body, ok := s.lookup(ctx, key); ok {
			searchDuration.WithLabelValues("cache").Observe(time.Since(start).Seconds())

			return SearchResult{Body: body, Cached: true}, nil
		}
	}

	page, err := s.loadPage(ctx, filter, pagination)
	if err != nil {
		return SearchResult{}, err
	}

	body, err := json.Marshal(page)
	if err != nil {
		return SearchResult{}, fmt.Errorf("json.Marshal: %w", err)
	}

	searchDuration.WithLabelValues("repository").Observe(time.Since(start).Seconds())

	if s.cache != nil {
		s.store(ctx, key, body)
	}

	return SearchResult{Body: body}, nil
}

func (s *MarketService) loadPage(
	ctx context.Context,
	filter value.Filter,
	pagination value.Pagination,
) (entity.SearchPage, error) {
	var (
		results []entity.WeaponListing
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		results, err = s.repo.Find(gctx, filter, pagination)
		if err != nil {
			return fmt.Errorf("repo.Find: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		total, err = s.repo.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("repo.Count: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return entity.SearchPage{}, err
	}

	if results == nil {
		results = []entity.WeaponListing{}
	}

	pageSize := pagination.PageSize()
	pageNum := pagination.PageNum()

	return entity.SearchPage{
		Results: results,
		IDResults: lo.Map(results, func(l entity.WeaponListing, _ int) string {
			return l.WeaponID
		}),
		Page: entity.PageInfo{
			CurPage:   pageNum,
			CurOffset: pageNum * pageSize,
			Total:     total,
			PageSize:  pageSize,
			// Округление вниз: неполная последняя страница не считается.
			NumPages: total / int64(pageSize),
		},
	}, nil
}

type cachedPage struct {
	Results []jsoniter.RawMessage `json:"results"`
}

// lookup отдаёт закэшированную страницу. Ошибки кэша не валят поиск: это
// просто промах. Пустые страницы из кэша не отдаются.
func (s *MarketService) lookup(ctx context.Context, key string) ([]byte, bool) {
	exists, err := s.cache.Exists(ctx, key)
	if err != nil {
		searchCacheTotal.WithLabelValues(cacheResultError).Inc()
		logger(ctx).Warn("cache.Exists", slog.String("key", key), logx.Error(err))

		return nil, false
	}

	if !exists {
		searchCacheTotal.WithLabelValues(cacheResultMiss).Inc()
		return nil, false
	}

	body, err := s.cache.Get(ctx, key)
	if err != nil {
		searchCacheTotal.WithLabelValues(cacheResultError).Inc()
		logger(ctx).Warn("cache.Get", slog.String("key", key), logx.Error(err))

		return nil, false
	}

	var page cachedPage

	if err = json.Unmarshal(body, &page); err != nil || len(page.Results) == 0 {
		searchCacheTotal.WithLabelValues(cacheResultMiss).Inc()
		return nil, false
	}

	searchCacheTotal.WithLabelValues(cacheResultHit).Inc()

	return body, true
}

// store пишет страницу в кэш в фоне, не задерживая ответ.
func (s *MarketService) store(ctx context.Context, key string, body []byte) {
	ctx = context.WithoutCancel(ctx)

	s.pending.Add(1)

	go func() {
		defer s.pending.Done()

		if err := s.cache.Set(ctx, key, body, s.cacheTTL); err != nil {
			searchCacheTotal.WithLabelValues(cacheResultError).Inc()
			logger(ctx).Warn("cache.Set", slog.String("key", key), logx.Error(err))

			return
		}

		searchCacheTotal.WithLabelValues(cacheResultStore).Inc()
	}()
}
