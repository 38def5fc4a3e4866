package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"weapon_market/internal/domain/entity"
	"weapon_market/internal/domain/value"
	"weapon_market/pkg/contextx"
)

const DefaultCacheTTL = 450 * time.Second

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

type ListingRepository interface {
	Find(ctx context.Context, filter value.Filter, pagination value.Pagination) ([]entity.WeaponListing, error)
	Count(ctx context.Context, filter value.Filter) (int64, error)
	FindOne(ctx context.Context, key entity.WeaponKey) (*entity.WeaponListing, error)
	ReplaceOrInsert(ctx context.Context, listing *entity.WeaponListing) error
	InsertSale(ctx context.Context, sale *entity.WeaponSale) error
	RemoveOne(ctx context.Context, key entity.WeaponKey) error
	RemoveBySeller(ctx context.Context, sellerAddress string) error
}

//go:generate moq -rm -out cache_store_mock_test.go . CacheStore:CacheStoreMock
type CacheStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type MarketService struct {
	repo     ListingRepository
	cache    CacheStore
	cacheTTL time.Duration
	validate *validator.Validate

	// незавершённые фоновые записи в кэш
	pending sync.WaitGroup
}

func NewMarketService(repo ListingRepository) *MarketService {
	return &MarketService{
		repo:     repo,
		cacheTTL: DefaultCacheTTL,
		validate: newValidator(),
	}
}

// WithCache включает кэш для анонимного поиска. Без него поиск всегда идёт в
// репозиторий.
func (s *MarketService) WithCache(cache CacheStore, ttl time.Duration) *MarketService {
	s.cache = cache

	if ttl > 0 {
		s.cacheTTL = ttl
	}

	return s
}

// Wait блокируется, пока не завершатся все фоновые записи в кэш.
func (s *MarketService) Wait() {
	s.pending.Wait()
}
