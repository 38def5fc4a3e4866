package server

import (
	"context"
	"fmt"
	"net/http"

	"weapon_market/internal/domain/entity"
	service "weapon_market/internal/domain/service/market"
	"weapon_market/internal/domain/value"
	"weapon_market/pkg/contextx"
	"weapon_market/pkg/httpx/reply"
	"weapon_market/pkg/httpx/req"
	"weapon_market/pkg/rest"
)

const (
	cacheHeader = "X-Cache"
	cacheHit    = "HIT"
	cacheMiss   = "MISS"
)

//go:generate moq -rm -out market_service_mock_test.go . marketService:marketServiceMock
type marketService interface {
	Search(ctx context.Context, params value.SearchParams, authenticated bool) (service.SearchResult, error)
	Upsert(ctx context.Context, listing entity.WeaponListing) error
	MarkSold(ctx context.Context, key entity.WeaponKey) error
	Delete(ctx context.Context, key entity.WeaponKey) error
	DeleteAllForSeller(ctx context.Context, sellerAddress string) error
}

type MarketServer struct {
	marketService marketService
}

func NewMarketServer(marketService marketService) MarketServer {
	return MarketServer{
		marketService: marketService,
	}
}

func (s MarketServer) getStaticMarketWeapon(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	result, err := s.marketService.Search(ctx, newSearchParams(r.URL.Query()), contextx.IsAuthenticated(ctx))
	if err != nil {
		return fmt.Errorf("marketService.Search: %w", err)
	}

	if result.Cached {
		w.Header().Set(cacheHeader, cacheHit)
	} else {
		w.Header().Set(cacheHeader, cacheMiss)
	}

	reply.RawJSON(ctx, w, http.StatusOK, result.Body)

	return nil
}

func (s MarketServer) putMarketWeapon(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.WeaponListing

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := s.marketService.Upsert(ctx, newDomainWeaponListing(weaponKey(r), request)); err != nil {
		return fmt.Errorf("marketService.Upsert: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Added{Added: true})

	return nil
}

func (s MarketServer) getMarketWeaponSell(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := s.marketService.MarkSold(ctx, weaponKey(r)); err != nil {
		return fmt.Errorf("marketService.MarkSold: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Sold{Sold: true})

	return nil
}

func (s MarketServer) deleteMarketWeapon(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := s.marketService.Delete(ctx, weaponKey(r)); err != nil {
		return fmt.Errorf("marketService.Delete: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Deleted{Deleted: true})

	return nil
}

func (s MarketServer) deleteMarketWeaponAll(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := s.marketService.DeleteAllForSeller(ctx, r.PathValue("sellerAddress")); err != nil {
		return fmt.Errorf("marketService.DeleteAllForSeller: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Deleted{Deleted: true})

	return nil
}

func weaponKey(r *http.Request) entity.WeaponKey {
	return entity.WeaponKey{
		Network:  r.PathValue("network"),
		WeaponID: r.PathValue("weaponId"),
	}
}
