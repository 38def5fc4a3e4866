package server

import (
	"net/url"

	"weapon_market/internal/domain/entity"
	"weapon_market/internal/domain/value"
	"weapon_market/pkg/rest"
)

func newSearchParams(query url.Values) value.SearchParams {
	return value.SearchParams{
		Element:       query.Get("element"),
		MinStars:      query.Get("minStars"),
		MaxStars:      query.Get("maxStars"),
		SortBy:        query.Get("sortBy"),
		SortDir:       query.Get("sortDir"),
		PageSize:      query.Get("pageSize"),
		PageNum:       query.Get("pageNum"),
		SellerAddress: query.Get("sellerAddress"),
		BuyerAddress:  query.Get("buyerAddress"),
		MinPrice:      query.Get("minPrice"),
		MaxPrice:      query.Get("maxPrice"),
		Network:       query.Get("network"),
	}
}

// newDomainWeaponListing собирает лот из тела запроса; ключ берётся из пути.
func newDomainWeaponListing(key entity.WeaponKey, listing rest.WeaponListing) entity.WeaponListing {
	return entity.WeaponListing{
		Network:       key.Network,
		WeaponID:      key.WeaponID,
		Price:         listing.Price,
		WeaponStars:   listing.WeaponStars,
		WeaponElement: listing.WeaponElement,
		Stat1Element:  listing.Stat1Element,
		Stat1Value:    listing.Stat1Value,
		Stat2Element:  listing.Stat2Element,
		Stat2Value:    listing.Stat2Value,
		Stat3Element:  listing.Stat3Element,
		Stat3Value:    listing.Stat3Value,
		Timestamp:     listing.Timestamp,
		SellerAddress: listing.SellerAddress,
		BuyerAddress:  listing.BuyerAddress,
	}
}
