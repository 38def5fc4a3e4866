package persistence

import (
	"github.com/shopspring/decimal"

	"weapon_market/internal/domain/entity"
)

// weaponSchema строка таблицы market_weapons.
type weaponSchema struct {
	ID            int64           `db:"id"`
	Network       string          `db:"network"`
	WeaponID      string          `db:"weapon_id"`
	Price         decimal.Decimal `db:"price"`
	WeaponStars   int             `db:"weapon_stars"`
	WeaponElement string          `db:"weapon_element"`
	Stat1Element  string          `db:"stat1_element"`
	Stat1Value    int             `db:"stat1_value"`
	Stat2Element  *string         `db:"stat2_element"`
	Stat2Value    *int            `db:"stat2_value"`
	Stat3Element  *string         `db:"stat3_element"`
	Stat3Value    *int            `db:"stat3_value"`
	Timestamp     int64           `db:"listing_timestamp"`
	SellerAddress string          `db:"seller_address"`
	BuyerAddress  *string         `db:"buyer_address"`
}

func fromWeaponListing(l *entity.WeaponListing) *weaponSchema {
	return &weaponSchema{
		Network:       l.Network,
		WeaponID:      l.WeaponID,
		Price:         l.Price,
		WeaponStars:   l.WeaponStars,
		WeaponElement: l.WeaponElement,
		Stat1Element:  l.Stat1Element,
		Stat1Value:    l.Stat1Value,
		Stat2Element:  l.Stat2Element,
		Stat2Value:    l.Stat2Value,
		Stat3Element:  l.Stat3Element,
		Stat3Value:    l.Stat3Value,
		Timestamp:     l.Timestamp,
		SellerAddress: l.SellerAddress,
		BuyerAddress:  l.BuyerAddress,
	}
}

func (s *weaponSchema) toDomain() entity.WeaponListing {
	return entity.WeaponListing{
		Network:       s.Network,
		WeaponID:      s.WeaponID,
		Price:         s.Price,
		WeaponStars:   s.WeaponStars,
		WeaponElement: s.WeaponElement,
		Stat1Element:  s.Stat1Element,
		Stat1Value:    s.Stat1Value,
		Stat2Element:  s.Stat2Element,
		Stat2Value:    s.Stat2Value,
		Stat3Element:  s.Stat3Element,
		Stat3Value:    s.Stat3Value,
		Timestamp:     s.Timestamp,
		SellerAddress: s.SellerAddress,
		BuyerAddress:  s.BuyerAddress,
	}
}

// saleSchema строка таблицы market_sales. Снимок лота лежит в jsonb.
type saleSchema struct {
	Type   string `db:"type"`
	Weapon []byte `db:"weapon"`
}
