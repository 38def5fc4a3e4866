package entity

import "github.com/shopspring/decimal"

// WeaponListing лот оружия на маркете. Натуральный ключ: (Network, WeaponID).
// BuyerAddress == nil означает, что лот ещё продаётся.
type WeaponListing struct {
	Network       string          `json:"network" validate:"required"`
	WeaponID      string          `json:"weaponId" validate:"required"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	WeaponStars   int             `json:"weaponStars" validate:"required"`
	WeaponElement string          `json:"weaponElement" validate:"required"`
	Stat1Element  string          `json:"stat1Element" validate:"required"`
	Stat1Value    int             `json:"stat1Value" validate:"required"`
	Stat2Element  *string         `json:"stat2Element,omitempty"`
	Stat2Value    *int            `json:"stat2Value,omitempty"`
	Stat3Element  *string         `json:"stat3Element,omitempty"`
	Stat3Value    *int            `json:"stat3Value,omitempty"`
	Timestamp     int64           `json:"timestamp" validate:"required"`
	SellerAddress string          `json:"sellerAddress" validate:"required"`
	BuyerAddress  *string         `json:"buyerAddress"`
}

func (l WeaponListing) Key() WeaponKey {
	return WeaponKey{Network: l.Network, WeaponID: l.WeaponID}
}

// WeaponKey натуральный ключ лота.
type WeaponKey struct {
	Network  string
	WeaponID string
}

func (k WeaponKey) IsZero() bool {
	return k.Network == "" || k.WeaponID == ""
}
