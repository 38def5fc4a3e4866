package entity

import "time"

const SaleTypeWeapon = "weapon"

// WeaponSale неизменяемый снимок лота в момент продажи. Пишется только вставкой,
// на одно оружие их может быть несколько (перепродажи).
type WeaponSale struct {
	Type      string        `json:"type"`
	Weapon    WeaponListing `json:"weapon"`
	CreatedAt time.Time     `json:"createdAt"`
}

func NewWeaponSale(listing WeaponListing) WeaponSale {
	return WeaponSale{
		Type:   SaleTypeWeapon,
		Weapon: listing,
	}
}
