package value

import "github.com/shopspring/decimal"

// Filter каноническая форма фильтра поиска. Порядок полей фиксирован и
// участвует в ключе кэша, поэтому необязательные поля заданы указателями, а не
// пропуски: nil сериализуется как null.
type Filter struct {
	Network       string  `json:"network"`
	WeaponElement *string `json:"weaponElement"`
	SellerAddress *string `json:"sellerAddress"`
	// BuyerAddress == nil означает явное условие "покупателя нет", т.е. только
	// открытые лоты.
	BuyerAddress *string      `json:"buyerAddress"`
	WeaponStars  IntRange     `json:"weaponStars"`
	Price        DecimalRange `json:"price"`
}

type IntRange struct {
	Gte *int `json:"gte"`
	Lte *int `json:"lte"`
}

type DecimalRange struct {
	Gte *decimal.Decimal `json:"gte"`
	Lte *decimal.Decimal `json:"lte"`
}

type Sort struct {
	Field     string `json:"field"`
	Direction int    `json:"direction"`
}

func (s Sort) Ascending() bool {
	return s.Direction > 0
}

type Pagination struct {
	Skip  int  `json:"skip"`
	Limit int  `json:"limit"`
	Sort  Sort `json:"sort"`
}

func (p Pagination) PageSize() int {
	return p.Limit
}

func (p Pagination) PageNum() int {
	if p.Limit == 0 {
		return 0
	}

	return p.Skip / p.Limit
}
