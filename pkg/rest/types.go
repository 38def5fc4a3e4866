// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "github.com/shopspring/decimal"

// WeaponListing Лот оружия. В PUT network и weaponId берутся из пути.
type WeaponListing struct {
	Network       string          `json:"network"`
	WeaponID      string          `json:"weaponId"`
	Price         decimal.Decimal `json:"price"`
	WeaponStars   int             `json:"weaponStars"`
	WeaponElement string          `json:"weaponElement"`
	Stat1Element  string          `json:"stat1Element"`
	Stat1Value    int             `json:"stat1Value"`
	Stat2Element  *string         `json:"stat2Element,omitempty"`
	Stat2Value    *int            `json:"stat2Value,omitempty"`
	Stat3Element  *string         `json:"stat3Element,omitempty"`
	Stat3Value    *int            `json:"stat3Value,omitempty"`
	Timestamp     int64           `json:"timestamp"`
	SellerAddress string          `json:"sellerAddress"`
	BuyerAddress  *string         `json:"buyerAddress"`
}

// SearchPage Страница результатов поиска
type SearchPage struct {
	Results   []WeaponListing `json:"results"`
	IDResults []string        `json:"idResults"`
	Page      PageInfo        `json:"page"`
}

type PageInfo struct {
	CurPage   int   `json:"curPage"`
	CurOffset int   `json:"curOffset"`
	Total     int64 `json:"total"`
	PageSize  int   `json:"pageSize"`
	NumPages  int64 `json:"numPages"`
}

type Added struct {
	Added bool `json:"added"`
}

type Sold struct {
	Sold bool `json:"sold"`
}

type Deleted struct {
	Deleted bool `json:"deleted"`
}

// Error Модель ошибок
type Error struct {
	// Error Сообщение об ошибке
	Error string `json:"error"`

	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
