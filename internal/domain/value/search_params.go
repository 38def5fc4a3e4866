package value

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	DefaultNetwork       = "bsc"
	DefaultMinStars      = 1
	DefaultMaxStars      = 5
	DefaultSortField     = "timestamp"
	DefaultSortDirection = -1
	MaxPageSize          = 60
	// MaxPageNum ограничивает номер страницы так, чтобы смещение
	// pageNum*pageSize не переполняло int.
	MaxPageNum = math.MaxInt / MaxPageSize
)

// SearchParams сырые параметры поиска как они пришли в запросе. Любое поле
// может быть пустым.
type SearchParams struct {
	Element       string
	MinStars      string
	MaxStars      string
	SortBy        string
	SortDir       string
	PageSize      string
	PageNum       string
	SellerAddress string
	BuyerAddress  string
	MinPrice      string
	MaxPrice      string
	Network       string
}

// Normalize приводит параметры к каноническому фильтру и пагинации.
// Одинаковые параметры всегда дают структурно одинаковый результат.
func (p SearchParams) Normalize() (Filter, Pagination) {
	filter := Filter{
		Network:       p.Network,
		WeaponElement: optionalString(p.Element),
		SellerAddress: optionalString(p.SellerAddress),
		BuyerAddress:  optionalString(p.BuyerAddress),
		WeaponStars: IntRange{
			Gte: intOrDefault(p.MinStars, DefaultMinStars),
			Lte: intOrDefault(p.MaxStars, DefaultMaxStars),
		},
		Price: DecimalRange{
			Gte: nonNegativeDecimal(p.MinPrice),
			Lte: nonNegativeDecimal(p.MaxPrice),
		},
	}

	if filter.Network == "" {
		filter.Network = DefaultNetwork
	}

	pageSize := parseInt(p.PageSize)
	if pageSize == 0 {
		pageSize = MaxPageSize
	}

	pageSize = min(max(pageSize, 1), MaxPageSize)
	pageNum := min(max(parseInt(p.PageNum), 0), MaxPageNum)

	sort := Sort{
		Field:     p.SortBy,
		Direction: DefaultSortDirection,
	}

	if sort.Field == "" {
		sort.Field = DefaultSortField
	}

	switch dir := parseInt(p.SortDir); {
	case dir > 0:
		sort.Direction = 1
	case dir < 0:
		sort.Direction = -1
	}

	return filter, Pagination{
		Skip:  pageSize * pageNum,
		Limit: pageSize,
		Sort:  sort,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// parseInt возвращает 0 для пустых и нечисловых значений.
func parseInt(s string) int {
	if s == "" {
		return 0
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

func intOrDefault(s string, def int) *int {
	n := parseInt(s)
	if n == 0 {
		n = def
	}

	return &n
}

// nonNegativeDecimal отсекает отрицательные значения до нуля. Нулевая граница
// ничего не сужает, поэтому она остаётся незаданной.
func nonNegativeDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}

	if !d.IsPositive() {
		return nil
	}

	return &d
}
