package persistence

import (
	"strings"

	"weapon_market/internal/domain/value"
)

const weaponColumns = `id, network, weapon_id, price, weapon_stars, weapon_element,
	stat1_element, stat1_value, stat2_element, stat2_value, stat3_element, stat3_value,
	listing_timestamp, seller_address, buyer_address`

// sortColumns сопоставляет поля API с колонками. По неизвестному полю
// сортируем только по id, т.е. в порядке вставки.
var sortColumns = map[string]string{ //nolint:gochecknoglobals
	"timestamp":     "listing_timestamp",
	"price":         "price",
	"weaponStars":   "weapon_stars",
	"weaponId":      "weapon_id",
	"weaponElement": "weapon_element",
	"stat1Value":    "stat1_value",
	"sellerAddress": "seller_address",
}

// whereClause собирает условие по фильтру с плейсхолдерами "?".
// Незаданный buyerAddress означает "только открытые лоты".
func whereClause(filter value.Filter) (string, []any) {
	conds := []string{"network = ?"}
	args := []any{filter.Network}

	add := func(cond string, arg any) {
		conds = append(conds, cond)
		args = append(args, arg)
	}

	if filter.WeaponElement != nil {
		add("weapon_element = ?", *filter.WeaponElement)
	}

	if filter.SellerAddress != nil {
		add("seller_address = ?", *filter.SellerAddress)
	}

	if filter.BuyerAddress != nil {
		add("buyer_address = ?", *filter.BuyerAddress)
	} else {
		conds = append(conds, "buyer_address IS NULL")
	}

	if filter.WeaponStars.Gte != nil {
		add("weapon_stars >= ?", *filter.WeaponStars.Gte)
	}

	if filter.WeaponStars.Lte != nil {
		add("weapon_stars <= ?", *filter.WeaponStars.Lte)
	}

	if filter.Price.Gte != nil {
		add("price >= ?", *filter.Price.Gte)
	}

	if filter.Price.Lte != nil {
		add("price <= ?", *filter.Price.Lte)
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(sort value.Sort) string {
	column, ok := sortColumns[sort.Field]
	if !ok {
		return "ORDER BY id"
	}

	direction := "DESC"
	if sort.Ascending() {
		direction = "ASC"
	}

	return "ORDER BY " + column + " " + direction + ", id"
}

func findQuery(filter value.Filter, pagination value.Pagination) (string, []any) {
	where, args := whereClause(filter)

	query := "SELECT " + weaponColumns + " FROM market_weapons " + where + " " +
		orderClause(pagination.Sort) + " LIMIT ? OFFSET ?"

	return query, append(args, pagination.Limit, pagination.Skip)
}

func countQuery(filter value.Filter) (string, []any) {
	where, args := whereClause(filter)

	return "SELECT count(*) FROM market_weapons " + where, args
}
