package value

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

const CacheKeyPrefix = "mweapon-"

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// CacheKey строит подпись запроса для кэша. Поля сериализуются в порядке
// объявления структур, включая null-маркеры, так что разные фильтры не могут
// совпасть по ключу.
func CacheKey(filter Filter, pagination Pagination) (string, error) {
	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(filter): %w", err)
	}

	paginationJSON, err := json.Marshal(pagination)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(pagination): %w", err)
	}

	return CacheKeyPrefix + string(filterJSON) + "-" + string(paginationJSON), nil
}
