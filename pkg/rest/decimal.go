package rest

import "github.com/shopspring/decimal"

// Prices travel as JSON numbers, the way clients send them.
//
//nolint:gochecknoinits
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
