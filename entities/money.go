package entities

import "github.com/shopspring/decimal"

func init() {
	// The entity stores exchange prices as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
