package model

import "github.com/shopspring/decimal"

const currencySuffix = "руб."

func formatPrice(amount decimal.Decimal) string {
	return amount.String() + " " + currencySuffix
}
