package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Excursion 當地行程
type Excursion struct {
	Tier        Tier            `json:"tier"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Season      Season          `json:"season"`
}

func (e *Excursion) Describe() string {
	return fmt.Sprintf("%s - %s, сезон: %s, цена: %s", e.Name, e.Description, e.Season.Label(), formatPrice(e.Price))
}
