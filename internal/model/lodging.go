package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Lodging 住宿
type Lodging struct {
	Tier          Tier            `json:"tier"`
	Name          string          `json:"name"`
	City          string          `json:"city"`
	CheckIn       time.Time       `json:"check_in"`
	CheckOut      time.Time       `json:"check_out"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Rating        float64         `json:"rating"`
	StarClass     int             `json:"star_class"`
}

// Nights 每次呼叫都依 CheckIn/CheckOut 重新計算；退房不晚於入住時為 0
func (l *Lodging) Nights() int {
	nights := DaysBetween(l.CheckIn, l.CheckOut)
	if nights < 0 {
		return 0
	}
	return nights
}

// Cost 住宿總價 = 每晚價格 × 晚數
func (l *Lodging) Cost() decimal.Decimal {
	return l.PricePerNight.Mul(decimal.NewFromInt(int64(l.Nights())))
}

func (l *Lodging) Describe() string {
	return fmt.Sprintf("%s: %d*, рейтинг: %.1f, цена за ночь: %s, %d ночей: %s",
		l.Name, l.StarClass, l.Rating, formatPrice(l.PricePerNight), l.Nights(), formatPrice(l.Cost()))
}
