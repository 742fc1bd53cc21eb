package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TravelClass 機票艙等，決定描述文字
type TravelClass string

const (
	ClassEconomy  TravelClass = "economy"
	ClassBusiness TravelClass = "business"
)

func (c TravelClass) label() string {
	if c == ClassBusiness {
		return "бизнес-класс"
	}
	return "эконом-класс"
}

// TransportTicket 來回機票，Price 為來回總價
type TransportTicket struct {
	Class              TravelClass     `json:"class"`
	Departure          string          `json:"departure"`
	Destination        string          `json:"destination"`
	DepartDateOutbound time.Time       `json:"depart_date_outbound"`
	DepartDateReturn   time.Time       `json:"depart_date_return"`
	Price              decimal.Decimal `json:"price"`
	TimeOutbound       TimeOfDay       `json:"time_outbound"`
	TimeReturn         TimeOfDay       `json:"time_return"`
}

func (t *TransportTicket) Describe() string {
	return fmt.Sprintf("Авиабилет %s, вылет вперед в %s, вылет назад в %s, цена: %s",
		t.Class.label(), t.TimeOutbound, t.TimeReturn, formatPrice(t.Price))
}
