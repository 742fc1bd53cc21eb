package model

import (
	"time"

	"github.com/google/uuid"
)

// SearchQuery 搜尋條件
type SearchQuery struct {
	Departure   string    `json:"departure"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Tier        Tier      `json:"tier"`
}

// DurationDays 旅程天數
func (q SearchQuery) DurationDays() int {
	return DaysBetween(q.StartDate, q.EndDate)
}

// SearchSession 暫存於 Redis 的搜尋結果；隨機產生的機票必須保存，其餘可由目錄重算
type SearchSession struct {
	ID        uuid.UUID          `json:"id"`
	Query     SearchQuery        `json:"query"`
	Tickets   []*TransportTicket `json:"tickets"`
	CreatedAt time.Time          `json:"created_at"`
}

// Offers 一次搜尋可供選擇的元件
type Offers struct {
	SearchID   uuid.UUID
	Query      SearchQuery
	Tickets    []*TransportTicket
	Lodgings   []*Lodging
	Excursions []*Excursion
	Services   []AncillaryService
}

// PackageSelection 從搜尋結果中選出的元件索引
type PackageSelection struct {
	SearchID         uuid.UUID
	TicketIndex      int
	LodgingIndex     int
	ExcursionIndexes []int
	ServiceIndexes   []int
}
