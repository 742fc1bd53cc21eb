package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantFactory 依服務等級產生尚未填值的元件，並提供該等級的產生規則
type VariantFactory interface {
	Tier() Tier
	CreateTicket() *TransportTicket
	CreateLodging() *Lodging
	CreateExcursion() *Excursion
	// 每次呼叫重新抽樣，不做記憶
	NumberOfLegs() int
	// 抽樣來回票價
	Fare() decimal.Decimal
	// 抽樣起飛時刻
	DepartureTime() TimeOfDay
}

type TicketFields struct {
	Departure          string
	Destination        string
	DepartDateOutbound time.Time
	DepartDateReturn   time.Time
	Price              decimal.Decimal
	TimeOutbound       TimeOfDay
	TimeReturn         TimeOfDay
}

type LodgingFields struct {
	Name          string
	City          string
	CheckIn       time.Time
	CheckOut      time.Time
	PricePerNight decimal.Decimal
	Rating        float64
	StarClass     int
}

type ExcursionFields struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Season      Season
}

// PackageBuilder 逐步組裝旅遊套裝。
// GetPackage 交出目前的套裝並立即換上新的空套裝，已交出的套裝不再被修改。
// 不可由多個組裝流程共用。
type PackageBuilder struct {
	factory VariantFactory
	current *TravelPackage
}

func NewPackageBuilder(factory VariantFactory) *PackageBuilder {
	b := &PackageBuilder{factory: factory}
	b.Reset()
	return b
}

func (b *PackageBuilder) Tier() Tier {
	return b.factory.Tier()
}

// Reset 丟棄組裝中的套裝
func (b *PackageBuilder) Reset() {
	b.current = NewTravelPackage(b.factory.Tier())
}

func (b *PackageBuilder) AddTicket(f TicketFields) error {
	ticket := b.factory.CreateTicket()
	ticket.Departure = f.Departure
	ticket.Destination = f.Destination
	ticket.DepartDateOutbound = f.DepartDateOutbound
	ticket.DepartDateReturn = f.DepartDateReturn
	ticket.Price = f.Price
	ticket.TimeOutbound = f.TimeOutbound
	ticket.TimeReturn = f.TimeReturn
	return b.current.AddTicket(ticket)
}

func (b *PackageBuilder) AddLodging(f LodgingFields) error {
	lodging := b.factory.CreateLodging()
	lodging.Name = f.Name
	lodging.City = f.City
	lodging.CheckIn = f.CheckIn
	lodging.CheckOut = f.CheckOut
	lodging.PricePerNight = f.PricePerNight
	lodging.Rating = f.Rating
	lodging.StarClass = f.StarClass
	return b.current.AddLodging(lodging)
}

func (b *PackageBuilder) AddExcursion(f ExcursionFields) error {
	excursion := b.factory.CreateExcursion()
	excursion.Name = f.Name
	excursion.Description = f.Description
	excursion.Price = f.Price
	excursion.Season = f.Season
	return b.current.AddExcursion(excursion)
}

// AddService 附加服務與等級無關，直接加入
func (b *PackageBuilder) AddService(service AncillaryService) error {
	return b.current.AddService(service)
}

func (b *PackageBuilder) GetPackage() *TravelPackage {
	pkg := b.current
	pkg.finalize()
	b.Reset()
	return pkg
}

// Fields 取出機票欄位，供 PackageBuilder 重新組裝
func (t *TransportTicket) Fields() TicketFields {
	return TicketFields{
		Departure:          t.Departure,
		Destination:        t.Destination,
		DepartDateOutbound: t.DepartDateOutbound,
		DepartDateReturn:   t.DepartDateReturn,
		Price:              t.Price,
		TimeOutbound:       t.TimeOutbound,
		TimeReturn:         t.TimeReturn,
	}
}

func (l *Lodging) Fields() LodgingFields {
	return LodgingFields{
		Name:          l.Name,
		City:          l.City,
		CheckIn:       l.CheckIn,
		CheckOut:      l.CheckOut,
		PricePerNight: l.PricePerNight,
		Rating:        l.Rating,
		StarClass:     l.StarClass,
	}
}

func (e *Excursion) Fields() ExcursionFields {
	return ExcursionFields{
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Season:      e.Season,
	}
}
