package catalog

import (
	"fmt"
	"time"

	"go-gin-travel-agency/internal/factory"
	"go-gin-travel-agency/internal/model"
	apperrors "go-gin-travel-agency/pkg/app_errors"

	"golang.org/x/text/language"
)

// Resolver 將目的地、日期與等級轉換為可供選擇的元件
type Resolver struct {
	catalog *Catalog
	rnd     factory.Rand
}

// NewResolver rnd 為 nil 時使用 factory.GlobalRand
func NewResolver(catalog *Catalog, rnd factory.Rand) *Resolver {
	if rnd == nil {
		rnd = factory.GlobalRand()
	}
	return &Resolver{catalog: catalog, rnd: rnd}
}

func (r *Resolver) Cities() []string {
	return append([]string(nil), r.catalog.Cities...)
}

func (r *Resolver) GuideLanguages() []language.Tag {
	return append([]language.Tag(nil), r.catalog.GuideLanguages...)
}

func (r *Resolver) SeasonOf(date time.Time) model.Season {
	return model.SeasonOf(date)
}

func (r *Resolver) Factory(tier model.Tier) (*factory.Factory, error) {
	return factory.New(tier, r.rnd)
}

func (r *Resolver) CreatePackageBuilder(tier model.Tier) (*model.PackageBuilder, error) {
	f, err := r.Factory(tier)
	if err != nil {
		return nil, err
	}
	return model.NewPackageBuilder(f), nil
}

// GenerateTickets 產生 NumberOfLegs 張機票，每張的時刻與票價各自抽樣
func (r *Resolver) GenerateTickets(departure, destination string, outbound, ret time.Time, tier model.Tier) ([]*model.TransportTicket, error) {
	f, err := r.Factory(tier)
	if err != nil {
		return nil, err
	}

	legs := f.NumberOfLegs()
	tickets := make([]*model.TransportTicket, 0, legs)
	for i := 0; i < legs; i++ {
		ticket := f.CreateTicket()
		ticket.Departure = departure
		ticket.Destination = destination
		ticket.DepartDateOutbound = outbound
		ticket.DepartDateReturn = ret
		ticket.TimeOutbound = f.DepartureTime()
		ticket.TimeReturn = f.DepartureTime()
		ticket.Price = f.Fare()
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

// AvailableLodging 只回傳與等級相同的住宿，入住/退房日期取自查詢
func (r *Resolver) AvailableLodging(city string, tier model.Tier, checkIn, checkOut time.Time) ([]*model.Lodging, error) {
	offers, ok := r.catalog.Lodgings[city]
	if !ok {
		return nil, fmt.Errorf("lodging for %q: %w", city, apperrors.ErrCityNotFound)
	}
	f, err := r.Factory(tier)
	if err != nil {
		return nil, err
	}

	lodgings := make([]*model.Lodging, 0, len(offers))
	for _, offer := range offers {
		if offer.Tier != tier {
			continue
		}
		lodging := f.CreateLodging()
		lodging.Name = offer.Name
		lodging.City = city
		lodging.PricePerNight = offer.PricePerNight
		lodging.Rating = offer.Rating
		lodging.StarClass = offer.StarClass
		lodging.CheckIn = checkIn
		lodging.CheckOut = checkOut
		lodgings = append(lodgings, lodging)
	}
	return lodgings, nil
}

// AvailableExcursions 季節依 travelDate 決定。
// Premium 看得到所有等級的行程，Basic 只看得到 basic 行程。
func (r *Resolver) AvailableExcursions(city string, tier model.Tier, travelDate time.Time) ([]*model.Excursion, error) {
	offers, ok := r.catalog.Excursions[city]
	if !ok {
		return nil, fmt.Errorf("excursions for %q: %w", city, apperrors.ErrCityNotFound)
	}
	f, err := r.Factory(tier)
	if err != nil {
		return nil, err
	}

	season := r.SeasonOf(travelDate)
	excursions := make([]*model.Excursion, 0, len(offers))
	for _, offer := range offers {
		if offer.Tier != tier && tier != model.TierPremium {
			continue
		}
		if !offer.Season.Matches(season) {
			continue
		}
		excursion := f.CreateExcursion()
		excursion.Name = offer.Name
		excursion.Description = offer.Description
		excursion.Price = offer.Price
		excursion.Season = offer.Season
		excursions = append(excursions, excursion)
	}
	return excursions, nil
}

// AvailableServices 固定順序：網卡、交通票、各語言導覽書
func (r *Resolver) AvailableServices(city string, durationDays int, tier model.Tier) ([]model.AncillaryService, error) {
	connectivity, err := model.NewConnectivityPass(city, string(tier))
	if err != nil {
		return nil, err
	}

	services := []model.AncillaryService{
		connectivity,
		model.NewTransitPass(city, durationDays),
	}
	for _, lang := range r.catalog.GuideLanguages {
		services = append(services, model.NewGuideBook(city, lang))
	}
	return services, nil
}
