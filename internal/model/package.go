package model

import (
	"strings"

	apperrors "go-gin-travel-agency/pkg/app_errors"

	"github.com/shopspring/decimal"
)

// PackageState 旅遊套裝狀態
type PackageState string

const (
	PackageStateEmpty      PackageState = "empty"
	PackageStateAssembling PackageState = "assembling"
	PackageStateFinalized  PackageState = "finalized"
)

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s PackageState) CanTransitionTo(target PackageState) bool {
	transitions := map[PackageState][]PackageState{
		PackageStateEmpty:      {PackageStateAssembling, PackageStateFinalized},
		PackageStateAssembling: {PackageStateAssembling, PackageStateFinalized},
		PackageStateFinalized:  {}, // 交付後唯讀
	}

	for _, state := range transitions[s] {
		if state == target {
			return true
		}
	}
	return false
}

// TravelPackage 旅遊套裝：機票、住宿、行程、附加服務，依加入順序保存
type TravelPackage struct {
	tier       Tier
	state      PackageState
	tickets    []*TransportTicket
	lodgings   []*Lodging
	excursions []*Excursion
	services   []AncillaryService
}

func NewTravelPackage(tier Tier) *TravelPackage {
	return &TravelPackage{tier: tier, state: PackageStateEmpty}
}

func (p *TravelPackage) Tier() Tier          { return p.tier }
func (p *TravelPackage) State() PackageState { return p.state }

func (p *TravelPackage) Tickets() []*TransportTicket {
	return append([]*TransportTicket(nil), p.tickets...)
}

func (p *TravelPackage) Lodgings() []*Lodging {
	return append([]*Lodging(nil), p.lodgings...)
}

func (p *TravelPackage) Excursions() []*Excursion {
	return append([]*Excursion(nil), p.excursions...)
}

func (p *TravelPackage) Services() []AncillaryService {
	return append([]AncillaryService(nil), p.services...)
}

func (p *TravelPackage) AddTicket(ticket *TransportTicket) error {
	if err := p.transition(PackageStateAssembling); err != nil {
		return err
	}
	p.tickets = append(p.tickets, ticket)
	return nil
}

func (p *TravelPackage) AddLodging(lodging *Lodging) error {
	if err := p.transition(PackageStateAssembling); err != nil {
		return err
	}
	p.lodgings = append(p.lodgings, lodging)
	return nil
}

func (p *TravelPackage) AddExcursion(excursion *Excursion) error {
	if err := p.transition(PackageStateAssembling); err != nil {
		return err
	}
	p.excursions = append(p.excursions, excursion)
	return nil
}

func (p *TravelPackage) AddService(service AncillaryService) error {
	if err := p.transition(PackageStateAssembling); err != nil {
		return err
	}
	p.services = append(p.services, service)
	return nil
}

func (p *TravelPackage) finalize() {
	p.state = PackageStateFinalized
}

func (p *TravelPackage) transition(target PackageState) error {
	if !p.state.CanTransitionTo(target) {
		return apperrors.ErrPackageFinalized
	}
	p.state = target
	return nil
}

// TotalPrice 每次呼叫重新加總，不做快取
func (p *TravelPackage) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, ticket := range p.tickets {
		total = total.Add(ticket.Price)
	}
	for _, lodging := range p.lodgings {
		total = total.Add(lodging.Cost())
	}
	for _, excursion := range p.excursions {
		total = total.Add(excursion.Price)
	}
	for _, service := range p.services {
		total = total.Add(service.Price())
	}
	return total
}

// Describe 機票與住宿區塊固定輸出，行程與附加服務只在非空時輸出
func (p *TravelPackage) Describe() string {
	var sb strings.Builder
	sb.WriteString("Ваше путешествие:\n\n")

	sb.WriteString("Билеты:\n")
	for _, ticket := range p.tickets {
		writeItem(&sb, ticket.Describe())
	}

	sb.WriteString("\nОтель:\n")
	for _, lodging := range p.lodgings {
		writeItem(&sb, lodging.Describe())
	}

	if len(p.excursions) > 0 {
		sb.WriteString("\nТуры:\n")
		for _, excursion := range p.excursions {
			writeItem(&sb, excursion.Describe())
		}
	}

	if len(p.services) > 0 {
		sb.WriteString("\nПолезные услуги:\n")
		for _, service := range p.services {
			writeItem(&sb, service.Describe())
		}
	}

	sb.WriteString("\nОбщая стоимость: " + formatPrice(p.TotalPrice()))
	return sb.String()
}

func writeItem(sb *strings.Builder, line string) {
	sb.WriteString("- ")
	sb.WriteString(line)
	sb.WriteString("\n")
}
