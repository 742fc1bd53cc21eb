package factory

import (
	"math/rand/v2"

	"go-gin-travel-agency/internal/model"
	apperrors "go-gin-travel-agency/pkg/app_errors"

	"github.com/shopspring/decimal"
)

// Rand 亂數來源；*rand.Rand 可直接注入，測試時使用固定種子
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// GlobalRand 行程共用、可並行使用的亂數來源
func GlobalRand() Rand { return globalRand{} }

// span 閉區間 [min, max]
type span struct {
	min, max int
}

func (s span) draw(rnd Rand) int {
	return s.min + rnd.IntN(s.max-s.min+1)
}

type policy struct {
	class model.TravelClass
	legs  span
	// 單程票價，來回價格為兩倍
	oneWayFare span
}

// 票價為半開區間 [min, max)，所以 max 取 -1
var policies = map[model.Tier]policy{
	model.TierBasic: {
		class:      model.ClassEconomy,
		legs:       span{2, 5},
		oneWayFare: span{10000, 29999},
	},
	model.TierPremium: {
		class:      model.ClassBusiness,
		legs:       span{1, 3},
		oneWayFare: span{50000, 99999},
	},
}

// Factory 單一服務等級的元件工廠，實作 model.VariantFactory
type Factory struct {
	tier   model.Tier
	policy policy
	rnd    Rand
}

// New tier 無效時回傳 ErrUnknownTier；rnd 為 nil 時使用 GlobalRand
func New(tier model.Tier, rnd Rand) (*Factory, error) {
	p, ok := policies[tier]
	if !ok {
		return nil, apperrors.ErrUnknownTier
	}
	if rnd == nil {
		rnd = GlobalRand()
	}
	return &Factory{tier: tier, policy: p, rnd: rnd}, nil
}

func NewBasic(rnd Rand) *Factory {
	f, _ := New(model.TierBasic, rnd)
	return f
}

func NewPremium(rnd Rand) *Factory {
	f, _ := New(model.TierPremium, rnd)
	return f
}

func (f *Factory) Tier() model.Tier { return f.tier }

func (f *Factory) CreateTicket() *model.TransportTicket {
	return &model.TransportTicket{Class: f.policy.class}
}

func (f *Factory) CreateLodging() *model.Lodging {
	return &model.Lodging{Tier: f.tier}
}

func (f *Factory) CreateExcursion() *model.Excursion {
	return &model.Excursion{Tier: f.tier}
}

func (f *Factory) NumberOfLegs() int {
	return f.policy.legs.draw(f.rnd)
}

func (f *Factory) Fare() decimal.Decimal {
	return decimal.NewFromInt(int64(2 * f.policy.oneWayFare.draw(f.rnd)))
}

func (f *Factory) DepartureTime() model.TimeOfDay {
	return model.TimeOfDay{
		Hour:   f.rnd.IntN(24),
		Minute: f.rnd.IntN(60),
	}
}

var _ model.VariantFactory = (*Factory)(nil)
