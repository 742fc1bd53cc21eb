package model

import (
	"fmt"

	apperrors "go-gin-travel-agency/pkg/app_errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ServiceKind 附加服務種類
type ServiceKind string

const (
	ServiceConnectivity ServiceKind = "connectivity_pass"
	ServiceTransit      ServiceKind = "transit_pass"
	ServiceGuideBook    ServiceKind = "guide_book"
)

// AncillaryService 附加服務。實作僅限本檔案內的三種
type AncillaryService interface {
	Kind() ServiceKind
	Describe() string
	Price() decimal.Decimal

	ancillary()
}

type connectivityTariff struct {
	data  string
	price decimal.Decimal
}

// 以等級名稱為 key 的網卡方案
var connectivityTariffs = map[string]connectivityTariff{
	string(TierBasic):   {data: "10GB", price: decimal.NewFromInt(700)},
	string(TierPremium): {data: "50GB", price: decimal.NewFromInt(2000)},
}

// ConnectivityPass 當地網卡
type ConnectivityPass struct {
	City   string
	Tariff string
	plan   connectivityTariff
}

// NewConnectivityPass tariff 不在方案表內時回傳 ErrUnknownTariff
func NewConnectivityPass(city, tariff string) (*ConnectivityPass, error) {
	plan, ok := connectivityTariffs[tariff]
	if !ok {
		return nil, fmt.Errorf("connectivity pass %q: %w", tariff, apperrors.ErrUnknownTariff)
	}
	return &ConnectivityPass{City: city, Tariff: tariff, plan: plan}, nil
}

func (p *ConnectivityPass) Kind() ServiceKind { return ServiceConnectivity }

func (p *ConnectivityPass) Price() decimal.Decimal { return p.plan.price }

func (p *ConnectivityPass) Describe() string {
	return fmt.Sprintf("SIM-карта (%s): %s интернета (цена: %s)", p.City, p.plan.data, formatPrice(p.Price()))
}

func (p *ConnectivityPass) ancillary() {}

const transitLongThresholdDays = 7

// 以票券天數為 key
var transitPrices = map[int]decimal.Decimal{
	30: decimal.NewFromInt(2000),
	7:  decimal.NewFromInt(800),
}

// TransitPass 市區交通票，旅程超過 7 天時改用 30 天票
type TransitPass struct {
	City         string
	DurationDays int
}

func NewTransitPass(city string, durationDays int) *TransitPass {
	return &TransitPass{City: city, DurationDays: durationDays}
}

// PassDays 實際售出的票券天數
func (p *TransitPass) PassDays() int {
	if p.DurationDays > transitLongThresholdDays {
		return 30
	}
	return 7
}

func (p *TransitPass) Kind() ServiceKind { return ServiceTransit }

func (p *TransitPass) Price() decimal.Decimal { return transitPrices[p.PassDays()] }

func (p *TransitPass) Describe() string {
	return fmt.Sprintf("Проездной на городской транспорт (%s) на %d дней (цена: %s)", p.City, p.PassDays(), formatPrice(p.Price()))
}

func (p *TransitPass) ancillary() {}

// DefaultGuideLanguage 目錄的主要語系
var DefaultGuideLanguage = language.Russian

var guideBookPrice = decimal.NewFromInt(800)

// GuideBook 城市導覽書，價格與語言無關
type GuideBook struct {
	City     string
	Language language.Tag
}

// NewGuideBook lang 為 language.Und 時使用 DefaultGuideLanguage
func NewGuideBook(city string, lang language.Tag) *GuideBook {
	if lang == language.Und {
		lang = DefaultGuideLanguage
	}
	return &GuideBook{City: city, Language: lang}
}

func (g *GuideBook) Kind() ServiceKind { return ServiceGuideBook }

func (g *GuideBook) Price() decimal.Decimal { return guideBookPrice }

// LanguageName 以目錄語系顯示的語言名稱
func (g *GuideBook) LanguageName() string {
	return display.Languages(DefaultGuideLanguage).Name(g.Language)
}

func (g *GuideBook) Describe() string {
	return fmt.Sprintf("Путеводитель по городу %s, язык %s (цена: %s)", g.City, g.LanguageName(), formatPrice(g.Price()))
}

func (g *GuideBook) ancillary() {}
