package catalog

import (
	"fmt"
	"os"

	"go-gin-travel-agency/internal/model"
	apperrors "go-gin-travel-agency/pkg/app_errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LodgingOffer 目錄中的住宿方案
type LodgingOffer struct {
	Name          string          `yaml:"name"`
	Tier          model.Tier      `yaml:"tier"`
	PricePerNight decimal.Decimal `yaml:"price_per_night"`
	Rating        float64         `yaml:"rating"`
	StarClass     int             `yaml:"star_class"`
}

// ExcursionOffer 目錄中的行程方案
type ExcursionOffer struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Price       decimal.Decimal `yaml:"price"`
	Season      model.Season    `yaml:"season"`
	Tier        model.Tier      `yaml:"tier"`
}

// Catalog 目的地目錄。交給 Resolver 之後視為唯讀。
// 城市名稱精確比對，大小寫與變音符號皆有區別。
type Catalog struct {
	Cities         []string                    `yaml:"cities"`
	Lodgings       map[string][]LodgingOffer   `yaml:"lodgings"`
	Excursions     map[string][]ExcursionOffer `yaml:"excursions"`
	GuideLanguages []language.Tag              `yaml:"guide_languages"`
}

// LoadFile 讀取 YAML 目錄檔
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if len(c.GuideLanguages) == 0 {
		c.GuideLanguages = []language.Tag{model.DefaultGuideLanguage}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// HasCity 城市是否在目錄中
func (c *Catalog) HasCity(city string) bool {
	for _, name := range c.Cities {
		if name == city {
			return true
		}
	}
	return false
}

// Validate 檢查每個方案的等級、季節、星級與評分
func (c *Catalog) Validate() error {
	if len(c.Cities) == 0 {
		return fmt.Errorf("catalog has no cities: %w", apperrors.ErrInvalidInput)
	}
	for city, offers := range c.Lodgings {
		if !c.HasCity(city) {
			return fmt.Errorf("lodging city %q not listed: %w", city, apperrors.ErrInvalidInput)
		}
		for _, o := range offers {
			if !o.Tier.IsValid() {
				return fmt.Errorf("lodging %q: tier %q: %w", o.Name, o.Tier, apperrors.ErrInvalidInput)
			}
			if o.StarClass < 1 || o.StarClass > 5 {
				return fmt.Errorf("lodging %q: star class %d: %w", o.Name, o.StarClass, apperrors.ErrInvalidInput)
			}
			if o.Rating < 0 || o.Rating > 5 {
				return fmt.Errorf("lodging %q: rating %.1f: %w", o.Name, o.Rating, apperrors.ErrInvalidInput)
			}
		}
	}
	for city, offers := range c.Excursions {
		if !c.HasCity(city) {
			return fmt.Errorf("excursion city %q not listed: %w", city, apperrors.ErrInvalidInput)
		}
		for _, o := range offers {
			if !o.Tier.IsValid() {
				return fmt.Errorf("excursion %q: tier %q: %w", o.Name, o.Tier, apperrors.ErrInvalidInput)
			}
			if !o.Season.IsValid() {
				return fmt.Errorf("excursion %q: season %q: %w", o.Name, o.Season, apperrors.ErrInvalidInput)
			}
		}
	}
	return nil
}
