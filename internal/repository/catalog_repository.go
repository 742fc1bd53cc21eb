package repository

import (
	"context"
	"fmt"

	"go-gin-travel-agency/internal/catalog"
	"go-gin-travel-agency/internal/model"
	"go-gin-travel-agency/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type CatalogRepository interface {
	// 讀取完整目錄，啟動時呼叫一次
	Load(ctx context.Context) (*catalog.Catalog, error)
}

type CatalogRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) CatalogRepository {
	return &CatalogRepositoryImpl{
		pool: pool,
	}
}

func (r *CatalogRepositoryImpl) Load(ctx context.Context) (*catalog.Catalog, error) {
	c := &catalog.Catalog{
		Lodgings:   make(map[string][]catalog.LodgingOffer),
		Excursions: make(map[string][]catalog.ExcursionOffer),
	}

	cities, err := r.listCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	c.Cities = cities

	if err := r.loadLodgings(ctx, c); err != nil {
		return nil, fmt.Errorf("load lodgings: %w", err)
	}
	if err := r.loadExcursions(ctx, c); err != nil {
		return nil, fmt.Errorf("load excursions: %w", err)
	}

	languages, err := r.listGuideLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guide languages: %w", err)
	}
	if len(languages) == 0 {
		languages = []language.Tag{model.DefaultGuideLanguage}
	}
	c.GuideLanguages = languages

	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger.WithComponent("repository").Info("catalog loaded",
		zap.Int("cities", len(c.Cities)),
		zap.Int("lodging_cities", len(c.Lodgings)),
		zap.Int("excursion_cities", len(c.Excursions)),
	)
	return c, nil
}

func (r *CatalogRepositoryImpl) listCities(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM catalog_cities
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (r *CatalogRepositoryImpl) loadLodgings(ctx context.Context, c *catalog.Catalog) error {
	query := `
		SELECT city, name, tier, price_per_night, rating, star_class
		FROM catalog_lodgings
		ORDER BY city, position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			city  string
			offer catalog.LodgingOffer
			price int64
		)
		err := rows.Scan(
			&city,
			&offer.Name,
			&offer.Tier,
			&price,
			&offer.Rating,
			&offer.StarClass,
		)
		if err != nil {
			return err
		}
		offer.PricePerNight = decimal.NewFromInt(price)
		c.Lodgings[city] = append(c.Lodgings[city], offer)
	}

	return rows.Err()
}

func (r *CatalogRepositoryImpl) loadExcursions(ctx context.Context, c *catalog.Catalog) error {
	query := `
		SELECT city, name, description, price, season, tier
		FROM catalog_excursions
		ORDER BY city, position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			city  string
			offer catalog.ExcursionOffer
			price int64
		)
		err := rows.Scan(
			&city,
			&offer.Name,
			&offer.Description,
			&price,
			&offer.Season,
			&offer.Tier,
		)
		if err != nil {
			return err
		}
		offer.Price = decimal.NewFromInt(price)
		c.Excursions[city] = append(c.Excursions[city], offer)
	}

	return rows.Err()
}

func (r *CatalogRepositoryImpl) listGuideLanguages(ctx context.Context) ([]language.Tag, error) {
	query := `
		SELECT tag
		FROM catalog_guide_languages
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	tags, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	languages := make([]language.Tag, 0, len(tags))
	for _, tag := range tags {
		lang, err := language.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("guide language %q: %w", tag, err)
		}
		languages = append(languages, lang)
	}
	return languages, nil
}
