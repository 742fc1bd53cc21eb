package catalog_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"go-gin-travel-agency/internal/catalog"
	"go-gin-travel-agency/internal/model"
	apperrors "go-gin-travel-agency/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newResolver() *catalog.Resolver {
	return catalog.NewResolver(catalog.Default(), rand.New(rand.NewPCG(1, 2)))
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, name(item))
	}
	return out
}

func TestResolver_Cities(t *testing.T) {
	r := newResolver()
	cities := r.Cities()
	assert.Equal(t, catalog.Default().Cities, cities)

	// 回傳副本
	cities[0] = "Париж"
	assert.NotEqual(t, "Париж", r.Cities()[0])

	assert.Equal(t, catalog.Default().GuideLanguages, r.GuideLanguages())
	assert.Equal(t, model.SeasonWinter, r.SeasonOf(date(2024, 12, 31)))
}

func TestResolver_AvailableLodging(t *testing.T) {
	r := newResolver()

	t.Run("Success - basic in Вологда", func(t *testing.T) {
		lodgings, err := r.AvailableLodging("Вологда", model.TierBasic, date(2024, 6, 1), date(2024, 6, 8))
		require.NoError(t, err)
		require.Len(t, lodgings, 1)

		l := lodgings[0]
		assert.Equal(t, "Спасская", l.Name)
		assert.Equal(t, "Вологда", l.City)
		assert.Equal(t, model.TierBasic, l.Tier)
		assert.Equal(t, 7, l.Nights())
		assert.Equal(t, "21000", l.Cost().String())
	})

	t.Run("Success - premium only sees premium lodging", func(t *testing.T) {
		lodgings, err := r.AvailableLodging("Москва", model.TierPremium, date(2024, 6, 1), date(2024, 6, 3))
		require.NoError(t, err)
		assert.Equal(t, []string{"Ritz-Carlton", "Метрополь"}, names(lodgings, func(l *model.Lodging) string { return l.Name }))
	})

	t.Run("Failed - unknown city", func(t *testing.T) {
		lodgings, err := r.AvailableLodging("Париж", model.TierBasic, date(2024, 6, 1), date(2024, 6, 8))
		assert.Nil(t, lodgings)
		assert.ErrorIs(t, err, apperrors.ErrCityNotFound)
	})

	t.Run("Failed - unknown tier", func(t *testing.T) {
		_, err := r.AvailableLodging("Вологда", model.Tier("gold"), date(2024, 6, 1), date(2024, 6, 8))
		assert.ErrorIs(t, err, apperrors.ErrUnknownTier)
	})
}

func TestResolver_AvailableExcursions(t *testing.T) {
	r := newResolver()
	excursionNames := func(xs []*model.Excursion) []string {
		return names(xs, func(e *model.Excursion) string { return e.Name })
	}

	t.Run("Success - basic in winter", func(t *testing.T) {
		excursions, err := r.AvailableExcursions("Великий Устюг", model.TierBasic, date(2024, 1, 10))
		require.NoError(t, err)
		assert.Equal(t, []string{"Резиденция Деда Мороза", "Обзорная экскурсия"}, excursionNames(excursions))
	})

	t.Run("Success - basic in summer drops winter excursion", func(t *testing.T) {
		excursions, err := r.AvailableExcursions("Великий Устюг", model.TierBasic, date(2024, 7, 10))
		require.NoError(t, err)
		assert.Equal(t, []string{"Обзорная экскурсия"}, excursionNames(excursions))
	})

	t.Run("Success - basic does not see premium", func(t *testing.T) {
		excursions, err := r.AvailableExcursions("Вологда", model.TierBasic, date(2024, 6, 1))
		require.NoError(t, err)
		assert.Equal(t, []string{"Вологодский кремль"}, excursionNames(excursions))
		for _, e := range excursions {
			assert.Equal(t, model.TierBasic, e.Tier)
		}
	})

	t.Run("Success - premium sees every tier", func(t *testing.T) {
		excursions, err := r.AvailableExcursions("Вологда", model.TierPremium, date(2024, 6, 1))
		require.NoError(t, err)
		assert.Equal(t, []string{"Вологодский кремль", "Музей кружева"}, excursionNames(excursions))
		for _, e := range excursions {
			assert.Equal(t, model.TierPremium, e.Tier)
		}
	})

	t.Run("Success - premium is a superset of basic", func(t *testing.T) {
		for _, city := range r.Cities() {
			for month := time.January; month <= time.December; month++ {
				travel := date(2024, month, 15)
				basic, err := r.AvailableExcursions(city, model.TierBasic, travel)
				require.NoError(t, err)
				premium, err := r.AvailableExcursions(city, model.TierPremium, travel)
				require.NoError(t, err)
				assert.Subset(t, excursionNames(premium), excursionNames(basic), "%s in %s", city, month)
			}
		}
	})

	t.Run("Failed - unknown city", func(t *testing.T) {
		_, err := r.AvailableExcursions("Париж", model.TierBasic, date(2024, 6, 1))
		assert.ErrorIs(t, err, apperrors.ErrCityNotFound)
	})
}

func TestResolver_AvailableServices(t *testing.T) {
	r := newResolver()

	t.Run("Success - basic short trip", func(t *testing.T) {
		services, err := r.AvailableServices("Кострома", 5, model.TierBasic)
		require.NoError(t, err)
		require.Len(t, services, 4)

		assert.Equal(t, model.ServiceConnectivity, services[0].Kind())
		assert.Equal(t, "700", services[0].Price().String())
		assert.Equal(t, model.ServiceTransit, services[1].Kind())
		assert.Equal(t, "800", services[1].Price().String())
		assert.Equal(t, model.ServiceGuideBook, services[2].Kind())
		assert.Contains(t, services[2].Describe(), "русский")
		assert.Equal(t, model.ServiceGuideBook, services[3].Kind())
		assert.Contains(t, services[3].Describe(), "английский")
	})

	t.Run("Success - premium long trip", func(t *testing.T) {
		services, err := r.AvailableServices("Кострома", 10, model.TierPremium)
		require.NoError(t, err)
		assert.Equal(t, "2000", services[0].Price().String())
		assert.Equal(t, "2000", services[1].Price().String())
	})

	t.Run("Failed - unknown tier", func(t *testing.T) {
		_, err := r.AvailableServices("Кострома", 5, model.Tier("gold"))
		assert.ErrorIs(t, err, apperrors.ErrUnknownTariff)
	})
}

func TestResolver_GenerateTickets(t *testing.T) {
	r := newResolver()

	tests := []struct {
		tier     model.Tier
		class    model.TravelClass
		min, max int
	}{
		{model.TierBasic, model.ClassEconomy, 2, 5},
		{model.TierPremium, model.ClassBusiness, 1, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				tickets, err := r.GenerateTickets("Москва", "Вологда", date(2024, 6, 1), date(2024, 6, 8), tt.tier)
				require.NoError(t, err)
				require.GreaterOrEqual(t, len(tickets), tt.min)
				require.LessOrEqual(t, len(tickets), tt.max)

				for _, ticket := range tickets {
					assert.Equal(t, tt.class, ticket.Class)
					assert.Equal(t, "Москва", ticket.Departure)
					assert.Equal(t, "Вологда", ticket.Destination)
					assert.Equal(t, date(2024, 6, 1), ticket.DepartDateOutbound)
					assert.Equal(t, date(2024, 6, 8), ticket.DepartDateReturn)
					assert.True(t, ticket.Price.IsPositive())
				}
			}
		})
	}

	t.Run("Failed - unknown tier", func(t *testing.T) {
		_, err := r.GenerateTickets("Москва", "Вологда", date(2024, 6, 1), date(2024, 6, 8), model.Tier("gold"))
		assert.ErrorIs(t, err, apperrors.ErrUnknownTier)
	})
}

func TestResolver_CreatePackageBuilder(t *testing.T) {
	r := newResolver()

	builder, err := r.CreatePackageBuilder(model.TierPremium)
	require.NoError(t, err)
	assert.Equal(t, model.TierPremium, builder.Tier())

	_, err = r.CreatePackageBuilder(model.Tier("gold"))
	assert.ErrorIs(t, err, apperrors.ErrUnknownTier)
}
