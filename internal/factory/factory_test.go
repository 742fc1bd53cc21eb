package factory_test

import (
	"math/rand/v2"
	"testing"

	"go-gin-travel-agency/internal/factory"
	"go-gin-travel-agency/internal/model"
	apperrors "go-gin-travel-agency/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samples = 2000

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNew(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f, err := factory.New(model.TierPremium, seeded())
		require.NoError(t, err)
		assert.Equal(t, model.TierPremium, f.Tier())
	})

	t.Run("Success - nil rand falls back to global source", func(t *testing.T) {
		f, err := factory.New(model.TierBasic, nil)
		require.NoError(t, err)
		legs := f.NumberOfLegs()
		assert.GreaterOrEqual(t, legs, 2)
		assert.LessOrEqual(t, legs, 5)
	})

	t.Run("Failed - unknown tier", func(t *testing.T) {
		f, err := factory.New(model.Tier("gold"), seeded())
		assert.Nil(t, f)
		assert.ErrorIs(t, err, apperrors.ErrUnknownTier)
	})
}

func TestFactory_CreateComponents(t *testing.T) {
	basic := factory.NewBasic(seeded())
	premium := factory.NewPremium(seeded())

	assert.Equal(t, model.ClassEconomy, basic.CreateTicket().Class)
	assert.Equal(t, model.ClassBusiness, premium.CreateTicket().Class)
	assert.Equal(t, model.TierBasic, basic.CreateLodging().Tier)
	assert.Equal(t, model.TierPremium, premium.CreateLodging().Tier)
	assert.Equal(t, model.TierBasic, basic.CreateExcursion().Tier)
	assert.Equal(t, model.TierPremium, premium.CreateExcursion().Tier)

	// 每次呼叫都是新的實體
	assert.NotSame(t, basic.CreateTicket(), basic.CreateTicket())
}

func TestFactory_NumberOfLegs(t *testing.T) {
	tests := []struct {
		name     string
		factory  *factory.Factory
		min, max int
	}{
		{"basic", factory.NewBasic(seeded()), 2, 5},
		{"premium", factory.NewPremium(seeded()), 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[int]bool{}
			for i := 0; i < samples; i++ {
				legs := tt.factory.NumberOfLegs()
				require.GreaterOrEqual(t, legs, tt.min)
				require.LessOrEqual(t, legs, tt.max)
				seen[legs] = true
			}
			// 兩端點都抽得到
			assert.True(t, seen[tt.min])
			assert.True(t, seen[tt.max])
		})
	}
}

func TestFactory_Fare(t *testing.T) {
	two := decimal.NewFromInt(2)
	tests := []struct {
		name     string
		factory  *factory.Factory
		min, max int64
	}{
		{"basic", factory.NewBasic(seeded()), 20000, 60000},
		{"premium", factory.NewPremium(seeded()), 100000, 200000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lower := decimal.NewFromInt(tt.min)
			upper := decimal.NewFromInt(tt.max)
			for i := 0; i < samples; i++ {
				fare := tt.factory.Fare()
				require.True(t, fare.GreaterThanOrEqual(lower), "fare %s below %s", fare, lower)
				require.True(t, fare.LessThan(upper), "fare %s not below %s", fare, upper)
				require.True(t, fare.Mod(two).IsZero(), "fare %s must be even", fare)
			}
		})
	}
}

func TestFactory_DepartureTime(t *testing.T) {
	f := factory.NewBasic(seeded())
	for i := 0; i < samples; i++ {
		tod := f.DepartureTime()
		require.GreaterOrEqual(t, tod.Hour, 0)
		require.Less(t, tod.Hour, 24)
		require.GreaterOrEqual(t, tod.Minute, 0)
		require.Less(t, tod.Minute, 60)
	}
}

func TestFactory_Deterministic(t *testing.T) {
	a := factory.NewPremium(seeded())
	b := factory.NewPremium(seeded())
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.NumberOfLegs(), b.NumberOfLegs())
		assert.True(t, a.Fare().Equal(b.Fare()))
		assert.Equal(t, a.DepartureTime(), b.DepartureTime())
	}
}
