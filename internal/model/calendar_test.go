package model_test

import (
	"testing"
	"time"

	"go-gin-travel-agency/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 7, model.DaysBetween(date(2024, 6, 1), date(2024, 6, 8)))
	assert.Equal(t, 0, model.DaysBetween(date(2024, 6, 1), date(2024, 6, 1)))
	assert.Equal(t, -3, model.DaysBetween(date(2024, 6, 4), date(2024, 6, 1)))
	// 跨月、閏年
	assert.Equal(t, 2, model.DaysBetween(date(2024, 2, 28), date(2024, 3, 1)))

	t.Run("ignores time of day", func(t *testing.T) {
		from := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
		to := time.Date(2024, 6, 2, 0, 15, 0, 0, time.UTC)
		assert.Equal(t, 1, model.DaysBetween(from, to))
	})
}

func TestTimeOfDay_Text(t *testing.T) {
	assert.Equal(t, "7:05", model.TimeOfDay{Hour: 7, Minute: 5}.String())

	var parsed model.TimeOfDay
	require.NoError(t, parsed.UnmarshalText([]byte("23:59")))
	assert.Equal(t, model.TimeOfDay{Hour: 23, Minute: 59}, parsed)

	assert.Error(t, parsed.UnmarshalText([]byte("24:00")))
	assert.Error(t, parsed.UnmarshalText([]byte("noon")))
}
