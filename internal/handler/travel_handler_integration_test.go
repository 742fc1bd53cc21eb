package handler_test

import (
	"math/rand/v2"
	"net/http"
	"testing"
	"time"

	"go-gin-travel-agency/internal/cache"
	"go-gin-travel-agency/internal/catalog"
	"go-gin-travel-agency/internal/handler"
	"go-gin-travel-agency/internal/payment"
	"go-gin-travel-agency/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	resolver := catalog.NewResolver(catalog.Default(), rand.New(rand.NewPCG(1, 2)))
	travelService := service.NewTravelService(resolver, cache.NewRedisOfferStore(rdb, time.Minute))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewTravelHandler(travelService).RegisterRoutes(router)
	return router
}

// TestTravelHandler_Integration_EndToEnd 測試完整流程：搜尋 → 組裝 → 結帳
func TestTravelHandler_Integration_EndToEnd(t *testing.T) {
	router := setupIntegrationRouter(t)

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day()+30, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	// 1. 搜尋
	w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/searches", handler.SearchRequest{
		Departure:   "Москва",
		Destination: "Вологда",
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Tier:        "basic",
	}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	search := decode[handler.SearchResponse](t, w)
	require.NotEmpty(t, search.Tickets)
	require.Len(t, search.Lodgings, 1)
	require.Len(t, search.Services, 4)
	assert.Equal(t, "21000", search.Lodgings[0].Price.String())

	selection := handler.SelectionRequest{
		SearchID:         search.SearchID,
		TicketIndex:      intPtr(0),
		LodgingIndex:     intPtr(0),
		ExcursionIndexes: []int{0},
		ServiceIndexes:   []int{1},
	}
	expected := search.Tickets[0].Price.
		Add(search.Lodgings[0].Price).
		Add(search.Excursions[0].Price).
		Add(search.Services[1].Price)

	// 2. 組裝，可重複執行
	for i := 0; i < 2; i++ {
		w = serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/packages", selection))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		pkg := decode[handler.PackageResponse](t, w)
		assert.Equal(t, expected.String(), pkg.TotalPrice.String())
		assert.Contains(t, pkg.Description, "Спасская")
		assert.Contains(t, pkg.Description, "Туры:")
		assert.Contains(t, pkg.Description, "Полезные услуги:")
	}

	// 3. 付款失敗不會清除搜尋結果
	w = serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/checkout", handler.CheckoutRequest{
		SelectionRequest: selection,
		Payment:          payment.Details{Method: payment.MethodCreditCard, CardNumber: "123", CardHolder: "Иван", Expiry: "12/25", CVV: "123"},
	}))
	require.Equal(t, http.StatusPaymentRequired, w.Code, w.Body.String())

	// 4. 付款成功
	w = serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/checkout", handler.CheckoutRequest{
		SelectionRequest: selection,
		Payment:          payment.Details{Method: payment.MethodBankTransfer, AccountNumber: "40817810099910004312", BankName: "Сбербанк"},
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	checkout := decode[handler.CheckoutResponse](t, w)
	assert.True(t, checkout.Paid)
	assert.Equal(t, expected.String(), checkout.Amount.String())

	// 5. 結帳後搜尋結果已刪除
	w = serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/packages", selection))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTravelHandler_Integration_UnknownCity(t *testing.T) {
	router := setupIntegrationRouter(t)

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day()+30, 0, 0, 0, 0, time.UTC)
	w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/searches", handler.SearchRequest{
		Departure:   "Москва",
		Destination: "Париж",
		StartDate:   start.Format("2006-01-02"),
		EndDate:     start.AddDate(0, 0, 3).Format("2006-01-02"),
		Tier:        "premium",
	}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
