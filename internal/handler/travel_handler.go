package handler

import (
	"errors"
	"net/http"

	"go-gin-travel-agency/internal/model"
	"go-gin-travel-agency/internal/payment"
	"go-gin-travel-agency/internal/service"
	apperrors "go-gin-travel-agency/pkg/app_errors"
	"go-gin-travel-agency/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TravelHandler struct {
	service service.TravelService
}

func NewTravelHandler(service service.TravelService) *TravelHandler {
	return &TravelHandler{service: service}
}

func (h *TravelHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("cities", h.ListCities)
		router.POST("searches", h.Search)
		router.POST("packages", h.AssemblePackage)
		router.POST("checkout", h.Checkout)
	}
}

// SearchRequest 搜尋請求；出發城市與日期由 service 驗證
type SearchRequest struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Tier        string `json:"tier" binding:"required"`
}

// SelectionRequest 從搜尋結果中挑選元件
type SelectionRequest struct {
	SearchID         string `json:"search_id" binding:"required"`
	TicketIndex      *int   `json:"ticket_index" binding:"required"`
	LodgingIndex     *int   `json:"lodging_index" binding:"required"`
	ExcursionIndexes []int  `json:"excursion_indexes"`
	ServiceIndexes   []int  `json:"service_indexes"`
}

// CheckoutRequest 結帳請求
type CheckoutRequest struct {
	SelectionRequest
	Payment payment.Details `json:"payment"`
}

type OfferResponse struct {
	Index       int             `json:"index"`
	Kind        string          `json:"kind,omitempty"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type SearchResponse struct {
	SearchID     string          `json:"search_id"`
	Tier         string          `json:"tier"`
	Season       string          `json:"season"`
	DurationDays int             `json:"duration_days"`
	Tickets      []OfferResponse `json:"tickets"`
	Lodgings     []OfferResponse `json:"lodgings"`
	Excursions   []OfferResponse `json:"excursions"`
	Services     []OfferResponse `json:"services"`
}

type PackageResponse struct {
	Tier        string          `json:"tier"`
	State       string          `json:"state"`
	Description string          `json:"description"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type CheckoutResponse struct {
	Paid    bool            `json:"paid"`
	Method  string          `json:"method"`
	Amount  decimal.Decimal `json:"amount"`
	Package PackageResponse `json:"package"`
}

func (h *TravelHandler) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.service.Cities(c)})
}

func (h *TravelHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	startDate, ok := ParseDate(c, "start_date", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := ParseDate(c, "end_date", req.EndDate)
	if !ok {
		return
	}
	tier, err := model.ParseTier(req.Tier)
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}

	offers, err := h.service.Search(c, model.SearchQuery{
		Departure:   req.Departure,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Tier:        tier,
	})
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}

	c.JSON(http.StatusCreated, newSearchResponse(offers))
}

func (h *TravelHandler) AssemblePackage(c *gin.Context) {
	var req SelectionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	selection, ok := h.toSelection(c, req)
	if !ok {
		return
	}

	pkg, err := h.service.Assemble(c, selection)
	if err != nil {
		h.handleError(c, err, "AssemblePackage")
		return
	}

	c.JSON(http.StatusCreated, newPackageResponse(pkg))
}

func (h *TravelHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	selection, ok := h.toSelection(c, req.SelectionRequest)
	if !ok {
		return
	}
	strategy, err := payment.NewStrategy(req.Payment)
	if err != nil {
		h.handleError(c, err, "Checkout")
		return
	}

	result, err := h.service.Checkout(c, selection, strategy)
	if err != nil {
		h.handleError(c, err, "Checkout")
		return
	}

	resp := CheckoutResponse{
		Paid:    result.Paid,
		Method:  string(result.Method),
		Amount:  result.Amount,
		Package: newPackageResponse(result.Package),
	}
	if !result.Paid {
		logger.WithComponent("handler").Info("Payment declined", zap.String("method", resp.Method))
		c.JSON(http.StatusPaymentRequired, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Helper functions

func (h *TravelHandler) toSelection(c *gin.Context, req SelectionRequest) (model.PackageSelection, bool) {
	searchID, err := uuid.Parse(req.SearchID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search id"})
		return model.PackageSelection{}, false
	}
	return model.PackageSelection{
		SearchID:         searchID,
		TicketIndex:      *req.TicketIndex,
		LodgingIndex:     *req.LodgingIndex,
		ExcursionIndexes: req.ExcursionIndexes,
		ServiceIndexes:   req.ServiceIndexes,
	}, true
}

func (h *TravelHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrUnknownTier), errors.Is(err, apperrors.ErrUnknownPaymentMethod):
		log.Warn("Unknown option")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCityNotFound):
		log.Warn("City not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
	case errors.Is(err, apperrors.ErrSearchNotFound):
		log.Warn("Search not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Search not found or expired"})
	case errors.Is(err, apperrors.ErrOfferNotFound):
		log.Warn("Offer not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
	case errors.Is(err, apperrors.ErrLookup):
		log.Warn("Lookup failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPackageFinalized):
		log.Warn("Package finalized")
		c.JSON(http.StatusConflict, gin.H{"error": "Package already finalized"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func newSearchResponse(offers *model.Offers) SearchResponse {
	resp := SearchResponse{
		SearchID:     offers.SearchID.String(),
		Tier:         string(offers.Query.Tier),
		Season:       string(model.SeasonOf(offers.Query.StartDate)),
		DurationDays: offers.Query.DurationDays(),
		Tickets:      make([]OfferResponse, 0, len(offers.Tickets)),
		Lodgings:     make([]OfferResponse, 0, len(offers.Lodgings)),
		Excursions:   make([]OfferResponse, 0, len(offers.Excursions)),
		Services:     make([]OfferResponse, 0, len(offers.Services)),
	}
	for i, t := range offers.Tickets {
		resp.Tickets = append(resp.Tickets, OfferResponse{Index: i, Kind: string(t.Class), Description: t.Describe(), Price: t.Price})
	}
	for i, l := range offers.Lodgings {
		resp.Lodgings = append(resp.Lodgings, OfferResponse{Index: i, Description: l.Describe(), Price: l.Cost()})
	}
	for i, e := range offers.Excursions {
		resp.Excursions = append(resp.Excursions, OfferResponse{Index: i, Description: e.Describe(), Price: e.Price})
	}
	for i, s := range offers.Services {
		resp.Services = append(resp.Services, OfferResponse{Index: i, Kind: string(s.Kind()), Description: s.Describe(), Price: s.Price()})
	}
	return resp
}

func newPackageResponse(pkg *model.TravelPackage) PackageResponse {
	return PackageResponse{
		Tier:        string(pkg.Tier()),
		State:       string(pkg.State()),
		Description: pkg.Describe(),
		TotalPrice:  pkg.TotalPrice(),
	}
}
