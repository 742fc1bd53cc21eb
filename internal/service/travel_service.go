package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-gin-travel-agency/internal/cache"
	"go-gin-travel-agency/internal/catalog"
	"go-gin-travel-agency/internal/metrics"
	"go-gin-travel-agency/internal/model"
	"go-gin-travel-agency/internal/payment"
	apperrors "go-gin-travel-agency/pkg/app_errors"
	"go-gin-travel-agency/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TravelService interface {
	// 目錄中的城市
	Cities(ctx context.Context) []string
	// 搜尋：驗證條件、產生候選元件並暫存
	Search(ctx context.Context, query model.SearchQuery) (*model.Offers, error)
	// 組裝：依選擇結果產生旅遊套裝
	Assemble(ctx context.Context, selection model.PackageSelection) (*model.TravelPackage, error)
	// 結帳：組裝後以付款策略驗證總價
	Checkout(ctx context.Context, selection model.PackageSelection, strategy payment.Strategy) (*CheckoutResult, error)
}

type CheckoutResult struct {
	Package *model.TravelPackage
	Method  payment.Method
	Amount  decimal.Decimal
	Paid    bool
}

type TravelServiceImpl struct {
	resolver *catalog.Resolver
	store    cache.OfferStore
	now      func() time.Time
}

func NewTravelService(resolver *catalog.Resolver, store cache.OfferStore) TravelService {
	return &TravelServiceImpl{
		resolver: resolver,
		store:    store,
		now:      time.Now,
	}
}

func (s *TravelServiceImpl) Cities(ctx context.Context) []string {
	return s.resolver.Cities()
}

// validateQuery 輸入邊界的檢查；核心元件假設輸入已合法
func (s *TravelServiceImpl) validateQuery(query *model.SearchQuery) error {
	query.Departure = strings.TrimSpace(query.Departure)
	if query.Departure == "" {
		return apperrors.ErrEmptyDeparture
	}
	if !query.Tier.IsValid() {
		return apperrors.ErrUnknownTier
	}
	if model.DaysBetween(query.StartDate, query.EndDate) <= 0 {
		return apperrors.ErrInvalidDateRange
	}
	if model.DaysBetween(s.now(), query.StartDate) < 0 {
		return apperrors.ErrDateInPast
	}
	return nil
}

func (s *TravelServiceImpl) Search(ctx context.Context, query model.SearchQuery) (*model.Offers, error) {
	if err := s.validateQuery(&query); err != nil {
		return nil, err
	}

	tickets, err := s.resolver.GenerateTickets(query.Departure, query.Destination, query.StartDate, query.EndDate, query.Tier)
	if err != nil {
		return nil, err
	}

	session := &model.SearchSession{
		ID:        uuid.New(),
		Query:     query,
		Tickets:   tickets,
		CreatedAt: s.now().UTC(),
	}

	offers, err := s.resolve(session)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	metrics.SearchesTotal.WithLabelValues(string(query.Tier)).Inc()
	logger.WithComponent("service").Info("search created",
		zap.String("search_id", session.ID.String()),
		zap.String("destination", query.Destination),
		zap.String("tier", string(query.Tier)),
		zap.Int("tickets", len(offers.Tickets)),
		zap.Int("lodgings", len(offers.Lodgings)),
		zap.Int("excursions", len(offers.Excursions)),
	)

	return offers, nil
}

// resolve 機票取自暫存，住宿、行程與附加服務由目錄重算
func (s *TravelServiceImpl) resolve(session *model.SearchSession) (*model.Offers, error) {
	q := session.Query

	lodgings, err := s.resolver.AvailableLodging(q.Destination, q.Tier, q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	excursions, err := s.resolver.AvailableExcursions(q.Destination, q.Tier, q.StartDate)
	if err != nil {
		return nil, err
	}
	services, err := s.resolver.AvailableServices(q.Destination, q.DurationDays(), q.Tier)
	if err != nil {
		return nil, err
	}

	return &model.Offers{
		SearchID:   session.ID,
		Query:      q,
		Tickets:    session.Tickets,
		Lodgings:   lodgings,
		Excursions: excursions,
		Services:   services,
	}, nil
}

func (s *TravelServiceImpl) Assemble(ctx context.Context, selection model.PackageSelection) (*model.TravelPackage, error) {
	session, err := s.store.Get(ctx, selection.SearchID)
	if err != nil {
		return nil, err
	}
	offers, err := s.resolve(session)
	if err != nil {
		return nil, err
	}

	ticket, err := pick(offers.Tickets, selection.TicketIndex)
	if err != nil {
		return nil, fmt.Errorf("ticket: %w", err)
	}
	lodging, err := pick(offers.Lodgings, selection.LodgingIndex)
	if err != nil {
		return nil, fmt.Errorf("lodging: %w", err)
	}
	excursions, err := pickAll(offers.Excursions, selection.ExcursionIndexes)
	if err != nil {
		return nil, fmt.Errorf("excursion: %w", err)
	}
	services, err := pickAll(offers.Services, selection.ServiceIndexes)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	builder, err := s.resolver.CreatePackageBuilder(session.Query.Tier)
	if err != nil {
		return nil, err
	}
	if err := builder.AddTicket(ticket.Fields()); err != nil {
		return nil, err
	}
	if err := builder.AddLodging(lodging.Fields()); err != nil {
		return nil, err
	}
	for _, excursion := range excursions {
		if err := builder.AddExcursion(excursion.Fields()); err != nil {
			return nil, err
		}
	}
	for _, service := range services {
		if err := builder.AddService(service); err != nil {
			return nil, err
		}
	}

	pkg := builder.GetPackage()
	total, _ := pkg.TotalPrice().Float64()
	metrics.PackagesAssembledTotal.WithLabelValues(string(pkg.Tier())).Inc()
	metrics.PackageTotalPrice.WithLabelValues(string(pkg.Tier())).Observe(total)

	return pkg, nil
}

func (s *TravelServiceImpl) Checkout(ctx context.Context, selection model.PackageSelection, strategy payment.Strategy) (*CheckoutResult, error) {
	pkg, err := s.Assemble(ctx, selection)
	if err != nil {
		return nil, err
	}

	amount := pkg.TotalPrice()
	paid := strategy.Pay(amount)
	metrics.PaymentsTotal.WithLabelValues(string(strategy.Method()), metrics.PaymentResult(paid)).Inc()

	log := logger.WithComponent("service").With(
		zap.String("search_id", selection.SearchID.String()),
		zap.String("method", string(strategy.Method())),
		zap.String("amount", amount.String()),
	)
	if !paid {
		log.Info("payment declined")
		return &CheckoutResult{Package: pkg, Method: strategy.Method(), Amount: amount, Paid: false}, nil
	}

	// 付款成功後搜尋結果不再需要；刪除失敗不影響結帳結果
	if err := s.store.Delete(ctx, selection.SearchID); err != nil {
		log.Warn("delete search session failed", zap.Error(err))
	}
	log.Info("payment accepted")

	return &CheckoutResult{Package: pkg, Method: strategy.Method(), Amount: amount, Paid: true}, nil
}

func pick[T any](items []T, index int) (T, error) {
	var zero T
	if index < 0 || index >= len(items) {
		return zero, apperrors.ErrOfferNotFound
	}
	return items[index], nil
}

// pickAll 索引不可重複
func pickAll[T any](items []T, indexes []int) ([]T, error) {
	seen := make(map[int]bool, len(indexes))
	picked := make([]T, 0, len(indexes))
	for _, index := range indexes {
		if seen[index] {
			return nil, apperrors.ErrInvalidInput
		}
		seen[index] = true
		item, err := pick(items, index)
		if err != nil {
			return nil, err
		}
		picked = append(picked, item)
	}
	return picked, nil
}
