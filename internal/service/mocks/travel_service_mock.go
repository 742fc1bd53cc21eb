package mocks

import (
	"context"

	"go-gin-travel-agency/internal/model"
	"go-gin-travel-agency/internal/payment"
	"go-gin-travel-agency/internal/service"

	"github.com/stretchr/testify/mock"
)

type TravelServiceMock struct {
	mock.Mock
}

func NewTravelServiceMock() *TravelServiceMock {
	return &TravelServiceMock{}
}

func (m *TravelServiceMock) Cities(ctx context.Context) []string {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *TravelServiceMock) Search(ctx context.Context, query model.SearchQuery) (*model.Offers, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Offers), args.Error(1)
}

func (m *TravelServiceMock) Assemble(ctx context.Context, selection model.PackageSelection) (*model.TravelPackage, error) {
	args := m.Called(ctx, selection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TravelPackage), args.Error(1)
}

func (m *TravelServiceMock) Checkout(ctx context.Context, selection model.PackageSelection, strategy payment.Strategy) (*service.CheckoutResult, error) {
	args := m.Called(ctx, selection, strategy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutResult), args.Error(1)
}

var _ service.TravelService = (*TravelServiceMock)(nil)
