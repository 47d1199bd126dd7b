package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

// MockService mocks swapmeet.Service
type MockService struct {
	mock.Mock
}

var _ swapmeet.Service = (*MockService)(nil)

func vendorOrNil(args mock.Arguments, i int) *domain.Vendor {
	if v := args.Get(i); v != nil {
		return v.(*domain.Vendor)
	}
	return nil
}

func itemOrNil(args mock.Arguments, i int) *domain.Item {
	if v := args.Get(i); v != nil {
		return v.(*domain.Item)
	}
	return nil
}

func swapOrNil(args mock.Arguments, i int) *swapmeet.SwapResult {
	if v := args.Get(i); v != nil {
		return v.(*swapmeet.SwapResult)
	}
	return nil
}

func (m *MockService) CreateVendor(ctx context.Context, name string, items []swapmeet.NewItem) (*domain.Vendor, error) {
	args := m.Called(ctx, name, items)
	return vendorOrNil(args, 0), args.Error(1)
}

func (m *MockService) GetVendor(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	return vendorOrNil(args, 0), args.Error(1)
}

func (m *MockService) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockService) AddItem(ctx context.Context, vendorID uuid.UUID, item swapmeet.NewItem) (*domain.Item, error) {
	args := m.Called(ctx, vendorID, item)
	return itemOrNil(args, 0), args.Error(1)
}

func (m *MockService) RemoveItem(ctx context.Context, vendorID, itemID uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, vendorID, itemID)
	return itemOrNil(args, 0), args.Error(1)
}

func (m *MockService) GetByCategory(ctx context.Context, vendorID uuid.UUID, category string) ([]*domain.Item, error) {
	args := m.Called(ctx, vendorID, category)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockService) GetBestByCategory(ctx context.Context, vendorID uuid.UUID, category string) (*domain.Item, error) {
	args := m.Called(ctx, vendorID, category)
	return itemOrNil(args, 0), args.Error(1)
}

func (m *MockService) GetByAge(ctx context.Context, vendorID uuid.UUID, age int) (*domain.Item, error) {
	args := m.Called(ctx, vendorID, age)
	return itemOrNil(args, 0), args.Error(1)
}

func (m *MockService) GetNewest(ctx context.Context, vendorID uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, vendorID)
	return itemOrNil(args, 0), args.Error(1)
}

func (m *MockService) SwapItems(ctx context.Context, vendorID, otherID, myItemID, theirItemID uuid.UUID) (*swapmeet.SwapResult, error) {
	args := m.Called(ctx, vendorID, otherID, myItemID, theirItemID)
	return swapOrNil(args, 0), args.Error(1)
}

func (m *MockService) SwapFirstItem(ctx context.Context, vendorID, otherID uuid.UUID) (*swapmeet.SwapResult, error) {
	args := m.Called(ctx, vendorID, otherID)
	return swapOrNil(args, 0), args.Error(1)
}

func (m *MockService) SwapBestByCategory(ctx context.Context, vendorID, otherID uuid.UUID, myPriority, theirPriority string) (*swapmeet.SwapResult, error) {
	args := m.Called(ctx, vendorID, otherID, myPriority, theirPriority)
	return swapOrNil(args, 0), args.Error(1)
}

func (m *MockService) SwapByNewest(ctx context.Context, vendorID, otherID uuid.UUID) (*swapmeet.SwapResult, error) {
	args := m.Called(ctx, vendorID, otherID)
	return swapOrNil(args, 0), args.Error(1)
}

func (m *MockService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
