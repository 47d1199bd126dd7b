package swapmeet

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/SwapMeet_Go/internal/concurrency"
	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/logger"
	"github.com/osse101/SwapMeet_Go/internal/metrics"
	"github.com/osse101/SwapMeet_Go/internal/repository"
)

// Service defines the swap meet operations, addressed by vendor and item ID
type Service interface {
	CreateVendor(ctx context.Context, name string, items []NewItem) (*domain.Vendor, error)
	GetVendor(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]*domain.Vendor, error)

	AddItem(ctx context.Context, vendorID uuid.UUID, item NewItem) (*domain.Item, error)
	RemoveItem(ctx context.Context, vendorID, itemID uuid.UUID) (*domain.Item, error)

	GetByCategory(ctx context.Context, vendorID uuid.UUID, category string) ([]*domain.Item, error)
	GetBestByCategory(ctx context.Context, vendorID uuid.UUID, category string) (*domain.Item, error)
	GetByAge(ctx context.Context, vendorID uuid.UUID, age int) (*domain.Item, error)
	GetNewest(ctx context.Context, vendorID uuid.UUID) (*domain.Item, error)

	SwapItems(ctx context.Context, vendorID, otherID, myItemID, theirItemID uuid.UUID) (*SwapResult, error)
	SwapFirstItem(ctx context.Context, vendorID, otherID uuid.UUID) (*SwapResult, error)
	SwapBestByCategory(ctx context.Context, vendorID, otherID uuid.UUID, myPriority, theirPriority string) (*SwapResult, error)
	SwapByNewest(ctx context.Context, vendorID, otherID uuid.UUID) (*SwapResult, error)

	Ping(ctx context.Context) error
}

// NewItem describes an item to create
type NewItem struct {
	Category  string
	Condition float64
	Age       int
}

// SwapResult describes a completed swap and both vendors as committed
type SwapResult struct {
	Kind     string
	Vendor   *domain.Vendor
	Other    *domain.Vendor
	Given    *domain.Item
	Received *domain.Item
}

type service struct {
	repo   repository.Vendor
	locks  *concurrency.LockManager
	cache  *vendorCache
	tracer trace.Tracer
}

// NewService creates a new swap meet service
func NewService(repo repository.Vendor, cacheConfig CacheConfig) Service {
	return &service{
		repo:   repo,
		locks:  concurrency.NewLockManager(),
		cache:  newVendorCache(cacheConfig),
		tracer: otel.Tracer(TracerName),
	}
}

// CreateVendor stores a new vendor holding the given items in order
func (s *service) CreateVendor(ctx context.Context, name string, items []NewItem) (v *domain.Vendor, err error) {
	ctx, span := s.tracer.Start(ctx, SpanCreateVendor)
	defer func() { endSpan(span, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}

	inventory := make([]*domain.Item, 0, len(items))
	for _, req := range items {
		item, err := buildItem(req)
		if err != nil {
			return nil, err
		}
		inventory = append(inventory, item)
	}

	v = domain.NewVendor(name, inventory...)
	span.SetAttributes(attribute.String(AttrVendorID, v.ID.String()))
	if err := s.repo.CreateVendor(ctx, v); err != nil {
		return nil, err
	}

	metrics.VendorsCreated.Inc()
	for _, item := range inventory {
		metrics.ItemsAdded.WithLabelValues(string(item.Category)).Inc()
	}
	logger.FromContext(ctx).Info(LogMsgVendorCreated, "vendor_id", v.ID, "name", v.Name, "items", v.Len())
	return v, nil
}

// GetVendor returns a vendor through the read cache
func (s *service) GetVendor(ctx context.Context, vendorID uuid.UUID) (v *domain.Vendor, err error) {
	ctx, span := s.startVendorSpan(ctx, SpanGetVendor, vendorID)
	defer func() { endSpan(span, err) }()

	return s.loadVendor(ctx, vendorID)
}

// ListVendors returns every vendor straight from the repository
func (s *service) ListVendors(ctx context.Context) (vendors []*domain.Vendor, err error) {
	ctx, span := s.tracer.Start(ctx, SpanListVendors)
	defer func() { endSpan(span, err) }()

	vendors, err = s.repo.ListVendors(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int(AttrResultCount, len(vendors)))
	return vendors, nil
}

// AddItem creates an item and appends it to the vendor's inventory
func (s *service) AddItem(ctx context.Context, vendorID uuid.UUID, req NewItem) (item *domain.Item, err error) {
	ctx, span := s.startVendorSpan(ctx, SpanAddItem, vendorID)
	defer func() { endSpan(span, err) }()

	item, err = buildItem(req)
	if err != nil {
		return nil, err
	}

	err = s.mutateVendor(ctx, vendorID, func(v *domain.Vendor) error {
		v.Add(item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String(AttrItemID, item.ID.String()))
	metrics.ItemsAdded.WithLabelValues(string(item.Category)).Inc()
	logger.FromContext(ctx).Info(LogMsgItemAdded, "vendor_id", vendorID, "item_id", item.ID, "category", item.Category)
	return item, nil
}

// RemoveItem drops the first occurrence of the item from the vendor's inventory
func (s *service) RemoveItem(ctx context.Context, vendorID, itemID uuid.UUID) (removed *domain.Item, err error) {
	ctx, span := s.startVendorSpan(ctx, SpanRemoveItem, vendorID)
	span.SetAttributes(attribute.String(AttrItemID, itemID.String()))
	defer func() { endSpan(span, err) }()

	err = s.mutateVendor(ctx, vendorID, func(v *domain.Vendor) error {
		removed = v.Remove(v.ItemByID(itemID))
		if removed == nil {
			return fmt.Errorf("%w: item %s, vendor %s", domain.ErrNotInInventory, itemID, vendorID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsRemoved.WithLabelValues(string(removed.Category)).Inc()
	logger.FromContext(ctx).Info(LogMsgItemRemoved, "vendor_id", vendorID, "item_id", itemID)
	return removed, nil
}

// GetByCategory returns every item of the category in inventory order; never nil
func (s *service) GetByCategory(ctx context.Context, vendorID uuid.UUID, category string) (items []*domain.Item, err error) {
	ctx, span := s.startVendorSpan(ctx, SpanGetByCategory, vendorID)
	defer func() { endSpan(span, err) }()

	cat, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String(AttrCategory, string(cat)))

	v, err := s.loadVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	metrics.SearchesPerformed.WithLabelValues(SearchKindCategory).Inc()
	items = v.GetByCategory(cat)
	span.SetAttributes(attribute.Int(AttrResultCount, len(items)))
	return items, nil
}

// GetBestByCategory returns the highest-condition item of the category
func (s *service) GetBestByCategory(ctx context.Context, vendorID uuid.UUID, category string) (item *domain.Item, err error) {
	ctx, span := s.startVendorSpan(ctx, SpanGetBestByCategory, vendorID)
	defer func() { endSpan(span, err) }()

	cat, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String(AttrCategory, string(cat)))

	v, err := s.loadVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	metrics.SearchesPerformed.WithLabelValues(SearchKindBest).Inc()
	if item = v.GetBestByCategory(cat); item == nil {
		return nil, fmt.Errorf("%w: no %s items held by vendor %s", domain.ErrNoQualifyingItem, cat, vendorID)
	}
	return item, nil
}

// GetByAge returns the first item with exactly the given age
func (s *service) GetByAge(ctx context.Context, vendorID uuid.UUID, age int) (item *domain.Item, err error) {
	ctx, span := s.startVendorSpan(ctx, SpanGetByAge, vendorID)
	defer func() { endSpan(span, err) }()

	v, err := s.loadVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	metrics.SearchesPerformed.WithLabelValues(SearchKindAge).Inc()
	if item = v.GetByAge(age); item == nil {
		return nil, fmt.Errorf("%w: no item of age %d held by vendor %s", domain.ErrNoQualifyingItem, age, vendorID)
	}
	return item, nil
}

// GetNewest returns the item with the lowest age
func (s *service) GetNewest(ctx context.Context, vendorID uuid.UUID) (item *domain.Item, err error) {
	ctx, span := s.startVendorSpan(ctx, SpanGetNewest, vendorID)
	defer func() { endSpan(span, err) }()

	v, err := s.loadVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	metrics.SearchesPerformed.WithLabelValues(SearchKindNewest).Inc()
	if item = v.GetByNewest(); item == nil {
		return nil, fmt.Errorf("%w: vendor %s", domain.ErrEmptyInventory, vendorID)
	}
	return item, nil
}

// SwapItems trades two named items between the vendors
func (s *service) SwapItems(ctx context.Context, vendorID, otherID, myItemID, theirItemID uuid.UUID) (*SwapResult, error) {
	return s.swap(ctx, SpanSwapItems, domain.SwapKindItems, vendorID, otherID,
		func(mine, other *domain.Vendor) (domain.Swap, error) {
			my := mine.ItemByID(myItemID)
			if my == nil {
				return domain.Swap{}, fmt.Errorf("%w: item %s, vendor %s", domain.ErrNotInInventory, myItemID, mine.ID)
			}
			their := other.ItemByID(theirItemID)
			if their == nil {
				return domain.Swap{}, fmt.Errorf("%w: item %s, vendor %s", domain.ErrNotInInventory, theirItemID, other.ID)
			}
			return completed(mine.SwapItems(other, my, their))
		})
}

// SwapFirstItem trades the first item of each inventory
func (s *service) SwapFirstItem(ctx context.Context, vendorID, otherID uuid.UUID) (*SwapResult, error) {
	return s.swap(ctx, SpanSwapFirstItem, domain.SwapKindFirst, vendorID, otherID,
		func(mine, other *domain.Vendor) (domain.Swap, error) {
			if err := requireStock(mine, other); err != nil {
				return domain.Swap{}, err
			}
			return completed(mine.SwapFirstItem(other))
		})
}

// SwapBestByCategory gives the other vendor our best item in theirPriority and
// takes their best item in myPriority
func (s *service) SwapBestByCategory(ctx context.Context, vendorID, otherID uuid.UUID, myPriority, theirPriority string) (*SwapResult, error) {
	myCat, err := parseCategory(myPriority)
	if err != nil {
		return nil, err
	}
	theirCat, err := parseCategory(theirPriority)
	if err != nil {
		return nil, err
	}

	return s.swap(ctx, SpanSwapBestByCategory, domain.SwapKindBest, vendorID, otherID,
		func(mine, other *domain.Vendor) (domain.Swap, error) {
			if mine.GetBestByCategory(theirCat) == nil {
				return domain.Swap{}, fmt.Errorf("%w: vendor %s holds no %s items", domain.ErrNoQualifyingItem, mine.ID, theirCat)
			}
			if other.GetBestByCategory(myCat) == nil {
				return domain.Swap{}, fmt.Errorf("%w: vendor %s holds no %s items", domain.ErrNoQualifyingItem, other.ID, myCat)
			}
			return completed(mine.SwapBestByCategory(other, myCat, theirCat))
		})
}

// SwapByNewest trades each vendor's newest item
func (s *service) SwapByNewest(ctx context.Context, vendorID, otherID uuid.UUID) (*SwapResult, error) {
	return s.swap(ctx, SpanSwapByNewest, domain.SwapKindNewest, vendorID, otherID,
		func(mine, other *domain.Vendor) (domain.Swap, error) {
			if err := requireStock(mine, other); err != nil {
				return domain.Swap{}, err
			}
			return completed(mine.SwapByNewest(other))
		})
}

// Ping checks the backing repository
func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
