package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// vendorRecord is the stored form of a vendor; items are referenced by ID so an
// item listed by several vendors is stored once.
type vendorRecord struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
	itemIDs   []uuid.UUID
}

// VendorRepository keeps vendors in process memory.
// Writers are serialized: a transaction holds txMu from BeginTx until Commit or Rollback.
type VendorRepository struct {
	mu      sync.RWMutex
	txMu    sync.Mutex
	vendors map[uuid.UUID]vendorRecord
	items   map[uuid.UUID]domain.Item
	order   []uuid.UUID
}

// NewVendorRepository creates an empty in-memory repository
func NewVendorRepository() *VendorRepository {
	return &VendorRepository{
		vendors: make(map[uuid.UUID]vendorRecord),
		items:   make(map[uuid.UUID]domain.Item),
	}
}

var _ repository.Vendor = (*VendorRepository)(nil)

// CreateVendor stores a new vendor together with its current inventory
func (r *VendorRepository) CreateVendor(ctx context.Context, vendor *domain.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vendors[vendor.ID]; exists {
		return fmt.Errorf("vendor %s already exists", vendor.ID)
	}
	r.storeLocked(vendor)
	r.order = append(r.order, vendor.ID)
	return nil
}

// GetVendor returns a detached copy of the stored vendor
func (r *VendorRepository) GetVendor(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadLocked(vendorID)
}

// ListVendors returns every vendor in creation order
func (r *VendorRepository) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := make([]*domain.Vendor, 0, len(r.order))
	for _, id := range r.order {
		v, err := r.loadLocked(id)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

// Ping always succeeds
func (r *VendorRepository) Ping(ctx context.Context) error {
	return nil
}

// BeginTx starts a write transaction. It blocks while another transaction is open.
func (r *VendorRepository) BeginTx(ctx context.Context) (repository.VendorTx, error) {
	locked := make(chan struct{})
	go func() {
		r.txMu.Lock()
		close(locked)
	}()

	select {
	case <-locked:
		return &vendorTx{repo: r, staged: make(map[uuid.UUID]*domain.Vendor)}, nil
	case <-ctx.Done():
		// Hand the lock back once the goroutine gets it
		go func() {
			<-locked
			r.txMu.Unlock()
		}()
		return nil, ctx.Err()
	}
}

// loadLocked rebuilds a vendor; callers hold mu
func (r *VendorRepository) loadLocked(vendorID uuid.UUID) (*domain.Vendor, error) {
	rec, ok := r.vendors[vendorID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrVendorNotFound, vendorID)
	}

	loaded := make(map[uuid.UUID]*domain.Item, len(rec.itemIDs))
	items := make([]*domain.Item, 0, len(rec.itemIDs))
	for _, id := range rec.itemIDs {
		item, ok := loaded[id]
		if !ok {
			stored, found := r.items[id]
			if !found {
				return nil, fmt.Errorf("%w: item %s of vendor %s", domain.ErrItemNotFound, id, vendorID)
			}
			item = &stored
			loaded[id] = item
		}
		items = append(items, item)
	}

	return domain.Restore(rec.id, rec.name, rec.createdAt, rec.updatedAt, items), nil
}

// storeLocked writes a vendor and its items; callers hold mu for writing
func (r *VendorRepository) storeLocked(vendor *domain.Vendor) {
	inventory := vendor.Inventory()
	ids := make([]uuid.UUID, len(inventory))
	for i, item := range inventory {
		r.items[item.ID] = *item
		ids[i] = item.ID
	}
	r.vendors[vendor.ID] = vendorRecord{
		id:        vendor.ID,
		name:      vendor.Name,
		createdAt: vendor.CreatedAt,
		updatedAt: vendor.UpdatedAt,
		itemIDs:   ids,
	}
}

type vendorTx struct {
	repo   *VendorRepository
	staged map[uuid.UUID]*domain.Vendor
	order  []uuid.UUID
	done   bool
}

func (tx *vendorTx) GetVendorForUpdate(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error) {
	if tx.done {
		return nil, errTxClosed
	}
	if staged, ok := tx.staged[vendorID]; ok {
		return staged.Clone(), nil
	}
	return tx.repo.GetVendor(ctx, vendorID)
}

func (tx *vendorTx) SaveVendor(ctx context.Context, vendor *domain.Vendor) error {
	if tx.done {
		return errTxClosed
	}
	if _, ok := tx.staged[vendor.ID]; !ok {
		tx.order = append(tx.order, vendor.ID)
	}
	tx.staged[vendor.ID] = vendor.Clone()
	return nil
}

func (tx *vendorTx) Commit(ctx context.Context) error {
	if tx.done {
		return errTxClosed
	}
	tx.done = true
	defer tx.repo.txMu.Unlock()

	tx.repo.mu.Lock()
	defer tx.repo.mu.Unlock()

	for _, id := range tx.order {
		if _, exists := tx.repo.vendors[id]; !exists {
			return fmt.Errorf("%w: %s", domain.ErrVendorNotFound, id)
		}
	}
	for _, id := range tx.order {
		tx.repo.storeLocked(tx.staged[id])
	}
	return nil
}

func (tx *vendorTx) Rollback(ctx context.Context) error {
	if tx.done {
		return errTxClosed
	}
	tx.done = true
	tx.repo.txMu.Unlock()
	return nil
}
