package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// VendorRepository implements repository.Vendor for PostgreSQL
type VendorRepository struct {
	db *pgxpool.Pool
}

// NewVendorRepository creates a new VendorRepository
func NewVendorRepository(db *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{db: db}
}

var _ repository.Vendor = (*VendorRepository)(nil)

// CreateVendor inserts the vendor row and its inventory in one transaction
func (r *VendorRepository) CreateVendor(ctx context.Context, vendor *domain.Vendor) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	_, err = tx.Exec(ctx, queryInsertVendor, vendor.ID, vendor.Name, vendor.CreatedAt, vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertVendor, err)
	}
	if err := saveVendor(ctx, tx, vendor); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetVendor loads a vendor and its ordered inventory
func (r *VendorRepository) GetVendor(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error) {
	return loadVendor(ctx, r.db, vendorID, false)
}

// ListVendors loads every vendor, oldest first
func (r *VendorRepository) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	rows, err := r.db.Query(ctx, queryListVendorIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListVendors, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListVendors, err)
	}

	vendors := make([]*domain.Vendor, 0, len(ids))
	for _, id := range ids {
		v, err := loadVendor(ctx, r.db, id, false)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

// Ping checks the database connection
func (r *VendorRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// BeginTx starts a transaction and returns a VendorTx
func (r *VendorRepository) BeginTx(ctx context.Context) (repository.VendorTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return &vendorTx{tx: tx}, nil
}

// vendorTx implements repository.VendorTx
type vendorTx struct {
	tx pgx.Tx
}

func (t *vendorTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *vendorTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *vendorTx) GetVendorForUpdate(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error) {
	return loadVendor(ctx, t.tx, vendorID, true)
}

func (t *vendorTx) SaveVendor(ctx context.Context, vendor *domain.Vendor) error {
	tag, err := t.tx.Exec(ctx, queryUpdateVendor, vendor.ID, vendor.Name, vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateVendor, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrVendorNotFound, vendor.ID)
	}
	return saveVendor(ctx, t.tx, vendor)
}

func loadVendor(ctx context.Context, q querier, vendorID uuid.UUID, forUpdate bool) (*domain.Vendor, error) {
	query := querySelectVendor
	if forUpdate {
		query += " FOR UPDATE"
	}

	var (
		id                   uuid.UUID
		name                 string
		createdAt, updatedAt time.Time
	)
	err := q.QueryRow(ctx, query, vendorID).Scan(&id, &name, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrVendorNotFound, vendorID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetVendor, err)
	}

	rows, err := q.Query(ctx, querySelectInventory, vendorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	slots, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Item])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}

	// Repeated slots of one item must come back as one pointer
	loaded := make(map[uuid.UUID]*domain.Item, len(slots))
	items := make([]*domain.Item, 0, len(slots))
	for i := range slots {
		item, ok := loaded[slots[i].ID]
		if !ok {
			item = &slots[i]
			loaded[item.ID] = item
		}
		items = append(items, item)
	}

	return domain.Restore(id, name, createdAt, updatedAt, items), nil
}

// saveVendor upserts the vendor's items and rewrites its inventory slots in one batch
func saveVendor(ctx context.Context, q querier, vendor *domain.Vendor) error {
	inventory := vendor.Inventory()
	batch := &pgx.Batch{}

	seen := make(map[uuid.UUID]bool, len(inventory))
	for _, item := range inventory {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		batch.Queue(queryUpsertItem,
			item.ID, string(item.Category), item.Condition, item.Age, string(item.Presentation), item.CreatedAt)
	}

	batch.Queue(queryClearInventory, vendor.ID)
	for position, item := range inventory {
		batch.Queue(queryInsertSlot, vendor.ID, position, item.ID)
	}

	results := q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveInventory, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveInventory, err)
	}
	return nil
}
