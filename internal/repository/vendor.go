package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/SwapMeet_Go/internal/domain"
)

// Vendor defines the interface for vendor persistence.
// Lookups of unknown vendors return an error wrapping domain.ErrVendorNotFound.
type Vendor interface {
	CreateVendor(ctx context.Context, vendor *domain.Vendor) error
	GetVendor(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]*domain.Vendor, error)

	BeginTx(ctx context.Context) (VendorTx, error)

	Ping(ctx context.Context) error
}

// VendorTx defines the interface for vendor transactions.
// GetVendorForUpdate locks the vendor until the transaction ends.
type VendorTx interface {
	Tx
	GetVendorForUpdate(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error)
	SaveVendor(ctx context.Context, vendor *domain.Vendor) error
}
