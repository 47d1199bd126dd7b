package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/logger"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

// File is the on-disk seed format
type File struct {
	Vendors []Vendor `yaml:"vendors" validate:"dive"`
}

// Vendor is one seeded vendor and its inventory, in order
type Vendor struct {
	Name  string `yaml:"name" validate:"required,max=100"`
	Items []Item `yaml:"items" validate:"dive"`
}

// Item is one seeded item
type Item struct {
	Category  string  `yaml:"category" validate:"required,max=64"`
	Condition float64 `yaml:"condition" validate:"gte=0,lte=5"`
	Age       int     `yaml:"age" validate:"gte=0"`
}

// VendorCreator is the part of the swap meet service seeding needs
type VendorCreator interface {
	CreateVendor(ctx context.Context, name string, items []swapmeet.NewItem) (*domain.Vendor, error)
}

var seedValidator = validator.New()

// Load reads and validates a seed file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToReadSeed, path, err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgFailedToParseSeed, err)
	}

	if err := seedValidator.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidSeed, err)
	}
	return &f, nil
}

// Apply creates every vendor in the file and returns them in file order
func Apply(ctx context.Context, creator VendorCreator, f *File) ([]*domain.Vendor, error) {
	log := logger.FromContext(ctx)

	created := make([]*domain.Vendor, 0, len(f.Vendors))
	for _, sv := range f.Vendors {
		items := make([]swapmeet.NewItem, len(sv.Items))
		for i, it := range sv.Items {
			items[i] = swapmeet.NewItem{Category: it.Category, Condition: it.Condition, Age: it.Age}
		}

		v, err := creator.CreateVendor(ctx, sv.Name, items)
		if err != nil {
			return created, fmt.Errorf("%s %q: %w", ErrMsgFailedToSeedVendor, sv.Name, err)
		}
		created = append(created, v)
	}

	log.Info(LogMsgSeedApplied, "vendors", len(created))
	return created, nil
}
