package swapmeet

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/logger"
	"github.com/osse101/SwapMeet_Go/internal/metrics"
	"github.com/osse101/SwapMeet_Go/internal/repository"
)

// withTx executes a function within a transaction.
// It handles begin, commit, and rollback automatically.
func (s *service) withTx(ctx context.Context, operation func(tx repository.VendorTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error(LogMsgFailedToBeginTx, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := operation(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgFailedToCommitTx, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}

	return nil
}

// loadVendor reads through the cache. It holds the vendor lock so a read that
// races a write cannot put the pre-write vendor back into the cache.
func (s *service) loadVendor(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error) {
	unlock := s.locks.LockVendors(vendorID)
	defer unlock()

	if v, ok := s.cache.Get(vendorID); ok {
		return v, nil
	}

	v, err := s.repo.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(v)
	return v, nil
}

// mutateVendor applies change to a locked copy of one vendor and saves it
func (s *service) mutateVendor(ctx context.Context, vendorID uuid.UUID, change func(v *domain.Vendor) error) error {
	unlock := s.locks.LockVendors(vendorID)
	defer unlock()
	defer s.cache.Invalidate(vendorID)

	return s.withTx(ctx, func(tx repository.VendorTx) error {
		v, err := tx.GetVendorForUpdate(ctx, vendorID)
		if err != nil {
			return err
		}
		if err := change(v); err != nil {
			return err
		}
		v.Touch()
		if err := tx.SaveVendor(ctx, v); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSave, err)
		}
		return nil
	})
}

// exchangeFunc performs the domain swap on two locked vendors
type exchangeFunc func(mine, other *domain.Vendor) (domain.Swap, error)

// swap runs one swap between two vendors: both are locked in ID order, loaded for
// update in the same order, exchanged and saved in one transaction.
func (s *service) swap(ctx context.Context, spanName, kind string, vendorID, otherID uuid.UUID, exchange exchangeFunc) (result *SwapResult, err error) {
	ctx, span := s.startVendorSpan(ctx, spanName, vendorID)
	span.SetAttributes(
		attribute.String(AttrOtherID, otherID.String()),
		attribute.String(AttrSwapKind, kind),
	)
	log := logger.FromContext(ctx)
	defer func() {
		endSpan(span, err)
		metrics.SwapsTotal.WithLabelValues(kind, swapOutcome(err)).Inc()
		if err != nil {
			log.Warn(LogMsgSwapFailed, "kind", kind, "vendor_id", vendorID, "other_id", otherID, "error", err)
		}
	}()

	if vendorID == otherID {
		return nil, fmt.Errorf("%w: %s", domain.ErrSameVendor, vendorID)
	}

	unlock := s.locks.LockVendors(vendorID, otherID)
	defer unlock()
	defer s.cache.Invalidate(vendorID, otherID)

	err = s.withTx(ctx, func(tx repository.VendorTx) error {
		loaded := make(map[uuid.UUID]*domain.Vendor, 2)
		for _, id := range sortedIDs(vendorID, otherID) {
			v, err := tx.GetVendorForUpdate(ctx, id)
			if err != nil {
				return err
			}
			loaded[id] = v
		}
		mine, other := loaded[vendorID], loaded[otherID]

		exchanged, err := exchange(mine, other)
		if err != nil {
			return err
		}

		for _, v := range []*domain.Vendor{mine, other} {
			if err := tx.SaveVendor(ctx, v); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToSave, err)
			}
		}

		result = &SwapResult{
			Kind:     kind,
			Vendor:   mine,
			Other:    other,
			Given:    exchanged.Given,
			Received: exchanged.Received,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgSwapCompleted,
		"kind", kind,
		"vendor_id", vendorID,
		"other_id", otherID,
		"given_item_id", result.Given.ID,
		"received_item_id", result.Received.ID)
	return result, nil
}

// completed turns a domain swap outcome into an error on rejection
func completed(swap domain.Swap, ok bool) (domain.Swap, error) {
	if !ok {
		return domain.Swap{}, domain.ErrSwapRejected
	}
	return swap, nil
}

func requireStock(vendors ...*domain.Vendor) error {
	for _, v := range vendors {
		if v.Len() == 0 {
			return fmt.Errorf("%w: vendor %s", domain.ErrEmptyInventory, v.ID)
		}
	}
	return nil
}

func swapOutcome(err error) string {
	switch {
	case err == nil:
		return domain.SwapOutcomeOK
	case isRejection(err):
		return domain.SwapOutcomeNoop
	default:
		return domain.SwapOutcomeError
	}
}

// isRejection reports whether err is a refused swap rather than a failure
func isRejection(err error) bool {
	for _, target := range []error{
		domain.ErrSwapRejected,
		domain.ErrSameVendor,
		domain.ErrNotInInventory,
		domain.ErrEmptyInventory,
		domain.ErrNoQualifyingItem,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func sortedIDs(ids ...uuid.UUID) []uuid.UUID {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return sorted
}

func buildItem(req NewItem) (*domain.Item, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	if req.Condition < domain.MinCondition || req.Condition > domain.MaxCondition {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgConditionRange)
	}
	if req.Age < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgAgeNegative)
	}
	return domain.NewItem(category, req.Condition, req.Age), nil
}

func parseCategory(raw string) (domain.Category, error) {
	category := domain.ParseCategory(raw)
	if category == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCategoryRequired)
	}
	return category, nil
}

func (s *service) startVendorSpan(ctx context.Context, name string, vendorID uuid.UUID) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attribute.String(AttrVendorID, vendorID.String())))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
