package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwapMeet_Go/internal/domain"
)

func TestVendorRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorRepository()

	shirt := domain.NewClothing(3, 1)
	v := domain.NewVendor("alice", shirt, domain.NewDecor(2, 4))
	require.NoError(t, repo.CreateVendor(ctx, v))

	t.Run("returns a detached copy", func(t *testing.T) {
		got, err := repo.GetVendor(ctx, v.ID)
		require.NoError(t, err)

		assert.Equal(t, v.ID, got.ID)
		assert.Equal(t, "alice", got.Name)
		require.Equal(t, 2, got.Len())
		assert.Equal(t, shirt.ID, got.Inventory()[0].ID)
		assert.NotSame(t, shirt, got.Inventory()[0])

		got.Remove(got.Inventory()[0])
		again, err := repo.GetVendor(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, again.Len(), "Mutating a loaded vendor must not touch the store")
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		assert.Error(t, repo.CreateVendor(ctx, v))
	})

	t.Run("unknown vendor", func(t *testing.T) {
		_, err := repo.GetVendor(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrVendorNotFound)
	})
}

func TestVendorRepository_ListVendors(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorRepository()

	first := domain.NewVendor("first")
	second := domain.NewVendor("second")
	require.NoError(t, repo.CreateVendor(ctx, first))
	require.NoError(t, repo.CreateVendor(ctx, second))

	vendors, err := repo.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, first.ID, vendors[0].ID)
	assert.Equal(t, second.ID, vendors[1].ID)
}

func TestVendorRepository_SharedItemsStayShared(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorRepository()

	shared := domain.NewClothing(3, 1)
	v := domain.NewVendor("alice", shared, shared)
	require.NoError(t, repo.CreateVendor(ctx, v))

	got, err := repo.GetVendor(ctx, v.ID)
	require.NoError(t, err)
	inv := got.Inventory()
	require.Len(t, inv, 2)
	assert.Same(t, inv[0], inv[1], "The same item listed twice loads as one item")
}

func TestVendorTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit persists staged vendors", func(t *testing.T) {
		repo := NewVendorRepository()
		x, y := domain.NewClothing(1, 1), domain.NewDecor(2, 2)
		a, b := domain.NewVendor("a", x), domain.NewVendor("b", y)
		require.NoError(t, repo.CreateVendor(ctx, a))
		require.NoError(t, repo.CreateVendor(ctx, b))

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		la, err := tx.GetVendorForUpdate(ctx, a.ID)
		require.NoError(t, err)
		lb, err := tx.GetVendorForUpdate(ctx, b.ID)
		require.NoError(t, err)

		_, ok := la.SwapFirstItem(lb)
		require.True(t, ok)
		require.NoError(t, tx.SaveVendor(ctx, la))
		require.NoError(t, tx.SaveVendor(ctx, lb))
		require.NoError(t, tx.Commit(ctx))

		gotA, err := repo.GetVendor(ctx, a.ID)
		require.NoError(t, err)
		gotB, err := repo.GetVendor(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, y.ID, gotA.Inventory()[0].ID)
		assert.Equal(t, x.ID, gotB.Inventory()[0].ID)
	})

	t.Run("rollback discards staged vendors", func(t *testing.T) {
		repo := NewVendorRepository()
		a := domain.NewVendor("a", domain.NewClothing(1, 1))
		require.NoError(t, repo.CreateVendor(ctx, a))

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		la, err := tx.GetVendorForUpdate(ctx, a.ID)
		require.NoError(t, err)
		la.Remove(la.Inventory()[0])
		require.NoError(t, tx.SaveVendor(ctx, la))
		require.NoError(t, tx.Rollback(ctx))

		got, err := repo.GetVendor(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Len())
	})

	t.Run("rollback after commit reports closed tx", func(t *testing.T) {
		repo := NewVendorRepository()
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		err = tx.Rollback(ctx)
		require.Error(t, err)
		assert.Equal(t, domain.ErrMsgTxClosed, err.Error())
	})

	t.Run("transactions are serialized", func(t *testing.T) {
		repo := NewVendorRepository()
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err = repo.BeginTx(waitCtx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		require.NoError(t, tx.Rollback(ctx))
		next, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, next.Rollback(ctx))
	})
}
