package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stylecart/storefront/internal/catalog"
	"github.com/stylecart/storefront/internal/notifications"
	pkgerrors "github.com/stylecart/storefront/pkg/errors"
	"github.com/stylecart/storefront/pkg/kvstore"
	"github.com/stylecart/storefront/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Output: io.Discard})
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Product{
		{ID: 1, Name: "Classic White Shirt", Price: 1499, Category: "men"},
		{ID: 2, Name: "Summer Floral Dress", Price: 2299, Category: "women"},
		{ID: 3, Name: "Leather Belt", Price: 899, Category: "accessories"},
	})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return c
}

func testStore(t *testing.T, kv kvstore.Store) *Store {
	t.Helper()
	s, err := NewStore(StoreParams{
		KV:      kv,
		Catalog: testCatalog(t),
		Logger:  testLogger(),
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestNewStoreMissingDeps(t *testing.T) {
	if _, err := NewStore(StoreParams{Catalog: testCatalog(t), Logger: testLogger()}); err == nil {
		t.Fatal("expected error for missing kv store")
	}
	if _, err := NewStore(StoreParams{KV: kvstore.NewMemory(), Logger: testLogger()}); err == nil {
		t.Fatal("expected error for missing catalog")
	}
	if _, err := NewStore(StoreParams{KV: kvstore.NewMemory(), Catalog: testCatalog(t)}); err == nil {
		t.Fatal("expected error for missing logger")
	}
}

func TestAddItemNewAndRepeat(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, kvstore.NewMemory())

	if err := s.AddItem(ctx, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.AddItem(ctx, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.AddItem(ctx, 1); err != nil {
		t.Fatalf("AddItem repeat: %v", err)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != 1 || items[0].Quantity != 2 {
		t.Fatalf("unexpected first line: %+v", items[0])
	}
	if items[1].ProductID != 2 || items[1].Quantity != 1 {
		t.Fatalf("unexpected second line: %+v", items[1])
	}
	if got := s.Count(); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, kvstore.NewMemory())

	err := s.AddItem(ctx, 999)
	if !pkgerrors.HasCode(err, pkgerrors.CodeUnknownProduct) {
		t.Fatalf("expected UNKNOWN_PRODUCT, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("cart mutated by failed add")
	}
}

func TestChangeQuantity(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, kvstore.NewMemory())
	if err := s.AddItem(ctx, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := s.ChangeQuantity(ctx, 1, 2); err != nil {
		t.Fatalf("ChangeQuantity: %v", err)
	}
	if got := s.Items()[0].Quantity; got != 3 {
		t.Fatalf("quantity = %d, want 3", got)
	}

	// A delta cancelling the current quantity removes the line.
	if err := s.ChangeQuantity(ctx, 1, -3); err != nil {
		t.Fatalf("ChangeQuantity: %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("expected line removed at quantity zero")
	}

	// Unknown ids are a no-op.
	if err := s.ChangeQuantity(ctx, 42, 1); err != nil {
		t.Fatalf("ChangeQuantity unknown id: %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("no-op mutated the cart")
	}
}

func TestChangeQuantityBelowZeroRemoves(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, kvstore.NewMemory())
	if err := s.AddItem(ctx, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.ChangeQuantity(ctx, 2, -5); err != nil {
		t.Fatalf("ChangeQuantity: %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("expected removal when quantity drops below zero")
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	recorder := &notifications.Recorder{}
	s, err := NewStore(StoreParams{
		KV:       kvstore.NewMemory(),
		Catalog:  testCatalog(t),
		Logger:   testLogger(),
		Notifier: recorder,
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := s.AddItem(ctx, 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.RemoveItem(ctx, 3); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("expected empty cart after remove")
	}
	last := recorder.Signals[len(recorder.Signals)-1]
	if last.Message != "Leather Belt removed from cart" {
		t.Fatalf("unexpected signal: %q", last.Message)
	}

	// Removing again is a no-op.
	if err := s.RemoveItem(ctx, 3); err != nil {
		t.Fatalf("RemoveItem repeat: %v", err)
	}
}

func TestClearIdempotent(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, kvstore.NewMemory())
	if err := s.AddItem(ctx, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("expected empty cart")
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty cart: %v", err)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	s := testStore(t, kv)

	if err := s.AddItem(ctx, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.AddItem(ctx, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.AddItem(ctx, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// A fresh store over the same backend sees the same cart.
	fresh := testStore(t, kv)
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := fresh.Items(), s.Items(); len(got) != len(want) {
		t.Fatalf("loaded %d lines, want %d", len(got), len(want))
	}
	if fresh.Count() != 3 {
		t.Fatalf("Count = %d, want 3", fresh.Count())
	}

	raw, err := kv.Get(ctx, StorageKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("persisted cart is not valid JSON: %v", err)
	}
	if _, ok := decoded[0]["id"]; !ok {
		t.Fatalf("persisted line missing id field: %v", decoded[0])
	}
}

func TestLoadMissingKeyLeavesCartEmpty(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, kvstore.NewMemory())
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("expected empty cart")
	}
}

func TestLoadCorruptPayload(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	if err := kv.Set(ctx, StorageKey, []byte("not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s := testStore(t, kv)
	if err := s.Load(ctx); !pkgerrors.HasCode(err, pkgerrors.CodePersistence) {
		t.Fatalf("expected PERSISTENCE_FAILURE, got %v", err)
	}
}

type failingKV struct {
	kvstore.Store
	fail bool
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Store.Set(ctx, key, value)
}

func TestMutationRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{Store: kvstore.NewMemory()}
	s := testStore(t, kv)

	if err := s.AddItem(ctx, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	kv.fail = true
	if err := s.AddItem(ctx, 2); !pkgerrors.HasCode(err, pkgerrors.CodePersistence) {
		t.Fatalf("expected PERSISTENCE_FAILURE, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected rollback to 1 line, got %d", s.Len())
	}
	if err := s.Clear(ctx); !pkgerrors.HasCode(err, pkgerrors.CodePersistence) {
		t.Fatalf("expected PERSISTENCE_FAILURE, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatal("clear rolled forward despite persist failure")
	}
}
