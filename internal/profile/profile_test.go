package profile

import (
	"context"
	"io"
	"testing"

	pkgerrors "github.com/stylecart/storefront/pkg/errors"
	"github.com/stylecart/storefront/pkg/kvstore"
	"github.com/stylecart/storefront/pkg/logger"
	"github.com/stylecart/storefront/pkg/types"
)

func testStore(t *testing.T, kv kvstore.Store) *Store {
	t.Helper()
	s, err := NewStore(kv, logger.New(logger.Options{Output: io.Discard}))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestLoadMissingProfile(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, kvstore.NewMemory())

	_, ok, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("expected no stored profile")
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, kvstore.NewMemory())

	saved := types.CustomerInfo{
		FirstName: "  Ayesha ",
		LastName:  "Khan",
		Email:     "ayesha@example.com",
		Phone:     "3001234567",
		Address:   "12 Mall Road",
		City:      "Lahore",
		State:     "Punjab",
		Zip:       "54000",
		Country:   "Pakistan",
	}
	if err := s.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, ok, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected stored profile")
	}
	if loaded.FirstName != "Ayesha" {
		t.Fatalf("first name = %q, want trimmed %q", loaded.FirstName, "Ayesha")
	}
	if loaded.City != "Lahore" {
		t.Fatalf("city = %q", loaded.City)
	}
}

func TestLoadCorruptProfile(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	if err := kv.Set(ctx, StorageKey, []byte("][")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s := testStore(t, kv)
	if _, _, err := s.Load(ctx); !pkgerrors.HasCode(err, pkgerrors.CodePersistence) {
		t.Fatalf("expected PERSISTENCE_FAILURE, got %v", err)
	}
}
