package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pkgerrors "github.com/stylecart/storefront/pkg/errors"
	"github.com/stylecart/storefront/pkg/kvstore"
	"github.com/stylecart/storefront/pkg/logger"
	"github.com/stylecart/storefront/pkg/types"
)

// StorageKey holds the most recent checkout contact details, used to prefill
// the next checkout.
const StorageKey = "stylecart_user"

// Store persists the customer profile in the key/value store.
type Store struct {
	kv  kvstore.Store
	log *logger.Logger
}

func NewStore(kv kvstore.Store, log *logger.Logger) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv store required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Store{kv: kv, log: log}, nil
}

// Load returns the saved profile. The second return reports whether a
// profile exists; a missing key is not an error.
func (s *Store) Load(ctx context.Context) (types.CustomerInfo, bool, error) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return types.CustomerInfo{}, false, nil
		}
		return types.CustomerInfo{}, false, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "load profile")
	}

	var info types.CustomerInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return types.CustomerInfo{}, false, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "decode profile")
	}
	return info, true, nil
}

// Save overwrites the stored profile with the given details.
func (s *Store) Save(ctx context.Context, info types.CustomerInfo) error {
	raw, err := json.Marshal(info.Trimmed())
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode profile")
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		s.log.Error(ctx, "persisting profile failed", err)
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "persist profile")
	}
	return nil
}
