package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stylecart/storefront/internal/catalog"
	"github.com/stylecart/storefront/internal/notifications"
	"github.com/stylecart/storefront/pkg/enums"
	pkgerrors "github.com/stylecart/storefront/pkg/errors"
	"github.com/stylecart/storefront/pkg/kvstore"
	"github.com/stylecart/storefront/pkg/logger"
	"github.com/stylecart/storefront/pkg/metrics"
)

// StorageKey is where the whole cart is persisted on every mutation.
const StorageKey = "stylecart_cart"

type productResolver interface {
	FindByID(id int) (catalog.Product, bool)
}

// Store owns the session's cart: an insertion-ordered list of line items kept
// in lockstep with the persistent key/value store. Persistent state is the
// source of truth; memory is a cache refreshed by Load.
type Store struct {
	kv       kvstore.Store
	catalog  productResolver
	log      *logger.Logger
	notifier notifications.Notifier
	metrics  *metrics.StorefrontMetrics
	items    []LineItem
}

// StoreParams groups the cart store dependencies.
type StoreParams struct {
	KV       kvstore.Store
	Catalog  productResolver
	Logger   *logger.Logger
	Notifier notifications.Notifier
	Metrics  *metrics.StorefrontMetrics
}

// NewStore builds an empty cart store. Call Load to adopt persisted state.
func NewStore(params StoreParams) (*Store, error) {
	if params.KV == nil {
		return nil, fmt.Errorf("kv store required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	notifier := params.Notifier
	if notifier == nil {
		notifier = notifications.Nop{}
	}
	return &Store{
		kv:       params.KV,
		catalog:  params.Catalog,
		log:      params.Logger,
		notifier: notifier,
		metrics:  params.Metrics,
	}, nil
}

// Load replaces in-memory state with the persisted cart. A missing key leaves
// the cart empty; corrupt persisted data is surfaced, not silently dropped.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			s.items = nil
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "load cart")
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "decode cart")
	}
	s.items = items
	return nil
}

// AddItem increments the line for the product or appends a new one copied
// from the catalog. Unknown ids fail explicitly.
func (s *Store) AddItem(ctx context.Context, productID int) error {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeUnknownProduct, "product not found").WithDetails(map[string]int{"product_id": productID})
	}

	mutate := func() {
		for i := range s.items {
			if s.items[i].ProductID == productID {
				s.items[i].Quantity++
				return
			}
		}
		s.items = append(s.items, LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
		})
	}
	if err := s.apply(ctx, mutate); err != nil {
		return err
	}

	s.metrics.IncCartMutation("add")
	s.notifier.Notify(ctx, notifications.Signal{
		Message:  fmt.Sprintf("%s added to cart!", product.Name),
		Severity: enums.SeveritySuccess,
	})
	s.log.Debug(s.log.WithProductID(ctx, productID), "cart item added")
	return nil
}

// ChangeQuantity applies delta to the line's quantity; a result of zero or
// less removes the line. An unknown product id is a no-op by contract.
func (s *Store) ChangeQuantity(ctx context.Context, productID, delta int) error {
	idx := s.indexOf(productID)
	if idx < 0 {
		return nil
	}

	removed := false
	newQty := s.items[idx].Quantity + delta
	mutate := func() {
		if newQty <= 0 {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
			removed = true
			return
		}
		s.items[idx].Quantity = newQty
	}
	if err := s.apply(ctx, mutate); err != nil {
		return err
	}

	s.metrics.IncCartMutation("update")
	if removed {
		s.notifier.Notify(ctx, notifications.Signal{
			Message:  "Item removed from cart",
			Severity: enums.SeverityInfo,
		})
	} else {
		s.notifier.Notify(ctx, notifications.Signal{
			Message:  fmt.Sprintf("Quantity updated to %d", newQty),
			Severity: enums.SeveritySuccess,
		})
	}
	return nil
}

// RemoveItem drops the line if present; otherwise a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID int) error {
	idx := s.indexOf(productID)
	if idx < 0 {
		return nil
	}

	name := s.items[idx].Name
	mutate := func() {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	if err := s.apply(ctx, mutate); err != nil {
		return err
	}

	s.metrics.IncCartMutation("remove")
	s.notifier.Notify(ctx, notifications.Signal{
		Message:  fmt.Sprintf("%s removed from cart", name),
		Severity: enums.SeverityInfo,
	})
	return nil
}

// Clear empties the cart. Clearing an already empty cart is fine.
func (s *Store) Clear(ctx context.Context) error {
	if len(s.items) == 0 {
		s.notifier.Notify(ctx, notifications.Signal{
			Message:  "Cart is already empty",
			Severity: enums.SeverityInfo,
		})
		return nil
	}

	mutate := func() {
		s.items = nil
	}
	if err := s.apply(ctx, mutate); err != nil {
		return err
	}

	s.metrics.IncCartMutation("clear")
	s.notifier.Notify(ctx, notifications.Signal{
		Message:  "Cart cleared successfully",
		Severity: enums.SeveritySuccess,
	})
	return nil
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	return append([]LineItem(nil), s.items...)
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	return len(s.items)
}

// Count returns the total quantity across all lines, for badge display.
func (s *Store) Count() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// apply runs the mutation and persists the whole cart. When persisting fails
// the in-memory state is rolled back so memory never runs ahead of storage.
func (s *Store) apply(ctx context.Context, mutate func()) error {
	snapshot := append([]LineItem(nil), s.items...)
	mutate()

	raw, err := json.Marshal(s.items)
	if err != nil {
		s.items = snapshot
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		s.items = snapshot
		s.log.Error(ctx, "persisting cart failed", err)
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "persist cart")
	}
	return nil
}

func (s *Store) indexOf(productID int) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
