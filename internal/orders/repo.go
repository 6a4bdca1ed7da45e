package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pkgerrors "github.com/stylecart/storefront/pkg/errors"
	"github.com/stylecart/storefront/pkg/kvstore"
	"github.com/stylecart/storefront/pkg/logger"
)

// StorageKey holds the full order history as a JSON array.
const StorageKey = "stylecart_orders"

// Log is the append-only order history persisted in the key/value store.
// Appends read the current history, add the new order, and write the whole
// array back, so the stored value is always a complete valid log.
type Log struct {
	kv  kvstore.Store
	log *logger.Logger
}

func NewLog(kv kvstore.Store, log *logger.Logger) (*Log, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv store required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Log{kv: kv, log: log}, nil
}

// List returns every recorded order in append order. A missing key means no
// orders yet, which is not an error.
func (l *Log) List(ctx context.Context) ([]Order, error) {
	raw, err := l.kv.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "load order log")
	}

	var history []Order
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "decode order log")
	}
	return history, nil
}

// Append records the order at the end of the log.
func (l *Log) Append(ctx context.Context, order Order) error {
	history, err := l.List(ctx)
	if err != nil {
		return err
	}
	history = append(history, order)

	raw, err := json.Marshal(history)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode order log")
	}
	if err := l.kv.Set(ctx, StorageKey, raw); err != nil {
		l.log.Error(l.log.WithOrderID(ctx, order.ID), "persisting order failed", err)
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "persist order log")
	}

	l.log.Info(l.log.WithOrderID(ctx, order.ID), "order recorded")
	return nil
}

// Find returns the order with the given id, if recorded.
func (l *Log) Find(ctx context.Context, id string) (Order, error) {
	history, err := l.List(ctx)
	if err != nil {
		return Order{}, err
	}
	for _, order := range history {
		if order.ID == id {
			return order, nil
		}
	}
	return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found").WithDetails(map[string]string{"order_id": id})
}
