package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/stylecart/storefront/internal/cart"
	"github.com/stylecart/storefront/internal/notifications"
	"github.com/stylecart/storefront/internal/orders"
	"github.com/stylecart/storefront/internal/pricing"
	"github.com/stylecart/storefront/pkg/enums"
	pkgerrors "github.com/stylecart/storefront/pkg/errors"
	"github.com/stylecart/storefront/pkg/logger"
	"github.com/stylecart/storefront/pkg/metrics"
	"github.com/stylecart/storefront/pkg/types"
)

// State tracks where the current checkout attempt stands.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateInvalid    State = "invalid"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

type cartStore interface {
	Items() []cart.LineItem
	Clear(ctx context.Context) error
}

type orderLog interface {
	Append(ctx context.Context, order orders.Order) error
}

type profileStore interface {
	Save(ctx context.Context, info types.CustomerInfo) error
}

// Service turns a validated cart and form into a recorded order. A submit
// validates, quotes, records the order, then clears the cart; the order log
// write happens before the cart is touched, so a recorded order is never
// lost to a later failure.
type Service interface {
	Submit(ctx context.Context, info types.CustomerInfo) (orders.Order, error)
	State() State
}

type service struct {
	cart      cartStore
	calc      *pricing.Calculator
	orders    orderLog
	profile   profileStore
	validator *Validator
	log       *logger.Logger
	notifier  notifications.Notifier
	metrics   *metrics.StorefrontMetrics
	state     State
	now       func() time.Time
	newID     func() string
}

// ServiceParams groups the checkout service dependencies.
type ServiceParams struct {
	Cart     cartStore
	Calc     *pricing.Calculator
	Orders   orderLog
	Profile  profileStore
	Logger   *logger.Logger
	Notifier notifications.Notifier
	Metrics  *metrics.StorefrontMetrics
}

func NewService(params ServiceParams) (Service, error) {
	if params.Cart == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if params.Calc == nil {
		return nil, fmt.Errorf("calculator required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order log required")
	}
	if params.Profile == nil {
		return nil, fmt.Errorf("profile store required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	notifier := params.Notifier
	if notifier == nil {
		notifier = notifications.Nop{}
	}
	return &service{
		cart:      params.Cart,
		calc:      params.Calc,
		orders:    params.Orders,
		profile:   params.Profile,
		validator: NewValidator(),
		log:       params.Logger,
		notifier:  notifier,
		metrics:   params.Metrics,
		state:     StateIdle,
		now:       time.Now,
		newID:     orders.NewID,
	}, nil
}

func (s *service) State() State {
	return s.state
}

// Submit runs one checkout attempt. The empty-cart check comes before any
// field validation. When clearing the cart fails after the order is
// recorded, the recorded order is returned alongside the error.
func (s *service) Submit(ctx context.Context, info types.CustomerInfo) (orders.Order, error) {
	s.state = StateValidating

	items := s.cart.Items()
	if len(items) == 0 {
		s.state = StateInvalid
		err := pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty")
		s.notifier.Notify(ctx, notifications.Signal{
			Message:  "Your cart is empty!",
			Severity: enums.SeverityError,
		})
		return orders.Order{}, err
	}

	if err := s.validator.Validate(info); err != nil {
		s.state = StateInvalid
		s.notifier.Notify(ctx, notifications.Signal{
			Message:  "Please fix the highlighted fields",
			Severity: enums.SeverityError,
		})
		return orders.Order{}, err
	}

	s.state = StateSubmitting
	totals := s.calc.Quote(items).Rounded()
	order := orders.Order{
		ID:            s.newID(),
		CreatedAt:     s.now().UTC(),
		Items:         items,
		Subtotal:      totals.Subtotal,
		Shipping:      totals.Shipping,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Customer:      info.Trimmed(),
		Status:        enums.OrderStatusProcessing,
		PaymentStatus: enums.PaymentStatusPending,
	}

	ctx = s.log.WithOrderID(ctx, order.ID)
	if err := s.orders.Append(ctx, order); err != nil {
		s.state = StateFailed
		s.notifier.Notify(ctx, notifications.Signal{
			Message:  "Something went wrong placing your order",
			Severity: enums.SeverityError,
		})
		return orders.Order{}, err
	}

	s.metrics.IncOrderPlaced()
	s.metrics.ObserveOrderValue(order.Total)

	if err := s.cart.Clear(ctx); err != nil {
		// The order stands; only the cart reset failed.
		s.state = StateSucceeded
		s.log.Error(ctx, "clearing cart after checkout failed", err)
		return order, err
	}

	if err := s.profile.Save(ctx, info); err != nil {
		// Prefill data is a convenience, never worth failing the order.
		s.log.Error(ctx, "saving customer profile failed", err)
	}

	s.state = StateSucceeded
	s.log.Info(ctx, "checkout completed")
	s.notifier.Notify(ctx, notifications.Signal{
		Message:  fmt.Sprintf("Order %s placed successfully!", order.ID),
		Severity: enums.SeveritySuccess,
	})
	return order, nil
}
