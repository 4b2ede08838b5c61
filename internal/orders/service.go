// Package orders owns the order history and the place-order orchestration.
// This file implements OrderService, the component that turns a cart plus a
// checkout form into a confirmed order: validate, freeze the snapshot, append
// it to history, clear the cart, and hand the order to the notification
// dispatcher without making the customer wait on delivery.
package orders

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Waldo881/Surf-Turf/internal/cart"
	"github.com/Waldo881/Surf-Turf/internal/checkout"
	"github.com/Waldo881/Surf-Turf/internal/domain"
)

// ordersPlaced counts successfully confirmed orders.
var ordersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "orders_placed_total",
	Help: "Total number of confirmed orders.",
})

func init() {
	prometheus.MustRegister(ordersPlaced)
}

// Dispatcher delivers a confirmed order to the shop. Implementations must be
// safe for concurrent use; delivery failures are theirs to absorb.
type Dispatcher interface {
	Dispatch(ctx context.Context, order domain.Order)
}

// Service coordinates checkout, history, and notification dispatch.
type Service struct {
	DB         *gorm.DB
	Cart       *cart.Service
	Dispatcher Dispatcher

	// DispatchTimeout bounds the background notification run.
	DispatchTimeout time.Duration

	// Now stands in for time.Now in tests.
	Now func() time.Time
}

// NewService constructs an order service with sane defaults.
func NewService(db *gorm.DB, c *cart.Service, d Dispatcher) *Service {
	return &Service{
		DB:              db,
		Cart:            c,
		Dispatcher:      d,
		DispatchTimeout: 5 * time.Minute,
		Now:             time.Now,
	}
}

// PlaceOrder validates the form against the current cart and, on success,
// builds the immutable order, appends it to history, empties the cart, and
// triggers notification dispatch in the background.
//
// An empty cart is rejected with cart.ErrCartEmpty before any validation; no
// order is built and history is untouched. Validation failures return a
// *checkout.FieldError and leave all state untouched. The customer-facing
// result never depends on notification delivery.
func (s *Service) PlaceOrder(ctx context.Context, form *checkout.Form) (*domain.Order, error) {
	items := s.Cart.Items()
	if len(items) == 0 {
		return nil, cart.ErrCartEmpty
	}

	now := s.Now()
	if ferr := checkout.Validate(form, now); ferr != nil {
		return nil, ferr
	}

	// Total is summed over the snapshot taken above, not read from the cart
	// again; a concurrent cart mutation must not split the order's total from
	// its items.
	total := 0
	for _, it := range items {
		total += it.LineTotal()
	}
	order := checkout.Build(form, items, total, now)

	if err := Append(ctx, s.DB, order); err != nil {
		return nil, err
	}
	if err := s.Cart.Empty(ctx); err != nil {
		// The order is already confirmed; a failed cart write must not
		// unconfirm it. Log and move on.
		log.Error().Err(err).Str("order_id", order.ID).Msg("clearing cart after order failed")
	}

	ordersPlaced.Inc()
	log.Info().
		Str("order_id", order.ID).
		Int("total", order.Total).
		Int("items", len(order.Items)).
		Msg("order placed")

	if s.Dispatcher != nil {
		go s.dispatch(order)
	}

	return &order, nil
}

// dispatch runs the notification fan-out detached from the request, with its
// own timeout and panic guard.
func (s *Service) dispatch(order domain.Order) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("order_id", order.ID).Msg("notification dispatch panicked")
		}
	}()
	timeout := s.DispatchTimeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.Dispatcher.Dispatch(ctx, order)
}
