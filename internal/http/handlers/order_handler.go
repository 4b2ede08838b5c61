// Order HTTP handlers.
//
// This file exposes REST endpoints for order placement and history:
//   - POST /orders               (place; supports Idempotency-Key replays)
//   - GET  /orders               (list, paginated, newest first)
//   - GET  /orders/{id}          (fetch one)
//   - GET  /orders/{id}/receipt  (plain-text receipt)
//
// Placement consumes the session cart: validation failures leave the cart and
// history untouched, and a successful order empties the cart.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Waldo881/Surf-Turf/internal/cart"
	"github.com/Waldo881/Surf-Turf/internal/checkout"
	"github.com/Waldo881/Surf-Turf/internal/http/middleware"
	"github.com/Waldo881/Surf-Turf/internal/notify"
	"github.com/Waldo881/Surf-Turf/internal/orders"
	"github.com/Waldo881/Surf-Turf/internal/store"
)

// ListOrdersResponse wraps a page of orders and pagination information.
type ListOrdersResponse struct {
	Orders     []OrderSummary `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

// OrderSummary is the list-view projection of an order: enough to render a
// history row without the full item breakdown.
type OrderSummary struct {
	ID            string    `json:"id"`
	Total         int       `json:"total"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	CustomerName  string    `json:"customerName"`
	Timestamp     time.Time `json:"timestamp"`
}

// PlaceOrder validates the checkout form, snapshots the cart into an order,
// and dispatches notifications in the background.
//
// When the request carries an Idempotency-Key that matches a previously
// completed submission, the stored order is returned instead of placing a
// duplicate.
//
//	@Summary      Place an order
//	@Tags         orders
//	@Accept       json
//	@Produce      json
//	@Param        Idempotency-Key header string false "Client-generated key for safe retries"
//	@Param        body body checkout.Form true "Checkout form"
//	@Success      201 {object} domain.Order
//	@Failure      409 {object} ErrorResponse "cart is empty"
//	@Failure      422 {object} ErrorResponse "validation failed"
//	@Router       /orders [post]
func (h *Handlers) PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	// Serve a stored replay before touching the cart.
	if key, hasKey := middleware.GetIdempotencyKey(c); hasKey && middleware.IsReplay(c) {
		rec, err := store.GetIdempotency(ctx, h.db, uid, key, time.Now().UTC())
		if err == nil && rec != nil {
			if prev, gerr := orders.Get(ctx, h.db, rec.OrderID); gerr == nil {
				ok(c, rec.Status, prev)
				return
			}
		}
		// Fall through and place normally when the stored order is gone.
	}

	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}

	order, err := h.orderSvc.PlaceOrder(ctx, &form)
	if err != nil {
		var fe *checkout.FieldError
		switch {
		case errors.Is(err, cart.ErrCartEmpty):
			fail(c, http.StatusConflict, ErrCodeCartEmpty, "cart is empty")
		case errors.As(err, &fe):
			failField(c, http.StatusUnprocessableEntity, ErrCodeValidationFailed, fe.Message, fe.Field)
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not place order")
		}
		return
	}

	// Record the key so a retry of the same submission replays this order.
	if key, hasKey := middleware.GetIdempotencyKey(c); hasKey {
		if _, ierr := store.CreateIdempotency(ctx, h.db, uid, key, order.ID, http.StatusCreated, h.idemTTL); ierr != nil && !errors.Is(ierr, store.ErrDuplicate) {
			middleware.LoggerFrom(c).Warn().Err(ierr).Msg("persisting idempotency record")
		}
	}

	ok(c, http.StatusCreated, order)
}

// ListOrders returns the order history, newest first.
//
//	@Summary      List orders
//	@Tags         orders
//	@Produce      json
//	@Param        page      query int false "Page (1-based)"
//	@Param        page_size query int false "Page size (max 100)"
//	@Success      200 {object} ListOrdersResponse
//	@Router       /orders [get]
func (h *Handlers) ListOrders(c *gin.Context) {
	page, pageSize := clampPagination(c)

	list, total, err := orders.List(c.Request.Context(), h.db, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list orders")
		return
	}

	summaries := make([]OrderSummary, 0, len(list))
	for _, o := range list {
		summaries = append(summaries, OrderSummary{
			ID:            o.ID,
			Total:         o.Total,
			Status:        o.Status,
			PaymentMethod: o.Payment.Method,
			CustomerName:  o.Customer.Name,
			Timestamp:     o.Timestamp,
		})
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListOrdersResponse{
		Orders: summaries,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetOrder returns a single order by id.
//
//	@Summary      Get order
//	@Tags         orders
//	@Produce      json
//	@Param        id path string true "Order id"
//	@Success      200 {object} domain.Order
//	@Failure      404 {object} ErrorResponse
//	@Router       /orders/{id} [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	order, err := orders.Get(c.Request.Context(), h.db, c.Param("id"))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load order")
		return
	}
	ok(c, http.StatusOK, order)
}

// GetOrderReceipt returns a plain-text receipt for an order, in the same
// shape the notification channels send.
//
//	@Summary      Get order receipt
//	@Tags         orders
//	@Produce      plain
//	@Param        id path string true "Order id"
//	@Success      200 {string} string
//	@Failure      404 {object} ErrorResponse
//	@Router       /orders/{id}/receipt [get]
func (h *Handlers) GetOrderReceipt(c *gin.Context) {
	ctx := c.Request.Context()
	order, err := orders.Get(ctx, h.db, c.Param("id"))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load order")
		return
	}

	identity := notify.ShopIdentity{
		Name:    h.shop.Name,
		Phone:   h.shop.PhoneNumber,
		Address: h.shop.Address,
		Email:   h.shop.Email,
	}
	// A saved shop profile overrides the configured default phone.
	if shop, serr := h.settingsSvc.Shop(ctx); serr == nil && shop.PhoneNumber != "" {
		identity.Phone = shop.PhoneNumber
	}

	c.String(http.StatusOK, notify.ShopMessage(*order, identity))
}
