// Cart HTTP handlers.
//
// This file exposes REST endpoints for the session cart:
//   - GET    /cart                      (current contents + total)
//   - POST   /cart/items               (add one unit, merging on product)
//   - PATCH  /cart/items/{id}          (adjust quantity by a delta)
//   - DELETE /cart/items/{id}          (remove a row)
//   - POST   /cart/clear               (request a clear; must be confirmed)
//   - POST   /cart/clear/confirm       (perform the pending clear)
//   - POST   /cart/clear/cancel        (abandon the pending clear)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Waldo881/Surf-Turf/internal/cart"
	"github.com/Waldo881/Surf-Turf/internal/domain"
)

//
// Service contracts (context-aware)
//

// CartService defines the cart operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CartService interface {
	// AddItem adds one unit of (name, variant) at unitPrice, merging with an
	// existing row for the same product.
	AddItem(ctx context.Context, name, variant string, unitPrice int) (domain.LineItem, error)
	// UpdateQuantity adjusts a row's quantity by delta; reaching zero removes it.
	UpdateQuantity(ctx context.Context, id int64, delta int) error
	// RemoveItem deletes a row outright.
	RemoveItem(ctx context.Context, id int64) error
	// RequestClear begins the two-step clear interaction.
	RequestClear() error
	// ConfirmClear performs a previously requested clear.
	ConfirmClear(ctx context.Context) error
	// CancelClear abandons a pending clear request.
	CancelClear()
	// Items returns a copy of the current rows.
	Items() []domain.LineItem
	// Total returns the running total.
	Total() int
}

//
// DTOs
//

// AddItemRequest is the JSON payload for adding an item to the cart.
type AddItemRequest struct {
	// Name is the menu item name.
	Name string `json:"name" binding:"required,min=1,max=255" example:"Cappuccino"`
	// Variant describes the chosen size/milk combination.
	Variant string `json:"variant" binding:"max=255" example:"Medium / Oat Milk"`
	// UnitPrice is the quoted price per unit, in whole currency units. Zero is
	// a valid price (promotional items).
	UnitPrice int `json:"unitPrice" binding:"min=0" example:"35"`
}

// UpdateQuantityRequest is the JSON payload for adjusting a row's quantity.
type UpdateQuantityRequest struct {
	// Delta is added to the current quantity; a result <= 0 removes the row.
	Delta int `json:"delta" binding:"required" example:"-1"`
}

// CartResponse is the cart contents plus the derived total.
type CartResponse struct {
	Items []domain.LineItem `json:"items"`
	Total int               `json:"total"`
}

//
// Handlers
//

// GetCart returns the current cart contents and total.
//
//	@Summary      Get cart
//	@Tags         cart
//	@Produce      json
//	@Success      200 {object} CartResponse
//	@Router       /cart [get]
func (h *Handlers) GetCart(c *gin.Context) {
	ok(c, http.StatusOK, CartResponse{Items: h.cartSvc.Items(), Total: h.cartSvc.Total()})
}

// AddCartItem adds one unit of an item, merging with an existing row when the
// same (name, variant) is already present.
//
//	@Summary      Add item to cart
//	@Tags         cart
//	@Accept       json
//	@Produce      json
//	@Param        body body AddItemRequest true "Item to add"
//	@Success      201 {object} CartResponse
//	@Failure      400 {object} ErrorResponse
//	@Router       /cart/items [post]
func (h *Handlers) AddCartItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if _, err := h.cartSvc.AddItem(c.Request.Context(), req.Name, req.Variant, req.UnitPrice); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not add item")
		return
	}
	ok(c, http.StatusCreated, CartResponse{Items: h.cartSvc.Items(), Total: h.cartSvc.Total()})
}

// UpdateCartItem adjusts a row's quantity by a signed delta. An unknown id is
// a no-op; a delta that brings the quantity to zero or below removes the row.
//
//	@Summary      Adjust item quantity
//	@Tags         cart
//	@Accept       json
//	@Produce      json
//	@Param        id   path int true "Line item id"
//	@Param        body body UpdateQuantityRequest true "Quantity delta"
//	@Success      200 {object} CartResponse
//	@Failure      400 {object} ErrorResponse
//	@Router       /cart/items/{id} [patch]
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid item id")
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if err := h.cartSvc.UpdateQuantity(c.Request.Context(), id, req.Delta); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update item")
		return
	}
	ok(c, http.StatusOK, CartResponse{Items: h.cartSvc.Items(), Total: h.cartSvc.Total()})
}

// RemoveCartItem deletes a row from the cart.
//
//	@Summary      Remove cart item
//	@Tags         cart
//	@Produce      json
//	@Param        id path int true "Line item id"
//	@Success      200 {object} CartResponse
//	@Failure      400 {object} ErrorResponse
//	@Router       /cart/items/{id} [delete]
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid item id")
		return
	}
	if err := h.cartSvc.RemoveItem(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not remove item")
		return
	}
	ok(c, http.StatusOK, CartResponse{Items: h.cartSvc.Items(), Total: h.cartSvc.Total()})
}

// RequestCartClear begins the two-step clear interaction. The cart stays
// intact until a confirm arrives.
//
//	@Summary      Request cart clear
//	@Tags         cart
//	@Produce      json
//	@Success      202 {object} map[string]string
//	@Failure      409 {object} ErrorResponse
//	@Router       /cart/clear [post]
func (h *Handlers) RequestCartClear(c *gin.Context) {
	if err := h.cartSvc.RequestClear(); err != nil {
		if errors.Is(err, cart.ErrCartEmpty) {
			fail(c, http.StatusConflict, ErrCodeCartEmpty, "cart is already empty")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not request clear")
		return
	}
	ok(c, http.StatusAccepted, gin.H{"status": "confirmation_required"})
}

// ConfirmCartClear performs a previously requested clear. A confirm without a
// pending request is rejected.
//
//	@Summary      Confirm cart clear
//	@Tags         cart
//	@Produce      json
//	@Success      200 {object} CartResponse
//	@Failure      409 {object} ErrorResponse
//	@Router       /cart/clear/confirm [post]
func (h *Handlers) ConfirmCartClear(c *gin.Context) {
	if err := h.cartSvc.ConfirmClear(c.Request.Context()); err != nil {
		if errors.Is(err, cart.ErrNoClearPending) {
			fail(c, http.StatusConflict, ErrCodeNoClearPending, "no clear request pending")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not clear cart")
		return
	}
	ok(c, http.StatusOK, CartResponse{Items: h.cartSvc.Items(), Total: h.cartSvc.Total()})
}

// CancelCartClear abandons a pending clear request. Safe to call at any time.
//
//	@Summary      Cancel cart clear
//	@Tags         cart
//	@Success      204
//	@Router       /cart/clear/cancel [post]
func (h *Handlers) CancelCartClear(c *gin.Context) {
	h.cartSvc.CancelClear()
	noContent(c)
}
