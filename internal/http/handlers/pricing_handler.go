// Pricing HTTP handler.
//
// Exposes GET /pricing/quote, which resolves the size/milk add-on for a menu
// item so clients can display the final unit price before adding to cart.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Waldo881/Surf-Turf/internal/utils"
)

// QuoteFunc resolves a final unit price from a base price and the chosen
// size/milk combination.
type QuoteFunc func(basePrice int, itemName, size, milk string) int

// QuoteResponse is the resolved price breakdown for one item configuration.
type QuoteResponse struct {
	Item      string `json:"item"`
	Size      string `json:"size"`
	Milk      string `json:"milk"`
	BasePrice int    `json:"basePrice"`
	AddOn     int    `json:"addOn"`
	UnitPrice int    `json:"unitPrice"`
}

// QuotePrice resolves the unit price for an item configuration.
//
//	@Summary      Quote a unit price
//	@Tags         pricing
//	@Produce      json
//	@Param        item query string true  "Menu item name"
//	@Param        base query int    true  "Base price"
//	@Param        size query string false "Size (small/medium/large)"
//	@Param        milk query string false "Milk choice"
//	@Success      200 {object} QuoteResponse
//	@Failure      400 {object} ErrorResponse
//	@Router       /pricing/quote [get]
func (h *Handlers) QuotePrice(c *gin.Context) {
	item := c.Query("item")
	if item == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "item is required")
		return
	}
	base := utils.AtoiDefault(c.Query("base"), -1)
	if base < 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "base must be a non-negative integer")
		return
	}
	size := c.Query("size")
	milk := c.Query("milk")

	unit := h.quoteFor(base, item, size, milk)
	ok(c, http.StatusOK, QuoteResponse{
		Item:      item,
		Size:      size,
		Milk:      milk,
		BasePrice: base,
		AddOn:     unit - base,
		UnitPrice: unit,
	})
}
