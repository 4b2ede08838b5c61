package handlers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Waldo881/Surf-Turf/internal/checkout"
	"github.com/Waldo881/Surf-Turf/internal/config"
	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/utils"

	"github.com/gin-gonic/gin"
	"strings"
)

// OrderService defines order placement as consumed by HTTP handlers.
type OrderService interface {
	// PlaceOrder validates the form, snapshots the cart into an order,
	// persists it, and triggers notification dispatch.
	PlaceOrder(ctx context.Context, form *checkout.Form) (*domain.Order, error)
}

// SettingsService defines the admin-gated notification settings operations.
type SettingsService interface {
	Email(ctx context.Context) (domain.EmailConfig, error)
	SaveEmail(ctx context.Context, cfg domain.EmailConfig) error
	Webhook(ctx context.Context) (domain.WebhookConfig, error)
	Shop(ctx context.Context) (domain.ShopConfig, error)
	SaveShop(ctx context.Context, shop domain.ShopConfig, hook domain.WebhookConfig) error
}

// AdminService defines the single-operator session operations.
type AdminService interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) (bool, error)
}

// Handlers groups the HTTP endpoints for cart, orders, pricing, settings, and
// the admin session. It depends on abstract service interfaces to keep
// transport concerns separate from business logic. The *gorm.DB is used only
// for read-side order history and idempotency records.
type Handlers struct {
	cartSvc     CartService
	orderSvc    OrderService
	settingsSvc SettingsService
	adminSvc    AdminService

	db       *gorm.DB
	shop     config.ShopDefaults
	idemTTL  time.Duration
	quoteFor QuoteFunc
}

// New constructs a Handlers instance bound to the given services.
func New(cartSvc CartService, orderSvc OrderService, settingsSvc SettingsService, adminSvc AdminService, db *gorm.DB, shop config.ShopDefaults, quote QuoteFunc) *Handlers {
	return &Handlers{
		cartSvc:     cartSvc,
		orderSvc:    orderSvc,
		settingsSvc: settingsSvc,
		adminSvc:    adminSvc,
		db:          db,
		shop:        shop,
		idemTTL:     24 * time.Hour,
		quoteFor:    quote,
	}
}

// userID extracts the caller id from Gin context (set by upstream middleware).
// If absent, it falls back to the "X-User-ID" header (tests use it), and
// finally to "guest". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "guest"
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	return utils.ClampPage(page, pageSize, maxPageSize)
}
