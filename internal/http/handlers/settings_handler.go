// Notification settings HTTP handlers (admin-gated).
//
//   - GET/PUT /admin/settings/email  (transactional email channel)
//   - GET/PUT /admin/settings/shop   (shop profile: phone messaging + webhook)
//
// The shop profile and webhook configuration are edited together because they
// share one validation rule: without a webhook URL there must be a phone
// number for the messaging fallback.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/settings"
)

// ShopSettings bundles the shop profile and webhook channel as edited on the
// admin screen.
type ShopSettings struct {
	Shop    domain.ShopConfig    `json:"shop"`
	Webhook domain.WebhookConfig `json:"webhook"`
}

// GetEmailSettings returns the email channel configuration.
//
//	@Summary      Get email settings
//	@Tags         settings
//	@Produce      json
//	@Success      200 {object} domain.EmailConfig
//	@Failure      403 {object} ErrorResponse
//	@Router       /admin/settings/email [get]
func (h *Handlers) GetEmailSettings(c *gin.Context) {
	cfg, err := h.settingsSvc.Email(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load email settings")
		return
	}
	ok(c, http.StatusOK, cfg)
}

// PutEmailSettings replaces the email channel configuration. An enabled
// channel must carry complete credentials; nothing is persisted otherwise.
//
//	@Summary      Save email settings
//	@Tags         settings
//	@Accept       json
//	@Produce      json
//	@Param        body body domain.EmailConfig true "Email channel configuration"
//	@Success      204
//	@Failure      422 {object} ErrorResponse
//	@Router       /admin/settings/email [put]
func (h *Handlers) PutEmailSettings(c *gin.Context) {
	var cfg domain.EmailConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if err := h.settingsSvc.SaveEmail(c.Request.Context(), cfg); err != nil {
		var ve *settings.ValidationError
		if errors.As(err, &ve) {
			failField(c, http.StatusUnprocessableEntity, ErrCodeSettingsInvalid, ve.Message, ve.Field)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not save email settings")
		return
	}
	noContent(c)
}

// GetShopSettings returns the shop profile and webhook configuration.
//
//	@Summary      Get shop settings
//	@Tags         settings
//	@Produce      json
//	@Success      200 {object} ShopSettings
//	@Failure      403 {object} ErrorResponse
//	@Router       /admin/settings/shop [get]
func (h *Handlers) GetShopSettings(c *gin.Context) {
	ctx := c.Request.Context()
	shop, err := h.settingsSvc.Shop(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load shop settings")
		return
	}
	hook, err := h.settingsSvc.Webhook(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load shop settings")
		return
	}
	ok(c, http.StatusOK, ShopSettings{Shop: shop, Webhook: hook})
}

// PutShopSettings replaces the shop profile and webhook configuration
// together. Validation is all-or-nothing: a failure persists neither part.
//
//	@Summary      Save shop settings
//	@Tags         settings
//	@Accept       json
//	@Produce      json
//	@Param        body body ShopSettings true "Shop profile and webhook configuration"
//	@Success      204
//	@Failure      422 {object} ErrorResponse
//	@Router       /admin/settings/shop [put]
func (h *Handlers) PutShopSettings(c *gin.Context) {
	var req ShopSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if err := h.settingsSvc.SaveShop(c.Request.Context(), req.Shop, req.Webhook); err != nil {
		var ve *settings.ValidationError
		if errors.As(err, &ve) {
			failField(c, http.StatusUnprocessableEntity, ErrCodeSettingsInvalid, ve.Message, ve.Field)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not save shop settings")
		return
	}
	noContent(c)
}
