// Package settings manages the persisted channel configuration records:
// transactional email, webhook, and shop contact. Records are validated at
// save time with field-targeted errors; a failed save persists nothing.
// Loading tolerates absent or malformed blobs by returning documented
// defaults.
package settings

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/Waldo881/Surf-Turf/internal/config"
	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/store"
)

// Same loose shape checkout accepts for customer phones.
var phoneRE = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)

// ValidationError is a save-time configuration error pointing at a specific
// field.
type ValidationError struct {
	Field   string `json:"field"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Service loads and saves the configuration records. Defaults seeds records
// that have never been saved.
type Service struct {
	DB       *gorm.DB
	Defaults config.ShopDefaults
}

// NewService constructs a settings service.
func NewService(db *gorm.DB, defaults config.ShopDefaults) *Service {
	return &Service{DB: db, Defaults: defaults}
}

// Email returns the persisted email configuration, or a disabled default
// carrying the shop's default address when none has been saved.
func (s *Service) Email(ctx context.Context) (domain.EmailConfig, error) {
	cfg := domain.EmailConfig{ShopEmail: s.Defaults.Email}
	_, err := store.Load(ctx, s.DB, store.KeyEmailConfig, &cfg)
	return cfg, err
}

// SaveEmail validates and persists the email configuration. When the channel
// is enabled all of public key, service id, template id, and shop email are
// required; nothing is written when validation fails.
func (s *Service) SaveEmail(ctx context.Context, cfg domain.EmailConfig) error {
	cfg.PublicKey = strings.TrimSpace(cfg.PublicKey)
	cfg.ServiceID = strings.TrimSpace(cfg.ServiceID)
	cfg.TemplateID = strings.TrimSpace(cfg.TemplateID)
	cfg.ShopEmail = strings.TrimSpace(cfg.ShopEmail)

	if cfg.Enabled {
		if cfg.PublicKey == "" || cfg.ServiceID == "" || cfg.TemplateID == "" || cfg.ShopEmail == "" {
			return &ValidationError{
				Field:   "publicKey",
				Title:   "Configuration Required",
				Message: "Please fill in all email service fields and the shop email address.",
			}
		}
	}
	return store.Save(ctx, s.DB, store.KeyEmailConfig, cfg)
}

// Webhook returns the persisted webhook configuration, defaulting to a
// disabled POST hook.
func (s *Service) Webhook(ctx context.Context) (domain.WebhookConfig, error) {
	cfg := domain.WebhookConfig{Method: "POST"}
	_, err := store.Load(ctx, s.DB, store.KeyWebhookConfig, &cfg)
	if cfg.Method == "" {
		cfg.Method = "POST"
	}
	return cfg, err
}

// Shop returns the persisted shop-contact configuration, or the configured
// defaults with both messaging channels enabled.
func (s *Service) Shop(ctx context.Context) (domain.ShopConfig, error) {
	cfg := domain.ShopConfig{
		PhoneNumber:     s.Defaults.PhoneNumber,
		WhatsAppEnabled: true,
		SMSEnabled:      true,
	}
	_, err := store.Load(ctx, s.DB, store.KeyShopConfig, &cfg)
	return cfg, err
}

// SaveShop validates and persists the shop-contact and webhook records
// together, mirroring the single settings form they come from. Rules:
//   - an enabled webhook URL must parse as an absolute URL;
//   - without an enabled webhook a shop phone number is required;
//   - a provided phone number must look like a phone number.
//
// Nothing is written unless every check passes.
func (s *Service) SaveShop(ctx context.Context, shop domain.ShopConfig, hook domain.WebhookConfig) error {
	shop.PhoneNumber = strings.TrimSpace(shop.PhoneNumber)
	hook.URL = strings.TrimSpace(hook.URL)
	if hook.Method == "" {
		hook.Method = "POST"
	}

	if hook.Enabled && hook.URL != "" {
		u, err := url.Parse(hook.URL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return &ValidationError{
				Field:   "url",
				Title:   "Invalid Webhook URL",
				Message: "Please enter a valid webhook URL (e.g., https://hooks.example.com/...).",
			}
		}
	}

	if !hook.Enabled && shop.PhoneNumber == "" {
		return &ValidationError{
			Field:   "phoneNumber",
			Title:   "Phone Number Required",
			Message: "Please enter a shop phone number or enable webhook notifications.",
		}
	}

	if shop.PhoneNumber != "" && !phoneRE.MatchString(shop.PhoneNumber) {
		return &ValidationError{
			Field:   "phoneNumber",
			Title:   "Invalid Phone Number",
			Message: "Please enter a valid phone number with at least 10 digits.",
		}
	}

	if err := store.Save(ctx, s.DB, store.KeyShopConfig, shop); err != nil {
		return err
	}
	return store.Save(ctx, s.DB, store.KeyWebhookConfig, hook)
}
