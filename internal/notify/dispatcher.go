// The dispatcher: fans a confirmed order out across the configured channels.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/settings"
)

// Dispatcher delivers confirmed orders to shop staff. Channel selection:
//
//   - email enabled: a customer receipt (when the customer left an email) and
//     a shop notification are sent concurrently and jointly awaited; one
//     failing never cancels the other, and each failed job lands in the
//     durable backlog via the sender.
//   - webhook enabled: the order payload is POSTed to the configured URL; a
//     failed delivery falls back to the messaging-link channel.
//   - neither: the messaging-link channel alone, when a shop phone is
//     configured.
//
// Nothing here blocks or fails the customer's order: every outcome is a log
// line and a metric.
type Dispatcher struct {
	Sender   *Sender
	Settings *settings.Service
	Shop     ShopIdentity

	// WebhookClient posts webhook payloads.
	WebhookClient *http.Client
}

// NewDispatcher constructs a dispatcher.
func NewDispatcher(sender *Sender, st *settings.Service, shop ShopIdentity, httpTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		Sender:        sender,
		Settings:      st,
		Shop:          shop,
		WebhookClient: &http.Client{Timeout: httpTimeout},
	}
}

// Dispatch delivers order across every enabled channel. It returns when all
// channels have settled.
func (d *Dispatcher) Dispatch(ctx context.Context, order domain.Order) {
	emailCfg, err := d.Settings.Email(ctx)
	if err != nil {
		log.Error().Err(err).Msg("loading email config for dispatch")
	}
	hookCfg, err := d.Settings.Webhook(ctx)
	if err != nil {
		log.Error().Err(err).Msg("loading webhook config for dispatch")
	}

	if emailCfg.Enabled {
		d.sendEmails(ctx, order, emailCfg)
	}

	switch {
	case hookCfg.Enabled && hookCfg.URL != "":
		if err := d.sendWebhook(ctx, order, hookCfg); err != nil {
			webhookDeliveries.WithLabelValues("failed").Inc()
			log.Warn().Err(err).Str("order_id", order.ID).Msg("webhook delivery failed, falling back to messaging link")
			d.sendMessagingLink(ctx, order)
		} else {
			webhookDeliveries.WithLabelValues("ok").Inc()
		}
	case !emailCfg.Enabled:
		d.sendMessagingLink(ctx, order)
	}
}

// sendEmails fans out the customer receipt and the shop notification
// concurrently and waits for both to settle.
func (d *Dispatcher) sendEmails(ctx context.Context, order domain.Order, cfg domain.EmailConfig) {
	var wg sync.WaitGroup

	if order.Customer.Email != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job := domain.EmailJob{
				ServiceID:  cfg.ServiceID,
				TemplateID: cfg.TemplateID,
				Params:     CustomerReceiptParams(order, d.Shop),
			}
			if err := d.Sender.SendWithRetry(ctx, job); err != nil {
				log.Warn().Err(err).Str("order_id", order.ID).Msg("customer receipt queued for retry")
				return
			}
			emailsSent.WithLabelValues("customer_receipt").Inc()
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		job := domain.EmailJob{
			ServiceID:  cfg.ServiceID,
			TemplateID: cfg.TemplateID,
			Params:     ShopNotificationParams(order, d.Shop, cfg.ShopEmail),
		}
		if err := d.Sender.SendWithRetry(ctx, job); err != nil {
			log.Warn().Err(err).Str("order_id", order.ID).Msg("shop notification queued for retry")
			return
		}
		emailsSent.WithLabelValues("shop_notification").Inc()
	}()

	wg.Wait()
}

// sendWebhook posts the order payload to the configured webhook URL. Any
// transport error or non-2xx status is a failed delivery.
func (d *Dispatcher) sendWebhook(ctx context.Context, order domain.Order, cfg domain.WebhookConfig) error {
	body, err := json.Marshal(BuildWebhookPayload(order, d.Shop))
	if err != nil {
		return err
	}
	method := cfg.Method
	if method == "" {
		method = http.MethodPost
	}
	req, err := http.NewRequestWithContext(ctx, method, cfg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.WebhookClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// sendMessagingLink composes the WhatsApp (preferred) or SMS link for the
// shop phone and surfaces it via the log; opening the composer is a client
// concern, the same boundary the storefront draws.
func (d *Dispatcher) sendMessagingLink(ctx context.Context, order domain.Order) {
	shopCfg, err := d.Settings.Shop(ctx)
	if err != nil {
		log.Error().Err(err).Msg("loading shop config for dispatch")
		return
	}
	if shopCfg.PhoneNumber == "" {
		log.Info().Str("order_id", order.ID).Msg("shop phone not configured, skipping messaging channel")
		return
	}

	msg := ShopMessage(order, d.Shop)
	switch {
	case shopCfg.WhatsAppEnabled:
		log.Info().
			Str("order_id", order.ID).
			Str("channel", "whatsapp").
			Str("link", WhatsAppLink(shopCfg.PhoneNumber, msg)).
			Msg("order forwarded to messaging channel")
	case shopCfg.SMSEnabled:
		log.Info().
			Str("order_id", order.ID).
			Str("channel", "sms").
			Str("link", SMSLink(shopCfg.PhoneNumber, msg)).
			Msg("order forwarded to messaging channel")
	default:
		log.Info().Str("order_id", order.ID).Msg("messaging channels disabled")
	}
}
