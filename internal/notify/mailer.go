// Package notify implements best-effort delivery of confirmed orders to shop
// staff across three channels: transactional email (an EmailJS-style REST
// API), a configurable webhook, and WhatsApp/SMS message links. Email
// attempts use bounded retry with exponential backoff and spill into a
// durable backlog that a periodic sweep drains.
//
// A delivery failure is never the customer's problem: by the time dispatch
// runs the order is already confirmed, so every failure here ends in a log
// line and a metric, not an error response.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/settings"
)

// Mailer sends one rendered email job. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, job domain.EmailJob) error
}

// EmailJSMailer delivers jobs through the EmailJS REST API: a POST carrying
// the account public key, the service and template ids, and the template
// params. Any non-2xx response is a failed attempt.
type EmailJSMailer struct {
	Endpoint string
	Client   *http.Client
	Settings *settings.Service
}

// NewEmailJSMailer constructs a mailer for the given endpoint. The public key
// is read from the saved email configuration at send time, so a key rotation
// applies to queued jobs too.
func NewEmailJSMailer(endpoint string, timeout time.Duration, st *settings.Service) *EmailJSMailer {
	return &EmailJSMailer{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
		Settings: st,
	}
}

// emailJSRequest is the wire shape of an EmailJS send call.
type emailJSRequest struct {
	UserID         string            `json:"user_id"`
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send implements Mailer.
func (m *EmailJSMailer) Send(ctx context.Context, job domain.EmailJob) error {
	cfg, err := m.Settings.Email(ctx)
	if err != nil {
		return err
	}
	if cfg.PublicKey == "" {
		return fmt.Errorf("email channel has no public key configured")
	}

	body, err := json.Marshal(emailJSRequest{
		UserID:         cfg.PublicKey,
		ServiceID:      job.ServiceID,
		TemplateID:     job.TemplateID,
		TemplateParams: job.Params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email send failed: status %d", resp.StatusCode)
	}
	return nil
}
