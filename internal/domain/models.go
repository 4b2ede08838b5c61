// Package domain defines the core data model of the ordering system: cart
// line items, immutable orders, the configuration records consumed by the
// notification dispatcher, and the admin session. JSON tags double as the
// persisted blob shape and the wire shape external recipients depend on.
package domain

import "time"

// LineItem is one cart row: a menu item at a specific variant (size plus
// milk choice) with a unit price and a quantity.
//
// Two LineItems merge on (Name, Variant); the ID only identifies a row within
// a single cart and is derived from the creation timestamp.
//
// Invariant: Quantity >= 1. A quantity change that would reach 0 removes the
// row instead.
type LineItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Variant   string `json:"variant"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// LineTotal returns UnitPrice * Quantity for this row.
func (li LineItem) LineTotal() int { return li.UnitPrice * li.Quantity }

// SameProduct reports whether another row refers to the same (name, variant)
// pair, i.e. whether the two rows should merge.
func (li LineItem) SameProduct(name, variant string) bool {
	return li.Name == name && li.Variant == variant
}

// Customer holds the contact details entered at checkout.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Delivery holds the delivery slot entered at checkout. Date is "YYYY-MM-DD",
// Time is free-form ("14:30"), Notes is optional.
type Delivery struct {
	Address string `json:"address"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`
}

// Payment records the selected method and its lifecycle status. Cash on
// delivery starts "pending"; the card path carries no real processing and is
// marked "unpaid" so the two stay distinguishable downstream.
type Payment struct {
	Method string `json:"method"` // "cash" or "card"
	Status string `json:"status"`
}

// Order is an immutable snapshot of a cart plus the customer, delivery, and
// payment details captured at submission time. Once appended to the order
// history it is never mutated, only read back by ID.
//
// The ID is "ST" + the submission timestamp in milliseconds; collisions are
// considered negligible at this scale.
type Order struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	Total     int        `json:"total"`
	Customer  Customer   `json:"customer"`
	Delivery  Delivery   `json:"delivery"`
	Payment   Payment    `json:"payment"`
	Timestamp time.Time  `json:"timestamp"`
	Status    string     `json:"status"` // "confirmed" once built
}

// EmailConfig configures the transactional-email channel (EmailJS-style
// API invoked with a service id, template id, and template params).
type EmailConfig struct {
	Enabled    bool   `json:"enabled"`
	PublicKey  string `json:"publicKey"`
	ServiceID  string `json:"serviceId"`
	TemplateID string `json:"templateId"`
	ShopEmail  string `json:"shopEmail"`
}

// WebhookConfig configures the webhook channel.
type WebhookConfig struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
	Method  string `json:"method"` // defaults to POST
}

// ShopConfig configures the phone-messaging fallback channel.
type ShopConfig struct {
	PhoneNumber     string `json:"phoneNumber"`
	WhatsAppEnabled bool   `json:"whatsappEnabled"`
	SMSEnabled      bool   `json:"smsEnabled"`
}

// AdminSession is the persisted single-operator session. It is valid for a
// fixed window from LoginTime, after which it must re-authenticate.
type AdminSession struct {
	LoggedIn  bool      `json:"loggedIn"`
	LoginTime time.Time `json:"loginTime"`
}

// EmailJob carries everything needed to (re)send one email: the channel
// parameters and the rendered template params. Jobs are self-contained so a
// backlog entry can be retried long after the originating order completed.
type EmailJob struct {
	ServiceID  string            `json:"serviceId"`
	TemplateID string            `json:"templateId"`
	Params     map[string]string `json:"params"`
}

// BacklogEntry is one email job that exhausted its immediate retries and is
// waiting in the durable backlog. Attempts counts sweep-time retries only;
// entries are dropped permanently once it reaches the configured ceiling.
type BacklogEntry struct {
	Job      EmailJob `json:"job"`
	Attempts int      `json:"attempts"`
}
