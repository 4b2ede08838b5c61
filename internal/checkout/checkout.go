// Package checkout validates the checkout form and builds immutable orders.
//
// Validation runs as a short-circuiting pipeline: required fields in a fixed
// order, then phone shape, then email shape, then delivery date. The first
// failure is returned as a FieldError that names the offending field; nothing
// is persisted on a failed validation and the form can simply be resubmitted.
package checkout

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Waldo881/Surf-Turf/internal/domain"
)

// Payment methods accepted at checkout. Cash on delivery is the primary path;
// card orders are accepted but carry no processing, so their payment status
// is recorded as unpaid.
const (
	PaymentCash = "cash"
	PaymentCard = "card"

	statusPending = "pending"
	statusUnpaid  = "unpaid"

	orderIDPrefix   = "ST"
	statusConfirmed = "confirmed"
)

var (
	// At least 10 digits, optional leading +, spaces/parens/hyphens allowed.
	phoneRE = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)
	// Loose local@domain.tld shape.
	emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// FieldError is a recoverable user-input error pointing at a specific form
// field. Title and Message are short, human-readable, and safe to display.
type FieldError struct {
	Field   string `json:"field"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Form carries the customer-entered checkout fields. Date is "YYYY-MM-DD".
type Form struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod"`
}

// requiredFields fixes the validation order; the first missing field wins.
var requiredFields = []struct {
	name  string
	value func(*Form) string
	title string
	msg   string
}{
	{"name", func(f *Form) string { return f.Name },
		"What's Your Name?",
		"We'd love to know your name so your order gets to the right person."},
	{"phone", func(f *Form) string { return f.Phone },
		"Phone Number Needed",
		"Your phone number helps us contact you about your order and delivery."},
	{"email", func(f *Form) string { return f.Email },
		"Email Address Needed",
		"We'll send your receipt and order confirmation by email."},
	{"address", func(f *Form) string { return f.Address },
		"Where Should We Deliver?",
		"Please provide your complete delivery address."},
	{"date", func(f *Form) string { return f.Date },
		"When Would You Like It?",
		"Please select a delivery date."},
	{"time", func(f *Form) string { return f.Time },
		"What Time Works Best?",
		"Please choose a convenient delivery time."},
}

// Validate checks the form against the required-field list and format rules.
// It returns nil when the form is acceptable, or the first *FieldError
// encountered. Same-day delivery is allowed; dates strictly before today (in
// now's location) are rejected.
func Validate(f *Form, now time.Time) *FieldError {
	for _, rf := range requiredFields {
		if strings.TrimSpace(rf.value(f)) == "" {
			return &FieldError{Field: rf.name, Title: rf.title, Message: rf.msg}
		}
	}

	if !phoneRE.MatchString(strings.TrimSpace(f.Phone)) {
		return &FieldError{
			Field:   "phone",
			Title:   "Invalid Phone Number",
			Message: "Please enter a valid phone number with at least 10 digits.",
		}
	}

	if !emailRE.MatchString(strings.TrimSpace(f.Email)) {
		return &FieldError{
			Field:   "email",
			Title:   "Invalid Email Address",
			Message: "Please enter a valid email address for your order confirmation.",
		}
	}

	day, err := time.ParseInLocation("2006-01-02", f.Date, now.Location())
	if err != nil {
		return &FieldError{
			Field:   "date",
			Title:   "Invalid Delivery Date",
			Message: "Please enter the delivery date as YYYY-MM-DD.",
		}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return &FieldError{
			Field:   "date",
			Title:   "Invalid Delivery Date",
			Message: "Please select today or a future date for your delivery.",
		}
	}

	return nil
}

// Build assembles an immutable Order from a validated form and the cart rows
// at submission time. The items slice is deep-copied so later cart mutations
// cannot reach into the order.
func Build(f *Form, items []domain.LineItem, total int, now time.Time) domain.Order {
	snapshot := make([]domain.LineItem, len(items))
	copy(snapshot, items)

	method := strings.ToLower(strings.TrimSpace(f.PaymentMethod))
	if method != PaymentCard {
		method = PaymentCash
	}
	status := statusPending
	if method == PaymentCard {
		status = statusUnpaid
	}

	return domain.Order{
		ID:    orderIDPrefix + fmt.Sprintf("%d", now.UnixMilli()),
		Items: snapshot,
		Total: total,
		Customer: domain.Customer{
			Name:  strings.TrimSpace(f.Name),
			Phone: strings.TrimSpace(f.Phone),
			Email: strings.TrimSpace(f.Email),
		},
		Delivery: domain.Delivery{
			Address: strings.TrimSpace(f.Address),
			Date:    f.Date,
			Time:    f.Time,
			Notes:   strings.TrimSpace(f.Notes),
		},
		Payment:   domain.Payment{Method: method, Status: status},
		Timestamp: now.UTC(),
		Status:    statusConfirmed,
	}
}
