// Rendering of order payloads: the template params the email channel fills
// in, the JSON body webhooks receive, the plain-text shop receipt, and the
// WhatsApp/SMS composer links. This shape is the contract external recipients
// depend on.
package notify

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Waldo881/Surf-Turf/internal/domain"
)

// money formats currency-integer amounts with grouping (R1,250).
var money = message.NewPrinter(language.English)

var nonDigitsRE = regexp.MustCompile(`[^0-9]`)

// ShopIdentity names the shop in rendered messages and receipts.
type ShopIdentity struct {
	Name    string
	Phone   string
	Address string
	Email   string
}

// WebhookItem is one itemized line in the webhook payload.
type WebhookItem struct {
	Name      string `json:"name"`
	Variant   string `json:"variant"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unitPrice"`
	Total     int    `json:"total"`
}

// WebhookPayload is the JSON body delivered to the configured webhook.
type WebhookPayload struct {
	OrderID       string          `json:"orderId"`
	Timestamp     string          `json:"timestamp"`
	Customer      domain.Customer `json:"customer"`
	Delivery      domain.Delivery `json:"delivery"`
	Items         []WebhookItem   `json:"items"`
	Total         int             `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Message       string          `json:"message"`
}

// BuildWebhookPayload flattens an order into the webhook wire shape.
func BuildWebhookPayload(order domain.Order, shop ShopIdentity) WebhookPayload {
	items := make([]WebhookItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, WebhookItem{
			Name:      it.Name,
			Variant:   it.Variant,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.LineTotal(),
		})
	}
	return WebhookPayload{
		OrderID:       order.ID,
		Timestamp:     order.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		Customer:      order.Customer,
		Delivery:      order.Delivery,
		Items:         items,
		Total:         order.Total,
		PaymentMethod: order.Payment.Method,
		Message:       ShopMessage(order, shop),
	}
}

// ShopMessage renders the plain-text order summary sent to shop staff via
// the messaging channels and embedded in webhook payloads.
func ShopMessage(order domain.Order, shop ShopIdentity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NEW ORDER RECEIVED!\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "Time: %s\n\n", order.Timestamp.Format("Monday, 2 January 2006 15:04"))
	fmt.Fprintf(&b, "CUSTOMER DETAILS:\nName: %s\nPhone: %s\n\n", order.Customer.Name, order.Customer.Phone)
	fmt.Fprintf(&b, "DELIVERY INFORMATION:\nAddress: %s\nDate: %s\nTime: %s\nNotes: %s\n\n",
		order.Delivery.Address, order.Delivery.Date, order.Delivery.Time, orDefault(order.Delivery.Notes, "None"))
	fmt.Fprintf(&b, "ORDER ITEMS:\n%s\n\n", itemLines(order.Items, true))
	fmt.Fprintf(&b, "TOTAL: %s\n", money.Sprintf("R%d", order.Total))
	fmt.Fprintf(&b, "Payment: %s\n\n---\nSent from %s", PaymentLabel(order.Payment.Method), shop.Name)
	return b.String()
}

// CustomerReceiptParams renders the template params for the customer's
// receipt email.
func CustomerReceiptParams(order domain.Order, shop ShopIdentity) map[string]string {
	return map[string]string{
		"customer_email":   order.Customer.Email,
		"customer_name":    order.Customer.Name,
		"order_id":         order.ID,
		"order_date":       order.Timestamp.Format("Monday, 2 January 2006 15:04"),
		"delivery_date":    order.Delivery.Date,
		"delivery_time":    order.Delivery.Time,
		"delivery_address": order.Delivery.Address,
		"order_details":    itemLines(order.Items, false),
		"total":            money.Sprintf("%d", order.Total),
		"payment_method":   PaymentLabel(order.Payment.Method),
		"shop_name":        shop.Name,
		"shop_phone":       shop.Phone,
		"shop_address":     shop.Address,
	}
}

// ShopNotificationParams renders the template params for the staff
// notification email, addressed to the shop inbox.
func ShopNotificationParams(order domain.Order, shop ShopIdentity, shopEmail string) map[string]string {
	return map[string]string{
		"customer_email":   shopEmail,
		"customer_name":    shop.Name + " Team",
		"order_id":         order.ID,
		"order_date":       order.Timestamp.Format("Monday, 2 January 2006 15:04"),
		"delivery_date":    order.Delivery.Date,
		"delivery_time":    order.Delivery.Time,
		"delivery_address": order.Delivery.Address,
		"order_details":    ShopMessage(order, shop),
		"total":            money.Sprintf("%d", order.Total),
		"payment_method":   PaymentLabel(order.Payment.Method),
		"shop_name":        shop.Name,
		"shop_phone":       shop.Phone,
		"shop_address":     shop.Address,
	}
}

// PaymentLabel maps a payment method to its display label.
func PaymentLabel(method string) string {
	if method == "card" {
		return "Card Payment"
	}
	return "Cash on Delivery"
}

// WhatsAppLink builds a wa.me composer URL for the given phone and message.
func WhatsAppLink(phone, msg string) string {
	return "https://wa.me/" + digitsOnly(phone) + "?text=" + url.QueryEscape(msg)
}

// SMSLink builds an sms: composer URI for the given phone and message.
func SMSLink(phone, msg string) string {
	return "sms:" + digitsOnly(phone) + "?body=" + url.QueryEscape(msg)
}

func digitsOnly(phone string) string {
	return nonDigitsRE.ReplaceAllString(phone, "")
}

func itemLines(items []domain.LineItem, numbered bool) string {
	lines := make([]string, 0, len(items))
	for i, it := range items {
		prefix := ""
		if numbered {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		lines = append(lines, fmt.Sprintf("%s%s (%s) x%d - R%d", prefix, it.Name, it.Variant, it.Quantity, it.LineTotal()))
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
