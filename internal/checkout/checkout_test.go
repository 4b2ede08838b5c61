package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/Waldo881/Surf-Turf/internal/domain"
)

func validForm() *Form {
	return &Form{
		Name:          "Thandi M",
		Phone:         "+27 82 123 4567",
		Email:         "thandi@example.com",
		Address:       "12 Beach Rd, Muizenberg",
		Date:          "2026-09-01",
		Time:          "14:30",
		PaymentMethod: "cash",
	}
}

func testNow() time.Time {
	return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
}

func TestValidate_RequiredFieldOrder(t *testing.T) {
	// When multiple fields are missing, the first in the fixed order wins.
	cases := []struct {
		mutate func(*Form)
		field  string
	}{
		{func(f *Form) { f.Name = "" }, "name"},
		{func(f *Form) { f.Phone = "  " }, "phone"},
		{func(f *Form) { f.Email = "" }, "email"},
		{func(f *Form) { f.Address = "" }, "address"},
		{func(f *Form) { f.Date = "" }, "date"},
		{func(f *Form) { f.Time = "" }, "time"},
	}
	for _, tc := range cases {
		f := validForm()
		tc.mutate(f)
		fe := Validate(f, testNow())
		if fe == nil {
			t.Fatalf("expected error for missing %s", tc.field)
		}
		if fe.Field != tc.field {
			t.Errorf("missing %s: got field %q", tc.field, fe.Field)
		}
		if fe.Title == "" || fe.Message == "" {
			t.Errorf("missing %s: expected friendly title and message", tc.field)
		}
	}

	// Everything missing: name is reported first.
	fe := Validate(&Form{}, testNow())
	if fe == nil || fe.Field != "name" {
		t.Fatalf("expected name first, got %+v", fe)
	}
}

func TestValidate_PhoneFormat(t *testing.T) {
	bad := []string{"12345", "phone", "082-123", "abc1234567890"}
	for _, p := range bad {
		f := validForm()
		f.Phone = p
		if fe := Validate(f, testNow()); fe == nil || fe.Field != "phone" {
			t.Errorf("phone %q should be rejected, got %+v", p, fe)
		}
	}

	good := []string{"0821234567", "+27 82 123 4567", "(082) 123-4567", "082 123 4567"}
	for _, p := range good {
		f := validForm()
		f.Phone = p
		if fe := Validate(f, testNow()); fe != nil {
			t.Errorf("phone %q should be accepted, got %+v", p, fe)
		}
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	bad := []string{"not-an-email", "a@b", "a b@c.com", "@x.com"}
	for _, e := range bad {
		f := validForm()
		f.Email = e
		if fe := Validate(f, testNow()); fe == nil || fe.Field != "email" {
			t.Errorf("email %q should be rejected, got %+v", e, fe)
		}
	}

	f := validForm()
	f.Email = "a@b.co"
	if fe := Validate(f, testNow()); fe != nil {
		t.Fatalf("valid email rejected: %+v", fe)
	}
}

func TestValidate_DateRules(t *testing.T) {
	now := testNow()

	f := validForm()
	f.Date = "01-09-2026"
	if fe := Validate(f, now); fe == nil || fe.Field != "date" {
		t.Fatalf("malformed date should be rejected, got %+v", fe)
	}

	// Yesterday is rejected.
	f = validForm()
	f.Date = "2026-08-31"
	if fe := Validate(f, now); fe == nil || fe.Field != "date" {
		t.Fatalf("past date should be rejected, got %+v", fe)
	}

	// Same-day delivery is allowed, even late in the day.
	f = validForm()
	f.Date = "2026-09-01"
	late := time.Date(2026, 9, 1, 23, 50, 0, 0, time.UTC)
	if fe := Validate(f, late); fe != nil {
		t.Fatalf("same-day delivery should be allowed, got %+v", fe)
	}

	// Tomorrow is allowed.
	f = validForm()
	f.Date = "2026-09-02"
	if fe := Validate(f, now); fe != nil {
		t.Fatalf("future date should be allowed, got %+v", fe)
	}
}

func TestBuild_OrderShape(t *testing.T) {
	items := []domain.LineItem{
		{ID: 1, Name: "Cappuccino", Variant: "Medium", UnitPrice: 35, Quantity: 2},
	}
	now := testNow()

	order := Build(validForm(), items, 70, now)

	if !strings.HasPrefix(order.ID, "ST") {
		t.Fatalf("order id %q should carry the ST prefix", order.ID)
	}
	if order.ID != "ST1788256800000" {
		t.Fatalf("order id = %q, want millisecond-derived id", order.ID)
	}
	if order.Status != "confirmed" {
		t.Fatalf("status = %q, want confirmed", order.Status)
	}
	if order.Total != 70 {
		t.Fatalf("total = %d, want 70", order.Total)
	}
	if order.Payment.Method != PaymentCash || order.Payment.Status != "pending" {
		t.Fatalf("cash payment should be pending, got %+v", order.Payment)
	}
	if order.Customer.Name != "Thandi M" || order.Delivery.Date != "2026-09-01" {
		t.Fatalf("customer/delivery not captured: %+v / %+v", order.Customer, order.Delivery)
	}
}

func TestBuild_CardPaymentIsUnpaid(t *testing.T) {
	f := validForm()
	f.PaymentMethod = "Card"

	order := Build(f, nil, 0, testNow())
	if order.Payment.Method != PaymentCard {
		t.Fatalf("method = %q, want card", order.Payment.Method)
	}
	if order.Payment.Status != "unpaid" {
		t.Fatalf("card payment should be unpaid, got %q", order.Payment.Status)
	}
}

func TestBuild_UnknownMethodDefaultsToCash(t *testing.T) {
	f := validForm()
	f.PaymentMethod = "bitcoin"

	order := Build(f, nil, 0, testNow())
	if order.Payment.Method != PaymentCash {
		t.Fatalf("unknown method should default to cash, got %q", order.Payment.Method)
	}
}

func TestBuild_ItemsAreDeepSnapshot(t *testing.T) {
	items := []domain.LineItem{
		{ID: 1, Name: "Latte", Variant: "Small", UnitPrice: 30, Quantity: 1},
	}
	order := Build(validForm(), items, 30, testNow())

	// Mutating the source slice must not reach into the order.
	items[0].Quantity = 99
	items[0].Name = "changed"

	if order.Items[0].Quantity != 1 || order.Items[0].Name != "Latte" {
		t.Fatalf("order items were not snapshotted: %+v", order.Items[0])
	}
}
