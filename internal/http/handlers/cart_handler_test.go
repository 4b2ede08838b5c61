package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCartRouter(t *testing.T) (*gin.Engine, *Handlers) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newHandlerDB(t)
	cartSvc := newTestCart(t, db)
	h := New(cartSvc, stubOrderSvc{}, stubSettingsSvc{}, stubAdminSvc{}, db, testShop(), nil)

	r := gin.New()
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddCartItem)
	r.PATCH("/cart/items/:id", h.UpdateCartItem)
	r.DELETE("/cart/items/:id", h.RemoveCartItem)
	r.POST("/cart/clear", h.RequestCartClear)
	r.POST("/cart/clear/confirm", h.ConfirmCartClear)
	r.POST("/cart/clear/cancel", h.CancelCartClear)
	return r, h
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) CartResponse {
	t.Helper()
	var out CartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v body=%s", err, w.Body.String())
	}
	return out
}

func TestGetCart_Empty(t *testing.T) {
	r, _ := newCartRouter(t)

	w := doJSON(t, r, http.MethodGet, "/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get -> %d", w.Code)
	}
	out := decodeCart(t, w)
	if len(out.Items) != 0 || out.Total != 0 {
		t.Fatalf("empty cart unexpected: %+v", out)
	}
}

func TestAddCartItem_BadJSON_Validation_Success(t *testing.T) {
	r, _ := newCartRouter(t)

	// Bad JSON -> 400
	if w := doJSON(t, r, http.MethodPost, "/cart/items", "{bad"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad json -> %d", w.Code)
	}

	// Missing name -> 400 (binding)
	if w := doJSON(t, r, http.MethodPost, "/cart/items", `{"unitPrice":30}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing name -> %d", w.Code)
	}

	// Negative price -> 400 (binding)
	if w := doJSON(t, r, http.MethodPost, "/cart/items", `{"name":"Latte","unitPrice":-5}`); w.Code != http.StatusBadRequest {
		t.Fatalf("negative price -> %d", w.Code)
	}

	// Success -> 201, and the same product merges on a second add
	w := doJSON(t, r, http.MethodPost, "/cart/items", `{"name":"Cappuccino","variant":"Medium","unitPrice":35}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add -> %d body=%s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/cart/items", `{"name":"Cappuccino","variant":"Medium","unitPrice":35}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("second add -> %d", w.Code)
	}
	out := decodeCart(t, w)
	if len(out.Items) != 1 || out.Items[0].Quantity != 2 || out.Total != 70 {
		t.Fatalf("merge unexpected: %+v", out)
	}
}

func TestAddCartItem_ZeroPriceAccepted(t *testing.T) {
	r, h := newCartRouter(t)

	// Free items are valid cart rows.
	w := doJSON(t, r, http.MethodPost, "/cart/items", `{"name":"Birthday Espresso","variant":"Single","unitPrice":0}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("zero-price add -> %d body=%s", w.Code, w.Body.String())
	}
	out := decodeCart(t, w)
	if len(out.Items) != 1 || out.Items[0].UnitPrice != 0 || out.Total != 0 {
		t.Fatalf("zero-price cart unexpected: %+v", out)
	}
	if h.cartSvc.Total() != 0 {
		t.Fatalf("cart total = %d, want 0", h.cartSvc.Total())
	}
}

func TestUpdateCartItem_DeltaAndRemoval(t *testing.T) {
	r, h := newCartRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", `{"name":"Flat White","unitPrice":32}`)
	out := decodeCart(t, w)
	id := strconv.FormatInt(out.Items[0].ID, 10)

	// Bad id -> 400
	if w := doJSON(t, r, http.MethodPatch, "/cart/items/abc", `{"delta":1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id -> %d", w.Code)
	}
	// Bad body -> 400
	if w := doJSON(t, r, http.MethodPatch, "/cart/items/"+id, "{bad"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad body -> %d", w.Code)
	}

	// +2 -> quantity 3
	w = doJSON(t, r, http.MethodPatch, "/cart/items/"+id, `{"delta":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch -> %d", w.Code)
	}
	out = decodeCart(t, w)
	if out.Items[0].Quantity != 3 || out.Total != 96 {
		t.Fatalf("after +2: %+v", out)
	}

	// -3 -> row removed
	w = doJSON(t, r, http.MethodPatch, "/cart/items/"+id, `{"delta":-3}`)
	out = decodeCart(t, w)
	if len(out.Items) != 0 {
		t.Fatalf("row should be gone: %+v", out)
	}
	if h.cartSvc.Total() != 0 {
		t.Fatalf("total should reset")
	}
}

func TestRemoveCartItem(t *testing.T) {
	r, _ := newCartRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", `{"name":"Mocha","unitPrice":38}`)
	out := decodeCart(t, w)
	id := strconv.FormatInt(out.Items[0].ID, 10)

	if w := doJSON(t, r, http.MethodDelete, "/cart/items/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id -> %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/cart/items/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete -> %d", w.Code)
	}
	if out := decodeCart(t, w); len(out.Items) != 0 {
		t.Fatalf("row should be gone: %+v", out)
	}
}

func TestCartClear_Handshake(t *testing.T) {
	r, _ := newCartRouter(t)

	// Clearing an empty cart is a conflict.
	w := doJSON(t, r, http.MethodPost, "/cart/clear", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("clear empty -> %d", w.Code)
	}
	var e ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &e)
	if e.Code != ErrCodeCartEmpty {
		t.Fatalf("code = %q", e.Code)
	}

	// Confirm without a request is a conflict too.
	doJSON(t, r, http.MethodPost, "/cart/items", `{"name":"Espresso","unitPrice":25}`)
	w = doJSON(t, r, http.MethodPost, "/cart/clear/confirm", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("confirm w/o request -> %d", w.Code)
	}
	_ = json.Unmarshal(w.Body.Bytes(), &e)
	if e.Code != ErrCodeNoClearPending {
		t.Fatalf("code = %q", e.Code)
	}

	// Request -> 202, cart still intact.
	w = doJSON(t, r, http.MethodPost, "/cart/clear", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("request clear -> %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/cart", ""); len(decodeCart(t, w).Items) != 1 {
		t.Fatalf("request must not clear the cart")
	}

	// Cancel -> 204, then a confirm is a conflict again.
	if w := doJSON(t, r, http.MethodPost, "/cart/clear/cancel", ""); w.Code != http.StatusNoContent {
		t.Fatalf("cancel -> %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/cart/clear/confirm", ""); w.Code != http.StatusConflict {
		t.Fatalf("confirm after cancel -> %d", w.Code)
	}

	// Full handshake clears.
	doJSON(t, r, http.MethodPost, "/cart/clear", "")
	w = doJSON(t, r, http.MethodPost, "/cart/clear/confirm", "")
	if w.Code != http.StatusOK {
		t.Fatalf("confirm -> %d", w.Code)
	}
	if out := decodeCart(t, w); len(out.Items) != 0 || out.Total != 0 {
		t.Fatalf("cart should be empty: %+v", out)
	}
}
