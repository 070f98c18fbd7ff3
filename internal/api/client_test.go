package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/session"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, session.NewMemStore(token))
}

func TestGetCart_SendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":5,"product_name":"Seiko 5","quantity":3,"total_price":"150.00"}]`)
	})

	items, err := client.GetCart(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	require.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].ID)
	assert.Equal(t, "Seiko 5", items[0].ProductName)
	assert.True(t, items[0].TotalPrice.Equal(decimal.RequireFromString("150.00")))
}

func TestGetCart_NoTokenNeverHitsNetwork(t *testing.T) {
	called := false
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.GetCart(context.Background())
	assert.ErrorIs(t, err, session.ErrNotLoggedIn)
	assert.False(t, called)
}

func TestGetCart_UnauthorizedMapsToErrUnauthorized(t *testing.T) {
	client := newTestClient(t, "stale", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetCart(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetCart_ServerErrorIsRequestError(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.GetCart(context.Background())
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Equal(t, "load cart", reqErr.Action)
}

func TestUpdateCartItem_Payload(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/cart/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":5,"product_name":"Seiko 5","quantity":4,"total_price":"200.00"}`)
	})

	item, err := client.UpdateCartItem(context.Background(), 5, 4)
	require.NoError(t, err)

	assert.Equal(t, float64(5), body["cart_item_id"])
	assert.Equal(t, float64(4), body["quantity"])
	assert.Equal(t, 4, item.Quantity)
	assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString("200.00")))
}

func TestRemoveCartItem_DeleteCarriesBody(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message":"Item removed from cart."}`)
	})

	require.NoError(t, client.RemoveCartItem(context.Background(), 9))
	assert.Equal(t, float64(9), body["cart_item_id"])
}

func TestLogin_ReturnsAccessToken(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login/", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.c", creds["email"])
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access":"jwt-token"}`)
	})

	token, err := client.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestLogin_MissingTokenInResponse(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{}`)
	})

	_, err := client.Login(context.Background(), "a@b.c", "pw")
	assert.Error(t, err)
}

func TestCreateOrder_PayloadShape(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":1,"status":"Pending","total_price":"350.00","payment_method":"COD","items":[]}`)
	})

	items := []domain.CartItem{
		{ID: 1, ProductName: "Seiko 5", Quantity: 2, TotalPrice: decimal.RequireFromString("150.00")},
		{ID: 2, ProductName: "Casio Duro", Quantity: 1, TotalPrice: decimal.RequireFromString("200.00")},
	}
	order, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		Contact:       "09171234567",
		Address:       "123 Main St",
		PaymentMethod: domain.PaymentCashOnDelivery,
		TotalPrice:    decimal.RequireFromString("350.00"),
		CartItems:     items,
	})
	require.NoError(t, err)

	assert.Equal(t, "09171234567", body["contact"])
	assert.Equal(t, "123 Main St", body["address"])
	assert.Equal(t, "COD", body["payment_method"])
	// decimal marshals via String(), which drops trailing zeros; the server
	// parses "350" and "350.00" identically.
	assert.Equal(t, "350", body["total_price"])
	lines, ok := body["cart_items"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 2)
	first, ok := lines[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "150", first["total_price"])
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestProducts_DecodesDecimalStringPrice(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"name":"Seiko 5","slug":"seiko-5","price":"4500.00","stock":3,
			"category":{"id":1,"name":"Automatic","slug":"automatic"},"is_active":true}]`)
	})

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("4500.00")))
	assert.Equal(t, "Automatic", products[0].Category.Name)
}
