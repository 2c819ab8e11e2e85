package storefront_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jeansfactory/internal/models"
	"jeansfactory/pkg/storefront"

	"github.com/stretchr/testify/assert"
)

const adminEmail = "admin@jeansfactory.com"

// fakeAPI is a minimal stand-in for the storefront API.
func fakeAPI(t *testing.T, orders *[]map[string]interface{}) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Product{
			{ID: 99, Name: "Server Side Selvedge", Price: 3999, Category: "Straight", Gender: "Men"},
		})
	})

	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "User created successfully"})
	})

	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "password123" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "session-token",
			"user": models.UserSummary{
				Name:    "Alice",
				Email:   req["email"],
				Address: "1 First Street",
			},
		})
	})

	mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if req["token"] != "session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return
		}
		*orders = append(*orders, req)
		json.NewEncoder(w).Encode(map[string]string{"message": "Order placed", "orderId": "order-1"})
	})

	mux.HandleFunc("GET /api/myorders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
			return
		}
		json.NewEncoder(w).Encode([]models.Order{
			{ID: "order-1", UserID: "user-a", TotalAmount: 250, Status: models.StatusOrdered},
		})
	})

	mux.HandleFunc("POST /api/return", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Order returned"})
	})

	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		var req models.Product
		json.NewDecoder(r.Body).Decode(&req)
		req.Rating = 4.0
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(req)
	})

	return mux
}

func TestClient_FetchProductsFallsBackToDemoCatalog(t *testing.T) {
	// Point at a server that is already gone.
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := storefront.NewClient(server.URL, storefront.WithPaymentDelay(0))
	catalog, online := client.FetchProducts(context.Background())

	assert.False(t, online)
	assert.Equal(t, storefront.DemoCatalog(), catalog, "offline catalog must be the built-in demo data")
}

func TestClient_FetchProductsReplacesCatalog(t *testing.T) {
	var orders []map[string]interface{}
	server := httptest.NewServer(fakeAPI(t, &orders))
	defer server.Close()

	client := storefront.NewClient(server.URL, storefront.WithPaymentDelay(0))
	catalog, online := client.FetchProducts(context.Background())

	assert.True(t, online)
	assert.Len(t, catalog, 1)
	assert.Equal(t, "Server Side Selvedge", catalog[0].Name)
	assert.Equal(t, catalog, client.Catalog())
}

func TestClient_LoginAndLogout(t *testing.T) {
	var orders []map[string]interface{}
	server := httptest.NewServer(fakeAPI(t, &orders))
	defer server.Close()

	client := storefront.NewClient(server.URL, storefront.WithPaymentDelay(0))
	assert.False(t, client.LoggedIn())

	err := client.Login(context.Background(), "alice@example.com", "wrong", adminEmail)
	assert.Error(t, err)
	assert.False(t, client.LoggedIn())

	err = client.Login(context.Background(), "alice@example.com", "password123", adminEmail)
	assert.NoError(t, err)
	assert.True(t, client.LoggedIn())
	assert.False(t, client.IsAdmin())
	assert.Equal(t, "Alice", client.User().Name)

	client.Logout()
	assert.False(t, client.LoggedIn())
	assert.Nil(t, client.User())
	assert.Equal(t, storefront.ViewHome, client.Router.Current())
}

func TestClient_AdminFlagFollowsLoginEmail(t *testing.T) {
	var orders []map[string]interface{}
	server := httptest.NewServer(fakeAPI(t, &orders))
	defer server.Close()

	client := storefront.NewClient(server.URL, storefront.WithPaymentDelay(0))
	err := client.Login(context.Background(), adminEmail, "password123", adminEmail)
	assert.NoError(t, err)
	assert.True(t, client.IsAdmin())
	assert.NoError(t, client.Router.Navigate(storefront.ViewSell))
}

func TestClient_Checkout(t *testing.T) {
	var orders []map[string]interface{}
	server := httptest.NewServer(fakeAPI(t, &orders))
	defer server.Close()

	client := storefront.NewClient(server.URL, storefront.WithPaymentDelay(0))
	jeans := models.Product{ID: 1, Name: "Classic Blue Regular Fit", Price: 100}
	client.Cart.Add(jeans)
	client.Cart.Add(jeans)

	// Checkout without a session redirects to login.
	_, err := client.Checkout(context.Background())
	assert.Error(t, err)
	assert.Equal(t, storefront.ViewLogin, client.Router.Current())

	assert.NoError(t, client.Login(context.Background(), "alice@example.com", "password123", adminEmail))

	orderID, err := client.Checkout(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "order-1", orderID)
	assert.Zero(t, client.Cart.Count(), "checkout clears the cart")

	// The posted payload carried the token, snapshot and computed total.
	assert.Len(t, orders, 1)
	assert.Equal(t, "session-token", orders[0]["token"])
	assert.Equal(t, 200.0, orders[0]["total"])
	assert.Equal(t, "Alice", orders[0]["name"])

	// An empty cart cannot be checked out.
	_, err = client.Checkout(context.Background())
	assert.Error(t, err)
}

func TestClient_CheckoutHonorsPaymentDelayCancellation(t *testing.T) {
	var orders []map[string]interface{}
	server := httptest.NewServer(fakeAPI(t, &orders))
	defer server.Close()

	client := storefront.NewClient(server.URL, storefront.WithPaymentDelay(time.Minute))
	assert.NoError(t, client.Login(context.Background(), "alice@example.com", "password123", adminEmail))
	client.Cart.Add(models.Product{ID: 1, Name: "A", Price: 100})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := client.Checkout(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, orders, "a cancelled payment never reaches the API")
}

func TestClient_MyOrdersAndReturn(t *testing.T) {
	var orders []map[string]interface{}
	server := httptest.NewServer(fakeAPI(t, &orders))
	defer server.Close()

	client := storefront.NewClient(server.URL, storefront.WithPaymentDelay(0))

	// Without a session the API rejects and the router lands on login.
	_, err := client.MyOrders(context.Background())
	assert.Error(t, err)
	assert.Equal(t, storefront.ViewLogin, client.Router.Current())

	assert.NoError(t, client.Login(context.Background(), "alice@example.com", "password123", adminEmail))
	history, err := client.MyOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "order-1", history[0].ID)

	assert.NoError(t, client.ReturnOrder(context.Background(), "order-1"))
}

func TestClient_UploadProduct(t *testing.T) {
	var orders []map[string]interface{}
	server := httptest.NewServer(fakeAPI(t, &orders))
	defer server.Close()

	client := storefront.NewClient(server.URL, storefront.WithPaymentDelay(0))
	assert.NoError(t, client.Login(context.Background(), adminEmail, "password123", adminEmail))

	product, err := client.UploadProduct(context.Background(), "Stonewash Bootcut", 2199, "Bootcut", "Women", "https://img.example.com/p.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "Stonewash Bootcut", product.Name)
	assert.NotZero(t, product.ID)
}
