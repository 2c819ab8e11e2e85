package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jeansfactory/internal/models"
)

// Client is the storefront application state: an HTTP client over the API
// plus the local catalog, cart, wishlist, session and view router.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// paymentDelay simulates the payment step before checkout posts the
	// order. Purely a UI affordance; zero in tests.
	paymentDelay time.Duration

	token   string
	user    *models.UserSummary
	admin   bool
	catalog []models.Product

	Cart     *Cart
	Wishlist *Wishlist
	Router   *Router
}

// Option configures a Client.
type Option func(*Client)

// WithPaymentDelay sets the simulated payment pause before checkout.
func WithPaymentDelay(d time.Duration) Option {
	return func(c *Client) {
		c.paymentDelay = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a storefront client against the given API base URL. The
// catalog starts on the built-in demo data until FetchProducts succeeds.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		paymentDelay: 2 * time.Second,
		catalog:      DemoCatalog(),
		Cart:         NewCart(),
		Wishlist:     NewWishlist(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Router = NewRouter(c.LoggedIn, c.IsAdmin)
	return c
}

// LoggedIn reports whether a session token is held.
func (c *Client) LoggedIn() bool {
	return c.token != ""
}

// IsAdmin reports whether the session was flagged as the admin account.
func (c *Client) IsAdmin() bool {
	return c.LoggedIn() && c.admin
}

// User returns the denormalized summary stored at login, or nil.
func (c *Client) User() *models.UserSummary {
	return c.user
}

// Catalog returns the products currently held client-side.
func (c *Client) Catalog() []models.Product {
	return c.catalog
}

// FetchProducts refreshes the local catalog from the API. On any failure the
// previously held catalog (initially the demo data) stays in place and the
// returned flag is false, so the UI can show an offline indicator instead of
// blocking.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return c.catalog, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.catalog, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.catalog, false
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return c.catalog, false
	}
	if len(products) > 0 {
		c.catalog = products
	}
	return c.catalog, true
}

// Register creates a new account. It carries no session; the caller must
// log in afterwards.
func (c *Client) Register(ctx context.Context, name, email, password, address string) error {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"address":  address,
	}
	resp, err := c.postJSON(ctx, "/api/register", body, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return apiError("register", resp)
	}
	return nil
}

type loginResponse struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

// Login authenticates and stores the session token and user summary. The
// admin flag is derived by comparing the login email with adminEmail; the
// server enforces the real gate.
func (c *Client) Login(ctx context.Context, email, password, adminEmail string) error {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	resp, err := c.postJSON(ctx, "/api/login", body, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError("login", resp)
	}

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}

	c.token = result.Token
	c.user = &result.User
	c.admin = adminEmail != "" && result.User.Email == adminEmail
	return nil
}

// Logout discards the session client-side. Nothing is revoked server-side.
func (c *Client) Logout() {
	c.token = ""
	c.user = nil
	c.admin = false
	c.Router.Navigate(ViewHome)
}

// Checkout waits out the simulated payment step, then posts the cart
// snapshot with the session token embedded in the body. On success the cart
// is cleared.
func (c *Client) Checkout(ctx context.Context) (string, error) {
	if !c.LoggedIn() {
		c.Router.Navigate(ViewLogin)
		return "", fmt.Errorf("login required to place an order")
	}
	if c.Cart.Count() == 0 {
		return "", fmt.Errorf("cart is empty")
	}

	if c.paymentDelay > 0 {
		select {
		case <-time.After(c.paymentDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	body := map[string]interface{}{
		"token":   c.token,
		"cart":    c.Cart.Snapshot(),
		"total":   c.Cart.Total(),
		"name":    c.user.Name,
		"email":   c.user.Email,
		"address": c.user.Address,
	}
	resp, err := c.postJSON(ctx, "/api/orders", body, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError("checkout", resp)
	}

	var result struct {
		OrderID string `json:"orderId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode checkout response: %w", err)
	}

	c.Cart.Clear()
	return result.OrderID, nil
}

// MyOrders fetches the caller's order history, newest first.
func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/myorders", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.Router.Navigate(ViewLogin)
		return nil, fmt.Errorf("session rejected")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError("myorders", resp)
	}

	var orders []models.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// ReturnOrder asks the API to mark one of the caller's orders returned.
func (c *Client) ReturnOrder(ctx context.Context, orderID string) error {
	body := map[string]string{"orderId": orderID}
	resp, err := c.postJSON(ctx, "/api/return", body, c.token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError("return", resp)
	}
	return nil
}

// UploadProduct creates a catalog item through the admin endpoint. The
// image URL comes from a prior upload to the external image host.
func (c *Client) UploadProduct(ctx context.Context, name string, price float64, category, gender, imageURL string) (*models.Product, error) {
	body := map[string]interface{}{
		"id":       time.Now().UnixMilli(),
		"name":     name,
		"price":    price,
		"category": category,
		"gender":   gender,
		"image":    imageURL,
	}
	resp, err := c.postJSON(ctx, "/api/products", body, c.token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError("upload product", resp)
	}

	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &product, nil
}

// postJSON sends a JSON body to an API path, attaching the token to the
// Authorization header when given.
func (c *Client) postJSON(ctx context.Context, path string, body interface{}, token string) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// apiError turns a non-success response into an error carrying the server's
// message field when present.
func apiError(op string, resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("%s failed (%d): %s", op, resp.StatusCode, body.Message)
	}
	return fmt.Errorf("%s failed with status %d", op, resp.StatusCode)
}
