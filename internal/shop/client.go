package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shophub/shopfront/internal/session"
)

// API defines the storefront operations the client exposes.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	Signup(ctx context.Context, username, password string) (SignupResult, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
	FetchItems(ctx context.Context) ([]Item, error)
	CreateItem(ctx context.Context, item NewItem) (Item, error)
	AddToCart(ctx context.Context, itemID uint, quantity int) error
	RemoveFromCart(ctx context.Context, itemID uint) error
	FetchCart(ctx context.Context) (Cart, error)
	Checkout(ctx context.Context) (CheckoutResult, error)
	FetchOrders(ctx context.Context) ([]Order, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the ShopHub HTTP API. It attaches the session's
// bearer token to every request while one is held.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	session   *session.Session
	userAgent string
}

const (
	defaultBaseURL   = "127.0.0.1:8080"
	defaultUserAgent = "shopfront/0.1"
	requestTimeout   = 15 * time.Second
)

// RequestError is the uniform failure signal for every transport call.
// Message is the server's human-readable error when one could be
// parsed, or a synthesized description otherwise. Status is zero for
// network-level failures that never produced a response.
type RequestError struct {
	Status  int
	Message string
	cause   error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.cause }

// NotFound reports whether the server answered 404.
func (e *RequestError) NotFound() bool { return e.Status == http.StatusNotFound }

// NewClient builds a Client for the given base URL. The scheme defaults
// to http and any path, query, or fragment is stripped.
func NewClient(baseURL string, sess *session.Session) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		session:   sess,
		userAgent: defaultUserAgent,
	}, nil
}

// Signup registers a new user account.
func (c *Client) Signup(ctx context.Context, username, password string) (SignupResult, error) {
	var payload SignupResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/users", body, &payload); err != nil {
		return SignupResult{}, err
	}
	return payload, nil
}

// Login exchanges credentials for a bearer token. The token is not
// stored here; the caller decides whether to persist it.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var payload LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/users/login", body, &payload); err != nil {
		return LoginResult{}, err
	}
	return payload, nil
}

// FetchItems retrieves the full item catalog.
func (c *Client) FetchItems(ctx context.Context) ([]Item, error) {
	var payload itemListResponse
	if err := c.do(ctx, http.MethodGet, "/items", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// CreateItem adds a new catalog item and returns the server's copy.
func (c *Client) CreateItem(ctx context.Context, item NewItem) (Item, error) {
	var payload createItemResponse
	if err := c.do(ctx, http.MethodPost, "/items", item, &payload); err != nil {
		return Item{}, err
	}
	return payload.Item, nil
}

// AddToCart adds quantity units of an item to the user's cart.
func (c *Client) AddToCart(ctx context.Context, itemID uint, quantity int) error {
	body := map[string]any{"item_id": itemID, "quantity": quantity}
	var payload messageResponse
	return c.do(ctx, http.MethodPost, "/carts", body, &payload)
}

// RemoveFromCart removes an item's line from the user's cart.
func (c *Client) RemoveFromCart(ctx context.Context, itemID uint) error {
	body := map[string]any{"item_id": itemID}
	var payload messageResponse
	return c.do(ctx, http.MethodDelete, "/carts", body, &payload)
}

// FetchCart retrieves the user's cart. A user with no cart yet gets a
// 404; callers distinguish that case with a NotFound RequestError.
func (c *Client) FetchCart(ctx context.Context) (Cart, error) {
	var payload cartResponse
	if err := c.do(ctx, http.MethodGet, "/carts", nil, &payload); err != nil {
		return Cart{}, err
	}
	return payload.Cart, nil
}

// Checkout creates an order from the current cart.
func (c *Client) Checkout(ctx context.Context) (CheckoutResult, error) {
	var payload CheckoutResult
	if err := c.do(ctx, http.MethodPost, "/orders", nil, &payload); err != nil {
		return CheckoutResult{}, err
	}
	return payload, nil
}

// FetchOrders retrieves the user's order history.
func (c *Client) FetchOrders(ctx context.Context) ([]Order, error) {
	var payload orderListResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Orders, nil
}

// do issues a single request attempt. No retries and no backoff; the
// caller decides whether to try again.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: fmt.Sprintf("encode request: %v", err), cause: err}
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return &RequestError{Message: fmt.Sprintf("create request: %v", err), cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		if token := c.session.Current(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: fmt.Sprintf("execute request: %v", err), cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &RequestError{Message: fmt.Sprintf("decode response: %v", err), cause: err}
	}
	return nil
}

// decodeError extracts the server's error message from a non-success
// response, synthesizing one from the status code when the payload has
// no parseable message.
func decodeError(resp *http.Response) *RequestError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return &RequestError{Status: resp.StatusCode, Message: payload.Error}
	}
	return &RequestError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP error, status %d", resp.StatusCode),
	}
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
