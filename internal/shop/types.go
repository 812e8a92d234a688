package shop

import "time"

// Item is a purchasable catalog entry. Items are immutable from the
// client's perspective; the client only ever reads them.
type Item struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image"`
	InStock     bool    `json:"in_stock"`
}

// NewItem carries the fields for item creation (everything but the id).
type NewItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image"`
	InStock     bool    `json:"in_stock"`
}

// CartLine is one entry in a cart. Price is the unit price snapshotted
// when the line was added, independent of later catalog changes.
type CartLine struct {
	ID       uint    `json:"id"`
	ItemID   uint    `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Item     Item    `json:"item"`
}

// Cart is the server's per-user cart. A zero ID means the server holds
// no cart for the user, which is distinct from an empty one.
type Cart struct {
	ID     uint       `json:"id"`
	UserID uint       `json:"user_id"`
	Lines  []CartLine `json:"items"`
}

// Order is an immutable record created from a cart at checkout.
type Order struct {
	ID        uint    `json:"id"`
	CartID    uint    `json:"cart_id"`
	UserID    uint    `json:"user_id"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
	Cart      Cart    `json:"cart"`
	CreatedAt string  `json:"created_at"`
}

// ParsedCreatedAt returns the creation timestamp as time.Time when possible.
func (o Order) ParsedCreatedAt() time.Time {
	return parseTime(o.CreatedAt)
}

// SignupResult mirrors POST /users.
type SignupResult struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// LoginResult mirrors POST /users/login.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  uint   `json:"user_id"`
}

// CheckoutResult mirrors POST /orders.
type CheckoutResult struct {
	Message string  `json:"message"`
	OrderID uint    `json:"order_id"`
	Total   float64 `json:"total"`
}

type itemListResponse struct {
	Items []Item `json:"items"`
}

type createItemResponse struct {
	Message string `json:"message"`
	Item    Item   `json:"item"`
}

type cartResponse struct {
	Cart Cart `json:"cart"`
}

type orderListResponse struct {
	Orders []Order `json:"orders"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
