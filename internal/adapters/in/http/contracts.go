package http

// Request and response contracts for the REST API. Commands address
// entities by the natural keys customers actually know: books by
// (title, author), customers by (name, shippingAddress). Server-side
// ids are returned so follow-up calls can use them directly.

// RegisterBookRequest is the payload for adding a book to the catalog.
type RegisterBookRequest struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
}

// RegisterBookResponse confirms catalog registration.
type RegisterBookResponse struct {
	Status string `json:"status"`
	BookID string `json:"bookID"`
}

// GetBookPriceRequest identifies a book by its natural key.
type GetBookPriceRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// GetBookPriceResponse carries the catalog price.
type GetBookPriceResponse struct {
	Price float64 `json:"price"`
}

// RegisterCustomerRequest is the payload for registering a customer.
type RegisterCustomerRequest struct {
	Name            string `json:"name"`
	ShippingAddress string `json:"shippingAddress"`
}

// RegisterCustomerResponse confirms customer registration.
type RegisterCustomerResponse struct {
	Status     string `json:"status"`
	CustomerID string `json:"customerID"`
}

// UpdateCustomerAddressRequest changes where a customer's orders ship to.
type UpdateCustomerAddressRequest struct {
	CustomerID string `json:"customerID"`
	Address    string `json:"address"`
}

// GetCustomerBalanceRequest identifies the customer whose balance to read.
type GetCustomerBalanceRequest struct {
	CustomerID string `json:"customerID"`
}

// GetCustomerBalanceResponse carries the amount owed across all orders.
type GetCustomerBalanceResponse struct {
	Balance float64 `json:"balance"`
}

// CreateOrderRequest places a purchase order using natural keys only.
// The book and customer must already be registered.
type CreateOrderRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Name            string `json:"name"`
	ShippingAddress string `json:"shippingAddress"`
}

// CreateOrderResponse confirms order placement.
type CreateOrderResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"orderID"`
}

// GetShipmentStatusRequest identifies an order by the same natural keys
// used to place it.
type GetShipmentStatusRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Name            string `json:"name"`
	ShippingAddress string `json:"shippingAddress"`
}

// GetShipmentStatusResponse reports whether the latest matching order
// has shipped.
type GetShipmentStatusResponse struct {
	Status  string `json:"status"`
	Shipped bool   `json:"shipped"`
}

// ShipOrderRequest marks an order as shipped.
type ShipOrderRequest struct {
	OrderID string `json:"orderID"`
}

// StatusResponse is the generic success confirmation.
type StatusResponse struct {
	Status string `json:"status"`
}

// UnshippedOrder is one entry in the pending-shipment backlog listing.
type UnshippedOrder struct {
	OrderID    string `json:"orderID"`
	BookID     string `json:"bookID"`
	CustomerID string `json:"customerID"`
}

// ErrorResponse is the error payload returned for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
