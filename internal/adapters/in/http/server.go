// Package http exposes the bookstore use cases over a REST API.
// Handlers bind requests, translate them into commands and queries,
// and map application errors onto HTTP status codes.
package http

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP handlers to the application's command and query handlers.
type Server struct {
	// Command handlers
	registerBookHandler          commands.RegisterBookCommandHandler
	registerCustomerHandler      commands.RegisterCustomerCommandHandler
	updateCustomerAddressHandler commands.UpdateCustomerAddressCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	shipOrderHandler             commands.ShipOrderCommandHandler

	// Query handlers
	findBookHandler             queries.FindBookQueryHandler
	findCustomerHandler         queries.FindCustomerQueryHandler
	getBookPriceHandler         queries.GetBookPriceQueryHandler
	getCustomerBalanceHandler   queries.GetCustomerBalanceQueryHandler
	getShipmentStatusHandler    queries.GetShipmentStatusQueryHandler
	getOrderStatusReportHandler queries.GetOrderStatusReportQueryHandler
	getUnshippedOrdersHandler   queries.GetUnshippedOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerBookHandler commands.RegisterBookCommandHandler,
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	updateCustomerAddressHandler commands.UpdateCustomerAddressCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	findBookHandler queries.FindBookQueryHandler,
	findCustomerHandler queries.FindCustomerQueryHandler,
	getBookPriceHandler queries.GetBookPriceQueryHandler,
	getCustomerBalanceHandler queries.GetCustomerBalanceQueryHandler,
	getShipmentStatusHandler queries.GetShipmentStatusQueryHandler,
	getOrderStatusReportHandler queries.GetOrderStatusReportQueryHandler,
	getUnshippedOrdersHandler queries.GetUnshippedOrdersQueryHandler,
) *Server {
	return &Server{
		registerBookHandler:          registerBookHandler,
		registerCustomerHandler:      registerCustomerHandler,
		updateCustomerAddressHandler: updateCustomerAddressHandler,
		createOrderHandler:           createOrderHandler,
		shipOrderHandler:             shipOrderHandler,
		findBookHandler:              findBookHandler,
		findCustomerHandler:          findCustomerHandler,
		getBookPriceHandler:          getBookPriceHandler,
		getCustomerBalanceHandler:    getCustomerBalanceHandler,
		getShipmentStatusHandler:     getShipmentStatusHandler,
		getOrderStatusReportHandler:  getOrderStatusReportHandler,
		getUnshippedOrdersHandler:    getUnshippedOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/books", s.RegisterBook)
	api.POST("/books/price", s.GetBookPrice)

	api.POST("/customers", s.RegisterCustomer)
	api.PUT("/customers/address", s.UpdateCustomerAddress)
	api.POST("/customers/balance", s.GetCustomerBalance)

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/ship", s.ShipOrder)
	api.POST("/orders/shipment-status", s.GetShipmentStatus)
	api.GET("/orders/status", s.GetOrderStatus)
	api.GET("/orders/unshipped", s.GetUnshippedOrders)
}

// RegisterBook handles POST /api/v1/books - adds a book to the catalog.
// @Summary Register a book
// @Accept json
// @Produce json
// @Param book body RegisterBookRequest true "Book"
// @Success 201 {object} RegisterBookResponse
// @Failure 400 {object} ErrorResponse
// @Router /books [post]
func (s *Server) RegisterBook(ctx echo.Context) error {
	var req RegisterBookRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	bookID := kernel.NewUUID()
	cmd, err := commands.NewRegisterBookCommand(bookID, req.Title, req.Author, req.Price)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.registerBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterBookResponse{
		Status: "success",
		BookID: bookID.String(),
	})
}

// GetBookPrice handles POST /api/v1/books/price - reads a book's price by
// title and author.
// @Summary Get book price
// @Accept json
// @Produce json
// @Param book body GetBookPriceRequest true "Book natural key"
// @Success 200 {object} GetBookPriceResponse
// @Failure 404 {object} ErrorResponse
// @Router /books/price [post]
func (s *Server) GetBookPrice(ctx echo.Context) error {
	var req GetBookPriceRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	query, err := queries.NewGetBookPriceQuery(req.Title, req.Author)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getBookPriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, GetBookPriceResponse{Price: resp.Price})
}

// RegisterCustomer handles POST /api/v1/customers - registers a customer.
// @Summary Register a customer
// @Accept json
// @Produce json
// @Param customer body RegisterCustomerRequest true "Customer"
// @Success 201 {object} RegisterCustomerResponse
// @Failure 400 {object} ErrorResponse
// @Router /customers [post]
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, req.Name, req.ShippingAddress)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterCustomerResponse{
		Status:     "success",
		CustomerID: customerID.String(),
	})
}

// UpdateCustomerAddress handles PUT /api/v1/customers/address - changes a
// customer's shipping address.
// @Summary Update customer address
// @Accept json
// @Produce json
// @Param update body UpdateCustomerAddressRequest true "New address"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/address [put]
func (s *Server) UpdateCustomerAddress(ctx echo.Context) error {
	var req UpdateCustomerAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	customerID, err := parseID("customerID", req.CustomerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateCustomerAddressCommand(customerID, req.Address)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.updateCustomerAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: "success"})
}

// GetCustomerBalance handles POST /api/v1/customers/balance - reads the
// total amount a customer owes across all orders.
// @Summary Get customer balance
// @Accept json
// @Produce json
// @Param customer body GetCustomerBalanceRequest true "Customer id"
// @Success 200 {object} GetCustomerBalanceResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/balance [post]
func (s *Server) GetCustomerBalance(ctx echo.Context) error {
	var req GetCustomerBalanceRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	customerID, err := parseID("customerID", req.CustomerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetCustomerBalanceQuery(customerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getCustomerBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, GetCustomerBalanceResponse{Balance: resp.Balance})
}

// CreateOrder handles POST /api/v1/orders - places a purchase order.
// The book and customer are resolved from their natural keys before the
// order is created.
// @Summary Create a purchase order
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order contents"
// @Success 201 {object} CreateOrderResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	findBook, err := queries.NewFindBookQuery(req.Title, req.Author)
	if err != nil {
		return errorJSON(ctx, err)
	}
	findCustomer, err := queries.NewFindCustomerQuery(req.Name, req.ShippingAddress)
	if err != nil {
		return errorJSON(ctx, err)
	}

	bookResp, err := s.findBookHandler.Handle(ctx.Request().Context(), findBook)
	if err != nil {
		return errorJSON(ctx, err)
	}
	customerResp, err := s.findCustomerHandler.Handle(ctx.Request().Context(), findCustomer)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, bookResp.BookID, customerResp.CustomerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Status:  "success",
		OrderID: orderID.String(),
	})
}

// ShipOrder handles POST /api/v1/orders/ship - marks an order as shipped.
// Shipping an already shipped order succeeds without change.
// @Summary Ship an order
// @Accept json
// @Produce json
// @Param order body ShipOrderRequest true "Order id"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/ship [post]
func (s *Server) ShipOrder(ctx echo.Context) error {
	var req ShipOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	orderID, err := parseID("orderID", req.OrderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: "success"})
}

// GetShipmentStatus handles POST /api/v1/orders/shipment-status - reads
// whether the latest order matching the given book and customer has shipped.
// @Summary Get shipment status
// @Accept json
// @Produce json
// @Param order body GetShipmentStatusRequest true "Order natural keys"
// @Success 200 {object} GetShipmentStatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/shipment-status [post]
func (s *Server) GetShipmentStatus(ctx echo.Context) error {
	var req GetShipmentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	query, err := queries.NewGetShipmentStatusQuery(req.Title, req.Author, req.Name, req.ShippingAddress)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getShipmentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, GetShipmentStatusResponse{
		Status:  "success",
		Shipped: resp.Shipped,
	})
}

// GetOrderStatus handles GET /api/v1/orders/status - renders an HTML page
// with the status of the latest order linking a customer and a book.
// @Summary Order status page
// @Produce html
// @Param customerID query string true "Customer id"
// @Param bookID query string true "Book id"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} ErrorResponse
// @Router /orders/status [get]
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	customerID, err := parseID("customerID", ctx.QueryParam("customerID"))
	if err != nil {
		return errorJSON(ctx, err)
	}
	bookID, err := parseID("bookID", ctx.QueryParam("bookID"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetOrderStatusReportQuery(customerID, bookID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	report, err := s.getOrderStatusReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	page, err := renderOrderStatusPage(report)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.HTML(http.StatusOK, page)
}

// GetUnshippedOrders handles GET /api/v1/orders/unshipped - lists the
// shipment backlog.
// @Summary List unshipped orders
// @Produce json
// @Success 200 {array} UnshippedOrder
// @Router /orders/unshipped [get]
func (s *Server) GetUnshippedOrders(ctx echo.Context) error {
	query := queries.NewGetUnshippedOrdersQuery()

	orders, err := s.getUnshippedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]UnshippedOrder, len(orders))
	for i, o := range orders {
		response[i] = UnshippedOrder{
			OrderID:    o.ID.String(),
			BookID:     o.BookID.String(),
			CustomerID: o.CustomerID.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

var orderStatusPage = template.Must(template.New("orderStatus").Parse(`<html>
<head>
<title>Order Status</title>
</head>
<body>
    <h1>Order Status</h1>
    <p>Order ID: {{.OrderID}}</p>
    <p>Book ID: {{.BookID}}</p>
    <p>Customer ID: {{.CustomerID}}</p>
    <p>Is Shipped: {{.Shipped}}</p>
    <p>Shipping Address: {{.ShippingAddress}}</p>
</body>
</html>
`))

type orderStatusView struct {
	OrderID         string
	BookID          string
	CustomerID      string
	Shipped         bool
	ShippingAddress string
}

func renderOrderStatusPage(report queries.GetOrderStatusReportQueryResponse) (string, error) {
	var buf bytes.Buffer
	err := orderStatusPage.Execute(&buf, orderStatusView{
		OrderID:         report.OrderID.String(),
		BookID:          report.BookID.String(),
		CustomerID:      report.CustomerID.String(),
		Shipped:         report.Shipped,
		ShippingAddress: report.ShippingAddress,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// parseID converts a textual id from a request into a UUID, surfacing
// malformed input as a validation error rather than a server fault.
func parseID(paramName string, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func errorJSON(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// statusFromError maps application errors onto HTTP status codes.
// Unknown errors are treated as server faults.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrReferenceIsInvalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
