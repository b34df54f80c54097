package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/onlineshop/shop-system/internal/api/metrics"
	"github.com/onlineshop/shop-system/internal/core/ports"
)

type OrderHandler struct {
	orderService  ports.OrderService
	reportService ports.ReportService
}

func NewOrderHandler(orderService ports.OrderService, reportService ports.ReportService) *OrderHandler {
	return &OrderHandler{
		orderService:  orderService,
		reportService: reportService,
	}
}

// GetAll lists every order with its customer and product projections.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  orderResponse
// @Router       /orders [get]
func (h *OrderHandler) GetAll(c echo.Context) error {
	views, err := h.orderService.GetAllOrders(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]orderResponse, 0, len(views))
	for i := range views {
		out = append(out, toOrderResponse(&views[i]))
	}

	return c.JSON(http.StatusOK, out)
}

// GetByID returns a single order.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  map[string]any
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	view, err := h.orderService.GetOrderByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(view))
}

// Buy places an order for a product on behalf of a customer.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  messageResponse
// @Failure      404   {object}  map[string]any
// @Router       /orders/buy [post]
func (h *OrderHandler) Buy(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.orderService.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
	})
	if err != nil {
		return err
	}
	metrics.OrdersCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, messageResponse{Message: msg})
}

// DeleteByID removes an order.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]any
// @Router       /orders/deleteById/{id} [delete]
func (h *OrderHandler) DeleteByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	msg, err := h.orderService.DeleteOrderByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// Receipt renders the order receipt as a PDF document.
//
// @Summary      Download an order receipt
// @Tags         orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  int  true  "Order ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]any
// @Router       /orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	pdf, err := h.reportService.OrderReceipt(c.Request().Context(), id)
	if err != nil {
		metrics.ReportsRenderedTotal.WithLabelValues("receipt", "error").Inc()
		return err
	}
	metrics.ReportsRenderedTotal.WithLabelValues("receipt", "ok").Inc()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="order-%d-receipt.pdf"`, id))

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// pathID parses the :id path parameter shared by all by-id routes.
func pathID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return uint(id), nil
}
