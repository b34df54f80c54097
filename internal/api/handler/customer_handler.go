package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onlineshop/shop-system/internal/api/metrics"
	"github.com/onlineshop/shop-system/internal/core/ports"
)

type CustomerHandler struct {
	customerService ports.CustomerService
	reportService   ports.ReportService
}

func NewCustomerHandler(customerService ports.CustomerService, reportService ports.ReportService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		reportService:   reportService,
	}
}

// GetAll lists every registered customer. Admin-only route.
//
// @Summary      List all customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  customerProjectionResponse
// @Router       /customers [get]
func (h *CustomerHandler) GetAll(c echo.Context) error {
	projections, err := h.customerService.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]customerProjectionResponse, 0, len(projections))
	for _, p := range projections {
		out = append(out, toCustomerResponse(p))
	}

	return c.JSON(http.StatusOK, out)
}

// GetByID returns a single customer.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer ID"
// @Success      200  {object}  customerProjectionResponse
// @Failure      404  {object}  map[string]any
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	projection, err := h.customerService.GetCustomerByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCustomerResponse(*projection))
}

// UpdateByID applies a merge-patch to a customer: only the multipart fields
// present in the request are changed.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true   "Customer ID"
// @Param        username  formData  string  false  "New username"
// @Param        phone     formData  string  false  "New phone"
// @Param        address   formData  string  false  "New address"
// @Param        role      formData  string  false  "New role (ADMIN or CUSTOMER)"
// @Param        file      formData  file    false  "New profile image"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /customers/updateById/{id} [put]
func (h *CustomerHandler) UpdateByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	image, err := formImage(c)
	if err != nil {
		return err
	}

	msg, err := h.customerService.UpdateCustomerByID(c.Request().Context(), id, ports.UpdateCustomerInput{
		Username: formPatch(c, "username"),
		Phone:    formPatch(c, "phone"),
		Address:  formPatch(c, "address"),
		Role:     formPatch(c, "role"),
		Image:    image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// DeleteByID removes a customer and, by cascade, their orders. A customer may
// delete only their own account; admins may delete anyone.
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /customers/deleteById/{id} [delete]
func (h *CustomerHandler) DeleteByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	msg, err := h.customerService.DeleteCustomerByID(c.Request().Context(), id, caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// Image serves the customer's profile image bytes.
//
// @Summary      Get a customer's profile image
// @Tags         customers
// @Produce      image/png
// @Security     BearerAuth
// @Param        id   path  int  true  "Customer ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]any
// @Router       /customers/{id}/image [get]
func (h *CustomerHandler) Image(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	img, err := h.customerService.GetCustomerImage(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, img.ContentType, img.Bytes)
}

// Report renders the current customer list as a PDF document. Admin-only route.
//
// @Summary      Download the customer list report
// @Tags         customers
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /customers/report [get]
func (h *CustomerHandler) Report(c echo.Context) error {
	pdf, err := h.reportService.CustomerListReport(c.Request().Context())
	if err != nil {
		metrics.ReportsRenderedTotal.WithLabelValues("customer_list", "error").Inc()
		return err
	}
	metrics.ReportsRenderedTotal.WithLabelValues("customer_list", "ok").Inc()

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="customer-list.pdf"`)

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
