package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/onlineshop/shop-system/internal/core/domain"
	"github.com/onlineshop/shop-system/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetAll lists the catalog. Public route.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productProjectionResponse
// @Router       /products [get]
func (h *ProductHandler) GetAll(c echo.Context) error {
	projections, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]productProjectionResponse, 0, len(projections))
	for _, p := range projections {
		out = append(out, toProductResponse(p))
	}

	return c.JSON(http.StatusOK, out)
}

// GetByID returns a single product. Public route.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  productProjectionResponse
// @Failure      404  {object}  map[string]any
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	projection, err := h.productService.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(*projection))
}

// Add creates a product from a multipart form. The image part is optional;
// the service attaches the placeholder when it is absent. Admin-only route.
//
// @Summary      Add a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name      formData  string  true   "Product name"
// @Param        supplier  formData  string  true   "Supplier name"
// @Param        price     formData  number  true   "Unit price"
// @Param        file      formData  file    false  "Product image"
// @Success      201  {object}  messageResponse
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /products/add [post]
func (h *ProductHandler) Add(c echo.Context) error {
	name := c.FormValue("name")
	supplier := c.FormValue("supplier")
	rawPrice := c.FormValue("price")
	if name == "" || supplier == "" || rawPrice == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, supplier and price are required")
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return domain.ErrInvalidPrice
	}

	image, err := formImage(c)
	if err != nil {
		return err
	}

	msg, err := h.productService.AddProduct(c.Request().Context(), ports.AddProductInput{
		Name:     name,
		Supplier: supplier,
		Price:    price,
		Image:    image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: msg})
}

// UpdateByID applies a merge-patch to a product: only the multipart fields
// present in the request are changed. Admin-only route.
//
// @Summary      Update a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true   "Product ID"
// @Param        name      formData  string  false  "New name"
// @Param        supplier  formData  string  false  "New supplier"
// @Param        price     formData  number  false  "New unit price"
// @Param        file      formData  file    false  "New product image"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /products/updateById/{id} [put]
func (h *ProductHandler) UpdateByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var price *decimal.Decimal
	if raw := formPatch(c, "price"); raw != nil {
		parsed, err := decimal.NewFromString(*raw)
		if err != nil {
			return domain.ErrInvalidPrice
		}
		price = &parsed
	}

	image, err := formImage(c)
	if err != nil {
		return err
	}

	msg, err := h.productService.UpdateProductByID(c.Request().Context(), id, ports.UpdateProductInput{
		Name:     formPatch(c, "name"),
		Supplier: formPatch(c, "supplier"),
		Price:    price,
		Image:    image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// DeleteByID removes a product and, by cascade, its orders. Admin-only route.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]any
// @Router       /products/deleteById/{id} [delete]
func (h *ProductHandler) DeleteByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	msg, err := h.productService.DeleteProductByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// Image serves the product image bytes.
//
// @Summary      Get a product's image
// @Tags         products
// @Produce      image/png
// @Security     BearerAuth
// @Param        id   path  int  true  "Product ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]any
// @Router       /products/{id}/image [get]
func (h *ProductHandler) Image(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	img, err := h.productService.GetProductImage(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, img.ContentType, img.Bytes)
}
