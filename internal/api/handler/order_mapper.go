package handler

import (
	"github.com/onlineshop/shop-system/internal/core/ports"
)

// --- Service result → HTTP response ---

func toOrderResponse(v *ports.OrderView) orderResponse {
	return orderResponse{
		ID:       v.ID,
		Date:     v.Date,
		City:     v.City,
		Status:   v.Status,
		Customer: toCustomerResponse(v.Customer),
		Product:  toProductResponse(v.Product),
	}
}

func toCustomerResponse(p ports.CustomerProjection) customerProjectionResponse {
	return customerProjectionResponse{
		ID:       p.ID,
		Username: p.Username,
		Address:  p.Address,
		Phone:    p.Phone,
		Role:     p.Role,
		HasImage: p.HasImage,
	}
}

func toProductResponse(p ports.ProductProjection) productProjectionResponse {
	return productProjectionResponse{
		ID:       p.ID,
		Name:     p.Name,
		Supplier: p.Supplier,
		Price:    p.Price.StringFixed(2),
		HasImage: p.HasImage,
	}
}
