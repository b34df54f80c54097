package handler

import "time"

// --- Request / Response types ---

type createOrderRequest struct {
	CustomerID uint `json:"customerId" validate:"required"`
	ProductID  uint `json:"productId"  validate:"required"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type customerProjectionResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	HasImage bool   `json:"hasImage"`
}

type productProjectionResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Supplier string `json:"supplier"`
	Price    string `json:"price"`
	HasImage bool   `json:"hasImage"`
}

type orderResponse struct {
	ID       uint                       `json:"id"`
	Date     time.Time                  `json:"date"`
	City     string                     `json:"city"`
	Status   string                     `json:"status"`
	Customer customerProjectionResponse `json:"customer"`
	Product  productProjectionResponse  `json:"product"`
}
