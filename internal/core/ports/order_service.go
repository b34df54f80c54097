package ports

import (
	"context"
	"time"
)

// CreateOrderInput identifies the buyer and the product being bought.
type CreateOrderInput struct {
	CustomerID uint
	ProductID  uint
}

// OrderView combines an order's own fields with flat projections of its
// customer and product, avoiding cyclic expansion of the entity graph.
type OrderView struct {
	ID       uint
	Date     time.Time
	City     string
	Status   string
	Customer CustomerProjection
	Product  ProductProjection
}

// OrderService defines the order lifecycle use cases.
type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (string, error)
	GetAllOrders(ctx context.Context) ([]OrderView, error)
	GetOrderByID(ctx context.Context, id uint) (*OrderView, error)
	DeleteOrderByID(ctx context.Context, id uint) (string, error)
	// ReconcileStatuses advances stale SHIPPED orders to DELIVERED and returns
	// the number of transitions applied. Row failures are logged, not fatal.
	ReconcileStatuses(ctx context.Context) (int, error)
}
