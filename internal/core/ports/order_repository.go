package ports

import (
	"context"
	"time"

	"github.com/onlineshop/shop-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Read methods
// return orders with their Customer and Product associations loaded.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Delete(ctx context.Context, o *domain.Order) error
	// FindByStatusAndDateBefore returns orders in the given status dated
	// strictly before cutoff. An order dated exactly at cutoff is excluded.
	FindByStatusAndDateBefore(ctx context.Context, status domain.OrderStatus, cutoff time.Time) ([]domain.Order, error)
	// UpdateStatus persists a status change for a single order row.
	UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error
}
