package ports

import (
	"context"

	"github.com/onlineshop/shop-system/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
// Delete cascades to the customer's orders (orphan removal).
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	FindByID(ctx context.Context, id uint) (*domain.Customer, error)
	FindByUsername(ctx context.Context, username string) (*domain.Customer, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Save(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, c *domain.Customer) error
}
