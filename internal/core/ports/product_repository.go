package ports

import (
	"context"

	"github.com/onlineshop/shop-system/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, p *domain.Product) error
}
