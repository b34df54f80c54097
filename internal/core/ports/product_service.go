package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductProjection is the response-shaped product view.
type ProductProjection struct {
	ID       uint
	Name     string
	Supplier string
	Price    decimal.Decimal
	HasImage bool
}

// AddProductInput carries the data needed to create a product. Image is
// optional; when absent the default placeholder is attached.
type AddProductInput struct {
	Name     string
	Supplier string
	Price    decimal.Decimal
	Image    *ImageUpload
}

// UpdateProductInput is a merge-patch: only non-nil fields are applied.
type UpdateProductInput struct {
	Name     *string
	Supplier *string
	Price    *decimal.Decimal
	Image    *ImageUpload
}

// ProductService defines catalog operations.
type ProductService interface {
	ListProducts(ctx context.Context) ([]ProductProjection, error)
	GetProductByID(ctx context.Context, id uint) (*ProductProjection, error)
	DeleteProductByID(ctx context.Context, id uint) (string, error)
	AddProduct(ctx context.Context, in AddProductInput) (string, error)
	UpdateProductByID(ctx context.Context, id uint, in UpdateProductInput) (string, error)
	GetProductImage(ctx context.Context, id uint) (*ImageData, error)
}
