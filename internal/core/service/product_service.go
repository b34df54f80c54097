package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/onlineshop/shop-system/internal/core/domain"
	"github.com/onlineshop/shop-system/internal/core/ports"
	"github.com/onlineshop/shop-system/internal/pkg/images"
)

// ProductCache abstracts the read-through projection cache (Redis). A nil
// cache disables caching without changing service behaviour.
type ProductCache interface {
	Get(ctx context.Context, id uint) (*ports.ProductProjection, bool)
	Set(ctx context.Context, id uint, p *ports.ProductProjection)
	Invalidate(ctx context.Context, id uint)
}

type ProductService struct {
	repo   ports.ProductRepository
	cache  ProductCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ProductCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]ports.ProductProjection, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	projections := make([]ports.ProductProjection, 0, len(products))
	for i := range products {
		projections = append(projections, toProductProjection(&products[i]))
	}
	return projections, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*ports.ProductProjection, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, id); ok {
			return cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	projection := toProductProjection(product)
	if s.cache != nil {
		s.cache.Set(ctx, id, &projection)
	}
	return &projection, nil
}

func (s *ProductService) DeleteProductByID(ctx context.Context, id uint) (string, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, product); err != nil {
		return "", err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.logger.Info().Uint("product_id", id).Msg("product deleted")
	return fmt.Sprintf("Product with the id %d has been deleted successfully.", id), nil
}

// AddProduct creates a product. When no image is uploaded the embedded
// placeholder is attached instead.
func (s *ProductService) AddProduct(ctx context.Context, in ports.AddProductInput) (string, error) {
	name := strings.TrimSpace(in.Name)

	taken, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("product name %q: %w", name, domain.ErrProductNameTaken)
	}

	if in.Price.IsNegative() {
		return "", domain.ErrInvalidPrice
	}

	product := &domain.Product{
		Name:     name,
		Supplier: strings.TrimSpace(in.Supplier),
		Price:    in.Price.Round(2),
	}

	if in.Image != nil {
		product.ImageBytes = in.Image.Bytes
		product.ImageName = in.Image.Name
		product.ImageType = in.Image.ContentType
	} else {
		product.ImageBytes = images.Placeholder()
		product.ImageName = images.PlaceholderName
		product.ImageType = images.PlaceholderType
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return "", err
	}

	s.logger.Info().Uint("product_id", product.ID).Str("name", product.Name).Msg("product added")
	return fmt.Sprintf("Product with the name: %s has been added successfully.", product.Name), nil
}

// UpdateProductByID applies a merge-patch to the product.
func (s *ProductService) UpdateProductByID(ctx context.Context, id uint, in ports.UpdateProductInput) (string, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if in.Name != nil {
		newName := strings.TrimSpace(*in.Name)
		if newName != "" && newName != product.Name {
			taken, err := s.repo.ExistsByName(ctx, newName)
			if err != nil {
				return "", err
			}
			if taken {
				return "", fmt.Errorf("product name %q: %w", newName, domain.ErrProductNameTaken)
			}
			product.Name = newName
		}
	}

	if in.Supplier != nil {
		if supplier := strings.TrimSpace(*in.Supplier); supplier != "" {
			product.Supplier = supplier
		}
	}

	if in.Price != nil {
		if in.Price.IsNegative() {
			return "", domain.ErrInvalidPrice
		}
		product.Price = in.Price.Round(2)
	}

	if in.Image != nil {
		product.ImageBytes = in.Image.Bytes
		product.ImageName = in.Image.Name
		product.ImageType = in.Image.ContentType
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return "", err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.logger.Info().Uint("product_id", id).Msg("product updated")
	return fmt.Sprintf("Product with the name: %s has been updated successfully.", product.Name), nil
}

func (s *ProductService) GetProductImage(ctx context.Context, id uint) (*ports.ImageData, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !product.HasImage() {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrImageNotFound)
	}

	return &ports.ImageData{
		Name:        product.ImageName,
		ContentType: product.ImageType,
		Bytes:       product.ImageBytes,
	}, nil
}

func toProductProjection(p *domain.Product) ports.ProductProjection {
	return ports.ProductProjection{
		ID:       p.ID,
		Name:     p.Name,
		Supplier: p.Supplier,
		Price:    p.Price,
		HasImage: p.HasImage(),
	}
}
