package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/onlineshop/shop-system/internal/core/domain"
	"github.com/onlineshop/shop-system/internal/core/ports"
)

type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]ports.CustomerProjection, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	projections := make([]ports.CustomerProjection, 0, len(customers))
	for i := range customers {
		projections = append(projections, toCustomerProjection(&customers[i]))
	}
	return projections, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, id uint) (*ports.CustomerProjection, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	projection := toCustomerProjection(customer)
	return &projection, nil
}

// DeleteCustomerByID removes a customer and cascades to their orders. Only
// the owning customer or an administrator may delete.
func (s *CustomerService) DeleteCustomerByID(ctx context.Context, id uint, caller ports.Identity) (string, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if !caller.IsAdmin() && customer.Username != caller.Username {
		return "", domain.ErrNotAllowedToDelete
	}

	if err := s.repo.Delete(ctx, customer); err != nil {
		return "", err
	}

	s.logger.Info().Uint("customer_id", id).Str("deleted_by", caller.Username).Msg("customer deleted")
	return fmt.Sprintf("User with the id %d has been deleted successfully.", id), nil
}

// UpdateCustomerByID applies a merge-patch: only fields present in the input
// are touched, everything else keeps its stored value.
func (s *CustomerService) UpdateCustomerByID(ctx context.Context, id uint, in ports.UpdateCustomerInput) (string, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if in.Username != nil {
		newUsername := strings.TrimSpace(*in.Username)
		if newUsername != "" && newUsername != customer.Username {
			taken, err := s.repo.ExistsByUsername(ctx, newUsername)
			if err != nil {
				return "", err
			}
			if taken {
				return "", fmt.Errorf("username %q: %w", newUsername, domain.ErrUsernameTaken)
			}
			customer.Username = newUsername
		}
	}

	if in.Phone != nil {
		if phone := strings.TrimSpace(*in.Phone); phone != "" {
			customer.Phone = phone
		}
	}

	if in.Address != nil {
		if address := strings.TrimSpace(*in.Address); address != "" {
			customer.Address = address
		}
	}

	if in.Role != nil && strings.TrimSpace(*in.Role) != "" {
		role, ok := domain.ParseRole(*in.Role)
		if !ok {
			return "", fmt.Errorf("%w: %q, valid roles are ADMIN, CUSTOMER", domain.ErrInvalidRole, *in.Role)
		}
		customer.Role = role
	}

	if in.Image != nil {
		customer.ImageBytes = in.Image.Bytes
		customer.ImageName = in.Image.Name
		customer.ImageType = in.Image.ContentType
	}

	if err := s.repo.Save(ctx, customer); err != nil {
		return "", err
	}

	s.logger.Info().Uint("customer_id", id).Msg("customer updated")
	return fmt.Sprintf("Customer with the username: %s has been updated successfully.", customer.Username), nil
}

func (s *CustomerService) GetCustomerImage(ctx context.Context, id uint) (*ports.ImageData, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !customer.HasImage() {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrImageNotFound)
	}

	return &ports.ImageData{
		Name:        customer.ImageName,
		ContentType: customer.ImageType,
		Bytes:       customer.ImageBytes,
	}, nil
}

func toCustomerProjection(c *domain.Customer) ports.CustomerProjection {
	return ports.CustomerProjection{
		ID:       c.ID,
		Username: c.Username,
		Address:  c.Address,
		Phone:    c.Phone,
		Role:     string(c.Role),
		HasImage: c.HasImage(),
	}
}
