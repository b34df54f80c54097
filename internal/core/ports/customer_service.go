package ports

import (
	"context"

	"github.com/onlineshop/shop-system/internal/core/domain"
)

// Identity is the authenticated caller resolved from the bearer token.
type Identity struct {
	Username string
	Role     domain.Role
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// CustomerProjection is the response-shaped customer view. It omits the
// password hash, the raw image bytes, and the order back-references.
type CustomerProjection struct {
	ID       uint
	Username string
	Address  string
	Phone    string
	Role     string
	HasImage bool
}

// UpdateCustomerInput is a merge-patch: only non-nil fields are applied.
type UpdateCustomerInput struct {
	Username *string
	Phone    *string
	Address  *string
	Role     *string
	Image    *ImageUpload
}

// CustomerService defines administrative operations on customer accounts.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]CustomerProjection, error)
	GetCustomerByID(ctx context.Context, id uint) (*CustomerProjection, error)
	// DeleteCustomerByID removes the customer and, by cascade, their orders.
	// Only the owning customer or an administrator may delete.
	DeleteCustomerByID(ctx context.Context, id uint, caller Identity) (string, error)
	UpdateCustomerByID(ctx context.Context, id uint, in UpdateCustomerInput) (string, error)
	GetCustomerImage(ctx context.Context, id uint) (*ImageData, error)
}
