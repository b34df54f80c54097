package ports

import (
	"context"

	"github.com/onlineshop/shop-system/internal/core/domain"
)

// AuditRepository records order state changes in an append-only trail.
// Implementations are best-effort: callers log failures and carry on.
type AuditRepository interface {
	InsertOrderEvent(ctx context.Context, event *domain.OrderEvent) error
}
