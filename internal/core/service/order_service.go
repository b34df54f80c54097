package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/onlineshop/shop-system/internal/core/domain"
	"github.com/onlineshop/shop-system/internal/core/ports"
)

// defaultReconcileAfter is how long an order stays SHIPPED before the sweep
// advances it to DELIVERED.
const defaultReconcileAfter = 24 * time.Hour

type OrderService struct {
	orders         ports.OrderRepository
	customers      ports.CustomerRepository
	products       ports.ProductRepository
	audit          ports.AuditRepository
	reconcileAfter time.Duration
	logger         zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	customers ports.CustomerRepository,
	products ports.ProductRepository,
	audit ports.AuditRepository,
	reconcileAfter time.Duration,
	logger zerolog.Logger,
) *OrderService {
	if reconcileAfter <= 0 {
		reconcileAfter = defaultReconcileAfter
	}
	return &OrderService{
		orders:         orders,
		customers:      customers,
		products:       products,
		audit:          audit,
		reconcileAfter: reconcileAfter,
		logger:         logger,
	}
}

// CreateOrder places an order for the given customer and product. The
// delivery city is a snapshot of the customer's address at this instant;
// later address changes never alter past orders.
func (s *OrderService) CreateOrder(ctx context.Context, in ports.CreateOrderInput) (string, error) {
	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	customer, err := s.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	order := &domain.Order{
		Date:       time.Now().UTC(),
		City:       customer.Address,
		Status:     domain.StatusShipped,
		CustomerID: customer.ID,
		ProductID:  product.ID,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Uint("customer_id", in.CustomerID).Uint("product_id", in.ProductID).Msg("failed to create order")
		return "", err
	}

	s.auditEvent(ctx, order.ID, order.Status, order.Date, "api")

	s.logger.Info().
		Uint("order_id", order.ID).
		Uint("customer_id", customer.ID).
		Uint("product_id", product.ID).
		Str("city", order.City).
		Msg("order created")

	return "Order created successfully!", nil
}

// GetAllOrders returns every order as a flat view. There is no pagination;
// the full table is loaded on each call.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]ports.OrderView, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, toOrderView(&orders[i]))
	}
	return views, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*ports.OrderView, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toOrderView(order)
	return &view, nil
}

func (s *OrderService) DeleteOrderByID(ctx context.Context, id uint) (string, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.orders.Delete(ctx, order); err != nil {
		return "", err
	}

	s.logger.Info().Uint("order_id", id).Msg("order deleted")
	return fmt.Sprintf("Order with id %d deleted successfully.", id), nil
}

// ReconcileStatuses advances every SHIPPED order dated strictly before
// now − reconcileAfter to DELIVERED. Each row is updated independently:
// one failed persistence never aborts the rest of the sweep, since this is
// an unattended maintenance task with no caller to report to.
func (s *OrderService) ReconcileStatuses(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.reconcileAfter)

	stale, err := s.orders.FindByStatusAndDateBefore(ctx, domain.StatusShipped, cutoff)
	if err != nil {
		return 0, fmt.Errorf("reconcile: %w", err)
	}

	transitioned := 0
	for i := range stale {
		order := &stale[i]
		if !order.Status.CanTransitionTo(domain.StatusDelivered) {
			continue
		}

		if err := s.orders.UpdateStatus(ctx, order.ID, domain.StatusDelivered); err != nil {
			s.logger.Error().Err(err).Uint("order_id", order.ID).Msg("failed to mark order delivered")
			continue
		}

		transitioned++
		s.auditEvent(ctx, order.ID, domain.StatusDelivered, time.Now().UTC(), "reconciler")
	}

	if transitioned > 0 || len(stale) > 0 {
		s.logger.Info().
			Int("candidates", len(stale)).
			Int("transitioned", transitioned).
			Time("cutoff", cutoff).
			Msg("order status sweep finished")
	}

	return transitioned, nil
}

// auditEvent writes to the audit trail; failures are logged and swallowed.
func (s *OrderService) auditEvent(ctx context.Context, orderID uint, status domain.OrderStatus, ts time.Time, source string) {
	if s.audit == nil {
		return
	}
	event := &domain.OrderEvent{
		OrderID:   orderID,
		Status:    status,
		Timestamp: ts,
		Source:    source,
	}
	if err := s.audit.InsertOrderEvent(ctx, event); err != nil {
		s.logger.Warn().Err(err).Uint("order_id", orderID).Msg("failed to insert audit event")
	}
}

func toOrderView(o *domain.Order) ports.OrderView {
	return ports.OrderView{
		ID:       o.ID,
		Date:     o.Date,
		City:     o.City,
		Status:   string(o.Status),
		Customer: toCustomerProjection(&o.Customer),
		Product:  toProductProjection(&o.Product),
	}
}
