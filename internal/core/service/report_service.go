package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/onlineshop/shop-system/internal/core/domain"
	"github.com/onlineshop/shop-system/internal/core/ports"
)

const (
	customerReportTitle  = "SWE212 Current Customer List"
	customerReportFooter = "Automatically generated report"
)

// ReportService assembles flat report records and delegates PDF rendering
// to the configured engine.
type ReportService struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	renderer  ports.ReportRenderer
	logger    zerolog.Logger
}

func NewReportService(
	orders ports.OrderRepository,
	customers ports.CustomerRepository,
	renderer ports.ReportRenderer,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{orders: orders, customers: customers, renderer: renderer, logger: logger}
}

// OrderReceipt renders a receipt for a single order as a PDF byte stream.
func (s *ReportService) OrderReceipt(ctx context.Context, orderID uint) ([]byte, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	data := ports.ReceiptData{
		OrderID:      order.ID,
		Date:         order.Date,
		City:         order.City,
		Status:       string(order.Status),
		CustomerName: order.Customer.Username,
		ProductName:  order.Product.Name,
		TotalPrice:   order.Product.Price,
	}

	pdf, err := s.renderer.RenderReceipt(data)
	if err != nil {
		s.logger.Error().Err(err).Uint("order_id", orderID).Msg("receipt rendering failed")
		return nil, fmt.Errorf("%w: order receipt: %v", domain.ErrReportProcess, err)
	}
	return pdf, nil
}

// CustomerListReport renders the full customer list as a tabular PDF.
func (s *ReportService) CustomerListReport(ctx context.Context) ([]byte, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	report := ports.CustomerListReport{
		Title:     customerReportTitle,
		Footer:    customerReportFooter,
		Customers: make([]ports.CustomerProjection, 0, len(customers)),
	}
	for i := range customers {
		report.Customers = append(report.Customers, toCustomerProjection(&customers[i]))
	}

	pdf, err := s.renderer.RenderCustomerList(report)
	if err != nil {
		s.logger.Error().Err(err).Msg("customer list rendering failed")
		return nil, fmt.Errorf("%w: customer list: %v", domain.ErrReportProcess, err)
	}
	return pdf, nil
}
