package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptData is the flat record handed to the rendering engine for a
// single-order receipt.
type ReceiptData struct {
	OrderID      uint
	Date         time.Time
	City         string
	Status       string
	CustomerName string
	ProductName  string
	TotalPrice   decimal.Decimal
}

// CustomerListReport is the data set for the tabular customer report.
type CustomerListReport struct {
	Title     string
	Footer    string
	Customers []CustomerProjection
}

// ReportRenderer is the external rendering engine boundary.
type ReportRenderer interface {
	RenderReceipt(data ReceiptData) ([]byte, error)
	RenderCustomerList(report CustomerListReport) ([]byte, error)
}

// ReportService assembles report data and delegates rendering.
type ReportService interface {
	OrderReceipt(ctx context.Context, orderID uint) ([]byte, error)
	CustomerListReport(ctx context.Context) ([]byte, error)
}
