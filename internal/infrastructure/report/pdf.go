// Package report renders receipts and tabular reports as PDF byte streams.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/onlineshop/shop-system/internal/core/ports"
)

const dateLayout = "2006-01-02 15:04"

// PDFRenderer implements ports.ReportRenderer on top of gofpdf.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// RenderReceipt produces a one-page order receipt.
func (r *PDFRenderer) RenderReceipt(data ports.ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Online Shop - Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	rows := [][2]string{
		{"Order ID", strconv.FormatUint(uint64(data.OrderID), 10)},
		{"Date", data.Date.Format(dateLayout)},
		{"City", data.City},
		{"Status", data.Status},
		{"Customer", data.CustomerName},
		{"Product", data.ProductName},
		{"Total Price", data.TotalPrice.StringFixed(2)},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(50, 9, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(120, 9, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at %s", time.Now().UTC().Format(dateLayout)), "", 1, "L", false, 0, "")

	return output(pdf)
}

// RenderCustomerList produces a table of all customers with a title and footer.
func (r *PDFRenderer) RenderCustomerList(report ports.CustomerListReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, report.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"ID", "Username", "Address", "Phone", "Role"}
	widths := []float64{15, 40, 60, 35, 30}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, c := range report.Customers {
		cells := []string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.Username,
			c.Address,
			c.Phone,
			c.Role,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, report.Footer, "", 1, "L", false, 0, "")

	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
