package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/onlineshop/shop-system/internal/core/ports"
)

func TestPDFRenderer_RenderReceipt(t *testing.T) {
	r := NewPDFRenderer()

	pdf, err := r.RenderReceipt(ports.ReceiptData{
		OrderID:      7,
		Date:         time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		City:         "Berlin",
		Status:       "DELIVERED",
		CustomerName: "alice",
		ProductName:  "Keyboard",
		TotalPrice:   decimal.RequireFromString("49.99"),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output is not a PDF document, starts with %q", pdf[:min(8, len(pdf))])
	}
	if len(pdf) < 500 {
		t.Errorf("suspiciously small document: %d bytes", len(pdf))
	}
}

func TestPDFRenderer_RenderCustomerList(t *testing.T) {
	r := NewPDFRenderer()

	pdf, err := r.RenderCustomerList(ports.CustomerListReport{
		Title:  "Current Customer List",
		Footer: "Automatically generated report",
		Customers: []ports.CustomerProjection{
			{ID: 1, Username: "alice", Address: "Berlin", Phone: "555-0100", Role: "CUSTOMER"},
			{ID: 2, Username: "root", Address: "Hamburg", Phone: "555-0101", Role: "ADMIN"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestPDFRenderer_RenderCustomerList_EmptyListStillRenders(t *testing.T) {
	r := NewPDFRenderer()

	pdf, err := r.RenderCustomerList(ports.CustomerListReport{
		Title:  "Current Customer List",
		Footer: "Automatically generated report",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}
