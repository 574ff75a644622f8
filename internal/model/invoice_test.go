package model

import (
	"testing"
	"time"
)

func TestInvoiceItem_ComputeLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice float64
		want      float64
	}{
		{"two at 100", 2, 100, 200},
		{"one at 50", 1, 50, 50},
		{"fractional price", 3, 19.99, 59.97},
		{"zero price", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := InvoiceItem{Quantity: tt.quantity, UnitPrice: tt.unitPrice}
			got := item.ComputeLineTotal()
			if diff := got - tt.want; diff > 0.001 || diff < -0.001 {
				t.Errorf("ComputeLineTotal() = %f, want %f", got, tt.want)
			}
			if item.LineTotal != got {
				t.Errorf("LineTotal not stored: %f vs %f", item.LineTotal, got)
			}
		})
	}
}

func TestInvoiceItem_RecomputeAfterChange(t *testing.T) {
	item := InvoiceItem{Quantity: 2, UnitPrice: 100}
	item.ComputeLineTotal()

	item.Quantity = 3
	if got := item.ComputeLineTotal(); got != 300 {
		t.Errorf("after quantity change = %f, want 300", got)
	}

	item.UnitPrice = 10
	if got := item.ComputeLineTotal(); got != 30 {
		t.Errorf("after price change = %f, want 30", got)
	}
}

func TestInvoice_IsOverdue(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  InvoiceStatus
		dueDate time.Time
		want    bool
	}{
		{"pending past due", InvoiceStatusPending, today.AddDate(0, 0, -1), true},
		{"pending due today", InvoiceStatusPending, today, false},
		{"pending due tomorrow", InvoiceStatusPending, today.AddDate(0, 0, 1), false},
		{"paid past due", InvoiceStatusPaid, today.AddDate(0, 0, -30), false},
		{"draft past due", InvoiceStatusDraft, today.AddDate(0, 0, -30), false},
		{"overdue status past due", InvoiceStatusOverdue, today.AddDate(0, 0, -30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Invoice{Status: tt.status, DueDate: tt.dueDate}
			if got := inv.IsOverdue(today); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Overdue-ness derives from the reference date alone, with no stored state to
// go stale.
func TestInvoice_IsOverdue_AdvancingClock(t *testing.T) {
	due := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	inv := Invoice{Status: InvoiceStatusPending, DueDate: due}

	if inv.IsOverdue(due.AddDate(0, 0, -1)) {
		t.Error("overdue before due date")
	}
	if !inv.IsOverdue(due.AddDate(0, 0, 1)) {
		t.Error("not overdue after due date")
	}
}

func TestInvoice_ClientDisplayName(t *testing.T) {
	inv := Invoice{Client: &Client{CompanyName: "Acme Corp"}}
	if got := inv.ClientDisplayName(); got != "Acme Corp" {
		t.Errorf("ClientDisplayName() = %q, want %q", got, "Acme Corp")
	}

	missing := Invoice{}
	if got := missing.ClientDisplayName(); got != "Unknown Client" {
		t.Errorf("ClientDisplayName() = %q, want %q", got, "Unknown Client")
	}
}

func TestInvoice_ToResponse(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	inv := Invoice{
		Status:  InvoiceStatusPending,
		DueDate: today.AddDate(0, 0, -5),
	}

	resp := inv.ToResponse(today)
	if resp.ClientName != "Unknown Client" {
		t.Errorf("ClientName = %q, want %q", resp.ClientName, "Unknown Client")
	}
	if !resp.Overdue {
		t.Error("expected overdue response")
	}
}
