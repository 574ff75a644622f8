package service

import (
	"testing"
	"time"

	"go-bizadmin/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyAggregate_TwelveFixedBuckets(t *testing.T) {
	rows := MonthlyAggregate(nil)
	if len(rows) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Month != time.Month(i+1) {
			t.Errorf("bucket %d has month %v", i, row.Month)
		}
		if len(row.Values) != 0 {
			t.Errorf("empty dataset produced values in %v", row.Month)
		}
	}
}

func TestMonthlyAggregate_SumsPerGroup(t *testing.T) {
	records := []AggRecord{
		{Date: date(2025, time.March, 1), Group: "Widgets", Value: 100},
		{Date: date(2025, time.March, 20), Group: "Widgets", Value: 50},
		{Date: date(2025, time.March, 20), Group: "Gadgets", Value: 10},
		{Date: date(2025, time.July, 5), Group: "Widgets", Value: 30},
	}

	rows := MonthlyAggregate(records)
	march := rows[2]
	if got := march.Values["Widgets"]; got != 150 {
		t.Errorf("March Widgets = %f, want 150", got)
	}
	if got := march.Values["Gadgets"]; got != 10 {
		t.Errorf("March Gadgets = %f, want 10", got)
	}
	if got := rows[6].Values["Widgets"]; got != 30 {
		t.Errorf("July Widgets = %f, want 30", got)
	}

	// Group keys with no data in a month are absent, not zero
	if _, ok := rows[6].Values["Gadgets"]; ok {
		t.Error("July should not carry a Gadgets entry")
	}
}

// Buckets are year-blind: the same month number from different years merges.
func TestMonthlyAggregate_MergesYears(t *testing.T) {
	records := []AggRecord{
		{Date: date(2024, time.January, 10), Group: "Rent", Value: 1000},
		{Date: date(2025, time.January, 10), Group: "Rent", Value: 1100},
	}

	rows := MonthlyAggregate(records)
	if got := rows[0].Values["Rent"]; got != 2100 {
		t.Errorf("January Rent = %f, want 2100 (both years merged)", got)
	}
}

func TestTopGroups(t *testing.T) {
	records := []AggRecord{
		{Date: date(2025, time.January, 1), Group: "A", Value: 5},
		{Date: date(2025, time.February, 1), Group: "A", Value: 5},
		{Date: date(2025, time.January, 1), Group: "B", Value: 100},
		{Date: date(2025, time.January, 1), Group: "C", Value: 50},
	}
	rows := MonthlyAggregate(records)

	top := TopGroups(rows, 2)
	if len(top) != 2 || top[0] != "B" || top[1] != "C" {
		t.Errorf("TopGroups = %v, want [B C]", top)
	}

	all := TopGroups(rows, 8)
	if len(all) != 3 {
		t.Errorf("TopGroups with large n = %v, want all 3 keys", all)
	}
}

func TestFilterGroups(t *testing.T) {
	records := []AggRecord{
		{Date: date(2025, time.January, 1), Group: "A", Value: 5},
		{Date: date(2025, time.January, 1), Group: "B", Value: 100},
	}
	rows := FilterGroups(MonthlyAggregate(records), []string{"B"})

	if _, ok := rows[0].Values["A"]; ok {
		t.Error("filtered group A still present")
	}
	if got := rows[0].Values["B"]; got != 100 {
		t.Errorf("kept group B = %f, want 100", got)
	}
}

func TestNetProfit(t *testing.T) {
	invoices := []model.Invoice{
		{Status: model.InvoiceStatusPaid, TotalAmount: 1000},
		{Status: model.InvoiceStatusPaid, TotalAmount: 500},
		{Status: model.InvoiceStatusPending, TotalAmount: 9999}, // not revenue
		{Status: model.InvoiceStatusDraft, TotalAmount: 123},    // not revenue
	}
	expenses := []model.CompanyExpense{
		{Amount: 400},
		{Amount: 100},
	}

	profit, revenue, expenseTotal := NetProfit(invoices, expenses)
	if revenue != 1500 {
		t.Errorf("revenue = %f, want 1500", revenue)
	}
	if expenseTotal != 500 {
		t.Errorf("expenses = %f, want 500", expenseTotal)
	}
	if profit != 1000 {
		t.Errorf("profit = %f, want 1000", profit)
	}
}

func TestProfitMargin(t *testing.T) {
	tests := []struct {
		name    string
		profit  float64
		revenue float64
		want    float64
	}{
		{"half margin", 500, 1000, 0.5},
		{"negative margin", -200, 1000, -0.2},
		{"zero revenue reports exactly 0", -300, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProfitMargin(tt.profit, tt.revenue); got != tt.want {
				t.Errorf("ProfitMargin() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestInvoiceSubtotal(t *testing.T) {
	items := []DraftItem{
		{Description: "a", Quantity: 2, UnitPrice: 100},
		{Description: "b", Quantity: 1, UnitPrice: 50},
	}
	if got := InvoiceSubtotal(items); got != 250 {
		t.Errorf("InvoiceSubtotal = %f, want 250", got)
	}

	// Insertion order is irrelevant to the sum
	reversed := []DraftItem{items[1], items[0]}
	if got := InvoiceSubtotal(reversed); got != 250 {
		t.Errorf("reversed InvoiceSubtotal = %f, want 250", got)
	}

	if got := InvoiceSubtotal(nil); got != 0 {
		t.Errorf("empty InvoiceSubtotal = %f, want 0", got)
	}
}
