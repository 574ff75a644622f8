package service

import (
	"strings"
	"testing"
	"time"

	"go-bizadmin/internal/model"
	"go-bizadmin/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB, now func() time.Time) ReportService {
	svc := NewReportService(
		repository.NewInvoiceRepo(db),
		repository.NewExpenseRepo(db),
		repository.NewInventoryRepo(db),
		repository.NewClientRepo(db),
	).(*reportService)
	if now != nil {
		svc.now = now
	}
	return svc
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	client := model.Client{UserID: userID, CompanyName: "Acme Corp", ContactName: "Jane", Email: "jane@acme.test"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("client: %v", err)
	}

	invoices := []model.Invoice{
		{UserID: userID, InvoiceNumber: "P-1", ClientID: client.ID, Status: model.InvoiceStatusPaid, TotalAmount: 1000, IssueDate: today, DueDate: today},
		{UserID: userID, InvoiceNumber: "P-2", ClientID: client.ID, Status: model.InvoiceStatusPending, TotalAmount: 200, IssueDate: today.AddDate(0, -1, 0), DueDate: today.AddDate(0, 0, -3)},
	}
	for i := range invoices {
		if err := db.Create(&invoices[i]).Error; err != nil {
			t.Fatalf("invoice: %v", err)
		}
	}

	expense := model.CompanyExpense{UserID: userID, ExpenseName: "Rent", Amount: 300, ExpenseDate: today}
	if err := db.Create(&expense).Error; err != nil {
		t.Fatalf("expense: %v", err)
	}

	items := []model.InventoryItem{
		{UserID: userID, Name: "Widget", Quantity: 50, Status: model.StockInStock},
		{UserID: userID, Name: "Gadget", Quantity: 2, Status: model.StockLowStock},
		{UserID: userID, Name: "Gizmo", Quantity: 0, Status: model.StockOutOfStock},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("inventory: %v", err)
		}
	}

	svc := newReportService(db, func() time.Time { return today })
	stats, err := svc.GetDashboardStats(userID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.Revenue != 1000 {
		t.Errorf("revenue = %f, want 1000", stats.Revenue)
	}
	if stats.Outstanding != 200 {
		t.Errorf("outstanding = %f, want 200", stats.Outstanding)
	}
	if stats.NetProfit != 700 {
		t.Errorf("net profit = %f, want 700", stats.NetProfit)
	}
	if stats.ProfitMargin != 0.7 {
		t.Errorf("margin = %f, want 0.7", stats.ProfitMargin)
	}
	if stats.OverdueCount != 1 {
		t.Errorf("overdue count = %d, want 1", stats.OverdueCount)
	}
	if stats.ClientCount != 1 || stats.InvoiceCount != 2 {
		t.Errorf("counts = %d clients / %d invoices", stats.ClientCount, stats.InvoiceCount)
	}
	if stats.InventoryCount != 3 || stats.LowStockCount != 1 || stats.OutOfStock != 1 {
		t.Errorf("inventory counts = %d/%d/%d", stats.InventoryCount, stats.LowStockCount, stats.OutOfStock)
	}
}

func TestGetMonthlyExpenses_UncategorizedBucket(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	expenses := []model.CompanyExpense{
		{UserID: userID, ExpenseName: "Rent", Amount: 500, Category: "Facilities", ExpenseDate: date},
		{UserID: userID, ExpenseName: "Misc", Amount: 40, ExpenseDate: date},
	}
	for i := range expenses {
		if err := db.Create(&expenses[i]).Error; err != nil {
			t.Fatalf("expense: %v", err)
		}
	}

	svc := newReportService(db, nil)
	chart, err := svc.GetMonthlyExpenses(userID)
	if err != nil {
		t.Fatalf("chart: %v", err)
	}

	april := chart.Rows[3]
	if got := april.Values["Facilities"]; got != 500 {
		t.Errorf("Facilities = %f, want 500", got)
	}
	if got := april.Values["Uncategorized"]; got != 40 {
		t.Errorf("Uncategorized = %f, want 40", got)
	}
}

func TestInvoicesCSV(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	inv := model.Invoice{
		UserID:        userID,
		InvoiceNumber: "INV-042",
		ClientID:      uuid.New(), // dangling on purpose
		Status:        model.InvoiceStatusPending,
		IssueDate:     today,
		DueDate:       today.AddDate(0, 1, 0),
		Subtotal:      99.5,
		TotalAmount:   99.5,
	}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("invoice: %v", err)
	}

	svc := newReportService(db, nil)
	csv, err := svc.InvoicesCSV(userID)
	if err != nil {
		t.Fatalf("csv: %v", err)
	}

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv lines = %d, want header + 1 row", len(lines))
	}
	if lines[0] != "invoice_number,client,issue_date,due_date,status,subtotal,tax_amount,total_amount" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "INV-042,Unknown Client,2025-06-15,2025-07-15,pending,99.50,0.00,99.50" {
		t.Errorf("row = %q", lines[1])
	}
}
