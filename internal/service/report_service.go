package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go-bizadmin/internal/model"
	"go-bizadmin/internal/repository"

	"github.com/google/uuid"
)

// maxChartSeries caps the number of distinct series on the monthly charts.
const maxChartSeries = 8

// AggRecord is one data point fed into MonthlyAggregate.
type AggRecord struct {
	Date  time.Time
	Group string
	Value float64
}

// MonthlyRow is one calendar-month bucket. Group keys with no data that month
// are absent from Values, not zero.
type MonthlyRow struct {
	Month  time.Month         `json:"month"`
	Values map[string]float64 `json:"values"`
}

// MonthlyAggregate buckets records into 12 fixed Jan-Dec buckets and sums
// Value per Group within each bucket. Year-blind: records from different
// years sharing a month number are merged.
func MonthlyAggregate(records []AggRecord) []MonthlyRow {
	rows := make([]MonthlyRow, 12)
	for i := range rows {
		rows[i] = MonthlyRow{Month: time.Month(i + 1), Values: make(map[string]float64)}
	}
	for _, rec := range records {
		rows[int(rec.Date.Month())-1].Values[rec.Group] += rec.Value
	}
	return rows
}

// TopGroups ranks group keys by their all-months sum, descending, and keeps
// the first n. Ties break alphabetically so output is deterministic.
func TopGroups(rows []MonthlyRow, n int) []string {
	totals := make(map[string]float64)
	for _, row := range rows {
		for key, value := range row.Values {
			totals[key] += value
		}
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if totals[keys[i]] != totals[keys[j]] {
			return totals[keys[i]] > totals[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// FilterGroups drops every group key not in keep from each month bucket.
func FilterGroups(rows []MonthlyRow, keep []string) []MonthlyRow {
	kept := make(map[string]bool, len(keep))
	for _, key := range keep {
		kept[key] = true
	}
	out := make([]MonthlyRow, len(rows))
	for i, row := range rows {
		filtered := MonthlyRow{Month: row.Month, Values: make(map[string]float64)}
		for key, value := range row.Values {
			if kept[key] {
				filtered.Values[key] = value
			}
		}
		out[i] = filtered
	}
	return out
}

// NetProfit computes revenue (paid invoice totals), total expenses, and their
// difference.
func NetProfit(invoices []model.Invoice, expenses []model.CompanyExpense) (profit, revenue, expenseTotal float64) {
	for _, inv := range invoices {
		if inv.Status == model.InvoiceStatusPaid {
			revenue += inv.TotalAmount
		}
	}
	for _, exp := range expenses {
		expenseTotal += exp.Amount
	}
	profit = revenue - expenseTotal
	return profit, revenue, expenseTotal
}

// ProfitMargin is profit over revenue, or exactly 0 when there is no revenue.
func ProfitMargin(profit, revenue float64) float64 {
	if revenue > 0 {
		return profit / revenue
	}
	return 0
}

// DashboardStats is the overview block on the landing page.
type DashboardStats struct {
	Revenue        float64 `json:"revenue"`
	Outstanding    float64 `json:"outstanding"`
	ExpenseTotal   float64 `json:"expense_total"`
	NetProfit      float64 `json:"net_profit"`
	ProfitMargin   float64 `json:"profit_margin"`
	InvoiceCount   int     `json:"invoice_count"`
	OverdueCount   int     `json:"overdue_count"`
	ClientCount    int     `json:"client_count"`
	InventoryCount int     `json:"inventory_count"`
	LowStockCount  int     `json:"low_stock_count"`
	OutOfStock     int     `json:"out_of_stock_count"`
}

// MonthlyChart is a chart payload: up to maxChartSeries series across 12
// month buckets.
type MonthlyChart struct {
	Series []string     `json:"series"`
	Rows   []MonthlyRow `json:"rows"`
}

type ReportService interface {
	GetDashboardStats(userID uuid.UUID) (*DashboardStats, error)
	GetMonthlySales(userID uuid.UUID) (*MonthlyChart, error)
	GetMonthlyExpenses(userID uuid.UUID) (*MonthlyChart, error)
	InvoicesCSV(userID uuid.UUID) (string, error)
	ExpensesCSV(userID uuid.UUID) (string, error)
}

type reportService struct {
	invoiceRepo   repository.InvoiceRepository
	expenseRepo   repository.ExpenseRepository
	inventoryRepo repository.InventoryRepository
	clientRepo    repository.ClientRepository
	now           func() time.Time
}

func NewReportService(
	invoiceRepo repository.InvoiceRepository,
	expenseRepo repository.ExpenseRepository,
	inventoryRepo repository.InventoryRepository,
	clientRepo repository.ClientRepository,
) ReportService {
	return &reportService{
		invoiceRepo:   invoiceRepo,
		expenseRepo:   expenseRepo,
		inventoryRepo: inventoryRepo,
		clientRepo:    clientRepo,
		now:           time.Now,
	}
}

func (s *reportService) GetDashboardStats(userID uuid.UUID) (*DashboardStats, error) {
	invoices, err := s.invoiceRepo.FindAll(userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindAll(userID)
	if err != nil {
		return nil, err
	}
	items, err := s.inventoryRepo.FindAll(userID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.FindAll(userID)
	if err != nil {
		return nil, err
	}

	profit, revenue, expenseTotal := NetProfit(invoices, expenses)
	stats := &DashboardStats{
		Revenue:      revenue,
		ExpenseTotal: expenseTotal,
		NetProfit:    profit,
		ProfitMargin: ProfitMargin(profit, revenue),
		InvoiceCount: len(invoices),
		ClientCount:  len(clients),
	}

	today := s.now()
	for _, inv := range invoices {
		if inv.Status == model.InvoiceStatusPending {
			stats.Outstanding += inv.TotalAmount
		}
		if inv.IsOverdue(today) {
			stats.OverdueCount++
		}
	}

	stats.InventoryCount = len(items)
	for _, item := range items {
		// Stock classification uses the manually-set status field, not the
		// quantity.
		switch item.Status {
		case model.StockLowStock:
			stats.LowStockCount++
		case model.StockOutOfStock:
			stats.OutOfStock++
		}
	}

	return stats, nil
}

// GetMonthlySales buckets every invoice line item by its parent invoice's
// issue month, grouped by item description, capped to the top series.
func (s *reportService) GetMonthlySales(userID uuid.UUID) (*MonthlyChart, error) {
	invoices, err := s.invoiceRepo.FindAll(userID)
	if err != nil {
		return nil, err
	}

	var records []AggRecord
	for _, inv := range invoices {
		for _, item := range inv.Items {
			records = append(records, AggRecord{
				Date:  inv.IssueDate,
				Group: item.Description,
				Value: item.LineTotal,
			})
		}
	}

	rows := MonthlyAggregate(records)
	series := TopGroups(rows, maxChartSeries)
	return &MonthlyChart{Series: series, Rows: FilterGroups(rows, series)}, nil
}

// GetMonthlyExpenses buckets expenses by expense date month, grouped by
// category.
func (s *reportService) GetMonthlyExpenses(userID uuid.UUID) (*MonthlyChart, error) {
	expenses, err := s.expenseRepo.FindAll(userID)
	if err != nil {
		return nil, err
	}

	var records []AggRecord
	for _, exp := range expenses {
		category := exp.Category
		if category == "" {
			category = "Uncategorized"
		}
		records = append(records, AggRecord{
			Date:  exp.ExpenseDate,
			Group: category,
			Value: exp.Amount,
		})
	}

	rows := MonthlyAggregate(records)
	series := TopGroups(rows, maxChartSeries)
	return &MonthlyChart{Series: series, Rows: FilterGroups(rows, series)}, nil
}

// InvoicesCSV renders the invoice list as CSV. Fields are joined with plain
// commas; embedded commas or quotes in values are not escaped.
func (s *reportService) InvoicesCSV(userID uuid.UUID) (string, error) {
	invoices, err := s.invoiceRepo.FindAll(userID)
	if err != nil {
		return "", err
	}

	lines := []string{"invoice_number,client,issue_date,due_date,status,subtotal,tax_amount,total_amount"}
	for _, inv := range invoices {
		lines = append(lines, strings.Join([]string{
			inv.InvoiceNumber,
			inv.ClientDisplayName(),
			inv.IssueDate.Format("2006-01-02"),
			inv.DueDate.Format("2006-01-02"),
			string(inv.Status),
			fmt.Sprintf("%.2f", inv.Subtotal),
			fmt.Sprintf("%.2f", inv.TaxAmount),
			fmt.Sprintf("%.2f", inv.TotalAmount),
		}, ","))
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// ExpensesCSV renders the expense list as CSV, same naive join as above.
func (s *reportService) ExpensesCSV(userID uuid.UUID) (string, error) {
	expenses, err := s.expenseRepo.FindAll(userID)
	if err != nil {
		return "", err
	}

	lines := []string{"expense_name,category,expense_date,amount"}
	for _, exp := range expenses {
		lines = append(lines, strings.Join([]string{
			exp.ExpenseName,
			exp.Category,
			exp.ExpenseDate.Format("2006-01-02"),
			fmt.Sprintf("%.2f", exp.Amount),
		}, ","))
	}
	return strings.Join(lines, "\n") + "\n", nil
}
