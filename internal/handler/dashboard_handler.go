package handler

import (
	"go-bizadmin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.ReportService
}

func NewDashboardHandler(s service.ReportService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats(currentUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetMonthlySales returns the sales chart data (12 month buckets, top series)
func (h *DashboardHandler) GetMonthlySales(c *fiber.Ctx) error {
	chart, err := h.service.GetMonthlySales(currentUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly sales"})
	}
	return c.JSON(chart)
}

// GetMonthlyExpenses returns the expense chart data
func (h *DashboardHandler) GetMonthlyExpenses(c *fiber.Ctx) error {
	chart, err := h.service.GetMonthlyExpenses(currentUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly expenses"})
	}
	return c.JSON(chart)
}

func (h *DashboardHandler) ExportInvoicesCSV(c *fiber.Ctx) error {
	csv, err := h.service.InvoicesCSV(currentUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export invoices"})
	}
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="invoices.csv"`)
	return c.SendString(csv)
}

func (h *DashboardHandler) ExportExpensesCSV(c *fiber.Ctx) error {
	csv, err := h.service.ExpensesCSV(currentUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export expenses"})
	}
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="expenses.csv"`)
	return c.SendString(csv)
}
