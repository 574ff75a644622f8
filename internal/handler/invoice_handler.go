package handler

import (
	"time"

	"go-bizadmin/internal/model"
	"go-bizadmin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	service service.InvoiceService
}

func NewInvoiceHandler(s service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func toResponses(invoices []model.Invoice) []model.InvoiceResponse {
	today := time.Now()
	responses := make([]model.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = invoices[i].ToResponse(today)
	}
	return responses
}

func (h *InvoiceHandler) GetInvoices(c *fiber.Ctx) error {
	invoices, err := h.service.List(currentUserID(c), false)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toResponses(invoices))
}

func (h *InvoiceHandler) GetBackdatedInvoices(c *fiber.Ctx) error {
	invoices, err := h.service.List(currentUserID(c), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toResponses(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	inv, err := h.service.Get(currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv.ToResponse(time.Now()))
}

func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	var in service.InvoiceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	inv, err := h.service.Create(currentUserID(c), &in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Invoice created", "data": inv})
}

func (h *InvoiceHandler) CreateBackdatedInvoice(c *fiber.Ctx) error {
	var in service.InvoiceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	inv, err := h.service.CreateBackdated(currentUserID(c), &in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Backdated invoice created", "data": inv})
}

func (h *InvoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	var patch service.InvoiceHeaderPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(currentUserID(c), id, &patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Invoice updated", "data": updated})
}

// GetEditDraft returns the payload the edit form opens with: header fields
// plus one synthetic line carrying the stored subtotal.
func (h *InvoiceHandler) GetEditDraft(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	draft, err := h.service.BuildEditDraft(currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(draft)
}

func (h *InvoiceHandler) DeleteInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	if err := h.service.Delete(currentUserID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Invoice deleted"})
}
