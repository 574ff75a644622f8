package handler

import (
	"go-bizadmin/internal/model"
	"go-bizadmin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service service.CompanyService
}

func NewSettingsHandler(s service.CompanyService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

func (h *SettingsHandler) GetCompanyInfo(c *fiber.Ctx) error {
	info, err := h.service.Get(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(info)
}

func (h *SettingsHandler) UpdateCompanyInfo(c *fiber.Ctx) error {
	var info model.CompanyInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(currentUserID(c), &info)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Company info updated", "data": updated})
}
