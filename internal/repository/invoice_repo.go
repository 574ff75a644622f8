package repository

import (
	"go-bizadmin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	CreateHeader(inv *model.Invoice) error
	CreateItem(item *model.InvoiceItem) error
	FindAll(userID uuid.UUID) ([]model.Invoice, error)
	FindByBackdated(userID uuid.UUID, backdated bool) ([]model.Invoice, error)
	FindByID(userID, id uuid.UUID) (*model.Invoice, error)
	FindByStatus(userID uuid.UUID, status model.InvoiceStatus) ([]model.Invoice, error)
	UpdateHeader(userID, id uuid.UUID, patch map[string]interface{}) error
	Delete(userID, id uuid.UUID) error
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db}
}

// CreateHeader writes the invoice header row only. Items are written one by
// one afterwards; the workflow is deliberately not transactional.
func (r *invoiceRepo) CreateHeader(inv *model.Invoice) error {
	return r.db.Omit("Items", "Client").Create(inv).Error
}

func (r *invoiceRepo) CreateItem(item *model.InvoiceItem) error {
	return r.db.Create(item).Error
}

func (r *invoiceRepo) FindAll(userID uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Preload("Client").Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) FindByBackdated(userID uuid.UUID, backdated bool) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Preload("Client").Preload("Items").
		Where("user_id = ? AND is_backdated = ?", userID, backdated).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) FindByID(userID, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.Preload("Client").Preload("Items").
		First(&inv, "id = ? AND user_id = ?", id, userID).Error
	return &inv, err
}

func (r *invoiceRepo) FindByStatus(userID uuid.UUID, status model.InvoiceStatus) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Preload("Client").
		Where("user_id = ? AND status = ?", userID, status).
		Find(&invoices).Error
	return invoices, err
}

// UpdateHeader patches header columns only; item rows are never touched here.
func (r *invoiceRepo) UpdateHeader(userID, id uuid.UUID, patch map[string]interface{}) error {
	res := r.db.Model(&model.Invoice{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(userID, id uuid.UUID) error {
	if err := r.db.Where("invoice_id = ?", id).Delete(&model.InvoiceItem{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Invoice{}).Error
}
