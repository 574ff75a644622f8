package service

import (
	"fmt"
	"strings"
	"time"

	"go-bizadmin/internal/model"
	"go-bizadmin/internal/repository"
	"go-bizadmin/internal/ws"
	"go-bizadmin/pkg/logger"
	"go-bizadmin/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DraftItem is a line item as submitted by the invoice form, before any row
// exists for it.
type DraftItem struct {
	Description     string     `json:"description"`
	Quantity        int        `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	InventoryItemID *uuid.UUID `json:"inventory_item_id,omitempty"`
}

// LineTotal recomputes the draft line's total from its operands.
func (d DraftItem) LineTotal() float64 {
	return float64(d.Quantity) * d.UnitPrice
}

// InvoiceSubtotal sums the line totals of all draft items. Insertion order is
// irrelevant to the sum.
func InvoiceSubtotal(items []DraftItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal()
	}
	return sum
}

// InvoiceInput is the creation payload: header fields plus draft line items.
type InvoiceInput struct {
	InvoiceNumber string              `json:"invoice_number" validate:"required"`
	ClientID      uuid.UUID           `json:"client_id"`
	IssueDate     time.Time           `json:"issue_date"`
	DueDate       time.Time           `json:"due_date"`
	Status        model.InvoiceStatus `json:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	TaxAmount     float64             `json:"tax_amount"`
	Notes         string              `json:"notes"`
	Items         []DraftItem         `json:"items"`
}

// InvoiceHeaderPatch is the edit payload. Edits write header fields only;
// persisted item rows are never regenerated.
type InvoiceHeaderPatch struct {
	InvoiceNumber string              `json:"invoice_number" validate:"required"`
	ClientID      uuid.UUID           `json:"client_id"`
	IssueDate     time.Time           `json:"issue_date"`
	DueDate       time.Time           `json:"due_date"`
	Status        model.InvoiceStatus `json:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	Subtotal      float64             `json:"subtotal"`
	TaxAmount     float64             `json:"tax_amount"`
	Notes         string              `json:"notes"`
}

type InvoiceService interface {
	Create(userID uuid.UUID, in *InvoiceInput) (*model.Invoice, error)
	CreateBackdated(userID uuid.UUID, in *InvoiceInput) (*model.Invoice, error)
	List(userID uuid.UUID, backdated bool) ([]model.Invoice, error)
	Get(userID, id uuid.UUID) (*model.Invoice, error)
	Update(userID, id uuid.UUID, patch *InvoiceHeaderPatch) (*model.Invoice, error)
	BuildEditDraft(userID, id uuid.UUID) (*InvoiceInput, error)
	Delete(userID, id uuid.UUID) error
}

type invoiceService struct {
	invoiceRepo   repository.InvoiceRepository
	inventoryRepo repository.InventoryRepository
	wsHub         *ws.Hub
}

func NewInvoiceService(iRepo repository.InvoiceRepository, invRepo repository.InventoryRepository, hub *ws.Hub) InvoiceService {
	return &invoiceService{
		invoiceRepo:   iRepo,
		inventoryRepo: invRepo,
		wsHub:         hub,
	}
}

// validateInput runs every check before the first write. A failure here means
// nothing was persisted.
func (s *invoiceService) validateInput(in *InvoiceInput) error {
	if in.ClientID == uuid.Nil {
		return &ValidationError{Err: ErrClientRequired}
	}
	for i, item := range in.Items {
		if strings.TrimSpace(item.Description) == "" || item.Quantity <= 0 || item.UnitPrice <= 0 {
			return &ValidationError{
				Err:     ErrIncompleteItem,
				Details: fmt.Sprintf("item %d", i+1),
			}
		}
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		firstErr := errs[0]
		return &ValidationError{
			Err:     ErrInvalidPayload,
			Details: fmt.Sprintf("field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag),
		}
	}
	return nil
}

func (s *invoiceService) Create(userID uuid.UUID, in *InvoiceInput) (*model.Invoice, error) {
	return s.create(userID, in, false)
}

// CreateBackdated records an invoice entered after the fact. Identical to
// Create except step (4) inventory depletion is skipped and item-to-inventory
// linkage is dropped, so current stock counts are never altered.
func (s *invoiceService) CreateBackdated(userID uuid.UUID, in *InvoiceInput) (*model.Invoice, error) {
	return s.create(userID, in, true)
}

// create runs the composition workflow: (1) compute totals, (2) write the
// header, (3) write one item row per draft item, (4) decrement linked
// inventory, clamped at zero. Steps are independent sequential writes, not a
// transaction: a failed item write leaves an orphaned header, and a failed
// decrement leaves earlier decrements applied.
func (s *invoiceService) create(userID uuid.UUID, in *InvoiceInput, backdated bool) (*model.Invoice, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.InvoiceStatusDraft
	}

	subtotal := InvoiceSubtotal(in.Items)
	inv := &model.Invoice{
		UserID:        userID,
		InvoiceNumber: in.InvoiceNumber,
		ClientID:      in.ClientID,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		Status:        status,
		Subtotal:      subtotal,
		TaxAmount:     in.TaxAmount,
		TotalAmount:   subtotal + in.TaxAmount,
		Notes:         in.Notes,
		IsBackdated:   backdated,
	}
	inv.CreatedBy = userID.String()
	inv.UpdatedBy = userID.String()

	if err := s.invoiceRepo.CreateHeader(inv); err != nil {
		return nil, err
	}

	for _, draft := range in.Items {
		item := model.InvoiceItem{
			InvoiceID:   inv.ID,
			Description: draft.Description,
			Quantity:    draft.Quantity,
			UnitPrice:   draft.UnitPrice,
		}
		item.ComputeLineTotal()
		if !backdated {
			item.InventoryItemID = draft.InventoryItemID
		}
		item.CreatedBy = userID.String()
		item.UpdatedBy = userID.String()
		if err := s.invoiceRepo.CreateItem(&item); err != nil {
			return nil, err
		}
		inv.Items = append(inv.Items, item)
	}

	touchedInventory := false
	if !backdated {
		for _, draft := range in.Items {
			if draft.InventoryItemID == nil {
				continue
			}
			if err := s.inventoryRepo.DecrementQuantity(userID, *draft.InventoryItemID, draft.Quantity, userID.String()); err != nil {
				return nil, err
			}
			touchedInventory = true
		}
	}

	logger.L().Info("invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.Float64("total", inv.TotalAmount),
		zap.Bool("backdated", backdated),
		zap.Int("items", len(inv.Items)),
	)

	s.wsHub.Invalidate("invoices")
	if touchedInventory {
		s.wsHub.Invalidate("inventory")
	}

	return inv, nil
}

func (s *invoiceService) List(userID uuid.UUID, backdated bool) ([]model.Invoice, error) {
	return s.invoiceRepo.FindByBackdated(userID, backdated)
}

func (s *invoiceService) Get(userID, id uuid.UUID) (*model.Invoice, error) {
	return s.invoiceRepo.FindByID(userID, id)
}

// Update writes header fields only. Item validation is skipped because edits
// never touch items; the header's subtotal is taken as submitted, even though
// that desynchronizes it from the persisted item rows.
func (s *invoiceService) Update(userID, id uuid.UUID, patch *InvoiceHeaderPatch) (*model.Invoice, error) {
	if patch.ClientID == uuid.Nil {
		return nil, &ValidationError{Err: ErrClientRequired}
	}
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		firstErr := errs[0]
		return nil, &ValidationError{
			Err:     ErrInvalidPayload,
			Details: fmt.Sprintf("field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag),
		}
	}

	fields := map[string]interface{}{
		"invoice_number": patch.InvoiceNumber,
		"client_id":      patch.ClientID,
		"issue_date":     patch.IssueDate,
		"due_date":       patch.DueDate,
		"status":         patch.Status,
		"subtotal":       patch.Subtotal,
		"tax_amount":     patch.TaxAmount,
		"total_amount":   patch.Subtotal + patch.TaxAmount,
		"notes":          patch.Notes,
		"updated_by":     userID.String(),
	}
	if err := s.invoiceRepo.UpdateHeader(userID, id, fields); err != nil {
		return nil, err
	}

	s.wsHub.Invalidate("invoices")
	return s.invoiceRepo.FindByID(userID, id)
}

// BuildEditDraft reconstructs the payload the edit form shows: a single
// synthetic line whose price equals the stored subtotal. The real item rows
// are not loaded into the form and stay untouched on save.
func (s *invoiceService) BuildEditDraft(userID, id uuid.UUID) (*InvoiceInput, error) {
	inv, err := s.invoiceRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	return &InvoiceInput{
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Status:        inv.Status,
		TaxAmount:     inv.TaxAmount,
		Notes:         inv.Notes,
		Items: []DraftItem{
			{Description: "Invoice subtotal", Quantity: 1, UnitPrice: inv.Subtotal},
		},
	}, nil
}

func (s *invoiceService) Delete(userID, id uuid.UUID) error {
	if err := s.invoiceRepo.Delete(userID, id); err != nil {
		return err
	}
	s.wsHub.Invalidate("invoices")
	return nil
}
