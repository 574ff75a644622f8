package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus represents the lifecycle label of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	// InvoiceStatusOverdue is part of the enum but no code path ever
	// transitions an invoice into it; overdue-ness is computed from the due
	// date at display time. See Invoice.IsOverdue.
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a billing document header. Its line items live in InvoiceItem.
// InvoiceNumber is caller-supplied and not enforced unique.
type Invoice struct {
	BaseModel
	UserID        uuid.UUID     `gorm:"type:uuid;index;not null" json:"user_id"`
	InvoiceNumber string        `gorm:"type:varchar(50);not null" json:"invoice_number" validate:"required"`
	ClientID      uuid.UUID     `gorm:"type:uuid;index;not null" json:"client_id" validate:"uuid_required"`
	Client        *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	IssueDate     time.Time     `gorm:"not null" json:"issue_date"`
	DueDate       time.Time     `gorm:"not null" json:"due_date"`
	Status        InvoiceStatus `gorm:"type:varchar(20);default:'draft'" json:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	Subtotal      float64       `gorm:"type:decimal(12,2);default:0" json:"subtotal"`
	TaxAmount     float64       `gorm:"type:decimal(12,2);default:0" json:"tax_amount"`
	TotalAmount   float64       `gorm:"type:decimal(12,2);default:0" json:"total_amount"`
	Notes         string        `gorm:"type:text" json:"notes"`
	IsBackdated   bool          `gorm:"default:false" json:"is_backdated"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// IsOverdue reports whether the invoice should display as overdue: still
// pending and past its due date. Display predicate only; the stored status is
// never rewritten to "overdue".
func (i *Invoice) IsOverdue(today time.Time) bool {
	return i.Status == InvoiceStatusPending && i.DueDate.Before(today)
}

// ClientDisplayName returns the billed client's company name, or a
// placeholder when the client row no longer exists (deleted clients leave
// dangling client_ids behind).
func (i *Invoice) ClientDisplayName() string {
	if i.Client == nil {
		return "Unknown Client"
	}
	return i.Client.CompanyName
}

// InvoiceItem is a single priced line within an invoice. Items are written
// once at invoice creation; invoice edits never touch them.
type InvoiceItem struct {
	BaseModel
	InvoiceID       uuid.UUID      `gorm:"type:uuid;index;not null" json:"invoice_id"`
	Description     string         `gorm:"type:varchar(500);not null" json:"description"`
	Quantity        int            `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice       float64        `gorm:"type:decimal(12,2);not null" json:"unit_price" validate:"gte=0"`
	LineTotal       float64        `gorm:"type:decimal(12,2);not null" json:"line_total"`
	InventoryItemID *uuid.UUID     `gorm:"type:uuid;index" json:"inventory_item_id,omitempty"`
	InventoryItem   *InventoryItem `gorm:"foreignKey:InventoryItemID" json:"inventory_item,omitempty"`
}

// ComputeLineTotal recalculates the stored line total from its operands.
func (item *InvoiceItem) ComputeLineTotal() float64 {
	item.LineTotal = float64(item.Quantity) * item.UnitPrice
	return item.LineTotal
}

// InvoiceResponse is the list/detail shape sent to the UI, with the client
// name resolved (or "Unknown Client") so rendering never depends on the join.
type InvoiceResponse struct {
	Invoice
	ClientName string `json:"client_name"`
	Overdue    bool   `json:"overdue"`
}

// ToResponse converts an Invoice into its API shape, deriving display fields
// against the given reference date.
func (i *Invoice) ToResponse(today time.Time) InvoiceResponse {
	return InvoiceResponse{
		Invoice:    *i,
		ClientName: i.ClientDisplayName(),
		Overdue:    i.IsOverdue(today),
	}
}
