package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyExpense is an operating cost record, used for profit reporting.
type CompanyExpense struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ExpenseName string    `gorm:"type:varchar(255);not null" json:"expense_name" validate:"required"`
	Amount      float64   `gorm:"type:decimal(12,2);not null" json:"amount" validate:"gte=0"`
	Category    string    `gorm:"type:varchar(100)" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	ExpenseDate time.Time `gorm:"not null" json:"expense_date"`
}
