package model

import "github.com/google/uuid"

// CompanyInfo holds the billing identity printed on invoices. One row per
// user; reads get-or-create it.
type CompanyInfo struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName string    `gorm:"type:varchar(255)" json:"company_name"`
	Address     string    `gorm:"type:text" json:"address"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	TaxID       string    `gorm:"type:varchar(100)" json:"tax_id"`
	BankName    string    `gorm:"type:varchar(255)" json:"bank_name"`
	BankAccount string    `gorm:"type:varchar(100)" json:"bank_account"`
	IBAN        string    `gorm:"type:varchar(50)" json:"iban"`
}
