package model

import "github.com/google/uuid"

// Client is a customer that invoices are billed to.
type Client struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	CompanyName string    `gorm:"type:varchar(255);not null" json:"company_name" validate:"required"`
	ContactName string    `gorm:"type:varchar(255);not null" json:"contact_name" validate:"required"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email" validate:"required,email"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone"`
	Address     string    `gorm:"type:text" json:"address"`
}
