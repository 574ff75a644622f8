package model

import "github.com/google/uuid"

// WarehouseLocation is a physical place inventory items are stored at.
type WarehouseLocation struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address string    `gorm:"type:text" json:"address"`
}
