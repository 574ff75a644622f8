package model

import "github.com/google/uuid"

type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// InventoryItem is a stocked product. Status is set manually by the user and
// is NOT derived from Quantity anywhere in the codebase.
type InventoryItem struct {
	BaseModel
	UserID              uuid.UUID          `gorm:"type:uuid;index;not null" json:"user_id"`
	Name                string             `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description         string             `gorm:"type:text" json:"description"`
	Category            string             `gorm:"type:varchar(100)" json:"category"`
	Quantity            int                `gorm:"default:0" json:"quantity" validate:"gte=0"`
	UnitPrice           float64            `gorm:"type:decimal(12,2);default:0" json:"unit_price" validate:"gte=0"`
	Status              StockStatus        `gorm:"type:varchar(20);default:'in_stock'" json:"status" validate:"omitempty,oneof=in_stock low_stock out_of_stock"`
	WarehouseLocationID *uuid.UUID         `gorm:"type:uuid;index" json:"warehouse_location_id,omitempty"`
	WarehouseLocation   *WarehouseLocation `gorm:"foreignKey:WarehouseLocationID" json:"warehouse_location,omitempty"`
}
