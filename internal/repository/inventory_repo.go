package repository

import (
	"go-bizadmin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(item *model.InventoryItem) error
	FindAll(userID uuid.UUID) ([]model.InventoryItem, error)
	FindByID(userID, id uuid.UUID) (*model.InventoryItem, error)
	Update(item *model.InventoryItem) error
	Delete(userID, id uuid.UUID) error
	DecrementQuantity(userID, id uuid.UUID, qty int, updatedBy string) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(item *model.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepo) FindAll(userID uuid.UUID) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("WarehouseLocation").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByID(userID, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.Preload("WarehouseLocation").
		First(&item, "id = ? AND user_id = ?", id, userID).Error
	return &item, err
}

func (r *inventoryRepo) Update(item *model.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepo) Delete(userID, id uuid.UUID) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.InventoryItem{}).Error
}

// DecrementQuantity reduces stock by qty, clamped at zero. Single UPDATE so
// the clamp holds under concurrent submits.
func (r *inventoryRepo) DecrementQuantity(userID, id uuid.UUID, qty int, updatedBy string) error {
	return r.db.Model(&model.InventoryItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("CASE WHEN quantity > ? THEN quantity - ? ELSE 0 END", qty, qty),
			"updated_by": updatedBy,
		}).Error
}
