package repository

import (
	"go-bizadmin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseRepository interface {
	Create(location *model.WarehouseLocation) error
	FindAll(userID uuid.UUID) ([]model.WarehouseLocation, error)
	FindByID(userID, id uuid.UUID) (*model.WarehouseLocation, error)
	Update(location *model.WarehouseLocation) error
	Delete(userID, id uuid.UUID) error
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) Create(location *model.WarehouseLocation) error {
	return r.db.Create(location).Error
}

func (r *warehouseRepo) FindAll(userID uuid.UUID) ([]model.WarehouseLocation, error) {
	var locations []model.WarehouseLocation
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&locations).Error
	return locations, err
}

func (r *warehouseRepo) FindByID(userID, id uuid.UUID) (*model.WarehouseLocation, error) {
	var location model.WarehouseLocation
	err := r.db.First(&location, "id = ? AND user_id = ?", id, userID).Error
	return &location, err
}

func (r *warehouseRepo) Update(location *model.WarehouseLocation) error {
	return r.db.Save(location).Error
}

func (r *warehouseRepo) Delete(userID, id uuid.UUID) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.WarehouseLocation{}).Error
}
