package service

import (
	"go-bizadmin/internal/model"
	"go-bizadmin/internal/repository"
	"go-bizadmin/internal/ws"
	"go-bizadmin/pkg/logger"
	"go-bizadmin/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InventoryService interface {
	CreateItem(userID uuid.UUID, item *model.InventoryItem) error
	ListItems(userID uuid.UUID) ([]model.InventoryItem, error)
	GetItem(userID, id uuid.UUID) (*model.InventoryItem, error)
	UpdateItem(userID, id uuid.UUID, req *model.InventoryItem) (*model.InventoryItem, error)
	DeleteItem(userID, id uuid.UUID) error

	CreateLocation(userID uuid.UUID, location *model.WarehouseLocation) error
	ListLocations(userID uuid.UUID) ([]model.WarehouseLocation, error)
	UpdateLocation(userID, id uuid.UUID, req *model.WarehouseLocation) (*model.WarehouseLocation, error)
	DeleteLocation(userID, id uuid.UUID) error
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	warehouseRepo repository.WarehouseRepository
	wsHub         *ws.Hub
}

func NewInventoryService(iRepo repository.InventoryRepository, wRepo repository.WarehouseRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		inventoryRepo: iRepo,
		warehouseRepo: wRepo,
		wsHub:         hub,
	}
}

func (s *inventoryService) CreateItem(userID uuid.UUID, item *model.InventoryItem) error {
	if errs := validator.ValidateStruct(item); len(errs) > 0 {
		return validationFailure(errs)
	}

	if item.Status == "" {
		item.Status = model.StockInStock
	}
	item.UserID = userID
	item.CreatedBy = userID.String()
	item.UpdatedBy = userID.String()
	if err := s.inventoryRepo.Create(item); err != nil {
		return err
	}

	logger.L().Info("inventory item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
		zap.Int("quantity", item.Quantity),
	)
	s.wsHub.Invalidate("inventory")
	return nil
}

func (s *inventoryService) ListItems(userID uuid.UUID) ([]model.InventoryItem, error) {
	return s.inventoryRepo.FindAll(userID)
}

func (s *inventoryService) GetItem(userID, id uuid.UUID) (*model.InventoryItem, error) {
	return s.inventoryRepo.FindByID(userID, id)
}

// UpdateItem replaces all user-editable fields, including the manually-set
// stock status. Quantity is written as submitted; the clamp only applies to
// invoice-driven decrements.
func (s *inventoryService) UpdateItem(userID, id uuid.UUID, req *model.InventoryItem) (*model.InventoryItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	existing, err := s.inventoryRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Category = req.Category
	existing.Quantity = req.Quantity
	existing.UnitPrice = req.UnitPrice
	existing.Status = req.Status
	existing.WarehouseLocationID = req.WarehouseLocationID
	existing.WarehouseLocation = nil
	existing.UpdatedBy = userID.String()

	if err := s.inventoryRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Invalidate("inventory")
	return existing, nil
}

func (s *inventoryService) DeleteItem(userID, id uuid.UUID) error {
	if err := s.inventoryRepo.Delete(userID, id); err != nil {
		return err
	}
	s.wsHub.Invalidate("inventory")
	return nil
}

func (s *inventoryService) CreateLocation(userID uuid.UUID, location *model.WarehouseLocation) error {
	if errs := validator.ValidateStruct(location); len(errs) > 0 {
		return validationFailure(errs)
	}

	location.UserID = userID
	location.CreatedBy = userID.String()
	location.UpdatedBy = userID.String()
	if err := s.warehouseRepo.Create(location); err != nil {
		return err
	}

	s.wsHub.Invalidate("warehouses")
	return nil
}

func (s *inventoryService) ListLocations(userID uuid.UUID) ([]model.WarehouseLocation, error) {
	return s.warehouseRepo.FindAll(userID)
}

func (s *inventoryService) UpdateLocation(userID, id uuid.UUID, req *model.WarehouseLocation) (*model.WarehouseLocation, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	existing, err := s.warehouseRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Address = req.Address
	existing.UpdatedBy = userID.String()

	if err := s.warehouseRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Invalidate("warehouses")
	return existing, nil
}

func (s *inventoryService) DeleteLocation(userID, id uuid.UUID) error {
	if err := s.warehouseRepo.Delete(userID, id); err != nil {
		return err
	}
	s.wsHub.Invalidate("warehouses")
	return nil
}
