package repository

import (
	"go-bizadmin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *model.Client) error
	FindAll(userID uuid.UUID) ([]model.Client, error)
	FindByID(userID, id uuid.UUID) (*model.Client, error)
	Update(client *model.Client) error
	Delete(userID, id uuid.UUID) error
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(client *model.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepo) FindAll(userID uuid.UUID) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.Where("user_id = ?", userID).Order("company_name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) FindByID(userID, id uuid.UUID) (*model.Client, error) {
	var client model.Client
	err := r.db.First(&client, "id = ? AND user_id = ?", id, userID).Error
	return &client, err
}

func (r *clientRepo) Update(client *model.Client) error {
	return r.db.Save(client).Error
}

// Delete removes the client only. Invoices referencing it keep their
// client_id and render as "Unknown Client" afterwards.
func (r *clientRepo) Delete(userID, id uuid.UUID) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Client{}).Error
}
