package repository

import (
	"go-bizadmin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.CompanyExpense) error
	FindAll(userID uuid.UUID) ([]model.CompanyExpense, error)
	FindByID(userID, id uuid.UUID) (*model.CompanyExpense, error)
	Update(expense *model.CompanyExpense) error
	Delete(userID, id uuid.UUID) error
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.CompanyExpense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll(userID uuid.UUID) ([]model.CompanyExpense, error) {
	var expenses []model.CompanyExpense
	err := r.db.Where("user_id = ?", userID).Order("expense_date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByID(userID, id uuid.UUID) (*model.CompanyExpense, error) {
	var expense model.CompanyExpense
	err := r.db.First(&expense, "id = ? AND user_id = ?", id, userID).Error
	return &expense, err
}

func (r *expenseRepo) Update(expense *model.CompanyExpense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepo) Delete(userID, id uuid.UUID) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.CompanyExpense{}).Error
}
