package service

import (
	"go-bizadmin/internal/model"
	"go-bizadmin/internal/repository"
	"go-bizadmin/internal/ws"
	"go-bizadmin/pkg/validator"

	"github.com/google/uuid"
)

type ExpenseService interface {
	Create(userID uuid.UUID, expense *model.CompanyExpense) error
	List(userID uuid.UUID) ([]model.CompanyExpense, error)
	Update(userID, id uuid.UUID, req *model.CompanyExpense) (*model.CompanyExpense, error)
	Delete(userID, id uuid.UUID) error
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	wsHub       *ws.Hub
}

func NewExpenseService(repo repository.ExpenseRepository, hub *ws.Hub) ExpenseService {
	return &expenseService{expenseRepo: repo, wsHub: hub}
}

func (s *expenseService) Create(userID uuid.UUID, expense *model.CompanyExpense) error {
	if errs := validator.ValidateStruct(expense); len(errs) > 0 {
		return validationFailure(errs)
	}

	expense.UserID = userID
	expense.CreatedBy = userID.String()
	expense.UpdatedBy = userID.String()
	if err := s.expenseRepo.Create(expense); err != nil {
		return err
	}

	s.wsHub.Invalidate("expenses")
	return nil
}

func (s *expenseService) List(userID uuid.UUID) ([]model.CompanyExpense, error) {
	return s.expenseRepo.FindAll(userID)
}

func (s *expenseService) Update(userID, id uuid.UUID, req *model.CompanyExpense) (*model.CompanyExpense, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	existing, err := s.expenseRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.ExpenseName = req.ExpenseName
	existing.Amount = req.Amount
	existing.Category = req.Category
	existing.Description = req.Description
	existing.ExpenseDate = req.ExpenseDate
	existing.UpdatedBy = userID.String()

	if err := s.expenseRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Invalidate("expenses")
	return existing, nil
}

func (s *expenseService) Delete(userID, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(userID, id); err != nil {
		return err
	}
	s.wsHub.Invalidate("expenses")
	return nil
}
