package service

import (
	"go-bizadmin/internal/model"
	"go-bizadmin/internal/repository"

	"github.com/google/uuid"
)

type CompanyService interface {
	Get(userID uuid.UUID) (*model.CompanyInfo, error)
	Update(userID uuid.UUID, req *model.CompanyInfo) (*model.CompanyInfo, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: repo}
}

func (s *companyService) Get(userID uuid.UUID) (*model.CompanyInfo, error) {
	return s.companyRepo.GetOrCreate(userID)
}

func (s *companyService) Update(userID uuid.UUID, req *model.CompanyInfo) (*model.CompanyInfo, error) {
	existing, err := s.companyRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	existing.CompanyName = req.CompanyName
	existing.Address = req.Address
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.TaxID = req.TaxID
	existing.BankName = req.BankName
	existing.BankAccount = req.BankAccount
	existing.IBAN = req.IBAN
	existing.UpdatedBy = userID.String()

	if err := s.companyRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
