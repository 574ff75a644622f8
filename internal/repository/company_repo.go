package repository

import (
	"errors"

	"go-bizadmin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	GetOrCreate(userID uuid.UUID) (*model.CompanyInfo, error)
	Update(info *model.CompanyInfo) error
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db}
}

// GetOrCreate returns the user's singleton company info row, creating an
// empty one on first access.
func (r *companyRepo) GetOrCreate(userID uuid.UUID) (*model.CompanyInfo, error) {
	var info model.CompanyInfo
	err := r.db.First(&info, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = model.CompanyInfo{UserID: userID}
		info.CreatedBy = userID.String()
		info.UpdatedBy = userID.String()
		if err := r.db.Create(&info).Error; err != nil {
			return nil, err
		}
		return &info, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *companyRepo) Update(info *model.CompanyInfo) error {
	return r.db.Save(info).Error
}
