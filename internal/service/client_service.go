package service

import (
	"fmt"

	"go-bizadmin/internal/model"
	"go-bizadmin/internal/repository"
	"go-bizadmin/internal/ws"
	"go-bizadmin/pkg/validator"

	"github.com/google/uuid"
)

type ClientService interface {
	Create(userID uuid.UUID, client *model.Client) error
	List(userID uuid.UUID) ([]model.Client, error)
	Get(userID, id uuid.UUID) (*model.Client, error)
	Update(userID, id uuid.UUID, req *model.Client) (*model.Client, error)
	Delete(userID, id uuid.UUID) error
}

type clientService struct {
	clientRepo repository.ClientRepository
	wsHub      *ws.Hub
}

func NewClientService(repo repository.ClientRepository, hub *ws.Hub) ClientService {
	return &clientService{clientRepo: repo, wsHub: hub}
}

func validationFailure(errs []*validator.ErrorResponse) error {
	firstErr := errs[0]
	return &ValidationError{
		Err:     ErrInvalidPayload,
		Details: fmt.Sprintf("field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag),
	}
}

func (s *clientService) Create(userID uuid.UUID, client *model.Client) error {
	if errs := validator.ValidateStruct(client); len(errs) > 0 {
		return validationFailure(errs)
	}

	client.UserID = userID
	client.CreatedBy = userID.String()
	client.UpdatedBy = userID.String()
	if err := s.clientRepo.Create(client); err != nil {
		return err
	}

	s.wsHub.Invalidate("clients")
	return nil
}

func (s *clientService) List(userID uuid.UUID) ([]model.Client, error) {
	return s.clientRepo.FindAll(userID)
}

func (s *clientService) Get(userID, id uuid.UUID) (*model.Client, error) {
	return s.clientRepo.FindByID(userID, id)
}

func (s *clientService) Update(userID, id uuid.UUID, req *model.Client) (*model.Client, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	existing, err := s.clientRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.CompanyName = req.CompanyName
	existing.ContactName = req.ContactName
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.UpdatedBy = userID.String()

	if err := s.clientRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Invalidate("clients")
	return existing, nil
}

// Delete removes the client without checking invoice references. Invoices
// pointing at it keep their client_id and render as "Unknown Client".
func (s *clientService) Delete(userID, id uuid.UUID) error {
	if err := s.clientRepo.Delete(userID, id); err != nil {
		return err
	}
	s.wsHub.Invalidate("clients")
	return nil
}
