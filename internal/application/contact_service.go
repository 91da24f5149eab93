package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
	repo "github.com/quickhaul/logistics-backend/internal/domain/repository"
)

// ContactInput carries the caller-supplied fields for create and update.
type ContactInput struct {
	BusinessName string
	Phone        string
	Address      string
	Note         *string
}

type ContactService struct {
	Repo repo.ContactRepository
}

func NewContactService(r repo.ContactRepository) *ContactService {
	return &ContactService{Repo: r}
}

func (s *ContactService) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ContactService) FindAll(ctx context.Context) ([]entity.Contact, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ContactService) FindByBusinessName(ctx context.Context, businessName string) (*entity.Contact, error) {
	return s.Repo.FindByBusinessName(ctx, businessName)
}

func (s *ContactService) Create(ctx context.Context, in ContactInput) (*entity.Contact, error) {
	c := &entity.Contact{
		ID:           uuid.NewString(),
		BusinessName: in.BusinessName,
		Phone:        in.Phone,
		Address:      in.Address,
		Note:         in.Note,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactService) Update(ctx context.Context, id string, in ContactInput) (*entity.Contact, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, &NotFoundError{Resource: "Contact", ID: id}
	}
	updated := &entity.Contact{
		ID:           id,
		BusinessName: in.BusinessName,
		Phone:        in.Phone,
		Address:      in.Address,
		Note:         in.Note,
	}
	if err := s.Repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return &NotFoundError{Resource: "Contact", ID: id}
	}
	return s.Repo.Delete(ctx, id)
}

// FindOrCreate looks up the contact by business name and returns it
// unchanged when present; the supplied fields are only used when a new
// contact has to be created. Never merges into an existing match.
func (s *ContactService) FindOrCreate(ctx context.Context, in ContactInput) (*entity.Contact, error) {
	existing, err := s.Repo.FindByBusinessName(ctx, in.BusinessName)
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	return s.Create(ctx, in)
}
