package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
	repo "github.com/quickhaul/logistics-backend/internal/domain/repository"
)

// RecipientInput carries the caller-supplied fields for create and update.
// Updates replace the whole entity.
type RecipientInput struct {
	Name    *string
	Phone   string
	Address string
	Memo    *string
	Lat     *float64
	Lng     *float64
}

type RecipientService struct {
	Repo repo.RecipientRepository
}

func NewRecipientService(r repo.RecipientRepository) *RecipientService {
	return &RecipientService{Repo: r}
}

func (s *RecipientService) FindByID(ctx context.Context, id string) (*entity.Recipient, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *RecipientService) Search(ctx context.Context, query string) ([]entity.Recipient, error) {
	return s.Repo.Search(ctx, query)
}

func (s *RecipientService) Create(ctx context.Context, in RecipientInput) (*entity.Recipient, error) {
	r := &entity.Recipient{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Phone: in.Phone,
		Address: entity.Address{
			Full: in.Address,
			Lat:  in.Lat,
			Lng:  in.Lng,
		},
		Memo: in.Memo,
	}
	if err := s.Repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RecipientService) Update(ctx context.Context, id string, in RecipientInput) (*entity.Recipient, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, &NotFoundError{Resource: "Recipient", ID: id}
	}
	updated := &entity.Recipient{
		ID:    id,
		Name:  in.Name,
		Phone: in.Phone,
		Address: entity.Address{
			Full: in.Address,
			Lat:  in.Lat,
			Lng:  in.Lng,
		},
		Memo: in.Memo,
	}
	if err := s.Repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *RecipientService) Delete(ctx context.Context, id string) error {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return &NotFoundError{Resource: "Recipient", ID: id}
	}
	return s.Repo.Delete(ctx, id)
}
