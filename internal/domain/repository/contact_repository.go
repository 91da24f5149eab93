package repository

import (
	"context"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
)

// ContactRepository defines the storage operations for contacts.
type ContactRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	FindAll(ctx context.Context) ([]entity.Contact, error)
	// FindByBusinessName matches the exact business name.
	FindByBusinessName(ctx context.Context, businessName string) (*entity.Contact, error)
	Create(ctx context.Context, c *entity.Contact) error
	Update(ctx context.Context, c *entity.Contact) error
	Delete(ctx context.Context, id string) error
}
