package repository

import (
	"context"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
)

// RecipientRepository defines the storage operations for recipients.
type RecipientRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Recipient, error)
	// Search matches the query as a substring of address or phone and
	// returns at most 10 rows in storage order.
	Search(ctx context.Context, query string) ([]entity.Recipient, error)
	Create(ctx context.Context, r *entity.Recipient) error
	Update(ctx context.Context, r *entity.Recipient) error
	Delete(ctx context.Context, id string) error
}
