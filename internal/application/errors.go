package application

import (
	"fmt"

	"github.com/quickhaul/logistics-backend/internal/domain/repository"
)

// NotFoundError names the resource and identifier that failed to resolve.
// It matches repository.ErrNotFound under errors.Is so callers can test
// either the typed error or the sentinel.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == repository.ErrNotFound
}
