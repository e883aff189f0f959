package repositories

import (
	"context"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
)

// PropertyFilter narrows ListActive results. Zero values mean no filtering.
type PropertyFilter struct {
	Type   *entities.PropertyType
	City   string
	Search string
}

// PropertyRepository defines property listing operations
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) error
	GetByID(ctx context.Context, id int64) (*entities.Property, error)
	ListActive(ctx context.Context, filter PropertyFilter) ([]entities.Property, error)
}
