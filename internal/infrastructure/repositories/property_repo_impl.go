package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	"github.com/yogeshwar16/realestatehousing/internal/domain/repositories"
	"github.com/yogeshwar16/realestatehousing/internal/infrastructure/models"
)

// propertyRepo implements repositories.PropertyRepository
type propertyRepo struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) repositories.PropertyRepository {
	return &propertyRepo{db: db}
}

// Create inserts a new property listing for its seller
func (r *propertyRepo) Create(ctx context.Context, property *entities.Property) error {
	if property.Seller == nil || !property.Seller.UserID.Valid {
		return domainerrors.ErrInvalidInput
	}
	m := propertyToModel(property)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*property = *created
	return nil
}

// GetByID gets a property with its seller embedded
func (r *propertyRepo) GetByID(ctx context.Context, id int64) (*entities.Property, error) {
	var m models.Property
	if err := r.db.WithContext(ctx).Preload("Seller").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return propertyToEntity(&m), nil
}

// ListActive lists active properties, newest first, applying the optional
// type, city and free-text filters.
func (r *propertyRepo) ListActive(ctx context.Context, filter repositories.PropertyFilter) ([]entities.Property, error) {
	q := r.db.WithContext(ctx).Preload("Seller").Where("is_active = ?", true)
	if filter.Type != nil {
		q = q.Where("property_type = ?", string(*filter.Type))
	}
	if filter.City != "" {
		q = q.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(city) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern, pattern)
	}

	var ms []models.Property
	if err := q.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	properties := make([]entities.Property, 0, len(ms))
	for _, m := range ms {
		model := m
		properties = append(properties, *propertyToEntity(&model))
	}
	return properties, nil
}

func propertyToModel(p *entities.Property) *models.Property {
	return &models.Property{
		ID:             p.ID.Int64,
		SellerID:       p.Seller.UserID.Int64,
		PropertyType:   string(p.PropertyType),
		Title:          p.Title,
		Description:    p.Description.Ptr(),
		PropertySize:   p.PropertySize,
		Price:          p.Price,
		Address:        p.Address,
		City:           p.City,
		State:          p.State,
		Pincode:        p.Pincode,
		Latitude:       p.Latitude.Ptr(),
		Longitude:      p.Longitude.Ptr(),
		PropertyImages: p.PropertyImages.Ptr(),
		PTRDocument:    p.PTRDocument.Ptr(),
		IsActive:       p.IsActive.Bool || !p.IsActive.Valid,
	}
}

func propertyToEntity(m *models.Property) *entities.Property {
	p := &entities.Property{
		ID:             null.Int64From(m.ID),
		PropertyType:   entities.PropertyType(m.PropertyType),
		Title:          m.Title,
		Description:    null.StringFromPtr(m.Description),
		PropertySize:   m.PropertySize,
		Price:          m.Price,
		Address:        m.Address,
		City:           m.City,
		State:          m.State,
		Pincode:        m.Pincode,
		Latitude:       null.Float64FromPtr(m.Latitude),
		Longitude:      null.Float64FromPtr(m.Longitude),
		PropertyImages: null.StringFromPtr(m.PropertyImages),
		PTRDocument:    null.StringFromPtr(m.PTRDocument),
		IsActive:       null.BoolFrom(m.IsActive),
		CreatedAt:      null.TimeFrom(m.CreatedAt),
		UpdatedAt:      null.TimeFrom(m.UpdatedAt),
	}
	if m.Seller != nil {
		p.Seller = userToEntity(m.Seller)
	}
	return p
}
