package usecases

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	"github.com/yogeshwar16/realestatehousing/internal/domain/repositories"
)

// PropertyUsecase handles property listing business logic
type PropertyUsecase struct {
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
}

// NewPropertyUsecase creates a new property usecase
func NewPropertyUsecase(propertyRepo repositories.PropertyRepository, userRepo repositories.UserRepository) *PropertyUsecase {
	return &PropertyUsecase{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// Create lists a new property. Only active sellers may list.
func (u *PropertyUsecase) Create(ctx context.Context, sellerID int64, req *entities.PropertyRequest) (*entities.Property, error) {
	seller, err := u.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Seller not found")
		}
		return nil, err
	}
	if !seller.IsSeller() {
		return nil, domainerrors.Forbidden("Only sellers can list properties")
	}
	if seller.IsActive.Valid && !seller.IsActive.Bool {
		return nil, domainerrors.Forbidden("User account is deactivated")
	}
	if _, err := entities.ParsePropertyType(string(req.PropertyType)); err != nil {
		return nil, domainerrors.BadRequest("Invalid property type")
	}

	property := &entities.Property{
		PropertyType:   req.PropertyType,
		Title:          req.Title,
		Description:    null.NewString(req.Description, req.Description != ""),
		PropertySize:   req.PropertySize,
		Price:          req.Price,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		PropertyImages: req.PropertyImages,
		PTRDocument:    req.PTRDocument,
		Seller:         seller,
		IsActive:       null.BoolFrom(true),
	}
	if err := u.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// List returns active properties matching the optional filters
func (u *PropertyUsecase) List(ctx context.Context, filter repositories.PropertyFilter) ([]entities.Property, error) {
	if filter.Type != nil {
		if _, err := entities.ParsePropertyType(string(*filter.Type)); err != nil {
			return nil, domainerrors.BadRequest("Invalid property type")
		}
	}
	return u.propertyRepo.ListActive(ctx, filter)
}

// GetByID returns one property with its seller embedded
func (u *PropertyUsecase) GetByID(ctx context.Context, id int64) (*entities.Property, error) {
	property, err := u.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Property not found")
		}
		return nil, err
	}
	return property, nil
}
