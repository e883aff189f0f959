package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	"github.com/yogeshwar16/realestatehousing/internal/domain/repositories"
)

// InquiryValidity is how long a new inquiry stays open before it lapses.
const InquiryValidity = 3 // months

// InquiryUsecase handles inquiry business logic
type InquiryUsecase struct {
	inquiryRepo  repositories.InquiryRepository
	propertyRepo repositories.PropertyRepository
	now          func() time.Time
}

// NewInquiryUsecase creates a new inquiry usecase
func NewInquiryUsecase(inquiryRepo repositories.InquiryRepository, propertyRepo repositories.PropertyRepository) *InquiryUsecase {
	return &InquiryUsecase{
		inquiryRepo:  inquiryRepo,
		propertyRepo: propertyRepo,
		now:          time.Now,
	}
}

// Create raises an inquiry from a customer about a property. The customer
// must have accepted the terms, must not be the property's own seller, and
// the inquiry opens with an expiry three months out.
func (u *InquiryUsecase) Create(ctx context.Context, customer *entities.User, req *entities.InquiryRequest) (*entities.Inquiry, error) {
	if !customer.IsCustomer() {
		return nil, domainerrors.Forbidden("Only customers can raise inquiries")
	}
	if customer.IsActive.Valid && !customer.IsActive.Bool {
		return nil, domainerrors.Forbidden("User account is deactivated")
	}
	if !req.TermsAccepted {
		return nil, domainerrors.BadRequest("Terms and conditions must be accepted")
	}

	property, err := u.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Property not found")
		}
		return nil, err
	}
	if property.Seller == nil {
		return nil, domainerrors.InternalError(domainerrors.ErrInvalidInput)
	}
	if customer.UserID.Valid && property.OwnedBy(customer.UserID.Int64) {
		return nil, domainerrors.Forbidden("Cannot inquire about your own property")
	}

	now := u.now()
	inquiry := &entities.Inquiry{
		Property:           property,
		Customer:           customer,
		Seller:             property.Seller,
		InquiryDescription: req.InquiryDescription,
		Status:             entities.InquiryStatusOpen,
		TermsAccepted:      true,
		ExpiryDate:         null.TimeFrom(now.AddDate(0, InquiryValidity, 0)),
	}
	if err := u.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

// ListByCustomer returns a customer's inquiries, newest first
func (u *InquiryUsecase) ListByCustomer(ctx context.Context, customerID int64) ([]entities.Inquiry, error) {
	return u.inquiryRepo.ListByCustomer(ctx, customerID)
}

// ExpireOverdue flips all overdue open or in-progress inquiries to EXPIRED
// and reports how many were swept.
func (u *InquiryUsecase) ExpireOverdue(ctx context.Context) (int, error) {
	expired, err := u.inquiryRepo.ListExpired(ctx, u.now())
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(expired))
	for _, inq := range expired {
		ids = append(ids, inq.ID.Int64)
	}
	if err := u.inquiryRepo.MarkExpired(ctx, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}
