package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	"github.com/yogeshwar16/realestatehousing/internal/domain/repositories"
	"github.com/yogeshwar16/realestatehousing/internal/infrastructure/models"
)

// inquiryRepo implements repositories.InquiryRepository
type inquiryRepo struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *gorm.DB) repositories.InquiryRepository {
	return &inquiryRepo{db: db}
}

// Create inserts a new inquiry linking customer, seller and property
func (r *inquiryRepo) Create(ctx context.Context, inquiry *entities.Inquiry) error {
	if inquiry.Property == nil || inquiry.Customer == nil || inquiry.Seller == nil {
		return domainerrors.ErrInvalidInput
	}
	m := inquiryToModel(inquiry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*inquiry = *created
	return nil
}

// GetByID gets an inquiry with its property and both parties embedded
func (r *inquiryRepo) GetByID(ctx context.Context, id int64) (*entities.Inquiry, error) {
	var m models.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Property").Preload("Property.Seller").
		Preload("Customer").Preload("Seller").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return inquiryToEntity(&m), nil
}

// ListByCustomer lists a customer's inquiries, newest first
func (r *inquiryRepo) ListByCustomer(ctx context.Context, customerID int64) ([]entities.Inquiry, error) {
	var ms []models.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Property").Preload("Customer").Preload("Seller").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	inquiries := make([]entities.Inquiry, 0, len(ms))
	for _, m := range ms {
		model := m
		inquiries = append(inquiries, *inquiryToEntity(&model))
	}
	return inquiries, nil
}

// ListExpired returns inquiries still open or in progress whose expiry
// date has passed.
func (r *inquiryRepo) ListExpired(ctx context.Context, asOf time.Time) ([]entities.Inquiry, error) {
	var ms []models.Inquiry
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{string(entities.InquiryStatusOpen), string(entities.InquiryStatusInProgress)}).
		Where("expiry_date <= ?", asOf).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	inquiries := make([]entities.Inquiry, 0, len(ms))
	for _, m := range ms {
		model := m
		inquiries = append(inquiries, *inquiryToEntity(&model))
	}
	return inquiries, nil
}

// MarkExpired flips the given inquiries to EXPIRED
func (r *inquiryRepo) MarkExpired(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id IN ?", ids).
		Update("status", string(entities.InquiryStatusExpired)).Error
}

func inquiryToModel(i *entities.Inquiry) *models.Inquiry {
	return &models.Inquiry{
		ID:                 i.ID.Int64,
		PropertyID:         i.Property.ID.Int64,
		CustomerID:         i.Customer.UserID.Int64,
		SellerID:           i.Seller.UserID.Int64,
		InquiryDescription: i.InquiryDescription.Ptr(),
		Status:             string(i.Status),
		TermsAccepted:      i.TermsAccepted,
		ExpiryDate:         i.ExpiryDate.Time,
	}
}

func inquiryToEntity(m *models.Inquiry) *entities.Inquiry {
	i := &entities.Inquiry{
		ID:                 null.Int64From(m.ID),
		InquiryDescription: null.StringFromPtr(m.InquiryDescription),
		Status:             entities.InquiryStatus(m.Status),
		TermsAccepted:      m.TermsAccepted,
		CreatedAt:          null.TimeFrom(m.CreatedAt),
		UpdatedAt:          null.TimeFrom(m.UpdatedAt),
		ExpiryDate:         null.TimeFrom(m.ExpiryDate),
	}
	if m.Property != nil {
		i.Property = propertyToEntity(m.Property)
	}
	if m.Customer != nil {
		i.Customer = userToEntity(m.Customer)
	}
	if m.Seller != nil {
		i.Seller = userToEntity(m.Seller)
	}
	return i
}
