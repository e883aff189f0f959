package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	"github.com/yogeshwar16/realestatehousing/internal/domain/repositories"
	"github.com/yogeshwar16/realestatehousing/internal/infrastructure/models"
)

// userRepo implements repositories.UserRepository
type userRepo struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user. Duplicate mobile, Aadhaar or PAN surfaces
// as domainerrors.ErrAlreadyExists.
func (r *userRepo) Create(ctx context.Context, user *entities.User) error {
	m := userToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	*user = *userToEntity(m)
	return nil
}

// GetByID gets a user by ID
func (r *userRepo) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByMobileNumber gets a user by their registered mobile number
func (r *userRepo) GetByMobileNumber(ctx context.Context, mobile string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("mobile_number = ?", mobile).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// ExistsByIdentity reports whether any user already holds one of the given
// identity fields. Empty arguments are skipped.
func (r *userRepo) ExistsByIdentity(ctx context.Context, mobile, aadhaar, pan string) (bool, error) {
	clauses := r.db.Where("mobile_number = ?", mobile)
	if aadhaar != "" {
		clauses = clauses.Or("aadhaar_number = ?", aadhaar)
	}
	if pan != "" {
		clauses = clauses.Or("pan_card = ?", pan)
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where(clauses).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists changes to an existing user
func (r *userRepo) Update(ctx context.Context, user *entities.User) error {
	if !user.UserID.Valid {
		return domainerrors.ErrInvalidInput
	}
	m := userToModel(user)
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"full_name":      m.FullName,
		"email":          m.Email,
		"aadhaar_number": m.AadhaarNumber,
		"pan_card":       m.PANCard,
		"address":        m.Address,
		"user_type":      m.UserType,
		"is_active":      m.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	updated, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*user = *updated
	return nil
}

func userToModel(u *entities.User) *models.User {
	return &models.User{
		ID:            u.UserID.Int64,
		FullName:      u.FullName,
		MobileNumber:  u.MobileNumber,
		Email:         u.Email,
		AadhaarNumber: u.AadhaarNumber.Ptr(),
		PANCard:       u.PANCard.Ptr(),
		Address:       u.Address.Ptr(),
		UserType:      string(u.UserType),
		IsActive:      u.IsActive.Bool || !u.IsActive.Valid,
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		UserID:        null.Int64From(m.ID),
		FullName:      m.FullName,
		MobileNumber:  m.MobileNumber,
		Email:         m.Email,
		AadhaarNumber: null.StringFromPtr(m.AadhaarNumber),
		PANCard:       null.StringFromPtr(m.PANCard),
		Address:       null.StringFromPtr(m.Address),
		UserType:      entities.UserType(m.UserType),
		IsActive:      null.BoolFrom(m.IsActive),
		CreatedAt:     null.TimeFrom(m.CreatedAt),
		UpdatedAt:     null.TimeFrom(m.UpdatedAt),
	}
}
