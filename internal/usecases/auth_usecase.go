package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	"github.com/yogeshwar16/realestatehousing/internal/domain/repositories"
	"github.com/yogeshwar16/realestatehousing/pkg/crypto"
	"github.com/yogeshwar16/realestatehousing/pkg/logger"
	"github.com/yogeshwar16/realestatehousing/pkg/redis"
	"github.com/yogeshwar16/realestatehousing/pkg/validate"
)

// AuthUsecase handles signup and the OTP login flow
type AuthUsecase struct {
	userRepo  repositories.UserRepository
	otpStore  *redis.OTPStore
	otpLength int
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, otpStore *redis.OTPStore, otpLength int) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		otpStore:  otpStore,
		otpLength: otpLength,
	}
}

// Signup registers a new user. Mobile number, Aadhaar and PAN must all be
// unused across existing accounts.
func (u *AuthUsecase) Signup(ctx context.Context, req *entities.SignupRequest) (*entities.User, error) {
	if !validate.MobileNumber(req.MobileNumber) {
		return nil, domainerrors.BadRequest("Invalid mobile number")
	}
	if !validate.Email(req.Email) {
		return nil, domainerrors.BadRequest("Invalid email address")
	}
	if !validate.Aadhaar(req.AadhaarNumber) {
		return nil, domainerrors.BadRequest("Invalid Aadhaar number")
	}
	if !validate.PAN(req.PANCard) {
		return nil, domainerrors.BadRequest("Invalid PAN card number")
	}
	if _, err := entities.ParseUserType(string(req.UserType)); err != nil {
		return nil, domainerrors.BadRequest("Invalid user type")
	}

	exists, err := u.userRepo.ExistsByIdentity(ctx, req.MobileNumber, req.AadhaarNumber, req.PANCard)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.Conflict("User already exists with given mobile number, Aadhaar or PAN")
	}

	user := &entities.User{
		FullName:      req.FullName,
		MobileNumber:  req.MobileNumber,
		Email:         req.Email,
		AadhaarNumber: null.StringFrom(req.AadhaarNumber),
		PANCard:       null.StringFrom(req.PANCard),
		UserType:      req.UserType,
		Address:       req.Address,
		IsActive:      null.BoolFrom(true),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("User already exists with given mobile number, Aadhaar or PAN")
		}
		return nil, err
	}
	return user, nil
}

// SendOTP generates and stores a one-time code for a registered mobile
// number. Unregistered numbers are rejected.
func (u *AuthUsecase) SendOTP(ctx context.Context, mobile string) (string, error) {
	if !validate.MobileNumber(mobile) {
		return "", domainerrors.BadRequest("Invalid mobile number")
	}

	user, err := u.userRepo.GetByMobileNumber(ctx, mobile)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.NotFound("User not registered with this mobile number")
		}
		return "", err
	}
	if user.IsActive.Valid && !user.IsActive.Bool {
		return "", domainerrors.Forbidden("User account is deactivated")
	}

	code, err := crypto.GenerateNumericCode(u.otpLength)
	if err != nil {
		return "", err
	}
	if err := u.otpStore.Save(ctx, mobile, code); err != nil {
		return "", err
	}

	// stands in for the SMS gateway
	logger.WithContext(ctx).Debug("generated OTP", zap.String("mobile_number", mobile), zap.String("otp", code))

	return fmt.Sprintf("OTP sent successfully to %s", mobile), nil
}

// Login verifies the OTP for a mobile number and returns the user record.
// A valid code is consumed so it cannot be replayed.
func (u *AuthUsecase) Login(ctx context.Context, req *entities.LoginRequest) (*entities.User, error) {
	user, err := u.userRepo.GetByMobileNumber(ctx, req.MobileNumber)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not registered with this mobile number")
		}
		return nil, err
	}
	if user.IsActive.Valid && !user.IsActive.Bool {
		return nil, domainerrors.Forbidden("User account is deactivated")
	}

	if err := u.otpStore.Verify(ctx, req.MobileNumber, req.OTP); err != nil {
		if errors.Is(err, redis.ErrOTPMismatch) {
			return nil, domainerrors.Unauthorized("Invalid or expired OTP")
		}
		return nil, err
	}
	return user, nil
}

// GetUserByMobileNumber looks up a user profile
func (u *AuthUsecase) GetUserByMobileNumber(ctx context.Context, mobile string) (*entities.User, error) {
	user, err := u.userRepo.GetByMobileNumber(ctx, mobile)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a profile update to the user registered under the
// given mobile number. The mobile number itself is immutable.
func (u *AuthUsecase) UpdateUser(ctx context.Context, mobile string, req *entities.UserUpdateRequest) (*entities.User, error) {
	if !validate.Email(req.Email) {
		return nil, domainerrors.BadRequest("Invalid email address")
	}
	if req.AadhaarNumber.Valid && !validate.Aadhaar(req.AadhaarNumber.String) {
		return nil, domainerrors.BadRequest("Invalid Aadhaar number")
	}
	if req.PANCard.Valid && !validate.PAN(req.PANCard.String) {
		return nil, domainerrors.BadRequest("Invalid PAN card number")
	}

	user, err := u.userRepo.GetByMobileNumber(ctx, mobile)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}

	user.FullName = req.FullName
	user.Email = req.Email
	if req.AadhaarNumber.Valid {
		user.AadhaarNumber = req.AadhaarNumber
	}
	if req.PANCard.Valid {
		user.PANCard = req.PANCard
	}
	if req.Address.Valid {
		user.Address = req.Address
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
