package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	infrarepos "github.com/yogeshwar16/realestatehousing/internal/infrastructure/repositories"
)

func newAuthUsecase(t *testing.T) *AuthUsecase {
	t.Helper()
	db := newTestDB(t)
	otpStore, _ := newOTPStore(t)
	return NewAuthUsecase(infrarepos.NewUserRepository(db), otpStore, 6)
}

func validSignup() *entities.SignupRequest {
	return &entities.SignupRequest{
		FullName:      "Ramesh Patil",
		MobileNumber:  "9876543210",
		Email:         "ramesh@example.com",
		AadhaarNumber: "123456789012",
		PANCard:       "ABCDE1234F",
		UserType:      entities.UserTypeSeller,
	}
}

func TestAuthUsecase_Signup(t *testing.T) {
	uc := newAuthUsecase(t)
	ctx := context.Background()

	user, err := uc.Signup(ctx, validSignup())
	require.NoError(t, err)
	require.True(t, user.UserID.Valid)
	require.Equal(t, entities.UserTypeSeller, user.UserType)
	require.True(t, user.IsActive.Bool)
}

func TestAuthUsecase_SignupRejectsBadFields(t *testing.T) {
	uc := newAuthUsecase(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*entities.SignupRequest)
	}{
		{"short mobile", func(r *entities.SignupRequest) { r.MobileNumber = "98765" }},
		{"mobile starts below 6", func(r *entities.SignupRequest) { r.MobileNumber = "5876543210" }},
		{"bad email", func(r *entities.SignupRequest) { r.Email = "not-an-email" }},
		{"bad aadhaar", func(r *entities.SignupRequest) { r.AadhaarNumber = "12345" }},
		{"bad pan", func(r *entities.SignupRequest) { r.PANCard = "1234ABCDE" }},
		{"bad user type", func(r *entities.SignupRequest) { r.UserType = "ADMIN" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignup()
			tc.mutate(req)
			_, err := uc.Signup(ctx, req)
			var appErr *domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, 400, appErr.Code)
		})
	}
}

func TestAuthUsecase_SignupDuplicate(t *testing.T) {
	uc := newAuthUsecase(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, validSignup())
	require.NoError(t, err)

	dup := validSignup()
	dup.Email = "other@example.com"
	_, err = uc.Signup(ctx, dup)
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 409, appErr.Code)
}

func TestAuthUsecase_SendOTPAndLogin(t *testing.T) {
	uc := newAuthUsecase(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, validSignup())
	require.NoError(t, err)

	msg, err := uc.SendOTP(ctx, "9876543210")
	require.NoError(t, err)
	require.Equal(t, "OTP sent successfully to 9876543210", msg)

	// wrong code does not log in
	_, err = uc.Login(ctx, &entities.LoginRequest{MobileNumber: "9876543210", OTP: "000000"})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 401, appErr.Code)
}

func TestAuthUsecase_SendOTPUnregistered(t *testing.T) {
	uc := newAuthUsecase(t)

	_, err := uc.SendOTP(context.Background(), "9000000000")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Code)
}

func TestAuthUsecase_LoginConsumesOTP(t *testing.T) {
	db := newTestDB(t)
	userRepo := infrarepos.NewUserRepository(db)
	otpStore, _ := newOTPStore(t)
	uc := NewAuthUsecase(userRepo, otpStore, 6)
	ctx := context.Background()

	_, err := uc.Signup(ctx, validSignup())
	require.NoError(t, err)

	// plant a known code instead of intercepting the generated one
	require.NoError(t, otpStore.Save(ctx, "9876543210", "482913"))

	user, err := uc.Login(ctx, &entities.LoginRequest{MobileNumber: "9876543210", OTP: "482913"})
	require.NoError(t, err)
	require.Equal(t, "9876543210", user.MobileNumber)

	_, err = uc.Login(ctx, &entities.LoginRequest{MobileNumber: "9876543210", OTP: "482913"})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 401, appErr.Code)
}

func TestAuthUsecase_DeactivatedUser(t *testing.T) {
	db := newTestDB(t)
	userRepo := infrarepos.NewUserRepository(db)
	otpStore, _ := newOTPStore(t)
	uc := NewAuthUsecase(userRepo, otpStore, 6)
	ctx := context.Background()

	user, err := uc.Signup(ctx, validSignup())
	require.NoError(t, err)

	user.IsActive = null.BoolFrom(false)
	require.NoError(t, userRepo.Update(ctx, user))

	_, err = uc.SendOTP(ctx, "9876543210")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 403, appErr.Code)

	require.NoError(t, otpStore.Save(ctx, "9876543210", "482913"))
	_, err = uc.Login(ctx, &entities.LoginRequest{MobileNumber: "9876543210", OTP: "482913"})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 403, appErr.Code)
}

func TestAuthUsecase_UpdateUser(t *testing.T) {
	uc := newAuthUsecase(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, validSignup())
	require.NoError(t, err)

	updated, err := uc.UpdateUser(ctx, "9876543210", &entities.UserUpdateRequest{
		FullName: "Ramesh B Patil",
		Email:    "ramesh.patil@example.com",
		Address:  null.StringFrom("Shivaji Nagar, Pune"),
	})
	require.NoError(t, err)
	require.Equal(t, "Ramesh B Patil", updated.FullName)
	require.Equal(t, "ramesh.patil@example.com", updated.Email)
	require.Equal(t, "Shivaji Nagar, Pune", updated.Address.String)
	// unchanged when the payload leaves them unset
	require.Equal(t, "123456789012", updated.AadhaarNumber.String)
	require.Equal(t, "9876543210", updated.MobileNumber)
}

func TestAuthUsecase_UpdateUserValidation(t *testing.T) {
	uc := newAuthUsecase(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, validSignup())
	require.NoError(t, err)

	_, err = uc.UpdateUser(ctx, "9876543210", &entities.UserUpdateRequest{
		FullName: "Ramesh Patil",
		Email:    "ramesh@example.com",
		PANCard:  null.StringFrom("badpan"),
	})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.Code)

	_, err = uc.UpdateUser(ctx, "9000000000", &entities.UserUpdateRequest{
		FullName: "Ghost",
		Email:    "ghost@example.com",
	})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Code)
}
