package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	"github.com/yogeshwar16/realestatehousing/internal/domain/repositories"
	"github.com/yogeshwar16/realestatehousing/internal/infrastructure/models"
	"github.com/yogeshwar16/realestatehousing/pkg/redis"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{}, &models.Inquiry{}), "migrate")
	return db
}

func newOTPStore(t *testing.T) (*redis.OTPStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return redis.NewOTPStore(10 * time.Minute), mr
}

func createUser(t *testing.T, repo repositories.UserRepository, mobile, aadhaar, pan string, userType entities.UserType) *entities.User {
	t.Helper()
	u := &entities.User{
		FullName:      "Ramesh Patil",
		MobileNumber:  mobile,
		Email:         "ramesh@example.com",
		AadhaarNumber: null.StringFrom(aadhaar),
		PANCard:       null.StringFrom(pan),
		UserType:      userType,
		IsActive:      null.BoolFrom(true),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}
