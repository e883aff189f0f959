package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	"github.com/yogeshwar16/realestatehousing/internal/infrastructure/models"
	infrarepos "github.com/yogeshwar16/realestatehousing/internal/infrastructure/repositories"
	"github.com/yogeshwar16/realestatehousing/internal/interfaces/http/middleware"
	"github.com/yogeshwar16/realestatehousing/internal/usecases"
	"github.com/yogeshwar16/realestatehousing/pkg/redis"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router   *gin.Engine
	otpStore *redis.OTPStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{}, &models.Inquiry{}), "migrate")

	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	otpStore := redis.NewOTPStore(10 * time.Minute)

	userRepo := infrarepos.NewUserRepository(db)
	propertyRepo := infrarepos.NewPropertyRepository(db)
	inquiryRepo := infrarepos.NewInquiryRepository(db)

	authUsecase := usecases.NewAuthUsecase(userRepo, otpStore, 6)
	propertyUsecase := usecases.NewPropertyUsecase(propertyRepo, userRepo)
	inquiryUsecase := usecases.NewInquiryUsecase(inquiryRepo, propertyRepo)

	authHandler := NewAuthHandler(authUsecase)
	propertyHandler := NewPropertyHandler(propertyUsecase)
	inquiryHandler := NewInquiryHandler(inquiryUsecase)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())

	auth := r.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/send-otp", authHandler.SendOTP)
	auth.POST("/login", authHandler.Login)
	auth.GET("/user/:mobile", authHandler.GetUser)
	auth.PUT("/user/:mobile", authHandler.UpdateUser)

	r.GET("/api/properties", propertyHandler.List)
	r.GET("/properties/:id", propertyHandler.Get)
	r.POST("/properties/create/:sellerId", propertyHandler.Create)

	inquiries := r.Group("/api/inquiries")
	inquiries.Use(middleware.AuthMiddleware(authUsecase))
	inquiries.POST("", inquiryHandler.Create)
	inquiries.GET("", inquiryHandler.ListMine)

	return &testServer{router: r, otpStore: otpStore}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

func (s *testServer) request(t *testing.T, method, path string, body interface{}, bearer string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func (s *testServer) signupSeller(t *testing.T) entities.User {
	t.Helper()
	w, env := s.request(t, http.MethodPost, "/auth/signup", map[string]interface{}{
		"full_name":      "Ramesh Patil",
		"mobile_number":  "9876543210",
		"email":          "ramesh@example.com",
		"aadhaar_number": "123456789012",
		"pan_card":       "ABCDE1234F",
		"user_type":      "SELLER",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var user entities.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	return user
}

func (s *testServer) signupCustomer(t *testing.T) entities.User {
	t.Helper()
	w, env := s.request(t, http.MethodPost, "/auth/signup", map[string]interface{}{
		"full_name":      "Suresh Kumar",
		"mobile_number":  "9123456780",
		"email":          "suresh@example.com",
		"aadhaar_number": "210987654321",
		"pan_card":       "FGHIJ5678K",
		"user_type":      "CUSTOMER",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var user entities.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	return user
}

func (s *testServer) createProperty(t *testing.T, sellerID int64) entities.Property {
	t.Helper()
	w, env := s.request(t, http.MethodPost, fmt.Sprintf("/properties/create/%d", sellerID), map[string]interface{}{
		"property_type": "FLAT",
		"title":         "2BHK near station",
		"property_size": 1200,
		"price":         4500000,
		"address":       "Plot 12, MG Road",
		"city":          "Pune",
		"state":         "Maharashtra",
		"pincode":       "411001",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var property entities.Property
	require.NoError(t, json.Unmarshal(env.Data, &property))
	return property
}
