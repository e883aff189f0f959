package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	"github.com/yogeshwar16/realestatehousing/internal/interfaces/http/response"
	"github.com/yogeshwar16/realestatehousing/internal/usecases"
)

// AuthHandler handles signup, OTP and profile endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup handles user registration
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req entities.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.authUsecase.Signup(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// SendOTP issues a login code to a registered mobile number
// POST /auth/send-otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req entities.OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	msg, err := h.authUsecase.SendOTP(c.Request.Context(), req.MobileNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg, msg)
}

// Login exchanges mobile number and OTP for the user record
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req entities.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", user)
}

// GetUser fetches a profile by mobile number
// GET /auth/user/:mobile
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authUsecase.GetUserByMobileNumber(c.Request.Context(), c.Param("mobile"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User fetched successfully", user)
}

// UpdateUser applies a profile update
// PUT /auth/user/:mobile
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req entities.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.authUsecase.UpdateUser(c.Request.Context(), c.Param("mobile"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User updated successfully", user)
}
