package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	"github.com/yogeshwar16/realestatehousing/internal/interfaces/http/middleware"
	"github.com/yogeshwar16/realestatehousing/internal/interfaces/http/response"
	"github.com/yogeshwar16/realestatehousing/internal/usecases"
)

// InquiryHandler handles inquiry endpoints
type InquiryHandler struct {
	inquiryUsecase *usecases.InquiryUsecase
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryUsecase *usecases.InquiryUsecase) *InquiryHandler {
	return &InquiryHandler{
		inquiryUsecase: inquiryUsecase,
	}
}

// Create raises an inquiry from the authenticated customer
// POST /api/inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	customer, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var req entities.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if _, err := h.inquiryUsecase.Create(c.Request.Context(), customer, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Inquiry created successfully", "Inquiry created successfully")
}

// ListMine returns the authenticated customer's inquiries
// GET /api/inquiries
func (h *InquiryHandler) ListMine(c *gin.Context) {
	customer, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	inquiries, err := h.inquiryUsecase.ListByCustomer(c.Request.Context(), customer.UserID.Int64)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Inquiries fetched successfully", inquiries)
}
