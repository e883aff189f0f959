package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	"github.com/yogeshwar16/realestatehousing/internal/domain/repositories"
	"github.com/yogeshwar16/realestatehousing/internal/interfaces/http/response"
	"github.com/yogeshwar16/realestatehousing/internal/usecases"
)

// PropertyHandler handles property listing endpoints
type PropertyHandler struct {
	propertyUsecase *usecases.PropertyUsecase
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyUsecase *usecases.PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{
		propertyUsecase: propertyUsecase,
	}
}

// List returns active properties, optionally filtered by type, city and
// free text over title, city and address
// GET /api/properties?type=FLAT&city=Pune&search=station
func (h *PropertyHandler) List(c *gin.Context) {
	filter := repositories.PropertyFilter{
		City:   c.Query("city"),
		Search: c.Query("search"),
	}
	if raw := c.Query("type"); raw != "" {
		typ, err := entities.ParsePropertyType(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid property type"))
			return
		}
		filter.Type = &typ
	}

	properties, err := h.propertyUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Properties fetched successfully", properties)
}

// Get returns one property with its seller embedded
// GET /properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid property ID"))
		return
	}

	property, err := h.propertyUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Property fetched successfully", property)
}

// Create lists a new property for a seller
// POST /properties/create/:sellerId
func (h *PropertyHandler) Create(c *gin.Context) {
	sellerID, err := strconv.ParseInt(c.Param("sellerId"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid seller ID"))
		return
	}

	var req entities.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	property, err := h.propertyUsecase.Create(c.Request.Context(), sellerID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Property created successfully", property)
}
