package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
)

// Envelope is the wire shape every endpoint responds with. Data is absent
// on failures, Error is absent on successes.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *string     `json:"error,omitempty"`
}

// Success sends a success envelope
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a failure envelope. Non-AppError values are masked as a
// generic internal error so internals never leak to clients.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	detail := appErr.Message
	c.JSON(appErr.Code, Envelope{
		Success: false,
		Message: appErr.Message,
		Error:   &detail,
	})
}

// BindError reports a malformed or invalid request body
func BindError(c *gin.Context, err error) {
	Error(c, domainerrors.NewAppError(http.StatusBadRequest, err.Error(), domainerrors.ErrInvalidInput))
}
