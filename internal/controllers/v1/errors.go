package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennybook/backend/internal/models"
)

// httpError is the response body for all failed requests.
type httpError struct {
	Error   string `json:"error" example:"there is no transaction matching your query"`
	Details any    `json:"details,omitempty"`
}

// status returns the appropriate HTTP status for a database error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// abortError renders err with the status it maps to.
func abortError(c *gin.Context, err error) {
	c.JSON(status(err), httpError{Error: err.Error()})
}

// abortValidation renders a 400 with per-field messages.
func abortValidation(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, httpError{
		Error:   "validation failed",
		Details: details,
	})
}

var (
	errCategoryTypeInvalid   = errors.New("the type parameter must be \"expense\", \"income\" or \"all\"")
	errCategoryNameReserved  = errors.New("this category name is built in")
	errTransactionTypeFilter = errors.New("the type filter must be \"income\" or \"expense\"")
)
