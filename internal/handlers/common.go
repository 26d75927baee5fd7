package handlers

import (
	"net/http"

	"github.com/Aarontamirat/voting-app/internal/models"
	"github.com/Aarontamirat/voting-app/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Meeting = models.Meeting
type Shareholder = models.Shareholder
type Nominee = models.Nominee
type Representative = models.Representative

// respondError maps the service error taxonomy to HTTP statuses. Unclassified
// errors are infrastructure failures the caller may retry.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.ClassOf(err) {
	case services.ClassValidation, services.ClassStateConflict:
		status = http.StatusBadRequest
	case services.ClassNotFound:
		status = http.StatusNotFound
	case services.ClassEligibility:
		status = http.StatusForbidden
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
