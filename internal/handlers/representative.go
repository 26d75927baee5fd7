package handlers

import (
	"net/http"

	"github.com/Aarontamirat/voting-app/internal/services"

	"github.com/gin-gonic/gin"
)

type RepresentativeHandler struct {
	representativeService *services.RepresentativeService
}

func NewRepresentativeHandler(representativeService *services.RepresentativeService) *RepresentativeHandler {
	return &RepresentativeHandler{representativeService: representativeService}
}

type CreateRepresentativeRequest struct {
	Name          string  `json:"name" binding:"required" example:"Kebede Alemu"`
	Phone         *string `json:"phone,omitempty"`
	ShareholderID *string `json:"shareholder_id,omitempty"`
}

// ListRepresentatives godoc
// @Summary      List representatives
// @Tags         representatives
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Representative
// @Router       /api/v1/representatives [get]
func (h *RepresentativeHandler) ListRepresentatives(c *gin.Context) {
	items, err := h.representativeService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateRepresentative godoc
// @Summary      Create a representative
// @Description  Register a representative, optionally back-referencing a shareholder
// @Tags         representatives
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRepresentativeRequest true "Representative data"
// @Success      201 {object} Representative
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/representatives [post]
func (h *RepresentativeHandler) CreateRepresentative(c *gin.Context) {
	var req CreateRepresentativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rep, err := h.representativeService.Create(services.RepresentativeInput{
		Name:          req.Name,
		Phone:         req.Phone,
		ShareholderID: req.ShareholderID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rep)
}
