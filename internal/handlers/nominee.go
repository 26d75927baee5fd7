package handlers

import (
	"net/http"

	"github.com/Aarontamirat/voting-app/internal/services"

	"github.com/gin-gonic/gin"
)

type NomineeHandler struct {
	nomineeService *services.NomineeService
}

func NewNomineeHandler(nomineeService *services.NomineeService) *NomineeHandler {
	return &NomineeHandler{nomineeService: nomineeService}
}

type CreateNomineeRequest struct {
	ShareholderID string  `json:"shareholder_id" binding:"required" example:"SH-0042"`
	Type          string  `json:"type" example:"first"`
	Description   *string `json:"description,omitempty"`
}

type UpdateNomineeRequest struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListNominees godoc
// @Summary      List nominees
// @Tags         nominees
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} services.NomineeList
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/nominees [get]
func (h *NomineeHandler) ListNominees(c *gin.Context) {
	result, err := h.nomineeService.List(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateNominee godoc
// @Summary      Nominate a shareholder
// @Description  A shareholder can be nominated at most once per meeting
// @Tags         nominees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Param        request body CreateNomineeRequest true "Nominee data"
// @Success      201 {object} Nominee
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/nominees [post]
func (h *NomineeHandler) CreateNominee(c *gin.Context) {
	var req CreateNomineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	nominee, err := h.nomineeService.Create(c.Param("id"), services.NomineeInput{
		ShareholderID: req.ShareholderID,
		Type:          req.Type,
		Description:   req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, nominee)
}

// UpdateNominee godoc
// @Summary      Update a nominee
// @Description  Blocked once voting opens or the meeting closes
// @Tags         nominees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path string true "Meeting ID"
// @Param        nomineeId path string true "Nominee ID"
// @Param        request body UpdateNomineeRequest true "Fields to update"
// @Success      200 {object} Nominee
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/nominees/{nomineeId} [put]
func (h *NomineeHandler) UpdateNominee(c *gin.Context) {
	var req UpdateNomineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	nominee, err := h.nomineeService.Update(c.Param("id"), c.Param("nomineeId"), services.NomineeUpdate{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nominee)
}

// DeleteNominee godoc
// @Summary      Delete a nominee
// @Tags         nominees
// @Produce      json
// @Security     BearerAuth
// @Param        id        path string true "Meeting ID"
// @Param        nomineeId path string true "Nominee ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/nominees/{nomineeId} [delete]
func (h *NomineeHandler) DeleteNominee(c *gin.Context) {
	if err := h.nomineeService.Delete(c.Param("id"), c.Param("nomineeId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "nominee deleted"})
}
