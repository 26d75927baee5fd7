package handlers

import (
	"net/http"

	"github.com/Aarontamirat/voting-app/internal/services"
	"github.com/Aarontamirat/voting-app/internal/ws"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendanceService *services.AttendanceService
	hub               *ws.Hub
}

func NewAttendanceHandler(attendanceService *services.AttendanceService, hub *ws.Hub) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, hub: hub}
}

type RecordAttendanceRequest struct {
	ShareholderIDs []string `json:"shareholder_ids" binding:"required,min=1"`
	// Representative resolution, in order of precedence.
	RepresentativeID            string `json:"representative_id,omitempty"`
	RepresentativeShareholderID string `json:"representative_shareholder_id,omitempty"`
	RepresentativeName          string `json:"representative_name,omitempty"`
}

// ListAttendance godoc
// @Summary      List attendance
// @Description  Attendance rows with the meeting's quorum figures
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} services.AttendanceList
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/attendance [get]
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	result, err := h.attendanceService.List(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecordAttendance godoc
// @Summary      Record attendance
// @Description  Check in a batch of shareholders, optionally on behalf of a representative. A DRAFT meeting auto-opens.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Param        request body RecordAttendanceRequest true "Attendance batch"
// @Success      201 {object} services.RecordAttendanceResult
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/attendance [post]
func (h *AttendanceHandler) RecordAttendance(c *gin.Context) {
	meetingID := c.Param("id")

	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.attendanceService.Record(meetingID, services.RecordAttendanceInput{
		ShareholderIDs:              req.ShareholderIDs,
		RepresentativeID:            req.RepresentativeID,
		RepresentativeShareholderID: req.RepresentativeShareholderID,
		RepresentativeName:          req.RepresentativeName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(meetingID, ws.WSMessage{Type: "attendance", Data: result})
	c.JSON(http.StatusCreated, result)
}

// DeleteAttendance godoc
// @Summary      Delete an attendance row
// @Description  Remove a check-in; the matching representation link is cleaned up best-effort
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        id           path string true "Meeting ID"
// @Param        attendanceId path string true "Attendance ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/attendance/{attendanceId} [delete]
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	meetingID := c.Param("id")

	if err := h.attendanceService.Delete(meetingID, c.Param("attendanceId")); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(meetingID, ws.WSMessage{Type: "attendance", Data: gin.H{"deleted": c.Param("attendanceId")}})
	c.JSON(http.StatusOK, MessageResponse{Message: "attendance deleted"})
}
