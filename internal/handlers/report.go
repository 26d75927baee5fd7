package handlers

import (
	"net/http"

	"github.com/Aarontamirat/voting-app/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService     *services.ReportService
	attendanceService *services.AttendanceService
}

func NewReportHandler(reportService *services.ReportService, attendanceService *services.AttendanceService) *ReportHandler {
	return &ReportHandler{reportService: reportService, attendanceService: attendanceService}
}

// GetVotingCards godoc
// @Summary      Voting card data
// @Description  Attendees, nominees and share totals for printing ballot cards
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} services.VotingCards
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/voting-cards [get]
func (h *ReportHandler) GetVotingCards(c *gin.Context) {
	cards, err := h.reportService.VotingCards(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// GetAttendanceReport godoc
// @Summary      Attendance report
// @Description  Attendance rows with quorum figures for the printed report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} services.AttendanceList
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/reports/attendance [get]
func (h *ReportHandler) GetAttendanceReport(c *gin.Context) {
	result, err := h.attendanceService.List(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
