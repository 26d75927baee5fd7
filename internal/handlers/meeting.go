package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Aarontamirat/voting-app/internal/services"
	"github.com/Aarontamirat/voting-app/internal/ws"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	meetingService *services.MeetingService
	hub            *ws.Hub
}

func NewMeetingHandler(meetingService *services.MeetingService, hub *ws.Hub) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService, hub: hub}
}

type CreateMeetingRequest struct {
	Title         string `json:"title" binding:"required" example:"Annual General Meeting 2025"`
	Date          string `json:"date" binding:"required" example:"2025-11-15T09:00:00Z"`
	Location      string `json:"location" binding:"required" example:"Addis Ababa"`
	QuorumPct     int    `json:"quorum_pct" binding:"min=0,max=100" example:"25"`
	FirstPassers  int    `json:"first_passers" example:"7"`
	SecondPassers int    `json:"second_passers" example:"2"`
}

type UpdateMeetingRequest struct {
	Title         *string `json:"title,omitempty"`
	Date          *string `json:"date,omitempty"`
	Location      *string `json:"location,omitempty"`
	QuorumPct     *int    `json:"quorum_pct,omitempty"`
	FirstPassers  *int    `json:"first_passers,omitempty"`
	SecondPassers *int    `json:"second_passers,omitempty"`
}

// CreateMeeting godoc
// @Summary      Create a meeting
// @Description  Create a new shareholder meeting in DRAFT status
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMeetingRequest true "Meeting data"
// @Success      201 {object} Meeting
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
		return
	}

	meeting, err := h.meetingService.Create(services.MeetingInput{
		Title:         req.Title,
		Date:          date,
		Location:      req.Location,
		QuorumPct:     req.QuorumPct,
		FirstPassers:  req.FirstPassers,
		SecondPassers: req.SecondPassers,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// ListMeetings godoc
// @Summary      List meetings
// @Description  Paginated meeting listing, latest first, with title search and status filter
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        q      query string false "Title search"
// @Param        status query string false "Status filter"
// @Param        page   query int    false "Page number"
// @Param        take   query int    false "Page size (max 100)"
// @Success      200 {object} services.MeetingPage
// @Router       /api/v1/meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	take, _ := strconv.Atoi(c.DefaultQuery("take", "10"))

	result, err := h.meetingService.List(c.Query("q"), c.Query("status"), page, take)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMeeting godoc
// @Summary      Get a meeting
// @Description  Meeting with live quorum figures and nominee count
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} services.MeetingDetail
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	detail, err := h.meetingService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateMeeting godoc
// @Summary      Update a meeting
// @Description  Edit meeting fields; blocked once voting opens or the meeting closes
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Param        request body UpdateMeetingRequest true "Fields to update"
// @Success      200 {object} Meeting
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id} [put]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	var req UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	update := services.MeetingUpdate{
		Title:         req.Title,
		Location:      req.Location,
		QuorumPct:     req.QuorumPct,
		FirstPassers:  req.FirstPassers,
		SecondPassers: req.SecondPassers,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
			return
		}
		update.Date = &date
	}

	meeting, err := h.meetingService.Update(c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// DeleteMeeting godoc
// @Summary      Delete a meeting
// @Description  Only DRAFT meetings can be deleted
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	if err := h.meetingService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "meeting deleted"})
}

// OpenMeeting godoc
// @Summary      Open a meeting
// @Description  Move a DRAFT meeting to OPEN so attendance can be recorded
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} Meeting
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/open [post]
func (h *MeetingHandler) OpenMeeting(c *gin.Context) {
	meeting, err := h.meetingService.Open(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(meeting.ID, ws.WSMessage{Type: "status", Data: meeting})
	c.JSON(http.StatusOK, meeting)
}

// OpenVoting godoc
// @Summary      Open voting
// @Description  Move an OPEN meeting to VOTINGOPEN and snapshot registry totals
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} Meeting
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/votingopen [post]
func (h *MeetingHandler) OpenVoting(c *gin.Context) {
	meeting, err := h.meetingService.OpenVoting(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(meeting.ID, ws.WSMessage{Type: "status", Data: meeting})
	c.JSON(http.StatusOK, meeting)
}

// CloseMeeting godoc
// @Summary      Close a meeting
// @Description  Close the meeting if quorum is met; the error reports attended vs required shares otherwise
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} Meeting
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/close [post]
func (h *MeetingHandler) CloseMeeting(c *gin.Context) {
	meeting, err := h.meetingService.Close(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(meeting.ID, ws.WSMessage{Type: "status", Data: meeting})
	c.JSON(http.StatusOK, meeting)
}
