package handlers

import (
	"net/http"

	"github.com/Aarontamirat/voting-app/internal/services"
	"github.com/Aarontamirat/voting-app/internal/ws"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votingService  *services.VotingService
	resultsService *services.ResultsService
	hub            *ws.Hub
}

func NewVoteHandler(votingService *services.VotingService, resultsService *services.ResultsService, hub *ws.Hub) *VoteHandler {
	return &VoteHandler{votingService: votingService, resultsService: resultsService, hub: hub}
}

type SubmitVotesRequest struct {
	VoterID    string   `json:"voter_id" binding:"required" example:"SH-0042"`
	NomineeIDs []string `json:"nominee_ids" binding:"required,min=1"`
}

// SubmitVotes godoc
// @Summary      Submit votes
// @Description  Record one weighted vote per nominee for the voter. Nominees already voted are reported as "already", not re-created.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Param        request body SubmitVotesRequest true "Votes"
// @Success      201 {object} services.SubmitVotesResult
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/votes [post]
func (h *VoteHandler) SubmitVotes(c *gin.Context) {
	meetingID := c.Param("id")

	var req SubmitVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.votingService.Submit(meetingID, req.VoterID, req.NomineeIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(result.Created) > 0 {
		if results, err := h.resultsService.Aggregate(meetingID); err == nil {
			h.hub.Broadcast(meetingID, ws.WSMessage{Type: "votes", Data: results})
		}
	}

	c.JSON(http.StatusCreated, result)
}

// GetVotes godoc
// @Summary      Get votes
// @Description  With voter_id: that voter's voted nominees and recorded weight. Without: aggregated per-nominee totals.
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string true  "Meeting ID"
// @Param        voter_id query string false "Voter ID"
// @Success      200 {object} services.VoteResults
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/votes [get]
func (h *VoteHandler) GetVotes(c *gin.Context) {
	meetingID := c.Param("id")

	if voterID := c.Query("voter_id"); voterID != "" {
		result, err := h.votingService.Votes(meetingID, voterID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	results, err := h.resultsService.Aggregate(meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetResults godoc
// @Summary      Get ranked results
// @Description  Per-nominee weight totals with the top-N passer rule applied per nominee type
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} services.VoteResults
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/meetings/{id}/results [get]
func (h *VoteHandler) GetResults(c *gin.Context) {
	results, err := h.resultsService.Ranked(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
