package handlers

import (
	"net/http"
	"strconv"

	"github.com/Aarontamirat/voting-app/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ShareholderHandler struct {
	shareholderService *services.ShareholderService
}

func NewShareholderHandler(shareholderService *services.ShareholderService) *ShareholderHandler {
	return &ShareholderHandler{shareholderService: shareholderService}
}

type CreateShareholderRequest struct {
	ID         string  `json:"id" binding:"required" example:"SH-0042"`
	Name       string  `json:"name" binding:"required" example:"Abebe Bekele"`
	NameAm     string  `json:"name_am" example:"አበበ በቀለ"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	ShareValue string  `json:"share_value" binding:"required" example:"150.00"`
}

type UpdateShareholderRequest struct {
	Name       *string `json:"name,omitempty"`
	NameAm     *string `json:"name_am,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	ShareValue *string `json:"share_value,omitempty"`
}

type BulkShareholderRequest struct {
	Items []CreateShareholderRequest `json:"items" binding:"required,min=1"`
}

// ListShareholders godoc
// @Summary      List shareholders
// @Description  Paginated registry listing with search over id, names and phone
// @Tags         shareholders
// @Produce      json
// @Security     BearerAuth
// @Param        q    query string false "Search text"
// @Param        page query int    false "Page number"
// @Param        take query int    false "Page size (max 100)"
// @Success      200 {object} services.ShareholderPage
// @Router       /api/v1/shareholders [get]
func (h *ShareholderHandler) ListShareholders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	take, _ := strconv.Atoi(c.DefaultQuery("take", "10"))

	result, err := h.shareholderService.List(c.Query("q"), page, take)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetShareholder godoc
// @Summary      Get a shareholder
// @Tags         shareholders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Shareholder ID"
// @Success      200 {object} Shareholder
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/shareholders/{id} [get]
func (h *ShareholderHandler) GetShareholder(c *gin.Context) {
	sh, err := h.shareholderService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sh)
}

// CreateShareholder godoc
// @Summary      Register a shareholder
// @Description  Add a holder with their registrar-assigned id and share count
// @Tags         shareholders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateShareholderRequest true "Shareholder data"
// @Success      201 {object} Shareholder
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/shareholders [post]
func (h *ShareholderHandler) CreateShareholder(c *gin.Context) {
	var req CreateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	shareValue, err := decimal.NewFromString(req.ShareValue)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "share value must be a number"})
		return
	}

	sh, err := h.shareholderService.Create(services.ShareholderInput{
		ID:         req.ID,
		Name:       req.Name,
		NameAm:     req.NameAm,
		Phone:      req.Phone,
		Address:    req.Address,
		ShareValue: shareValue,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sh)
}

// UpdateShareholder godoc
// @Summary      Update a shareholder
// @Tags         shareholders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Shareholder ID"
// @Param        request body UpdateShareholderRequest true "Fields to update"
// @Success      200 {object} Shareholder
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/shareholders/{id} [put]
func (h *ShareholderHandler) UpdateShareholder(c *gin.Context) {
	var req UpdateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	update := services.ShareholderUpdate{
		Name:    req.Name,
		NameAm:  req.NameAm,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if req.ShareValue != nil {
		shareValue, err := decimal.NewFromString(*req.ShareValue)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "share value must be a number"})
			return
		}
		update.ShareValue = &shareValue
	}

	sh, err := h.shareholderService.Update(c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sh)
}

// DeleteShareholder godoc
// @Summary      Delete a shareholder
// @Description  Only holders without attendance or vote history can be removed
// @Tags         shareholders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Shareholder ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/shareholders/{id} [delete]
func (h *ShareholderHandler) DeleteShareholder(c *gin.Context) {
	if err := h.shareholderService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "shareholder deleted"})
}

// BulkCreateShareholders godoc
// @Summary      Bulk register shareholders
// @Description  Insert a batch of registrar rows; the batch is all-or-nothing
// @Tags         shareholders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BulkShareholderRequest true "Rows to insert"
// @Success      201 {object} map[string]int
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/shareholders/bulk [post]
func (h *ShareholderHandler) BulkCreateShareholders(c *gin.Context) {
	var req BulkShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rows := make([]services.ShareholderInput, len(req.Items))
	for i, item := range req.Items {
		shareValue, err := decimal.NewFromString(item.ShareValue)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "share value must be a number"})
			return
		}
		rows[i] = services.ShareholderInput{
			ID:         item.ID,
			Name:       item.Name,
			NameAm:     item.NameAm,
			Phone:      item.Phone,
			Address:    item.Address,
			ShareValue: shareValue,
		}
	}

	count, err := h.shareholderService.BulkCreate(rows)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"count": count})
}
