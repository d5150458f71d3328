package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digitalcoban/coban/internal/application/area/usecases"
	"github.com/digitalcoban/coban/internal/interfaces/http/middleware"
	"github.com/digitalcoban/coban/internal/shared/logger"
	"github.com/digitalcoban/coban/internal/shared/utils"
)

// AreaHandler handles grazing area management
type AreaHandler struct {
	createUC *usecases.CreateAreaUseCase
	listUC   *usecases.ListAreasUseCase
	updateUC *usecases.UpdateAreaUseCase
	deleteUC *usecases.DeleteAreaUseCase
	logger   logger.Interface
}

// NewAreaHandler creates a new area handler
func NewAreaHandler(
	createUC *usecases.CreateAreaUseCase,
	listUC *usecases.ListAreasUseCase,
	updateUC *usecases.UpdateAreaUseCase,
	deleteUC *usecases.DeleteAreaUseCase,
	logger logger.Interface,
) *AreaHandler {
	return &AreaHandler{
		createUC: createUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// CreateAreaRequest creates a named grazing area at a coordinate
type CreateAreaRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=100"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

// UpdateAreaRequest renames or relocates an area; nil fields are left
// unchanged
type UpdateAreaRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

func (h *AreaHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create area", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), usecases.CreateAreaCommand{
		UserID:    userID,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAreaResponse(created), "area created")
}

func (h *AreaHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	areas, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toAreaResponses(areas))
}

func (h *AreaHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	areaID, err := utils.ParseUintParam(c, "id", "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update area", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAreaCommand{
		UserID:    userID,
		AreaID:    areaID,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "area updated", toAreaResponse(updated))
}

func (h *AreaHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	areaID, err := utils.ParseUintParam(c, "id", "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, areaID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
