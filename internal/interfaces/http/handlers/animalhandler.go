package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digitalcoban/coban/internal/application/animal/usecases"
	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/interfaces/http/middleware"
	"github.com/digitalcoban/coban/internal/shared/logger"
	"github.com/digitalcoban/coban/internal/shared/utils"
)

// AnimalHandler handles livestock registration and lookup
type AnimalHandler struct {
	registerUC *usecases.RegisterAnimalUseCase
	listUC     *usecases.ListAnimalsUseCase
	lookupUC   *usecases.LookupByQRUseCase
	updateUC   *usecases.UpdateAnimalUseCase
	deleteUC   *usecases.DeleteAnimalUseCase
	logger     logger.Interface
}

// NewAnimalHandler creates a new animal handler
func NewAnimalHandler(
	registerUC *usecases.RegisterAnimalUseCase,
	listUC *usecases.ListAnimalsUseCase,
	lookupUC *usecases.LookupByQRUseCase,
	updateUC *usecases.UpdateAnimalUseCase,
	deleteUC *usecases.DeleteAnimalUseCase,
	logger logger.Interface,
) *AnimalHandler {
	return &AnimalHandler{
		registerUC: registerUC,
		listUC:     listUC,
		lookupUC:   lookupUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		logger:     logger,
	}
}

// RegisterAnimalRequest registers a scanned QR tag as a tracked animal
type RegisterAnimalRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	AnimalType string `json:"animal_type" binding:"required,oneof=large small"`
	QRCode     string `json:"qr_code" binding:"required,max=191"`
	AreaID     *uint  `json:"area_id"`
}

// UpdateAnimalRequest renames an animal or moves it between areas
type UpdateAnimalRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	AreaID    *uint   `json:"area_id"`
	ClearArea bool    `json:"clear_area"`
}

func (h *AnimalHandler) Register(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req RegisterAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register animal", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	created, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterAnimalCommand{
		UserID:     userID,
		Name:       req.Name,
		AnimalType: billing.AnimalType(req.AnimalType),
		QRCode:     req.QRCode,
		AreaID:     req.AreaID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAnimalResponse(created), "animal registered")
}

func (h *AnimalHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	animals, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toAnimalResponses(animals))
}

// LookupByQR resolves a scanned QR code to the owner's animal
func (h *AnimalHandler) LookupByQR(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	qrCode := c.Param("code")
	if qrCode == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "QR code is required")
		return
	}

	found, err := h.lookupUC.Execute(c.Request.Context(), userID, qrCode)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toAnimalResponse(found))
}

func (h *AnimalHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	animalID, err := utils.ParseUintParam(c, "id", "animal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update animal", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAnimalCommand{
		UserID:    userID,
		AnimalID:  animalID,
		Name:      req.Name,
		AreaID:    req.AreaID,
		ClearArea: req.ClearArea,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "animal updated", toAnimalResponse(updated))
}

func (h *AnimalHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	animalID, err := utils.ParseUintParam(c, "id", "animal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, animalID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
