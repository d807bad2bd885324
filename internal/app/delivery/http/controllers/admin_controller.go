package controllers

import (
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase contracts.AdminUsecase
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase) *AdminController {
	return &AdminController{
		Log:          logger,
		AdminUsecase: adminUsecase,
	}
}

// Activate exchanges a PIN for an admin token. An empty PIN ends admin mode.
func (ctrl *AdminController) Activate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ActivateAdminMode)
	err := decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	currentToken := r.Header.Get(constvars.HeaderXAdminToken)
	result, err := ctrl.AdminUsecase.Activate(r.Context(), request.Pin, currentToken)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	if result == nil {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeactivateAdminSuccessfully, nil)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ActivateAdminModeSuccessfully, result)
}

func (ctrl *AdminController) Status(w http.ResponseWriter, r *http.Request) {
	capability := models.AdminCapabilityFromContext(r.Context())
	result := ctrl.AdminUsecase.Status(r.Context(), capability)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAdminStatusSuccessfully, result)
}

func (ctrl *AdminController) Deactivate(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(constvars.HeaderXAdminToken)
	if token != "" {
		err := ctrl.AdminUsecase.Deactivate(r.Context(), token)
		if err != nil {
			handleUsecaseError(ctrl.Log, w, err)
			return
		}
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeactivateAdminSuccessfully, nil)
}
