package controllers

import (
	"invrent-service/internal/app/config"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/responses"
	"invrent-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessfully, responses.Health{
		Status:  "ok",
		Version: ctrl.InternalConfig.App.Version,
	})
}
