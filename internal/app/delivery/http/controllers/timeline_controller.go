package controllers

import (
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/exceptions"
	"invrent-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type TimelineController struct {
	Log             *zap.Logger
	TimelineUsecase contracts.TimelineUsecase
}

func NewTimelineController(logger *zap.Logger, timelineUsecase contracts.TimelineUsecase) *TimelineController {
	return &TimelineController{
		Log:             logger,
		TimelineUsecase: timelineUsecase,
	}
}

// parseTimelineRequest reads ?start=YYYY-MM-DD|RFC3339&days=N&locale=de|en.
func (ctrl *TimelineController) parseTimelineRequest(r *http.Request) (*requests.Timeline, error) {
	itemID, err := urlParamID(r, constvars.URLParamItemID)
	if err != nil {
		return nil, err
	}

	request := &requests.Timeline{
		ItemID: itemID,
		Days:   utils.QueryInt(r, constvars.QueryParamDays, 0),
		Locale: utils.QueryString(r, constvars.QueryParamLocale),
	}

	if start := utils.QueryString(r, constvars.QueryParamStart); start != "" {
		request.Start, err = utils.ParseDateOrDateTime(start, time.Local)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}

func (ctrl *TimelineController) Find(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.parseTimelineRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.TimelineUsecase.Build(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimelineSuccessfully, result)
}

func (ctrl *TimelineController) RenderSVG(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.parseTimelineRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	svg, err := ctrl.TimelineUsecase.RenderSVG(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEImageSVG)
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(constvars.StatusOK)
	_, err = w.Write(svg)
	if err != nil {
		ctrl.Log.Error("TimelineController.RenderSVG error writing response", zap.Error(err))
	}
}

func (ctrl *TimelineController) Export(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.parseTimelineRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.TimelineUsecase.Export(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportTimelineSuccessfully, result)
}
