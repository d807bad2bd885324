package controllers

import (
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/exceptions"
	"invrent-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type ReservationController struct {
	Log                *zap.Logger
	ReservationUsecase contracts.ReservationUsecase
}

func NewReservationController(logger *zap.Logger, reservationUsecase contracts.ReservationUsecase) *ReservationController {
	return &ReservationController{
		Log:                logger,
		ReservationUsecase: reservationUsecase,
	}
}

func (ctrl *ReservationController) FindAll(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListReservations{
		Page:     utils.QueryInt(r, constvars.QueryParamPage, 0),
		PageSize: utils.QueryInt(r, constvars.QueryParamPageSize, constvars.DefaultPageSize),
		SortBy:   utils.QueryString(r, constvars.QueryParamSortBy),
		SortDir:  utils.QueryString(r, constvars.QueryParamSortDir),
		Search:   utils.QueryString(r, constvars.QueryParamSearch),
		Status:   utils.QueryString(r, constvars.QueryParamStatus),
		From:     utils.QueryString(r, constvars.QueryParamFrom),
		To:       utils.QueryString(r, constvars.QueryParamTo),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, pagination, err := ctrl.ReservationUsecase.FindAll(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetReservationsSuccessfully, pagination, result)
}

func (ctrl *ReservationController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateReservation)
	err := decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.ReservationUsecase.Create(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateReservationSuccessfully, result)
}

func (ctrl *ReservationController) Cancel(w http.ResponseWriter, r *http.Request) {
	reservationID, err := urlParamID(r, constvars.URLParamReservationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.ReservationUsecase.Cancel(r.Context(), reservationID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelReservationSuccessfully, nil)
}

func (ctrl *ReservationController) Approve(w http.ResponseWriter, r *http.Request) {
	reservationID, err := urlParamID(r, constvars.URLParamReservationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.ReservationUsecase.Approve(r.Context(), reservationID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ApproveReservationSuccessfully, nil)
}
