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

type ItemController struct {
	Log         *zap.Logger
	ItemUsecase contracts.ItemUsecase
}

func NewItemController(logger *zap.Logger, itemUsecase contracts.ItemUsecase) *ItemController {
	return &ItemController{
		Log:         logger,
		ItemUsecase: itemUsecase,
	}
}

func (ctrl *ItemController) FindAll(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListItems{
		Page:       utils.QueryInt(r, constvars.QueryParamPage, 0),
		PageSize:   utils.QueryInt(r, constvars.QueryParamPageSize, constvars.DefaultPageSize),
		SortBy:     utils.QueryString(r, constvars.QueryParamSortBy),
		SortDir:    utils.QueryString(r, constvars.QueryParamSortDir),
		Search:     utils.QueryString(r, constvars.QueryParamSearch),
		CategoryID: utils.QueryInt64Ptr(r, constvars.QueryParamCategoryID),
		Status:     utils.QueryString(r, constvars.QueryParamStatus),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, pagination, err := ctrl.ItemUsecase.FindAll(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetItemsSuccessfully, pagination, result)
}

func (ctrl *ItemController) FindByID(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlParamID(r, constvars.URLParamItemID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.ItemUsecase.FindByID(r.Context(), itemID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetItemSuccessfully, result)
}

func (ctrl *ItemController) FindHistory(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlParamID(r, constvars.URLParamItemID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.ItemUsecase.FindHistory(r.Context(), itemID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetItemHistorySuccessfully, result)
}

func (ctrl *ItemController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateItem)
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

	result, err := ctrl.ItemUsecase.Create(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateItemSuccessfully, result)
}

func (ctrl *ItemController) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlParamID(r, constvars.URLParamItemID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateItem)
	err = decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.ID = itemID

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.ItemUsecase.Update(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateItemSuccessfully, result)
}

func (ctrl *ItemController) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlParamID(r, constvars.URLParamItemID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.ItemUsecase.Delete(r.Context(), itemID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteItemSuccessfully, nil)
}
