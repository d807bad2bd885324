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

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) FindAllCategories(w http.ResponseWriter, r *http.Request) {
	result, err := ctrl.CatalogUsecase.FindAllCategories(r.Context())
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCategoriesSuccessfully, result)
}

func (ctrl *CatalogController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateCategory)
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

	result, err := ctrl.CatalogUsecase.CreateCategory(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCategorySuccessfully, result)
}

func (ctrl *CatalogController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := urlParamID(r, constvars.URLParamCategoryID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.CatalogUsecase.DeleteCategory(r.Context(), categoryID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCategorySuccessfully, nil)
}

func (ctrl *CatalogController) FindAllLocations(w http.ResponseWriter, r *http.Request) {
	result, err := ctrl.CatalogUsecase.FindAllLocations(r.Context())
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLocationsSuccessfully, result)
}

func (ctrl *CatalogController) CreateLocation(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateLocation)
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

	result, err := ctrl.CatalogUsecase.CreateLocation(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLocationSuccessfully, result)
}

func (ctrl *CatalogController) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := urlParamID(r, constvars.URLParamLocationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.CatalogUsecase.DeleteLocation(r.Context(), locationID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteLocationSuccessfully, nil)
}
