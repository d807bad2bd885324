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

type LoanController struct {
	Log         *zap.Logger
	LoanUsecase contracts.LoanUsecase
}

func NewLoanController(logger *zap.Logger, loanUsecase contracts.LoanUsecase) *LoanController {
	return &LoanController{
		Log:         logger,
		LoanUsecase: loanUsecase,
	}
}

func (ctrl *LoanController) Issue(w http.ResponseWriter, r *http.Request) {
	request := new(requests.IssueLoan)
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

	result, err := ctrl.LoanUsecase.Issue(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.IssueLoanSuccessfully, result)
}

func (ctrl *LoanController) Return(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ReturnLoan)
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

	result, err := ctrl.LoanUsecase.Return(r.Context(), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReturnLoanSuccessfully, result)
}
