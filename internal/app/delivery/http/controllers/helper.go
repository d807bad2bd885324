package controllers

import (
	"context"
	"errors"
	"invrent-service/internal/pkg/exceptions"
	"invrent-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func handleUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func decodeBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func urlParamID(r *http.Request, name string) (int64, error) {
	id, err := utils.ParseURLParamID(chi.URLParam(r, name))
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, name)
	}
	return id, nil
}
