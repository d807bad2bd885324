package utils

import (
	"errors"
	"invrent-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("not_past_time", validateNotPastTime)
	validate.RegisterValidation("item_status", validateItemStatus)
	validate.RegisterValidation("reservation_status", validateReservationStatus)
	validate.RegisterValidation("sort_dir", validateSortDir)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ParseURLParamID parses the numeric ids the inventory backend uses.
func ParseURLParamID(param string) (int64, error) {
	if param == "" {
		return 0, errors.New("parameter is missing from url path")
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("parameter must be a positive number")
	}
	return id, nil
}

func validateNotPastTime(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return value.After(time.Now())
}

func validateItemStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.ItemStatusOK, constvars.ItemStatusDefect, constvars.ItemStatusOut:
		return true
	}
	return false
}

func validateReservationStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.ReservationStatusPending, constvars.ReservationStatusApproved, constvars.ReservationStatusCancelled:
		return true
	}
	return false
}

func validateSortDir(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	return value == "asc" || value == "desc"
}
