package requests

import "time"

type CreateReservation struct {
	ItemID   int64     `json:"itemId" validate:"required,gt=0"`
	Start    time.Time `json:"start" validate:"required"`
	End      time.Time `json:"end" validate:"required,gtfield=Start"`
	Note     string    `json:"note" validate:"max=500"`
	UserName string    `json:"userName" validate:"max=100"`
}

type ListReservations struct {
	Page     int    `validate:"gte=0"`
	PageSize int    `validate:"gte=1,lte=200"`
	SortBy   string `validate:"omitempty,oneof=period item user status"`
	SortDir  string `validate:"omitempty,sort_dir"`
	Search   string `validate:"max=200"`
	Status   string `validate:"omitempty,reservation_status"`
	From     string `validate:"omitempty,datetime=2006-01-02"`
	To       string `validate:"omitempty,datetime=2006-01-02"`
}
