package requests

import "time"

type IssueLoan struct {
	ItemID   int64     `json:"itemId" validate:"required,gt=0"`
	DueAt    time.Time `json:"dueAt" validate:"required,not_past_time"`
	Note     string    `json:"note" validate:"max=500"`
	UserName string    `json:"userName" validate:"max=100"`
}

type ReturnLoan struct {
	ItemID int64 `json:"itemId" validate:"required,gt=0"`
}
