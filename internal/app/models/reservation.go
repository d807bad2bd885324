package models

import "invrent-service/internal/pkg/dto/responses"

type Reservation struct {
	ID          int64   `json:"id"`
	ItemID      int64   `json:"itemId"`
	ItemName    string  `json:"itemName"`
	InventoryNo string  `json:"inventoryNo"`
	UserName    *string `json:"userName,omitempty"`
	StartAt     string  `json:"startAt"`
	EndAt       string  `json:"endAt"`
	Status      string  `json:"status"`
	Note        *string `json:"note,omitempty"`
}

func (r Reservation) ConvertIntoResponse() responses.Reservation {
	response := responses.Reservation{
		ID:          r.ID,
		ItemID:      r.ItemID,
		ItemName:    r.ItemName,
		InventoryNo: r.InventoryNo,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
		Status:      r.Status,
	}
	if r.UserName != nil {
		response.UserName = *r.UserName
	}
	if r.Note != nil {
		response.Note = *r.Note
	}
	return response
}

type ReservationPayload struct {
	ItemID   int64  `json:"itemId"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Note     string `json:"note,omitempty"`
	UserName string `json:"userName,omitempty"`
}

type ReservationQuery struct {
	Page     int
	PageSize int
	SortBy   string
	SortDir  string
	Search   string
	Status   string
	From     string
	To       string
}

type ReservationPage struct {
	Data  []Reservation `json:"data"`
	Total int           `json:"total"`
}
