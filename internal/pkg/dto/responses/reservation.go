package responses

type Reservation struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"itemId"`
	ItemName    string `json:"itemName"`
	InventoryNo string `json:"inventoryNo"`
	UserName    string `json:"userName,omitempty"`
	StartAt     string `json:"startAt"`
	EndAt       string `json:"endAt"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
}

// Loan is whatever the backend answers for issue/return, kept opaque.
type Loan map[string]interface{}
