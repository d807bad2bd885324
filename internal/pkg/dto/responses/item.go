package responses

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Item struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	InventoryNo  string    `json:"inventoryNo"`
	Status       string    `json:"status"`
	Condition    string    `json:"condition"`
	CategoryID   *int64    `json:"categoryId,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Location     *Location `json:"location,omitempty"`
	Tags         []string  `json:"tags"`
	ActiveLoanID *int64    `json:"activeLoanId,omitempty"`
}

type HistoryRow struct {
	Timestamp string `json:"ts"`
	User      string `json:"user"`
	Action    string `json:"action"`
}

type ItemDetail struct {
	Item    *Item        `json:"item"`
	History []HistoryRow `json:"history"`
}
