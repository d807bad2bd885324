package models

type LoanIssuePayload struct {
	ItemID   int64  `json:"itemId"`
	DueAt    string `json:"dueAt"`
	Note     string `json:"note,omitempty"`
	UserName string `json:"userName,omitempty"`
}

type LoanReturnPayload struct {
	ItemID int64 `json:"itemId"`
}
