package models

import (
	"fmt"
	"invrent-service/internal/pkg/dto/responses"
	"invrent-service/internal/pkg/utils"

	"github.com/tidwall/gjson"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c Category) ConvertIntoResponse() responses.Category {
	return responses.Category{ID: c.ID, Name: c.Name}
}

type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (l Location) ConvertIntoResponse() responses.Location {
	return responses.Location{ID: l.ID, Name: l.Name}
}

// Item is the inventory backend representation. Tags travel as a comma
// separated string.
type Item struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	InventoryNo  string    `json:"inventoryNo"`
	Status       string    `json:"status"`
	Condition    *string   `json:"condition,omitempty"`
	CategoryID   *int64    `json:"categoryId,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Location     *Location `json:"location,omitempty"`
	TagsCsv      *string   `json:"tagsCsv,omitempty"`
	ActiveLoanID *int64    `json:"activeLoanId,omitempty"`
}

func (i Item) ConvertIntoResponse() responses.Item {
	response := responses.Item{
		ID:           i.ID,
		Name:         i.Name,
		InventoryNo:  i.InventoryNo,
		Status:       i.Status,
		CategoryID:   i.CategoryID,
		ActiveLoanID: i.ActiveLoanID,
		Tags:         []string{},
	}
	if i.Condition != nil {
		response.Condition = *i.Condition
	}
	if i.Category != nil {
		category := i.Category.ConvertIntoResponse()
		response.Category = &category
		if response.CategoryID == nil {
			response.CategoryID = &i.Category.ID
		}
	}
	if i.Location != nil {
		location := i.Location.ConvertIntoResponse()
		response.Location = &location
	}
	if i.TagsCsv != nil {
		response.Tags = utils.SplitTagsCsv(*i.TagsCsv)
	}
	return response
}

type ItemPayload struct {
	Name        string `json:"name,omitempty"`
	InventoryNo string `json:"inventoryNo,omitempty"`
	Status      string `json:"status,omitempty"`
	Condition   string `json:"condition,omitempty"`
	CategoryID  *int64 `json:"categoryId,omitempty"`
	LocationID  *int64 `json:"locationId,omitempty"`
	TagsCsv     string `json:"tagsCsv"`
}

type ItemQuery struct {
	Page       int
	PageSize   int
	SortBy     string
	SortDir    string
	Search     string
	CategoryID *int64
	Status     string
}

type ItemPage struct {
	Data  []Item `json:"data"`
	Total int    `json:"total"`
}

// HistoryEntry tolerates the field names different backend versions use:
// ts, createdAt or date for the timestamp and actor or user for the actor.
type HistoryEntry struct {
	Timestamp string
	Actor     string
	Action    string
}

func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid history entry: %s", data)
	}
	fields := gjson.GetManyBytes(data, "ts", "createdAt", "date", "actor", "user", "action")
	h.Timestamp = firstPresent(fields[0], fields[1], fields[2])
	h.Actor = firstPresent(fields[3], fields[4])
	h.Action = firstPresent(fields[5])
	return nil
}

func (h HistoryEntry) ConvertIntoResponse() responses.HistoryRow {
	return responses.HistoryRow{
		Timestamp: h.Timestamp,
		User:      h.Actor,
		Action:    h.Action,
	}
}

func firstPresent(values ...gjson.Result) string {
	for _, v := range values {
		if v.Exists() && v.Type != gjson.Null {
			return v.String()
		}
	}
	return ""
}
