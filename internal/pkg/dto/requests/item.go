package requests

type ListItems struct {
	Page       int    `validate:"gte=0"`
	PageSize   int    `validate:"gte=1,lte=200"`
	SortBy     string `validate:"omitempty,oneof=name category status"`
	SortDir    string `validate:"omitempty,sort_dir"`
	Search     string `validate:"max=200"`
	CategoryID *int64 `validate:"omitempty,gt=0"`
	Status     string `validate:"omitempty,item_status"`
}

type CreateItem struct {
	Name        string   `json:"name" validate:"required,max=200"`
	InventoryNo string   `json:"inventoryNo" validate:"required,max=100"`
	Status      string   `json:"status" validate:"omitempty,item_status"`
	Condition   string   `json:"condition" validate:"max=100"`
	CategoryID  *int64   `json:"categoryId" validate:"omitempty,gt=0"`
	LocationID  *int64   `json:"locationId" validate:"omitempty,gt=0"`
	Tags        []string `json:"tags" validate:"dive,max=50"`
}

type UpdateItem struct {
	ID         int64    `json:"-"`
	Name       string   `json:"name" validate:"required,max=200"`
	Status     string   `json:"status" validate:"omitempty,item_status"`
	Condition  string   `json:"condition" validate:"max=100"`
	CategoryID *int64   `json:"categoryId" validate:"omitempty,gt=0"`
	LocationID *int64   `json:"locationId" validate:"omitempty,gt=0"`
	Tags       []string `json:"tags" validate:"dive,max=50"`
}

type CreateCategory struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateLocation struct {
	Name string `json:"name" validate:"required,max=100"`
}
