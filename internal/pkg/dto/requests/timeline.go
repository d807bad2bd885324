package requests

import "time"

// Timeline selects the window shown for one item. A zero Start means today.
type Timeline struct {
	ItemID int64     `validate:"required,gt=0"`
	Start  time.Time `validate:"-"`
	Days   int       `validate:"gte=0,lte=366"`
	Locale string    `validate:"omitempty,oneof=de en"`
}
