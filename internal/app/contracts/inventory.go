package contracts

import (
	"context"
	"invrent-service/internal/app/models"
	"time"
)

// InventoryClient talks to the inventory REST backend. The admin PIN found in
// the request context is attached to every call.
type InventoryClient interface {
	ListItems(ctx context.Context, query models.ItemQuery) (*models.ItemPage, error)
	GetItem(ctx context.Context, itemID int64) (*models.Item, error)
	CreateItem(ctx context.Context, payload *models.ItemPayload) (*models.Item, error)
	UpdateItem(ctx context.Context, itemID int64, payload *models.ItemPayload) (*models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
	GetItemHistory(ctx context.Context, itemID int64) ([]models.HistoryEntry, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
	ListLocations(ctx context.Context) ([]models.Location, error)
	CreateLocation(ctx context.Context, name string) (*models.Location, error)
	DeleteLocation(ctx context.Context, locationID int64) error

	CreateReservation(ctx context.Context, payload *models.ReservationPayload) (*models.Reservation, error)
	ListReservations(ctx context.Context, query models.ReservationQuery) (*models.ReservationPage, error)
	CancelReservation(ctx context.Context, reservationID int64) error
	ApproveReservation(ctx context.Context, reservationID int64) error

	IssueLoan(ctx context.Context, payload *models.LoanIssuePayload) (map[string]interface{}, error)
	ReturnLoan(ctx context.Context, payload *models.LoanReturnPayload) (map[string]interface{}, error)

	// AdminPing checks pin against the backend, ignoring any PIN in ctx.
	AdminPing(ctx context.Context, pin string) error
	GetAvailability(ctx context.Context, itemID int64, from, to time.Time) ([]models.AvailabilitySpan, error)
}
