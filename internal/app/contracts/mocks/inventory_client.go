// Package mocks holds testify mocks for the contracts package.
package mocks

import (
	"context"
	"invrent-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type InventoryClient struct {
	mock.Mock
}

func (m *InventoryClient) ListItems(ctx context.Context, query models.ItemQuery) (*models.ItemPage, error) {
	args := m.Called(ctx, query)
	page, _ := args.Get(0).(*models.ItemPage)
	return page, args.Error(1)
}

func (m *InventoryClient) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *InventoryClient) CreateItem(ctx context.Context, payload *models.ItemPayload) (*models.Item, error) {
	args := m.Called(ctx, payload)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *InventoryClient) UpdateItem(ctx context.Context, itemID int64, payload *models.ItemPayload) (*models.Item, error) {
	args := m.Called(ctx, itemID, payload)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *InventoryClient) DeleteItem(ctx context.Context, itemID int64) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *InventoryClient) GetItemHistory(ctx context.Context, itemID int64) ([]models.HistoryEntry, error) {
	args := m.Called(ctx, itemID)
	history, _ := args.Get(0).([]models.HistoryEntry)
	return history, args.Error(1)
}

func (m *InventoryClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *InventoryClient) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *InventoryClient) DeleteCategory(ctx context.Context, categoryID int64) error {
	return m.Called(ctx, categoryID).Error(0)
}

func (m *InventoryClient) ListLocations(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)
	locations, _ := args.Get(0).([]models.Location)
	return locations, args.Error(1)
}

func (m *InventoryClient) CreateLocation(ctx context.Context, name string) (*models.Location, error) {
	args := m.Called(ctx, name)
	location, _ := args.Get(0).(*models.Location)
	return location, args.Error(1)
}

func (m *InventoryClient) DeleteLocation(ctx context.Context, locationID int64) error {
	return m.Called(ctx, locationID).Error(0)
}

func (m *InventoryClient) CreateReservation(ctx context.Context, payload *models.ReservationPayload) (*models.Reservation, error) {
	args := m.Called(ctx, payload)
	reservation, _ := args.Get(0).(*models.Reservation)
	return reservation, args.Error(1)
}

func (m *InventoryClient) ListReservations(ctx context.Context, query models.ReservationQuery) (*models.ReservationPage, error) {
	args := m.Called(ctx, query)
	page, _ := args.Get(0).(*models.ReservationPage)
	return page, args.Error(1)
}

func (m *InventoryClient) CancelReservation(ctx context.Context, reservationID int64) error {
	return m.Called(ctx, reservationID).Error(0)
}

func (m *InventoryClient) ApproveReservation(ctx context.Context, reservationID int64) error {
	return m.Called(ctx, reservationID).Error(0)
}

func (m *InventoryClient) IssueLoan(ctx context.Context, payload *models.LoanIssuePayload) (map[string]interface{}, error) {
	args := m.Called(ctx, payload)
	result, _ := args.Get(0).(map[string]interface{})
	return result, args.Error(1)
}

func (m *InventoryClient) ReturnLoan(ctx context.Context, payload *models.LoanReturnPayload) (map[string]interface{}, error) {
	args := m.Called(ctx, payload)
	result, _ := args.Get(0).(map[string]interface{})
	return result, args.Error(1)
}

func (m *InventoryClient) AdminPing(ctx context.Context, pin string) error {
	return m.Called(ctx, pin).Error(0)
}

func (m *InventoryClient) GetAvailability(ctx context.Context, itemID int64, from, to time.Time) ([]models.AvailabilitySpan, error) {
	args := m.Called(ctx, itemID, from, to)
	spans, _ := args.Get(0).([]models.AvailabilitySpan)
	return spans, args.Error(1)
}
