package mocks

import (
	"context"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type ItemUsecase struct {
	mock.Mock
}

func (m *ItemUsecase) FindAll(ctx context.Context, request *requests.ListItems) ([]responses.Item, *responses.Pagination, error) {
	args := m.Called(ctx, request)
	items, _ := args.Get(0).([]responses.Item)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return items, pagination, args.Error(2)
}

func (m *ItemUsecase) FindByID(ctx context.Context, itemID int64) (*responses.ItemDetail, error) {
	args := m.Called(ctx, itemID)
	detail, _ := args.Get(0).(*responses.ItemDetail)
	return detail, args.Error(1)
}

func (m *ItemUsecase) FindHistory(ctx context.Context, itemID int64) ([]responses.HistoryRow, error) {
	args := m.Called(ctx, itemID)
	rows, _ := args.Get(0).([]responses.HistoryRow)
	return rows, args.Error(1)
}

func (m *ItemUsecase) Create(ctx context.Context, request *requests.CreateItem) (*responses.Item, error) {
	args := m.Called(ctx, request)
	item, _ := args.Get(0).(*responses.Item)
	return item, args.Error(1)
}

func (m *ItemUsecase) Update(ctx context.Context, request *requests.UpdateItem) (*responses.Item, error) {
	args := m.Called(ctx, request)
	item, _ := args.Get(0).(*responses.Item)
	return item, args.Error(1)
}

func (m *ItemUsecase) Delete(ctx context.Context, itemID int64) error {
	return m.Called(ctx, itemID).Error(0)
}

type CatalogUsecase struct {
	mock.Mock
}

func (m *CatalogUsecase) FindAllCategories(ctx context.Context) ([]responses.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]responses.Category)
	return categories, args.Error(1)
}

func (m *CatalogUsecase) CreateCategory(ctx context.Context, request *requests.CreateCategory) (*responses.Category, error) {
	args := m.Called(ctx, request)
	category, _ := args.Get(0).(*responses.Category)
	return category, args.Error(1)
}

func (m *CatalogUsecase) DeleteCategory(ctx context.Context, categoryID int64) error {
	return m.Called(ctx, categoryID).Error(0)
}

func (m *CatalogUsecase) FindAllLocations(ctx context.Context) ([]responses.Location, error) {
	args := m.Called(ctx)
	locations, _ := args.Get(0).([]responses.Location)
	return locations, args.Error(1)
}

func (m *CatalogUsecase) CreateLocation(ctx context.Context, request *requests.CreateLocation) (*responses.Location, error) {
	args := m.Called(ctx, request)
	location, _ := args.Get(0).(*responses.Location)
	return location, args.Error(1)
}

func (m *CatalogUsecase) DeleteLocation(ctx context.Context, locationID int64) error {
	return m.Called(ctx, locationID).Error(0)
}

func (m *CatalogUsecase) RefreshCache(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type ReservationUsecase struct {
	mock.Mock
}

func (m *ReservationUsecase) FindAll(ctx context.Context, request *requests.ListReservations) ([]responses.Reservation, *responses.Pagination, error) {
	args := m.Called(ctx, request)
	reservations, _ := args.Get(0).([]responses.Reservation)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return reservations, pagination, args.Error(2)
}

func (m *ReservationUsecase) Create(ctx context.Context, request *requests.CreateReservation) (*responses.Reservation, error) {
	args := m.Called(ctx, request)
	reservation, _ := args.Get(0).(*responses.Reservation)
	return reservation, args.Error(1)
}

func (m *ReservationUsecase) Cancel(ctx context.Context, reservationID int64) error {
	return m.Called(ctx, reservationID).Error(0)
}

func (m *ReservationUsecase) Approve(ctx context.Context, reservationID int64) error {
	return m.Called(ctx, reservationID).Error(0)
}

type LoanUsecase struct {
	mock.Mock
}

func (m *LoanUsecase) Issue(ctx context.Context, request *requests.IssueLoan) (responses.Loan, error) {
	args := m.Called(ctx, request)
	loan, _ := args.Get(0).(responses.Loan)
	return loan, args.Error(1)
}

func (m *LoanUsecase) Return(ctx context.Context, request *requests.ReturnLoan) (responses.Loan, error) {
	args := m.Called(ctx, request)
	loan, _ := args.Get(0).(responses.Loan)
	return loan, args.Error(1)
}

type TimelineUsecase struct {
	mock.Mock
}

func (m *TimelineUsecase) Build(ctx context.Context, request *requests.Timeline) (*responses.Timeline, error) {
	args := m.Called(ctx, request)
	timeline, _ := args.Get(0).(*responses.Timeline)
	return timeline, args.Error(1)
}

func (m *TimelineUsecase) RenderSVG(ctx context.Context, request *requests.Timeline) ([]byte, error) {
	args := m.Called(ctx, request)
	svg, _ := args.Get(0).([]byte)
	return svg, args.Error(1)
}

func (m *TimelineUsecase) Export(ctx context.Context, request *requests.Timeline) (*responses.TimelineExport, error) {
	args := m.Called(ctx, request)
	export, _ := args.Get(0).(*responses.TimelineExport)
	return export, args.Error(1)
}

type AdminUsecase struct {
	mock.Mock
}

func (m *AdminUsecase) Activate(ctx context.Context, pin, currentToken string) (*responses.AdminSession, error) {
	args := m.Called(ctx, pin, currentToken)
	session, _ := args.Get(0).(*responses.AdminSession)
	return session, args.Error(1)
}

func (m *AdminUsecase) Resolve(ctx context.Context, token string) (*models.AdminCapability, error) {
	args := m.Called(ctx, token)
	capability, _ := args.Get(0).(*models.AdminCapability)
	return capability, args.Error(1)
}

func (m *AdminUsecase) Deactivate(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *AdminUsecase) Status(ctx context.Context, capability *models.AdminCapability) *responses.AdminStatus {
	status, _ := m.Called(ctx, capability).Get(0).(*responses.AdminStatus)
	return status
}

func (m *AdminUsecase) RecordPrivilegedAction(ctx context.Context, capability *models.AdminCapability, method, path string) {
	m.Called(ctx, capability, method, path)
}
