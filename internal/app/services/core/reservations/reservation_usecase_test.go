package reservations

import (
	"context"
	"errors"
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/contracts/mocks"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupReservationUsecase() (*reservationUsecase, *mocks.InventoryClient, *mocks.EventPublisher) {
	client := new(mocks.InventoryClient)
	publisher := new(mocks.EventPublisher)
	return &reservationUsecase{
		InventoryClient: client,
		EventPublisher:  publisher,
		InternalConfig:  &config.InternalConfig{App: config.App{BaseUrl: "http://svc", EndpointPrefix: "api", Version: "v1"}},
		Log:             zap.NewNop(),
	}, client, publisher
}

func TestReservationUsecase_FindAll_Defaults(t *testing.T) {
	uc, client, _ := setupReservationUsecase()
	user := "anna"
	client.On("ListReservations", mock.Anything, models.ReservationQuery{
		Page: 0, PageSize: 10, SortBy: "startAt", SortDir: "asc", Status: "PENDING",
	}).Return(&models.ReservationPage{
		Data:  []models.Reservation{{ID: 1, ItemID: 3, ItemName: "Drill", UserName: &user, StartAt: "2024-01-01", EndAt: "2024-01-02", Status: "PENDING"}},
		Total: 1,
	}, nil)

	reservations, pagination, err := uc.FindAll(context.Background(), &requests.ListReservations{Status: "PENDING"})
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "anna", reservations[0].UserName)
	assert.Empty(t, pagination.NextURL)
	client.AssertExpectations(t)
}

func TestReservationUsecase_FindAll_SortMapping(t *testing.T) {
	cases := map[string]string{"period": "startAt", "item": "itemName", "user": "userName", "status": "status"}
	for column, backend := range cases {
		uc, client, _ := setupReservationUsecase()
		client.On("ListReservations", mock.Anything, mock.MatchedBy(func(q models.ReservationQuery) bool {
			return q.SortBy == backend && q.SortDir == "desc" && q.PageSize == 50
		})).Return(&models.ReservationPage{}, nil)

		_, _, err := uc.FindAll(context.Background(), &requests.ListReservations{SortBy: column, SortDir: "desc", PageSize: 50})
		require.NoError(t, err, column)
		client.AssertExpectations(t)
	}
}

func TestReservationUsecase_Create(t *testing.T) {
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("end must be after start", func(t *testing.T) {
		uc, client, _ := setupReservationUsecase()
		_, err := uc.Create(context.Background(), &requests.CreateReservation{ItemID: 1, Start: start, End: start})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		client.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
	})

	t.Run("forwards ISO timestamps", func(t *testing.T) {
		uc, client, publisher := setupReservationUsecase()
		client.On("CreateReservation", mock.Anything, &models.ReservationPayload{
			ItemID: 1, Start: "2024-01-02T09:00:00Z", End: "2024-01-02T17:00:00Z", Note: "site", UserName: "max",
		}).Return(&models.Reservation{ID: 11, ItemID: 1, Status: constvars.ReservationStatusPending}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		reservation, err := uc.Create(context.Background(), &requests.CreateReservation{
			ItemID: 1, Start: start, End: start.Add(8 * time.Hour), Note: "site", UserName: "max",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), reservation.ID)
		publisher.AssertNumberOfCalls(t, "Publish", 1)
	})
}

func TestReservationUsecase_CancelApprove(t *testing.T) {
	uc, client, publisher := setupReservationUsecase()
	client.On("CancelReservation", mock.Anything, int64(4)).Return(nil)
	client.On("ApproveReservation", mock.Anything, int64(5)).Return(errors.New("rejected"))
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.Type == constvars.EventReservationCancelled
	})).Return(nil)

	assert.NoError(t, uc.Cancel(context.Background(), 4))
	assert.Error(t, uc.Approve(context.Background(), 5))
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}
