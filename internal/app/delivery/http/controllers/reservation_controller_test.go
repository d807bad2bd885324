package controllers

import (
	"errors"
	"invrent-service/internal/app/contracts/mocks"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"
	"invrent-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestReservationController_FindAll(t *testing.T) {
	uc := new(mocks.ReservationUsecase)
	ctrl := NewReservationController(zap.NewNop(), uc)
	uc.On("FindAll", mock.Anything, mock.MatchedBy(func(r *requests.ListReservations) bool {
		return r.SortBy == "period" && r.Status == "PENDING" && r.From == "2024-01-01" && r.To == "2024-01-31" && r.PageSize == 25
	})).Return([]responses.Reservation{}, &responses.Pagination{PageSize: 25}, nil)

	rec := httptest.NewRecorder()
	ctrl.FindAll(rec, newTestRequest(http.MethodGet, "/reservations?sortBy=period&status=PENDING&from=2024-01-01&to=2024-01-31&pageSize=25", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)

	rec = httptest.NewRecorder()
	ctrl.FindAll(rec, newTestRequest(http.MethodGet, "/reservations?from=01.01.2024", "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReservationController_Create(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		uc := new(mocks.ReservationUsecase)
		ctrl := NewReservationController(zap.NewNop(), uc)

		rec := httptest.NewRecorder()
		body := `{"itemId":3,"start":"2024-01-05T10:00:00Z","end":"2024-01-04T10:00:00Z"}`
		ctrl.Create(rec, newTestRequest(http.MethodPost, "/reservations", body, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("created", func(t *testing.T) {
		uc := new(mocks.ReservationUsecase)
		ctrl := NewReservationController(zap.NewNop(), uc)
		uc.On("Create", mock.Anything, mock.MatchedBy(func(r *requests.CreateReservation) bool {
			return r.ItemID == 3 && r.UserName == "Max"
		})).Return(&responses.Reservation{ID: 12, ItemID: 3, Status: "PENDING"}, nil)

		rec := httptest.NewRecorder()
		body := `{"itemId":3,"start":"2024-01-05T10:00:00Z","end":"2024-01-06T10:00:00Z","userName":"Max"}`
		ctrl.Create(rec, newTestRequest(http.MethodPost, "/reservations", body, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		uc.AssertExpectations(t)
	})
}

func TestReservationController_Actions(t *testing.T) {
	uc := new(mocks.ReservationUsecase)
	ctrl := NewReservationController(zap.NewNop(), uc)
	uc.On("Cancel", mock.Anything, int64(7)).Return(nil)
	uc.On("Approve", mock.Anything, int64(7)).Return(exceptions.ErrBackendNotAuthorized(errors.New("denied"), http.StatusForbidden, "reservation"))

	params := map[string]string{"reservationID": "7"}

	rec := httptest.NewRecorder()
	ctrl.Cancel(rec, newTestRequest(http.MethodPost, "/reservations/7/cancel", "", params))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	ctrl.Approve(rec, newTestRequest(http.MethodPost, "/reservations/7/approve", "", params))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	uc.AssertExpectations(t)
}
