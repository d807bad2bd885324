package controllers

import (
	"context"
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

func TestItemController_FindAll(t *testing.T) {
	t.Run("passes query parameters to the usecase", func(t *testing.T) {
		uc := new(mocks.ItemUsecase)
		ctrl := NewItemController(zap.NewNop(), uc)

		uc.On("FindAll", mock.Anything, mock.MatchedBy(func(r *requests.ListItems) bool {
			return r.Page == 1 && r.PageSize == 10 && r.SortBy == "name" && r.SortDir == "desc" &&
				r.Status == "OUT" && r.CategoryID != nil && *r.CategoryID == 3 && r.Search == "drill"
		})).Return([]responses.Item{{ID: 1, Name: "Drill", Tags: []string{}}}, &responses.Pagination{Total: 11, Page: 1, PageSize: 10}, nil)

		rec := httptest.NewRecorder()
		ctrl.FindAll(rec, newTestRequest(http.MethodGet, "/items?page=1&sortBy=name&sortDir=desc&status=OUT&categoryId=3&search=drill", "", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.True(t, envelope.Success)
		assert.Contains(t, string(envelope.Data), `"Drill"`)
		assert.Contains(t, string(envelope.Pagination), `"total":11`)
		uc.AssertExpectations(t)
	})

	t.Run("rejects unknown sort column", func(t *testing.T) {
		uc := new(mocks.ItemUsecase)
		ctrl := NewItemController(zap.NewNop(), uc)

		rec := httptest.NewRecorder()
		ctrl.FindAll(rec, newTestRequest(http.MethodGet, "/items?sortBy=price", "", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("deadline maps to gateway timeout", func(t *testing.T) {
		uc := new(mocks.ItemUsecase)
		ctrl := NewItemController(zap.NewNop(), uc)
		uc.On("FindAll", mock.Anything, mock.Anything).Return(nil, nil, context.DeadlineExceeded)

		rec := httptest.NewRecorder()
		ctrl.FindAll(rec, newTestRequest(http.MethodGet, "/items", "", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}

func TestItemController_FindByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := new(mocks.ItemUsecase)
		ctrl := NewItemController(zap.NewNop(), uc)

		rec := httptest.NewRecorder()
		ctrl.FindByID(rec, newTestRequest(http.MethodGet, "/items/abc", "", map[string]string{"itemID": "abc"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("backend not found", func(t *testing.T) {
		uc := new(mocks.ItemUsecase)
		ctrl := NewItemController(zap.NewNop(), uc)
		uc.On("FindByID", mock.Anything, int64(9)).Return(nil, exceptions.ErrBackendNotFound(errors.New("missing"), "item"))

		rec := httptest.NewRecorder()
		ctrl.FindByID(rec, newTestRequest(http.MethodGet, "/items/9", "", map[string]string{"itemID": "9"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, decodeEnvelope(t, rec).Success)
	})

	t.Run("found", func(t *testing.T) {
		uc := new(mocks.ItemUsecase)
		ctrl := NewItemController(zap.NewNop(), uc)
		uc.On("FindByID", mock.Anything, int64(9)).Return(&responses.ItemDetail{
			Item:    &responses.Item{ID: 9, Name: "Saw", Tags: []string{}},
			History: []responses.HistoryRow{{Timestamp: "2024-01-01T10:00:00Z", User: "max", Action: "LOAN"}},
		}, nil)

		rec := httptest.NewRecorder()
		ctrl.FindByID(rec, newTestRequest(http.MethodGet, "/items/9", "", map[string]string{"itemID": "9"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"action":"LOAN"`)
	})
}

func TestItemController_Create(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		uc := new(mocks.ItemUsecase)
		ctrl := NewItemController(zap.NewNop(), uc)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newTestRequest(http.MethodPost, "/items", "{", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing inventory number", func(t *testing.T) {
		uc := new(mocks.ItemUsecase)
		ctrl := NewItemController(zap.NewNop(), uc)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newTestRequest(http.MethodPost, "/items", `{"name":"Drill"}`, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("created", func(t *testing.T) {
		uc := new(mocks.ItemUsecase)
		ctrl := NewItemController(zap.NewNop(), uc)
		uc.On("Create", mock.Anything, mock.MatchedBy(func(r *requests.CreateItem) bool {
			return r.Name == "Drill" && r.InventoryNo == "INV-1" && len(r.Tags) == 2
		})).Return(&responses.Item{ID: 4, Name: "Drill", InventoryNo: "INV-1", Status: "OK", Tags: []string{"a", "b"}}, nil)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newTestRequest(http.MethodPost, "/items", `{"name":"Drill","inventoryNo":"INV-1","tags":["a","b"]}`, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		uc.AssertExpectations(t)
	})
}

func TestItemController_UpdateAndDelete(t *testing.T) {
	uc := new(mocks.ItemUsecase)
	ctrl := NewItemController(zap.NewNop(), uc)
	uc.On("Update", mock.Anything, mock.MatchedBy(func(r *requests.UpdateItem) bool {
		return r.ID == 5 && r.Name == "Ladder"
	})).Return(&responses.Item{ID: 5, Name: "Ladder", Tags: []string{}}, nil)
	uc.On("Delete", mock.Anything, int64(5)).Return(nil)

	rec := httptest.NewRecorder()
	ctrl.Update(rec, newTestRequest(http.MethodPut, "/items/5", `{"name":"Ladder"}`, map[string]string{"itemID": "5"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	ctrl.Delete(rec, newTestRequest(http.MethodDelete, "/items/5", "", map[string]string{"itemID": "5"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.AssertExpectations(t)
}
