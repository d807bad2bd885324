package loans

import (
	"context"
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

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func setupLoanUsecase() (*loanUsecase, *mocks.InventoryClient, *mocks.EventPublisher) {
	client := new(mocks.InventoryClient)
	publisher := new(mocks.EventPublisher)
	return &loanUsecase{
		InventoryClient: client,
		EventPublisher:  publisher,
		Log:             zap.NewNop(),
		now:             func() time.Time { return fixedNow },
	}, client, publisher
}

func TestLoanUsecase_Issue(t *testing.T) {
	t.Run("due date in the past", func(t *testing.T) {
		uc, client, _ := setupLoanUsecase()
		_, err := uc.Issue(context.Background(), &requests.IssueLoan{ItemID: 1, DueAt: fixedNow.Add(-time.Hour)})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		client.AssertNotCalled(t, "IssueLoan", mock.Anything, mock.Anything)
	})

	t.Run("issues and publishes", func(t *testing.T) {
		uc, client, publisher := setupLoanUsecase()
		client.On("IssueLoan", mock.Anything, &models.LoanIssuePayload{
			ItemID: 1, DueAt: "2024-06-08T12:00:00Z", UserName: "anna",
		}).Return(map[string]interface{}{"id": float64(77)}, nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
			return e.Type == constvars.EventLoanIssued
		})).Return(nil)

		loan, err := uc.Issue(context.Background(), &requests.IssueLoan{ItemID: 1, DueAt: fixedNow.AddDate(0, 0, 7), UserName: "anna"})
		require.NoError(t, err)
		assert.Equal(t, float64(77), loan["id"])
		publisher.AssertExpectations(t)
	})
}

func TestLoanUsecase_Return(t *testing.T) {
	t.Run("item not out", func(t *testing.T) {
		uc, client, _ := setupLoanUsecase()
		client.On("GetItem", mock.Anything, int64(2)).Return(&models.Item{ID: 2, Status: constvars.ItemStatusOK}, nil)

		_, err := uc.Return(context.Background(), &requests.ReturnLoan{ItemID: 2})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		client.AssertNotCalled(t, "ReturnLoan", mock.Anything, mock.Anything)
	})

	t.Run("item out is returned", func(t *testing.T) {
		uc, client, publisher := setupLoanUsecase()
		client.On("GetItem", mock.Anything, int64(2)).Return(&models.Item{ID: 2, Status: constvars.ItemStatusOut}, nil)
		client.On("ReturnLoan", mock.Anything, &models.LoanReturnPayload{ItemID: 2}).Return(map[string]interface{}{"ok": true}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		loan, err := uc.Return(context.Background(), &requests.ReturnLoan{ItemID: 2})
		require.NoError(t, err)
		assert.Equal(t, true, loan["ok"])
	})
}
