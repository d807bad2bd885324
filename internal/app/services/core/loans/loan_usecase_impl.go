package loans

import (
	"context"
	"fmt"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/app/services/shared/events"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"
	"invrent-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type loanUsecase struct {
	InventoryClient contracts.InventoryClient
	EventPublisher  contracts.EventPublisher
	Log             *zap.Logger
	now             func() time.Time
}

var (
	loanUsecaseInstance contracts.LoanUsecase
	onceLoanUsecase     sync.Once
)

func NewLoanUsecase(
	inventoryClient contracts.InventoryClient,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.LoanUsecase {
	onceLoanUsecase.Do(func() {
		loanUsecaseInstance = &loanUsecase{
			InventoryClient: inventoryClient,
			EventPublisher:  eventPublisher,
			Log:             logger,
			now:             time.Now,
		}
	})
	return loanUsecaseInstance
}

func (uc *loanUsecase) Issue(ctx context.Context, request *requests.IssueLoan) (responses.Loan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("loanUsecase.Issue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
	)

	if !request.DueAt.After(uc.now()) {
		err := fmt.Errorf("due date %s is not in the future", request.DueAt.Format(time.RFC3339))
		uc.Log.Error("loanUsecase.Issue invalid due date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrLoanDueInPast(err)
	}

	result, err := uc.InventoryClient.IssueLoan(ctx, &models.LoanIssuePayload{
		ItemID:   request.ItemID,
		DueAt:    request.DueAt.UTC().Format(time.RFC3339),
		Note:     request.Note,
		UserName: request.UserName,
	})
	if err != nil {
		uc.Log.Error("loanUsecase.Issue error issuing loan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
			zap.Error(err),
		)
		return nil, err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, constvars.EventLoanIssued, result)
	uc.Log.Info("loanUsecase.Issue succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
	)
	return responses.Loan(result), nil
}

// Return only proceeds for items the backend reports as lent out.
func (uc *loanUsecase) Return(ctx context.Context, request *requests.ReturnLoan) (responses.Loan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("loanUsecase.Return called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
	)

	item, err := uc.InventoryClient.GetItem(ctx, request.ItemID)
	if err != nil {
		uc.Log.Error("loanUsecase.Return error fetching item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
			zap.Error(err),
		)
		return nil, err
	}
	if item.Status != constvars.ItemStatusOut {
		err := fmt.Errorf("item %d has status %s", item.ID, item.Status)
		uc.Log.Error("loanUsecase.Return item is not lent out",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrItemNotOut(err)
	}

	result, err := uc.InventoryClient.ReturnLoan(ctx, &models.LoanReturnPayload{ItemID: request.ItemID})
	if err != nil {
		uc.Log.Error("loanUsecase.Return error returning loan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
			zap.Error(err),
		)
		return nil, err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, constvars.EventLoanReturned, result)
	uc.Log.Info("loanUsecase.Return succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
	)
	return responses.Loan(result), nil
}
