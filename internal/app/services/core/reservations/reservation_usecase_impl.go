package reservations

import (
	"context"
	"fmt"
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/app/services/shared/events"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"
	"invrent-service/internal/pkg/exceptions"
	"invrent-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var reservationSortColumns = map[string]string{
	"period": "startAt",
	"item":   "itemName",
	"user":   "userName",
	"status": "status",
}

type reservationUsecase struct {
	InventoryClient contracts.InventoryClient
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	reservationUsecaseInstance contracts.ReservationUsecase
	onceReservationUsecase     sync.Once
)

func NewReservationUsecase(
	inventoryClient contracts.InventoryClient,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReservationUsecase {
	onceReservationUsecase.Do(func() {
		reservationUsecaseInstance = &reservationUsecase{
			InventoryClient: inventoryClient,
			EventPublisher:  eventPublisher,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return reservationUsecaseInstance
}

func (uc *reservationUsecase) FindAll(ctx context.Context, request *requests.ListReservations) ([]responses.Reservation, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reservationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	pageSize := request.PageSize
	if pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	sortBy, ok := reservationSortColumns[request.SortBy]
	if !ok {
		sortBy = constvars.DefaultReservationSortBy
	}
	sortDir := request.SortDir
	if sortDir == "" {
		sortDir = constvars.DefaultSortDir
	}

	page, err := uc.InventoryClient.ListReservations(ctx, models.ReservationQuery{
		Page:     request.Page,
		PageSize: pageSize,
		SortBy:   sortBy,
		SortDir:  sortDir,
		Search:   request.Search,
		Status:   request.Status,
		From:     request.From,
		To:       request.To,
	})
	if err != nil {
		uc.Log.Error("reservationUsecase.FindAll error fetching reservations from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.Reservation, len(page.Data))
	for i, eachReservation := range page.Data {
		response[i] = eachReservation.ConvertIntoResponse()
	}

	baseURL := fmt.Sprintf("%s/%s/%s%s",
		uc.InternalConfig.App.BaseUrl,
		uc.InternalConfig.App.EndpointPrefix,
		uc.InternalConfig.App.Version,
		constvars.ResourceReservations,
	)
	pagination := utils.BuildPaginationResponse(page.Total, request.Page, pageSize, baseURL)

	uc.Log.Info("reservationUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, pagination, nil
}

func (uc *reservationUsecase) Create(ctx context.Context, request *requests.CreateReservation) (*responses.Reservation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reservationUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
	)

	if !request.End.After(request.Start) {
		err := fmt.Errorf("end %s is not after start %s", request.End.Format(time.RFC3339), request.Start.Format(time.RFC3339))
		uc.Log.Error("reservationUsecase.Create invalid reservation range",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReservationRangeInvalid(err)
	}

	reservation, err := uc.InventoryClient.CreateReservation(ctx, &models.ReservationPayload{
		ItemID:   request.ItemID,
		Start:    request.Start.UTC().Format(time.RFC3339),
		End:      request.End.UTC().Format(time.RFC3339),
		Note:     request.Note,
		UserName: request.UserName,
	})
	if err != nil {
		uc.Log.Error("reservationUsecase.Create error creating reservation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
			zap.Error(err),
		)
		return nil, err
	}

	response := reservation.ConvertIntoResponse()
	events.Emit(ctx, uc.EventPublisher, uc.Log, constvars.EventReservationCreated, response)

	uc.Log.Info("reservationUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReservationIDKey, reservation.ID),
	)
	return &response, nil
}

func (uc *reservationUsecase) Cancel(ctx context.Context, reservationID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reservationUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReservationIDKey, reservationID),
	)

	err := uc.InventoryClient.CancelReservation(ctx, reservationID)
	if err != nil {
		uc.Log.Error("reservationUsecase.Cancel error cancelling reservation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingReservationIDKey, reservationID),
			zap.Error(err),
		)
		return err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, constvars.EventReservationCancelled, map[string]int64{"reservationId": reservationID})
	uc.Log.Info("reservationUsecase.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReservationIDKey, reservationID),
	)
	return nil
}

func (uc *reservationUsecase) Approve(ctx context.Context, reservationID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reservationUsecase.Approve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReservationIDKey, reservationID),
	)

	err := uc.InventoryClient.ApproveReservation(ctx, reservationID)
	if err != nil {
		uc.Log.Error("reservationUsecase.Approve error approving reservation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingReservationIDKey, reservationID),
			zap.Error(err),
		)
		return err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, constvars.EventReservationApproved, map[string]int64{"reservationId": reservationID})
	uc.Log.Info("reservationUsecase.Approve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReservationIDKey, reservationID),
	)
	return nil
}
