package items

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
	"invrent-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

// Item list columns as the console names them, mapped to backend sort keys.
var itemSortColumns = map[string]string{
	"name":     "name",
	"category": "categoryName",
	"status":   "status",
}

type itemUsecase struct {
	InventoryClient contracts.InventoryClient
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	itemUsecaseInstance contracts.ItemUsecase
	onceItemUsecase     sync.Once
)

func NewItemUsecase(
	inventoryClient contracts.InventoryClient,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ItemUsecase {
	onceItemUsecase.Do(func() {
		itemUsecaseInstance = &itemUsecase{
			InventoryClient: inventoryClient,
			EventPublisher:  eventPublisher,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return itemUsecaseInstance
}

func (uc *itemUsecase) FindAll(ctx context.Context, request *requests.ListItems) ([]responses.Item, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("itemUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	pageSize := request.PageSize
	if pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}

	query := models.ItemQuery{
		Page:       request.Page,
		PageSize:   pageSize,
		SortBy:     itemSortColumns[request.SortBy],
		Search:     request.Search,
		CategoryID: request.CategoryID,
		Status:     request.Status,
	}
	if query.SortBy != "" {
		query.SortDir = request.SortDir
		if query.SortDir == "" {
			query.SortDir = constvars.DefaultSortDir
		}
	}

	page, err := uc.InventoryClient.ListItems(ctx, query)
	if err != nil {
		uc.Log.Error("itemUsecase.FindAll error fetching items from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.Item, len(page.Data))
	for i, eachItem := range page.Data {
		response[i] = eachItem.ConvertIntoResponse()
	}

	baseURL := fmt.Sprintf("%s%s", uc.apiBaseURL(), constvars.ResourceItems)
	pagination := utils.BuildPaginationResponse(page.Total, request.Page, pageSize, baseURL)

	uc.Log.Info("itemUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, pagination, nil
}

func (uc *itemUsecase) FindByID(ctx context.Context, itemID int64) (*responses.ItemDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("itemUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, itemID),
	)

	item, err := uc.InventoryClient.GetItem(ctx, itemID)
	if err != nil {
		uc.Log.Error("itemUsecase.FindByID error fetching item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, itemID),
			zap.Error(err),
		)
		return nil, err
	}

	history, err := uc.FindHistory(ctx, itemID)
	if err != nil {
		return nil, err
	}

	itemResponse := item.ConvertIntoResponse()
	uc.Log.Info("itemUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, itemID),
		zap.Int(constvars.LoggingResponseCountKey, len(history)),
	)
	return &responses.ItemDetail{
		Item:    &itemResponse,
		History: history,
	}, nil
}

func (uc *itemUsecase) FindHistory(ctx context.Context, itemID int64) ([]responses.HistoryRow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("itemUsecase.FindHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, itemID),
	)

	entries, err := uc.InventoryClient.GetItemHistory(ctx, itemID)
	if err != nil {
		uc.Log.Error("itemUsecase.FindHistory error fetching history",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, itemID),
			zap.Error(err),
		)
		return nil, err
	}

	history := make([]responses.HistoryRow, len(entries))
	for i, entry := range entries {
		history[i] = entry.ConvertIntoResponse()
	}
	return history, nil
}

func (uc *itemUsecase) Create(ctx context.Context, request *requests.CreateItem) (*responses.Item, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("itemUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	status := request.Status
	if status == "" {
		status = constvars.ItemStatusOK
	}
	payload := &models.ItemPayload{
		Name:        request.Name,
		InventoryNo: request.InventoryNo,
		Status:      status,
		Condition:   request.Condition,
		CategoryID:  request.CategoryID,
		LocationID:  request.LocationID,
		TagsCsv:     utils.JoinTags(request.Tags),
	}

	item, err := uc.InventoryClient.CreateItem(ctx, payload)
	if err != nil {
		uc.Log.Error("itemUsecase.Create error creating item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := item.ConvertIntoResponse()
	events.Emit(ctx, uc.EventPublisher, uc.Log, constvars.EventItemCreated, response)

	uc.Log.Info("itemUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, item.ID),
	)
	return &response, nil
}

func (uc *itemUsecase) Update(ctx context.Context, request *requests.UpdateItem) (*responses.Item, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("itemUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ID),
	)

	payload := &models.ItemPayload{
		Name:       request.Name,
		Status:     request.Status,
		Condition:  request.Condition,
		CategoryID: request.CategoryID,
		LocationID: request.LocationID,
		TagsCsv:    utils.JoinTags(request.Tags),
	}

	item, err := uc.InventoryClient.UpdateItem(ctx, request.ID, payload)
	if err != nil {
		uc.Log.Error("itemUsecase.Update error updating item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, request.ID),
			zap.Error(err),
		)
		return nil, err
	}

	response := item.ConvertIntoResponse()
	events.Emit(ctx, uc.EventPublisher, uc.Log, constvars.EventItemUpdated, response)

	uc.Log.Info("itemUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ID),
	)
	return &response, nil
}

func (uc *itemUsecase) Delete(ctx context.Context, itemID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("itemUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, itemID),
	)

	err := uc.InventoryClient.DeleteItem(ctx, itemID)
	if err != nil {
		uc.Log.Error("itemUsecase.Delete error deleting item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, itemID),
			zap.Error(err),
		)
		return err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, constvars.EventItemDeleted, map[string]int64{"itemId": itemID})

	uc.Log.Info("itemUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, itemID),
	)
	return nil
}

func (uc *itemUsecase) apiBaseURL() string {
	return fmt.Sprintf("%s/%s/%s", uc.InternalConfig.App.BaseUrl, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version)
}
