package catalog

import (
	"context"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const cacheTTL = constvars.RedisCategoryCacheTTLHour * time.Hour

type catalogUsecase struct {
	InventoryClient contracts.InventoryClient
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

func NewCatalogUsecase(
	inventoryClient contracts.InventoryClient,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		catalogUsecaseInstance = &catalogUsecase{
			InventoryClient: inventoryClient,
			RedisRepository: redisRepository,
			Log:             logger,
		}
	})
	return catalogUsecaseInstance
}

func (uc *catalogUsecase) FindAllCategories(ctx context.Context) ([]responses.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.FindAllCategories called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var categories []models.Category
	if uc.readCache(ctx, constvars.RedisKeyCategoryList, &categories) {
		uc.Log.Info("catalogUsecase.FindAllCategories served from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	} else {
		fetched, err := uc.InventoryClient.ListCategories(ctx)
		if err != nil {
			uc.Log.Error("catalogUsecase.FindAllCategories error fetching categories from backend",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		categories = fetched
		uc.writeCache(ctx, constvars.RedisKeyCategoryList, categories)
	}

	response := make([]responses.Category, len(categories))
	for i, eachCategory := range categories {
		response[i] = eachCategory.ConvertIntoResponse()
	}

	uc.Log.Info("catalogUsecase.FindAllCategories succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *catalogUsecase) CreateCategory(ctx context.Context, request *requests.CreateCategory) (*responses.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.CreateCategory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	category, err := uc.InventoryClient.CreateCategory(ctx, request.Name)
	if err != nil {
		uc.Log.Error("catalogUsecase.CreateCategory error creating category",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateCache(ctx, constvars.RedisKeyCategoryList)

	response := category.ConvertIntoResponse()
	uc.Log.Info("catalogUsecase.CreateCategory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCategoryIDKey, category.ID),
	)
	return &response, nil
}

func (uc *catalogUsecase) DeleteCategory(ctx context.Context, categoryID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.DeleteCategory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCategoryIDKey, categoryID),
	)

	err := uc.InventoryClient.DeleteCategory(ctx, categoryID)
	if err != nil {
		uc.Log.Error("catalogUsecase.DeleteCategory error deleting category",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCategoryIDKey, categoryID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidateCache(ctx, constvars.RedisKeyCategoryList)

	uc.Log.Info("catalogUsecase.DeleteCategory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCategoryIDKey, categoryID),
	)
	return nil
}

func (uc *catalogUsecase) FindAllLocations(ctx context.Context) ([]responses.Location, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.FindAllLocations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var locations []models.Location
	if !uc.readCache(ctx, constvars.RedisKeyLocationList, &locations) {
		fetched, err := uc.InventoryClient.ListLocations(ctx)
		if err != nil {
			uc.Log.Error("catalogUsecase.FindAllLocations error fetching locations from backend",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		locations = fetched
		uc.writeCache(ctx, constvars.RedisKeyLocationList, locations)
	}

	response := make([]responses.Location, len(locations))
	for i, eachLocation := range locations {
		response[i] = eachLocation.ConvertIntoResponse()
	}

	uc.Log.Info("catalogUsecase.FindAllLocations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *catalogUsecase) CreateLocation(ctx context.Context, request *requests.CreateLocation) (*responses.Location, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.CreateLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	location, err := uc.InventoryClient.CreateLocation(ctx, request.Name)
	if err != nil {
		uc.Log.Error("catalogUsecase.CreateLocation error creating location",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateCache(ctx, constvars.RedisKeyLocationList)

	response := location.ConvertIntoResponse()
	uc.Log.Info("catalogUsecase.CreateLocation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLocationIDKey, location.ID),
	)
	return &response, nil
}

func (uc *catalogUsecase) DeleteLocation(ctx context.Context, locationID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.DeleteLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLocationIDKey, locationID),
	)

	err := uc.InventoryClient.DeleteLocation(ctx, locationID)
	if err != nil {
		uc.Log.Error("catalogUsecase.DeleteLocation error deleting location",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLocationIDKey, locationID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidateCache(ctx, constvars.RedisKeyLocationList)

	uc.Log.Info("catalogUsecase.DeleteLocation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLocationIDKey, locationID),
	)
	return nil
}

// readCache reports whether key held a decodable value. Redis trouble only
// costs a backend round trip.
func (uc *catalogUsecase) readCache(ctx context.Context, key string, out interface{}) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("catalogUsecase error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	if cached == "" {
		return false
	}

	err = json.Unmarshal([]byte(cached), out)
	if err != nil {
		uc.Log.Warn("catalogUsecase error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (uc *catalogUsecase) writeCache(ctx context.Context, key string, value interface{}) {
	err := uc.RedisRepository.Set(ctx, key, value, cacheTTL)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("catalogUsecase error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (uc *catalogUsecase) invalidateCache(ctx context.Context, key string) {
	err := uc.RedisRepository.Delete(ctx, key)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("catalogUsecase error invalidating Redis cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// RefreshCache reloads categories and locations from the backend into Redis.
// A failed list leaves its cache entry untouched.
func (uc *catalogUsecase) RefreshCache(ctx context.Context) error {
	categories, err := uc.InventoryClient.ListCategories(ctx)
	if err != nil {
		uc.Log.Warn("catalogUsecase.RefreshCache error fetching categories", zap.Error(err))
		return err
	}
	uc.writeCache(ctx, constvars.RedisKeyCategoryList, categories)

	locations, err := uc.InventoryClient.ListLocations(ctx)
	if err != nil {
		uc.Log.Warn("catalogUsecase.RefreshCache error fetching locations", zap.Error(err))
		return err
	}
	uc.writeCache(ctx, constvars.RedisKeyLocationList, locations)

	uc.Log.Info("catalogUsecase.RefreshCache succeeded",
		zap.Int("categories", len(categories)),
		zap.Int("locations", len(locations)),
	)
	return nil
}
