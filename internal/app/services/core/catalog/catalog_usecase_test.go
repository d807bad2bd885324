package catalog

import (
	"context"
	"errors"
	"invrent-service/internal/app/contracts/mocks"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCatalogUsecase() (*catalogUsecase, *mocks.InventoryClient, *mocks.RedisRepository) {
	client := new(mocks.InventoryClient)
	redis := new(mocks.RedisRepository)
	return &catalogUsecase{InventoryClient: client, RedisRepository: redis, Log: zap.NewNop()}, client, redis
}

func TestCatalogUsecase_FindAllCategories(t *testing.T) {
	t.Run("cache hit skips backend", func(t *testing.T) {
		uc, client, redis := setupCatalogUsecase()
		redis.On("Get", mock.Anything, constvars.RedisKeyCategoryList).Return(`[{"id":1,"name":"Tools"}]`, nil)

		categories, err := uc.FindAllCategories(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Tools", categories[0].Name)
		client.AssertNotCalled(t, "ListCategories", mock.Anything)
	})

	t.Run("cache miss fetches and stores", func(t *testing.T) {
		uc, client, redis := setupCatalogUsecase()
		fetched := []models.Category{{ID: 2, Name: "Ladders"}}
		redis.On("Get", mock.Anything, constvars.RedisKeyCategoryList).Return("", nil)
		redis.On("Set", mock.Anything, constvars.RedisKeyCategoryList, fetched, cacheTTL).Return(nil)
		client.On("ListCategories", mock.Anything).Return(fetched, nil)

		categories, err := uc.FindAllCategories(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), categories[0].ID)
		redis.AssertExpectations(t)
	})

	t.Run("redis failure falls back to backend", func(t *testing.T) {
		uc, client, redis := setupCatalogUsecase()
		redis.On("Get", mock.Anything, mock.Anything).Return("", errors.New("conn refused"))
		redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("conn refused"))
		client.On("ListCategories", mock.Anything).Return([]models.Category{}, nil)

		categories, err := uc.FindAllCategories(context.Background())
		require.NoError(t, err)
		assert.Empty(t, categories)
	})

	t.Run("backend failure is returned", func(t *testing.T) {
		uc, client, redis := setupCatalogUsecase()
		redis.On("Get", mock.Anything, mock.Anything).Return("", nil)
		client.On("ListCategories", mock.Anything).Return(nil, errors.New("down"))

		_, err := uc.FindAllCategories(context.Background())
		assert.Error(t, err)
	})
}

func TestCatalogUsecase_MutationsInvalidateCache(t *testing.T) {
	uc, client, redis := setupCatalogUsecase()
	client.On("CreateCategory", mock.Anything, "Garden").Return(&models.Category{ID: 5, Name: "Garden"}, nil)
	client.On("DeleteCategory", mock.Anything, int64(5)).Return(nil)
	client.On("CreateLocation", mock.Anything, "Shed").Return(&models.Location{ID: 8, Name: "Shed"}, nil)
	client.On("DeleteLocation", mock.Anything, int64(8)).Return(nil)
	redis.On("Delete", mock.Anything, constvars.RedisKeyCategoryList).Return(nil).Twice()
	redis.On("Delete", mock.Anything, constvars.RedisKeyLocationList).Return(nil).Twice()

	category, err := uc.CreateCategory(context.Background(), &requests.CreateCategory{Name: "Garden"})
	require.NoError(t, err)
	assert.Equal(t, "Garden", category.Name)
	require.NoError(t, uc.DeleteCategory(context.Background(), 5))

	location, err := uc.CreateLocation(context.Background(), &requests.CreateLocation{Name: "Shed"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), location.ID)
	require.NoError(t, uc.DeleteLocation(context.Background(), 8))

	redis.AssertExpectations(t)
}

func TestCatalogUsecase_FindAllLocations(t *testing.T) {
	uc, client, redis := setupCatalogUsecase()
	redis.On("Get", mock.Anything, constvars.RedisKeyLocationList).Return("not json", nil)
	redis.On("Set", mock.Anything, constvars.RedisKeyLocationList, mock.Anything, cacheTTL).Return(nil)
	client.On("ListLocations", mock.Anything).Return([]models.Location{{ID: 1, Name: "Basement"}}, nil)

	locations, err := uc.FindAllLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Basement", locations[0].Name)
}

func TestCatalogUsecase_RefreshCache(t *testing.T) {
	t.Run("writes both lists", func(t *testing.T) {
		uc, client, redis := setupCatalogUsecase()
		categories := []models.Category{{ID: 1, Name: "Tools"}}
		locations := []models.Location{{ID: 4, Name: "Shed"}}
		client.On("ListCategories", mock.Anything).Return(categories, nil)
		client.On("ListLocations", mock.Anything).Return(locations, nil)
		redis.On("Set", mock.Anything, constvars.RedisKeyCategoryList, categories, cacheTTL).Return(nil)
		redis.On("Set", mock.Anything, constvars.RedisKeyLocationList, locations, cacheTTL).Return(nil)

		require.NoError(t, uc.RefreshCache(context.Background()))
		redis.AssertExpectations(t)
	})

	t.Run("category failure leaves cache alone", func(t *testing.T) {
		uc, client, redis := setupCatalogUsecase()
		client.On("ListCategories", mock.Anything).Return(nil, errors.New("down"))

		assert.Error(t, uc.RefreshCache(context.Background()))
		redis.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		client.AssertNotCalled(t, "ListLocations", mock.Anything)
	})
}
