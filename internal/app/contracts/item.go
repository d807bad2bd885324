package contracts

import (
	"context"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"
)

type ItemUsecase interface {
	FindAll(ctx context.Context, request *requests.ListItems) ([]responses.Item, *responses.Pagination, error)
	FindByID(ctx context.Context, itemID int64) (*responses.ItemDetail, error)
	FindHistory(ctx context.Context, itemID int64) ([]responses.HistoryRow, error)
	Create(ctx context.Context, request *requests.CreateItem) (*responses.Item, error)
	Update(ctx context.Context, request *requests.UpdateItem) (*responses.Item, error)
	Delete(ctx context.Context, itemID int64) error
}

type CatalogUsecase interface {
	FindAllCategories(ctx context.Context) ([]responses.Category, error)
	CreateCategory(ctx context.Context, request *requests.CreateCategory) (*responses.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
	FindAllLocations(ctx context.Context) ([]responses.Location, error)
	CreateLocation(ctx context.Context, request *requests.CreateLocation) (*responses.Location, error)
	DeleteLocation(ctx context.Context, locationID int64) error
	RefreshCache(ctx context.Context) error
}
