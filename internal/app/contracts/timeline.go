package contracts

import (
	"context"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"
)

type TimelineUsecase interface {
	Build(ctx context.Context, request *requests.Timeline) (*responses.Timeline, error)
	RenderSVG(ctx context.Context, request *requests.Timeline) ([]byte, error)
	Export(ctx context.Context, request *requests.Timeline) (*responses.TimelineExport, error)
}
