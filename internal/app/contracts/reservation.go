package contracts

import (
	"context"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"
)

type ReservationUsecase interface {
	FindAll(ctx context.Context, request *requests.ListReservations) ([]responses.Reservation, *responses.Pagination, error)
	Create(ctx context.Context, request *requests.CreateReservation) (*responses.Reservation, error)
	Cancel(ctx context.Context, reservationID int64) error
	Approve(ctx context.Context, reservationID int64) error
}
