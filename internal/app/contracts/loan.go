package contracts

import (
	"context"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"
)

type LoanUsecase interface {
	Issue(ctx context.Context, request *requests.IssueLoan) (responses.Loan, error)
	Return(ctx context.Context, request *requests.ReturnLoan) (responses.Loan, error)
}
