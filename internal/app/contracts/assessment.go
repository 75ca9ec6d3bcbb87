package contracts

import (
	"context"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	GetEQQuestions(ctx context.Context) *responses.EQQuestions
	ScoreEQ(ctx context.Context, request *requests.ScoreEQ) (*responses.EQResult, error)
}

type HealthUsecase interface {
	CalculateBMI(ctx context.Context, request *requests.CalculateBMI) (*responses.BMI, error)
}
