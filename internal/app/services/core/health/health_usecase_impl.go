package health

import (
	"context"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/bmi"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
	"halo-service/internal/pkg/exceptions"
	"strings"

	"go.uber.org/zap"
)

type healthUsecase struct {
	Log *zap.Logger
}

func NewHealthUsecase(logger *zap.Logger) contracts.HealthUsecase {
	return &healthUsecase{Log: logger}
}

func (uc *healthUsecase) CalculateBMI(ctx context.Context, request *requests.CalculateBMI) (*responses.BMI, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	height, err := bmi.ParseHeightWithUnit(request.Height, request.HeightUnit)
	if err != nil {
		return nil, exceptions.ErrInvalidBMIInput(err)
	}
	meters, err := height.Meters()
	if err != nil {
		return nil, exceptions.ErrInvalidBMIInput(err)
	}
	weight, err := bmi.ParseMagnitude(request.Weight)
	if err != nil {
		return nil, exceptions.ErrInvalidBMIInput(err)
	}
	value, err := bmi.Calculate(height, weight)
	if err != nil {
		return nil, exceptions.ErrInvalidBMIInput(err)
	}

	rounded := bmi.Round(value)
	uc.Log.Info("healthUsecase.CalculateBMI succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64(constvars.LoggingBMIKey, rounded),
	)
	return &responses.BMI{
		BMI:          bmi.Format(value),
		Value:        rounded,
		Category:     bmi.Category(rounded),
		HeightMeters: meters,
		HeightUnit:   strings.ToLower(string(height.Unit)),
	}, nil
}
