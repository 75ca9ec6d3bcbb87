package contracts

import (
	"context"
	"errors"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
)

// ErrQuotaExceeded marks an upstream or local budget running out. The
// diagnosis chain treats it as a signal to move on, not as a failure.
var ErrQuotaExceeded = errors.New("quota exceeded")

type DiagnosisProvider interface {
	Name() string
	Configured() bool
	// Complete returns the HTML answer for prompt, or ErrQuotaExceeded.
	Complete(ctx context.Context, prompt string) (string, error)
}

type DiagnosisUsecase interface {
	GetDiagnosis(ctx context.Context, request *requests.Diagnosis) (*responses.Diagnosis, error)
	TestAI(ctx context.Context) (*responses.AITest, error)
	GetCommonSymptoms(ctx context.Context) []string
	HasRemoteProvider() bool
}
