package llm

import (
	"context"
	"errors"
	"fmt"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ContentGenerator is satisfied by (*genai.Client).Models.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiProvider struct {
	generator ContentGenerator
	model     string
	limiter   *rate.Limiter
	Log       *zap.Logger
}

// NewGeminiProvider wraps a genai client. A nil client gives an unconfigured
// provider that the diagnosis chain skips.
func NewGeminiProvider(client *genai.Client, model string, limiter *rate.Limiter, logger *zap.Logger) contracts.DiagnosisProvider {
	provider := &geminiProvider{model: model, limiter: limiter, Log: logger}
	if client != nil {
		provider.generator = client.Models
	}
	return provider
}

func NewGeminiProviderWithGenerator(generator ContentGenerator, model string, limiter *rate.Limiter, logger *zap.Logger) contracts.DiagnosisProvider {
	return &geminiProvider{generator: generator, model: model, limiter: limiter, Log: logger}
}

func (p *geminiProvider) Name() string {
	return constvars.DiagnosisSourceGemini
}

func (p *geminiProvider) Configured() bool {
	return p.generator != nil
}

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("geminiProvider.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if p.limiter != nil && !p.limiter.Allow() {
		p.Log.Warn("geminiProvider.Complete outbound budget exhausted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return "", contracts.ErrQuotaExceeded
	}

	resp, err := p.generator.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		if isGeminiQuotaError(err) {
			p.Log.Warn("geminiProvider.Complete quota exceeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return "", contracts.ErrQuotaExceeded
		}
		p.Log.Error("geminiProvider.Complete error calling GenerateContent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf(constvars.ErrDevDiagnosisEmptyCompletion, p.Name())
	}

	p.Log.Info("geminiProvider.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return text, nil
}

func isGeminiQuotaError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || isQuotaMessage(apiErr.Status) || isQuotaMessage(apiErr.Message)
	}
	return isQuotaMessage(err.Error())
}
