package llm

import (
	"bytes"
	"context"
	"fmt"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const completionUpstream = "completion"

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string              `json:"model,omitempty"`
	Messages []completionMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

type completionProvider struct {
	BaseUrl    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewCompletionProvider talks to an OpenAI-compatible chat completions API.
func NewCompletionProvider(baseUrl, apiKey, model string, timeout time.Duration, limiter *rate.Limiter, logger *zap.Logger) contracts.DiagnosisProvider {
	return &completionProvider{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		Log:        logger,
	}
}

func (c *completionProvider) Name() string {
	return constvars.DiagnosisSourceCompletion
}

func (c *completionProvider) Configured() bool {
	return c.BaseUrl != ""
}

func (c *completionProvider) Complete(ctx context.Context, prompt string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("completionProvider.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if c.limiter != nil && !c.limiter.Allow() {
		return "", contracts.ErrQuotaExceeded
	}

	requestJSON, err := json.Marshal(completionRequest{
		Model:    c.Model,
		Messages: []completionMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("completionProvider.Complete error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.APIKey != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("completionProvider.Complete error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", exceptions.ErrDecodeUpstreamResponse(err, completionUpstream)
	}

	if resp.StatusCode == http.StatusTooManyRequests || isQuotaMessage(string(bodyBytes)) {
		c.Log.Warn("completionProvider.Complete quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", contracts.ErrQuotaExceeded
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%s", strings.TrimSpace(string(bodyBytes)))
		c.Log.Error("completionProvider.Complete unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", exceptions.ErrUpstreamStatus(err, completionUpstream, resp.StatusCode)
	}

	var completion completionResponse
	if err := json.Unmarshal(bodyBytes, &completion); err != nil {
		return "", exceptions.ErrDecodeUpstreamResponse(err, completionUpstream)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf(constvars.ErrDevDiagnosisEmptyCompletion, c.Name())
	}

	c.Log.Info("completionProvider.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
