package diagnosis

import (
	"context"
	"errors"
	"fmt"
	"halo-service/internal/app/config"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/services/shared/ratelimiter"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type cachedDiagnosis struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}

type diagnosisUsecase struct {
	Providers       []contracts.DiagnosisProvider
	LocalGenerator  *LocalGenerator
	RedisRepository contracts.RedisRepository
	ResourceLimiter *ratelimiter.ResourceLimiter
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

// NewDiagnosisUsecase builds the provider chain. Providers are tried in the
// given order; the local generator always closes the chain.
func NewDiagnosisUsecase(
	providers []contracts.DiagnosisProvider,
	localGenerator *LocalGenerator,
	redisRepository contracts.RedisRepository,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DiagnosisUsecase {
	return &diagnosisUsecase{
		Providers:       providers,
		LocalGenerator:  localGenerator,
		RedisRepository: redisRepository,
		ResourceLimiter: resourceLimiter,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *diagnosisUsecase) GetDiagnosis(ctx context.Context, request *requests.Diagnosis) (*responses.Diagnosis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	symptoms := strings.TrimSpace(request.Symptoms)
	if symptoms == "" {
		return nil, exceptions.ErrNoSymptomsProvided(nil)
	}
	language := utils.NormalizeLanguage(request.Language)

	uc.Log.Info("diagnosisUsecase.GetDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, language),
	)

	cacheKey := fmt.Sprintf(constvars.RedisKeyDiagnosisFormat, utils.DiagnosisCacheKey(symptoms, language))
	if cached := uc.readCache(ctx, cacheKey); cached != nil {
		uc.Log.Info("diagnosisUsecase.GetDiagnosis served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool(constvars.LoggingCacheHitKey, true),
		)
		return &responses.Diagnosis{
			Response: cached.Response,
			Source:   constvars.DiagnosisSourceCache,
			Cached:   true,
		}, nil
	}

	var (
		attempted      int
		quotaHits      int
		retryAfterSecs int
		lastErr        error
	)

	allowed, retryAfterSecs := uc.allowRemote(ctx, request.ClientKey)
	if allowed {
		prompt := buildPrompt(symptoms, language)
		for _, provider := range uc.Providers {
			if !provider.Configured() {
				continue
			}
			attempted++

			text, err := provider.Complete(ctx, prompt)
			if err == nil {
				uc.writeCache(ctx, cacheKey, &cachedDiagnosis{Response: text, Source: provider.Name()})
				uc.Log.Info("diagnosisUsecase.GetDiagnosis succeeded",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSourceKey, provider.Name()),
					zap.Bool(constvars.LoggingQuotaExceededKey, quotaHits > 0),
				)
				return &responses.Diagnosis{
					Response:      text,
					Source:        provider.Name(),
					QuotaExceeded: quotaHits > 0,
				}, nil
			}

			if errors.Is(err, contracts.ErrQuotaExceeded) {
				quotaHits++
				uc.Log.Warn("diagnosisUsecase.GetDiagnosis provider quota exceeded, trying next",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingProviderKey, provider.Name()),
				)
				continue
			}

			lastErr = err
			uc.Log.Error("diagnosisUsecase.GetDiagnosis provider failed, trying next",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingProviderKey, provider.Name()),
				zap.Error(err),
			)
		}
	} else {
		uc.Log.Warn("diagnosisUsecase.GetDiagnosis client quota exceeded, skipping remote providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingRetryAfterSecsKey, retryAfterSecs),
		)
	}

	quotaExceeded := !allowed || quotaHits > 0

	if !uc.InternalConfig.Diagnosis.LocalFallbackEnabled {
		if !allowed || (attempted > 0 && quotaHits == attempted) {
			return nil, exceptions.ErrDiagnosisQuotaExceeded(contracts.ErrQuotaExceeded).WithRetryAfter(retryAfterSecs)
		}
		return nil, exceptions.ErrDiagnosisFailed(lastErr)
	}

	html, err := uc.LocalGenerator.Generate(symptoms)
	if err != nil {
		uc.Log.Error("diagnosisUsecase.GetDiagnosis error rendering local report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDiagnosisFailed(err)
	}

	uc.Log.Info("diagnosisUsecase.GetDiagnosis served by local generator",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingQuotaExceededKey, quotaExceeded),
	)
	return &responses.Diagnosis{
		Response:      html,
		Source:        constvars.DiagnosisSourceLocal,
		QuotaExceeded: quotaExceeded,
	}, nil
}

func (uc *diagnosisUsecase) TestAI(ctx context.Context) (*responses.AITest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("diagnosisUsecase.TestAI called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	for _, provider := range uc.Providers {
		if !provider.Configured() {
			continue
		}
		text, err := provider.Complete(ctx, constvars.AITestPrompt)
		if err != nil {
			uc.Log.Error("diagnosisUsecase.TestAI provider failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingProviderKey, provider.Name()),
				zap.Error(err),
			)
			return nil, exceptions.ErrAITestFailed(err)
		}
		return &responses.AITest{Message: text, Provider: provider.Name()}, nil
	}

	return nil, exceptions.ErrAITestFailed(errors.New(constvars.ErrDevAIProviderNotConfigured))
}

func (uc *diagnosisUsecase) GetCommonSymptoms(ctx context.Context) []string {
	symptoms := make([]string, len(constvars.CommonSymptoms))
	copy(symptoms, constvars.CommonSymptoms)
	return symptoms
}

func (uc *diagnosisUsecase) HasRemoteProvider() bool {
	for _, provider := range uc.Providers {
		if provider.Configured() {
			return true
		}
	}
	return false
}

// allowRemote applies the per-client quota. Limiter failures let the request
// through so a Redis outage does not block diagnosis.
func (uc *diagnosisUsecase) allowRemote(ctx context.Context, clientKey string) (bool, int) {
	if uc.ResourceLimiter == nil || clientKey == "" {
		return true, 0
	}

	out, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      clientKey,
		LimiterGroupName:  constvars.LimiterGroupDiagnosis,
		WindowDurationSec: uc.InternalConfig.Diagnosis.QuotaWindowInSeconds,
		MaxQuota:          uc.InternalConfig.Diagnosis.QuotaPerWindow,
	})
	if err != nil {
		return true, 0
	}
	return out.Allowed, out.RetryAfterSecs
}

func (uc *diagnosisUsecase) readCache(ctx context.Context, key string) *cachedDiagnosis {
	if uc.RedisRepository == nil || uc.InternalConfig.Diagnosis.CacheTTLInMinutes <= 0 {
		return nil
	}

	data, err := uc.RedisRepository.Get(ctx, key)
	if err != nil || data == "" {
		return nil
	}

	cached := new(cachedDiagnosis)
	if err := json.Unmarshal([]byte(data), cached); err != nil || cached.Response == "" {
		return nil
	}
	return cached
}

func (uc *diagnosisUsecase) writeCache(ctx context.Context, key string, value *cachedDiagnosis) {
	if uc.RedisRepository == nil || uc.InternalConfig.Diagnosis.CacheTTLInMinutes <= 0 {
		return
	}

	ttl := time.Duration(uc.InternalConfig.Diagnosis.CacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, key, value, ttl); err != nil {
		uc.Log.Warn("diagnosisUsecase.writeCache failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

func buildPrompt(symptoms, language string) string {
	prompt := fmt.Sprintf(constvars.DiagnosisPromptFormat, symptoms)
	if language != constvars.LanguageEnglish {
		prompt += fmt.Sprintf(constvars.DiagnosisLanguageInstructionFormat, utils.LanguageName(language))
	}
	return prompt
}
