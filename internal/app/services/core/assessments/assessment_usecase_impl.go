package assessments

import (
	"context"
	"errors"
	"fmt"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
	"halo-service/internal/pkg/eqscore"
	"halo-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

const (
	scalePercent    = "percent"
	scaleNormalized = "normalized"
)

type assessmentUsecase struct {
	Log *zap.Logger
}

func NewAssessmentUsecase(logger *zap.Logger) contracts.AssessmentUsecase {
	return &assessmentUsecase{Log: logger}
}

func (uc *assessmentUsecase) GetEQQuestions(ctx context.Context) *responses.EQQuestions {
	return &responses.EQQuestions{
		Questions:  eqscore.StandardQuestions(),
		Scale:      eqscore.ScaleOptions(),
		Categories: eqscore.CategoryDescriptions(),
		Scoring: responses.EQScoring{
			Default: scalePercent,
			Options: []responses.EQScoringOption{
				{Name: scalePercent, Description: constvars.EQScalePercentDescription, MinScore: 20, MaxScore: 100},
				{Name: scaleNormalized, Description: constvars.EQScaleNormalizedDescription, MinScore: 0, MaxScore: 100},
			},
		},
	}
}

func (uc *assessmentUsecase) ScoreEQ(ctx context.Context, request *requests.ScoreEQ) (*responses.EQResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.ScoreEQ called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(request.Answers)),
	)

	scaleName, scale, err := parseScale(request.Scale)
	if err != nil {
		return nil, err
	}

	answers := make([]eqscore.Answer, 0, len(request.Answers))
	seen := make(map[int]bool, len(request.Answers))
	for _, answer := range request.Answers {
		if seen[answer.QuestionID] {
			return nil, exceptions.ErrClientCustomMessage(fmt.Errorf(constvars.ErrClientDuplicateAnswer, answer.QuestionID))
		}
		seen[answer.QuestionID] = true

		question, ok := eqscore.QuestionByID(answer.QuestionID)
		if !ok {
			return nil, exceptions.ErrClientCustomMessage(fmt.Errorf(constvars.ErrClientUnknownQuestion, answer.QuestionID))
		}
		if answer.Category != "" && eqscore.Category(answer.Category) != question.Category {
			return nil, exceptions.ErrClientCustomMessage(fmt.Errorf(constvars.ErrClientCategoryMismatch, answer.QuestionID, question.Category))
		}

		answers = append(answers, eqscore.Answer{Category: question.Category, Value: answer.Value})
	}

	result, err := eqscore.Score(answers, scale)
	if err != nil {
		uc.Log.Warn("assessmentUsecase.ScoreEQ rejected answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrClientCustomMessage(err)
	}

	categories := make(map[string]int, len(result.Categories))
	for category, score := range result.Categories {
		categories[string(category)] = score
	}

	uc.Log.Info("assessmentUsecase.ScoreEQ succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOverallScoreKey, result.Overall),
	)
	return &responses.EQResult{
		Overall:        result.Overall,
		Categories:     categories,
		Interpretation: result.Interpretation,
		Scale:          scaleName,
	}, nil
}

func parseScale(name string) (string, eqscore.Scale, error) {
	switch name {
	case "", scalePercent:
		return scalePercent, eqscore.ScalePercentOfMax, nil
	case scaleNormalized:
		return scaleNormalized, eqscore.ScaleNormalized, nil
	default:
		return "", 0, exceptions.ErrClientCustomMessage(errors.New(constvars.ErrClientInvalidScale))
	}
}
