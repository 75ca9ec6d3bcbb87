// Package eqscore aggregates Likert answers of the emotional intelligence
// questionnaire into per-category and overall percentages.
package eqscore

import (
	"errors"
	"fmt"
	"math"
)

type Category string

const (
	SelfAwareness  Category = "Self-Awareness"
	SelfRegulation Category = "Self-Regulation"
	Motivation     Category = "Motivation"
	Empathy        Category = "Empathy"
	SocialSkills   Category = "Social Skills"
)

// Categories lists the five categories in reporting order.
var Categories = []Category{
	SelfAwareness,
	SelfRegulation,
	Motivation,
	Empathy,
	SocialSkills,
}

const (
	MinValue = 1
	MaxValue = 5
)

// Scale selects how a raw category mean is mapped onto 0-100.
type Scale int

const (
	// ScalePercentOfMax maps a mean m to m*20, so the lowest answer yields 20.
	ScalePercentOfMax Scale = iota
	// ScaleNormalized maps a mean m to (m-1)*25, so the lowest answer yields 0.
	ScaleNormalized
)

var (
	ErrNoAnswers          = errors.New("no answers provided")
	ErrValueOutOfRange    = errors.New("answer value out of range")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrCategoryUnanswered = errors.New("category has no answers")
)

type Answer struct {
	Category Category
	Value    int
}

type Result struct {
	Overall        int
	Categories     map[Category]int
	Interpretation string
}

func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Score computes the category percentages and the overall percentage.
// The overall value is derived from the unrounded category means.
func Score(answers []Answer, scale Scale) (*Result, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	sums := make(map[Category]int, len(Categories))
	counts := make(map[Category]int, len(Categories))
	for i, answer := range answers {
		if !IsValidCategory(answer.Category) {
			return nil, fmt.Errorf("answer %d: %w: %q", i, ErrUnknownCategory, answer.Category)
		}
		if answer.Value < MinValue || answer.Value > MaxValue {
			return nil, fmt.Errorf("answer %d: %w: %d", i, ErrValueOutOfRange, answer.Value)
		}
		sums[answer.Category] += answer.Value
		counts[answer.Category]++
	}

	result := &Result{Categories: make(map[Category]int, len(Categories))}
	var totalMean float64
	for _, category := range Categories {
		if counts[category] == 0 {
			return nil, fmt.Errorf("%w: %s", ErrCategoryUnanswered, category)
		}
		mean := float64(sums[category]) / float64(counts[category])
		result.Categories[category] = roundHalfAwayFromZero(toPercent(mean, scale))
		totalMean += mean
	}

	result.Overall = roundHalfAwayFromZero(toPercent(totalMean/float64(len(Categories)), scale))
	result.Interpretation = Interpret(result.Overall)
	return result, nil
}

// Interpret returns the four-tier description for an overall score.
func Interpret(overall int) string {
	switch {
	case overall >= 80:
		return "Excellent emotional intelligence! You have strong self-awareness and social skills."
	case overall >= 60:
		return "Good emotional intelligence with room for improvement in some areas."
	case overall >= 40:
		return "Average emotional intelligence. Consider developing your emotional skills further."
	default:
		return "There's significant room for improvement in emotional intelligence skills."
	}
}

func toPercent(mean float64, scale Scale) float64 {
	if scale == ScaleNormalized {
		return (mean - MinValue) * 25
	}
	return mean * 20
}

// roundHalfAwayFromZero absorbs float noise such as 69.99999999 before rounding.
func roundHalfAwayFromZero(x float64) int {
	return int(math.Round(math.Round(x*1e9) / 1e9))
}
