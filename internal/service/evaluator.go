package service

import (
	"math"

	"github.com/classroomquiz/backend/internal/model"
)

// EvaluationResult is the scored outcome of one submission. Detail preserves
// the activity's question order.
type EvaluationResult struct {
	CorrectCount int
	Total        int
	Detail       []model.AnswerDetail
}

// EvaluateAttempt scores a set of submitted answers against a quiz. It is a
// pure function: a missing or non-numeric answer is normalized to
// selectedIndex -1 and counted incorrect, it never fails.
func EvaluateAttempt(quiz model.Quiz, answers map[string]any) EvaluationResult {
	result := EvaluationResult{
		Total:  len(quiz.Questions),
		Detail: make([]model.AnswerDetail, 0, len(quiz.Questions)),
	}

	for _, q := range quiz.Questions {
		selected := normalizeAnswerIndex(answers[q.ID])
		isCorrect := selected == q.CorrectIndex
		if isCorrect {
			result.CorrectCount++
		}
		result.Detail = append(result.Detail, model.AnswerDetail{
			QuestionID:    q.ID,
			SelectedIndex: selected,
			CorrectIndex:  q.CorrectIndex,
			IsCorrect:     isCorrect,
			Difficulty:    q.Difficulty,
		})
	}
	return result
}

// normalizeAnswerIndex coerces a raw JSON value to an option index. Anything
// that is not an exact integer comes back as -1.
func normalizeAnswerIndex(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n != math.Trunc(n) {
			return -1
		}
		return int(n)
	default:
		return -1
	}
}

// percentScore is the 0-100 accuracy for a correct/total pair, rounded to one
// decimal place. Zero totals score zero rather than dividing.
func percentScore(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}
