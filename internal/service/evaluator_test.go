package service

import (
	"testing"

	"github.com/classroomquiz/backend/internal/model"
)

func threeQuestionQuiz() model.Quiz {
	return model.Quiz{
		Topic:      "Photosynthesis",
		Difficulty: model.DifficultyMedium,
		GradeLevel: "grade_8",
		Questions: []model.Question{
			{ID: "q1", Text: "first", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Difficulty: model.DifficultyEasy},
			{ID: "q2", Text: "second", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Difficulty: model.DifficultyMedium},
			{ID: "q3", Text: "third", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Difficulty: model.DifficultyHard},
		},
	}
}

func TestEvaluateAttempt_ScoresAgainstCorrectIndexes(t *testing.T) {
	quiz := threeQuestionQuiz()

	result := EvaluateAttempt(quiz, map[string]any{"q1": float64(0), "q2": float64(1), "q3": float64(0)})

	if result.Total != 3 {
		t.Fatalf("expected total 3, got %d", result.Total)
	}
	if result.CorrectCount != 2 {
		t.Fatalf("expected 2 correct, got %d", result.CorrectCount)
	}
	if result.Detail[2].IsCorrect {
		t.Error("expected q3 to be incorrect")
	}
	if result.Detail[2].SelectedIndex != 0 {
		t.Errorf("expected q3 selectedIndex 0, got %d", result.Detail[2].SelectedIndex)
	}
}

func TestEvaluateAttempt_MissingAnswerCountsAsUnanswered(t *testing.T) {
	quiz := threeQuestionQuiz()

	result := EvaluateAttempt(quiz, map[string]any{"q1": float64(0), "q3": float64(2)})

	if result.CorrectCount != 2 {
		t.Fatalf("expected 2 correct, got %d", result.CorrectCount)
	}
	d := result.Detail[1]
	if d.QuestionID != "q2" {
		t.Fatalf("expected detail[1] for q2, got %s", d.QuestionID)
	}
	if d.SelectedIndex != -1 {
		t.Errorf("expected selectedIndex -1 for missing answer, got %d", d.SelectedIndex)
	}
	if d.IsCorrect {
		t.Error("missing answer must be incorrect")
	}
}

func TestEvaluateAttempt_DetailPreservesQuestionOrder(t *testing.T) {
	quiz := threeQuestionQuiz()

	result := EvaluateAttempt(quiz, map[string]any{"q3": float64(2), "q1": float64(0)})

	want := []string{"q1", "q2", "q3"}
	for i, id := range want {
		if result.Detail[i].QuestionID != id {
			t.Errorf("detail[%d]: expected %s, got %s", i, id, result.Detail[i].QuestionID)
		}
	}
}

func TestNormalizeAnswerIndex(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"nil", nil, -1},
		{"string", "2", -1},
		{"bool", true, -1},
		{"fractional float", 1.5, -1},
		{"integral float", float64(2), 2},
		{"int", 3, 3},
		{"negative", float64(-1), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeAnswerIndex(tc.in); got != tc.want {
				t.Errorf("normalizeAnswerIndex(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestPercentScore_RoundsToOneDecimal(t *testing.T) {
	cases := []struct {
		correct, total int
		want           float64
	}{
		{1, 3, 33.3},
		{2, 3, 66.7},
		{3, 3, 100},
		{0, 3, 0},
		{0, 0, 0},
		{1, 2, 50},
	}
	for _, tc := range cases {
		if got := percentScore(tc.correct, tc.total); got != tc.want {
			t.Errorf("percentScore(%d, %d) = %v, want %v", tc.correct, tc.total, got, tc.want)
		}
	}
}
