package dto

import "time"

// AttemptSubmitRequest maps question ids to the option index the student
// selected. Values arrive as raw JSON values on purpose: a missing or
// non-numeric entry is normalized to "unanswered" instead of rejected.
type AttemptSubmitRequest struct {
	Answers map[string]any `json:"answers"`
}

// QuestionResultDTO joins one answer outcome with the question it belongs to,
// so the client can render the review screen without a second request.
type QuestionResultDTO struct {
	QuestionID    string   `json:"questionId"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	SelectedIndex int      `json:"selectedIndex"`
	CorrectIndex  int      `json:"correctIndex"`
	IsCorrect     bool     `json:"isCorrect"`
}

// SubmitResultDTO is returned to the student right after a submission.
type SubmitResultDTO struct {
	ActivityID      uint                `json:"activityId"`
	CorrectAnswers  int                 `json:"correctAnswers"`
	TotalQuestions  int                 `json:"totalQuestions"`
	Score           float64             `json:"score"`
	QuestionResults []QuestionResultDTO `json:"questionResults"`
}

// AnswerDetailDTO mirrors the stored per-question outcome of an attempt.
type AnswerDetailDTO struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex int    `json:"selectedIndex"`
	CorrectIndex  int    `json:"correctIndex"`
	IsCorrect     bool   `json:"isCorrect"`
	Difficulty    string `json:"difficulty"`
}

// HistoryEntryDTO is one past attempt in a student's history, newest first.
type HistoryEntryDTO struct {
	AttemptID      string            `json:"attemptId"`
	ActivityID     uint              `json:"activityId"`
	ActivityTitle  string            `json:"activityTitle"`
	SubmittedAt    time.Time         `json:"submittedAt"`
	CorrectAnswers int               `json:"correctAnswers"`
	TotalQuestions int               `json:"totalQuestions"`
	Score          float64           `json:"score"`
	Detail         []AnswerDetailDTO `json:"detail"`
}

type StudentHistoryDTO struct {
	Attempts []HistoryEntryDTO `json:"attempts"`
}
