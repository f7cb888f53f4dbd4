package model

import "time"

// AnswerDetail records the outcome of one question inside an attempt.
// SelectedIndex is -1 when the student skipped the question or submitted a
// value that is not a valid option index.
type AnswerDetail struct {
	QuestionID    string     `json:"questionId"`
	SelectedIndex int        `json:"selectedIndex"`
	CorrectIndex  int        `json:"correctIndex"`
	IsCorrect     bool       `json:"isCorrect"`
	Difficulty    Difficulty `json:"difficulty"`
}

// Attempt is one student's single submission of answers to one activity.
// Attempts are append-only: repeated submissions by the same student create
// new attempts, never overwrite.
type Attempt struct {
	AttemptID    string         `json:"attemptId"`
	ActivityID   uint           `json:"activityId"`
	StudentID    uint           `json:"studentId"`
	StudentName  string         `json:"studentName"`
	StudentEmail string         `json:"studentEmail"`
	CorrectCount int            `json:"correctCount"`
	Total        int            `json:"total"`
	Detail       []AnswerDetail `json:"detail"`
	SubmittedAt  time.Time      `json:"submittedAt"`
}
