package dto

import "time"

// QuestionDTO is used when a teacher publishes an activity. It carries the
// correct answer, so it never appears in student-facing responses.
type QuestionDTO struct {
	ID           string   `json:"id" binding:"required"`
	Text         string   `json:"text" binding:"required"`
	Options      []string `json:"options" binding:"required,min=2"`
	CorrectIndex int      `json:"correctIndex"`
	Difficulty   string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

// QuizPreviewRequest asks for a generated question pack without publishing it.
type QuizPreviewRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	GradeLevel string `json:"gradeLevel"`
}

// ActivityPublishRequest publishes a quiz with its final set of questions,
// usually the (possibly edited) output of a preview.
type ActivityPublishRequest struct {
	Topic      string        `json:"topic" binding:"required"`
	Difficulty string        `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	GradeLevel string        `json:"gradeLevel"`
	Questions  []QuestionDTO `json:"questions" binding:"required,dive"`
}

// QuizPreviewDTO is the teacher-facing generated pack, correct answers included.
type QuizPreviewDTO struct {
	Topic      string        `json:"topic"`
	Difficulty string        `json:"difficulty"`
	GradeLevel string        `json:"gradeLevel"`
	Version    string        `json:"version"`
	Questions  []QuestionDTO `json:"questions"`
}

// PublicQuestionDTO is the student-facing view of a question: the correct
// index is stripped.
type PublicQuestionDTO struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
}

type PublicQuizDTO struct {
	Topic      string              `json:"topic"`
	Difficulty string              `json:"difficulty"`
	GradeLevel string              `json:"gradeLevel"`
	Questions  []PublicQuestionDTO `json:"questions"`
}

// ActivityDTO is the sanitized activity returned by both the teacher list and
// the public list.
type ActivityDTO struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	OwnerID   uint          `json:"owner_id"`
	CreatedAt time.Time     `json:"created_at"`
	Quiz      PublicQuizDTO `json:"quiz"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
