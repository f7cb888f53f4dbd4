package service

import (
	"time"

	"github.com/classroomquiz/backend/internal/dto"
	"github.com/classroomquiz/backend/internal/model"
	"github.com/classroomquiz/backend/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// StudentIdentity is the authenticated student a submission is recorded for.
type StudentIdentity struct {
	ID    uint
	Name  string
	Email string
}

// DisplayName falls back to the email when the account has no name.
func (s StudentIdentity) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}

type SubmissionService interface {
	Submit(activityID uint, student StudentIdentity, answers map[string]any) (*dto.SubmitResultDTO, error)
}

type submissionService struct {
	activities store.ActivityStore
	attempts   store.AttemptStore
}

func NewSubmissionService(activities store.ActivityStore, attempts store.AttemptStore) SubmissionService {
	return &submissionService{activities: activities, attempts: attempts}
}

// Submit evaluates the answers against the activity's quiz and records a new
// attempt. Every submission appends; retries never overwrite earlier attempts.
func (s *submissionService) Submit(activityID uint, student StudentIdentity, answers map[string]any) (*dto.SubmitResultDTO, error) {
	activity, ok := s.activities.Get(activityID)
	if !ok {
		return nil, ErrActivityNotFound
	}
	if len(activity.Quiz.Questions) == 0 {
		return nil, validationErr("activity has no multiple-choice questions")
	}

	result := EvaluateAttempt(activity.Quiz, answers)

	attempt := model.Attempt{
		AttemptID:    uuid.NewString(),
		ActivityID:   activityID,
		StudentID:    student.ID,
		StudentName:  student.DisplayName(),
		StudentEmail: student.Email,
		CorrectCount: result.CorrectCount,
		Total:        result.Total,
		Detail:       result.Detail,
		SubmittedAt:  time.Now(),
	}
	s.attempts.Append(attempt)

	log.Info().
		Uint("activityID", activityID).
		Uint("studentID", student.ID).
		Int("correct", result.CorrectCount).
		Int("total", result.Total).
		Msg("Attempt recorded")

	resp := dto.SubmitResultDTO{
		ActivityID:     activityID,
		CorrectAnswers: result.CorrectCount,
		TotalQuestions: result.Total,
		Score:          percentScore(result.CorrectCount, result.Total),
	}
	for i, q := range activity.Quiz.Questions {
		d := result.Detail[i]
		resp.QuestionResults = append(resp.QuestionResults, dto.QuestionResultDTO{
			QuestionID:    q.ID,
			Text:          q.Text,
			Options:       q.Options,
			SelectedIndex: d.SelectedIndex,
			CorrectIndex:  d.CorrectIndex,
			IsCorrect:     d.IsCorrect,
		})
	}
	return &resp, nil
}
