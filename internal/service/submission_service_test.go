package service

import (
	"errors"
	"testing"

	"github.com/classroomquiz/backend/internal/model"
)

func TestSubmit_RecordsExactlyOneAttempt(t *testing.T) {
	activities, attempts := newTestStores(t)
	activityID := publishTestActivity(t, activities, 1, "Round trip")
	svc := NewSubmissionService(activities, attempts)
	statsSvc := NewStatsService(activities, attempts)

	student := StudentIdentity{ID: 10, Name: "Ana", Email: "ana@example.com"}
	result, err := svc.Submit(activityID, student, map[string]any{"q1": float64(0), "q2": float64(1), "q3": float64(0)})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.CorrectAnswers != 2 || result.TotalQuestions != 3 {
		t.Errorf("expected 2/3, got %d/%d", result.CorrectAnswers, result.TotalQuestions)
	}
	if result.Score != 66.7 {
		t.Errorf("expected score 66.7, got %v", result.Score)
	}
	if len(result.QuestionResults) != 3 {
		t.Fatalf("expected 3 question results, got %d", len(result.QuestionResults))
	}
	if result.QuestionResults[0].Text == "" || len(result.QuestionResults[0].Options) == 0 {
		t.Error("expected question text and options joined into the result")
	}

	history := statsSvc.StudentHistory(10)
	if len(history.Attempts) != 1 {
		t.Fatalf("expected the attempt to appear exactly once in history, got %d", len(history.Attempts))
	}
	if history.Attempts[0].AttemptID == "" {
		t.Error("expected a generated attempt id")
	}
}

func TestSubmit_RepeatedSubmissionsAppend(t *testing.T) {
	activities, attemptStore := newTestStores(t)
	activityID := publishTestActivity(t, activities, 1, "Retries")
	svc := NewSubmissionService(activities, attemptStore)

	student := StudentIdentity{ID: 10, Email: "ana@example.com"}
	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(activityID, student, map[string]any{"q1": float64(0)}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	if got := len(attemptStore.ListByActivity(activityID)); got != 3 {
		t.Errorf("expected 3 stored attempts, got %d", got)
	}
}

func TestSubmit_UnknownActivity(t *testing.T) {
	activities, attempts := newTestStores(t)
	svc := NewSubmissionService(activities, attempts)

	_, err := svc.Submit(999, StudentIdentity{ID: 10}, nil)
	if !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestSubmit_ActivityWithoutQuestionsRejected(t *testing.T) {
	activities, attempts := newTestStores(t)
	empty := model.Activity{Title: "Empty", OwnerID: 1, Quiz: model.Quiz{Topic: "Empty"}}
	if err := activities.Create(&empty); err != nil {
		t.Fatalf("create: %v", err)
	}
	svc := NewSubmissionService(activities, attempts)

	_, err := svc.Submit(empty.ID, StudentIdentity{ID: 10}, map[string]any{})
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if got := len(attempts.ListByActivity(empty.ID)); got != 0 {
		t.Errorf("rejected submission must not record attempts, got %d", got)
	}
}

func TestSubmit_NameFallsBackToEmail(t *testing.T) {
	activities, attempts := newTestStores(t)
	activityID := publishTestActivity(t, activities, 1, "Names")
	svc := NewSubmissionService(activities, attempts)

	if _, err := svc.Submit(activityID, StudentIdentity{ID: 10, Email: "ana@example.com"}, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stored := attempts.ListByActivity(activityID)
	if stored[0].StudentName != "ana@example.com" {
		t.Errorf("expected email fallback for empty name, got %q", stored[0].StudentName)
	}
}
