package service

import (
	"strings"
	"testing"

	"github.com/classroomquiz/backend/internal/dto"
	"github.com/classroomquiz/backend/internal/model"
)

func validPublishRequest() dto.ActivityPublishRequest {
	return dto.ActivityPublishRequest{
		Topic:      "Photosynthesis",
		Difficulty: "medium",
		GradeLevel: "grade_8",
		Questions: []dto.QuestionDTO{
			{ID: "q1", Text: "Question one?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Difficulty: "easy"},
			{ID: "q2", Text: "Question two?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Difficulty: "medium"},
			{ID: "q3", Text: "Question three?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Difficulty: "hard"},
		},
	}
}

func newActivityService(t *testing.T) ActivityService {
	t.Helper()
	activities, attempts := newTestStores(t)
	return NewActivityService(activities, attempts, NewGeneratorService())
}

func TestPublish_StripsCorrectIndexesFromResponse(t *testing.T) {
	svc := newActivityService(t)

	result, err := svc.Publish(validPublishRequest(), 1)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if result.ID == 0 {
		t.Error("expected an assigned activity id")
	}
	if result.Title != "Photosynthesis" {
		t.Errorf("expected title from topic, got %q", result.Title)
	}
	if len(result.Quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(result.Quiz.Questions))
	}
	for _, q := range result.Quiz.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %s: expected options preserved, got %d", q.ID, len(q.Options))
		}
	}
}

func TestPublish_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.ActivityPublishRequest)
	}{
		{"too few questions", func(r *dto.ActivityPublishRequest) { r.Questions = r.Questions[:2] }},
		{"too many questions", func(r *dto.ActivityPublishRequest) {
			r.Questions = append(r.Questions, r.Questions[0])
		}},
		{"missing question text", func(r *dto.ActivityPublishRequest) { r.Questions[1].Text = "" }},
		{"missing question id", func(r *dto.ActivityPublishRequest) { r.Questions[0].ID = "" }},
		{"single option", func(r *dto.ActivityPublishRequest) { r.Questions[2].Options = []string{"only"} }},
		{"correct index out of range", func(r *dto.ActivityPublishRequest) { r.Questions[0].CorrectIndex = 4 }},
		{"negative correct index", func(r *dto.ActivityPublishRequest) { r.Questions[0].CorrectIndex = -1 }},
		{"unknown difficulty", func(r *dto.ActivityPublishRequest) { r.Difficulty = "impossible" }},
		{"unknown grade level", func(r *dto.ActivityPublishRequest) { r.GradeLevel = "grade_42" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newActivityService(t)
			req := validPublishRequest()
			tt.mutate(&req)

			_, err := svc.Publish(req, 1)
			if !IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			if got := len(svc.ListOwned(1)); got != 0 {
				t.Errorf("rejected publish must not store anything, got %d activities", got)
			}
		})
	}
}

func TestPublish_DefaultsDifficultyAndGrade(t *testing.T) {
	svc := newActivityService(t)
	req := validPublishRequest()
	req.Difficulty = ""
	req.GradeLevel = ""

	result, err := svc.Publish(req, 1)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if result.Quiz.Difficulty != string(defaultDifficulty) {
		t.Errorf("expected default difficulty %q, got %q", defaultDifficulty, result.Quiz.Difficulty)
	}
	if result.Quiz.GradeLevel != defaultGradeLevel {
		t.Errorf("expected default grade %q, got %q", defaultGradeLevel, result.Quiz.GradeLevel)
	}
}

func TestPublish_QuestionDifficultyFallsBackToQuizDifficulty(t *testing.T) {
	activities, attempts := newTestStores(t)
	svc := NewActivityService(activities, attempts, NewGeneratorService())
	req := validPublishRequest()
	req.Questions[0].Difficulty = ""

	result, err := svc.Publish(req, 1)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	stored, ok := activities.Get(result.ID)
	if !ok {
		t.Fatal("published activity not found in store")
	}
	if stored.Quiz.Questions[0].Difficulty != model.DifficultyMedium {
		t.Errorf("expected fallback to quiz difficulty, got %q", stored.Quiz.Questions[0].Difficulty)
	}
}

func TestPreview_GeneratesThreeQuestionsForTopic(t *testing.T) {
	svc := newActivityService(t)

	result, err := svc.Preview(dto.QuizPreviewRequest{Topic: "Volcanoes", Difficulty: "easy", GradeLevel: "grade_6"})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(result.Questions) != model.QuestionsPerActivity {
		t.Fatalf("expected %d questions, got %d", model.QuestionsPerActivity, len(result.Questions))
	}
	if result.Version == "" {
		t.Error("expected a version marker on the generated pack")
	}
	foundTopic := false
	for _, q := range result.Questions {
		if strings.Contains(q.Text, "Volcanoes") {
			foundTopic = true
		}
	}
	if !foundTopic {
		t.Error("expected the topic to appear in at least one question")
	}
}

func TestPreview_RejectsInvalidDifficulty(t *testing.T) {
	svc := newActivityService(t)

	_, err := svc.Preview(dto.QuizPreviewRequest{Topic: "Volcanoes", Difficulty: "extreme"})
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestListOwned_OnlyReturnsOwnersActivities(t *testing.T) {
	activities, attempts := newTestStores(t)
	svc := NewActivityService(activities, attempts, NewGeneratorService())
	publishTestActivity(t, activities, 1, "Mine")
	publishTestActivity(t, activities, 2, "Theirs")

	owned := svc.ListOwned(1)
	if len(owned) != 1 || owned[0].Title != "Mine" {
		t.Errorf("expected only owner 1's activity, got %+v", owned)
	}
	if got := len(svc.ListPublic()); got != 2 {
		t.Errorf("expected public listing to include both, got %d", got)
	}
}

func TestDelete_RefusesForeignActivity(t *testing.T) {
	activities, attempts := newTestStores(t)
	svc := NewActivityService(activities, attempts, NewGeneratorService())
	activityID := publishTestActivity(t, activities, 1, "Mine")

	if svc.Delete(activityID, 2) {
		t.Error("expected delete by a non-owner to be refused")
	}
	if _, ok := activities.Get(activityID); !ok {
		t.Error("activity must survive a refused delete")
	}
	if svc.Delete(activityID, 1) != true {
		t.Error("expected owner delete to succeed")
	}
}
