package service

import (
	"fmt"

	"github.com/classroomquiz/backend/internal/dto"
	"github.com/classroomquiz/backend/internal/model"
	"github.com/classroomquiz/backend/internal/store"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

const (
	defaultDifficulty = model.DifficultyMedium
	defaultGradeLevel = "grade_10"
)

// ActivityService covers the teacher-facing lifecycle of an activity:
// preview a generated pack, publish it, list, and delete with cascade.
type ActivityService interface {
	Preview(req dto.QuizPreviewRequest) (*dto.QuizPreviewDTO, error)
	Publish(req dto.ActivityPublishRequest, ownerID uint) (*dto.ActivityDTO, error)
	ListOwned(ownerID uint) []dto.ActivityDTO
	ListPublic() []dto.ActivityDTO
	Delete(activityID, ownerID uint) bool
}

type activityService struct {
	activities store.ActivityStore
	attempts   store.AttemptStore
	generator  GeneratorService
}

func NewActivityService(activities store.ActivityStore, attempts store.AttemptStore, generator GeneratorService) ActivityService {
	return &activityService{activities: activities, attempts: attempts, generator: generator}
}

// normalizeQuizParams applies defaults and validates the difficulty/grade
// pair shared by preview and publish.
func normalizeQuizParams(difficulty, gradeLevel string) (model.Difficulty, string, error) {
	if difficulty == "" {
		difficulty = string(defaultDifficulty)
	}
	if gradeLevel == "" {
		gradeLevel = defaultGradeLevel
	}
	d := model.Difficulty(difficulty)
	if !d.Valid() {
		return "", "", validationErr("invalid difficulty: use easy, medium or hard")
	}
	if !model.ValidGradeLevel(gradeLevel) {
		return "", "", validationErr(fmt.Sprintf("invalid grade level %q", gradeLevel))
	}
	return d, gradeLevel, nil
}

func (s *activityService) Preview(req dto.QuizPreviewRequest) (*dto.QuizPreviewDTO, error) {
	difficulty, grade, err := normalizeQuizParams(req.Difficulty, req.GradeLevel)
	if err != nil {
		return nil, err
	}

	quiz := s.generator.GeneratePack(req.Topic, difficulty, grade)

	resp := dto.QuizPreviewDTO{
		Topic:      quiz.Topic,
		Difficulty: string(quiz.Difficulty),
		GradeLevel: quiz.GradeLevel,
		Version:    quiz.Version,
	}
	for _, q := range quiz.Questions {
		var qDTO dto.QuestionDTO
		copier.Copy(&qDTO, &q)
		resp.Questions = append(resp.Questions, qDTO)
	}
	return &resp, nil
}

func (s *activityService) Publish(req dto.ActivityPublishRequest, ownerID uint) (*dto.ActivityDTO, error) {
	difficulty, grade, err := normalizeQuizParams(req.Difficulty, req.GradeLevel)
	if err != nil {
		return nil, err
	}
	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		Topic:      req.Topic,
		Difficulty: difficulty,
		GradeLevel: grade,
	}
	for _, qDTO := range req.Questions {
		questionDifficulty := model.Difficulty(qDTO.Difficulty)
		if questionDifficulty == "" {
			questionDifficulty = difficulty
		}
		quiz.Questions = append(quiz.Questions, model.Question{
			ID:           qDTO.ID,
			Text:         qDTO.Text,
			Options:      qDTO.Options,
			CorrectIndex: qDTO.CorrectIndex,
			Difficulty:   questionDifficulty,
		})
	}

	activity := model.Activity{
		Title:   req.Topic,
		OwnerID: ownerID,
		Quiz:    quiz,
	}
	if err := s.activities.Create(&activity); err != nil {
		log.Error().Err(err).Msg("Publish: failed to store activity")
		return nil, fmt.Errorf("error storing activity: %w", err)
	}

	log.Info().Uint("activityID", activity.ID).Uint("ownerID", ownerID).Str("topic", req.Topic).Msg("Activity published")
	sanitized := sanitizeActivity(activity)
	return &sanitized, nil
}

// validateQuestions enforces the published-quiz shape: exactly three
// questions, each with at least two options and an in-range correct index.
func validateQuestions(questions []dto.QuestionDTO) error {
	if len(questions) != model.QuestionsPerActivity {
		return validationErr(fmt.Sprintf("an activity must contain exactly %d questions", model.QuestionsPerActivity))
	}
	for i, q := range questions {
		if q.ID == "" || q.Text == "" || len(q.Options) < 2 {
			return validationErr(fmt.Sprintf("question %d is invalid", i+1))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return validationErr(fmt.Sprintf("question %d has no valid correct answer", i+1))
		}
	}
	return nil
}

func (s *activityService) ListOwned(ownerID uint) []dto.ActivityDTO {
	return sanitizeActivities(s.activities.ListByOwner(ownerID))
}

func (s *activityService) ListPublic() []dto.ActivityDTO {
	return sanitizeActivities(s.activities.ListAll())
}

// Delete removes the activity when it belongs to ownerID and cascades the
// deletion to every attempt recorded against it.
func (s *activityService) Delete(activityID, ownerID uint) bool {
	if !s.activities.Delete(activityID, ownerID) {
		return false
	}
	s.attempts.DeleteAllForActivity(activityID)
	log.Info().Uint("activityID", activityID).Uint("ownerID", ownerID).Msg("Activity deleted")
	return true
}

func sanitizeActivities(activities []model.Activity) []dto.ActivityDTO {
	out := make([]dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		out = append(out, sanitizeActivity(a))
	}
	return out
}

// sanitizeActivity strips correct answer indexes for client consumption.
func sanitizeActivity(a model.Activity) dto.ActivityDTO {
	quiz := dto.PublicQuizDTO{
		Topic:      a.Quiz.Topic,
		Difficulty: string(a.Quiz.Difficulty),
		GradeLevel: a.Quiz.GradeLevel,
	}
	for _, q := range a.Quiz.Questions {
		quiz.Questions = append(quiz.Questions, dto.PublicQuestionDTO{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			Difficulty: string(q.Difficulty),
		})
	}
	return dto.ActivityDTO{
		ID:        a.ID,
		Title:     a.Title,
		OwnerID:   a.OwnerID,
		CreatedAt: a.CreatedAt,
		Quiz:      quiz,
	}
}
