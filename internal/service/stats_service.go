package service

import (
	"fmt"
	"sort"

	"github.com/classroomquiz/backend/internal/dto"
	"github.com/classroomquiz/backend/internal/model"
	"github.com/classroomquiz/backend/internal/store"
)

// StatsService computes the teacher dashboard rollups and the student
// attempt history. Both are pure reads over snapshot copies of the stores;
// they may run concurrently with submissions.
type StatsService interface {
	TeacherStats(teacherID uint) *dto.TeacherStatsDTO
	StudentHistory(studentID uint) *dto.StudentHistoryDTO
}

type statsService struct {
	activities store.ActivityStore
	attempts   store.AttemptStore
}

func NewStatsService(activities store.ActivityStore, attempts store.AttemptStore) StatsService {
	return &statsService{activities: activities, attempts: attempts}
}

// tierCount accumulates correct/total pairs for one difficulty tier.
type tierCount struct {
	correct int
	total   int
}

// studentAccumulator is the running rollup for one student across the
// teacher's activities.
type studentAccumulator struct {
	studentID      uint
	studentName    string
	studentEmail   string
	totalAnswers   int
	correctAnswers int
	tiers          map[model.Difficulty]*tierCount
}

// TeacherStats aggregates accuracy per student over the teacher's
// activities. Within each activity only the student's most recent attempt
// counts, so retries on one quiz do not inflate the rollup; attempts on
// different activities all count.
func (s *statsService) TeacherStats(teacherID uint) *dto.TeacherStatsDTO {
	teacherActivities := s.activities.ListByOwner(teacherID)

	byStudent := make(map[uint]*studentAccumulator)
	for _, activity := range teacherActivities {
		for _, attempt := range latestAttemptPerStudent(s.attempts.ListByActivity(activity.ID)) {
			acc, ok := byStudent[attempt.StudentID]
			if !ok {
				name := attempt.StudentName
				if name == "" {
					name = attempt.StudentEmail
				}
				if name == "" {
					name = fmt.Sprintf("Student %d", attempt.StudentID)
				}
				acc = &studentAccumulator{
					studentID:    attempt.StudentID,
					studentName:  name,
					studentEmail: attempt.StudentEmail,
					tiers: map[model.Difficulty]*tierCount{
						model.DifficultyEasy:   {},
						model.DifficultyMedium: {},
						model.DifficultyHard:   {},
					},
				}
				byStudent[attempt.StudentID] = acc
			}

			acc.totalAnswers += attempt.Total
			acc.correctAnswers += attempt.CorrectCount
			for _, d := range attempt.Detail {
				tier, ok := acc.tiers[d.Difficulty]
				if !ok {
					continue
				}
				tier.total++
				if d.IsCorrect {
					tier.correct++
				}
			}
		}
	}

	students := make([]dto.StudentStatDTO, 0, len(byStudent))
	for _, acc := range byStudent {
		students = append(students, acc.toDTO())
	}
	sort.Slice(students, func(i, j int) bool { return students[i].StudentID < students[j].StudentID })

	return &dto.TeacherStatsDTO{
		ActivitiesCount: len(teacherActivities),
		StudentsCount:   len(students),
		Students:        students,
	}
}

// latestAttemptPerStudent collapses an activity's attempts to the most recent
// one per student, in first-seen student order.
func latestAttemptPerStudent(attempts []model.Attempt) []model.Attempt {
	latest := make(map[uint]int)
	var order []uint
	for i, attempt := range attempts {
		prev, seen := latest[attempt.StudentID]
		if !seen {
			latest[attempt.StudentID] = i
			order = append(order, attempt.StudentID)
			continue
		}
		if attempt.SubmittedAt.After(attempts[prev].SubmittedAt) {
			latest[attempt.StudentID] = i
		}
	}
	out := make([]model.Attempt, 0, len(order))
	for _, studentID := range order {
		out = append(out, attempts[latest[studentID]])
	}
	return out
}

// toDTO derives the percentage fields. The difficulty summary is sorted by
// rate ascending with a stable sort, so equal rates keep the easy < medium <
// hard enumeration order and the weakest tier is simply the first entry.
func (acc *studentAccumulator) toDTO() dto.StudentStatDTO {
	summary := make([]dto.DifficultyRateDTO, 0, len(model.Difficulties))
	for _, level := range model.Difficulties {
		tier := acc.tiers[level]
		summary = append(summary, dto.DifficultyRateDTO{
			Level:   string(level),
			Correct: tier.correct,
			Total:   tier.total,
			Rate:    percentScore(tier.correct, tier.total),
		})
	}
	sort.SliceStable(summary, func(i, j int) bool { return summary[i].Rate < summary[j].Rate })

	return dto.StudentStatDTO{
		StudentID:         acc.studentID,
		StudentName:       acc.studentName,
		StudentEmail:      acc.studentEmail,
		TotalAnswers:      acc.totalAnswers,
		CorrectAnswers:    acc.correctAnswers,
		Accuracy:          percentScore(acc.correctAnswers, acc.totalAnswers),
		WeakestDifficulty: summary[0].Level,
		DifficultySummary: summary,
	}
}

// StudentHistory returns every attempt of the student, newest first. Unlike
// the teacher rollup there is no most-recent collapsing; attempts whose
// activity has been deleted are dropped because their title no longer
// resolves.
func (s *statsService) StudentHistory(studentID uint) *dto.StudentHistoryDTO {
	activityByID := make(map[uint]model.Activity)
	for _, a := range s.activities.ListAll() {
		activityByID[a.ID] = a
	}

	entries := make([]dto.HistoryEntryDTO, 0)
	for _, attempt := range s.attempts.ListAll() {
		if attempt.StudentID != studentID {
			continue
		}
		activity, ok := activityByID[attempt.ActivityID]
		if !ok {
			continue
		}

		entry := dto.HistoryEntryDTO{
			AttemptID:      attempt.AttemptID,
			ActivityID:     attempt.ActivityID,
			ActivityTitle:  activity.Title,
			SubmittedAt:    attempt.SubmittedAt,
			CorrectAnswers: attempt.CorrectCount,
			TotalQuestions: attempt.Total,
			Score:          percentScore(attempt.CorrectCount, attempt.Total),
		}
		for _, d := range attempt.Detail {
			entry.Detail = append(entry.Detail, dto.AnswerDetailDTO{
				QuestionID:    d.QuestionID,
				SelectedIndex: d.SelectedIndex,
				CorrectIndex:  d.CorrectIndex,
				IsCorrect:     d.IsCorrect,
				Difficulty:    string(d.Difficulty),
			})
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].SubmittedAt.After(entries[j].SubmittedAt) })

	return &dto.StudentHistoryDTO{Attempts: entries}
}
