package dto

// DifficultyRateDTO is one tier of a student's accuracy breakdown.
type DifficultyRateDTO struct {
	Level   string  `json:"level"`
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Rate    float64 `json:"rate"`
}

// StudentStatDTO is a teacher-facing rollup of one student's accuracy across
// the teacher's activities, with only the most recent attempt per activity
// counted.
type StudentStatDTO struct {
	StudentID         uint                `json:"studentId"`
	StudentName       string              `json:"studentName"`
	StudentEmail      string              `json:"studentEmail"`
	TotalAnswers      int                 `json:"totalAnswers"`
	CorrectAnswers    int                 `json:"correctAnswers"`
	Accuracy          float64             `json:"accuracy"`
	WeakestDifficulty string              `json:"weakestDifficulty"`
	DifficultySummary []DifficultyRateDTO `json:"difficultySummary"`
}

type TeacherStatsDTO struct {
	ActivitiesCount int              `json:"activitiesCount"`
	StudentsCount   int              `json:"studentsCount"`
	Students        []StudentStatDTO `json:"students"`
}
