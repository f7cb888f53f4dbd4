package model

// Difficulty buckets every question and drives the per-tier accuracy rollups.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the tiers in enumeration order. Aggregation code iterates
// this slice instead of a map so tie-breaks and output ordering stay fixed.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GradeLevels is the closed set of grade tags an activity may target.
var GradeLevels = []string{
	"grade_6",
	"grade_7",
	"grade_8",
	"grade_9",
	"grade_10",
	"grade_11",
	"grade_12",
}

func ValidGradeLevel(grade string) bool {
	for _, g := range GradeLevels {
		if g == grade {
			return true
		}
	}
	return false
}
