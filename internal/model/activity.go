package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is one multiple-choice item inside an activity. Immutable once the
// activity is published.
type Question struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correctIndex"`
	Difficulty   Difficulty `json:"difficulty"`
}

// Quiz is the structured content of an activity. It is stored as a JSON column
// through the gorm serializer, so reads never reparse a string blob.
type Quiz struct {
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	GradeLevel string     `json:"gradeLevel"`
	Version    string     `json:"version,omitempty"`
	Questions  []Question `json:"questions"`
}

// QuestionByID returns the question with the given id, in O(n) over the fixed
// three questions of a published quiz.
func (q Quiz) QuestionByID(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// QuestionsPerActivity is the fixed size of a published quiz.
const QuestionsPerActivity = 3

type Activity struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `json:"title" gorm:"not null"`
	OwnerID   uint           `json:"owner_id" gorm:"not null;index"`
	Owner     *User          `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Quiz      Quiz           `json:"quiz" gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
