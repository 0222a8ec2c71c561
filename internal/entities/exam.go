package entities

import (
	"time"

	"github.com/google/uuid"
)

// Exam is the aggregate root. Its topic collections are filled per query and
// are empty unless the query asked for them.
type Exam struct {
	ID              uuid.UUID `gorm:"column:id;type:text;primaryKey" json:"id"`
	Title           string    `gorm:"column:title;size:256" json:"title" validate:"required"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	WritingTopics   []Topic   `gorm:"-" json:"writing_topics,omitempty"`
	SpeakingTopics  []Topic   `gorm:"-" json:"speaking_topics,omitempty"`
	ListeningTopics []Topic   `gorm:"-" json:"listening_topics,omitempty"`
	ReadingTopics   []Topic   `gorm:"-" json:"reading_topics,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}

// SetTopics stores topics in the collection for skill.
func (e *Exam) SetTopics(skill Skill, topics []Topic) {
	switch skill {
	case SkillListening:
		e.ListeningTopics = topics
	case SkillReading:
		e.ReadingTopics = topics
	case SkillWriting:
		e.WritingTopics = topics
	case SkillSpeaking:
		e.SpeakingTopics = topics
	}
}

// TopicsFor returns the collection for skill.
func (e Exam) TopicsFor(skill Skill) []Topic {
	switch skill {
	case SkillListening:
		return e.ListeningTopics
	case SkillReading:
		return e.ReadingTopics
	case SkillWriting:
		return e.WritingTopics
	case SkillSpeaking:
		return e.SpeakingTopics
	}
	return nil
}
