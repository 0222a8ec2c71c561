package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TopicCategory classifies a topic by exam track.
type TopicCategory string

const (
	TopicCategoryAcademic        TopicCategory = "academic"
	TopicCategoryGeneralTraining TopicCategory = "general_training"
)

func (c TopicCategory) Valid() bool {
	return c == TopicCategoryAcademic || c == TopicCategoryGeneralTraining
}

// Topic is a skill-specific unit of exam content. The same struct backs all
// four <skill>_topics tables; Skill is filled in by the repository that loaded
// it.
//
// Questions is only populated by queries that join the questions table. A nil
// slice means "not loaded", not "has no questions".
type Topic struct {
	ID        uuid.UUID     `gorm:"column:id;type:text;primaryKey" json:"id"`
	Category  TopicCategory `gorm:"column:category;size:50" json:"category" validate:"required,oneof=academic general_training"`
	Title     string        `gorm:"column:title;size:256" json:"title" validate:"required"`
	Content   string        `gorm:"column:content;type:text" json:"content" validate:"required"`
	ScoreBand string        `gorm:"column:score_band;size:20" json:"score_band"`
	Score     float64       `gorm:"column:score" json:"score" validate:"gte=0"`
	ExamID    uuid.UUID     `gorm:"column:exam_id;type:text" json:"exam_id" validate:"required"`
	Skill     Skill         `gorm:"-" json:"skill,omitempty"`
	Questions []Question    `gorm:"-" json:"questions,omitempty" validate:"dive"`
}

// Question belongs to one topic. SerializedAnswerOptions is the raw JSON
// column; nil means SQL NULL. AnswerOptions is decoded from it by the
// repository and is never nil on a loaded question.
type Question struct {
	ID                      uuid.UUID       `gorm:"column:id;type:text;primaryKey" json:"id"`
	TopicID                 uuid.UUID       `gorm:"column:topic_id;type:text" json:"topic_id"`
	Content                 string          `gorm:"column:content;type:text" json:"content" validate:"required"`
	SerializedAnswerOptions *datatypes.JSON `gorm:"column:serialized_answer_options" json:"-"`
	AnswerOptions           []AnswerOption  `gorm:"-" json:"answer_options"`
}

// AnswerOption is one multiple-choice option.
type AnswerOption struct {
	Value     string `json:"value"`
	IsCorrect bool   `json:"isCorrect"`
	Order     int    `json:"order"`
}
