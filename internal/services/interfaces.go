package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/result"
)

// TopicReader provides read-only access to the topics of one skill.
type TopicReader interface {
	Skill() entities.Skill
	CheckTopicExists(ctx context.Context, id uuid.UUID) (result.Result[bool], error)
	GetTopicByID(ctx context.Context, id uuid.UUID) (result.Result[entities.Topic], error)
	GetTopicWithQuestionsByID(ctx context.Context, id uuid.UUID) (result.Result[entities.Topic], error)
	GetTopicsByExamID(ctx context.Context, examID uuid.UUID) (result.Result[[]entities.Topic], error)
	GetTopicsWithQuestionsByExamID(ctx context.Context, examID uuid.UUID) (result.Result[[]entities.Topic], error)
}

// TopicWriter persists topics and their questions.
type TopicWriter interface {
	AddTopic(ctx context.Context, topic entities.Topic) (result.Result[int], error)
	AddTopicQuestions(ctx context.Context, topicID uuid.UUID, questions []entities.Question) (result.Result[int], error)
}

// TopicStore is the full topic repository contract.
type TopicStore interface {
	TopicReader
	TopicWriter
}

// ExamChecker answers whether an exam exists. Topic creation depends on it.
type ExamChecker interface {
	CheckExamExists(ctx context.Context, examID uuid.UUID) (result.Result[bool], error)
}

// ExamStore is the full exam repository contract.
type ExamStore interface {
	ExamChecker
	AddExam(ctx context.Context, exam entities.Exam) (result.Result[int], error)
	GetExamOverview(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error)
	GetExamSkillTopics(ctx context.Context, examID uuid.UUID, skill entities.Skill) (result.Result[entities.Exam], error)
	GetExamListeningTopics(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error)
	GetExamReadingTopics(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error)
	GetExamWritingTopics(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error)
	GetExamSpeakingTopics(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error)
	GetExams(ctx context.Context) (result.Result[[]entities.Exam], error)
}
