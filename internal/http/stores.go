package http

import (
	"context"

	"github.com/google/uuid"

	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/result"
)

// This file consolidates the service interfaces used by HTTP controllers.

// ExamsService is the exam use-case surface the exams controller needs.
type ExamsService interface {
	CreateExam(ctx context.Context, exam *entities.Exam) (result.Result[entities.Exam], error)
	GetExam(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error)
	GetExamSkillTopics(ctx context.Context, examID uuid.UUID, skill entities.Skill) (result.Result[entities.Exam], error)
	ListExams(ctx context.Context) (result.Result[[]entities.Exam], error)
}

// TopicsService is the per-skill topic use-case surface.
type TopicsService interface {
	Skill() entities.Skill
	CreateTopic(ctx context.Context, topic *entities.Topic) (result.Result[entities.Topic], error)
	GetTopic(ctx context.Context, id uuid.UUID) (result.Result[entities.Topic], error)
	GetTopicWithQuestions(ctx context.Context, id uuid.UUID) (result.Result[entities.Topic], error)
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
