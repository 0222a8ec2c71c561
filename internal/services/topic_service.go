package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/messages"
	"github.com/learningmate/examstore/internal/result"
)

// TopicService holds the business rules for the topics of one skill.
type TopicService struct {
	topics TopicStore
	exams  ExamChecker
	log    zerolog.Logger
}

// NewTopicService creates a TopicService over the given stores.
func NewTopicService(topics TopicStore, exams ExamChecker, log zerolog.Logger) *TopicService {
	return &TopicService{
		topics: topics,
		exams:  exams,
		log: log.With().
			Str(messages.FieldComponent, "topic_service").
			Str(messages.FieldSkill, string(topics.Skill())).
			Logger(),
	}
}

// Skill returns the skill this service manages.
func (s *TopicService) Skill() entities.Skill {
	return s.topics.Skill()
}

// CreateTopic validates topic, checks that its exam exists, then stores the
// topic and its questions. Missing identities are generated.
func (s *TopicService) CreateTopic(ctx context.Context, topic *entities.Topic) (result.Result[entities.Topic], error) {
	if topic == nil {
		return result.Err[entities.Topic](nullProblem("Topic")), nil
	}

	created := *topic
	created.Skill = s.topics.Skill()
	if problems := validationProblems(created); problems != nil {
		s.log.Warn().
			Str(messages.FieldEntity, created.Skill.EntityName()).
			Int("problems", len(problems)).
			Msg(messages.LogValidationFailed)
		return result.Err[entities.Topic](problems...), nil
	}

	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	questions := make([]entities.Question, len(created.Questions))
	for i, q := range created.Questions {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		q.TopicID = created.ID
		if q.AnswerOptions == nil {
			q.AnswerOptions = []entities.AnswerOption{}
		}
		questions[i] = q
	}
	created.Questions = questions

	exists, err := s.exams.CheckExamExists(ctx, created.ExamID)
	if err != nil {
		return result.Result[entities.Topic]{}, err
	}
	if exists.IsErr() {
		return result.Forward[entities.Topic](exists), nil
	}

	added, err := s.topics.AddTopic(ctx, created)
	if err != nil {
		return result.Result[entities.Topic]{}, err
	}
	if added.IsErr() {
		return result.Forward[entities.Topic](added), nil
	}

	if len(questions) > 0 {
		addedQuestions, err := s.topics.AddTopicQuestions(ctx, created.ID, questions)
		if err != nil {
			return result.Result[entities.Topic]{}, err
		}
		if addedQuestions.IsErr() {
			return result.Forward[entities.Topic](addedQuestions), nil
		}
	}

	s.log.Info().
		Str(messages.FieldID, created.ID.String()).
		Int("questions", len(questions)).
		Msg("topic created")
	return result.Ok(created), nil
}

// GetTopic returns the topic's scalar fields.
func (s *TopicService) GetTopic(ctx context.Context, id uuid.UUID) (result.Result[entities.Topic], error) {
	return s.topics.GetTopicByID(ctx, id)
}

// GetTopicWithQuestions probes for the topic first, so a missing topic reads
// as "not found" rather than as a failed load.
func (s *TopicService) GetTopicWithQuestions(ctx context.Context, id uuid.UUID) (result.Result[entities.Topic], error) {
	exists, err := s.topics.CheckTopicExists(ctx, id)
	if err != nil {
		return result.Result[entities.Topic]{}, err
	}
	if exists.IsErr() {
		return result.Forward[entities.Topic](exists), nil
	}
	return s.topics.GetTopicWithQuestionsByID(ctx, id)
}

// ListExamTopics returns every topic of the exam for this skill, with
// questions when withQuestions is set.
func (s *TopicService) ListExamTopics(ctx context.Context, examID uuid.UUID, withQuestions bool) (result.Result[[]entities.Topic], error) {
	if withQuestions {
		return s.topics.GetTopicsWithQuestionsByExamID(ctx, examID)
	}
	return s.topics.GetTopicsByExamID(ctx, examID)
}
