// Package topics provides database operations for skill topics and their
// questions.
//
// One Repository serves one skill. The four skills share table shapes, so the
// skill only decides table names and the wording of failure messages.
//
// # Interface Implementation
//
//	var _ services.TopicStore = (*Repository)(nil)
//
// # Usage
//
//	repo := topics.NewRepository(db, entities.SkillListening, log)
//	res, err := repo.GetTopicWithQuestionsByID(ctx, id)
package topics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/learningmate/examstore/internal/database"
	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/messages"
	"github.com/learningmate/examstore/internal/result"
)

// Repository handles topic and question database operations for one skill.
// It holds no mutable state and is safe for concurrent use.
type Repository struct {
	conns database.ConnectionProvider
	skill entities.Skill
	log   zerolog.Logger
}

// NewRepository creates a topics repository for skill.
func NewRepository(conns database.ConnectionProvider, skill entities.Skill, log zerolog.Logger) *Repository {
	return &Repository{
		conns: conns,
		skill: skill,
		log: log.With().
			Str(messages.FieldComponent, "topics_repository").
			Str(messages.FieldSkill, string(skill)).
			Logger(),
	}
}

// Skill returns the skill this repository serves.
func (r *Repository) Skill() entities.Skill {
	return r.skill
}

// AddTopic inserts one topic row and returns the number of affected rows.
// A topic whose id already exists is left untouched and the call returns a
// WriteIneffective Err. Questions on the topic are ignored; see
// AddTopicQuestions.
func (r *Repository) AddTopic(ctx context.Context, topic entities.Topic) (result.Result[int], error) {
	var affected int64
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		tx := conn.Exec(insertTopicSQL(r.skill), map[string]any{
			"id":         topic.ID,
			"category":   topic.Category,
			"title":      topic.Title,
			"content":    topic.Content,
			"score_band": topic.ScoreBand,
			"score":      topic.Score,
			"exam_id":    topic.ExamID,
		})
		affected = tx.RowsAffected
		return tx.Error
	})
	if err != nil {
		return result.Result[int]{}, fmt.Errorf("failed to insert %s: %w", r.skill.Noun(), err)
	}

	if affected == 0 {
		action := "add new " + r.skill.Noun()
		r.log.Warn().
			Str(messages.FieldAction, action).
			Str(messages.FieldID, topic.ID.String()).
			Msg(messages.LogFailedToCreate)
		return result.Err[int](
			result.WriteIneffective(messages.FailedTo(action)).
				With(messages.FieldID, topic.ID.String()),
		), nil
	}

	return result.Ok(int(affected)), nil
}

// AddTopicQuestions inserts questions for topicID, storing each question's
// answer options as JSON. It returns the number of inserted rows. Questions
// whose id already exists are skipped with a warning; if nothing was
// inserted the result is a WriteIneffective Err.
func (r *Repository) AddTopicQuestions(ctx context.Context, topicID uuid.UUID, questions []entities.Question) (result.Result[int], error) {
	var affected int64
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		for _, q := range questions {
			raw, err := encodeAnswerOptions(q.AnswerOptions)
			if err != nil {
				return fmt.Errorf("failed to encode answer options of question %s: %w", q.ID, err)
			}
			tx := conn.Exec(insertQuestionSQL(r.skill), map[string]any{
				"id":                        q.ID,
				"topic_id":                  topicID,
				"content":                   q.Content,
				"serialized_answer_options": raw,
			})
			if tx.Error != nil {
				return tx.Error
			}
			affected += tx.RowsAffected
		}
		return nil
	})
	if err != nil {
		return result.Result[int]{}, fmt.Errorf("failed to insert %s questions: %w", r.skill.Noun(), err)
	}

	if affected == 0 {
		action := "add " + r.skill.Noun() + " questions"
		r.log.Warn().
			Str(messages.FieldAction, action).
			Str(messages.FieldID, topicID.String()).
			Msg(messages.LogFailedToCreate)
		return result.Err[int](
			result.WriteIneffective(messages.FailedTo(action)).
				With(messages.FieldID, topicID.String()),
		), nil
	}

	if skipped := len(questions) - int(affected); skipped > 0 {
		r.log.Warn().
			Str(messages.FieldAction, "add "+r.skill.Noun()+" questions").
			Str(messages.FieldID, topicID.String()).
			Int(messages.FieldSkipped, skipped).
			Msg(messages.LogRecordsSkipped)
	}

	return result.Ok(int(affected)), nil
}

// CheckTopicExists probes for the topic. Absence is an Err result carrying
// the not-found message, never Ok(false).
func (r *Repository) CheckTopicExists(ctx context.Context, id uuid.UUID) (result.Result[bool], error) {
	var exists bool
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		return conn.Raw(topicExistsSQL(r.skill), sql.Named("topicId", id)).Row().Scan(&exists)
	})
	if err != nil {
		return result.Result[bool]{}, fmt.Errorf("failed to probe %s: %w", r.skill.Noun(), err)
	}

	if !exists {
		entity := r.skill.EntityName()
		r.log.Warn().
			Str(messages.FieldEntity, entity).
			Str(messages.FieldID, id.String()).
			Msg(messages.LogRecordNotFoundWithID)
		return result.Err[bool](
			result.NotFound(messages.RecordNotFoundWithID(entity, id)).
				With(messages.FieldEntity, entity).
				With(messages.FieldID, id.String()),
		), nil
	}

	return result.Ok(true), nil
}

// GetTopicByID loads the topic's scalar fields. Questions stay nil.
func (r *Repository) GetTopicByID(ctx context.Context, id uuid.UUID) (result.Result[entities.Topic], error) {
	var (
		topic entities.Topic
		found bool
	)
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		tx := conn.Raw(topicByIDSQL(r.skill), sql.Named("id", id)).Scan(&topic)
		found = tx.RowsAffected > 0
		return tx.Error
	})
	if err != nil {
		return result.Result[entities.Topic]{}, fmt.Errorf("failed to get %s: %w", r.skill.Noun(), err)
	}

	if !found {
		return r.fail("get "+r.skill.Noun()+" content", id), nil
	}

	topic.Skill = r.skill
	return result.Ok(topic), nil
}

// GetTopicWithQuestionsByID loads the topic and all its questions with one
// left join and folds the rows into a single topic.
func (r *Repository) GetTopicWithQuestionsByID(ctx context.Context, id uuid.UUID) (result.Result[entities.Topic], error) {
	var joined []joinedRow
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		rows, err := conn.Raw(topicWithQuestionsSQL(r.skill), sql.Named("id", id)).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		joined, err = readJoinedRows(rows)
		return err
	})
	if err != nil {
		return result.Result[entities.Topic]{}, fmt.Errorf("failed to get %s with questions: %w", r.skill.Noun(), err)
	}

	topic, ok := hydrateTopic(joined)
	if !ok {
		return r.fail("get "+r.skill.Noun()+" with questions", id), nil
	}

	topic.Skill = r.skill
	return result.Ok(topic), nil
}

// GetTopicsByExamID lists the scalar fields of every topic of the exam. An
// exam without topics yields an empty list.
func (r *Repository) GetTopicsByExamID(ctx context.Context, examID uuid.UUID) (result.Result[[]entities.Topic], error) {
	var topics []entities.Topic
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		var err error
		topics, err = QueryTopicsByExam(conn, r.skill, examID)
		return err
	})
	if err != nil {
		return result.Result[[]entities.Topic]{}, fmt.Errorf("failed to list %ss: %w", r.skill.Noun(), err)
	}
	return result.Ok(topics), nil
}

// GetTopicsWithQuestionsByExamID lists every topic of the exam with its
// questions hydrated.
func (r *Repository) GetTopicsWithQuestionsByExamID(ctx context.Context, examID uuid.UUID) (result.Result[[]entities.Topic], error) {
	var topics []entities.Topic
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		var err error
		topics, err = QueryTopicsWithQuestionsByExam(conn, r.skill, examID)
		return err
	})
	if err != nil {
		return result.Result[[]entities.Topic]{}, fmt.Errorf("failed to list %ss with questions: %w", r.skill.Noun(), err)
	}
	return result.Ok(topics), nil
}

// fail logs an unexpected empty result for action and returns the matching
// failure.
func (r *Repository) fail(action string, id uuid.UUID) result.Result[entities.Topic] {
	r.log.Error().
		Str(messages.FieldAction, action).
		Str(messages.FieldID, id.String()).
		Msg(messages.LogFailedToPerformActionWithID)
	return result.Err[entities.Topic](
		result.NotFound(messages.FailedTo(action)).
			With(messages.FieldEntity, r.skill.EntityName()).
			With(messages.FieldID, id.String()),
	)
}
