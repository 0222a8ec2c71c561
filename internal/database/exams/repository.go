// Package exams provides database operations for exams and for the topic
// overviews that span all four skills.
//
// # Interface Implementation
//
//	var _ services.ExamStore = (*Repository)(nil)
//
// # Usage
//
//	repo := exams.NewRepository(db, log)
//	res, err := repo.GetExamOverview(ctx, examID)
package exams

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/learningmate/examstore/internal/database"
	"github.com/learningmate/examstore/internal/database/topics"
	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/messages"
	"github.com/learningmate/examstore/internal/result"
)

const examEntity = "Exam"

const (
	insertExamSQL = `
		INSERT INTO exams (id, title, created_at)
		VALUES (@id, @title, @created_at)
		ON CONFLICT (id) DO NOTHING`

	examExistsSQL = `SELECT COUNT(DISTINCT 1) FROM exams WHERE id = @examId`

	examByIDSQL = `SELECT id, title, created_at FROM exams WHERE id = @examId`

	allExamsSQL = `SELECT id, title, created_at FROM exams ORDER BY created_at DESC, id`
)

// Repository handles exam database operations.
type Repository struct {
	conns database.ConnectionProvider
	log   zerolog.Logger
	now   func() time.Time
}

// NewRepository creates a new exams repository.
func NewRepository(conns database.ConnectionProvider, log zerolog.Logger) *Repository {
	return &Repository{
		conns: conns,
		log:   log.With().Str(messages.FieldComponent, "exams_repository").Logger(),
		now:   time.Now,
	}
}

// CheckExamExists probes for the exam. Absence is an Err result.
func (r *Repository) CheckExamExists(ctx context.Context, examID uuid.UUID) (result.Result[bool], error) {
	var exists bool
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		return conn.Raw(examExistsSQL, sql.Named("examId", examID)).Row().Scan(&exists)
	})
	if err != nil {
		return result.Result[bool]{}, fmt.Errorf("failed to probe exam: %w", err)
	}

	if !exists {
		r.log.Warn().
			Str(messages.FieldEntity, examEntity).
			Str(messages.FieldID, examID.String()).
			Msg(messages.LogRecordNotFoundWithID)
		return result.Err[bool](
			result.NotFound(messages.RecordNotFoundWithID(examEntity, examID)).
				With(messages.FieldEntity, examEntity).
				With(messages.FieldID, examID.String()),
		), nil
	}

	return result.Ok(true), nil
}

// AddExam inserts the exam row. A zero CreatedAt is set to the current time.
// An exam whose id already exists is left untouched and the call returns a
// WriteIneffective Err. Topic collections on exam are not written.
func (r *Repository) AddExam(ctx context.Context, exam entities.Exam) (result.Result[int], error) {
	createdAt := exam.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}

	var affected int64
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		tx := conn.Exec(insertExamSQL, map[string]any{
			"id":         exam.ID,
			"title":      exam.Title,
			"created_at": createdAt,
		})
		affected = tx.RowsAffected
		return tx.Error
	})
	if err != nil {
		return result.Result[int]{}, fmt.Errorf("failed to insert exam: %w", err)
	}

	if affected == 0 {
		r.log.Warn().
			Str(messages.FieldAction, "add new exam").
			Str(messages.FieldID, exam.ID.String()).
			Msg(messages.LogFailedToCreate)
		return result.Err[int](
			result.WriteIneffective(messages.FailedTo("add new exam")).
				With(messages.FieldID, exam.ID.String()),
		), nil
	}

	return result.Ok(int(affected)), nil
}

// GetExamOverview loads the exam and the scalar fields of its topics across
// all skills, on one connection.
func (r *Repository) GetExamOverview(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error) {
	var (
		exam  entities.Exam
		found bool
	)
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		var err error
		exam, found, err = queryExam(conn, examID)
		if err != nil || !found {
			return err
		}
		for _, skill := range entities.Skills {
			list, err := topics.QueryTopicsByExam(conn, skill, examID)
			if err != nil {
				return fmt.Errorf("failed to list %ss: %w", skill.Noun(), err)
			}
			exam.SetTopics(skill, list)
		}
		return nil
	})
	if err != nil {
		return result.Result[entities.Exam]{}, fmt.Errorf("failed to get exam overview: %w", err)
	}

	if !found {
		return r.fail("get exam overview", examID), nil
	}
	return result.Ok(exam), nil
}

// GetExamSkillTopics loads the exam with the topics of one skill, each
// hydrated with its questions.
func (r *Repository) GetExamSkillTopics(ctx context.Context, examID uuid.UUID, skill entities.Skill) (result.Result[entities.Exam], error) {
	var (
		exam  entities.Exam
		found bool
	)
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		var err error
		exam, found, err = queryExam(conn, examID)
		if err != nil || !found {
			return err
		}
		list, err := topics.QueryTopicsWithQuestionsByExam(conn, skill, examID)
		if err != nil {
			return err
		}
		exam.SetTopics(skill, list)
		return nil
	})
	if err != nil {
		return result.Result[entities.Exam]{}, fmt.Errorf("failed to get exam %s topics: %w", skill, err)
	}

	if !found {
		return r.fail(fmt.Sprintf("get exam %s topics", skill), examID), nil
	}
	return result.Ok(exam), nil
}

func (r *Repository) GetExamListeningTopics(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error) {
	return r.GetExamSkillTopics(ctx, examID, entities.SkillListening)
}

func (r *Repository) GetExamReadingTopics(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error) {
	return r.GetExamSkillTopics(ctx, examID, entities.SkillReading)
}

func (r *Repository) GetExamWritingTopics(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error) {
	return r.GetExamSkillTopics(ctx, examID, entities.SkillWriting)
}

func (r *Repository) GetExamSpeakingTopics(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error) {
	return r.GetExamSkillTopics(ctx, examID, entities.SkillSpeaking)
}

// GetExams lists every exam, newest first, without topics.
func (r *Repository) GetExams(ctx context.Context) (result.Result[[]entities.Exam], error) {
	exams := []entities.Exam{}
	err := r.conns.Connection(ctx, func(conn *gorm.DB) error {
		return conn.Raw(allExamsSQL).Scan(&exams).Error
	})
	if err != nil {
		return result.Result[[]entities.Exam]{}, fmt.Errorf("failed to list exams: %w", err)
	}
	return result.Ok(exams), nil
}

func queryExam(conn *gorm.DB, examID uuid.UUID) (entities.Exam, bool, error) {
	var exam entities.Exam
	tx := conn.Raw(examByIDSQL, sql.Named("examId", examID)).Scan(&exam)
	if tx.Error != nil {
		return entities.Exam{}, false, tx.Error
	}
	return exam, tx.RowsAffected > 0, nil
}

func (r *Repository) fail(action string, examID uuid.UUID) result.Result[entities.Exam] {
	r.log.Error().
		Str(messages.FieldAction, action).
		Str(messages.FieldID, examID.String()).
		Msg(messages.LogFailedToPerformActionWithID)
	return result.Err[entities.Exam](
		result.NotFound(messages.FailedTo(action)).
			With(messages.FieldEntity, examEntity).
			With(messages.FieldID, examID.String()),
	)
}
