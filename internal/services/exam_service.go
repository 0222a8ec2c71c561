package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/messages"
	"github.com/learningmate/examstore/internal/result"
)

// ExamService holds the business rules for exams.
type ExamService struct {
	exams ExamStore
	log   zerolog.Logger
	now   func() time.Time
}

// NewExamService creates an ExamService over store.
func NewExamService(store ExamStore, log zerolog.Logger) *ExamService {
	return &ExamService{
		exams: store,
		log:   log.With().Str(messages.FieldComponent, "exam_service").Logger(),
		now:   time.Now,
	}
}

// CreateExam validates and stores a new exam without topics.
func (s *ExamService) CreateExam(ctx context.Context, exam *entities.Exam) (result.Result[entities.Exam], error) {
	if exam == nil {
		return result.Err[entities.Exam](nullProblem("Exam")), nil
	}

	created := entities.Exam{ID: exam.ID, Title: exam.Title, CreatedAt: exam.CreatedAt}
	if problems := validationProblems(created); problems != nil {
		s.log.Warn().
			Str(messages.FieldEntity, "Exam").
			Int("problems", len(problems)).
			Msg(messages.LogValidationFailed)
		return result.Err[entities.Exam](problems...), nil
	}
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = s.now().UTC()
	}

	added, err := s.exams.AddExam(ctx, created)
	if err != nil {
		return result.Result[entities.Exam]{}, err
	}
	if added.IsErr() {
		return result.Forward[entities.Exam](added), nil
	}

	s.log.Info().Str(messages.FieldID, created.ID.String()).Msg("exam created")
	return result.Ok(created), nil
}

// GetExam returns the exam with the scalar fields of all its topics.
func (s *ExamService) GetExam(ctx context.Context, examID uuid.UUID) (result.Result[entities.Exam], error) {
	return s.exams.GetExamOverview(ctx, examID)
}

// GetExamSkillTopics returns the exam with one skill's topics and questions.
func (s *ExamService) GetExamSkillTopics(ctx context.Context, examID uuid.UUID, skill entities.Skill) (result.Result[entities.Exam], error) {
	if !skill.Valid() {
		return result.Err[entities.Exam](
			result.Validation(messages.MakeSureAllRequiredFieldsAreProperlyEntered).
				With("field", "skill").
				With(messages.FieldSkill, string(skill)),
		), nil
	}

	switch skill {
	case entities.SkillListening:
		return s.exams.GetExamListeningTopics(ctx, examID)
	case entities.SkillReading:
		return s.exams.GetExamReadingTopics(ctx, examID)
	case entities.SkillWriting:
		return s.exams.GetExamWritingTopics(ctx, examID)
	default:
		return s.exams.GetExamSpeakingTopics(ctx, examID)
	}
}

// ListExams returns every exam, newest first.
func (s *ExamService) ListExams(ctx context.Context) (result.Result[[]entities.Exam], error) {
	return s.exams.GetExams(ctx)
}
