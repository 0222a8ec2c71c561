package services

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learningmate/examstore/internal/database"
	"github.com/learningmate/examstore/internal/database/exams"
	"github.com/learningmate/examstore/internal/database/topics"
	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/result"
)

type testServices struct {
	exams     *ExamService
	listening *TopicService
	writing   *TopicService
}

func setupTestDB(t *testing.T) (*testServices, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	log := zerolog.Nop()
	examRepo := exams.NewRepository(db, log)
	svc := &testServices{
		exams:     NewExamService(examRepo, log),
		listening: NewTopicService(topics.NewRepository(db, entities.SkillListening, log), examRepo, log),
		writing:   NewTopicService(topics.NewRepository(db, entities.SkillWriting, log), examRepo, log),
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return svc, cleanup
}

func mustOk[T any](t *testing.T, res result.Result[T], err error) T {
	t.Helper()
	require.NoError(t, err)
	require.True(t, res.IsOk(), "unexpected problems: %v", res.Problems())
	v, _ := res.Value()
	return v
}

func problemTitles[T any](res result.Result[T]) []string {
	var titles []string
	for _, p := range res.Problems() {
		titles = append(titles, p.Title)
	}
	return titles
}

func createExam(t *testing.T, svc *testServices) entities.Exam {
	t.Helper()
	res, err := svc.exams.CreateExam(context.Background(), &entities.Exam{Title: "Practice exam"})
	return mustOk(t, res, err)
}

func TestCreateExam(t *testing.T) {
	svc, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("assigns identity and creation time", func(t *testing.T) {
		fixed := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
		svc.exams.now = func() time.Time { return fixed }

		res, err := svc.exams.CreateExam(ctx, &entities.Exam{Title: "Exam A"})

		exam := mustOk(t, res, err)
		assert.NotEqual(t, uuid.Nil, exam.ID)
		assert.Equal(t, fixed, exam.CreatedAt)
	})

	t.Run("nil exam", func(t *testing.T) {
		res, err := svc.exams.CreateExam(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"Exam cannot be null."}, problemTitles(res))
		assert.ErrorIs(t, res.Err(), result.ErrValidation)
	})

	t.Run("missing title", func(t *testing.T) {
		res, err := svc.exams.CreateExam(ctx, &entities.Exam{})

		require.NoError(t, err)
		assert.Equal(t, []string{"Title cannot be empty."}, problemTitles(res))
	})

	t.Run("duplicate id", func(t *testing.T) {
		id := uuid.New()
		first, err := svc.exams.CreateExam(ctx, &entities.Exam{ID: id, Title: "First"})
		mustOk(t, first, err)

		res, err := svc.exams.CreateExam(ctx, &entities.Exam{ID: id, Title: "Second"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Failed to add new exam."}, problemTitles(res))
	})
}

func TestCreateTopic(t *testing.T) {
	svc, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	exam := createExam(t, svc)

	t.Run("stores topic with questions", func(t *testing.T) {
		input := &entities.Topic{
			Category: entities.TopicCategoryAcademic,
			Title:    "Lecture on bees",
			Content:  "Audio transcript",
			Score:    6,
			ExamID:   exam.ID,
			Questions: []entities.Question{
				{Content: "How many species?", AnswerOptions: []entities.AnswerOption{{Value: "20000", IsCorrect: true, Order: 1}}},
				{Content: "Where do they live?"},
			},
		}

		res, err := svc.listening.CreateTopic(ctx, input)

		created := mustOk(t, res, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, entities.SkillListening, created.Skill)
		require.Len(t, created.Questions, 2)
		for _, q := range created.Questions {
			assert.NotEqual(t, uuid.Nil, q.ID)
			assert.Equal(t, created.ID, q.TopicID)
		}
		assert.Equal(t, uuid.Nil, input.ID, "input must not be mutated")

		loaded, err := svc.listening.GetTopicWithQuestions(ctx, created.ID)
		got := mustOk(t, loaded, err)
		assert.Equal(t, created.Title, got.Title)
		require.Len(t, got.Questions, 2)
		assert.Equal(t, created.Questions[0].ID, got.Questions[0].ID)
		assert.Equal(t, created.Questions[0].AnswerOptions, got.Questions[0].AnswerOptions)
	})

	t.Run("topic without questions", func(t *testing.T) {
		res, err := svc.writing.CreateTopic(ctx, &entities.Topic{
			Category: entities.TopicCategoryGeneralTraining,
			Title:    "Letter",
			Content:  "Write a letter to your landlord.",
			ExamID:   exam.ID,
		})

		created := mustOk(t, res, err)
		fetched, err := svc.writing.GetTopic(ctx, created.ID)
		assert.Equal(t, "Letter", mustOk(t, fetched, err).Title)
	})

	t.Run("nil topic", func(t *testing.T) {
		res, err := svc.listening.CreateTopic(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"Topic cannot be null."}, problemTitles(res))
	})

	t.Run("validation reports every field", func(t *testing.T) {
		res, err := svc.listening.CreateTopic(ctx, &entities.Topic{
			Category:  "oral",
			ExamID:    exam.ID,
			Questions: []entities.Question{{}},
		})

		require.NoError(t, err)
		titles := problemTitles(res)
		assert.Contains(t, titles, "Title cannot be empty.")
		assert.Contains(t, titles, "Content cannot be empty.")
		assert.Contains(t, titles, "Make sure all required fields are properly entered.")
		assert.ErrorIs(t, res.Err(), result.ErrValidation)
	})

	t.Run("unknown exam", func(t *testing.T) {
		missing := uuid.New()

		res, err := svc.listening.CreateTopic(ctx, &entities.Topic{
			Category: entities.TopicCategoryAcademic,
			Title:    "Orphan",
			Content:  "No exam",
			ExamID:   missing,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Exam not found. Exam ID: " + missing.String()}, problemTitles(res))
		assert.ErrorIs(t, res.Err(), result.ErrNotFound)
	})

	t.Run("duplicate topic id", func(t *testing.T) {
		topic := &entities.Topic{
			ID:       uuid.New(),
			Category: entities.TopicCategoryAcademic,
			Title:    "Twice",
			Content:  "Twice",
			ExamID:   exam.ID,
		}
		first, err := svc.listening.CreateTopic(ctx, topic)
		mustOk(t, first, err)

		res, err := svc.listening.CreateTopic(ctx, topic)

		require.NoError(t, err)
		assert.Equal(t, []string{"Failed to add new listening topic."}, problemTitles(res))
	})
}

func TestGetTopicWithQuestions_Missing(t *testing.T) {
	svc, cleanup := setupTestDB(t)
	defer cleanup()
	missing := uuid.New()

	res, err := svc.listening.GetTopicWithQuestions(context.Background(), missing)

	require.NoError(t, err)
	assert.Equal(t, []string{"ListeningTopic not found. ListeningTopic ID: " + missing.String()}, problemTitles(res))
}

func TestListExamTopics(t *testing.T) {
	svc, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	exam := createExam(t, svc)

	created, err := svc.listening.CreateTopic(ctx, &entities.Topic{
		Category:  entities.TopicCategoryAcademic,
		Title:     "Section 1",
		Content:   "Booking a hotel",
		ExamID:    exam.ID,
		Questions: []entities.Question{{Content: "Name of the guest?"}},
	})
	mustOk(t, created, err)

	plain, err := svc.listening.ListExamTopics(ctx, exam.ID, false)
	got := mustOk(t, plain, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Questions)

	hydrated, err := svc.listening.ListExamTopics(ctx, exam.ID, true)
	got = mustOk(t, hydrated, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Questions, 1)
}

func TestExamQueries(t *testing.T) {
	svc, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	exam := createExam(t, svc)

	created, err := svc.writing.CreateTopic(ctx, &entities.Topic{
		Category:  entities.TopicCategoryAcademic,
		Title:     "Task 1",
		Content:   "Describe the chart.",
		ExamID:    exam.ID,
		Questions: []entities.Question{{Content: "Summarise the information."}},
	})
	mustOk(t, created, err)

	t.Run("overview", func(t *testing.T) {
		res, err := svc.exams.GetExam(ctx, exam.ID)

		got := mustOk(t, res, err)
		require.Len(t, got.WritingTopics, 1)
		assert.Nil(t, got.WritingTopics[0].Questions)
	})

	t.Run("skill topics", func(t *testing.T) {
		res, err := svc.exams.GetExamSkillTopics(ctx, exam.ID, entities.SkillWriting)

		got := mustOk(t, res, err)
		require.Len(t, got.WritingTopics, 1)
		assert.Len(t, got.WritingTopics[0].Questions, 1)
	})

	t.Run("invalid skill", func(t *testing.T) {
		res, err := svc.exams.GetExamSkillTopics(ctx, exam.ID, entities.Skill("cooking"))

		require.NoError(t, err)
		assert.ErrorIs(t, res.Err(), result.ErrValidation)
	})

	t.Run("list", func(t *testing.T) {
		res, err := svc.exams.ListExams(ctx)

		got := mustOk(t, res, err)
		require.Len(t, got, 1)
		assert.Equal(t, exam.ID, got[0].ID)
	})
}
