package demo

import (
	"context"
	"fmt"

	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/result"
)

// ExamCreator stores exams.
type ExamCreator interface {
	CreateExam(ctx context.Context, exam *entities.Exam) (result.Result[entities.Exam], error)
}

// TopicCreator stores the topics of one skill.
type TopicCreator interface {
	Skill() entities.Skill
	CreateTopic(ctx context.Context, topic *entities.Topic) (result.Result[entities.Topic], error)
}

// Summary counts what Seed stored.
type Summary struct {
	Exam      entities.Exam
	Topics    int
	Questions int
}

// Seed stores one practice exam with sample topics for every skill that has
// a creator.
func Seed(ctx context.Context, exams ExamCreator, topics []TopicCreator) (Summary, error) {
	res, err := exams.CreateExam(ctx, &entities.Exam{Title: "Practice Test 1"})
	if err != nil {
		return Summary{}, err
	}
	exam, ok := res.Value()
	if !ok {
		return Summary{}, fmt.Errorf("failed to create demo exam: %w", res.Err())
	}

	summary := Summary{Exam: exam}
	content := sampleTopics()
	for _, creator := range topics {
		for _, topic := range content[creator.Skill()] {
			topic.ExamID = exam.ID
			res, err := creator.CreateTopic(ctx, &topic)
			if err != nil {
				return summary, err
			}
			created, ok := res.Value()
			if !ok {
				return summary, fmt.Errorf("failed to create demo %s %q: %w", creator.Skill().Noun(), topic.Title, res.Err())
			}
			summary.Topics++
			summary.Questions += len(created.Questions)
		}
	}
	return summary, nil
}

func options(correct int, values ...string) []entities.AnswerOption {
	out := make([]entities.AnswerOption, len(values))
	for i, v := range values {
		out[i] = entities.AnswerOption{Value: v, IsCorrect: i == correct, Order: i + 1}
	}
	return out
}

func sampleTopics() map[entities.Skill][]entities.Topic {
	return map[entities.Skill][]entities.Topic{
		entities.SkillListening: {
			{
				Category:  entities.TopicCategoryGeneralTraining,
				Title:     "Section 1: Booking a Holiday Cottage",
				Content:   "A woman phones a letting agency to ask about renting a cottage for a week in August.",
				ScoreBand: "5.0-6.0",
				Score:     5.5,
				Questions: []entities.Question{
					{Content: "How many bedrooms does the cottage have?", AnswerOptions: options(1, "Two", "Three", "Four")},
					{Content: "What is the weekly rent in August?", AnswerOptions: options(2, "£350", "£400", "£450")},
					{Content: "Write the name of the nearest village."},
				},
			},
			{
				Category:  entities.TopicCategoryAcademic,
				Title:     "Section 4: The History of Glass",
				Content:   "A lecture on how glass-making techniques spread across the ancient world.",
				ScoreBand: "7.0-8.0",
				Score:     7.5,
				Questions: []entities.Question{
					{Content: "Where was glass first produced deliberately?", AnswerOptions: options(0, "Mesopotamia", "Egypt", "Rome")},
					{Content: "Which invention made glass cheaper to produce?", AnswerOptions: options(1, "The kiln", "Glassblowing", "Moulding")},
				},
			},
		},
		entities.SkillReading: {
			{
				Category:  entities.TopicCategoryAcademic,
				Title:     "Passage 1: Urban Beekeeping",
				Content:   "Cities are becoming unlikely refuges for honeybees as rooftop hives multiply across Europe.",
				ScoreBand: "6.0-7.0",
				Score:     6.5,
				Questions: []entities.Question{
					{Content: "Urban hives produce less honey than rural ones.", AnswerOptions: options(1, "True", "False", "Not Given")},
					{Content: "Rooftop hives were first installed in Paris.", AnswerOptions: options(2, "True", "False", "Not Given")},
				},
			},
		},
		entities.SkillWriting: {
			{
				Category:  entities.TopicCategoryAcademic,
				Title:     "Task 1: Household Energy Use",
				Content:   "The chart shows how energy is used in an average Australian household. Summarise the information.",
				ScoreBand: "6.0",
				Score:     6,
			},
			{
				Category:  entities.TopicCategoryGeneralTraining,
				Title:     "Task 2: Working From Home",
				Content:   "Some people believe working from home benefits both employees and employers. To what extent do you agree?",
				ScoreBand: "6.5",
				Score:     6.5,
			},
		},
		entities.SkillSpeaking: {
			{
				Category:  entities.TopicCategoryGeneralTraining,
				Title:     "Part 2: A Memorable Journey",
				Content:   "Describe a journey you remember well.",
				ScoreBand: "6.0-7.0",
				Score:     6.5,
				Questions: []entities.Question{
					{Content: "Where did you go?"},
					{Content: "Who did you travel with?"},
					{Content: "Why was it memorable?"},
				},
			},
		},
	}
}
