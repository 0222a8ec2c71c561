package topics

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/learningmate/examstore/internal/entities"
)

// Table names come from entities.Skill, never from user input.

func insertTopicSQL(skill entities.Skill) string {
	return fmt.Sprintf(`
		INSERT INTO %s
			(id, category, title, content, score_band, score, exam_id)
		VALUES
			(@id, @category, @title, @content, @score_band, @score, @exam_id)
		ON CONFLICT (id) DO NOTHING`, skill.TopicsTable())
}

func insertQuestionSQL(skill entities.Skill) string {
	return fmt.Sprintf(`
		INSERT INTO %s
			(id, topic_id, content, serialized_answer_options)
		VALUES
			(@id, @topic_id, @content, @serialized_answer_options)
		ON CONFLICT (id) DO NOTHING`, skill.QuestionsTable())
}

func topicExistsSQL(skill entities.Skill) string {
	return fmt.Sprintf(`SELECT COUNT(DISTINCT 1) FROM %s WHERE id = @topicId`, skill.TopicsTable())
}

func topicByIDSQL(skill entities.Skill) string {
	return fmt.Sprintf(`
		SELECT id, category, title, content, score_band, score, exam_id
		FROM %s
		WHERE id = @id`, skill.TopicsTable())
}

// Same topic order as topicsWithQuestionsByExamSQL.
func topicsByExamSQL(skill entities.Skill) string {
	return fmt.Sprintf(`
		SELECT id, category, title, content, score_band, score, exam_id
		FROM %s
		WHERE exam_id = @examId
		ORDER BY title, id`, skill.TopicsTable())
}

// The topic columns must come first and the question side must start with
// its id column: readJoinedRows splits each row there.
const joinSelect = `
		SELECT
			t.id, t.category, t.title, t.content, t.score_band, t.score, t.exam_id,
			q.id, q.content, q.serialized_answer_options
		FROM %s t
		LEFT JOIN %s q ON t.id = q.topic_id`

func topicWithQuestionsSQL(skill entities.Skill) string {
	return fmt.Sprintf(joinSelect, skill.TopicsTable(), skill.QuestionsTable()) + `
		WHERE t.id = @id`
}

func topicsWithQuestionsByExamSQL(skill entities.Skill) string {
	return fmt.Sprintf(joinSelect, skill.TopicsTable(), skill.QuestionsTable()) + `
		WHERE t.exam_id = @examId
		ORDER BY t.title, t.id, q.rowid`
}

// QueryTopicsByExam loads the scalar fields of every topic of one exam on an
// already acquired connection. Exams use it to build overviews.
func QueryTopicsByExam(conn *gorm.DB, skill entities.Skill, examID uuid.UUID) ([]entities.Topic, error) {
	topics := []entities.Topic{}
	err := conn.Raw(topicsByExamSQL(skill), sql.Named("examId", examID)).Scan(&topics).Error
	if err != nil {
		return nil, err
	}
	for i := range topics {
		topics[i].Skill = skill
	}
	return topics, nil
}

// QueryTopicsWithQuestionsByExam loads and hydrates every topic of one exam
// together with its questions, in a single round trip.
func QueryTopicsWithQuestionsByExam(conn *gorm.DB, skill entities.Skill, examID uuid.UUID) ([]entities.Topic, error) {
	rows, err := conn.Raw(topicsWithQuestionsByExamSQL(skill), sql.Named("examId", examID)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	joined, err := readJoinedRows(rows)
	if err != nil {
		return nil, err
	}
	topics := hydrateTopics(joined)
	for i := range topics {
		topics[i].Skill = skill
	}
	return topics, nil
}
