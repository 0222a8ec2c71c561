package topics

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/learningmate/examstore/internal/entities"
)

var (
	// ErrSplitColumnMissing means a joined row set has no column where the
	// question side starts.
	ErrSplitColumnMissing = errors.New("split column not found in joined row set")

	// ErrUnexpectedRowShape means the columns on either side of the split do
	// not match the topic and question scan targets.
	ErrUnexpectedRowShape = errors.New("joined row set has unexpected shape")
)

const (
	splitColumn         = "id"
	topicColumnCount    = 7
	questionColumnCount = 3
)

// joinedRow is one row of the topic ⟕ question join. question is nil when the
// left join found no question for the topic.
type joinedRow struct {
	topic    entities.Topic
	question *entities.Question
}

// splitOn returns the index of the first column named col after position 0.
// The parent entity owns the columns before it, the child the rest.
func splitOn(columns []string, col string) (int, error) {
	for i := 1; i < len(columns); i++ {
		if strings.EqualFold(columns[i], col) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q in %v", ErrSplitColumnMissing, col, columns)
}

// readJoinedRows scans every row of a topic/question join, in arrival order.
func readJoinedRows(rows *sql.Rows) ([]joinedRow, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	split, err := splitOn(columns, splitColumn)
	if err != nil {
		return nil, err
	}
	if split != topicColumnCount || len(columns)-split != questionColumnCount {
		return nil, fmt.Errorf("%w: %d topic columns, %d question columns",
			ErrUnexpectedRowShape, split, len(columns)-split)
	}

	var out []joinedRow
	for rows.Next() {
		var (
			topic           entities.Topic
			questionID      uuid.NullUUID
			questionContent sql.NullString
			rawOptions      sql.NullString
		)
		err := rows.Scan(
			&topic.ID, &topic.Category, &topic.Title, &topic.Content,
			&topic.ScoreBand, &topic.Score, &topic.ExamID,
			&questionID, &questionContent, &rawOptions,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan joined row: %w", err)
		}

		row := joinedRow{topic: topic}
		if questionID.Valid {
			row.question = &entities.Question{
				ID:      questionID.UUID,
				TopicID: topic.ID,
				Content: questionContent.String,
			}
			// Scanning into datatypes.JSON would reject malformed
			// documents; keep them raw and let decoding fall back.
			if rawOptions.Valid {
				raw := datatypes.JSON(rawOptions.String)
				row.question.SerializedAnswerOptions = &raw
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// hydrateTopic folds the rows of a single-topic join into one topic. The
// first row fixes the topic's scalars; every row may contribute a question.
// No rows means no topic.
func hydrateTopic(rows []joinedRow) (entities.Topic, bool) {
	if len(rows) == 0 {
		return entities.Topic{}, false
	}

	topic := rows[0].topic
	seen := make(map[uuid.UUID]struct{})
	for _, row := range rows {
		topic.Questions = appendQuestion(topic.Questions, row.question, seen)
	}
	return topic, true
}

// hydrateTopics folds a multi-topic join, grouping rows by topic identity.
// Topics come out in the order they were first seen.
func hydrateTopics(rows []joinedRow) []entities.Topic {
	topics := []entities.Topic{}
	index := make(map[uuid.UUID]int)
	seen := make(map[uuid.UUID]struct{})
	for _, row := range rows {
		i, ok := index[row.topic.ID]
		if !ok {
			i = len(topics)
			index[row.topic.ID] = i
			topics = append(topics, row.topic)
		}
		topics[i].Questions = appendQuestion(topics[i].Questions, row.question, seen)
	}
	return topics
}

// appendQuestion decodes q's answer options and appends it, unless q is nil
// or its identity was already appended.
func appendQuestion(questions []entities.Question, q *entities.Question, seen map[uuid.UUID]struct{}) []entities.Question {
	if q == nil {
		return questions
	}
	if _, dup := seen[q.ID]; dup {
		return questions
	}
	seen[q.ID] = struct{}{}

	question := *q
	question.AnswerOptions = decodeAnswerOptions(q.SerializedAnswerOptions)
	return append(questions, question)
}
