package topics

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"github.com/learningmate/examstore/internal/entities"
)

// decodeAnswerOptions turns the raw column into an ordered list. NULL, blank
// and malformed input all decode to an empty, non-nil list.
func decodeAnswerOptions(raw *datatypes.JSON) []entities.AnswerOption {
	options := []entities.AnswerOption{}
	if raw == nil || strings.TrimSpace(string(*raw)) == "" {
		return options
	}
	var decoded []entities.AnswerOption
	if err := json.Unmarshal(*raw, &decoded); err != nil || decoded == nil {
		return options
	}
	return decoded
}

// encodeAnswerOptions is the inverse of decodeAnswerOptions. An empty list is
// stored as NULL.
func encodeAnswerOptions(options []entities.AnswerOption) (*datatypes.JSON, error) {
	if len(options) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	raw := datatypes.JSON(data)
	return &raw, nil
}
