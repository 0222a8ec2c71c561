package entities

import (
	"fmt"
	"strings"
)

// Skill is one of the four exam skills. Every skill stores its topics in its
// own pair of tables with identical shape.
type Skill string

const (
	SkillListening Skill = "listening"
	SkillReading   Skill = "reading"
	SkillWriting   Skill = "writing"
	SkillSpeaking  Skill = "speaking"
)

// Skills lists every skill in display order.
var Skills = []Skill{SkillListening, SkillReading, SkillWriting, SkillSpeaking}

// ParseSkill accepts a skill name in any letter case.
func ParseSkill(s string) (Skill, error) {
	skill := Skill(strings.ToLower(strings.TrimSpace(s)))
	if !skill.Valid() {
		return "", fmt.Errorf("unknown skill %q", s)
	}
	return skill, nil
}

func (s Skill) Valid() bool {
	switch s {
	case SkillListening, SkillReading, SkillWriting, SkillSpeaking:
		return true
	}
	return false
}

// TopicsTable is e.g. "listening_topics".
func (s Skill) TopicsTable() string {
	return string(s) + "_topics"
}

// QuestionsTable is e.g. "listening_topic_questions".
func (s Skill) QuestionsTable() string {
	return string(s) + "_topic_questions"
}

// EntityName is the type name used in not-found messages, e.g. "ListeningTopic".
func (s Skill) EntityName() string {
	if s == "" {
		return "Topic"
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:]) + "Topic"
}

// Noun is the lower-case phrase used in failure messages, e.g. "listening topic".
func (s Skill) Noun() string {
	return string(s) + " topic"
}
