package messages

// Log messages. Keep them constant so entries can be grouped by message.
const (
	LogFailedToCreate              = "failed to create record"
	LogRecordNotFoundWithID        = "record not found"
	LogFailedToPerformActionWithID = "failed to perform action"
	LogValidationFailed            = "validation failed"
	LogRecordsSkipped              = "existing records skipped"
)

// Structured field keys attached to log entries.
const (
	FieldAction    = "action"
	FieldEntity    = "entity"
	FieldID        = "id"
	FieldComponent = "component"
	FieldSkill     = "skill"
	FieldSkipped   = "skipped"
)
