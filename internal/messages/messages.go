// Package messages holds the canonical wording used across repositories and
// services, so that the same failure reads the same no matter where it is
// detected.
//
// Error messages are returned to callers inside result.Problem values. Log
// messages are the constant Msg() text of zerolog entries; the variable parts
// travel as structured fields (see the Field* keys).
package messages

import "fmt"

const (
	UnableToIdentifyUser                        = "Unable to identify user."
	InvalidIDFormat                             = "Invalid ID format."
	MakeSureAllRequiredFieldsAreProperlyEntered = "Make sure all required fields are properly entered."
)

// FailedTo formats the generic failure message, e.g. "Failed to add new listening topic."
func FailedTo(action string) string {
	return fmt.Sprintf("Failed to %s.", action)
}

func FieldCannotBeNull(fieldName string) string {
	return fmt.Sprintf("%s cannot be null.", fieldName)
}

func FieldCannotBeEmpty(fieldName string) string {
	return fmt.Sprintf("%s cannot be empty.", fieldName)
}

func UnexpectedErrorDuring(processName string) string {
	return fmt.Sprintf("Unexpected error happened during %s. Please contact the support team.", processName)
}

// RecordNotFoundWithID formats "<type> not found. <type> ID: <id>".
func RecordNotFoundWithID(recordType string, recordID any) string {
	return fmt.Sprintf("%s not found. %s ID: %v", recordType, recordType, recordID)
}
