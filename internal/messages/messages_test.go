package messages

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFailedTo(t *testing.T) {
	assert.Equal(t, "Failed to add new listening topic.", FailedTo("add new listening topic"))
	assert.Equal(t, "Failed to get listening topic content.", FailedTo("get listening topic content"))
}

func TestFieldMessages(t *testing.T) {
	assert.Equal(t, "Title cannot be null.", FieldCannotBeNull("Title"))
	assert.Equal(t, "Title cannot be empty.", FieldCannotBeEmpty("Title"))
}

func TestUnexpectedErrorDuring(t *testing.T) {
	assert.Equal(t,
		"Unexpected error happened during topic import. Please contact the support team.",
		UnexpectedErrorDuring("topic import"),
	)
}

func TestRecordNotFoundWithID(t *testing.T) {
	id := uuid.MustParse("6f1c1f36-3d4e-4c55-9d55-3c0e2f7b8a10")

	msg := RecordNotFoundWithID("ListeningTopic", id)

	assert.Equal(t, "ListeningTopic not found. ListeningTopic ID: 6f1c1f36-3d4e-4c55-9d55-3c0e2f7b8a10", msg)
}
