package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learningmate/examstore/internal/result"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeProblems(t *testing.T, w *httptest.ResponseRecorder) []result.Problem {
	t.Helper()
	var body ProblemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Errors
}

func TestParseIDParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	want := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: want.String()}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, want, id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseIDParam_Invalid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	id, ok := parseIDParam(c, "id")

	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	problems := decodeProblems(t, w)
	require.Len(t, problems, 1)
	assert.Equal(t, "Invalid ID format.", problems[0].Title)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		problems []result.Problem
		want     int
	}{
		{"not found", []result.Problem{result.NotFound("x")}, http.StatusNotFound},
		{"validation", []result.Problem{result.Validation("x")}, http.StatusBadRequest},
		{"write ineffective", []result.Problem{result.WriteIneffective("x")}, http.StatusUnprocessableEntity},
		{"unexpected", []result.Problem{result.Unexpected("x")}, http.StatusInternalServerError},
		{"leading problem decides", []result.Problem{result.Validation("x"), result.NotFound("y")}, http.StatusBadRequest},
		{"none", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.problems))
		})
	}
}

func TestRespond(t *testing.T) {
	t.Run("ok value", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respond(c, zerolog.Nop(), http.StatusCreated, result.Ok(map[string]int{"n": 1}), nil, "test")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"n":1}`, w.Body.String())
	})

	t.Run("failed result", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respond(c, zerolog.Nop(), http.StatusOK, result.Err[int](result.NotFound("Exam not found.").With("id", "1")), nil, "test")

		assert.Equal(t, http.StatusNotFound, w.Code)
		problems := decodeProblems(t, w)
		require.Len(t, problems, 1)
		assert.Equal(t, result.KindNotFound, problems[0].Kind)
		assert.Equal(t, "Exam not found.", problems[0].Title)
		assert.Equal(t, "1", problems[0].Metadata["id"])
	})

	t.Run("infrastructure error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respond(c, zerolog.Nop(), http.StatusOK, result.Ok(1), errors.New("disk on fire"), "exam retrieval")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk on fire")
		problems := decodeProblems(t, w)
		require.Len(t, problems, 1)
		assert.Equal(t, "Unexpected error happened during exam retrieval. Please contact the support team.", problems[0].Title)
	})
}
