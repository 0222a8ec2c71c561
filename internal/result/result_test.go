package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	r := Ok(1)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Nil(t, r.Problems())
	assert.NoError(t, r.Err())
}

func TestErr(t *testing.T) {
	r := Err[int](NotFound("Exam not found."), Unexpected("second"))

	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	v, ok := r.Value()
	assert.False(t, ok)
	assert.Zero(t, v)

	problems := r.Problems()
	require.Len(t, problems, 2)
	assert.Equal(t, "Exam not found.", problems[0].Title)
	assert.Equal(t, KindNotFound, problems[0].Kind)
	assert.Equal(t, "second", problems[1].Title)
}

func TestErr_WithoutProblemsStillFails(t *testing.T) {
	r := Err[string]()

	assert.True(t, r.IsErr())
	require.Len(t, r.Problems(), 1)
	assert.Equal(t, KindUnexpected, r.Problems()[0].Kind)
}

func TestZeroValueIsErr(t *testing.T) {
	var r Result[bool]

	assert.True(t, r.IsErr())
	assert.Len(t, r.Problems(), 1)
	assert.Error(t, r.Err())
}

func TestProblemsReturnsCopy(t *testing.T) {
	r := Err[int](NotFound("a"))

	problems := r.Problems()
	problems[0].Title = "mutated"

	assert.Equal(t, "a", r.Problems()[0].Title)
}

func TestErr_DoesNotAliasCallerSlice(t *testing.T) {
	input := []Problem{NotFound("a")}
	r := Err[int](input...)

	input[0].Title = "mutated"

	assert.Equal(t, "a", r.Problems()[0].Title)
}

func TestFirstProblem(t *testing.T) {
	p, ok := Err[int](WriteIneffective("Failed to add new exam.")).FirstProblem()
	assert.True(t, ok)
	assert.Equal(t, "Failed to add new exam.", p.Title)

	_, ok = Ok(3).FirstProblem()
	assert.False(t, ok)
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, 5, Ok(5).ValueOr(7))
	assert.Equal(t, 7, Err[int](NotFound("x")).ValueOr(7))
}

func TestErr_MatchesSentinelsByKind(t *testing.T) {
	err := Err[int](NotFound("ListeningTopic not found.")).Err()

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrWriteIneffective))
	assert.Equal(t, "ListeningTopic not found.", err.Error())
}

func TestMatch(t *testing.T) {
	var gotValue int
	var gotProblems []Problem

	Ok(4).Match(func(v int) { gotValue = v }, func(p []Problem) { gotProblems = p })
	assert.Equal(t, 4, gotValue)
	assert.Nil(t, gotProblems)

	Err[int](Validation("bad")).Match(func(v int) { gotValue = -1 }, func(p []Problem) { gotProblems = p })
	assert.Equal(t, 4, gotValue)
	require.Len(t, gotProblems, 1)
	assert.Equal(t, "bad", gotProblems[0].Title)
}

func TestMapAndBind(t *testing.T) {
	mapped := Map(Ok(12), strconv.Itoa)
	v, ok := mapped.Value()
	require.True(t, ok)
	assert.Equal(t, "12", v)

	failed := Map(Err[int](NotFound("missing")), strconv.Itoa)
	assert.True(t, failed.IsErr())
	assert.Equal(t, "missing", failed.Problems()[0].Title)

	bound := Bind(Ok(2), func(n int) Result[int] {
		if n > 1 {
			return Err[int](Validation("too big"))
		}
		return Ok(n)
	})
	assert.True(t, bound.IsErr())
	assert.Equal(t, KindValidation, bound.Problems()[0].Kind)
}

func TestForward(t *testing.T) {
	forwarded := Forward[string](Err[int](NotFound("gone")))
	require.True(t, forwarded.IsErr())
	assert.Equal(t, "gone", forwarded.Problems()[0].Title)

	misuse := Forward[string](Ok(1))
	assert.True(t, misuse.IsErr())
	assert.Equal(t, KindUnexpected, misuse.Problems()[0].Kind)
}

func TestProblemWith(t *testing.T) {
	base := NotFound("gone")
	withID := base.With("id", "42")
	withBoth := withID.With("entity", "Exam")

	assert.Nil(t, base.Metadata)
	assert.Equal(t, map[string]any{"id": "42"}, withID.Metadata)
	assert.Equal(t, map[string]any{"id": "42", "entity": "Exam"}, withBoth.Metadata)
}
