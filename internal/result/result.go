// Package result provides the two-state outcome returned by every
// data-access operation.
//
// A Result is either Ok, holding a value, or Err, holding a non-empty ordered
// list of Problems. It is built once and never changes afterwards.
//
// Expected domain conditions (record not found, a write that touched no rows,
// invalid input) are reported as Err results. Faults that prevent the
// operation from running at all (driver errors, a cancelled context) are not
// folded into a Result: repository methods return them as a separate error.
//
// # Usage
//
//	res, err := repo.GetTopicByID(ctx, id)
//	if err != nil {
//		return err // could not run
//	}
//	topic, ok := res.Value()
//	if !ok {
//		return res.Problems() // ran, logically failed
//	}
package result

import (
	"errors"
	"slices"

	"github.com/learningmate/examstore/internal/messages"
)

// Result is a sealed success/failure outcome. The zero value is an Err.
type Result[T any] struct {
	value    T
	problems []Problem
	ok       bool
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err builds a failed result. Calling it with no problems still yields a
// failure carrying one unexpected-error problem.
func Err[T any](problems ...Problem) Result[T] {
	if len(problems) == 0 {
		problems = []Problem{defaultProblem()}
	}
	return Result[T]{problems: slices.Clone(problems)}
}

// Forward re-types a failed result, keeping its problems. Forwarding an Ok
// result is a programming error and yields an unexpected-error failure.
func Forward[U, T any](r Result[T]) Result[U] {
	if r.ok {
		return Err[U](Unexpected(messages.UnexpectedErrorDuring("result forwarding")))
	}
	return Err[U](r.Problems()...)
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// ValueOr returns the success value or fallback.
func (r Result[T]) ValueOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// Problems returns a copy of the failure list; nil for Ok.
func (r Result[T]) Problems() []Problem {
	if r.ok {
		return nil
	}
	if len(r.problems) == 0 {
		return []Problem{defaultProblem()}
	}
	return slices.Clone(r.problems)
}

// FirstProblem returns the first problem of an Err result.
func (r Result[T]) FirstProblem() (Problem, bool) {
	if r.ok {
		return Problem{}, false
	}
	return r.Problems()[0], true
}

// Err joins the problems into a single error, or returns nil for Ok.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	problems := r.Problems()
	errs := make([]error, len(problems))
	for i, p := range problems {
		errs[i] = p
	}
	return errors.Join(errs...)
}

// Match calls exactly one of onOk or onErr.
func (r Result[T]) Match(onOk func(T), onErr func([]Problem)) {
	if r.ok {
		onOk(r.value)
		return
	}
	onErr(r.Problems())
}

// Map transforms the value of an Ok result.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Forward[U](r)
	}
	return Ok(fn(r.value))
}

// Bind chains an operation that itself returns a Result.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.ok {
		return Forward[U](r)
	}
	return fn(r.value)
}

func defaultProblem() Problem {
	return Unexpected(messages.UnexpectedErrorDuring("request processing"))
}
