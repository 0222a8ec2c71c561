package services

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/learningmate/examstore/internal/messages"
	"github.com/learningmate/examstore/internal/result"
)

var validate = validator.New()

// validationProblems runs struct-tag validation on v and converts every field
// error into a Validation problem. A nil return means v is valid.
func validationProblems(v any) []result.Problem {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []result.Problem{result.Validation(messages.MakeSureAllRequiredFieldsAreProperlyEntered)}
	}

	problems := make([]result.Problem, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		title := messages.MakeSureAllRequiredFieldsAreProperlyEntered
		if fe.Tag() == "required" {
			title = messages.FieldCannotBeEmpty(fe.Field())
		}
		problems = append(problems, result.Validation(title).
			With("field", fe.Namespace()).
			With("rule", fe.Tag()))
	}
	return problems
}

// nullProblem reports a missing input object.
func nullProblem(name string) result.Problem {
	return result.Validation(messages.FieldCannotBeNull(name)).With("field", name)
}
