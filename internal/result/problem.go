package result

import "maps"

// Kind classifies a Problem so adapters can react to it without parsing text.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindWriteIneffective Kind = "write_ineffective"
	KindValidation       Kind = "validation"
	KindUnexpected       Kind = "unexpected"
)

// Sentinels for errors.Is matching against Result.Err().
var (
	ErrNotFound         = Problem{Kind: KindNotFound}
	ErrWriteIneffective = Problem{Kind: KindWriteIneffective}
	ErrValidation       = Problem{Kind: KindValidation}
	ErrUnexpected       = Problem{Kind: KindUnexpected}
)

// Problem is a structured failure in the ProblemDetails shape: a
// human-readable title plus optional context.
type Problem struct {
	Kind     Kind           `json:"kind"`
	Title    string         `json:"title"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func NotFound(title string) Problem {
	return Problem{Kind: KindNotFound, Title: title}
}

func WriteIneffective(title string) Problem {
	return Problem{Kind: KindWriteIneffective, Title: title}
}

func Validation(title string) Problem {
	return Problem{Kind: KindValidation, Title: title}
}

func Unexpected(title string) Problem {
	return Problem{Kind: KindUnexpected, Title: title}
}

// Error makes Problem usable wherever an error is expected.
func (p Problem) Error() string {
	return p.Title
}

// Is reports whether target is a Problem of the same Kind. Titles and
// metadata are ignored, so the Err* sentinels match any problem of their kind.
func (p Problem) Is(target error) bool {
	t, ok := target.(Problem)
	return ok && t.Kind == p.Kind
}

// With returns a copy of p with key set in its metadata.
func (p Problem) With(key string, value any) Problem {
	md := make(map[string]any, len(p.Metadata)+1)
	maps.Copy(md, p.Metadata)
	md[key] = value
	p.Metadata = md
	return p
}
