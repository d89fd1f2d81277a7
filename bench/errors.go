package bench

import "errors"

var (
	// ErrOptionViolation indicates an invalid Runner option.
	ErrOptionViolation = errors.New("bench: invalid option supplied")

	// ErrUnknownAlgorithm indicates a name not present in the registry.
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

	// ErrNoCases indicates Run was called without any case.
	ErrNoCases = errors.New("bench: no cases to run")

	// ErrDuplicateCase indicates two cases share a name.
	ErrDuplicateCase = errors.New("bench: duplicate case name")

	// ErrInvalidUTF8 indicates a text file that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("bench: text is not valid UTF-8")

	// ErrInvalidSuite indicates a malformed suite file.
	ErrInvalidSuite = errors.New("bench: invalid suite")
)
