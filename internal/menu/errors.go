package menu

import "fmt"

const exitCodeInputFailure = 1

// ParseError reports a line that is not an integer. The loop recovers by
// prompting again.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid input %q: not a number", e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

// OutOfRangeError reports an integer outside 0..Max. The loop recovers by
// prompting again.
type OutOfRangeError struct {
	Choice int
	Max    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("choice %d out of range 0..%d", e.Choice, e.Max)
}

// InputStreamError reports an unrecoverable read failure on the input.
// It ends the session with a non-zero exit code.
type InputStreamError struct {
	Err error
}

func (e *InputStreamError) Error() string {
	return "failed to read input: " + e.Err.Error()
}

func (e *InputStreamError) Unwrap() error { return e.Err }

func (e *InputStreamError) ExitCode() int { return exitCodeInputFailure }
