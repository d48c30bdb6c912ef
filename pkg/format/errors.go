package format

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
)

var (
	// ErrInvalidConfig is returned by New when a Config cannot be used, such as
	// open and close paren lists that are not index-aligned.
	ErrInvalidConfig = tokenizer.ErrInvalidConfig

	// ErrUnmatchedParens is returned by Format when a closing paren has no
	// matching opening paren. No partial output is produced.
	ErrUnmatchedParens = errors.New("parentheses not matched")

	// ErrLex is returned when the tokenizer cannot classify the input.
	ErrLex = tokenizer.ErrLex
)
