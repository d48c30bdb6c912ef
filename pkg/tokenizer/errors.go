package tokenizer

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned when the rule inputs cannot produce a lexer,
	// for example when the open and close paren lists are not index-aligned.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrLex is returned when no token rule matches the input at some offset.
	ErrLex = errors.New("no token rule matched")
)
