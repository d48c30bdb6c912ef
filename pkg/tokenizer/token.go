package tokenizer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type (
	// Token is a classified slice of the input. Text is always the exact input
	// text, including the original case and any embedded whitespace.
	Token struct {
		Kind   Kind
		Text   string
		Offset int
	}

	// Tokens is an ordered token stream.
	Tokens []Token
)

// Is reports whether the token has the given kind and, ignoring case and
// inner whitespace runs, the given text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Equal(text)
}

// Equal compares the token text to s, ignoring case and treating any run of
// whitespace as a single space. "group  by" equals "GROUP BY".
func (t Token) Equal(s string) bool {
	return strings.EqualFold(Collapse(t.Text), Collapse(s))
}

// Len is the rendered length of the token text in runes.
func (t Token) Len() int {
	return utf8.RuneCountInString(t.Text)
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// String joins the token texts, reproducing the tokenized input.
func (ts Tokens) String() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(t.Text)
	}

	return sb.String()
}

// Collapse replaces every run of whitespace in s with a single space.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
