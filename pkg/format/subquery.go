package format

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
)

// subQuery tracks symbol parens to find where a CTE definition
// ("name AS (...)") ends. Word parens such as CASE/END are not tracked.
type subQuery struct {
	opens  map[string]int
	closes map[string]int
	stack  []string

	// started is set by the formatter when "(" follows AS and cleared once the
	// paren stack is empty again.
	started bool
}

func newSubQuery(openParens, closeParens []string) *subQuery {
	s := &subQuery{
		opens:  make(map[string]int),
		closes: make(map[string]int),
	}

	for i := range openParens {
		if !tokenizer.IsSymbolParen(openParens[i]) {
			continue
		}

		if _, ok := s.opens[openParens[i]]; !ok {
			s.opens[openParens[i]] = i
		}

		if _, ok := s.closes[closeParens[i]]; !ok {
			s.closes[closeParens[i]] = i
		}
	}

	return s
}

// update pushes open parens and pops close parens. A close paren that does not
// pair with the innermost open paren is an ErrUnmatchedParens.
func (s *subQuery) update(tok tokenizer.Token) error {
	if _, ok := s.opens[tok.Text]; ok {
		s.stack = append(s.stack, tok.Text)
		return nil
	}

	want, ok := s.closes[tok.Text]
	if !ok {
		return nil
	}

	if len(s.stack) == 0 {
		return errors.Wrapf(ErrUnmatchedParens, "unexpected %q at offset %d", tok.Text, tok.Offset)
	}

	top := s.stack[len(s.stack)-1]
	if s.opens[top] != want {
		return errors.Wrapf(ErrUnmatchedParens, "%q closed by %q at offset %d", top, tok.Text, tok.Offset)
	}

	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// closed reports whether a started definition has just been closed.
func (s *subQuery) closed() bool {
	return s.started && len(s.stack) == 0
}
