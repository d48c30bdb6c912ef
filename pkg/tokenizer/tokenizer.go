package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Tokenizer splits query text into a lossless token stream. It is compiled
// once from a set of Rules and is safe for concurrent use.
type Tokenizer struct {
	def   *lexer.StatefulDefinition
	kinds map[lexer.TokenType]Kind
}

// New validates the rules and compiles them into a stateful lexer.
//
// Rules are tried in order at each position and the first match wins:
//
//	whitespace, line comment, block comment, string, open paren, close paren,
//	number, top-level keyword, newline keyword, non-indenting top-level
//	keyword, reserved keyword, keyword, word, ".", operator
//
// After a "." the lexer switches to a state without keyword and word paren
// rules, so qualified names such as t.from or t.end are words.
func New(r Rules) (*Tokenizer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	root := r.rootRules()
	qualified := r.qualifiedRules()

	names := make(map[string]Kind, len(root)+len(qualified))
	rules := lexer.Rules{
		stateRoot:      make([]lexer.Rule, 0, len(root)),
		stateQualified: make([]lexer.Rule, 0, len(qualified)),
	}

	for _, rl := range root {
		var action lexer.Action
		if rl.name == "Dot" {
			action = lexer.Push(stateQualified)
		}

		names[rl.name] = rl.kind
		rules[stateRoot] = append(rules[stateRoot], lexer.Rule{Name: rl.name, Pattern: rl.pattern, Action: action})
	}

	for _, rl := range qualified {
		var action lexer.Action
		if rl.name != stateQualified+"Dot" {
			action = lexer.Pop()
		}

		names[rl.name] = rl.kind
		rules[stateQualified] = append(rules[stateQualified], lexer.Rule{Name: rl.name, Pattern: rl.pattern, Action: action})
	}

	def, err := lexer.New(rules)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "failed to compile lexer: %v", err)
	}

	kinds := make(map[lexer.TokenType]Kind, len(names))
	for name, tt := range def.Symbols() {
		if kind, ok := names[name]; ok {
			kinds[tt] = kind
		}
	}

	return &Tokenizer{def: def, kinds: kinds}, nil
}

// Tokenize splits input into tokens. Joining the token texts reproduces input
// exactly.
func (t *Tokenizer) Tokenize(input string) (Tokens, error) {
	tokens, err := t.lex(input, 0)
	if err != nil {
		return nil, err
	}

	return t.joinWords(tokens)
}

func (t *Tokenizer) lex(input string, offset int) (Tokens, error) {
	lex, err := t.def.LexString("", input)
	if err != nil {
		return nil, errors.Wrapf(ErrLex, "%v", err)
	}

	var tokens Tokens
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, errors.Wrapf(ErrLex, "%v", err)
		}

		if tok.EOF() {
			return tokens, nil
		}

		kind, ok := t.kinds[tok.Type]
		if !ok {
			return nil, errors.Wrapf(ErrLex, "unexpected token type %d at offset %d", tok.Type, offset+tok.Pos.Offset)
		}

		tokens = append(tokens, Token{Kind: kind, Text: tok.Value, Offset: offset + tok.Pos.Offset})
	}
}

// joinWords undoes matches that end inside a word. The lexer's \b only knows
// ASCII, so "SELECTé" lexes as SELECT followed by the word "é". The trailing
// word of such a token is glued to the word after it and whatever precedes it
// is lexed again on its own ("ORDER BYé" becomes ORDER, " " and "BYé").
func (t *Tokenizer) joinWords(tokens Tokens) (Tokens, error) {
	out := make(Tokens, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if i+1 == len(tokens) || !endsInsideWord(tok, tokens[i+1]) {
			out = append(out, tok)
			continue
		}

		next := tokens[i+1]
		i++

		start := strings.LastIndexFunc(tok.Text, func(r rune) bool { return !isWordRune(r) })
		if start >= 0 {
			_, size := utf8.DecodeRuneInString(tok.Text[start:])
			start += size

			head, err := t.lex(tok.Text[:start], tok.Offset)
			if err != nil {
				return nil, err
			}

			out = append(out, head...)
		} else {
			start = 0
		}

		out = append(out, Token{Kind: Word, Text: tok.Text[start:] + next.Text, Offset: tok.Offset + start})
	}

	return out, nil
}

// endsInsideWord reports whether tok was cut short by an ASCII word boundary
// in front of next.
func endsInsideWord(tok, next Token) bool {
	switch {
	case tok.Kind.IsKeyword(), tok.Kind == Number:
	case tok.Kind == OpenParen || tok.Kind == CloseParen:
		if IsSymbolParen(tok.Text) {
			return false
		}
	default:
		return false
	}

	if next.Kind != Word {
		return false
	}

	r, _ := utf8.DecodeRuneInString(next.Text)
	return r >= utf8.RuneSelf && isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}
