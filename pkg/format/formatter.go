package format

import (
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
)

var blockCommentNewline = regexp.MustCompile(`\n[ \t]*`)

// Formatter formats queries for a single Config. The tokenizer is compiled
// once in New, so a Formatter should be reused across queries. It is safe for
// concurrent use.
type Formatter struct {
	cfg          Config
	tokenizer    *tokenizer.Tokenizer
	inlineGroups map[string]bool
}

// New validates cfg and compiles its tokenizer.
func New(cfg Config) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg = cfg.Clone()

	tok, err := tokenizer.New(cfg.Rules())
	if err != nil {
		return nil, err
	}

	groups := make(map[string]bool, len(cfg.InlineGroups))
	for _, g := range cfg.InlineGroups {
		groups[strings.ToUpper(tokenizer.Collapse(g))] = true
	}

	return &Formatter{cfg: cfg, tokenizer: tok, inlineGroups: groups}, nil
}

// Config returns a copy of the configuration the formatter was built with.
func (f *Formatter) Config() Config {
	return f.cfg.Clone()
}

// Format writes the formatted query to w. Nothing is written when the query
// cannot be formatted.
func (f *Formatter) Format(w io.Writer, query string) error {
	formatted, err := f.FormatString(query)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, formatted)
	return errors.Wrap(err, "failed to write formatted query")
}

// FormatString returns the formatted query. The result has no leading or
// trailing whitespace; an empty or whitespace-only query formats to "".
func (f *Formatter) FormatString(query string) (string, error) {
	tokens, err := f.tokenizer.Tokenize(query)
	if err != nil {
		return "", err
	}

	s := &state{
		cfg:          &f.cfg,
		inlineGroups: f.inlineGroups,
		tokens:       tokens,
		indent:       newIndentation(f.cfg.Indent),
		inline:       inlineBlock{maxLength: f.cfg.InlineMaxLength},
		subQuery:     newSubQuery(f.cfg.OpenParens, f.cfg.CloseParens),
		terminal:     make(map[int]bool),
	}

	for i := range tokens {
		if err := s.step(i); err != nil {
			return "", err
		}
	}

	return strings.TrimSpace(s.out.String()), nil
}

// Format formats query with cfg and writes the result to w.
func Format(w io.Writer, cfg Config, query string) error {
	f, err := New(cfg)
	if err != nil {
		return err
	}

	return f.Format(w, query)
}

// FormatQuery formats query with cfg and returns the result.
func FormatQuery(query string, cfg Config) (string, error) {
	f, err := New(cfg)
	if err != nil {
		return "", err
	}

	return f.FormatString(query)
}

// state is the single pass over one query's tokens.
type state struct {
	cfg          *Config
	inlineGroups map[string]bool
	tokens       tokenizer.Tokens

	out      output
	indent   *indentation
	inline   inlineBlock
	subQuery *subQuery

	prevKeyword  tokenizer.Token
	prevTopLevel tokenizer.Token
	inlineGroup  bool

	// terminal holds the indexes of close parens that ended a CTE definition.
	terminal map[int]bool
}

func (s *state) step(i int) error {
	tok := s.tokens[i]

	switch tok.Kind {
	case tokenizer.Whitespace:
	case tokenizer.LineComment:
		s.out.write(tok.Text)
		s.newline()
	case tokenizer.BlockComment:
		s.formatBlockComment(tok)
	case tokenizer.TopLevelKeywordNoIndent:
		s.indent.decreaseTopLevel()
		s.newline()
		s.out.write(s.keyword(tok))
		s.newline()
		s.prevKeyword = tok
	case tokenizer.TopLevelKeyword:
		s.formatTopLevelKeyword(tok)
	case tokenizer.NewlineKeyword:
		s.formatNewlineKeyword(tok)
	case tokenizer.ReservedKeyword:
		s.out.write(s.keyword(tok) + " ")
		s.prevKeyword = tok
	case tokenizer.Keyword:
		s.out.write(tok.Text + " ")
		s.prevKeyword = tok
	case tokenizer.OpenParen:
		return s.formatOpenParen(i, tok)
	case tokenizer.CloseParen:
		return s.formatCloseParen(i, tok)
	default:
		s.formatText(i, tok)
	}

	return nil
}

func (s *state) formatBlockComment(tok tokenizer.Token) {
	s.out.trimSpaces()

	// a block comment is separated from what precedes it by a blank line
	if s.out.Len() > 0 && !s.out.hasSuffix("\n\n") {
		if s.out.hasSuffix("\n") {
			s.out.write("\n")
		} else {
			s.out.write("\n\n")
		}
	}

	indent := s.indent.String()
	s.out.write(indent)
	s.out.write(blockCommentNewline.ReplaceAllLiteralString(tok.Text, "\n"+indent))
	s.newline()
}

func (s *state) formatTopLevelKeyword(tok tokenizer.Token) {
	s.indent.decreaseTopLevel()
	s.newline()
	s.indent.increaseTopLevel()
	s.out.write(s.keyword(tok))
	s.newline()

	key := strings.ToUpper(tokenizer.Collapse(tok.Text))
	s.inlineGroup = s.inlineGroups[key] && !s.prevKeyword.Equal("PARTITION BY")
	s.prevKeyword = tok
	s.prevTopLevel = tok
}

func (s *state) formatNewlineKeyword(tok tokenizer.Token) {
	// BETWEEN x AND y, WHEN a AND b and ON a AND b stay on one line
	continues := s.prevKeyword.Equal("BETWEEN") || s.prevKeyword.Equal("WHEN") || s.prevKeyword.Equal("ON")
	if !continues || !(tok.Equal("AND") || tok.Equal("OR")) {
		s.newline()
	}

	s.out.write(s.keyword(tok) + " ")
	s.prevKeyword = tok
}

func (s *state) formatOpenParen(i int, tok tokenizer.Token) error {
	// a paren that starts a line keeps the indent newline() wrote for it
	if (i == 0 || !s.followsBreak(i)) && !s.out.hasSuffix("\n"+s.indent.String()) {
		s.out.trimSpaces()
	}

	s.out.write(s.normalize(tok.Text))

	s.inline.beginIfPossible(s.tokens, i)
	if !s.inline.active() {
		s.indent.increaseBlockLevel()
		s.newline()
	}

	if tok.Text == "(" {
		if j := s.prevSignificant(i, true); j >= 0 && s.tokens[j].Kind.IsKeyword() && s.tokens[j].Equal("AS") {
			s.subQuery.started = true
		}
	}

	if !tokenizer.IsSymbolParen(tok.Text) {
		s.prevKeyword = tok
		return nil
	}

	return s.subQuery.update(tok)
}

func (s *state) formatCloseParen(i int, tok tokenizer.Token) error {
	text := s.normalize(tok.Text)

	if s.inline.active() {
		s.inline.end()
		s.out.trimSpaces()
	} else {
		s.indent.decreaseBlockLevel()
		s.newline()
	}

	s.out.write(text + " ")

	if !tokenizer.IsSymbolParen(tok.Text) {
		s.prevKeyword = tok
		return nil
	}

	if err := s.subQuery.update(tok); err != nil {
		return err
	}

	if s.subQuery.closed() {
		s.out.trimAll()
		s.out.write(s.queryBreak())
		s.terminal[i] = true
		s.subQuery.started = false
	}

	return nil
}

func (s *state) formatText(i int, tok tokenizer.Token) {
	switch tok.Text {
	case ",":
		s.formatComma(i)
	case ":":
		s.out.trimSpaces()
		s.out.write(": ")
	case ".":
		s.out.trimSpaces()
		s.out.write(".")
	case ";":
		s.indent.reset()
		s.out.trimSpaces()
		s.out.write(";" + s.queryBreak())
	case "{":
		s.out.write("{")
	case "}":
		s.out.trimSpaces()
		s.out.write("} ")
	case "-":
		// unary minus binds to its operand
		j := s.prevSignificant(i, false)
		if j < 0 || s.tokens[j].Kind.IsKeyword() || s.tokens[j].Kind == tokenizer.OpenParen || s.tokens[j].Kind == tokenizer.Operator {
			s.out.write("-")
		} else {
			s.out.write("- ")
		}
	default:
		s.out.write(tok.Text + " ")
	}
}

func (s *state) formatComma(i int) {
	if s.terminal[s.prevSignificant(i, false)] {
		s.out.trimAll()
		s.out.write("," + s.queryBreak())
		return
	}

	s.out.trimSpaces()
	s.out.write(", ")

	switch {
	case s.inline.active():
	case s.prevTopLevel.Equal("LIMIT"):
	case s.inlineGroup &&
		s.cfg.commaPolicy() == CommaSplitOverflow &&
		s.out.lineLength() < s.cfg.InlineMaxLength:
	default:
		s.newline()
	}
}

func (s *state) newline() {
	s.out.newline(s.indent.String())
}

// queryBreak ends a statement or CTE definition with LinesBetweenQueries
// blank lines.
func (s *state) queryBreak() string {
	return strings.Repeat("\n", 1+s.cfg.LinesBetweenQueries)
}

func (s *state) normalize(text string) string {
	if s.cfg.ReservedKeywordUppercase {
		return strings.ToUpper(text)
	}

	return strings.ToLower(text)
}

// keyword returns the case-normalized keyword with internal whitespace
// collapsed to single spaces.
func (s *state) keyword(tok tokenizer.Token) string {
	return tokenizer.Collapse(s.normalize(tok.Text))
}

// followsBreak reports whether the token before i leaves the open paren
// where it is: whitespace, another open paren or a line comment.
func (s *state) followsBreak(i int) bool {
	switch s.tokens[i-1].Kind {
	case tokenizer.Whitespace, tokenizer.OpenParen, tokenizer.LineComment:
		return true
	default:
		return false
	}
}

// prevSignificant returns the index of the closest token before i that is not
// whitespace (nor a line comment when skipComments is set), or -1.
func (s *state) prevSignificant(i int, skipComments bool) int {
	for j := i - 1; j >= 0; j-- {
		kind := s.tokens[j].Kind
		if kind == tokenizer.Whitespace || (skipComments && kind == tokenizer.LineComment) {
			continue
		}

		return j
	}

	return -1
}
