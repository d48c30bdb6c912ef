package tokenizer

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Rules holds the dialect inputs the lexer is compiled from.
type Rules struct {
	// ReservedKeywords are classified as ReservedKeyword.
	ReservedKeywords []string
	// Keywords covers non-reserved keywords and built-in function names.
	Keywords []string
	// UserDefinedFunctions are classified like Keywords.
	UserDefinedFunctions []string

	TopLevelKeywords         []string
	TopLevelKeywordsNoIndent []string
	NewlineKeywords          []string

	// OpenParens and CloseParens are index-aligned. Single characters match
	// literally, words (CASE/END) match case-insensitively on a word boundary.
	OpenParens  []string
	CloseParens []string

	// StringTypes selects the quote pairs recognized as string literals. See
	// StringTypes for the supported values.
	StringTypes []string

	LineCommentTypes []string
	SpecialWordChars []string
}

const (
	stateRoot      = "Root"
	stateQualified = "Qualified"

	numberPattern       = `(?:(?:-[ \t]*)?[0-9]+(?:\.[0-9]+)?|0x[0-9a-fA-F]+|0b[01]+)\b`
	whitespacePattern   = `[\s\v\p{Z}\x{85}]+`
	blockCommentPattern = `/\*(?s:.*?)\*/`
	dotPattern          = `\.`
	operatorPattern     = `<>|==|<=|>=|!=|!<|!>|\|\||::|->>|->|~~\*|~~|!~~\*|!~~|~\*|!~\*|!~|:=|(?s:.)`
)

// stringPatterns maps each supported quote pair to its literal pattern. A
// literal may repeat to support doubled-quote escapes ('it''s'), backslash
// escapes any character, and an unterminated literal runs to end of input.
var stringPatterns = map[string]string{
	`""`: `(?:"[^"\\]*(?:\\.[^"\\]*)*(?:"|$))+`,
	`''`: `(?:'[^'\\]*(?:\\.[^'\\]*)*(?:'|$))+`,
	`{}`: `(?:\{[^}\\]*(?:\\.[^}\\]*)*(?:\}|$))+`,
	"``": `(?:\x60[^\x60\\]*(?:\\.[^\x60\\]*)*(?:\x60|$))+`,
}

// StringTypes lists the supported quote pairs.
func StringTypes() []string {
	types := make([]string, 0, len(stringPatterns))
	for t := range stringPatterns {
		types = append(types, t)
	}
	sort.Strings(types)

	return types
}

// Validate checks that the rules can be compiled.
func (r Rules) Validate() error {
	if len(r.OpenParens) != len(r.CloseParens) {
		return errors.Wrapf(
			ErrInvalidConfig,
			"%d open parens but %d close parens",
			len(r.OpenParens),
			len(r.CloseParens),
		)
	}

	for i, open := range r.OpenParens {
		closing := r.CloseParens[i]
		if open == "" || closing == "" {
			return errors.Wrapf(ErrInvalidConfig, "empty paren at position %d", i)
		}

		if IsSymbolParen(open) != IsSymbolParen(closing) {
			return errors.Wrapf(ErrInvalidConfig, "paren pair %q/%q mixes a symbol and a word", open, closing)
		}
	}

	for _, st := range r.StringTypes {
		if _, ok := stringPatterns[st]; !ok {
			return errors.Wrapf(ErrInvalidConfig, "unsupported string type %q (want one of %s)", st, strings.Join(StringTypes(), ", "))
		}
	}

	for _, lc := range r.LineCommentTypes {
		if strings.TrimSpace(lc) == "" {
			return errors.Wrap(ErrInvalidConfig, "empty line comment prefix")
		}
	}

	return nil
}

// IsSymbolParen reports whether p is a single character paren such as "(",
// as opposed to a word paren such as CASE.
func IsSymbolParen(p string) bool {
	return utf8.RuneCountInString(p) == 1
}

type rule struct {
	name    string
	kind    Kind
	pattern string
}

// rootRules returns the rules for the Root state, in matching order.
func (r Rules) rootRules() []rule {
	rules := r.leadingRules("")
	rules = append(rules, r.parenRules("", r.OpenParens, r.CloseParens)...)
	rules = append(rules, rule{name: "Number", kind: Number, pattern: numberPattern})

	keywordClasses := []struct {
		kind  Kind
		words [][]string
	}{
		{TopLevelKeyword, [][]string{r.TopLevelKeywords}},
		{NewlineKeyword, [][]string{r.NewlineKeywords}},
		{TopLevelKeywordNoIndent, [][]string{r.TopLevelKeywordsNoIndent}},
		{ReservedKeyword, [][]string{r.ReservedKeywords}},
		// reserved keywords always match the rule above first
		{Keyword, [][]string{r.Keywords, r.UserDefinedFunctions}},
	}

	for _, class := range keywordClasses {
		if pattern := keywordPattern(slices.Concat(class.words...)); pattern != "" {
			rules = append(rules, rule{name: class.kind.String(), kind: class.kind, pattern: pattern})
		}
	}

	return append(rules,
		rule{name: "Word", kind: Word, pattern: r.wordPattern()},
		rule{name: "Dot", kind: Operator, pattern: dotPattern},
		rule{name: "Operator", kind: Operator, pattern: operatorPattern},
	)
}

// qualifiedRules applies right after a ".". Keywords and word parens are not
// recognized here, so t.from and t.end stay words.
func (r Rules) qualifiedRules() []rule {
	var opens, closes []string
	for i, open := range r.OpenParens {
		if IsSymbolParen(open) {
			opens = append(opens, open)
			closes = append(closes, r.CloseParens[i])
		}
	}

	rules := r.leadingRules(stateQualified)
	rules = append(rules, r.parenRules(stateQualified, opens, closes)...)

	return append(rules,
		rule{name: stateQualified + "Number", kind: Number, pattern: numberPattern},
		rule{name: stateQualified + "Word", kind: Word, pattern: r.wordPattern()},
		rule{name: stateQualified + "Dot", kind: Operator, pattern: dotPattern},
		rule{name: stateQualified + "Operator", kind: Operator, pattern: operatorPattern},
	)
}

func (r Rules) leadingRules(prefix string) []rule {
	rules := []rule{{name: prefix + "Whitespace", kind: Whitespace, pattern: whitespacePattern}}

	if len(r.LineCommentTypes) > 0 {
		prefixes := make([]string, len(r.LineCommentTypes))
		for i, lc := range r.LineCommentTypes {
			prefixes[i] = regexp.QuoteMeta(lc)
		}

		rules = append(rules, rule{
			name:    prefix + "LineComment",
			kind:    LineComment,
			pattern: `(?:` + strings.Join(prefixes, "|") + `).*?(?:\r\n|\r|\n|$)`,
		})
	}

	rules = append(rules, rule{name: prefix + "BlockComment", kind: BlockComment, pattern: blockCommentPattern})

	if len(r.StringTypes) > 0 {
		patterns := make([]string, len(r.StringTypes))
		for i, st := range r.StringTypes {
			patterns[i] = stringPatterns[st]
		}

		rules = append(rules, rule{name: prefix + "String", kind: String, pattern: strings.Join(patterns, "|")})
	}

	return rules
}

func (r Rules) parenRules(prefix string, opens, closes []string) []rule {
	var rules []rule
	if len(opens) > 0 {
		rules = append(rules, rule{name: prefix + "OpenParen", kind: OpenParen, pattern: parenPattern(opens)})
	}

	if len(closes) > 0 {
		rules = append(rules, rule{name: prefix + "CloseParen", kind: CloseParen, pattern: parenPattern(closes)})
	}

	return rules
}

func (r Rules) wordPattern() string {
	var sb strings.Builder
	sb.WriteString(`[\p{L}\p{M}\p{N}_`)
	for _, chars := range r.SpecialWordChars {
		for _, c := range chars {
			fmt.Fprintf(&sb, `\x{%X}`, c)
		}
	}
	sb.WriteString(`]+`)

	return sb.String()
}

func parenPattern(parens []string) string {
	alts := make([]string, len(parens))
	for i, p := range parens {
		if IsSymbolParen(p) {
			alts[i] = regexp.QuoteMeta(p)
		} else {
			alts[i] = `(?i:` + regexp.QuoteMeta(p) + `)\b`
		}
	}

	return `(?:` + strings.Join(alts, "|") + `)`
}

// keywordPattern builds a case-insensitive alternation of words. Duplicates
// are dropped, longer keywords are tried first, and the space in multi-word
// keywords matches any whitespace run.
func keywordPattern(words []string) string {
	seen := make(map[string]bool, len(words))
	uniq := make([]string, 0, len(words))
	for _, w := range words {
		w = Collapse(w)
		key := strings.ToUpper(w)
		if w == "" || seen[key] {
			continue
		}

		seen[key] = true
		uniq = append(uniq, w)
	}

	if len(uniq) == 0 {
		return ""
	}

	sort.SliceStable(uniq, func(i, j int) bool { return len(uniq[i]) > len(uniq[j]) })

	alts := make([]string, len(uniq))
	for i, w := range uniq {
		parts := strings.Fields(w)
		for j, p := range parts {
			parts[j] = regexp.QuoteMeta(p)
		}
		alts[i] = strings.Join(parts, `\s+`)
	}

	return `(?i:` + strings.Join(alts, "|") + `)\b`
}
