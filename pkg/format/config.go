package format

import (
	"strings"

	"github.com/muir/list"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
)

// CommaPolicy controls how commas break lines inside inline groups such as
// GROUP BY and ORDER BY lists.
type CommaPolicy string

const (
	// CommaSplitAlways puts every list item on its own line.
	CommaSplitAlways CommaPolicy = "always"

	// CommaSplitOverflow keeps list items on one line and only breaks once the
	// line reaches InlineMaxLength.
	CommaSplitOverflow CommaPolicy = "overflow"
)

// Config describes a SQL dialect and the layout to produce. It is treated as
// an immutable value; use the dialect presets (HiveQL, SparkSQL) as a base and
// override individual fields.
type Config struct {
	// ReservedKeywords are case-normalized according to ReservedKeywordUppercase.
	ReservedKeywords []string
	// Keywords are non-reserved keywords and built-in functions. They are
	// emitted verbatim.
	Keywords []string
	// UserDefinedFunctions are extra function names treated like Keywords.
	UserDefinedFunctions []string

	// TopLevelKeywords start a clause that indents the lines following it.
	TopLevelKeywords []string
	// TopLevelKeywordsNoIndent start a clause on its own line without
	// indenting what follows (UNION, INTERSECT, ...).
	TopLevelKeywordsNoIndent []string
	// NewlineKeywords start a new line within a clause (AND, OR, WHEN, ...).
	NewlineKeywords []string

	// OpenParens and CloseParens are index-aligned pairs. Single characters
	// are literal parens; words such as CASE and END act as parens too.
	OpenParens  []string
	CloseParens []string

	StringTypes      []string
	LineCommentTypes []string
	SpecialWordChars []string

	// ReservedKeywordUppercase selects upper (true) or lower (false) case for
	// reserved keywords and word parens.
	ReservedKeywordUppercase bool

	// Indent is one level of indentation.
	Indent string

	// LinesBetweenQueries is the number of blank lines emitted after a
	// statement separator and after a CTE definition.
	LinesBetweenQueries int

	// InlineMaxLength bounds both inline paren blocks and, with
	// CommaSplitOverflow, the length of inline group lines.
	InlineMaxLength int

	// InlineGroups are the top-level keywords whose comma separated lists are
	// governed by CommaSplit. An ORDER BY directly following PARTITION BY is
	// never an inline group.
	InlineGroups []string
	CommaSplit   CommaPolicy
}

// Rules returns the tokenizer rules for this configuration.
func (c Config) Rules() tokenizer.Rules {
	return tokenizer.Rules{
		ReservedKeywords:         c.ReservedKeywords,
		Keywords:                 c.Keywords,
		UserDefinedFunctions:     c.UserDefinedFunctions,
		TopLevelKeywords:         c.TopLevelKeywords,
		TopLevelKeywordsNoIndent: c.TopLevelKeywordsNoIndent,
		NewlineKeywords:          c.NewlineKeywords,
		OpenParens:               c.OpenParens,
		CloseParens:              c.CloseParens,
		StringTypes:              c.StringTypes,
		LineCommentTypes:         c.LineCommentTypes,
		SpecialWordChars:         c.SpecialWordChars,
	}
}

// Validate reports the first problem that would prevent formatting with c.
// All returned errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return err
	}

	if strings.Trim(c.Indent, " \t") != "" {
		return errors.Wrapf(ErrInvalidConfig, "indent %q must only contain spaces and tabs", c.Indent)
	}

	if c.LinesBetweenQueries < 0 {
		return errors.Wrapf(ErrInvalidConfig, "linesBetweenQueries must not be negative, got %d", c.LinesBetweenQueries)
	}

	if c.InlineMaxLength < 0 {
		return errors.Wrapf(ErrInvalidConfig, "inlineMaxLength must not be negative, got %d", c.InlineMaxLength)
	}

	switch c.CommaSplit {
	case "", CommaSplitAlways, CommaSplitOverflow:
	default:
		return errors.Wrapf(
			ErrInvalidConfig,
			"unknown comma split policy %q (want %s or %s)",
			c.CommaSplit,
			CommaSplitAlways,
			CommaSplitOverflow,
		)
	}

	return nil
}

// Clone returns a deep copy of c so the copy's slices can be modified safely.
func (c Config) Clone() Config {
	c.ReservedKeywords = list.Copy(c.ReservedKeywords)
	c.Keywords = list.Copy(c.Keywords)
	c.UserDefinedFunctions = list.Copy(c.UserDefinedFunctions)
	c.TopLevelKeywords = list.Copy(c.TopLevelKeywords)
	c.TopLevelKeywordsNoIndent = list.Copy(c.TopLevelKeywordsNoIndent)
	c.NewlineKeywords = list.Copy(c.NewlineKeywords)
	c.OpenParens = list.Copy(c.OpenParens)
	c.CloseParens = list.Copy(c.CloseParens)
	c.StringTypes = list.Copy(c.StringTypes)
	c.LineCommentTypes = list.Copy(c.LineCommentTypes)
	c.SpecialWordChars = list.Copy(c.SpecialWordChars)
	c.InlineGroups = list.Copy(c.InlineGroups)

	return c
}

func (c Config) commaPolicy() CommaPolicy {
	if c.CommaSplit == "" {
		return CommaSplitAlways
	}

	return c.CommaSplit
}
