package format

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DialectHiveQL and DialectSparkSQL are the canonical preset names.
	DialectHiveQL   = "hiveql"
	DialectSparkSQL = "sparksql"
)

var dialects = map[string]func() Config{
	DialectHiveQL:   HiveQL,
	DialectSparkSQL: SparkSQL,
}

var dialectAliases = map[string]string{
	"hive":  DialectHiveQL,
	"spark": DialectSparkSQL,
}

// HiveQL returns the HiveQL preset. Each call returns a fresh copy.
func HiveQL() Config {
	return Config{
		ReservedKeywords:         hiveReservedKeywords,
		Keywords:                 hiveKeywords,
		TopLevelKeywords:         hiveTopLevelKeywords,
		TopLevelKeywordsNoIndent: hiveTopLevelKeywordsNoIndent,
		NewlineKeywords:          hiveNewlineKeywords,
		OpenParens:               []string{"(", "CASE"},
		CloseParens:              []string{")", "END"},
		StringTypes:              []string{`""`, `''`, `{}`},
		LineCommentTypes:         []string{"--"},
		ReservedKeywordUppercase: true,
		Indent:                   "    ",
		LinesBetweenQueries:      1,
		InlineMaxLength:          120,
		CommaSplit:               CommaSplitAlways,
	}.Clone()
}

// SparkSQL returns the SparkSQL preset. Each call returns a fresh copy.
//
// Unlike HiveQL, square brackets are parens and backticks quote identifiers.
// GROUP BY and ORDER BY are inline groups.
func SparkSQL() Config {
	return Config{
		ReservedKeywords:         sparkReservedKeywords,
		Keywords:                 sparkKeywords,
		TopLevelKeywords:         sparkTopLevelKeywords,
		TopLevelKeywordsNoIndent: sparkTopLevelKeywordsNoIndent,
		NewlineKeywords:          sparkNewlineKeywords,
		OpenParens:               []string{"(", "[", "CASE"},
		CloseParens:              []string{")", "]", "END"},
		StringTypes:              []string{`""`, `''`, `{}`, "``"},
		LineCommentTypes:         []string{"--"},
		ReservedKeywordUppercase: true,
		Indent:                   "    ",
		LinesBetweenQueries:      1,
		InlineMaxLength:          120,
		InlineGroups:             []string{"GROUP BY", "ORDER BY"},
		CommaSplit:               CommaSplitAlways,
	}.Clone()
}

// Defaults returns the configuration used when no dialect is selected.
func Defaults() Config {
	return HiveQL()
}

// Dialect returns the preset registered under name. Names are matched
// case-insensitively and the short forms "hive" and "spark" are accepted.
func Dialect(name string) (Config, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := dialectAliases[key]; ok {
		key = alias
	}

	preset, ok := dialects[key]
	if !ok {
		return Config{}, errors.Wrapf(
			ErrInvalidConfig,
			"unknown dialect %q (want one of %s)",
			name,
			strings.Join(Dialects(), ", "),
		)
	}

	return preset(), nil
}

// Dialects returns the sorted list of canonical preset names.
func Dialects() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
