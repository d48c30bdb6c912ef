// Package format lays out HiveQL and SparkSQL queries in a consistent,
// readable style.
//
// Formatting is a single pass over the token stream produced by the tokenizer
// package. It does not parse the query: clause keywords (SELECT, FROM, WHERE)
// start an indented section, newline keywords (AND, OR, WHEN, joins) start a
// new line within it, and short paren groups are kept on one line. Reserved
// keywords are case-normalized; everything else keeps its original spelling.
//
// Key features:
//   - Dialect presets for HiveQL and SparkSQL
//   - Inline paren blocks bounded by InlineMaxLength
//   - CTE definitions separated by blank lines
//   - Line and block comments preserved and re-indented
//   - Optional comma splitting for GROUP BY and ORDER BY lists
//
// Usage:
//
//	// Object-oriented API, reusing the compiled tokenizer
//	f, err := format.New(format.SparkSQL())
//	if err != nil {
//		return err
//	}
//
//	var buf bytes.Buffer
//	err = f.Format(&buf, "select a, b from t where x = 1")
//
//	// Functional API with a customized preset
//	cfg := format.HiveQL()
//	cfg.Indent = "  "
//	cfg.ReservedKeywordUppercase = false
//
//	formatted, err := format.FormatQuery("SELECT a FROM t", cfg)
//
// Output of the first example:
//
//	SELECT
//	    a,
//	    b
//	FROM
//	    t
//	WHERE
//	    x = 1
package format
