package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestFormatQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "columns on their own lines",
			query:    "SELECT c1, c2 FROM t0",
			expected: "SELECT\n    c1,\n    c2\nFROM\n    t0",
		},
		{
			name:     "case expression",
			query:    "CASE WHEN a=1 THEN 1 ELSE 2 END",
			expected: "CASE\n    WHEN a = 1 THEN 1\n    ELSE 2\nEND",
		},
		{
			name:     "line comment after comma",
			query:    "SELECT a,--c\nb FROM t",
			expected: "SELECT\n    a,\n    --c\n    b\nFROM\n    t",
		},
		{
			name:     "block comment gets a blank line",
			query:    "select a /* one\n   two */ from t",
			expected: "SELECT\n    a\n\n    /* one\n    two */\nFROM\n    t",
		},
		{
			name:     "whitespace only",
			query:    "  \n\t ",
			expected: "",
		},
		{
			name:     "limit keeps offset and count together",
			query:    "select a from t limit 5, 10",
			expected: "SELECT\n    a\nFROM\n    t\nLIMIT\n    5, 10",
		},
		{
			name:     "between and stays on one line",
			query:    "select a from t where x between 1 and 2 and y = 3 or z = 4",
			expected: "SELECT\n    a\nFROM\n    t\nWHERE\n    x BETWEEN 1 AND 2\n    AND y = 3\n    OR z = 4",
		},
		{
			name:  "nested subquery",
			query: "select (select max(x) from u where u.id = t.id) as m from t",
			expected: "SELECT\n    (\n        SELECT\n            max(x)\n        FROM\n            u\n" +
				"        WHERE\n            u.id = t.id\n    ) AS m\nFROM\n    t",
		},
		{
			name:     "statement separator resets indentation",
			query:    "select a from t where (x = 1 or y = 2); select b",
			expected: "SELECT\n    a\nFROM\n    t\nWHERE\n    (\n        x = 1\n        OR y = 2\n    );\n\nSELECT\n    b",
		},
		{
			name:     "colon and braces",
			query:    "select x:y, {a} from t",
			expected: "SELECT\n    x: y,\n    {a}\nFROM\n    t",
		},
		{
			name:     "tuples after a comma keep their indent",
			query:    "insert into t values (1, 2),(3, 4)",
			expected: "INSERT INTO\n    t\nVALUES\n    (1, 2),\n    (3, 4)",
		},
		{
			name:     "inline group after a comma",
			query:    "select a,(b+c) from t",
			expected: "SELECT\n    a,\n    (b + c)\nFROM\n    t",
		},
		{
			name:     "block right after a clause keyword",
			query:    "select a from t where(x=1 or y=2)",
			expected: "SELECT\n    a\nFROM\n    t\nWHERE\n    (\n        x = 1\n        OR y = 2\n    )",
		},
		{
			name:     "unterminated string runs to the end",
			query:    "select 'abc from t",
			expected: "SELECT\n    'abc from t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FormatQuery(tt.query, HiveQL())
			require.NoError(t, err)
			require.Equal(t, tt.expected, result)

			again, err := FormatQuery(result, HiveQL())
			require.NoError(t, err)
			require.Equal(t, result, again)
		})
	}
}

func TestFormatQuery_SparkSQL(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "and after on stays on one line",
			query:    "select a from t left join u on t.id = u.id and t.x = u.x",
			expected: "SELECT\n    a\nFROM\n    t\nLEFT JOIN\n    u\n    ON t.id = u.id AND t.x = u.x",
		},
		{
			name:  "order by after partition by is not an inline group",
			query: "select row_number() over (partition by a order by b, c) from t",
			expected: "SELECT\n    row_number() OVER (\n        PARTITION BY\n            a\n        ORDER BY\n" +
				"            b,\n            c\n    )\nFROM\n    t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FormatQuery(tt.query, SparkSQL())
			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatQuery_Options(t *testing.T) {
	t.Run("lowercase keywords", func(t *testing.T) {
		cfg := HiveQL()
		cfg.ReservedKeywordUppercase = false

		result, err := FormatQuery("SELECT a AS b FROM t WHERE x IS NOT NULL", cfg)
		require.NoError(t, err)
		require.Equal(t, "select\n    a as b\nfrom\n    t\nwhere\n    x is not null", result)
	})

	t.Run("tab indent", func(t *testing.T) {
		cfg := HiveQL()
		cfg.Indent = "\t"

		result, err := FormatQuery("select a from t where x = 1", cfg)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n\ta\nFROM\n\tt\nWHERE\n\tx = 1", result)
	})

	t.Run("lines between queries", func(t *testing.T) {
		cfg := HiveQL()
		cfg.LinesBetweenQueries = 2

		result, err := FormatQuery("select a from t; select b from u", cfg)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n    a\nFROM\n    t;\n\n\nSELECT\n    b\nFROM\n    u", result)
	})

	t.Run("no lines after cte", func(t *testing.T) {
		cfg := HiveQL()
		cfg.LinesBetweenQueries = 0

		result, err := FormatQuery("with x as (select 1) select * from x", cfg)
		require.NoError(t, err)
		require.Equal(t, "WITH x AS (\n    SELECT\n        1\n)\nSELECT\n    *\nFROM\n    x", result)
	})

	t.Run("user defined functions keep their case", func(t *testing.T) {
		cfg := HiveQL()
		cfg.UserDefinedFunctions = []string{"my_udf"}

		result, err := FormatQuery("select MY_UDF(a),my_udf (b) from t", cfg)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n    MY_UDF(a),\n    my_udf (b)\nFROM\n    t", result)
	})

	t.Run("comma split on overflow", func(t *testing.T) {
		cfg := SparkSQL()
		cfg.CommaSplit = CommaSplitOverflow

		result, err := FormatQuery("select a from t group by a, b, c order by a, b", cfg)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n    a\nFROM\n    t\nGROUP BY\n    a, b, c\nORDER BY\n    a, b", result)
	})

	t.Run("comma split once the line is full", func(t *testing.T) {
		cfg := SparkSQL()
		cfg.CommaSplit = CommaSplitOverflow
		cfg.InlineMaxLength = 12

		result, err := FormatQuery("select a from t group by aaaa, bbbb, cccc", cfg)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n    a\nFROM\n    t\nGROUP BY\n    aaaa, bbbb,\n    cccc", result)
	})
}

func TestFormatQuery_Minus(t *testing.T) {
	result, err := FormatQuery("SELECT a-b-c, x - 1 FROM t WHERE v IN (-123.4, 6)", HiveQL())
	require.NoError(t, err)
	require.Contains(t, result, "a - b - c,")
	require.Contains(t, result, "x - 1")
	require.Contains(t, result, "v IN (-123.4, 6)")
}

func TestFormatQuery_CaseNormalization(t *testing.T) {
	// reserved keywords and parens are normalized, everything else is verbatim
	result, err := FormatQuery("select Count(MyCol), case when 'Select' then 1 end from MyTable", HiveQL())
	require.NoError(t, err)
	require.Contains(t, result, "Count(MyCol)")
	require.Contains(t, result, "'Select'")
	require.Contains(t, result, "MyTable")
	require.Contains(t, result, "CASE")
	require.Contains(t, result, "END")
	require.True(t, strings.HasPrefix(result, "SELECT\n"))
}

func TestFormatQuery_UnmatchedParens(t *testing.T) {
	tests := []string{
		"select a) from t",
		"select (a] from t",
		"select [a) from t",
	}

	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			var buf bytes.Buffer
			err := Format(&buf, SparkSQL(), query)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrUnmatchedParens))
			require.Empty(t, buf.String())
		})
	}
}

func TestFormatQuery_UnclosedParensAreAllowed(t *testing.T) {
	result, err := FormatQuery("select (a from t", HiveQL())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(result, "SELECT\n    (\n"))
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"misaligned parens", func(c *Config) { c.CloseParens = c.CloseParens[:1] }},
		{"negative lines", func(c *Config) { c.LinesBetweenQueries = -1 }},
		{"negative length", func(c *Config) { c.InlineMaxLength = -1 }},
		{"bad indent", func(c *Config) { c.Indent = "--" }},
		{"unknown comma policy", func(c *Config) { c.CommaSplit = "sometimes" }},
		{"unknown string type", func(c *Config) { c.StringTypes = []string{"<>"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HiveQL()
			tt.modify(&cfg)

			_, err := New(cfg)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidConfig))

			_, err = FormatQuery("select 1", cfg)
			require.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestFormatter_Reuse(t *testing.T) {
	f, err := New(SparkSQL())
	require.NoError(t, err)

	// state from one call does not leak into the next
	_, err = f.FormatString("with x as (select (a from t")
	require.NoError(t, err)

	result, err := f.FormatString("select a, b from t")
	require.NoError(t, err)
	require.Equal(t, "SELECT\n    a,\n    b\nFROM\n    t", result)

	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, "select a, b from t"))
	require.Equal(t, result, buf.String())
}

func TestFormatter_ConfigIsCopied(t *testing.T) {
	cfg := HiveQL()
	f, err := New(cfg)
	require.NoError(t, err)

	cfg.Indent = "  "
	cfg.TopLevelKeywords[0] = "NOPE"

	got := f.Config()
	require.Equal(t, "    ", got.Indent)
	require.NotEqual(t, "NOPE", got.TopLevelKeywords[0])
}
