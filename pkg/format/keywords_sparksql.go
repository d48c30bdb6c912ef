package format

// SparkSQL reserved keywords (ANSI mode).
var sparkReservedKeywords = []string{
	"ALL", "ALTER", "ANALYZE", "AND", "ANY", "ARRAY", "AS", "ASC", "AT", "BETWEEN", "BOTH", "BY",
	"CASE", "CAST", "CHECK", "COLLATE", "COLUMN", "CONSTRAINT", "CREATE", "CROSS", "CURRENT",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER", "DATABASE", "DAY", "DELETE",
	"DESC", "DESCRIBE", "DISTINCT", "DIV", "DROP", "ELSE", "END", "ESCAPE", "EXCEPT", "EXISTS",
	"EXTERNAL", "EXTRACT", "FALSE", "FETCH", "FILTER", "FOLLOWING", "FOR", "FOREIGN", "FROM", "FULL",
	"FUNCTION", "GLOBAL", "GRANT", "GROUP", "GROUPING", "HAVING", "HOUR", "IF", "IN", "INNER",
	"INSERT", "INTERSECT", "INTERVAL", "INTO", "IS", "JOIN", "KEYS", "LATERAL", "LEADING", "LEFT",
	"LIKE", "LIMIT", "LOCAL", "MINUS", "MINUTE", "MONTH", "MSCK", "NATURAL", "NO", "NOT", "NULL",
	"OF", "ON", "ONLY", "OPTION", "OPTIONS", "OR", "ORDER", "OUT", "OUTER", "OVER", "OVERLAPS",
	"PARTITION", "PARTITIONED", "POSITION", "PRIMARY", "REFERENCES", "REPAIR", "RIGHT", "ROW", "ROWS",
	"SCHEMA", "SECOND", "SELECT", "SEMI", "SESSION_USER", "SET", "SKEWED", "SOME", "SORT", "START",
	"TABLE", "THEN", "TO", "TRAILING", "TRUE", "TRUNCATE", "UNBOUNDED", "UNION", "UNIQUE", "UNKNOWN",
	"UPDATE", "USE", "USER", "USING", "VALUES", "VIEW", "WHEN", "WHERE", "WINDOW", "WITH", "YEAR",
}

// Non-reserved keywords, data types and built-in functions. These keep the
// case they were written in.
var sparkKeywords = []string{
	"ADD", "AFTER", "ANTI", "ARCHIVE", "AUTHORIZATION", "BUCKET", "BUCKETS", "CACHE", "CASCADE",
	"CHANGE", "CLEAR", "CLUSTER", "CLUSTERED", "CODEGEN", "COLLECTION", "COLUMNS", "COMMENT",
	"COMMIT", "COMPACT", "COMPACTIONS", "COMPUTE", "CONCATENATE", "COST", "CUBE", "DATA", "DATABASES",
	"DBPROPERTIES", "DEFINED", "DELIMITED", "DFS", "DIRECTORIES", "DIRECTORY", "DISTRIBUTE",
	"ESCAPED", "EXCHANGE", "EXPLAIN", "EXPORT", "EXTENDED", "FIELDS", "FILEFORMAT", "FIRST", "FORMAT",
	"FORMATTED", "FUNCTIONS", "IGNORE", "IMPORT", "INDEX", "INDEXES", "INPATH", "INPUTFORMAT",
	"ITEMS", "LAST", "LAZY", "LINES", "LIST", "LOAD", "LOCATION", "LOCK", "LOCKS", "LOGICAL", "MACRO",
	"MAP", "MATCHED", "MERGE", "NAMESPACE", "NAMESPACES", "NULLS", "OUTPUTFORMAT", "OVERLAY",
	"OVERWRITE", "PARTITIONS", "PERCENT", "PIVOT", "PLACING", "PRECEDING", "PRINCIPALS", "PROPERTIES",
	"PURGE", "QUERY", "RECORDREADER", "RECORDWRITER", "RECOVER", "REDUCE", "REFRESH", "RENAME",
	"REPLACE", "RESET", "RESTRICT", "REVOKE", "RLIKE", "ROLE", "ROLES", "ROLLBACK", "ROLLUP",
	"SEPARATED", "SERDE", "SERDEPROPERTIES", "SETS", "SHOW", "SORTED", "STATISTICS", "STORED",
	"STRATIFY", "STRUCT", "SUBSTR", "SUBSTRING", "TABLES", "TABLESAMPLE", "TBLPROPERTIES",
	"TEMPORARY", "TERMINATED", "TOUCH", "TRANSACTION", "TRANSACTIONS", "TRANSFORM", "TRIM",
	"UNARCHIVE", "UNCACHE", "UNLOCK", "UNSET", "VIEWS", "BOOLEAN", "BYTE", "TINYINT", "SHORT",
	"SMALLINT", "INT", "INTEGER", "LONG", "BIGINT", "FLOAT", "REAL", "DOUBLE", "DATE", "TIMESTAMP",
	"STRING", "BINARY", "DECIMAL", "DEC", "NUMERIC", "INTERVAL", "ARRAY", "bool_or", "aggregate",
	"some", "collect_list", "bit_length", "bit_xor", "greatest", "bool_and", "stddev_samp", "mean",
	"approx_percentile", "max", "var_pop", "every", "min_by", "sum", "bit_and", "last_value",
	"count_min_sketch", "count", "min", "kurtosis", "percentile", "std", "stddev_pop",
	"percentile_approx", "any", "length", "variance", "covar_pop", "max_by", "bit_count", "stddev",
	"least", "first_value", "skewness", "avg", "var_samp", "collect_set", "corr", "size",
	"covar_samp", "bit_or", "count_if", "approx_count_distinct", "octet_length", "array_distinct",
	"sequence", "elt", "sort_array", "filter", "reverse", "concat", "array_position", "forall",
	"array_remove", "array_contains", "array_repeat", "arrays_overlap", "flatten", "array_sort",
	"array_max", "element_at", "array_join", "shuffle", "slice", "array_except", "arrays_zip",
	"find_in_set", "zip_with", "array_intersect", "exists", "array_min", "array_union", "cardinality",
	"assert_true", "coalesce", "if", "ifnull", "in", "isnan", "isnotnull", "isnull", "nanvl",
	"nullif", "nvl", "nvl2", "when", "to_utc_timestamp", "date_add", "date_sub", "make_interval",
	"unix_timestamp", "to_unix_timestamp", "current_timestamp", "extract", "dayofyear", "dayofmonth",
	"year", "now", "quarter", "add_months", "day", "hour", "trunc", "date_trunc", "date_part",
	"next_day", "to_date", "month", "second", "minute", "datediff", "dayofweek", "weekofyear",
	"from_unixtime", "last_day", "from_utc_timestamp", "to_timestamp", "date_format", "weekday",
	"months_between", "make_date", "make_timestamp", "current_date", "hash", "crc32", "sha", "sha1",
	"sha2", "get_json_object", "to_json", "schema_of_json", "from_json", "json_tuple", "map_entries",
	"transform_keys", "map_values", "map_from_entries", "transform_values", "map_concat",
	"map_zip_with", "str_to_map", "map_from_arrays", "map_keys", "map_filter", "abs", "acos", "acosh",
	"asin", "asinh", "atan", "atan2", "atanh", "bround", "cbrt", "ceil", "ceiling", "conv", "cos",
	"cosh", "cot", "degrees", "div", "e", "exp", "expm1", "factorial", "floor", "format_number",
	"hypot", "ln", "log", "log10", "log1p", "log2", "mod", "pi", "pmod", "pow", "power", "radians",
	"rint", "round", "sign", "signum", "sin", "sinh", "sqrt", "tan", "tanh", "current_database",
	"input_file_block_length", "input_file_block_start", "input_file_name", "grouping", "grouping_id",
	"java_method", "monotonically_increasing_id", "positive", "rand", "randn", "random", "reflect",
	"schema_of_csv", "spark_partition_id", "typeof", "uuid", "version", "xxhash64", "negative", "not",
	"or", "shiftleft", "shiftright", "shiftrightunsigned", "lpad", "printf", "repeat", "chr", "upper",
	"concat_ws", "parse_url", "ascii", "position", "like", "initcap", "substring_index", "unbase64",
	"regexp_extract", "translate", "right", "ltrim", "character_length", "lower", "md5", "rtrim",
	"ucase", "instr", "char_length", "space", "sentences", "encode", "char", "rpad", "levenshtein",
	"lcase", "soundex", "format_string", "decode", "base64", "regexp_replace", "locate", "left",
	"split", "from_csv", "named_struct", "to_csv", "explode", "explode_outer", "inline", "stack",
	"inline_outer", "posexplode", "posexplode_outer", "bin", "cast", "hex", "unhex", "lead",
	"row_number", "lag", "percent_rank", "cume_dist", "rank", "dense_rank", "ntile", "xpath",
	"xpath_boolean", "xpath_double", "xpath_float", "xpath_int", "xpath_long", "xpath_number",
	"xpath_short", "xpath_string",
}

var sparkTopLevelKeywords = []string{
	"ADD", "AFTER", "ALTER COLUMN", "ALTER TABLE", "CREATE TABLE", "CROSS JOIN", "DELETE FROM",
	"ELSE", "EXCEPT", "FETCH FIRST", "FROM", "GROUP BY", "GO", "HAVING", "INNER JOIN", "INSERT INTO",
	"INSERT", "JOIN", "LEFT JOIN", "LEFT OUTER JOIN", "LIMIT", "MODIFY", "ORDER BY", "OUTER JOIN",
	"PARTITION BY", "RIGHT JOIN", "RIGHT OUTER JOIN", "SELECT", "SET CURRENT SCHEMA", "SET SCHEMA",
	"SET", "THEN", "UPDATE", "VALUES", "WHEN", "WHERE",
}

var sparkTopLevelKeywordsNoIndent = []string{
	"INTERSECT ALL", "INTERSECT", "MINUS", "UNION ALL", "UNION",
}

var sparkNewlineKeywords = []string{
	"AND", "ELSE", "LATERAL", "ON", "OPTIONS", "OR", "PARTITIONED BY", "THEN", "USING", "WHEN", "XOR",
}
