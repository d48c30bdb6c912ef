// Package tokenizer classifies SQL query text into an ordered, lossless
// stream of tokens.
//
// Whitespace and comments are tokens like any other, so joining the text of
// every token reproduces the input byte for byte:
//
//	tok, err := tokenizer.New(tokenizer.Rules{
//		ReservedKeywords: []string{"AS"},
//		TopLevelKeywords: []string{"SELECT", "FROM"},
//		OpenParens:       []string{"(", "CASE"},
//		CloseParens:      []string{")", "END"},
//		StringTypes:      []string{`''`, `""`},
//		LineCommentTypes: []string{"--"},
//	})
//	if err != nil {
//		return err
//	}
//
//	tokens, err := tok.Tokenize("select a as b from t")
//	fmt.Println(tokens.String() == "select a as b from t") // true
//
// Keyword lists are matched case-insensitively, longest keyword first, and a
// space inside a multi-word keyword ("GROUP BY") matches any whitespace run.
// The rules are compiled into a participle stateful lexer once per Rules
// value; a Tokenizer holds no per-call state.
package tokenizer
