package tokenizer

// Kind classifies a token.
type Kind int

const (
	Whitespace Kind = iota
	Word
	Keyword
	ReservedKeyword
	TopLevelKeyword
	TopLevelKeywordNoIndent
	NewlineKeyword
	Operator
	OpenParen
	CloseParen
	LineComment
	BlockComment
	Number
	String
)

var kindNames = [...]string{
	Whitespace:              "Whitespace",
	Word:                    "Word",
	Keyword:                 "Keyword",
	ReservedKeyword:         "ReservedKeyword",
	TopLevelKeyword:         "TopLevelKeyword",
	TopLevelKeywordNoIndent: "TopLevelKeywordNoIndent",
	NewlineKeyword:          "NewlineKeyword",
	Operator:                "Operator",
	OpenParen:               "OpenParen",
	CloseParen:              "CloseParen",
	LineComment:             "LineComment",
	BlockComment:            "BlockComment",
	Number:                  "Number",
	String:                  "String",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k]
}

// IsKeyword reports whether tokens of this kind came from one of the keyword lists.
func (k Kind) IsKeyword() bool {
	switch k {
	case Keyword, ReservedKeyword, TopLevelKeyword, TopLevelKeywordNoIndent, NewlineKeyword:
		return true
	default:
		return false
	}
}

// IsComment reports whether the kind is a line or block comment.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment
}
