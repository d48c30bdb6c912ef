package format

import "github.com/pseudomuto/sqlfmt/pkg/tokenizer"

// inlineBlock decides whether a paren group is short and simple enough to be
// kept on one line, and tracks the nesting within such a group.
type inlineBlock struct {
	maxLength int
	level     int
}

// beginIfPossible is called at every open paren. Outside an inline block it
// starts one when the group at index fits; inside, it only nests deeper.
func (b *inlineBlock) beginIfPossible(tokens tokenizer.Tokens, index int) {
	switch {
	case b.level == 0 && b.isInline(tokens, index):
		b.level = 1
	case b.level > 0:
		b.level++
	default:
		b.level = 0
	}
}

func (b *inlineBlock) end() {
	if b.level > 0 {
		b.level--
	}
}

func (b *inlineBlock) active() bool {
	return b.level > 0
}

// isInline scans forward from the open paren at index. The group is inline
// when its matching close paren is reached within maxLength runes, with no
// clause keyword, newline keyword, comment or statement separator before it.
func (b *inlineBlock) isInline(tokens tokenizer.Tokens, index int) bool {
	length := 0
	level := 0

	for _, tok := range tokens[index:] {
		length += tok.Len()
		if length > b.maxLength {
			return false
		}

		switch tok.Kind {
		case tokenizer.OpenParen:
			level++
		case tokenizer.CloseParen:
			level--
			if level == 0 {
				return true
			}
		case tokenizer.TopLevelKeyword,
			tokenizer.NewlineKeyword,
			tokenizer.LineComment,
			tokenizer.BlockComment:
			return false
		case tokenizer.Operator:
			if tok.Text == ";" {
				return false
			}
		}
	}

	return false
}
