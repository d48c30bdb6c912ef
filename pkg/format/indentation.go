package format

import "strings"

type indentType int

const (
	indentTopLevel indentType = iota
	indentBlockLevel
)

// indentation tracks nested top-level clauses and paren blocks. The current
// indent is one unit per stacked entry.
type indentation struct {
	unit  string
	stack []indentType
}

func newIndentation(unit string) *indentation {
	return &indentation{unit: unit}
}

func (i *indentation) String() string {
	return strings.Repeat(i.unit, len(i.stack))
}

func (i *indentation) increaseTopLevel() {
	i.stack = append(i.stack, indentTopLevel)
}

func (i *indentation) increaseBlockLevel() {
	i.stack = append(i.stack, indentBlockLevel)
}

// decreaseTopLevel pops the innermost entry only if it is a top-level one.
func (i *indentation) decreaseTopLevel() {
	if n := len(i.stack); n > 0 && i.stack[n-1] == indentTopLevel {
		i.stack = i.stack[:n-1]
	}
}

// decreaseBlockLevel pops entries up to and including the innermost block, so
// clauses opened inside the block are closed with it.
func (i *indentation) decreaseBlockLevel() {
	for len(i.stack) > 0 {
		top := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]

		if top != indentTopLevel {
			return
		}
	}
}

func (i *indentation) reset() {
	i.stack = i.stack[:0]
}
