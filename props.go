package pamflet

import (
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Recognized property names.
const (
	PropColor       = "color"
	PropFontSize    = "fontSize"
	PropTextAlign   = "textAlign"
	PropCorrect     = "correct"
	PropExplanation = "explanation"
)

// applyProperty sets prop on e and returns the element that is open
// afterwards. Only `correct` on a List changes the element itself. Unknown
// names and values are ignored.
func (p *parser) applyProperty(e Element, prop ElementProp) Element {
	switch el := e.(type) {
	case *List:
		if prop.Name == PropCorrect {
			return promoteList(el, prop.Value)
		}
	case *Text:
		if prop.Name == PropTextAlign {
			if align, ok := parseTextAlign(prop.Value); ok {
				el.TextAlign = align
			} else {
				p.ignore(e, prop)
			}
			return e
		}
	case Multichoice:
		if prop.Name == PropExplanation {
			el.Question().Explanation = prop.Value
			return e
		}
	}
	if styled, ok := e.(Styled); ok {
		switch prop.Name {
		case PropColor:
			styled.Style().Color = prop.Value
			return e
		case PropFontSize:
			styled.Style().FontSize = prop.Value
			return e
		}
	}
	p.ignore(e, prop)
	return e
}

func (p *parser) ignore(e Element, prop ElementProp) {
	p.log.Debug("ignoring property",
		zap.String("element", string(e.Kind())),
		zap.String("name", prop.Name),
		zap.String("value", prop.Value),
	)
}

// promoteList turns a list into a question. The list keeps its ID, style and
// items; the items become the options.
func promoteList(list *List, correct string) Multichoice {
	indices := parseCorrect(correct, len(list.Items))
	choices := Choices{Options: list.Items}
	switch len(indices) {
	case 0:
		return &SingleSelect{ID: list.ID, TextStyle: list.TextStyle, Choices: choices}
	case 1:
		answer := indices[0]
		return &SingleSelect{ID: list.ID, TextStyle: list.TextStyle, Choices: choices, Correct: &answer}
	default:
		return &MultiSelect{ID: list.ID, TextStyle: list.TextStyle, Choices: choices, Correct: indices}
	}
}

// parseCorrect reads a comma separated set of option indices. One malformed or
// out of range entry voids the whole set. Repeated indices are kept once.
func parseCorrect(value string, options int) []int {
	var indices []int
	for _, piece := range strings.Split(value, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(piece), 10, 0)
		if err != nil || n >= uint64(options) {
			return nil
		}
		idx := int(n)
		if !slices.Contains(indices, idx) {
			indices = append(indices, idx)
		}
	}
	return indices
}
