package pamflet

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

type tokenizerState uint8

const (
	stateStartOfLine tokenizerState = iota
	stateText
	statePropertyName
	statePropertyValue
	stateComment
	stateListItem
	stateKeyword
	stateKeywordValue
)

// keywordTable is ordered longest first so that a longer keyword sharing a
// prefix with a shorter one wins the lookahead.
var keywordTable = func() []string {
	kws := []string{KeywordLink, KeywordImage, KeywordAudio}
	sort.SliceStable(kws, func(i, j int) bool { return len(kws[i]) > len(kws[j]) })
	return kws
}()

type tokenizer struct {
	input     []rune
	cursor    int
	reconsume bool
	state     tokenizerState
	sep       Separator

	kind   tokenKind
	value  strings.Builder
	tokens []Token
}

// Tokenize splits a pamflet into tokens. It never fails: any input has a
// tokenization.
func Tokenize(src string, opts ...Option) []Token {
	cfg := newConfig(opts)
	return tokenize(src, cfg)
}

func tokenize(src string, cfg config) []Token {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	t := &tokenizer{
		input: []rune(src),
		sep:   cfg.separator,
	}
	tokens := t.run()
	cfg.log.Debug("tokenized pamflet",
		zap.Int("runes", len(t.input)),
		zap.Int("tokens", len(tokens)),
		zap.Stringer("separator", cfg.separator),
	)
	return tokens
}

func (t *tokenizer) run() []Token {
	for t.more() {
		switch t.state {
		case stateStartOfLine:
			t.startOfLine()
		case stateKeyword:
			t.keyword()
		case statePropertyName:
			t.propertyName()
		default:
			t.body()
		}
	}
	t.flush()
	return t.tokens
}

func (t *tokenizer) startOfLine() {
	r := t.next()
	switch {
	case r == '\n':
		// blank line
	case r == '\\':
		if t.peek() == 'n' {
			t.cursor++
			return
		}
		t.startText()
	case isKeywordStart(r):
		t.reconsume = true
		t.state = stateKeyword
	case r == '.' && isASCIILetter(t.peek()):
		t.open(tokenPropertyName)
		t.state = statePropertyName
	case r == '-' && t.peek() == ' ':
		t.cursor++
		t.open(tokenListItem)
		t.state = stateListItem
	case r == '/' && t.peek() == '/':
		t.cursor++
		t.open(tokenComment)
		t.state = stateComment
	default:
		t.startText()
	}
}

// keyword looks ahead from the current rune for a keyword followed by a
// space. Without a match the line is plain text.
func (t *tokenizer) keyword() {
	t.next()
	start := t.cursor - 1
	for _, kw := range keywordTable {
		end := start + len(kw)
		if end >= len(t.input) || t.input[end] != ' ' || !t.hasPrefixAt(start, kw) {
			continue
		}
		t.cursor = end + 1
		t.open(tokenKeyword)
		t.value.WriteString(kw)
		t.flush()
		t.open(tokenKeywordValue)
		t.state = stateKeywordValue
		return
	}
	t.startText()
}

func (t *tokenizer) propertyName() {
	r := t.next()
	switch {
	case r == '\n':
		t.endLine()
	case r == '\\':
		t.escape()
	case t.sep.accepts(r):
		t.flush()
		t.open(tokenPropertyValue)
		t.state = statePropertyValue
	default:
		t.value.WriteRune(r)
	}
}

// body accumulates the rest of a Text, Comment, ListItem, PropertyValue or
// KeywordValue line.
func (t *tokenizer) body() {
	r := t.next()
	switch r {
	case '\n':
		t.endLine()
	case '\\':
		t.escape()
	default:
		t.value.WriteRune(r)
	}
}

// escape handles a backslash. Only `\n` is meaningful; any other escape keeps
// the backslash and lets the following rune be read normally.
func (t *tokenizer) escape() {
	if t.peek() == 'n' {
		t.cursor++
		t.endLine()
		return
	}
	t.value.WriteRune('\\')
}

func (t *tokenizer) startText() {
	t.open(tokenText)
	t.reconsume = true
	t.state = stateText
}

func (t *tokenizer) endLine() {
	t.flush()
	t.state = stateStartOfLine
}

func (t *tokenizer) open(kind tokenKind) {
	t.kind = kind
	t.value.Reset()
}

func (t *tokenizer) flush() {
	if t.kind == tokenNull {
		return
	}
	text := t.value.String()
	if t.kind == tokenPropertyName || t.kind == tokenPropertyValue {
		text = strings.TrimSpace(text)
	}
	t.tokens = append(t.tokens, Token{Kind: t.kind, Text: text})
	t.kind = tokenNull
	t.value.Reset()
}

func (t *tokenizer) more() bool {
	return t.reconsume || t.cursor < len(t.input)
}

func (t *tokenizer) next() rune {
	if t.reconsume {
		t.reconsume = false
		return t.input[t.cursor-1]
	}
	r := t.input[t.cursor]
	t.cursor++
	return r
}

// peek returns the rune after the last one read, or 0 at the end of input.
func (t *tokenizer) peek() rune {
	if t.cursor < len(t.input) {
		return t.input[t.cursor]
	}
	return 0
}

func (t *tokenizer) hasPrefixAt(start int, s string) bool {
	i := start
	for _, r := range s {
		if i >= len(t.input) || t.input[i] != r {
			return false
		}
		i++
	}
	return true
}

func isKeywordStart(r rune) bool {
	for _, kw := range keywordTable {
		for _, first := range kw {
			if first == r {
				return true
			}
			break
		}
	}
	return false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
