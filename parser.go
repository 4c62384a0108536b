package pamflet

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

type parserMode uint8

const (
	modeData parserMode = iota
	modeTextElement
	modeElementProp
	modePropName
	modePropValue
	modeInitializeListElement
	modeListElementOptions
	modeLinkContent
	modeImageContent
	modeAudioSource
)

var parserModeNames = [...]string{
	modeData:                  "Data",
	modeTextElement:           "TextElement",
	modeElementProp:           "ElementProp",
	modePropName:              "PropName",
	modePropValue:             "PropValue",
	modeInitializeListElement: "InitializeListElement",
	modeListElementOptions:    "ListElementOptions",
	modeLinkContent:           "LinkContent",
	modeImageContent:          "ImageContent",
	modeAudioSource:           "AudioSource",
}

func (m parserMode) String() string {
	if int(m) < len(parserModeNames) {
		return parserModeNames[m]
	}
	return fmt.Sprintf("parserMode(%d)", uint8(m))
}

// ElementProp is a parsed `.name: value` line waiting to be applied to the
// open element.
type ElementProp struct {
	Name  string
	Value string
}

// parseState is threaded through every transition. A nil current means no
// element is open; pending holds a token handed back for the next state.
type parseState struct {
	mode    parserMode
	current Element
	prop    *ElementProp
	pending *Token
}

func (st parseState) to(mode parserMode) parseState {
	st.mode = mode
	return st
}

func (st parseState) reconsume(tok Token) parseState {
	st.pending = &tok
	return st
}

type parser struct {
	tokens   []Token
	cursor   int
	ids      IDGenerator
	log      *zap.Logger
	elements []Element
}

// Parse tokenizes and parses a pamflet. Malformed properties, indices and
// URLs are tolerated. A non-nil error is always an *UnexpectedStateError; the
// elements completed before it are returned alongside.
func Parse(src string, opts ...Option) ([]Element, error) {
	cfg := newConfig(opts)
	return parseTokens(tokenize(src, cfg), cfg)
}

// ParseTokens parses an existing token sequence.
func ParseTokens(tokens []Token, opts ...Option) ([]Element, error) {
	return parseTokens(tokens, newConfig(opts))
}

// ParseReader reads a whole pamflet from r, rejects invalid UTF-8 and binary
// data, and parses it.
func ParseReader(r io.Reader, opts ...Option) ([]Element, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pamflet: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return nil, err
	}
	return Parse(string(trimBOM(src)), opts...)
}

func parseTokens(tokens []Token, cfg config) ([]Element, error) {
	p := &parser{
		tokens: tokens,
		ids:    cfg.ids,
		log:    cfg.log,
	}
	elements, err := p.run()
	if err != nil {
		p.log.Debug("parse aborted", zap.Int("cursor", p.cursor), zap.Error(err))
		return elements, err
	}
	p.log.Debug("parsed pamflet", zap.Int("tokens", len(tokens)), zap.Int("elements", len(elements)))
	return elements, nil
}

func (p *parser) run() ([]Element, error) {
	st := parseState{mode: modeData}
	for {
		if st.mode == modeInitializeListElement {
			st = p.open(st, newList(p.ids.NewID())).to(modeListElementOptions)
			continue
		}
		tok, next, ok := p.next(st)
		if !ok {
			break
		}
		var err error
		st, err = p.step(next, tok)
		if err != nil {
			return p.elements, err
		}
	}
	p.flushElement(st)
	return p.elements, nil
}

func (p *parser) next(st parseState) (Token, parseState, bool) {
	if st.pending != nil {
		tok := *st.pending
		st.pending = nil
		return tok, st, true
	}
	if p.cursor >= len(p.tokens) {
		return Token{}, st, false
	}
	tok := p.tokens[p.cursor]
	p.cursor++
	return tok, st, true
}

func (p *parser) step(st parseState, tok Token) (parseState, error) {
	switch st.mode {
	case modeData:
		return p.data(st, tok), nil

	case modeTextElement:
		if tok.Kind != tokenText {
			return st, unexpected(st.mode, "Text token", tok.Kind.String())
		}
		return p.open(st, newText(p.ids.NewID(), tok.Text)).to(modeElementProp), nil

	case modeElementProp:
		if tok.Kind == tokenPropertyName {
			return st.reconsume(tok).to(modePropName), nil
		}
		return p.flushElement(st).reconsume(tok).to(modeData), nil

	case modePropName:
		if tok.Kind != tokenPropertyName {
			return st.reconsume(tok).to(modeData), nil
		}
		st.prop = &ElementProp{Name: tok.Text}
		return st.to(modePropValue), nil

	case modePropValue:
		switch tok.Kind {
		case tokenPropertyValue:
			if st.prop != nil {
				st.prop.Value = tok.Text
			}
			return p.flushProp(st).to(modeElementProp), nil
		case tokenPropertyName:
			return p.flushProp(st).reconsume(tok).to(modePropName), nil
		default:
			return p.flushElement(st.reconsume(tok)).to(modeData), nil
		}

	case modeListElementOptions:
		switch tok.Kind {
		case tokenListItem:
			list, ok := st.current.(*List)
			if !ok {
				return st, unexpected(st.mode, "list element", describe(st.current))
			}
			list.Items = append(list.Items, tok.Text)
			return st, nil
		case tokenPropertyName:
			return st.reconsume(tok).to(modeElementProp), nil
		default:
			return p.flushElement(st).reconsume(tok).to(modeData), nil
		}

	case modeLinkContent:
		link, ok := st.current.(*Link)
		if !ok {
			return st, unexpected(st.mode, "link element", describe(st.current))
		}
		if tok.Kind != tokenKeywordValue {
			return p.flushElement(st).reconsume(tok).to(modeData), nil
		}
		text, href := splitLinkContent(tok.Text)
		link.Href = href
		link.LinkText = text
		if link.LinkText == "" {
			link.LinkText = href
		}
		return st.to(modeElementProp), nil

	case modeImageContent:
		img, ok := st.current.(*Image)
		if !ok {
			return st, unexpected(st.mode, "image element", describe(st.current))
		}
		if tok.Kind != tokenKeywordValue {
			return p.flushElement(st).reconsume(tok).to(modeData), nil
		}
		img.Src, img.AltText = splitQuoted(tok.Text)
		return st.to(modeElementProp), nil

	case modeAudioSource:
		audio, ok := st.current.(*Audio)
		if !ok {
			return st, unexpected(st.mode, "audio element", describe(st.current))
		}
		switch tok.Kind {
		case tokenKeywordValue:
			audio.Src, _ = splitQuoted(tok.Text)
			return st.to(modeElementProp), nil
		case tokenPropertyName:
			return st.reconsume(tok).to(modeElementProp), nil
		default:
			return p.flushElement(st).reconsume(tok).to(modeData), nil
		}
	}
	return st, unexpected(st.mode, "a token-consuming state", tok.Kind.String())
}

// data is the top level: it decides which element the next token opens.
// Property, value, comment and stray keyword value tokens are skipped here.
func (p *parser) data(st parseState, tok Token) parseState {
	switch tok.Kind {
	case tokenText:
		return st.reconsume(tok).to(modeTextElement)
	case tokenListItem:
		return st.reconsume(tok).to(modeInitializeListElement)
	case tokenKeyword:
		switch tok.Text {
		case KeywordLink:
			return p.open(st, newLink(p.ids.NewID())).to(modeLinkContent)
		case KeywordImage:
			return p.open(st, &Image{ID: p.ids.NewID()}).to(modeImageContent)
		case KeywordAudio:
			return p.open(st, &Audio{ID: p.ids.NewID()}).to(modeAudioSource)
		default:
			p.log.Debug("ignoring unknown keyword", zap.String("keyword", tok.Text))
		}
	}
	return st
}

func (p *parser) open(st parseState, e Element) parseState {
	st = p.flushElement(st)
	st.current = e
	return st
}

func (p *parser) flushElement(st parseState) parseState {
	st = p.flushProp(st)
	if st.current != nil {
		p.elements = append(p.elements, st.current)
		st.current = nil
	}
	return st
}

func (p *parser) flushProp(st parseState) parseState {
	if st.prop != nil && st.current != nil {
		st.current = p.applyProperty(st.current, *st.prop)
	}
	st.prop = nil
	return st
}
