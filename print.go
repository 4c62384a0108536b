package pamflet

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	bodyIndent   = 2
	minWrapWidth = 10
)

// PrintConfig configures Fprint.
type PrintConfig struct {
	// Width wraps body lines to this many columns. Zero disables wrapping.
	Width int
	// Theme styles the listing; nil means DefaultTheme.
	Theme Theme
	// OSC8 emits link text as terminal hyperlinks.
	OSC8 bool
}

// Fprint writes a human readable listing of elements to w: one header line
// per element with its kind and properties, followed by its indented body.
func Fprint(w io.Writer, elements []Element, cfg PrintConfig) error {
	theme := cfg.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	p := printer{styles: theme.Styles(), width: cfg.Width, osc8: cfg.OSC8}
	for _, e := range elements {
		p.element(e)
	}
	_, err := io.WriteString(w, p.out.String())
	return err
}

type printer struct {
	styles Styles
	width  int
	osc8   bool
	out    strings.Builder
}

type attr struct {
	key   string
	value string
}

func (p *printer) element(e Element) {
	attrs := []attr{{"id", e.ElementID()}}
	if s, ok := e.(Styled); ok {
		st := s.Style()
		if st.Color != "" {
			attrs = append(attrs, attr{"color", st.Color})
		}
		attrs = append(attrs, attr{"fontSize", st.FontSize})
	}

	switch el := e.(type) {
	case *Text:
		p.header(el, append(attrs, attr{"textAlign", string(el.TextAlign)}))
		p.block("", p.styles.Body.render(el.Content))
	case *List:
		p.header(el, attrs)
		for _, item := range el.Items {
			p.block(p.styles.Marker.render("-")+" ", p.styles.Body.render(item))
		}
	case *SingleSelect:
		answer := "none"
		if el.Correct != nil {
			answer = strconv.Itoa(*el.Correct)
		}
		p.header(el, append(attrs, attr{"correct", answer}))
		p.options(&el.Choices, func(i int) bool { return el.Correct != nil && *el.Correct == i })
	case *MultiSelect:
		answers := make([]string, len(el.Correct))
		for i, c := range el.Correct {
			answers[i] = strconv.Itoa(c)
		}
		p.header(el, append(attrs, attr{"correct", strings.Join(answers, ",")}))
		p.options(&el.Choices, func(i int) bool { return slices.Contains(el.Correct, i) })
	case *Link:
		p.header(el, attrs)
		p.link(el)
	case *Image:
		p.header(el, attrs)
		p.block("src: ", el.Src)
		if el.AltText != "" {
			p.block("alt: ", el.AltText)
		}
	case *Audio:
		p.header(el, attrs)
		p.block("src: ", el.Src)
	}
}

func (p *printer) header(e Element, attrs []attr) {
	p.out.WriteString(p.styles.Label.render("[" + string(e.Kind()) + "]"))
	for _, a := range attrs {
		p.out.WriteByte(' ')
		p.out.WriteString(p.styles.Attribute.render(a.key + "=" + a.value))
	}
	p.out.WriteByte('\n')
}

func (p *printer) options(c *Choices, correct func(int) bool) {
	for i, option := range c.Options {
		marker := p.styles.Marker.render("[ ]")
		if correct(i) {
			marker = p.styles.Correct.render("[x]")
		}
		p.block(marker+" "+strconv.Itoa(i)+". ", p.styles.Body.render(option))
	}
	if c.Explanation != "" {
		p.block("explanation: ", p.styles.Body.render(c.Explanation))
	}
}

// link writes the caption and, when it differs, the URL. Hyperlinks are added
// around each finished line so the wrapper never sees OSC 8 sequences.
func (p *printer) link(l *Link) {
	text := p.styles.LinkText.render(l.LinkText)
	if l.Href != "" && l.Href != l.LinkText {
		limit := p.width - bodyIndent - ansi.PrintableRuneWidth(l.LinkText) - 3
		if p.width <= 0 {
			limit = 0
		}
		text += " (" + p.styles.LinkURL.render(fitURL(l.Href, limit)) + ")"
	}
	lines := p.wrap("", text)
	if !p.osc8 || l.Href == "" {
		p.write(lines)
		return
	}
	margin := strings.Repeat(" ", bodyIndent)
	for _, line := range lines {
		p.out.WriteString(margin + hyperlink(l.Href, line) + "\n")
	}
}

func (p *printer) block(prefix, text string) {
	p.write(p.wrap(prefix, text))
}

// wrap breaks text to the body width. Continuation lines are aligned after
// prefix.
func (p *printer) wrap(prefix, text string) []string {
	if p.width > 0 {
		limit := p.width - bodyIndent - ansi.PrintableRuneWidth(prefix)
		if limit < minWrapWidth {
			limit = minWrapWidth
		}
		text = wordwrap.String(text, limit)
	}
	pad := strings.Repeat(" ", ansi.PrintableRuneWidth(prefix))
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = prefix + line
		} else {
			lines[i] = pad + line
		}
	}
	return lines
}

func (p *printer) write(lines []string) {
	p.out.WriteString(indent.String(strings.Join(lines, "\n"), bodyIndent))
	p.out.WriteByte('\n')
}

// fitURL shortens url to limit columns, first by dropping the scheme and then
// by truncating with an ellipsis. A limit of zero or less keeps url intact.
func fitURL(url string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncate.StringWithTail(url, uint(limit), "…")
}
