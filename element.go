package pamflet

// DefaultFontSize is the font size of a textual element without a fontSize
// property.
const DefaultFontSize = "1.2rem"

// ElementKind names an element variant.
type ElementKind string

const (
	KindText         ElementKind = "text"
	KindList         ElementKind = "list"
	KindSingleSelect ElementKind = "single_select"
	KindMultiSelect  ElementKind = "multi_select"
	KindLink         ElementKind = "link"
	KindImage        ElementKind = "image"
	KindAudio        ElementKind = "audio"
)

// Element is one renderable unit parsed from a pamflet. The set of variants
// is closed: *Text, *List, *SingleSelect, *MultiSelect, *Link, *Image and
// *Audio.
type Element interface {
	ElementID() string
	Kind() ElementKind
	element()
}

// Styled is implemented by elements that carry text styling.
// Image and Audio are not Styled.
type Styled interface {
	Element
	Style() *TextStyle
}

// Multichoice is implemented by the question variants a list is promoted to.
type Multichoice interface {
	Styled
	Question() *Choices
}

// TextStyle holds the visual properties shared by textual elements.
type TextStyle struct {
	Color    string `json:"color"`
	FontSize string `json:"fontSize"`
}

// Style returns the style for in-place updates.
func (s *TextStyle) Style() *TextStyle { return s }

func defaultStyle() TextStyle {
	return TextStyle{FontSize: DefaultFontSize}
}

// Choices holds the options and explanation of a multichoice element.
type Choices struct {
	Options     []string `json:"options"`
	Explanation string   `json:"explanation"`
}

// Question returns the choices for in-place updates.
func (c *Choices) Question() *Choices { return c }

// TextAlign is the horizontal alignment of a Text element.
type TextAlign string

const (
	AlignCenter TextAlign = "center"
	AlignLeft   TextAlign = "left"
	AlignRight  TextAlign = "right"
	AlignStart  TextAlign = "start"
	AlignEnd    TextAlign = "end"
)

func parseTextAlign(value string) (TextAlign, bool) {
	switch TextAlign(value) {
	case AlignCenter, AlignLeft, AlignRight, AlignStart, AlignEnd:
		return TextAlign(value), true
	}
	return "", false
}

// Text is a block of prose.
type Text struct {
	ID string `json:"id"`
	TextStyle
	Content   string    `json:"content"`
	TextAlign TextAlign `json:"textAlign"`
}

// List is a bulleted list. A list that receives a `correct` property is
// replaced by a SingleSelect or MultiSelect.
type List struct {
	ID string `json:"id"`
	TextStyle
	Items []string `json:"items"`
}

// SingleSelect is a question with at most one correct option.
type SingleSelect struct {
	ID string `json:"id"`
	TextStyle
	Choices
	Correct *int `json:"correct"`
}

// MultiSelect is a question with two or more correct options.
type MultiSelect struct {
	ID string `json:"id"`
	TextStyle
	Choices
	Correct []int `json:"correct"`
}

// Link is a hyperlink with display text.
type Link struct {
	ID string `json:"id"`
	TextStyle
	Href     string `json:"href"`
	LinkText string `json:"linkText"`
}

// Image references an image source.
type Image struct {
	ID      string `json:"id"`
	Src     string `json:"src"`
	AltText string `json:"altText"`
}

// Audio references an audio source.
type Audio struct {
	ID  string `json:"id"`
	Src string `json:"src"`
}

func newText(id, content string) *Text {
	return &Text{ID: id, TextStyle: defaultStyle(), Content: content, TextAlign: AlignCenter}
}

func newList(id string) *List {
	return &List{ID: id, TextStyle: defaultStyle(), Items: []string{}}
}

func newLink(id string) *Link {
	return &Link{ID: id, TextStyle: defaultStyle()}
}

func (e *Text) ElementID() string         { return e.ID }
func (e *List) ElementID() string         { return e.ID }
func (e *SingleSelect) ElementID() string { return e.ID }
func (e *MultiSelect) ElementID() string  { return e.ID }
func (e *Link) ElementID() string         { return e.ID }
func (e *Image) ElementID() string        { return e.ID }
func (e *Audio) ElementID() string        { return e.ID }

func (*Text) Kind() ElementKind         { return KindText }
func (*List) Kind() ElementKind         { return KindList }
func (*SingleSelect) Kind() ElementKind { return KindSingleSelect }
func (*MultiSelect) Kind() ElementKind  { return KindMultiSelect }
func (*Link) Kind() ElementKind         { return KindLink }
func (*Image) Kind() ElementKind        { return KindImage }
func (*Audio) Kind() ElementKind        { return KindAudio }

func (*Text) element()         {}
func (*List) element()         {}
func (*SingleSelect) element() {}
func (*MultiSelect) element()  {}
func (*Link) element()         {}
func (*Image) element()        {}
func (*Audio) element()        {}

var (
	_ Styled      = (*Text)(nil)
	_ Styled      = (*List)(nil)
	_ Styled      = (*Link)(nil)
	_ Multichoice = (*SingleSelect)(nil)
	_ Multichoice = (*MultiSelect)(nil)
	_ Element     = (*Image)(nil)
	_ Element     = (*Audio)(nil)
)
