package pamflet

import "strconv"

// Token is a classified run of source text.
type Token struct {
	Kind tokenKind
	Text string
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and tests.
type TokenKind = tokenKind

const (
	tokenNull tokenKind = iota
	tokenText
	tokenPropertyName
	tokenPropertyValue
	tokenComment
	tokenListItem
	tokenKeyword
	tokenKeywordValue
)

const (
	// TokenText represents a line of prose.
	TokenText tokenKind = tokenText
	// TokenPropertyName is the name part of a `.name: value` line.
	TokenPropertyName tokenKind = tokenPropertyName
	// TokenPropertyValue is the value part of a `.name: value` line.
	TokenPropertyValue tokenKind = tokenPropertyValue
	// TokenComment is the text after `//`.
	TokenComment tokenKind = tokenComment
	// TokenListItem is the text after `- `.
	TokenListItem tokenKind = tokenListItem
	// TokenKeyword is a reserved word such as Lnk, Img or Aud.
	TokenKeyword tokenKind = tokenKeyword
	// TokenKeywordValue is the rest of a keyword line.
	TokenKeywordValue tokenKind = tokenKeywordValue
)

var tokenKindNames = [...]string{
	tokenNull:          "Null",
	tokenText:          "Text",
	tokenPropertyName:  "PropertyName",
	tokenPropertyValue: "PropertyValue",
	tokenComment:       "Comment",
	tokenListItem:      "ListItem",
	tokenKeyword:       "Keyword",
	tokenKeywordValue:  "KeywordValue",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "Unknown"
}

func (t Token) String() string {
	return t.Kind.String() + " " + strconv.Quote(t.Text)
}

// Keywords lists the reserved words that open a keyword block.
const (
	KeywordLink  = "Lnk"
	KeywordImage = "Img"
	KeywordAudio = "Aud"
)
