package pamflet

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var urlValidator = validator.New()

// IsValidURL reports whether s is an absolute URL.
func IsValidURL(s string) bool {
	if s == "" {
		return false
	}
	return urlValidator.Var(s, "url") == nil
}

// splitQuoted returns the content of the first double-quoted span in s and
// the rest of s with that span removed and trimmed. Without a quoted pair it
// returns "" and s unchanged.
func splitQuoted(s string) (quoted, rest string) {
	open := strings.IndexByte(s, '"')
	if open < 0 {
		return "", s
	}
	end := strings.IndexByte(s[open+1:], '"')
	if end < 0 {
		return "", s
	}
	closing := open + 1 + end
	return s[open+1 : closing], strings.TrimSpace(s[:open] + s[closing+1:])
}

var urlSchemes = []string{"http://", "https://"}

// splitLinkContent separates the text after `Lnk` into display text and href.
// A quoted span is taken as the href when it is a valid URL as written.
// Without quotes the first bare http:// or https:// URL up to the next space
// is cut out of the text.
func splitLinkContent(s string) (text, href string) {
	s = strings.TrimSpace(s)
	var quoted, plain strings.Builder
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case inQuotes:
			quoted.WriteRune(r)
		default:
			plain.WriteRune(r)
		}
	}
	text = strings.TrimSpace(plain.String())

	if quoted.Len() > 0 {
		if candidate := quoted.String(); IsValidURL(candidate) {
			href = candidate
		}
		return text, href
	}

	start := firstURLIndex(text)
	if start < 0 {
		return text, ""
	}
	end := strings.IndexByte(text[start:], ' ')
	if end < 0 {
		end = len(text)
	} else {
		end += start
	}
	href = text[start:end]
	before := strings.TrimSpace(text[:start])
	after := strings.TrimSpace(text[end:])
	switch {
	case before == "":
		text = after
	case after == "":
		text = before
	default:
		text = before + " " + after
	}
	return text, href
}

func firstURLIndex(s string) int {
	first := -1
	for _, scheme := range urlSchemes {
		if i := strings.Index(s, scheme); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	return first
}
