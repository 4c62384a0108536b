package pamflet

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error wrapping ErrInvalidUTF8 or ErrBinaryInput if
// src is not valid UTF-8 or looks like binary data: a NUL rune, or at least
// maxControlPct percent control runes once minBinarySample runes were seen.
func ValidateInput(src []byte) error {
	var runes, control int
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, i)
		case r == 0:
			return fmt.Errorf("%w: NUL at byte %d", ErrBinaryInput, i)
		case isControlRune(r):
			control++
		}
		runes++
		i += size
	}
	if runes >= minBinarySample && control*100 >= runes*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	if r < 0x20 || r == 0x7F {
		return true
	}
	return false
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
