package pamflet

import (
	"math/big"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDLength is the length of a generated element ID.
const IDLength = 20

// IDGenerator produces element IDs.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

// NewID calls f.
func (f IDGeneratorFunc) NewID() string { return f() }

type randomIDs struct{}

// DefaultIDGenerator returns the generator used when no WithIDGenerator option
// is given: random base-36 IDs of IDLength lowercase letters and digits. It is
// safe for concurrent use.
func DefaultIDGenerator() IDGenerator { return randomIDs{} }

func (randomIDs) NewID() string {
	u := uuid.New()
	s := new(big.Int).SetBytes(u[:]).Text(36)
	if len(s) < IDLength {
		s = strings.Repeat("0", IDLength-len(s)) + s
	}
	return s[len(s)-IDLength:]
}

// SequenceIDs yields zero padded decimal IDs 00000000000000000001,
// 00000000000000000002, ... for reproducible output.
type SequenceIDs struct {
	n atomic.Uint64
}

// NewSequenceIDs returns a SequenceIDs starting at 1.
func NewSequenceIDs() *SequenceIDs { return &SequenceIDs{} }

func (s *SequenceIDs) NewID() string {
	n := strconv.FormatUint(s.n.Add(1), 10)
	return strings.Repeat("0", IDLength-len(n)) + n
}
