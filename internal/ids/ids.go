// Package ids generates entity identifiers. Every ID is a UUID rendered in
// base58 behind a short type prefix, e.g. "task_7sz6XUj...". Seeded runs
// swap the UUID's entropy source for a deterministic stream so identifiers
// reproduce across runs.
package ids

import (
	"encoding/binary"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// Entity type prefixes.
const (
	PrefixOrganization = "org"
	PrefixTeam         = "team"
	PrefixUser         = "user"
	PrefixMembership   = "member"
	PrefixProject      = "proj"
	PrefixSection      = "section"
	PrefixTask         = "task"
	PrefixSubtask      = "subtask"
	PrefixComment      = "comment"
	PrefixField        = "field"
	PrefixFieldValue   = "fieldval"
	PrefixTag          = "tag"
	PrefixTaskTag      = "tasktag"
	PrefixAttachment   = "attach"
)

// Source mints IDs from an entropy reader.
type Source struct {
	r io.Reader
}

// NewSource wraps an arbitrary entropy reader.
func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

// SeededSource mints reproducible IDs from a seeded generator.
func SeededSource(rng *rand.Rand) *Source {
	return NewSource(&randReader{rng: rng})
}

// New returns a fresh ID for the given prefix.
func (s *Source) New(prefix string) string {
	id := uuid.Must(uuid.NewRandomFromReader(s.r))
	return prefix + "_" + base58.Encode(id[:])
}

// randReader adapts a math/rand/v2 generator to io.Reader for UUID
// derivation.
type randReader struct {
	rng *rand.Rand
}

func (r *randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
