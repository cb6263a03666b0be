package generate

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	mathrand "math/rand/v2"
)

// Golden ratio increment, the splitmix64 mixing constant.
const seedMix = 0x9E3779B97F4A7C15

// subRand derives an isolated stream from the run seed, a stage label, and
// a sequence index. Two units of work never share a stream, so within-stage
// parallelism cannot perturb what any unit draws.
func subRand(seed uint64, stage string, index int) *mathrand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(stage))

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(index))
	_, _ = h.Write(buf[:])

	mixed := h.Sum64()

	return mathrand.New(mathrand.NewPCG(seed^mixed, mixed*seedMix+seed))
}

// randomSeed draws a fresh run seed from the OS entropy source, for runs
// that did not pin one.
func randomSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to draw run seed: %w", err)
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}
