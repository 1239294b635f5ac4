package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	mrand "math/rand"
	"sync"
)

// Rand abstracts the randomness used for job-id suffixes, domain availability
// and domain pricing. Inject a SeededRand in tests for reproducible output.
type Rand interface {
	// Hex returns n lowercase hexadecimal characters.
	Hex(n int) string
	Bool() bool
	// IntBetween returns a random integer in [min, max].
	IntBetween(min, max int) int
}

// NewRand returns the production Rand, backed by crypto/rand. It is safe for
// concurrent use and needs no locking.
func NewRand() Rand {
	return cryptoRand{}
}

type cryptoRand struct{}

func (cryptoRand) Hex(n int) string {
	b := make([]byte, (n+1)/2)
	// crypto/rand.Read never fails on supported platforms.
	_, _ = crand.Read(b)
	return hex.EncodeToString(b)[:n]
}

func (cryptoRand) Bool() bool {
	var b [1]byte
	_, _ = crand.Read(b[:])
	return b[0]&1 == 1
}

func (cryptoRand) IntBetween(min, max int) int {
	var b [4]byte
	_, _ = crand.Read(b[:])
	span := uint32(max - min + 1)
	return min + int(binary.BigEndian.Uint32(b[:])%span)
}

// SeededRand is a deterministic Rand for tests.
type SeededRand struct {
	mu sync.Mutex
	r  *mrand.Rand
}

func NewSeededRand(seed int64) *SeededRand {
	return &SeededRand{r: mrand.New(mrand.NewSource(seed))}
}

func (s *SeededRand) Hex(n int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, (n+1)/2)
	s.r.Read(b)
	return hex.EncodeToString(b)[:n]
}

func (s *SeededRand) Bool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(2) == 1
}

func (s *SeededRand) IntBetween(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.r.Intn(max-min+1)
}
