package services

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"sync"
	"time"
)

const idSuffixLen = 4

var idSuffixAlphabet = []byte("0123456789abcdefghijklmnopqrstuvwxyz")

// IDGenerator issues submission IDs of the form <base36 unix millis>-<4 random base36 chars>.
// The millisecond component never repeats within one generator: when the clock has not
// advanced past the last issued value it is bumped by one. IDs therefore stay unique in a
// process and still sort by creation time. Uniqueness across processes relies on the
// random suffix only; no store lookup is made.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDGenerator returns a generator that reads the given clock; nil means time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// New returns a fresh submission ID.
func (g *IDGenerator) New() (string, error) {
	g.mu.Lock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	g.mu.Unlock()

	suffix := make([]byte, idSuffixLen)
	limit := big.NewInt(int64(len(idSuffixAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		suffix[i] = idSuffixAlphabet[n.Int64()]
	}
	return strconv.FormatInt(ms, 36) + "-" + string(suffix), nil
}
