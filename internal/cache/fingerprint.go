// Package cache memoises rendered paxel buffers keyed by a fingerprint
// of the fused-point parameters that produced them, so that a caller
// re-rendering an identical paxel (a looped or repeated partial) can
// skip paxel rendering entirely.
package cache

import (
	"encoding/binary"
	"hash/crc32"
	"math"
	"sync"

	"github.com/rainbohz/paxelsynth/internal/physical"
)

// Fingerprint hashes a paxel's local fused-point list with
// crc32.ChecksumIEEE over a stable binary encoding of every point's
// fields. Two calls with equal points always produce equal fingerprints.
func Fingerprint(points []physical.EnvelopePoint) uint32 {
	buf := make([]byte, 0, len(points)*48)
	var scratch [8]byte
	putFloat := func(v float64) {
		binary.BigEndian.PutUint64(scratch[:], math.Float64bits(v))
		buf = append(buf, scratch[:]...)
	}
	putUint := func(v uint64) {
		binary.BigEndian.PutUint64(scratch[:], v)
		buf = append(buf, scratch[:]...)
	}
	for _, p := range points {
		putUint(p.Sample)
		putFloat(p.CycleAccumulator)
		putFloat(p.Frequency)
		putFloat(p.FrequencyRate)
		putFloat(p.Amplitude)
		putFloat(p.AmplitudeRate)
	}
	return crc32.ChecksumIEEE(buf)
}

// Cache memoises rendered paxel buffers by fingerprint. The zero value
// is not usable; use New.
type Cache struct {
	mu   sync.RWMutex
	data map[uint32][]int32
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{data: make(map[uint32][]int32)}
}

// Get returns the cached buffer for fingerprint, if present.
func (c *Cache) Get(fingerprint uint32) ([]int32, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	buf, ok := c.data[fingerprint]
	return buf, ok
}

// Put stores buf under fingerprint, overwriting any previous entry.
func (c *Cache) Put(fingerprint uint32, buf []int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[fingerprint] = buf
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
