// Package seed derives reproducible 64-bit seeds from an ordered fold of
// hashed inputs. Two invocations folding the same values in the same order
// inside the same time bucket always produce the same seed.
package seed

import (
	"encoding/binary"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Granularity selects the time-bucket width folded into a seed.
type Granularity int

const (
	Second Granularity = iota
	Minute
	Day
)

const (
	secondLen = 1
	minuteLen = 60
	hourLen   = 60 * minuteLen
	dayLen    = 24 * hourLen

	// Day buckets roll over at midnight UTC+7, not midnight UTC.
	dayOffset = 7 * hourLen
)

// BucketStart returns the start (unix seconds) of the bucket containing t.
func BucketStart(kind Granularity, t time.Time) int64 {
	secs := t.Unix()
	switch kind {
	case Minute:
		return secs - secs%minuteLen
	case Day:
		return secs - (secs+dayOffset)%dayLen
	default:
		return secs - secs%secondLen
	}
}

// Generator folds heterogeneous inputs into a seed. The fold is
// order-sensitive; callers must fix the order per command.
type Generator struct {
	h   *xxhash.Digest
	now func() time.Time
}

func New() *Generator {
	return &Generator{h: xxhash.New(), now: time.Now}
}

// NewAt pins the generator's clock, for reproducing a specific bucket.
func NewAt(now func() time.Time) *Generator {
	return &Generator{h: xxhash.New(), now: now}
}

// Time folds the current bucket start for the given granularity.
func (g *Generator) Time(kind Granularity) *Generator {
	return g.Uint64(uint64(BucketStart(kind, g.now())))
}

func (g *Generator) Uint64(v uint64) *Generator {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = g.h.Write(buf[:])
	return g
}

func (g *Generator) Int(v int) *Generator {
	return g.Uint64(uint64(v))
}

// String folds a length-prefixed string, so adjacent string inputs cannot
// run together into the same byte stream.
func (g *Generator) String(s string) *Generator {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], uint64(len(s)))
	_, _ = g.h.Write(buf[:n])
	_, _ = g.h.WriteString(s)
	return g
}

func (g *Generator) Finish() uint64 {
	return g.h.Sum64()
}
