package mapping

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"
	"sync"

	"github.com/coreman2200/ledmapper/geometry"
)

// Cache memoizes generated tables keyed by geometry fingerprint and grid
// size, so repeated exports of the same pattern skip regeneration. Safe
// for concurrent use; cached tables are shared and must not be mutated.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]Table
}

func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]Table)}
}

// Get returns the cached table for (g, width, height), generating and
// caching it on first use.
func (c *Cache) Get(g geometry.Model, width, height int) (Table, error) {
	key := Fingerprint(g, width, height)

	c.mu.Lock()
	t, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return t, nil
	}

	t, err := Generate(g, width, height)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = t
	c.mu.Unlock()
	return t, nil
}

// Invalidate drops the cached table for (g, width, height), e.g. after the
// pattern's geometry was edited.
func (c *Cache) Invalidate(g geometry.Model, width, height int) {
	c.mu.Lock()
	delete(c.entries, Fingerprint(g, width, height))
	c.mu.Unlock()
}

// Fingerprint hashes a geometry model plus grid size into a stable cache
// key. Two models fingerprint equal iff they generate the same table.
func Fingerprint(g geometry.Model, width, height int) uint64 {
	h := fnv.New64a()
	hstr(h, string(g.Kind()))
	hint(h, width)
	hint(h, height)

	switch v := g.(type) {
	case geometry.Rectangular:
		hint(h, v.Width)
		hint(h, v.Height)
	case geometry.Circle:
		hfloat(h, v.Radius)
		hfloat(h, v.StartAngle)
		hint(h, v.LEDs)
	case geometry.Ring:
		hfloat(h, v.OuterRadius)
		hfloat(h, v.InnerRadius)
		hfloat(h, v.StartAngle)
		hint(h, v.LEDs)
	case geometry.Arc:
		hfloat(h, v.Radius)
		hfloat(h, v.StartAngle)
		hfloat(h, v.EndAngle)
		hint(h, v.LEDs)
	case geometry.MultiRing:
		hfloat(h, v.RingSpacing)
		hfloat(h, v.StartAngle)
		hint(h, len(v.Rings))
		for _, r := range v.Rings {
			hint(h, r.LEDs)
			hfloat(h, r.Radius)
		}
	case geometry.RadialRays:
		hint(h, v.Rays)
		hint(h, v.LEDsPerRay)
		hfloat(h, v.SpacingAngle)
		hfloat(h, v.LEDSpacing)
		hfloat(h, v.StartAngle)
	case geometry.Custom:
		hstr(h, string(v.Unit))
		hfloat(h, v.Pitch)
		hint(h, len(v.Positions))
		for _, p := range v.Positions {
			hfloat(h, p.X)
			hfloat(h, p.Y)
		}
	}
	return h.Sum64()
}

func hstr(h io.Writer, s string) {
	h.Write([]byte(s))
	h.Write([]byte{0})
}

func hint(h io.Writer, v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	h.Write(buf[:])
}

func hfloat(h io.Writer, v float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	h.Write(buf[:])
}
