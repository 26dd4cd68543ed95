package searcher

import "sort"

// ValueCache maps board signatures to exact minimax values. Entries are never
// invalidated: the value of a signature does not depend on how it was reached.
type ValueCache struct {
	values map[string]float64
}

func NewValueCache() *ValueCache {
	return &ValueCache{values: map[string]float64{}}
}

func (c *ValueCache) Get(signature string) (float64, bool) {
	v, ok := c.values[signature]
	return v, ok
}

func (c *ValueCache) Store(signature string, value float64) {
	c.values[signature] = value
}

func (c *ValueCache) Len() int {
	return len(c.values)
}

// Signatures in lexical order
func (c *ValueCache) Signatures() []string {
	sigs := make([]string, 0, len(c.values))
	for s := range c.values {
		sigs = append(sigs, s)
	}
	sort.Strings(sigs)
	return sigs
}
