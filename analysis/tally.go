package analysis

// Tally counts occurrences per key and remembers the order in which keys
// were first seen.
type Tally[K comparable] struct {
	keys   []K
	counts map[K]int
}

// Add increments the count for key.
func (t *Tally[K]) Add(key K) {
	if t.counts == nil {
		t.counts = make(map[K]int)
	}
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Keys returns the keys in first-insertion order.
func (t *Tally[K]) Keys() []K {
	return t.keys
}

// Count returns the count for key.
func (t *Tally[K]) Count(key K) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Tally[K]) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts.
func (t *Tally[K]) Total() int {
	total := 0
	for _, key := range t.keys {
		total += t.counts[key]
	}
	return total
}

// Examples groups example texts per key, keeping first-insertion key order.
type Examples[K comparable] struct {
	keys  []K
	texts map[K][]string
}

// Add appends text to the examples recorded for key.
func (e *Examples[K]) Add(key K, text string) {
	if e.texts == nil {
		e.texts = make(map[K][]string)
	}
	if _, ok := e.texts[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.texts[key] = append(e.texts[key], text)
}

// Keys returns the keys in first-insertion order.
func (e *Examples[K]) Keys() []K {
	return e.keys
}

// Texts returns the texts recorded for key, in insertion order.
func (e *Examples[K]) Texts(key K) []string {
	return e.texts[key]
}
