package roster

import "math/bits"

const bitsPerWord = 64

// BitSet is a growable bit vector keyed by ComponentTypeIndex. It backs
// both entity signatures and compiled query masks.
//
// Storage grows on Set to fit the highest index ever set and never shrinks;
// Clear only zeroes the bit. Every binary operation is defined for operands
// of differing word counts, with the shorter operand treated as zero-padded.
type BitSet struct {
	words []uint64
}

// Set marks index i, growing the backing storage if needed.
func (b *BitSet) Set(i ComponentTypeIndex) {
	word := int(i / bitsPerWord)
	for len(b.words) <= word {
		b.words = append(b.words, 0)
	}
	b.words[word] |= 1 << (i % bitsPerWord)
}

// Clear unmarks index i. Storage is retained.
func (b *BitSet) Clear(i ComponentTypeIndex) {
	word := int(i / bitsPerWord)
	if word >= len(b.words) {
		return
	}
	b.words[word] &^= 1 << (i % bitsPerWord)
}

// Test reports whether index i is set.
func (b *BitSet) Test(i ComponentTypeIndex) bool {
	word := int(i / bitsPerWord)
	if word >= len(b.words) {
		return false
	}
	return b.words[word]&(1<<(i%bitsPerWord)) != 0
}

// IsEmpty reports whether no index is set.
func (b *BitSet) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set indices.
func (b *BitSet) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsSubsetOf reports whether every index set in b is also set in other.
func (b *BitSet) IsSubsetOf(other *BitSet) bool {
	for i, w := range b.words {
		var o uint64
		if i < len(other.words) {
			o = other.words[i]
		}
		if w&^o != 0 {
			return false
		}
	}
	return true
}

// Intersects reports whether b and other share at least one set index.
func (b *BitSet) Intersects(other *BitSet) bool {
	n := min(len(b.words), len(other.words))
	for i := 0; i < n; i++ {
		if b.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every index set in mask is set in b.
func (b *BitSet) ContainsAll(mask *BitSet) bool {
	return mask.IsSubsetOf(b)
}

// ContainsAny reports whether at least one index set in mask is set in b.
func (b *BitSet) ContainsAny(mask *BitSet) bool {
	return b.Intersects(mask)
}

// ContainsNone reports whether no index set in mask is set in b.
func (b *BitSet) ContainsNone(mask *BitSet) bool {
	return !b.Intersects(mask)
}

// Equal reports whether b and other hold the same set of indices,
// regardless of their underlying word counts.
func (b *BitSet) Equal(other *BitSet) bool {
	n := max(len(b.words), len(other.words))
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < len(b.words) {
			x = b.words[i]
		}
		if i < len(other.words) {
			y = other.words[i]
		}
		if x != y {
			return false
		}
	}
	return true
}

// Clone returns a deep, independent copy. The clone shares no word storage
// with b, so later mutations of either are invisible to the other.
func (b *BitSet) Clone() *BitSet {
	c := &BitSet{}
	if len(b.words) > 0 {
		c.words = make([]uint64, len(b.words))
		copy(c.words, b.words)
	}
	return c
}

// EachSet calls fn for every set index in ascending order.
func (b *BitSet) EachSet(fn func(i ComponentTypeIndex)) {
	for wi, w := range b.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			fn(ComponentTypeIndex(wi*bitsPerWord + bit))
			w &^= 1 << bit
		}
	}
}

// wordAt returns the word at position i, zero-padded past the end.
func (b *BitSet) wordAt(i int) uint64 {
	if i < len(b.words) {
		return b.words[i]
	}
	return 0
}

// trimmedLen returns the word count ignoring trailing zero words, so that
// zero-padding-equal sets normalize to the same length.
func (b *BitSet) trimmedLen() int {
	n := len(b.words)
	for n > 0 && b.words[n-1] == 0 {
		n--
	}
	return n
}
