package slots

// bitset tracks which key slots are in use.
type bitset struct {
	words []uint64
	size  int
}

func newBitset(size int) *bitset {
	return &bitset{
		words: make([]uint64, (size+63)/64),
		size:  size,
	}
}

func (b *bitset) set(i int) {
	b.words[i/64] |= 1 << (i % 64)
}

func (b *bitset) clear(i int) {
	b.words[i/64] &^= 1 << (i % 64)
}

func (b *bitset) test(i int) bool {
	return b.words[i/64]&(1<<(i%64)) != 0
}

// firstClear returns the lowest unused index, or false when all are taken.
func (b *bitset) firstClear() (int, bool) {
	for w, word := range b.words {
		if word == ^uint64(0) {
			continue
		}
		for bit := 0; bit < 64; bit++ {
			i := w*64 + bit
			if i >= b.size {
				return 0, false
			}
			if word&(1<<bit) == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
