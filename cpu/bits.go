package cpu

// bitSet reports whether bit index i of b is set.
func bitSet(b byte, i int) bool {
	return b&(1<<i) != 0
}
