package life

const (
	hashPrimeX = 0x9E3779B185EBCA87
	hashPrimeY = 0xC2B2AE3D27D4EB4F
	hashPrimeS = 0x165667B19E3779F9
)

// Hash returns a value in [0, 1) that depends only on (x, y, seed). It carries
// no state, so parallel evaluation order cannot change the draws.
func Hash(x, y int, seed uint32) float64 {
	h := uint64(uint32(x))*hashPrimeX ^ uint64(uint32(y))*hashPrimeY ^ (uint64(seed)+1)*hashPrimeS
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return float64(h>>11) / (1 << 53)
}
