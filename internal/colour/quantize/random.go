package quantize

// Random is a 48-bit linear congruential generator. Its output matches
// java.util.Random for the same seed, which keeps cluster initialisation
// reproducible everywhere.
type Random struct {
	seed int64
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

// NewRandom returns a generator seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{seed: (seed ^ lcgMultiplier) & lcgMask}
}

func (r *Random) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(uint64(r.seed) >> (48 - bits))
}

// Intn returns a value in [0, bound). bound must be positive.
func (r *Random) Intn(bound int32) int32 {
	if bound&-bound == bound {
		return int32((int64(bound) * int64(r.next(31))) >> 31)
	}
	for {
		bits := r.next(31)
		val := bits % bound
		// Rejects values from the final partial range; the sum overflows
		// negative exactly when bits falls in it.
		if bits-val+(bound-1) >= 0 {
			return val
		}
	}
}
