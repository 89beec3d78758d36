package testutil

import (
	"math"
	"math/big"
	"math/rand"
	"sync"

	"github.com/hupe1980/rangemap/internal/conv"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Value returns a random value of T.
//
// Integers are drawn uniformly over the whole type, biased towards the type
// limits and zero one time in eight. Floats are drawn from [-scale, scale),
// with scale capped at the largest finite value of T.
func Value[T conv.Number](r *RNG, scale float64) T {
	if conv.IsFloat[T]() {
		if conv.Bits[T]() == 32 {
			scale = min(scale, math.MaxFloat32)
		}
		return T((r.Float64()*2 - 1) * scale)
	}
	switch r.Intn(8) {
	case 0:
		return [...]T{conv.MinOf[T](), conv.MaxOf[T](), 0}[r.Intn(3)]
	default:
		// Truncation keeps the low bits, which are uniform.
		return T(r.Uint64())
	}
}

// Between returns a random value between a and b inclusive, in either order.
func Between[T conv.Number](r *RNG, a, b T) T {
	lo, hi := min(a, b), max(a, b)
	if conv.IsFloat[T]() {
		// Half spans keep intervals wider than MaxFloat64 finite.
		half := float64(hi)/2 - float64(lo)/2
		t := r.Float64()
		v := float64(lo) + t*half + t*half
		return min(max(T(v), lo), hi)
	}
	span := conv.AbsDiff(hi, lo)
	if span == math.MaxUint64 {
		return T(r.Uint64())
	}
	return conv.Offset(lo, r.Uint64()%(span+1), false)
}

// Outside returns a random value of T that is not between a and b, and false
// when the interval covers every value of T.
func Outside[T conv.Number](r *RNG, a, b T) (T, bool) {
	lo, hi := min(a, b), max(a, b)
	full := [2]T{conv.MinOf[T](), conv.MaxOf[T]()}
	if conv.IsFloat[T]() {
		limit := math.MaxFloat32
		if conv.Bits[T]() == 64 {
			limit = math.MaxFloat64
		}
		full = [2]T{T(-limit), T(limit)}
	}
	below, above := lo > full[0], hi < full[1]
	switch {
	case below && above:
		if r.Intn(2) == 0 {
			return Between(r, full[0], prev(lo)), true
		}
		return Between(r, next(hi), full[1]), true
	case below:
		return Between(r, full[0], prev(lo)), true
	case above:
		return Between(r, next(hi), full[1]), true
	default:
		return 0, false
	}
}

func prev[T conv.Number](v T) T {
	return step(v, math.Inf(-1))
}

func next[T conv.Number](v T) T {
	return step(v, math.Inf(1))
}

func step[T conv.Number](v T, toward float64) T {
	switch {
	case !conv.IsFloat[T]():
		if toward < 0 {
			return v - 1
		}
		return v + 1
	case conv.Bits[T]() == 32:
		return T(math.Nextafter32(float32(v), float32(toward)))
	default:
		return T(math.Nextafter(float64(v), toward))
	}
}

// ReferenceMap computes the expected integer mapping of v from [srcLo, srcHi]
// to [dstLo, dstHi] with arbitrary precision:
//
//	dstLo ± floor(|v - srcLo| * |dstHi - dstLo| / |srcHi - srcLo|)
//
// The sign follows the ordering of the target interval. S and T must be
// integer types and the result is returned as a big.Int so callers can also
// check that it fits into T.
func ReferenceMap[S, T conv.Number](v, srcLo, srcHi S, dstLo, dstHi T) *big.Int {
	if srcLo == srcHi {
		return Big(dstLo)
	}
	d := new(big.Int).Abs(new(big.Int).Sub(Big(v), Big(srcLo)))
	ds := new(big.Int).Abs(new(big.Int).Sub(Big(srcHi), Big(srcLo)))
	dt := new(big.Int).Abs(new(big.Int).Sub(Big(dstHi), Big(dstLo)))

	scaled := d.Mul(d, dt)
	scaled.Quo(scaled, ds)
	if dstHi < dstLo {
		scaled.Neg(scaled)
	}
	return scaled.Add(scaled, Big(dstLo))
}

// Big returns the integer v as a big.Int.
func Big[T conv.Number](v T) *big.Int {
	if conv.IsSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}
