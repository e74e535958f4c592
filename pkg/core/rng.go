package core

import "math/bits"

// float53 is the largest 53-bit integer, used to map draws onto [0,1)
const float53 = 1<<53 - 1

// Rng is a seeded xoshiro256+ generator. Each render worker owns a
// private instance; instances are not safe for concurrent use.
type Rng struct {
	state [4]uint64
}

// splitmix64 advances a splitmix64 state and returns the next output.
// Used to expand a single 64-bit seed into the 256-bit xoshiro state so
// distinct seeds produce decorrelated streams.
// Adapted from https://prng.di.unimi.it/splitmix64.c
func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// NewRng creates a generator seeded from a single 64-bit seed
func NewRng(seed uint64) *Rng {
	var r Rng
	r.state[0] = splitmix64(&seed)
	r.state[1] = splitmix64(&seed)
	r.state[2] = splitmix64(&seed)
	r.state[3] = splitmix64(&seed)
	return &r
}

// Uint64 returns the next value of the xoshiro256+ stream.
// Adapted from https://prng.di.unimi.it/xoshiro256plus.c
func (r *Rng) Uint64() uint64 {
	result := r.state[0] + r.state[3]

	t := r.state[1] << 17

	r.state[2] ^= r.state[0]
	r.state[3] ^= r.state[1]
	r.state[1] ^= r.state[2]
	r.state[0] ^= r.state[3]

	r.state[2] ^= t

	r.state[3] = bits.RotateLeft64(r.state[3], 45)

	return result
}

// Uint64n returns an unbiased uniform value in [0, n) using Lemire's
// multiply-and-reject method, avoiding modulo bias.
func (r *Rng) Uint64n(n uint64) uint64 {
	hi, lo := bits.Mul64(r.Uint64(), n)
	if lo < n {
		t := -n % n
		for lo < t {
			hi, lo = bits.Mul64(r.Uint64(), n)
		}
	}
	return hi
}

// Float64 returns a uniform value in [0, 1)
func (r *Rng) Float64() float64 {
	return float64(r.Uint64n(float53-1)) / float64(float53)
}

// Float64Range returns a uniform value in [min, max)
func (r *Rng) Float64Range(min, max float64) float64 {
	return min + (max-min)*r.Float64()
}
