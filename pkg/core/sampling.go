package core

// StreamKey identifies a single uniform draw by sampling stream, sub-stream
// and dimension. Keying every draw keeps sampling reproducible and
// independent across concurrent shading invocations.
type StreamKey struct {
	Stream    int
	SubStream int
	Dimension int
}

// Sampler provides keyed uniform random numbers for shading algorithms.
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	// Get1D returns a uniform value in [0, 1) for the given key. Repeated
	// calls with the same key on the same sampler return the same value.
	Get1D(key StreamKey) float64
}

// RandomSampler derives each draw from a base seed and the stream key, so a
// sampler seeded the same way reproduces the same render.
type RandomSampler struct {
	seed uint64
}

// NewRandomSampler creates a sampler for one shading invocation. Hosts
// typically seed it from the pixel or photon index.
func NewRandomSampler(seed int64) *RandomSampler {
	return &RandomSampler{seed: uint64(seed)}
}

// Get1D returns a uniform value in [0, 1) derived from the seed and key
func (r *RandomSampler) Get1D(key StreamKey) float64 {
	h := r.seed
	h = mix64(h ^ uint64(key.Stream))
	h = mix64(h ^ uint64(key.SubStream))
	h = mix64(h ^ uint64(key.Dimension))
	// Use the top 53 bits for a float64 in [0, 1)
	return float64(h>>11) / (1 << 53)
}

// mix64 is the splitmix64 finalizer, used as a bit mixer
func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
