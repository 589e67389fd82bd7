package core

import "testing"

func TestRandomSampler_DeterministicPerKey(t *testing.T) {
	key := StreamKey{Stream: 0, SubStream: 0, Dimension: 1}

	a := NewRandomSampler(42)
	b := NewRandomSampler(42)
	if a.Get1D(key) != b.Get1D(key) {
		t.Error("Same seed and key should produce the same draw")
	}
	if a.Get1D(key) != a.Get1D(key) {
		t.Error("Repeated draws with the same key should be identical")
	}
}

func TestRandomSampler_KeysAreIndependent(t *testing.T) {
	sampler := NewRandomSampler(42)

	roulette := sampler.Get1D(StreamKey{Stream: 0, SubStream: 0, Dimension: 1})
	hemisphere := sampler.Get1D(StreamKey{Stream: 0, SubStream: 1, Dimension: 1})
	if roulette == hemisphere {
		t.Error("Distinct keys should produce distinct draws")
	}

	other := NewRandomSampler(43)
	if sampler.Get1D(StreamKey{}) == other.Get1D(StreamKey{}) {
		t.Error("Distinct seeds should produce distinct draws")
	}
}

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(7)
	for dim := 0; dim < 1000; dim++ {
		v := sampler.Get1D(StreamKey{Dimension: dim})
		if v < 0 || v >= 1 {
			t.Fatalf("Draw %f for dimension %d outside [0,1)", v, dim)
		}
	}
}
