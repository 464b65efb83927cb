package grades

import (
	"math/rand"
	"time"
)

// Distribution parameters for generated scores.
const (
	Mean   = 75.0
	StdDev = 10.0
)

// Sampler yields one raw score per call.
type Sampler interface {
	Sample() float64
}

// SamplerFunc adapts a plain function to Sampler.
type SamplerFunc func() float64

func (f SamplerFunc) Sample() float64 { return f() }

// Fixed always returns the same value.
type Fixed float64

func (f Fixed) Sample() float64 { return float64(f) }

// NormalSampler draws from N(Mean, StdDev²).
type NormalSampler struct {
	rng *rand.Rand
}

func NewNormalSampler(src rand.Source) *NormalSampler {
	return &NormalSampler{rng: rand.New(src)}
}

// NewEntropySampler seeds from the wall clock; every run gets a fresh stream.
func NewEntropySampler() *NormalSampler {
	return NewNormalSampler(rand.NewSource(time.Now().UnixNano()))
}

func NewSeededSampler(seed int64) *NormalSampler {
	return NewNormalSampler(rand.NewSource(seed))
}

func (s *NormalSampler) Sample() float64 {
	return s.rng.NormFloat64()*StdDev + Mean
}
